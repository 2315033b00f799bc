package services

import (
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/sharedlists/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(st *memStore, clock *testClock) *RefreshTokenStore {
	return NewRefreshTokenStore(nil, &fakeRepoManager{st: st}, 32, 30*24*time.Hour, clock.Now)
}

func TestRefreshTokenStore_Lifecycle(t *testing.T) {
	ctx := context.Background()
	st := newMemStore()
	st.addUser("u1", "alice")
	s := newTestStore(st, newTestClock())

	tok, err := s.Generate(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, tok, 64)

	ok, err := s.Validate(ctx, "u1", tok)
	require.NoError(t, err)
	assert.True(t, ok)

	revoked, err := s.Revoke(ctx, "u1", tok)
	require.NoError(t, err)
	assert.True(t, revoked)

	ok, err = s.Validate(ctx, "u1", tok)
	require.NoError(t, err)
	assert.False(t, ok)

	revoked, err = s.Revoke(ctx, "u1", tok)
	require.NoError(t, err)
	assert.False(t, revoked)
}

func TestRefreshTokenStore_StoresDigestOnly(t *testing.T) {
	st := newMemStore()
	st.addUser("u1", "alice")
	tok, err := newTestStore(st, newTestClock()).Generate(context.Background(), "u1")
	require.NoError(t, err)

	st.mu.Lock()
	defer st.mu.Unlock()
	require.Len(t, st.tokens, 1)
	for _, rt := range st.tokens {
		assert.Equal(t, common.HashToken(tok), rt.Token)
		assert.NotEqual(t, tok, rt.Token)
	}
}

func TestRefreshTokenStore_GenerateKeepsEarlierTokens(t *testing.T) {
	ctx := context.Background()
	st := newMemStore()
	st.addUser("u1", "alice")
	s := newTestStore(st, newTestClock())

	a, err := s.Generate(ctx, "u1")
	require.NoError(t, err)
	b, err := s.Generate(ctx, "u1")
	require.NoError(t, err)
	assert.NotEqual(t, a, b)

	for _, tok := range []string{a, b} {
		ok, err := s.Validate(ctx, "u1", tok)
		require.NoError(t, err)
		assert.True(t, ok)
	}
}

func TestRefreshTokenStore_UnknownUser(t *testing.T) {
	_, err := newTestStore(newMemStore(), newTestClock()).Generate(context.Background(), "ghost")
	assert.ErrorIs(t, err, common.ErrUserNotFound)
}

func TestRefreshTokenStore_BoundToUser(t *testing.T) {
	ctx := context.Background()
	st := newMemStore()
	st.addUser("u1", "alice")
	st.addUser("u2", "bob")
	s := newTestStore(st, newTestClock())

	tok, err := s.Generate(ctx, "u1")
	require.NoError(t, err)

	ok, err := s.Validate(ctx, "u2", tok)
	require.NoError(t, err)
	assert.False(t, ok)

	revoked, err := s.Revoke(ctx, "u2", tok)
	require.NoError(t, err)
	assert.False(t, revoked)
}

func TestRefreshTokenStore_Expiry(t *testing.T) {
	ctx := context.Background()
	st := newMemStore()
	st.addUser("u1", "alice")
	clock := newTestClock()
	s := newTestStore(st, clock)

	tok, err := s.Generate(ctx, "u1")
	require.NoError(t, err)

	clock.Advance(30*24*time.Hour - time.Second)
	ok, err := s.Validate(ctx, "u1", tok)
	require.NoError(t, err)
	assert.True(t, ok)

	clock.Advance(time.Second)
	ok, err = s.Validate(ctx, "u1", tok)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 1, st.tokenCount(), "validate must not delete expired rows")

	n, err := s.PurgeExpired(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
	assert.Equal(t, 0, st.tokenCount())
}

func TestRefreshTokenStore_EmptyInput(t *testing.T) {
	s := newTestStore(newMemStore(), newTestClock())

	ok, err := s.Validate(context.Background(), "", "tok")
	require.NoError(t, err)
	assert.False(t, ok)

	revoked, err := s.Revoke(context.Background(), "u1", "")
	require.NoError(t, err)
	assert.False(t, revoked)
}

func TestRefreshTokenStore_StoreError(t *testing.T) {
	st := newMemStore()
	st.err = common.ErrUnavailable
	s := newTestStore(st, newTestClock())

	_, err := s.Validate(context.Background(), "u1", "tok")
	assert.ErrorIs(t, err, common.ErrUnavailable)
	_, err = s.Generate(context.Background(), "u1")
	assert.ErrorIs(t, err, common.ErrUnavailable)
}
