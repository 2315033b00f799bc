package services

import (
	"context"
	"errors"
	"net"
	"sync"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/sharedlists/internal/common"
	"github.com/dmitrijs2005/sharedlists/internal/dbx"
	"github.com/dmitrijs2005/sharedlists/internal/server/auth"
	"github.com/dmitrijs2005/sharedlists/internal/server/config"
	"github.com/dmitrijs2005/sharedlists/internal/server/events"
	"github.com/dmitrijs2005/sharedlists/internal/server/repositories/refreshtokens"
	"github.com/dmitrijs2005/sharedlists/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/sharedlists/internal/server/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/peer"
)

// --- helpers ---

func testConfig() *config.Config {
	return &config.Config{
		SecretKey:                   "k",
		Issuer:                      "sharedlists",
		Audience:                    "sharedlists-clients",
		AccessTokenValidityDuration: 15 * time.Minute,
		RefreshTokenValidityDays:    30,
		RefreshTokenSize:            32,
	}
}

type userServiceFixture struct {
	st        *memStore
	clock     *testClock
	svc       *UserService
	publisher *fakePublisher
}

func newUserServiceFixture(t *testing.T, opts ...Option) *userServiceFixture {
	t.Helper()
	st := newMemStore()
	return newUserServiceFixtureWith(t, st, &fakeRepoManager{st: st}, opts...)
}

func newUserServiceFixtureWith(t *testing.T, st *memStore, rm repomanager.RepositoryManager, opts ...Option) *userServiceFixture {
	t.Helper()
	f := &userServiceFixture{st: st, clock: newTestClock(), publisher: &fakePublisher{}}
	base := []Option{
		WithClock(f.clock.Now),
		WithPublisher(f.publisher),
		WithIdentity(newTestIdentity(st)),
	}
	f.svc = NewUserService(newTxDB(t), rm, testConfig(), append(base, opts...)...)
	return f
}

func (f *userServiceFixture) registerAlice(t *testing.T) {
	t.Helper()
	_, err := f.svc.Register(context.Background(), validRegistration())
	require.NoError(t, err)
}

// --- tests ---

func TestUserService_RegisterLoginRefresh(t *testing.T) {
	ctx := context.Background()
	f := newUserServiceFixture(t)

	u, err := f.svc.Register(ctx, validRegistration())
	require.NoError(t, err)
	assert.Equal(t, []string{events.UserRegistered}, f.publisher.keys())

	pair, err := f.svc.Login(ctx, "alice", "correct horse")
	require.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
	assert.EqualValues(t, 900, pair.ExpirationSeconds)

	claims, err := f.svc.Codec().ValidateCurrent(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, u.ID, claims.UserID())
	assert.Equal(t, "alice", claims.PreferredUsername)

	// the access token has expired by the time the client refreshes
	f.clock.Advance(20 * time.Minute)
	_, err = f.svc.Codec().ValidateCurrent(pair.AccessToken)
	require.ErrorIs(t, err, common.ErrTokenExpired)

	next, err := f.svc.Refresh(ctx, pair.AccessToken, pair.RefreshToken)
	require.NoError(t, err)
	assert.NotEqual(t, pair.RefreshToken, next.RefreshToken)

	claims, err = f.svc.Codec().ValidateCurrent(next.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, u.ID, claims.UserID())

	// the old refresh token was rotated out
	_, err = f.svc.Refresh(ctx, pair.AccessToken, pair.RefreshToken)
	assert.ErrorIs(t, err, common.ErrInvalidRefreshToken)

	ok, err := f.svc.Tokens().Validate(ctx, u.ID, next.RefreshToken)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestUserService_Login_InvalidCredentials(t *testing.T) {
	f := newUserServiceFixture(t)
	f.registerAlice(t)

	_, err := f.svc.Login(context.Background(), "alice", "nope")
	assert.ErrorIs(t, err, common.ErrInvalidCredentials)
	_, err = f.svc.Login(context.Background(), "nobody", "correct horse")
	assert.ErrorIs(t, err, common.ErrInvalidCredentials)
	assert.Equal(t, 0, f.st.tokenCount())
}

func TestUserService_Login_Throttled(t *testing.T) {
	limiter := &fakeLimiter{allowed: false}
	f := newUserServiceFixture(t, WithLimiter(limiter))
	f.registerAlice(t)

	_, err := f.svc.Login(context.Background(), "alice", "correct horse")
	assert.ErrorIs(t, err, common.ErrTooManyLoginAttempts)
	assert.Equal(t, 0, limiter.resets)
}

func TestUserService_Login_LimiterResetOnSuccess(t *testing.T) {
	limiter := &fakeLimiter{allowed: true}
	f := newUserServiceFixture(t, WithLimiter(limiter))
	f.registerAlice(t)

	_, err := f.svc.Login(context.Background(), "alice", "correct horse")
	require.NoError(t, err)
	assert.Equal(t, 1, limiter.resets)
}

func TestUserService_Login_LimiterKeyIncludesCallerHost(t *testing.T) {
	limiter := &fakeLimiter{allowed: true}
	f := newUserServiceFixture(t, WithLimiter(limiter))
	f.registerAlice(t)

	from := func(ip string, port int) context.Context {
		return peer.NewContext(context.Background(), &peer.Peer{Addr: &net.TCPAddr{IP: net.ParseIP(ip), Port: port}})
	}

	_, err := f.svc.Login(from("10.0.0.1", 5000), " Alice ", "wrong")
	assert.ErrorIs(t, err, common.ErrInvalidCredentials)
	_, err = f.svc.Login(from("10.0.0.1", 6000), "alice", "wrong")
	assert.ErrorIs(t, err, common.ErrInvalidCredentials)
	_, err = f.svc.Login(from("10.0.0.2", 5000), "alice", "wrong")
	assert.ErrorIs(t, err, common.ErrInvalidCredentials)
	_, err = f.svc.Login(context.Background(), "alice", "wrong")
	assert.ErrorIs(t, err, common.ErrInvalidCredentials)

	assert.Equal(t, []string{"alice|10.0.0.1", "alice|10.0.0.1", "alice|10.0.0.2", "alice"}, limiter.keys)
}

func TestUserService_Login_LimiterDownFailsOpen(t *testing.T) {
	limiter := &fakeLimiter{err: common.ErrUnavailable}
	f := newUserServiceFixture(t, WithLimiter(limiter))
	f.registerAlice(t)

	_, err := f.svc.Login(context.Background(), "alice", "correct horse")
	assert.NoError(t, err)
}

func TestUserService_Register_ValidationError(t *testing.T) {
	f := newUserServiceFixture(t)
	req := validRegistration()
	req.Email = "bad"

	_, err := f.svc.Register(context.Background(), req)
	var verr *validation.Errors
	require.ErrorAs(t, err, &verr)
	assert.Empty(t, f.publisher.keys())
}

func TestUserService_Register_PublishFailureIgnored(t *testing.T) {
	f := newUserServiceFixture(t)
	f.publisher.err = common.ErrUnavailable

	_, err := f.svc.Register(context.Background(), validRegistration())
	assert.NoError(t, err)
}

func TestUserService_Refresh_InvalidAccessToken(t *testing.T) {
	ctx := context.Background()
	f := newUserServiceFixture(t)
	f.registerAlice(t)
	pair, err := f.svc.Login(ctx, "alice", "correct horse")
	require.NoError(t, err)

	other := auth.NewTokenCodec(auth.TokenConfig{
		SecretKey: "other", Issuer: "sharedlists", Audience: "sharedlists-clients", Lifetime: time.Minute,
	}, f.clock.Now)
	u, err := f.svc.identity.GetUser(ctx, mustSubject(t, f, pair.AccessToken))
	require.NoError(t, err)
	forged, err := other.Issue(u)
	require.NoError(t, err)

	for _, tok := range []string{"", "garbage", forged} {
		_, err := f.svc.Refresh(ctx, tok, pair.RefreshToken)
		assert.ErrorIs(t, err, common.ErrInvalidAccessToken)
	}

	// nothing was revoked
	ok, err := f.svc.Tokens().Validate(ctx, u.ID, pair.RefreshToken)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestUserService_Refresh_TokenOfAnotherUser(t *testing.T) {
	ctx := context.Background()
	f := newUserServiceFixture(t)
	f.registerAlice(t)
	bob := validRegistration()
	bob.UserName, bob.Email = "bobby", "bob@example.com"
	_, err := f.svc.Register(ctx, bob)
	require.NoError(t, err)

	alice, err := f.svc.Login(ctx, "alice", "correct horse")
	require.NoError(t, err)
	bobPair, err := f.svc.Login(ctx, "bobby", "correct horse")
	require.NoError(t, err)

	_, err = f.svc.Refresh(ctx, alice.AccessToken, bobPair.RefreshToken)
	assert.ErrorIs(t, err, common.ErrInvalidRefreshToken)
}

func TestUserService_Refresh_ExpiredRefreshToken(t *testing.T) {
	ctx := context.Background()
	f := newUserServiceFixture(t)
	f.registerAlice(t)
	pair, err := f.svc.Login(ctx, "alice", "correct horse")
	require.NoError(t, err)

	f.clock.Advance(31 * 24 * time.Hour)
	_, err = f.svc.Refresh(ctx, pair.AccessToken, pair.RefreshToken)
	assert.ErrorIs(t, err, common.ErrInvalidRefreshToken)
}

func TestUserService_Refresh_ConcurrentSingleWinner(t *testing.T) {
	ctx := context.Background()
	f := newUserServiceFixture(t)
	f.registerAlice(t)
	pair, err := f.svc.Login(ctx, "alice", "correct horse")
	require.NoError(t, err)

	const n = 16
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		wins    int
		invalid int
	)
	start := make(chan struct{})
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			_, err := f.svc.Refresh(ctx, pair.AccessToken, pair.RefreshToken)
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				wins++
			case errors.Is(err, common.ErrInvalidRefreshToken):
				invalid++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	close(start)
	wg.Wait()

	assert.Equal(t, 1, wins)
	assert.Equal(t, n-1, invalid)
	assert.Equal(t, 1, f.st.tokenCount())
}

func TestUserService_Logout(t *testing.T) {
	ctx := context.Background()
	f := newUserServiceFixture(t)
	f.registerAlice(t)
	pair, err := f.svc.Login(ctx, "alice", "correct horse")
	require.NoError(t, err)
	userID := mustSubject(t, f, pair.AccessToken)

	assert.ErrorIs(t, f.svc.Logout(ctx, "someone-else", pair.RefreshToken), common.ErrInvalidRefreshToken)
	require.NoError(t, f.svc.Logout(ctx, userID, pair.RefreshToken))
	assert.ErrorIs(t, f.svc.Logout(ctx, userID, pair.RefreshToken), common.ErrInvalidRefreshToken)

	_, err = f.svc.Refresh(ctx, pair.AccessToken, pair.RefreshToken)
	assert.ErrorIs(t, err, common.ErrInvalidRefreshToken)
}

// lostRaceManager reports every refresh token delete as already done by
// someone else.
type lostRaceManager struct {
	*fakeRepoManager
}

type lostRaceTokens struct {
	*fakeTokens
}

func (lostRaceTokens) Delete(context.Context, string, string) (bool, error) { return false, nil }

func (m lostRaceManager) RefreshTokens(db dbx.DBTX) refreshtokens.Repository {
	return lostRaceTokens{&fakeTokens{m.st}}
}

func TestUserService_Refresh_TransactionBoundaries(t *testing.T) {
	ctx := context.Background()

	t.Run("commit on success", func(t *testing.T) {
		st := newMemStore()
		f := newUserServiceFixtureWith(t, st, &fakeRepoManager{st: st})
		f.registerAlice(t)
		pair, err := f.svc.Login(ctx, "alice", "correct horse")
		require.NoError(t, err)

		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		f.svc.db = db

		mock.ExpectBegin()
		mock.ExpectCommit()

		_, err = f.svc.Refresh(ctx, pair.AccessToken, pair.RefreshToken)
		require.NoError(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rollback when the token was revoked concurrently", func(t *testing.T) {
		st := newMemStore()
		f := newUserServiceFixtureWith(t, st, lostRaceManager{&fakeRepoManager{st: st}})
		f.registerAlice(t)
		pair, err := f.svc.Login(ctx, "alice", "correct horse")
		require.NoError(t, err)

		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		f.svc.db = db

		mock.ExpectBegin()
		mock.ExpectRollback()

		_, err = f.svc.Refresh(ctx, pair.AccessToken, pair.RefreshToken)
		assert.ErrorIs(t, err, common.ErrInvalidRefreshToken)
		require.NoError(t, mock.ExpectationsWereMet())
		assert.Equal(t, 1, st.tokenCount())
	})

	t.Run("begin failure is reported", func(t *testing.T) {
		f := newUserServiceFixture(t)
		f.registerAlice(t)
		pair, err := f.svc.Login(ctx, "alice", "correct horse")
		require.NoError(t, err)

		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		f.svc.db = db

		mock.ExpectBegin().WillReturnError(errors.New("conn refused"))

		_, err = f.svc.Refresh(ctx, pair.AccessToken, pair.RefreshToken)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "conn refused")
	})
}

func mustSubject(t *testing.T, f *userServiceFixture, token string) string {
	t.Helper()
	claims, err := f.svc.Codec().ReadClaimsIgnoringExpiry(token)
	require.NoError(t, err)
	return claims.UserID()
}
