package services

import (
	"context"
	"database/sql"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/sharedlists/internal/common"
	"github.com/dmitrijs2005/sharedlists/internal/dbx"
	"github.com/dmitrijs2005/sharedlists/internal/server/models"
	"github.com/dmitrijs2005/sharedlists/internal/server/repositories/invitations"
	"github.com/dmitrijs2005/sharedlists/internal/server/repositories/lists"
	"github.com/dmitrijs2005/sharedlists/internal/server/repositories/members"
	"github.com/dmitrijs2005/sharedlists/internal/server/repositories/refreshtokens"
	"github.com/dmitrijs2005/sharedlists/internal/server/repositories/roles"
	"github.com/dmitrijs2005/sharedlists/internal/server/repositories/users"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

// --- helpers ---

// newTxDB returns an in-memory SQLite handle. The fakes ignore it; it only
// gives dbx.WithTx a real transaction to begin and commit.
func newTxDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

type testClock struct {
	mu sync.Mutex
	t  time.Time
}

func newTestClock() *testClock {
	return &testClock{t: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.t = c.t.Add(d)
	c.mu.Unlock()
}

// memStore backs every fake repository.
type memStore struct {
	mu          sync.Mutex
	users       map[string]*models.User
	tokens      map[string]*models.RefreshToken
	lists       map[string]*models.TodoList
	roles       map[string]*models.TodoListRole
	members     map[string]*models.TodoListMember
	invitations map[string]*models.InvitationLink

	// err, when set, is returned by every repository call.
	err error
}

func newMemStore() *memStore {
	return &memStore{
		users:       map[string]*models.User{},
		tokens:      map[string]*models.RefreshToken{},
		lists:       map[string]*models.TodoList{},
		roles:       map[string]*models.TodoListRole{},
		members:     map[string]*models.TodoListMember{},
		invitations: map[string]*models.InvitationLink{},
	}
}

func (s *memStore) addUser(id, name string) *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	u := &models.User{ID: id, UserName: name, Email: name + "@example.com"}
	s.users[id] = u
	return u
}

func (s *memStore) addMember(listID, userID string, roleID *string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.members[listID+"|"+userID] = &models.TodoListMember{UserID: userID, TodoListID: listID, RoleID: roleID}
}

func (s *memStore) addRole(id, listID, name string, p models.RolePermissions) *string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.roles[id] = &models.TodoListRole{ID: id, TodoListID: listID, Name: name, Permissions: p}
	return &id
}

func (s *memStore) tokenCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tokens)
}

type fakeRepoManager struct {
	st *memStore
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (m *fakeRepoManager) Users(dbx.DBTX) users.Repository             { return &fakeUsers{m.st} }
func (m *fakeRepoManager) RefreshTokens(dbx.DBTX) refreshtokens.Repository {
	return &fakeTokens{m.st}
}
func (m *fakeRepoManager) Lists(dbx.DBTX) lists.Repository     { return &fakeLists{m.st} }
func (m *fakeRepoManager) Roles(dbx.DBTX) roles.Repository     { return &fakeRoles{m.st} }
func (m *fakeRepoManager) Members(dbx.DBTX) members.Repository { return &fakeMembers{m.st} }
func (m *fakeRepoManager) Invitations(dbx.DBTX) invitations.Repository {
	return &fakeInvitations{m.st}
}

// --- users ---

type fakeUsers struct{ st *memStore }

func (f *fakeUsers) Create(_ context.Context, u *models.User) (*models.User, error) {
	f.st.mu.Lock()
	defer f.st.mu.Unlock()
	if f.st.err != nil {
		return nil, f.st.err
	}
	for _, x := range f.st.users {
		if strings.EqualFold(x.Email, u.Email) {
			return nil, common.ErrDuplicateEmail
		}
		if strings.EqualFold(x.UserName, u.UserName) {
			return nil, common.ErrDuplicateUserName
		}
	}
	c := *u
	c.CreatedAt = time.Now()
	f.st.users[u.ID] = &c
	return &c, nil
}

func (f *fakeUsers) GetUserByLogin(_ context.Context, login string) (*models.User, error) {
	f.st.mu.Lock()
	defer f.st.mu.Unlock()
	if f.st.err != nil {
		return nil, f.st.err
	}
	for _, x := range f.st.users {
		if strings.EqualFold(x.UserName, login) || strings.EqualFold(x.Email, login) {
			c := *x
			return &c, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (f *fakeUsers) GetByID(_ context.Context, id string) (*models.User, error) {
	f.st.mu.Lock()
	defer f.st.mu.Unlock()
	if f.st.err != nil {
		return nil, f.st.err
	}
	x, ok := f.st.users[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	c := *x
	return &c, nil
}

func (f *fakeUsers) Exists(_ context.Context, id string) (bool, error) {
	f.st.mu.Lock()
	defer f.st.mu.Unlock()
	if f.st.err != nil {
		return false, f.st.err
	}
	_, ok := f.st.users[id]
	return ok, nil
}

func (f *fakeUsers) ExistsByEmail(_ context.Context, email string) (bool, error) {
	return f.existsBy(func(u *models.User) bool { return strings.EqualFold(u.Email, email) })
}

func (f *fakeUsers) ExistsByUserName(_ context.Context, name string) (bool, error) {
	return f.existsBy(func(u *models.User) bool { return strings.EqualFold(u.UserName, name) })
}

func (f *fakeUsers) existsBy(match func(*models.User) bool) (bool, error) {
	f.st.mu.Lock()
	defer f.st.mu.Unlock()
	if f.st.err != nil {
		return false, f.st.err
	}
	for _, x := range f.st.users {
		if match(x) {
			return true, nil
		}
	}
	return false, nil
}

// --- refresh tokens ---

type fakeTokens struct{ st *memStore }

func tokenKey(userID, hash string) string { return userID + "|" + hash }

func (f *fakeTokens) Create(_ context.Context, userID, tokenHash string, expires time.Time) error {
	f.st.mu.Lock()
	defer f.st.mu.Unlock()
	if f.st.err != nil {
		return f.st.err
	}
	if _, ok := f.st.users[userID]; !ok {
		return common.ErrUserNotFound
	}
	f.st.tokens[tokenKey(userID, tokenHash)] = &models.RefreshToken{UserID: userID, Token: tokenHash, Expires: expires}
	return nil
}

func (f *fakeTokens) Find(_ context.Context, userID, tokenHash string) (*models.RefreshToken, error) {
	f.st.mu.Lock()
	defer f.st.mu.Unlock()
	if f.st.err != nil {
		return nil, f.st.err
	}
	rt, ok := f.st.tokens[tokenKey(userID, tokenHash)]
	if !ok {
		return nil, common.ErrorNotFound
	}
	c := *rt
	return &c, nil
}

func (f *fakeTokens) Delete(_ context.Context, userID, tokenHash string) (bool, error) {
	f.st.mu.Lock()
	defer f.st.mu.Unlock()
	if f.st.err != nil {
		return false, f.st.err
	}
	k := tokenKey(userID, tokenHash)
	if _, ok := f.st.tokens[k]; !ok {
		return false, nil
	}
	delete(f.st.tokens, k)
	return true, nil
}

func (f *fakeTokens) DeleteExpired(_ context.Context, now time.Time) (int64, error) {
	f.st.mu.Lock()
	defer f.st.mu.Unlock()
	if f.st.err != nil {
		return 0, f.st.err
	}
	var n int64
	for k, rt := range f.st.tokens {
		if !rt.Expires.After(now) {
			delete(f.st.tokens, k)
			n++
		}
	}
	return n, nil
}

// --- lists, roles, members, invitations ---

type fakeLists struct{ st *memStore }

func (f *fakeLists) Create(_ context.Context, l *models.TodoList) error {
	f.st.mu.Lock()
	defer f.st.mu.Unlock()
	if f.st.err != nil {
		return f.st.err
	}
	if _, ok := f.st.users[l.CreatedBy]; !ok {
		return common.ErrUserNotFound
	}
	l.CreatedAt = time.Now()
	c := *l
	f.st.lists[l.ID] = &c
	return nil
}

func (f *fakeLists) GetByID(_ context.Context, id string) (*models.TodoList, error) {
	f.st.mu.Lock()
	defer f.st.mu.Unlock()
	l, ok := f.st.lists[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	c := *l
	return &c, nil
}

type fakeRoles struct{ st *memStore }

func (f *fakeRoles) Create(_ context.Context, r *models.TodoListRole) error {
	f.st.mu.Lock()
	defer f.st.mu.Unlock()
	if f.st.err != nil {
		return f.st.err
	}
	c := *r
	f.st.roles[r.ID] = &c
	return nil
}

func (f *fakeRoles) Get(_ context.Context, id string) (*models.TodoListRole, error) {
	f.st.mu.Lock()
	defer f.st.mu.Unlock()
	if f.st.err != nil {
		return nil, f.st.err
	}
	r, ok := f.st.roles[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	c := *r
	return &c, nil
}

func (f *fakeRoles) Update(_ context.Context, r *models.TodoListRole) error {
	f.st.mu.Lock()
	defer f.st.mu.Unlock()
	if f.st.err != nil {
		return f.st.err
	}
	cur, ok := f.st.roles[r.ID]
	if !ok || cur.TodoListID != r.TodoListID {
		return common.ErrorNotFound
	}
	c := *r
	f.st.roles[r.ID] = &c
	return nil
}

type fakeMembers struct{ st *memStore }

func (f *fakeMembers) FindWithRole(_ context.Context, listID, userID string) (*models.TodoListMember, *models.RolePermissions, error) {
	f.st.mu.Lock()
	defer f.st.mu.Unlock()
	if f.st.err != nil {
		return nil, nil, f.st.err
	}
	m, ok := f.st.members[listID+"|"+userID]
	if !ok {
		return nil, nil, common.ErrorNotFound
	}
	c := *m
	if m.RoleID == nil {
		return &c, nil, nil
	}
	// same join condition as the SQL: role id and list id
	r, ok := f.st.roles[*m.RoleID]
	if !ok || r.TodoListID != listID {
		return &c, nil, nil
	}
	p := r.Permissions
	return &c, &p, nil
}

func (f *fakeMembers) Add(_ context.Context, m *models.TodoListMember) error {
	f.st.mu.Lock()
	defer f.st.mu.Unlock()
	if f.st.err != nil {
		return f.st.err
	}
	k := m.TodoListID + "|" + m.UserID
	if _, ok := f.st.members[k]; ok {
		return common.ErrAlreadyMember
	}
	c := *m
	f.st.members[k] = &c
	return nil
}

func (f *fakeMembers) Delete(_ context.Context, listID, userID string) (bool, error) {
	f.st.mu.Lock()
	defer f.st.mu.Unlock()
	if f.st.err != nil {
		return false, f.st.err
	}
	k := listID + "|" + userID
	if _, ok := f.st.members[k]; !ok {
		return false, nil
	}
	delete(f.st.members, k)
	return true, nil
}

func (f *fakeMembers) UpdateRole(_ context.Context, listID, userID string, roleID *string) (bool, error) {
	f.st.mu.Lock()
	defer f.st.mu.Unlock()
	if f.st.err != nil {
		return false, f.st.err
	}
	m, ok := f.st.members[listID+"|"+userID]
	if !ok {
		return false, nil
	}
	m.RoleID = roleID
	return true, nil
}

type fakeInvitations struct{ st *memStore }

func (f *fakeInvitations) Create(_ context.Context, l *models.InvitationLink) error {
	f.st.mu.Lock()
	defer f.st.mu.Unlock()
	if f.st.err != nil {
		return f.st.err
	}
	c := *l
	f.st.invitations[l.Value] = &c
	return nil
}

func (f *fakeInvitations) Take(_ context.Context, valueHash string) (*models.InvitationLink, error) {
	f.st.mu.Lock()
	defer f.st.mu.Unlock()
	if f.st.err != nil {
		return nil, f.st.err
	}
	l, ok := f.st.invitations[valueHash]
	if !ok {
		return nil, common.ErrorNotFound
	}
	delete(f.st.invitations, valueHash)
	return l, nil
}

// --- collaborators ---

type fakeLimiter struct {
	mu      sync.Mutex
	allowed bool
	err     error
	resets  int
	keys    []string
}

func (f *fakeLimiter) Allow(_ context.Context, key string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.keys = append(f.keys, key)
	return f.allowed, f.err
}

func (f *fakeLimiter) Reset(context.Context, string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.resets++
	return nil
}

type publishedEvent struct {
	key     string
	payload any
}

type fakePublisher struct {
	mu     sync.Mutex
	events []publishedEvent
	err    error
}

func (f *fakePublisher) Publish(_ context.Context, key string, payload any) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, publishedEvent{key, payload})
	return f.err
}

func (f *fakePublisher) keys() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []string
	for _, e := range f.events {
		out = append(out, e.key)
	}
	return out
}
