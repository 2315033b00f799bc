// Package session keeps the client's token pair and attaches the access
// token to outgoing calls. A call rejected as Unauthenticated is retried
// once after a refresh.
package session

import (
	"context"
	"errors"
	"sync"

	"github.com/dmitrijs2005/sharedlists/internal/common"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

var ErrNotLoggedIn = errors.New("not logged in")

// Refresher exchanges a token pair for a new one over cc.
type Refresher func(ctx context.Context, cc grpc.ClientConnInterface, accessToken, refreshToken string) (newAccess, newRefresh string, err error)

type Session struct {
	mu       sync.Mutex
	userName string
	access   string
	refresh  string

	// serializes refreshes so concurrent callers spend the refresh token once
	refreshMu sync.Mutex

	refresher Refresher
	public    func(fullMethod string) bool
}

// New returns an empty session. Methods for which public reports true are
// sent without a token and never retried.
func New(refresher Refresher, public func(fullMethod string) bool) *Session {
	if public == nil {
		public = func(string) bool { return false }
	}
	return &Session{refresher: refresher, public: public}
}

func (s *Session) Set(userName, accessToken, refreshToken string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.userName, s.access, s.refresh = userName, accessToken, refreshToken
}

func (s *Session) Clear() {
	s.Set("", "", "")
}

func (s *Session) LoggedIn() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.access != ""
}

func (s *Session) UserName() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.userName
}

func (s *Session) Tokens() (accessToken, refreshToken string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.access, s.refresh
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Set(common.AccessTokenHeaderName, token)
	return metadata.NewOutgoingContext(ctx, md)
}

// UnaryInterceptor attaches the current access token and refreshes the pair
// when the server rejects it.
func (s *Session) UnaryInterceptor() grpc.UnaryClientInterceptor {
	return func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, invoker grpc.UnaryInvoker, opts ...grpc.CallOption) error {
		if s.public(method) {
			return invoker(ctx, method, req, reply, cc, opts...)
		}

		access, _ := s.Tokens()
		if access == "" {
			return status.Error(codes.Unauthenticated, ErrNotLoggedIn.Error())
		}

		err := invoker(withAccessToken(ctx, access), method, req, reply, cc, opts...)
		if status.Code(err) != codes.Unauthenticated {
			return err
		}

		fresh, rerr := s.renew(ctx, cc, access)
		if rerr != nil {
			return err
		}
		return invoker(withAccessToken(ctx, fresh), method, req, reply, cc, opts...)
	}
}

// renew replaces the pair unless another caller already replaced stale.
func (s *Session) renew(ctx context.Context, cc grpc.ClientConnInterface, stale string) (string, error) {
	s.refreshMu.Lock()
	defer s.refreshMu.Unlock()

	access, refresh := s.Tokens()
	if access == "" {
		return "", ErrNotLoggedIn
	}
	if access != stale {
		return access, nil
	}
	if s.refresher == nil || refresh == "" {
		return "", ErrNotLoggedIn
	}

	newAccess, newRefresh, err := s.refresher(ctx, cc, access, refresh)
	if err != nil {
		if status.Code(err) == codes.Unauthenticated {
			s.Clear()
		}
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	// a logout during the refresh wins
	if s.access != stale {
		return "", ErrNotLoggedIn
	}
	s.access, s.refresh = newAccess, newRefresh
	return newAccess, nil
}
