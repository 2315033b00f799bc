package grpc

import (
	"context"
	"time"

	"github.com/dmitrijs2005/sharedlists/internal/common"
	pb "github.com/dmitrijs2005/sharedlists/internal/proto"
	"github.com/dmitrijs2005/sharedlists/internal/server/auth"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type ctxKey string

const userIDKey ctxKey = "userID"

// publicMethods can be called without an access token.
var publicMethods = map[string]bool{
	pb.SharedLists_Ping_FullMethodName:     true,
	pb.SharedLists_Register_FullMethodName: true,
	pb.SharedLists_Login_FullMethodName:    true,
	pb.SharedLists_Refresh_FullMethodName:  true,
}

func isPublicMethod(fullMethod string) bool {
	return publicMethods[fullMethod]
}

// TokenValidator verifies an access token that must be currently valid.
type TokenValidator interface {
	ValidateCurrent(token string) (*auth.Claims, error)
}

// UserIDFromContext returns the authenticated caller stored by the interceptor.
func UserIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(userIDKey).(string)
	return id, ok && id != ""
}

func (s *GRPCServer) accessTokenInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {

	if isPublicMethod(info.FullMethod) {
		return handler(ctx, req)
	}

	var accessToken string
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		values := md.Get(common.AccessTokenHeaderName)
		if len(values) > 0 {
			accessToken = values[0]
		}
	}
	if len(accessToken) == 0 {
		return nil, status.Error(codes.Unauthenticated, "missing token")
	}

	claims, err := s.tokens.ValidateCurrent(accessToken)
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, "invalid access token")
	}

	ctx = context.WithValue(ctx, userIDKey, claims.UserID())
	return handler(ctx, req)
}

func (s *GRPCServer) loggingInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
	start := time.Now()
	resp, err := handler(ctx, req)

	code := status.Code(err)
	args := []any{"method", info.FullMethod, "code", code.String(), "duration", time.Since(start)}
	if code == codes.Internal || code == codes.Unavailable {
		s.logger.Error(ctx, "request failed", args...)
	} else {
		s.logger.Info(ctx, "request", args...)
	}
	return resp, err
}
