package grpc

import (
	"context"
	"net"
	"time"

	"github.com/dmitrijs2005/sharedlists/internal/logging"
	pb "github.com/dmitrijs2005/sharedlists/internal/proto"
	"github.com/dmitrijs2005/sharedlists/internal/server/models"
	"github.com/dmitrijs2005/sharedlists/internal/server/services"
	"google.golang.org/grpc"
)

// UserService is the auth API the server exposes.
type UserService interface {
	Register(ctx context.Context, req services.RegisterRequest) (*models.User, error)
	Login(ctx context.Context, login, password string) (*services.TokenPair, error)
	Refresh(ctx context.Context, accessToken, refreshToken string) (*services.TokenPair, error)
	Logout(ctx context.Context, userID, refreshToken string) error
}

// ListService is the list membership API the server exposes.
type ListService interface {
	CreateList(ctx context.Context, userID, title string) (*models.TodoList, error)
	CreateRole(ctx context.Context, actorID, listID, name string, perms models.RolePermissions) (*models.TodoListRole, error)
	UpdateRole(ctx context.Context, actorID, listID, roleID, name string, perms models.RolePermissions) (*models.TodoListRole, error)
	AddMember(ctx context.Context, actorID, listID, userID string, roleID *string) error
	RemoveMember(ctx context.Context, actorID, listID, userID string) error
	AssignRole(ctx context.Context, actorID, listID, userID string, roleID *string) error
	CreateInvitationLink(ctx context.Context, actorID, listID string, roleID *string, validFor time.Duration) (*models.InvitationLink, error)
	RedeemInvitationLink(ctx context.Context, userID, value string) (*models.TodoListMember, error)
	Access(ctx context.Context, listID, userID string) (models.Access, error)
}

type GRPCServer struct {
	pb.UnimplementedSharedListsServer
	address string
	users   UserService
	lists   ListService
	tokens  TokenValidator
	logger  logging.Logger
}

func NewGRPCServer(a string, l logging.Logger, us UserService, ls ListService, tv TokenValidator) *GRPCServer {
	return &GRPCServer{
		address: a,
		logger:  l.With("module", "grpc_server"),
		users:   us,
		lists:   ls,
		tokens:  tv,
	}
}

// NewServer builds the grpc.Server with the interceptors and the service
// registered, without binding it to a listener.
func (s *GRPCServer) NewServer(opts ...grpc.ServerOption) *grpc.Server {
	opts = append(opts, grpc.ChainUnaryInterceptor(s.loggingInterceptor, s.accessTokenInterceptor))
	srv := grpc.NewServer(opts...)
	pb.RegisterSharedListsServer(srv, s)
	return srv
}

func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	srv := s.NewServer()

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gPRC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", s.address)

	// starts accepting incoming connections
	if err := srv.Serve(listen); err != nil {
		return err
	}

	return nil
}
