package cli

import (
	"bufio"
	"context"
	"io"
	"log"
	"os"
	"sync"
	"time"

	"github.com/dmitrijs2005/sharedlists/internal/client/config"
	"github.com/dmitrijs2005/sharedlists/internal/client/session"
	pb "github.com/dmitrijs2005/sharedlists/internal/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

// Backend is the part of pb.SharedListsClient the CLI calls. Tests substitute
// a fake.
type Backend interface {
	Ping(ctx context.Context, in *pb.PingRequest, opts ...grpc.CallOption) (*pb.PingResponse, error)
	Register(ctx context.Context, in *pb.RegisterRequest, opts ...grpc.CallOption) (*pb.RegisterResponse, error)
	Login(ctx context.Context, in *pb.LoginRequest, opts ...grpc.CallOption) (*pb.TokenResponse, error)
	Logout(ctx context.Context, in *pb.LogoutRequest, opts ...grpc.CallOption) (*pb.Empty, error)
	CreateList(ctx context.Context, in *pb.CreateListRequest, opts ...grpc.CallOption) (*pb.ListResponse, error)
	CreateRole(ctx context.Context, in *pb.CreateRoleRequest, opts ...grpc.CallOption) (*pb.RoleResponse, error)
	AddMember(ctx context.Context, in *pb.AddMemberRequest, opts ...grpc.CallOption) (*pb.Empty, error)
	RemoveMember(ctx context.Context, in *pb.RemoveMemberRequest, opts ...grpc.CallOption) (*pb.Empty, error)
	AssignRole(ctx context.Context, in *pb.AssignRoleRequest, opts ...grpc.CallOption) (*pb.Empty, error)
	CreateInvitationLink(ctx context.Context, in *pb.CreateInvitationLinkRequest, opts ...grpc.CallOption) (*pb.InvitationLinkResponse, error)
	RedeemInvitationLink(ctx context.Context, in *pb.RedeemInvitationLinkRequest, opts ...grpc.CallOption) (*pb.MemberResponse, error)
	CheckPermission(ctx context.Context, in *pb.CheckPermissionRequest, opts ...grpc.CallOption) (*pb.CheckPermissionResponse, error)
}

type App struct {
	config  *config.Config
	conn    io.Closer
	backend Backend
	session *session.Session
	reader  *bufio.Reader
	out     io.Writer

	mu   sync.Mutex
	mode Mode
}

// publicMethods are called without an access token.
var publicMethods = map[string]bool{
	pb.SharedLists_Ping_FullMethodName:     true,
	pb.SharedLists_Register_FullMethodName: true,
	pb.SharedLists_Login_FullMethodName:    true,
	pb.SharedLists_Refresh_FullMethodName:  true,
}

func isPublicMethod(fullMethod string) bool {
	return publicMethods[fullMethod]
}

func NewApp(c *config.Config) (*App, error) {
	sess := session.New(refreshTokens, isPublicMethod)

	conn, err := grpc.NewClient(c.ServerEndpointAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(sess.UnaryInterceptor()),
	)
	if err != nil {
		return nil, err
	}

	return &App{
		config:  c,
		conn:    conn,
		backend: pb.NewSharedListsClient(conn),
		session: sess,
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
	}, nil
}

func refreshTokens(ctx context.Context, cc grpc.ClientConnInterface, accessToken, refreshToken string) (string, string, error) {
	resp, err := pb.NewSharedListsClient(cc).Refresh(ctx, &pb.RefreshRequest{AccessToken: accessToken, RefreshToken: refreshToken})
	if err != nil {
		return "", "", err
	}
	return resp.GetAccessToken(), resp.GetRefreshToken(), nil
}

// Run starts the online watcher and the REPL, and closes the connection
// when the REPL ends.
func (a *App) Run(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	defer func() {
		if err := a.conn.Close(); err != nil {
			log.Printf("error closing connection: %v", err)
		}
	}()

	log.Println("Welcome to the shared lists CLI (type 'help' for commands)")

	go a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)

	runREPL(ctx, a, a.getStatus, bufio.NewScanner(a.reader))
}

func (a *App) isLoggedIn() bool {
	return a.session.LoggedIn()
}

func (a *App) getStatus() string {
	s := a.session.UserName()
	if mode := a.Mode(); mode != "" {
		if s != "" {
			s += " "
		}
		s += string(mode)
	}
	return s
}

func (a *App) callCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	if a.config == nil || a.config.CallTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, a.config.CallTimeout)
}

// Mode is the reachability last seen by the watcher.
func (a *App) Mode() Mode {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.mode
}

func (a *App) setMode(mode Mode) {
	a.mu.Lock()
	changed := a.mode != mode
	a.mode = mode
	a.mu.Unlock()

	if changed {
		log.Printf("Switched to %s mode\n", mode)
	}
}

func (a *App) checkOnline(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	resp, err := a.backend.Ping(ctx, &pb.PingRequest{})
	if err != nil || resp.GetStatus() != "OK" {
		a.setMode(ModeOffline)
		return
	}
	a.setMode(ModeOnline)
}

// StartOnlineStatusWatcher pings the server every interval until ctx ends.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	a.checkOnline(ctx)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			a.checkOnline(ctx)
		case <-ctx.Done():
			return
		}
	}
}
