package cli

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/sharedlists/internal/client/config"
	"github.com/dmitrijs2005/sharedlists/internal/client/session"
	pb "github.com/dmitrijs2005/sharedlists/internal/proto"
	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/timestamppb"
)

type fakeBackend struct {
	err     error
	pingErr error

	calls []string

	register *pb.RegisterRequest
	login    *pb.LoginRequest
	logout   *pb.LogoutRequest
	list     *pb.CreateListRequest
	role     *pb.CreateRoleRequest
	add      *pb.AddMemberRequest
	remove   *pb.RemoveMemberRequest
	assign   *pb.AssignRoleRequest
	invite   *pb.CreateInvitationLinkRequest
	redeem   *pb.RedeemInvitationLinkRequest
	check    *pb.CheckPermissionRequest

	access *pb.Access
}

func (f *fakeBackend) record(name string) { f.calls = append(f.calls, name) }

func (f *fakeBackend) Ping(context.Context, *pb.PingRequest, ...grpc.CallOption) (*pb.PingResponse, error) {
	if f.pingErr != nil {
		return nil, f.pingErr
	}
	return &pb.PingResponse{Status: "OK"}, nil
}

func (f *fakeBackend) Register(_ context.Context, in *pb.RegisterRequest, _ ...grpc.CallOption) (*pb.RegisterResponse, error) {
	f.record("register")
	f.register = in
	if f.err != nil {
		return nil, f.err
	}
	return &pb.RegisterResponse{User: &pb.User{Id: "u-1", Username: in.GetUsername()}}, nil
}

func (f *fakeBackend) Login(_ context.Context, in *pb.LoginRequest, _ ...grpc.CallOption) (*pb.TokenResponse, error) {
	f.record("login")
	f.login = in
	if f.err != nil {
		return nil, f.err
	}
	return &pb.TokenResponse{AccessToken: "access-1", TokenType: "Bearer", ExpiresIn: 900, RefreshToken: "refresh-1"}, nil
}

func (f *fakeBackend) Logout(_ context.Context, in *pb.LogoutRequest, _ ...grpc.CallOption) (*pb.Empty, error) {
	f.record("logout")
	f.logout = in
	return &pb.Empty{}, f.err
}

func (f *fakeBackend) CreateList(_ context.Context, in *pb.CreateListRequest, _ ...grpc.CallOption) (*pb.ListResponse, error) {
	f.record("newlist")
	f.list = in
	if f.err != nil {
		return nil, f.err
	}
	return &pb.ListResponse{List: &pb.TodoList{Id: "l-1", Title: in.GetTitle()}}, nil
}

func (f *fakeBackend) CreateRole(_ context.Context, in *pb.CreateRoleRequest, _ ...grpc.CallOption) (*pb.RoleResponse, error) {
	f.record("newrole")
	f.role = in
	if f.err != nil {
		return nil, f.err
	}
	return &pb.RoleResponse{Role: &pb.Role{Id: "r-1", ListId: in.GetListId(), Name: in.GetName(), Permissions: in.GetPermissions()}}, nil
}

func (f *fakeBackend) AddMember(_ context.Context, in *pb.AddMemberRequest, _ ...grpc.CallOption) (*pb.Empty, error) {
	f.record("addmember")
	f.add = in
	return &pb.Empty{}, f.err
}

func (f *fakeBackend) RemoveMember(_ context.Context, in *pb.RemoveMemberRequest, _ ...grpc.CallOption) (*pb.Empty, error) {
	f.record("rmmember")
	f.remove = in
	return &pb.Empty{}, f.err
}

func (f *fakeBackend) AssignRole(_ context.Context, in *pb.AssignRoleRequest, _ ...grpc.CallOption) (*pb.Empty, error) {
	f.record("assign")
	f.assign = in
	return &pb.Empty{}, f.err
}

func (f *fakeBackend) CreateInvitationLink(_ context.Context, in *pb.CreateInvitationLinkRequest, _ ...grpc.CallOption) (*pb.InvitationLinkResponse, error) {
	f.record("invite")
	f.invite = in
	if f.err != nil {
		return nil, f.err
	}
	return &pb.InvitationLinkResponse{Link: &pb.InvitationLink{
		Id:      "i-1",
		ListId:  in.GetListId(),
		Value:   "abc123",
		ValidTo: timestamppb.New(time.Date(2025, 3, 2, 12, 0, 0, 0, time.UTC)),
	}}, nil
}

func (f *fakeBackend) RedeemInvitationLink(_ context.Context, in *pb.RedeemInvitationLinkRequest, _ ...grpc.CallOption) (*pb.MemberResponse, error) {
	f.record("join")
	f.redeem = in
	if f.err != nil {
		return nil, f.err
	}
	return &pb.MemberResponse{Member: &pb.Member{ListId: "l-1", UserId: "u-2"}}, nil
}

func (f *fakeBackend) CheckPermission(_ context.Context, in *pb.CheckPermissionRequest, _ ...grpc.CallOption) (*pb.CheckPermissionResponse, error) {
	f.record("check")
	f.check = in
	if f.err != nil {
		return nil, f.err
	}
	return &pb.CheckPermissionResponse{Access: f.access}, nil
}

// assertProto compares messages with proto.Equal, since generated structs
// carry internal state that reflect.DeepEqual trips over.
func assertProto(t *testing.T, want, got proto.Message) {
	t.Helper()
	assert.True(t, proto.Equal(want, got), "want %v\ngot  %v", want, got)
}

type nopCloser struct{ closed bool }

func (c *nopCloser) Close() error { c.closed = true; return nil }

func newTestApp(t *testing.T, b *fakeBackend) (*App, *bytes.Buffer) {
	t.Helper()
	out := &bytes.Buffer{}
	return &App{
		config:  &config.Config{CallTimeout: time.Second, OnlineCheckInterval: time.Hour},
		conn:    &nopCloser{},
		backend: b,
		session: session.New(nil, isPublicMethod),
		reader:  bufio.NewReader(strings.NewReader("")),
		out:     out,
	}, out
}

func stubInputs(t *testing.T, lines []string, password []byte) {
	t.Helper()
	origST, origGP := getSimpleText, getPassword
	t.Cleanup(func() {
		getSimpleText = origST
		getPassword = origGP
	})

	next := 0
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		if next >= len(lines) {
			return "", io.EOF
		}
		v := lines[next]
		next++
		return v, nil
	}
	getPassword = func(_ io.Writer) ([]byte, error) { return password, nil }
}
