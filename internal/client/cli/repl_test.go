package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type fakeExec struct {
	loggedIn bool
	err      error

	calls []string
	args  [][]string
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }

func (f *fakeExec) do(name string, args []string) error {
	f.calls = append(f.calls, name)
	f.args = append(f.args, args)
	return f.err
}

func (f *fakeExec) Register(context.Context) error { return f.do("register", nil) }
func (f *fakeExec) Login(context.Context) error {
	f.loggedIn = true
	return f.do("login", nil)
}
func (f *fakeExec) Logout(context.Context) error {
	f.loggedIn = false
	return f.do("logout", nil)
}
func (f *fakeExec) NewList(_ context.Context, args []string) error  { return f.do("newlist", args) }
func (f *fakeExec) NewRole(_ context.Context, args []string) error  { return f.do("newrole", args) }
func (f *fakeExec) AddMember(_ context.Context, args []string) error {
	return f.do("addmember", args)
}
func (f *fakeExec) RemoveMember(_ context.Context, args []string) error {
	return f.do("rmmember", args)
}
func (f *fakeExec) AssignRole(_ context.Context, args []string) error { return f.do("assign", args) }
func (f *fakeExec) Invite(_ context.Context, args []string) error     { return f.do("invite", args) }
func (f *fakeExec) Join(_ context.Context, args []string) error       { return f.do("join", args) }
func (f *fakeExec) Check(_ context.Context, args []string) error      { return f.do("check", args) }

func captureOutput(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	orig := printlnFn
	printlnFn = func(a ...any) (int, error) {
		lines = append(lines, strings.TrimSuffix(fmt.Sprintln(a...), "\n"))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return &lines
}

func TestRunREPL_DispatchesCommands(t *testing.T) {
	out := captureOutput(t)

	input := strings.Join([]string{
		"help",
		"login",
		"help",
		"",
		"newlist Weekly groceries",
		"newrole l-1 Editor add_items",
		"addmember l-1 u-2",
		"rmmember l-1 u-2",
		"assign l-1 u-3 r-1",
		"invite l-1 24",
		"join abc",
		"check l-1 add_items",
		"register",
		"logout",
		"foobar",
		"exit",
		"login",
	}, "\n")

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "status" }, bufio.NewScanner(strings.NewReader(input)))

	assert.Equal(t, []string{"login", "newlist", "newrole", "addmember", "rmmember", "assign", "invite", "join", "check", "register", "logout"}, exec.calls)
	assert.Equal(t, []string{"Weekly", "groceries"}, exec.args[1])
	assert.Equal(t, []string{"l-1", "u-3", "r-1"}, exec.args[5])

	assert.Contains(t, *out, "Available commands: register, login, exit")
	assert.Contains(t, *out, "Unknown command: foobar")
	assert.Contains(t, *out, "Bye!")
	assert.Contains(t, *out, "lists (status)> ")
}

func TestRunREPL_PrintsErrorsAndContinues(t *testing.T) {
	out := captureOutput(t)

	exec := &fakeExec{err: status.Error(codes.PermissionDenied, "forbidden")}
	runREPL(context.Background(), exec, func() string { return "" }, bufio.NewScanner(strings.NewReader("rmmember l-1 u-2\njoin x\n")))

	assert.Equal(t, []string{"rmmember", "join"}, exec.calls)
	assert.Contains(t, *out, "Error: forbidden")
}

func TestDescribe(t *testing.T) {
	assert.Equal(t, "boom", describe(errors.New("boom")))
	assert.Equal(t, "usage: join <value>", describe(usageError("join <value>")))
	assert.Equal(t, "not found", describe(status.Error(codes.NotFound, "not found")))

	st, err := status.New(codes.InvalidArgument, "validation failed").WithDetails(&errdetails.BadRequest{
		FieldViolations: []*errdetails.BadRequest_FieldViolation{
			{Field: "username", Description: "duplicate"},
			{Field: "email", Description: "invalid-format"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "validation failed (email: invalid-format, username: duplicate)", describe(st.Err()))
}
