package cli

import (
	"bufio"
	"context"
	"fmt"
	"sort"
	"strings"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/status"
)

// printlnFn is a test seam for user-facing output.
var printlnFn = fmt.Println

// execIface is the command surface the REPL dispatches to.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	NewList(ctx context.Context, args []string) error
	NewRole(ctx context.Context, args []string) error
	AddMember(ctx context.Context, args []string) error
	RemoveMember(ctx context.Context, args []string) error
	AssignRole(ctx context.Context, args []string) error
	Invite(ctx context.Context, args []string) error
	Join(ctx context.Context, args []string) error
	Check(ctx context.Context, args []string) error
}

// fieldViolations extracts field -> code pairs from an InvalidArgument
// status's BadRequest details.
func fieldViolations(st *status.Status) map[string]string {
	out := map[string]string{}
	for _, d := range st.Details() {
		if br, ok := d.(*errdetails.BadRequest); ok {
			for _, v := range br.GetFieldViolations() {
				out[v.GetField()] = v.GetDescription()
			}
		}
	}
	return out
}

// describe renders err for the user: the status message plus any field
// violations, sorted by field.
func describe(err error) string {
	st, ok := status.FromError(err)
	if !ok {
		return err.Error()
	}

	msg := st.Message()
	violations := fieldViolations(st)
	if len(violations) == 0 {
		return msg
	}

	fields := make([]string, 0, len(violations))
	for f := range violations {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, f+": "+violations[f])
	}
	return msg + " (" + strings.Join(parts, ", ") + ")"
}

// runREPL reads commands from scanner until EOF or exit/quit.
//
//	Not logged in: help, register, login, exit
//	Logged in:     help, newlist, newrole, addmember, rmmember, assign,
//	               invite, join, check, logout, exit
//
// Command errors are printed and the loop continues.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("lists (%s)> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		var err error
		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: newlist, newrole, addmember, rmmember, assign, invite, join, check, logout, exit")
			} else {
				printlnFn("Available commands: register, login, exit")
			}
		case "register":
			err = a.Register(ctx)
		case "login":
			err = a.Login(ctx)
		case "logout":
			err = a.Logout(ctx)
		case "newlist":
			err = a.NewList(ctx, args)
		case "newrole":
			err = a.NewRole(ctx, args)
		case "addmember":
			err = a.AddMember(ctx, args)
		case "rmmember":
			err = a.RemoveMember(ctx, args)
		case "assign":
			err = a.AssignRole(ctx, args)
		case "invite":
			err = a.Invite(ctx, args)
		case "join":
			err = a.Join(ctx, args)
		case "check":
			err = a.Check(ctx, args)
		case "exit", "quit":
			printlnFn("Bye!")
			return
		default:
			printlnFn("Unknown command:", cmd)
		}

		if err != nil {
			printlnFn("Error:", describe(err))
		}
	}
}
