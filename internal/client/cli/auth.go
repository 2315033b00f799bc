package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/sharedlists/internal/common"
	pb "github.com/dmitrijs2005/sharedlists/internal/proto"
)

// getSimpleText and getPassword are swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

var errNotLoggedIn = errors.New("not logged in")

// Register prompts for the account fields and creates the account. It does
// not log in.
func (a *App) Register(ctx context.Context) error {
	req := &pb.RegisterRequest{}
	prompts := []struct {
		dst      *string
		prompt   string
		required bool
	}{
		{&req.Username, "Enter username", true},
		{&req.Email, "Enter email", true},
		{&req.FirstName, "Enter first name (optional)", false},
		{&req.LastName, "Enter last name (optional)", false},
	}
	for _, p := range prompts {
		read := getSimpleText
		if p.required {
			read = GetRequiredText
		}
		v, err := read(a.reader, p.prompt, a.out)
		if err != nil {
			return err
		}
		*p.dst = v
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)
	req.Password = string(password)

	ctx, cancel := a.callCtx(ctx)
	defer cancel()

	resp, err := a.backend.Register(ctx, req)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Registered %s (%s)\n", resp.GetUser().GetUsername(), resp.GetUser().GetId())
	return nil
}

// Login prompts for a username or email and a password, and stores the
// returned token pair in the session.
func (a *App) Login(ctx context.Context) error {
	login, err := GetRequiredText(a.reader, "Enter username or email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	ctx, cancel := a.callCtx(ctx)
	defer cancel()

	resp, err := a.backend.Login(ctx, &pb.LoginRequest{Login: login, Password: string(password)})
	if err != nil {
		return err
	}

	a.session.Set(login, resp.GetAccessToken(), resp.GetRefreshToken())
	fmt.Fprintf(a.out, "Logged in as %s\n", login)
	return nil
}

// Logout revokes the refresh token on the server and forgets the session
// either way.
func (a *App) Logout(ctx context.Context) error {
	if !a.isLoggedIn() {
		return errNotLoggedIn
	}
	_, refresh := a.session.Tokens()

	ctx, cancel := a.callCtx(ctx)
	defer cancel()

	_, err := a.backend.Logout(ctx, &pb.LogoutRequest{RefreshToken: refresh})
	a.session.Clear()
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Logged out")
	return nil
}
