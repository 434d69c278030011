package commands

import (
	"context"
	"fmt"

	"github.com/stevans93/rent-and-co-sub001/internal/cli/state"
	"github.com/stevans93/rent-and-co-sub001/internal/dto"
)

type loginCmd struct{}

func (loginCmd) Name() string        { return "login" }
func (loginCmd) Description() string { return "Sign in and store the session token" }
func (loginCmd) Usage() string       { return "login <email> <password>" }

func (loginCmd) Run(ctx context.Context, app *state.App, args []string) error {
	if len(args) != 2 {
		return ErrUsage
	}
	u, err := app.Login(ctx, dto.LoginRequest{Email: args[0], Password: args[1]})
	if err != nil {
		return err
	}
	fmt.Fprintf(Out, "Logged in as %s %s\n", u.FirstName, u.LastName)
	return nil
}

type logoutCmd struct{}

func (logoutCmd) Name() string        { return "logout" }
func (logoutCmd) Description() string { return "Forget the session and per-user cache" }
func (logoutCmd) Usage() string       { return "logout" }

func (logoutCmd) Run(ctx context.Context, app *state.App, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	if err := app.Logout(ctx); err != nil {
		return err
	}
	fmt.Fprintln(Out, "Logged out")
	return nil
}

func init() {
	RegisterCmd(loginCmd{})
	RegisterCmd(logoutCmd{})
}
