package commands

import (
	"context"
	"fmt"

	"github.com/stevans93/rent-and-co-sub001/internal/cli/cache"
	"github.com/stevans93/rent-and-co-sub001/internal/cli/fetch"
	"github.com/stevans93/rent-and-co-sub001/internal/cli/state"
	"github.com/stevans93/rent-and-co-sub001/internal/dto"
)

type registerCmd struct{}

func (registerCmd) Name() string        { return "register" }
func (registerCmd) Description() string { return "Create an account and sign in" }
func (registerCmd) Usage() string {
	return "register <firstName> <lastName> <email> <password>"
}

func (registerCmd) Run(ctx context.Context, app *state.App, args []string) error {
	if len(args) != 4 {
		return ErrUsage
	}
	u, err := app.Register(ctx, dto.RegisterRequest{
		FirstName: args[0],
		LastName:  args[1],
		Email:     args[2],
		Password:  args[3],
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(Out, "Registered %s\n", u.Email)
	return nil
}

type meCmd struct{}

func (meCmd) Name() string        { return "me" }
func (meCmd) Description() string { return "Show the signed-in user" }
func (meCmd) Usage() string       { return "me" }

func (meCmd) Run(ctx context.Context, app *state.App, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	if err := requireSession(app); err != nil {
		return err
	}
	u, err := load(ctx, app, fetch.Options{Key: state.KeyMe + "profile", TTL: cache.Short}, app.API.Me)
	if err != nil {
		return err
	}
	if err := app.Session.SetUser(u); err != nil {
		return err
	}
	printUser(u)
	return nil
}

func init() {
	RegisterCmd(registerCmd{})
	RegisterCmd(meCmd{})
}
