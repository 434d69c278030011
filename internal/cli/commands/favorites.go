package commands

import (
	"context"
	"fmt"

	"github.com/stevans93/rent-and-co-sub001/internal/cli/cache"
	"github.com/stevans93/rent-and-co-sub001/internal/cli/fetch"
	"github.com/stevans93/rent-and-co-sub001/internal/cli/state"
	"github.com/stevans93/rent-and-co-sub001/internal/dto"
)

const favoritesKey = state.KeyFavorites + "list"

type favoritesCmd struct{}

func (favoritesCmd) Name() string        { return "favorites" }
func (favoritesCmd) Description() string { return "List your favorite listings" }
func (favoritesCmd) Usage() string       { return "favorites" }

func (favoritesCmd) Run(ctx context.Context, app *state.App, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	if err := requireSession(app); err != nil {
		return err
	}
	items, err := load(ctx, app, fetch.Options{Key: favoritesKey, TTL: cache.Short}, app.API.Favorites)
	if err != nil {
		return err
	}
	ids := make([]string, 0, len(items))
	for _, r := range items {
		ids = append(ids, r.ID)
	}
	app.Favorites.Replace(ids)
	if len(items) == 0 {
		fmt.Fprintln(Out, "No favorites yet")
		return nil
	}
	printResources(items, app.Favorites)
	return nil
}

type favCmd struct{}

func (favCmd) Name() string        { return "fav" }
func (favCmd) Description() string { return "Toggle a listing in favorites" }
func (favCmd) Usage() string       { return "fav <resourceId>" }

func (favCmd) Run(ctx context.Context, app *state.App, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	if err := requireSession(app); err != nil {
		return err
	}
	on, err := app.Favorites.Toggle(ctx, args[0])
	if err != nil {
		return err
	}
	if _, err := app.Cache.Invalidate(ctx, state.KeyFavorites); err != nil {
		return err
	}
	if on {
		fmt.Fprintf(Out, "Added %s to favorites\n", args[0])
	} else {
		fmt.Fprintf(Out, "Removed %s from favorites\n", args[0])
	}
	return nil
}

type inquireCmd struct{}

func (inquireCmd) Name() string        { return "inquire" }
func (inquireCmd) Description() string { return "Send an inquiry about a listing" }
func (inquireCmd) Usage() string {
	return "inquire <resourceId> --message text [--first n] [--last n] [--phone p] [--email e]"
}

func (inquireCmd) Run(ctx context.Context, app *state.App, args []string) error {
	if len(args) < 1 {
		return ErrUsage
	}
	req := dto.InquiryRequest{ResourceID: args[0]}
	// контактные данные по умолчанию берутся из профиля
	if u := app.Session.User(); u != nil {
		req.FirstName, req.LastName, req.Email, req.Phone = u.FirstName, u.LastName, u.Email, u.Phone
	}
	fs := newFlagSet("inquire")
	fs.StringVar(&req.FirstName, "first", req.FirstName, "")
	fs.StringVar(&req.LastName, "last", req.LastName, "")
	fs.StringVar(&req.Phone, "phone", req.Phone, "")
	fs.StringVar(&req.Email, "email", req.Email, "")
	fs.StringVar(&req.Message, "message", "", "")
	if err := fs.Parse(args[1:]); err != nil || fs.NArg() > 0 {
		return ErrUsage
	}
	inq, err := app.API.CreateInquiry(ctx, req)
	if err != nil {
		return err
	}
	fmt.Fprintf(Out, "Inquiry %s sent\n", inq.ID)
	return nil
}

type inquiriesCmd struct{}

func (inquiriesCmd) Name() string        { return "inquiries" }
func (inquiriesCmd) Description() string { return "List inquiries for your listings, or mark one" }
func (inquiriesCmd) Usage() string {
	return "inquiries [--status new|read|responded] [--resource id] | inquiries mark <id> <status>"
}

func (inquiriesCmd) Run(ctx context.Context, app *state.App, args []string) error {
	if err := requireSession(app); err != nil {
		return err
	}
	if len(args) > 0 && args[0] == "mark" {
		if len(args) != 3 {
			return ErrUsage
		}
		inq, err := app.API.UpdateInquiryStatus(ctx, args[1], args[2])
		if err != nil {
			return err
		}
		fmt.Fprintf(Out, "Inquiry %s is now %s\n", inq.ID, inq.Status)
		return nil
	}

	fs := newFlagSet("inquiries")
	status := fs.String("status", "", "")
	resourceID := fs.String("resource", "", "")
	if err := fs.Parse(args); err != nil || fs.NArg() > 0 {
		return ErrUsage
	}
	items, err := app.API.Inquiries(ctx, *status, *resourceID)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		fmt.Fprintln(Out, "No inquiries")
		return nil
	}
	tw := table()
	fmt.Fprintln(tw, "ID\tRESOURCE\tFROM\tEMAIL\tSTATUS\tRECEIVED")
	for _, q := range items {
		fmt.Fprintf(tw, "%s\t%s\t%s %s\t%s\t%s\t%s\n",
			q.ID, q.ResourceID, q.FirstName, q.LastName, q.Email, q.Status, q.CreatedAt.Format("2006-01-02 15:04"))
	}
	return tw.Flush()
}

func init() {
	RegisterCmd(favoritesCmd{})
	RegisterCmd(favCmd{})
	RegisterCmd(inquireCmd{})
	RegisterCmd(inquiriesCmd{})
}
