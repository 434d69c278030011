package commands

import (
	"context"
	"fmt"

	"github.com/stevans93/rent-and-co-sub001/internal/cli/state"
)

type langCmd struct{}

func (langCmd) Name() string        { return "lang" }
func (langCmd) Description() string { return "Show or set the interface language" }
func (langCmd) Usage() string       { return "lang [sr|en]" }

func (langCmd) Run(_ context.Context, app *state.App, args []string) error {
	switch len(args) {
	case 0:
		fmt.Fprintln(Out, app.Preferences.Language())
		return nil
	case 1:
		if err := app.SetLanguage(args[0]); err != nil {
			return err
		}
		fmt.Fprintf(Out, "Language set to %s\n", args[0])
		return nil
	default:
		return ErrUsage
	}
}

type themeCmd struct{}

func (themeCmd) Name() string        { return "theme" }
func (themeCmd) Description() string { return "Show or set the color theme" }
func (themeCmd) Usage() string       { return "theme [light|dark]" }

func (themeCmd) Run(_ context.Context, app *state.App, args []string) error {
	switch len(args) {
	case 0:
		fmt.Fprintln(Out, app.Preferences.Theme())
		return nil
	case 1:
		if err := app.Preferences.SetTheme(args[0]); err != nil {
			return err
		}
		fmt.Fprintf(Out, "Theme set to %s\n", args[0])
		return nil
	default:
		return ErrUsage
	}
}

type cacheClearCmd struct{}

func (cacheClearCmd) Name() string        { return "cache-clear" }
func (cacheClearCmd) Description() string { return "Drop cached responses, optionally by key prefix" }
func (cacheClearCmd) Usage() string       { return "cache-clear [prefix]" }

func (cacheClearCmd) Run(ctx context.Context, app *state.App, args []string) error {
	switch len(args) {
	case 0:
		if err := app.Cache.Clear(ctx); err != nil {
			return err
		}
		fmt.Fprintln(Out, "Cache cleared")
		return nil
	case 1:
		n, err := app.Cache.Invalidate(ctx, args[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(Out, "Removed %d cached entries\n", n)
		return nil
	default:
		return ErrUsage
	}
}

func init() {
	RegisterCmd(langCmd{})
	RegisterCmd(themeCmd{})
	RegisterCmd(cacheClearCmd{})
}
