package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/stevans93/rent-and-co-sub001/internal/cli/api"
	"github.com/stevans93/rent-and-co-sub001/internal/cli/bootstrap"
	"github.com/stevans93/rent-and-co-sub001/internal/config"
)

// OpenApp builds the application for a command run; overridden in tests.
var OpenApp = bootstrap.OpenApp

// Dispatch is the single entry point to execute CLI commands.
// It prints help and usage messages and returns a process exit code.
func Dispatch(ctx context.Context, cfg *config.Config, args []string) int {
	// If user passed global --help after flags parsing, show global usage
	for _, a := range os.Args[1:] {
		if a == "--help" || a == "-h" {
			fmt.Fprint(Out, FormatGlobalUsage())
			return 0
		}
	}

	if !flag.Parsed() {
		flag.Parse()
	}

	if len(args) == 0 {
		fmt.Fprint(Out, FormatGlobalUsage())
		return 2
	}

	name := strings.ToLower(args[0])
	if name == "help" { // rentco help [command]
		if len(args) == 1 {
			fmt.Fprint(Out, FormatGlobalUsage())
			return 0
		}
		if c, ok := Get(args[1]); ok {
			fmt.Fprintf(Out, "Usage: %s\n", c.Usage())
			return 0
		}
		fmt.Fprintf(Out, "Unknown command: %s\n\n", args[1])
		fmt.Fprint(Out, FormatGlobalUsage())
		return 2
	}

	c, ok := Get(name)
	if !ok {
		fmt.Fprintf(Out, "Unknown command: %s\n\n", name)
		fmt.Fprint(Out, FormatGlobalUsage())
		return 2
	}

	app, err := OpenApp(ctx, cfg)
	if err != nil {
		fmt.Fprintf(Out, "%s error: %v\n", name, err)
		return 1
	}
	err = c.Run(ctx, app, args[1:])
	if cerr := app.Close(); cerr != nil && err == nil {
		err = cerr
	}

	switch {
	case err == nil:
		return 0
	case errors.Is(err, ErrUsage):
		fmt.Fprintf(Out, "Usage: %s\n", c.Usage())
		return 2
	default:
		fmt.Fprintf(Out, "%s error: %v\n", name, err)
		var apiErr *api.Error
		if errors.As(err, &apiErr) {
			for _, f := range apiErr.Fields {
				fmt.Fprintf(Out, "  %s: %s\n", f.Field, f.Message)
			}
		}
		return 1
	}
}
