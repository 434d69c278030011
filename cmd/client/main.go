// Command rentco is the command-line client of the Rent&Co API.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/stevans93/rent-and-co-sub001/internal/cli/commands"
	"github.com/stevans93/rent-and-co-sub001/internal/config"
)

var (
	version   = "dev"
	buildDate = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg := config.NewConfig()
	if cfg.Version {
		printVersion(os.Stdout, cfg)
		return 0
	}

	// Ctrl+C отменяет текущий запрос к серверу
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	return commands.Dispatch(ctx, cfg, flag.Args())
}

func printVersion(w io.Writer, cfg *config.Config) {
	fmt.Fprintf(w, "Rent&Co CLI\nVersion: %s\nBuild date: %s\nServer: %s\nCache: %s\n",
		version, buildDate, cfg.ServerURL, cfg.CacheBackend)
}
