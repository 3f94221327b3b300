package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/idelchi/gogen/pkg/cobraext"
	"github.com/idelchi/inflate/internal/commands"
	"github.com/idelchi/inflate/internal/config"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "unknown - unofficial & generated by unknown"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	root := commands.NewRootCommand(&config.Config{}, version)

	err := root.ExecuteContext(ctx)

	stop()

	switch {
	case errors.Is(err, cobraext.ErrExitGracefully):
	case err != nil:
		fmt.Fprintln(os.Stderr, err)

		os.Exit(1)
	}
}
