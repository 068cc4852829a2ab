// Package main is the thesisindex entry point. It wires the go-billy backed
// adapters into the core services and hands control to the CLI.
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/go-git/go-billy/v5/osfs"

	"github.com/custodia-labs/thesisindex/internal/adapters/driven/config/file"
	"github.com/custodia-labs/thesisindex/internal/adapters/driven/filesystem"
	"github.com/custodia-labs/thesisindex/internal/adapters/driven/index/jsonfile"
	"github.com/custodia-labs/thesisindex/internal/adapters/driving/cli"
	"github.com/custodia-labs/thesisindex/internal/core/ports/driving"
	"github.com/custodia-labs/thesisindex/internal/core/services"
)

// version is set at build time via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	root := osfs.New("/")
	cli.SetVersion(version)
	cli.SetServices(
		services.NewIndexService(filesystem.NewScanner(root), jsonfile.NewStore(root)),
		func(configDir string) (driving.SettingsService, error) {
			store, err := file.NewConfigStore(configDir)
			if err != nil {
				return nil, err
			}
			return services.NewSettingsService(store), nil
		},
	)

	if err := cli.Execute(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
