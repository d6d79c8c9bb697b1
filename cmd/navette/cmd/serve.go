package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chainsafe/navette/pkg/app"
	"github.com/chainsafe/navette/pkg/app/navette"
	"github.com/chainsafe/navette/pkg/config"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the swap HTTP server, deposit watcher and reconciler",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	var runner app.Runner = navette.NewServer(cfg)
	return runner.Run()
}
