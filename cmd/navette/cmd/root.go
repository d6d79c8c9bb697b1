// Package cmd holds the navette command line
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "navette",
	Short: "Swap engine mirroring token deposits from Sepolia to OP Sepolia",
	Long: `navette watches deposits made to the operator on the source chain and,
on request, pays the same amount out on the destination chain once the
deposit has enough confirmations. Without a subcommand it runs the server.`,
	SilenceUsage: true,
	RunE:         runServe,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"path to the yaml configuration file (environment only when empty)")
	rootCmd.AddCommand(serveCmd, migrateCmd)
}
