package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/uptrace/bun/migrate"
	"go.uber.org/zap"

	"github.com/chainsafe/navette/pkg/config"
	"github.com/chainsafe/navette/pkg/migrations/swapdb"
	"github.com/chainsafe/navette/pkg/pgutil"
	mghelper "github.com/chainsafe/navette/pkg/pgutil/migrations"
)

var migrateCmd = &cobra.Command{
	Use:       "migrate <init|up|down|status>",
	Short:     "Run database migrations",
	Long:      "Runs a migration command against the configured database.\n\n" + mghelper.Commands,
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"init", "up", "down", "status"},
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		logger, err := config.NewLogger(cfg.Logging)
		if err != nil {
			return fmt.Errorf("create logger: %w", err)
		}
		defer func() { _ = logger.Sync() }()

		ctx := cmd.Context()
		db, err := pgutil.ConnectDB(ctx, &cfg.Database, logger)
		if err != nil {
			return err
		}
		defer func() { _ = db.Close() }()

		logger.Info("Running migrations",
			zap.String("database", cfg.Database.Database),
			zap.String("command", args[0]))

		migrator := migrate.NewMigrator(db, swapdb.Migrations)
		return mghelper.RunMigrations(ctx, migrator, logger, args[0])
	},
}
