package main

import (
	"booktracker-be/internal/config"
	"booktracker-be/internal/logger"

	"github.com/spf13/cobra"
)

type rootOptions struct {
	driver      string
	databaseURL string
	app         *app
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:          "booktrackerctl",
		Short:        "Administer the Book Tracker database",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "help" {
				return nil
			}
			cfg := config.Load()
			if opts.driver != "" {
				cfg.DatabaseDriver = opts.driver
			}
			if opts.databaseURL != "" {
				cfg.DatabaseURL = opts.databaseURL
			}

			a, err := openApp(cfg, logger.New(cfg.LogLevel, cmd.ErrOrStderr()))
			if err != nil {
				return err
			}
			opts.app = a
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if opts.app == nil {
				return nil
			}
			return opts.app.Close()
		},
	}

	cmd.CompletionOptions.DisableDefaultCmd = true
	cmd.PersistentFlags().StringVar(&opts.driver, "driver", "", "database driver (postgres or sqlite3), overrides DATABASE_DRIVER")
	cmd.PersistentFlags().StringVar(&opts.databaseURL, "database-url", "", "database URL or sqlite path, overrides DATABASE_URL")

	cmd.AddCommand(
		newMigrateCmd(opts),
		newCatalogCmd(opts),
		newUserCmd(opts),
	)

	return cmd
}
