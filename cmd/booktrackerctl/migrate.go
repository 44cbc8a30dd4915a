package main

import (
	"fmt"

	"booktracker-be/internal/database"

	"github.com/spf13/cobra"
)

func newMigrateCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending schema migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Migrations already ran while opening the database
			version, err := database.SchemaVersion(opts.app.db, opts.app.cfg.DatabaseDriver)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Database schema at version %d\n", version)
			return nil
		},
	}
}
