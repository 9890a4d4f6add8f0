package main

import (
	"github.com/spf13/cobra"

	"gonotes/internal/db"
	"gonotes/pkg/db/postgres"
)

func newMigrateCmd(envFile *string) *cobra.Command {
	var down bool

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Применить миграции базы данных и выйти",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			cfg, err := setup(ctx, *envFile)
			if err != nil {
				return err
			}

			if down {
				return db.Rollback(ctx, &cfg.Postgres, postgres.DefaultEngine)
			}
			return db.Migrate(ctx, &cfg.Postgres, postgres.DefaultEngine)
		},
	}

	cmd.Flags().BoolVar(&down, "down", false, "откатить все миграции")
	return cmd
}
