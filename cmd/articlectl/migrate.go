package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"remediation-portal/internal/infrastructure/database"
)

func newMigrateCmd() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply or roll back schema migrations",
		Long: `Apply or roll back schema migrations.

  up      - apply every pending migration
  down    - roll back the most recent migration
  version - print the current schema version`,
	}
	cmd.PersistentFlags().StringVar(&dir, "dir", "", "migrations directory (defaults to MIGRATIONS_DIR)")

	for _, direction := range []database.Direction{database.Up, database.Down} {
		cmd.AddCommand(&cobra.Command{
			Use:   string(direction),
			Short: fmt.Sprintf("Migrate the schema %s", direction),
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				cfg, err := loadConfig()
				if err != nil {
					return err
				}
				if dir == "" {
					dir = cfg.MigrationsDir
				}
				if err := database.Migrate(cfg.Database().URL(), dir, direction); err != nil {
					return err
				}
				return printVersion(cmd, cfg.Database().URL(), dir)
			},
		})
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the current schema version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if dir == "" {
				dir = cfg.MigrationsDir
			}
			return printVersion(cmd, cfg.Database().URL(), dir)
		},
	})

	return cmd
}

func printVersion(cmd *cobra.Command, dbURL, dir string) error {
	version, dirty, err := database.Version(dbURL, dir)
	if err != nil {
		return err
	}
	state := "clean"
	if dirty {
		state = "dirty"
	}
	fmt.Fprintf(cmd.OutOrStdout(), "schema version %d (%s)\n", version, state)
	return nil
}
