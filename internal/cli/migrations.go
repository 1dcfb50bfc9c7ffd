package cli

import (
	"database/sql"
	"fmt"

	"github.com/fadedpez/highcard/internal/types"
	"github.com/fadedpez/highcard/pkg/db/migrations"
	_ "github.com/mattn/go-sqlite3"
	"github.com/spf13/cobra"
)

func newMigrationsCmd(opts *rootOptions) *cobra.Command {
	var apply bool

	cmd := &cobra.Command{
		Use:   "migrations",
		Short: "List the schema migrations of the match history database",
		Long: `List the schema migrations built into highcard. With --apply they are run
against a scratch in-memory database and each is reported as applied.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := sql.Open("sqlite3", ":memory:")
			if err != nil {
				return types.WrapError(types.ErrDatabaseError, "error opening database", err)
			}
			defer db.Close()
			db.SetMaxOpenConns(1)

			migrator := migrations.NewEmbeddedMigrator(db)
			list, err := migrator.LoadMigrations()
			if err != nil {
				return types.WrapError(types.ErrDatabaseError, "error loading migrations", err)
			}

			applied := map[string]bool{}
			if apply {
				if err := migrator.MigrateUp(); err != nil {
					return types.WrapError(types.ErrDatabaseError, "error applying migrations", err)
				}
				if applied, err = migrator.GetAppliedMigrations(); err != nil {
					return types.WrapError(types.ErrDatabaseError, "error reading applied migrations", err)
				}
			}

			out := cmd.OutOrStdout()
			for _, m := range list {
				status := "pending"
				if applied[m.Version] {
					status = "applied"
				}
				fmt.Fprintf(out, "%s  %-30s %s\n", m.Version, m.Description, status)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&apply, "apply", false, "Apply the migrations to a scratch database")

	return cmd
}
