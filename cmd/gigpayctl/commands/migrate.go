package commands

import (
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"github.com/GlebRadaev/gigpay/internal/pg"
)

var migrateCommands = []string{"up", "up-by-one", "down", "redo", "reset", "status", "version"}

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:       "migrate [up|up-by-one|down|redo|reset|status|version]",
		Short:     "Apply or inspect database schema migrations",
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: migrateCommands,
		RunE: func(cmd *cobra.Command, args []string) error {
			command := "up"
			if len(args) == 1 {
				command = args[0]
			}

			pool, err := pgxpool.New(cmd.Context(), databaseURI)
			if err != nil {
				return fmt.Errorf("can't build pgx pool: %w", err)
			}
			defer pool.Close()
			if err := pool.Ping(cmd.Context()); err != nil {
				return fmt.Errorf("can't reach database: %w", err)
			}

			if err := pg.RunMigrationCommand(cmd.Context(), pool, command); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "migrate %s: done\n", command)
			return nil
		},
	}
	return cmd
}
