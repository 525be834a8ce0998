package commands

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"admin_backend/internal/database"
)

// MigrateCommand creates the admin tables on a Postgres connection.
func MigrateCommand() *cli.Command {
	return &cli.Command{
		Name:      "migrate",
		Usage:     "Create the roles, permissions and menu tables",
		ArgsUsage: "[connection]",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "create-database", Usage: "create the database when missing"},
		},
		Action: func(c *cli.Context) error {
			cfg, err := loadConfig(c)
			if err != nil {
				return err
			}
			dsn, err := resolveConnection(cfg, c.Args().Get(0))
			if err != nil {
				return err
			}

			if c.Bool("create-database") {
				if err := database.EnsureDatabaseExists(dsn); err != nil {
					return err
				}
			}
			pool, err := database.Connect(dsn)
			if err != nil {
				return err
			}
			defer database.Close()

			if err := database.RunMigrations(pool); err != nil {
				return err
			}
			fmt.Fprintln(c.App.Writer, "Migrations completed.")
			return nil
		},
	}
}
