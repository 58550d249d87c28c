package commands

import (
	"fmt"
	"strconv"

	"github.com/SscSPs/visa_portal_backend/internal/platform/database"
	"github.com/spf13/cobra"
)

// migrateCmd represents the migrate command
var migrateCmd = &cobra.Command{
	Use:       "migrate up|down [steps]",
	Short:     "Apply or roll back database migrations",
	Long:      `Apply every pending migration with "up", or roll back the given number of steps (default 1) with "down".`,
	Args:      cobra.RangeArgs(1, 2),
	ValidArgs: []string{"up", "down"},
	RunE:      runMigrate,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}

func runMigrate(_ *cobra.Command, args []string) error {
	if err := requireDatabaseURL(); err != nil {
		return err
	}

	switch args[0] {
	case "up":
		if len(args) > 1 {
			return fmt.Errorf("migrate up takes no steps argument")
		}
		return database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, logger)
	case "down":
		steps := 1
		if len(args) > 1 {
			n, err := strconv.Atoi(args[1])
			if err != nil || n <= 0 {
				return fmt.Errorf("invalid steps %q: must be a positive integer", args[1])
			}
			steps = n
		}
		return database.RollbackMigrations(cfg.DatabaseURL, cfg.MigrationsPath, steps, logger)
	}
	return fmt.Errorf("unknown direction %q: use up or down", args[0])
}
