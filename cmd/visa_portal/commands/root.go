package commands

import (
	"log/slog"
	"os"

	"github.com/SscSPs/visa_portal_backend/internal/platform/config"
	"github.com/spf13/cobra"
)

var (
	cfg    *config.Config
	logger *slog.Logger
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "visa_portal",
	Short: "Visa consultancy portal backend",
	Long: `Backend for the visa consultancy client portal.

Serves the portal and admin HTTP API, runs database migrations, and offers
offline helpers to inspect exchange rates, convert amounts and print a
client's payment progress.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger = slog.New(slog.NewJSONHandler(os.Stderr, nil))
		slog.SetDefault(logger)

		loaded, err := config.LoadConfig()
		if err != nil {
			logger.Error("Failed to load config", slog.String("error", err.Error()))
			return err
		}
		cfg = loaded
		return nil
	},
}

// Execute adds all child commands to the root command and runs it.
// This is called by main.main().
func Execute() error {
	return rootCmd.Execute()
}
