package commands

import (
	"fmt"

	"github.com/SscSPs/visa_portal_backend/internal/cli"
	"github.com/SscSPs/visa_portal_backend/internal/core/services"
	"github.com/SscSPs/visa_portal_backend/internal/platform/database"
	"github.com/SscSPs/visa_portal_backend/internal/repositories/database/pgsql"
	"github.com/spf13/cobra"
)

var flagDisplayCurrency string

// cliViewerID identifies terminal sessions in the summary selection tracker.
const cliViewerID = "cli"

// summaryCmd represents the summary command
var summaryCmd = &cobra.Command{
	Use:   "summary USER_ID",
	Short: "Print a client's payment progress",
	Long: `Print totals, remaining balance and the progress gauge for a client,
converted into the display currency given by --currency.`,
	Args: cobra.ExactArgs(1),
	RunE: runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
	summaryCmd.Flags().StringVarP(&flagDisplayCurrency, "currency", "c", "USD", "Display currency")
}

func runSummary(cmd *cobra.Command, args []string) error {
	if err := requireDatabaseURL(); err != nil {
		return err
	}
	ctx := cmd.Context()

	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, true)
	if err != nil {
		return err
	}
	defer dbPool.Close()

	_, currency, release := newRateServices(ctx)
	defer release()

	repos := pgsql.NewRepositoryProvider(dbPool)
	summarySvc := services.NewSummaryService(repos.PaymentRepo, repos.PaymentPlanRepo, currency, nil, cfg.PaymentsSourceCurrency)

	summary, err := summarySvc.Summarize(ctx, cliViewerID, args[0], flagDisplayCurrency)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(cli.RenderSummary(summary))
	return nil
}
