package commands

import (
	"fmt"

	"github.com/SscSPs/visa_portal_backend/internal/cli"
	"github.com/SscSPs/visa_portal_backend/internal/core/domain"
	"github.com/spf13/cobra"
)

// ratesCmd represents the rates command
var ratesCmd = &cobra.Command{
	Use:   "rates [BASE]",
	Short: "Show the exchange-rate table for a base currency",
	Long: `Show the exchange-rate table for BASE (default USD). Rates come from the
configured cache when fresh and from the rate provider otherwise. When the
provider is unreachable the built-in fallback table is shown.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRates,
}

func init() {
	rootCmd.AddCommand(ratesCmd)
}

func runRates(cmd *cobra.Command, args []string) error {
	base := domain.DefaultBaseCurrency
	if len(args) == 1 {
		base = args[0]
	}

	rates, _, release := newRateServices(cmd.Context())
	defer release()

	set := rates.FetchExchangeRates(cmd.Context(), base)
	fmt.Println()
	fmt.Println(cli.RenderRates(set))
	return nil
}
