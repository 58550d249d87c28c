package commands

import (
	"fmt"

	"github.com/SscSPs/visa_portal_backend/internal/cli"
	"github.com/SscSPs/visa_portal_backend/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

// convertCmd represents the convert command
var convertCmd = &cobra.Command{
	Use:     "convert AMOUNT FROM TO",
	Short:   "Convert an amount between currencies",
	Example: "  visa_portal convert 1500 USD INR",
	Args:    cobra.ExactArgs(3),
	RunE:    runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	amount, err := decimal.NewFromString(args[0])
	if err != nil {
		return fmt.Errorf("invalid amount %q", args[0])
	}
	from, err := dto.NormalizeCurrencyCode(args[1])
	if err != nil {
		return err
	}
	to, err := dto.NormalizeCurrencyCode(args[2])
	if err != nil {
		return err
	}

	_, currency, release := newRateServices(cmd.Context())
	defer release()

	converted := currency.Convert(cmd.Context(), amount, from, to)
	fmt.Println(cli.RenderConversion(amount, from, converted, to))
	return nil
}
