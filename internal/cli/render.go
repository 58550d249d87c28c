// Package cli renders rate tables, conversions and payment summaries for the terminal.
package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/SscSPs/visa_portal_backend/internal/core/domain"
	"github.com/SscSPs/visa_portal_backend/internal/utils"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"
)

// Theme colors
var (
	ColorBorder    = lipgloss.Color("#282726")
	ColorTextMuted = lipgloss.Color("#6F6E69")
	ColorText      = lipgloss.Color("#FFFCF0")
	ColorAccent    = lipgloss.Color("#3AA99F")
	ColorGreen     = lipgloss.Color("#879A39")
	ColorBlue      = lipgloss.Color("#4385BE")
	ColorYellow    = lipgloss.Color("#D0A215")
	ColorOrange    = lipgloss.Color("#DA702C")
	ColorRed       = lipgloss.Color("#D14D41")
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorText).
			Align(lipgloss.Center)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorAccent)

	labelStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)

	valueStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	warnStyle = lipgloss.NewStyle().
			Foreground(ColorOrange)
)

// GaugeWidth is the number of cells in a progress gauge.
const GaugeWidth = 30

// BandColor returns the gauge colour for a progress band.
func BandColor(band domain.ProgressBand) lipgloss.Color {
	switch band {
	case domain.BandComplete:
		return ColorGreen
	case domain.BandOnTrack:
		return ColorBlue
	case domain.BandHalfway:
		return ColorYellow
	case domain.BandStarted:
		return ColorOrange
	}
	return ColorRed
}

// RenderTitle renders a centered title bar in a bordered box.
func RenderTitle(title string) string {
	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Width(50).
		Align(lipgloss.Center).
		Padding(0, 1)

	return border.Render(titleStyle.Render(title))
}

// RenderGauge draws a bar of width cells filled to pct, which must already
// be clamped to [0, 100].
func RenderGauge(pct decimal.Decimal, band domain.ProgressBand, width int) string {
	if width <= 0 {
		width = GaugeWidth
	}
	filled := int(pct.Mul(decimal.NewFromInt(int64(width))).Div(decimal.NewFromInt(100)).IntPart())
	filled = max(0, min(width, filled))

	bar := lipgloss.NewStyle().Foreground(BandColor(band)).Render(strings.Repeat("█", filled))
	rest := labelStyle.Render(strings.Repeat("░", width-filled))
	return fmt.Sprintf("%s%s %s%%", bar, rest, pct.StringFixed(1))
}

// RenderSummary renders totals, the progress gauge and the payment history.
func RenderSummary(s *domain.PaymentSummary) string {
	money := func(d decimal.Decimal) string { return utils.FormatMoney(d, s.DisplayCurrency) }

	var b strings.Builder
	b.WriteString(RenderTitle(fmt.Sprintf("PAYMENTS  %s", s.DisplayCurrency)))
	b.WriteString("\n\n")

	rows := [][2]string{
		{"Total paid", money(s.Totals.TotalPaid)},
		{"Total due", money(s.Totals.TotalDue)},
	}
	if s.Totals.HasPlan {
		rows = append(rows, [2]string{"Plan total", money(s.Totals.PlanTotal)})
	}
	rows = append(rows,
		[2]string{"Remaining", money(s.Totals.Remaining)},
		[2]string{"Completed", fmt.Sprintf("%d", s.CompletedCount)},
	)
	for _, r := range rows {
		fmt.Fprintf(&b, "  %s %s\n", labelStyle.Render(fmt.Sprintf("%-12s", r[0])), valueStyle.Render(r[1]))
	}

	b.WriteString("\n  ")
	b.WriteString(RenderGauge(s.GaugePercentage, s.Band, GaugeWidth))
	b.WriteString("  ")
	b.WriteString(lipgloss.NewStyle().Foreground(BandColor(s.Band)).Render(string(s.Band)))
	b.WriteString("\n")

	if s.MixedCurrencies {
		b.WriteString("\n  ")
		b.WriteString(warnStyle.Render(fmt.Sprintf("Totals assume payments were recorded in %s", s.SourceCurrency)))
		b.WriteString("\n")
	}

	if len(s.Payments) > 0 {
		b.WriteString("\n  ")
		b.WriteString(headerStyle.Render("History"))
		b.WriteString("\n")
		for _, p := range s.Payments {
			fmt.Fprintf(&b, "  %s  %-10s %14s  %s\n",
				p.PaymentDate.Format("2006-01-02"),
				p.Status,
				money(p.DisplayAmount),
				labelStyle.Render(p.Description),
			)
		}
	}
	return b.String()
}

// RenderRates renders a rate table sorted by currency code.
func RenderRates(set domain.ExchangeRateSet) string {
	var b strings.Builder
	title := fmt.Sprintf("RATES  1 %s", set.Base)
	if set.Fallback {
		title += "  (offline)"
	}
	b.WriteString(RenderTitle(title))
	b.WriteString("\n")

	codes := make([]string, 0, len(set.Rates))
	for code := range set.Rates {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	for _, code := range codes {
		fmt.Fprintf(&b, "  %s %s\n", labelStyle.Render(code), valueStyle.Render(set.Rates[code].String()))
	}
	if !set.FetchedAt.IsZero() {
		fmt.Fprintf(&b, "\n  %s\n", labelStyle.Render("fetched "+set.FetchedAt.Format("2006-01-02 15:04 MST")))
	}
	return b.String()
}

// RenderConversion renders a single conversion line.
func RenderConversion(amount decimal.Decimal, from string, converted decimal.Decimal, to string) string {
	return fmt.Sprintf("  %s %s %s",
		valueStyle.Render(utils.FormatMoney(amount, from)),
		labelStyle.Render("="),
		headerStyle.Render(utils.FormatMoney(converted, to)),
	)
}
