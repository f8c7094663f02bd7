package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"brrrr-calculator/domain"
	"brrrr-calculator/sheet"
)

var generateCmd = &cobra.Command{
	Use:   "generate [layout...]",
	Short: "Write spreadsheet layouts (all of them by default)",
	Long: `Writes the named layouts into the output directory, overwriting files
from earlier runs. Run "brrrr-calculator layouts" for the names.`,
	RunE: runGenerate,
}

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Print the computed deal metrics",
	Args:  cobra.NoArgs,
	RunE:  runMetrics,
}

var strategiesCmd = &cobra.Command{
	Use:   "strategies",
	Short: "Print the strategy comparison",
	Args:  cobra.NoArgs,
	RunE:  runStrategies,
}

var layoutsCmd = &cobra.Command{
	Use:   "layouts",
	Short: "List the available spreadsheet layouts",
	Args:  cobra.NoArgs,
	RunE:  runLayouts,
}

func runGenerate(cmd *cobra.Command, args []string) error {
	reports, closeCache := newReportService()
	defer closeCache()

	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	if len(args) == 0 {
		generated, err := reports.GenerateAll(ctx)
		for _, g := range generated {
			fmt.Fprintf(out, "BRRRR Property Calculator has been created: %s\n", g.Path)
		}
		return err
	}

	for _, name := range args {
		g, err := reports.Generate(ctx, name)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "BRRRR Property Calculator has been created: %s\n", g.Path)
	}
	return nil
}

func runMetrics(cmd *cobra.Command, args []string) error {
	reports, closeCache := newReportService()
	defer closeCache()

	report, err := reports.BuildReport(cmd.Context())
	if err != nil {
		return err
	}
	if jsonOut {
		return writeJSON(cmd.OutOrStdout(), report.Metrics)
	}
	return printMetrics(cmd.OutOrStdout(), report.Property, report.Metrics)
}

func runStrategies(cmd *cobra.Command, args []string) error {
	reports, closeCache := newReportService()
	defer closeCache()

	report, err := reports.BuildReport(cmd.Context())
	if err != nil {
		return err
	}
	if jsonOut {
		return writeJSON(cmd.OutOrStdout(), report.Strategies)
	}
	return printStrategies(cmd.OutOrStdout(), report.Strategies)
}

func runLayouts(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tFILE\tDESCRIPTION")
	for _, l := range sheet.Layouts() {
		fmt.Fprintf(w, "%s\t%s\t%s\n", l.Name, l.FileName, l.Description)
	}
	return w.Flush()
}

func writeJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printMetrics(out io.Writer, p domain.PropertyInput, m domain.Metrics) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Address\t%s\n", p.Address)
	rows := []struct {
		label string
		value decimal.Decimal
	}{
		{"Purchase Price", m.PurchasePrice},
		{"Down Payment", m.DownPayment},
		{"Mortgage Amount", m.MortgageAmount},
		{"Monthly Mortgage Payment", m.MonthlyPayment},
		{"Carrying Cost", m.CarryingCost},
		{"Closing Cost", m.ClosingCost},
		{"Renovation Cost", m.RenovationCost},
		{"Total Cost", m.TotalCost},
		{"Rental Income", m.RentalIncome},
		{"Total Expenses", m.TotalExpenses},
		{"Monthly Cashflow", m.MonthlyCashflow},
		{"Cash Pulled Out", m.CashPulledOut},
		{"ROI (%)", m.ROI},
		{"Upfront Investment", m.UpfrontInvestment},
		{"Money Left in Property", m.MoneyLeftInProperty},
		{"Leverage (%)", m.Leverage},
		{"Refinance Monthly Payment", m.RefinanceMonthlyPayment},
		{"Mortgage Paydown", m.MortgagePaydown},
		{"Equity", m.Equity},
	}
	for _, r := range rows {
		fmt.Fprintf(w, "%s\t%s\n", r.label, r.value.StringFixed(2))
	}
	return w.Flush()
}

func printStrategies(out io.Writer, results []domain.StrategyResult) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "STRATEGY\tCASH FLOW\tROI (%)\tGROSS YIELD (%)\tNET YIELD (%)\tEQUITY GAIN")
	for _, r := range results {
		gain := "-"
		if r.Metrics.EquityGain != nil {
			gain = r.Metrics.EquityGain.StringFixed(2)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			r.Strategy.Name(),
			r.Metrics.MonthlyCashFlow.StringFixed(2),
			r.Metrics.ROI.StringFixed(2),
			r.Metrics.GrossYield.StringFixed(2),
			r.Metrics.NetYield.StringFixed(2),
			gain,
		)
	}
	return w.Flush()
}
