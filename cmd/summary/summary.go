// Package summary handles the aggregate totals command.
package summary

import (
	"fmt"

	"github.com/avoort95/finance-dashboard/cmd/root"
	"github.com/avoort95/finance-dashboard/internal/categorizer"
	"github.com/avoort95/finance-dashboard/internal/normalizer"
	"github.com/avoort95/finance-dashboard/internal/report"
	agg "github.com/avoort95/finance-dashboard/internal/summary"

	"github.com/spf13/cobra"
)

var format string

// Cmd represents the summary command.
var Cmd = &cobra.Command{
	Use:   "summary",
	Short: "Show income, expense and per-category totals for a bank export",
	RunE:  summaryFunc,
}

func init() {
	Cmd.Flags().StringVarP(&format, "format", "f", "text", "Output format (text, json or yaml)")
}

func summaryFunc(cmd *cobra.Command, args []string) error {
	if root.SharedFlags.Input == "" {
		return fmt.Errorf("input file is required (use --input)")
	}

	transactions, err := normalizer.ParseFile(root.SharedFlags.Input, root.Log)
	if err != nil {
		return err
	}
	categorized := categorizer.New(root.Store, root.Log).Categorize(transactions)

	s := agg.Build(categorized)

	if format == "text" {
		fmt.Printf("Total income:   %s\n", s.Income.StringFixed(2))
		fmt.Printf("Total expenses: %s\n", s.Expenses.StringFixed(2))
		fmt.Println("Expenses by category:")
		for _, ct := range s.ByCategory {
			fmt.Printf("  %-20s %s\n", ct.Category, ct.Total.StringFixed(2))
		}
		return nil
	}

	data, err := report.NewGenerator(root.Log).Generate(s, format)
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}
