// Package report renders summary aggregates for external consumers.
package report

import (
	"encoding/json"
	"fmt"

	"github.com/avoort95/finance-dashboard/internal/logging"
	"github.com/avoort95/finance-dashboard/internal/summary"

	"gopkg.in/yaml.v3"
)

// CategoryLine is one category row in a rendered summary report.
type CategoryLine struct {
	Category string `json:"category" yaml:"category"`
	Total    string `json:"total" yaml:"total"`
}

// SummaryReport is the serializable form of a summary. Amounts are
// rendered with two decimal places, matching the dashboard display.
type SummaryReport struct {
	TotalIncome   string         `json:"total_income" yaml:"total_income"`
	TotalExpenses string         `json:"total_expenses" yaml:"total_expenses"`
	ByCategory    []CategoryLine `json:"by_category" yaml:"by_category"`
}

// Generator renders summary reports in various formats.
type Generator struct {
	logger logging.Logger
}

// NewGenerator creates a new Generator.
func NewGenerator(logger logging.Logger) *Generator {
	return &Generator{logger: logger}
}

// Generate renders a summary in the specified format (json or yaml).
// It returns the report as a byte slice, or an error if the format is
// unsupported.
func (g *Generator) Generate(s summary.Summary, format string) ([]byte, error) {
	report := buildReport(s)

	switch format {
	case "json":
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to marshal JSON report: %w", err)
		}
		return data, nil
	case "yaml":
		data, err := yaml.Marshal(report)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal YAML report: %w", err)
		}
		return data, nil
	default:
		return nil, fmt.Errorf("unsupported report format: %s", format)
	}
}

func buildReport(s summary.Summary) SummaryReport {
	report := SummaryReport{
		TotalIncome:   s.Income.StringFixed(2),
		TotalExpenses: s.Expenses.StringFixed(2),
		ByCategory:    make([]CategoryLine, 0, len(s.ByCategory)),
	}
	for _, ct := range s.ByCategory {
		report.ByCategory = append(report.ByCategory, CategoryLine{
			Category: ct.Category,
			Total:    ct.Total.StringFixed(2),
		})
	}
	return report
}
