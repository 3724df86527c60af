// Package summary provides read-only aggregate queries over
// categorized transaction lists.
package summary

import (
	"sort"

	"github.com/avoort95/finance-dashboard/internal/models"

	"github.com/shopspring/decimal"
)

// CategoryTotal is the summed amount for one category.
type CategoryTotal struct {
	Category string
	Total    decimal.Decimal
}

// Summary aggregates a categorized transaction list by direction and
// by category.
//
// Income is the debit total and Expenses the credit total, following
// the export's sign convention for transaction types.
type Summary struct {
	Income     decimal.Decimal
	Expenses   decimal.Decimal
	ByCategory []CategoryTotal
}

// Build computes the aggregate totals for a categorized transaction list.
func Build(transactions []models.Transaction) Summary {
	s := Summary{
		Income:     decimal.Zero,
		Expenses:   decimal.Zero,
		ByCategory: TotalsByCategory(transactions),
	}
	for _, tx := range transactions {
		if tx.IsDebit() {
			s.Income = s.Income.Add(tx.Amount)
		} else {
			s.Expenses = s.Expenses.Add(tx.Amount)
		}
	}
	return s
}

// TotalsByDirection sums transaction amounts grouped by direction.
func TotalsByDirection(transactions []models.Transaction) map[string]decimal.Decimal {
	totals := map[string]decimal.Decimal{
		models.TypeDebit:  decimal.Zero,
		models.TypeCredit: decimal.Zero,
	}
	for _, tx := range transactions {
		totals[tx.Type] = totals[tx.Type].Add(tx.Amount)
	}
	return totals
}

// TotalsByCategory sums transaction amounts grouped by category,
// sorted by descending total. Ties are broken by category name to keep
// the output deterministic.
func TotalsByCategory(transactions []models.Transaction) []CategoryTotal {
	totals := make(map[string]decimal.Decimal)
	for _, tx := range transactions {
		totals[tx.Category] = totals[tx.Category].Add(tx.Amount)
	}

	result := make([]CategoryTotal, 0, len(totals))
	for category, total := range totals {
		result = append(result, CategoryTotal{Category: category, Total: total})
	}
	sort.Slice(result, func(i, j int) bool {
		if !result[i].Total.Equal(result[j].Total) {
			return result[i].Total.GreaterThan(result[j].Total)
		}
		return result[i].Category < result[j].Category
	})
	return result
}
