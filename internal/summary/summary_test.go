package summary

import (
	"testing"

	"github.com/avoort95/finance-dashboard/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func amount(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func testTransactions() []models.Transaction {
	return []models.Transaction{
		{ID: 1, Type: models.TypeDebit, Amount: amount("2500.00"), Category: "Salary"},
		{ID: 2, Type: models.TypeCredit, Amount: amount("45.50"), Category: "Groceries"},
		{ID: 3, Type: models.TypeCredit, Amount: amount("900.00"), Category: "Rent"},
		{ID: 4, Type: models.TypeCredit, Amount: amount("12.00"), Category: "Groceries"},
	}
}

func TestTotalsByDirection(t *testing.T) {
	totals := TotalsByDirection(testTransactions())

	assert.True(t, totals[models.TypeDebit].Equal(amount("2500.00")))
	assert.True(t, totals[models.TypeCredit].Equal(amount("957.50")))
}

func TestTotalsByDirection_Empty(t *testing.T) {
	totals := TotalsByDirection(nil)

	assert.True(t, totals[models.TypeDebit].IsZero())
	assert.True(t, totals[models.TypeCredit].IsZero())
}

func TestTotalsByCategory_SortedDescending(t *testing.T) {
	totals := TotalsByCategory(testTransactions())

	require.Len(t, totals, 3)
	assert.Equal(t, "Salary", totals[0].Category)
	assert.True(t, totals[0].Total.Equal(amount("2500.00")))
	assert.Equal(t, "Rent", totals[1].Category)
	assert.True(t, totals[1].Total.Equal(amount("900.00")))
	assert.Equal(t, "Groceries", totals[2].Category)
	assert.True(t, totals[2].Total.Equal(amount("57.50")))
}

func TestTotalsByCategory_TiesBrokenByName(t *testing.T) {
	transactions := []models.Transaction{
		{ID: 1, Type: models.TypeCredit, Amount: amount("10.00"), Category: "Zoo"},
		{ID: 2, Type: models.TypeCredit, Amount: amount("10.00"), Category: "Aquarium"},
	}

	totals := TotalsByCategory(transactions)
	require.Len(t, totals, 2)
	assert.Equal(t, "Aquarium", totals[0].Category)
	assert.Equal(t, "Zoo", totals[1].Category)
}

func TestBuild(t *testing.T) {
	s := Build(testTransactions())

	assert.True(t, s.Income.Equal(amount("2500.00")))
	assert.True(t, s.Expenses.Equal(amount("957.50")))
	assert.Len(t, s.ByCategory, 3)
}
