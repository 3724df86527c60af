package categorizer

import (
	"io"
	"strings"
	"testing"

	"github.com/avoort95/finance-dashboard/internal/logging"
	"github.com/avoort95/finance-dashboard/internal/models"
	"github.com/avoort95/finance-dashboard/internal/store"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() logging.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return logging.NewLogrusAdapterFromLogger(l)
}

func newTestStore(t *testing.T, yaml string) *store.CategoryStore {
	t.Helper()
	s, err := store.LoadFrom(strings.NewReader(yaml), testLogger())
	require.NoError(t, err)
	return s
}

func TestCategorize_EmptyFieldsGetDefault(t *testing.T) {
	s := newTestStore(t, `
- name: Groceries
  keywords: [jumbo]
`)
	c := New(s, testLogger())

	result := c.Categorize([]models.Transaction{{ID: 1}})
	require.Len(t, result, 1)
	assert.Equal(t, models.CategoryUncategorized, result[0].Category)
}

func TestCategorize_NoMatchGetsDefault(t *testing.T) {
	s := newTestStore(t, `
- name: Groceries
  keywords: [jumbo]
`)
	c := New(s, testLogger())

	result := c.Categorize([]models.Transaction{{ID: 1, Details: "GYM MEMBERSHIP"}})
	assert.Equal(t, models.CategoryUncategorized, result[0].Category)
}

func TestCategorize_LastMatchingCategoryWins(t *testing.T) {
	// Groceries comes before Rent in store order; when both match, the
	// later category's match overwrites the earlier one.
	s := newTestStore(t, `
- name: Groceries
  keywords: [jumbo]
- name: Rent
  keywords: [rent]
`)
	c := New(s, testLogger())

	result := c.Categorize([]models.Transaction{{ID: 1, Details: "JUMBO RENT PAYMENT"}})
	assert.Equal(t, "Rent", result[0].Category)
}

func TestCategorize_SubstringNotWholeWord(t *testing.T) {
	s := newTestStore(t, `
- name: Rent
  keywords: [rent]
`)
	c := New(s, testLogger())

	result := c.Categorize([]models.Transaction{{ID: 1, Details: "Parent Transfer"}})
	assert.Equal(t, "Rent", result[0].Category)
}

func TestCategorize_CaseInsensitive(t *testing.T) {
	s := newTestStore(t, `
- name: Groceries
  keywords: [Jumbo]
`)
	c := New(s, testLogger())

	result := c.Categorize([]models.Transaction{{ID: 1, Details: "JUMBO UTRECHT"}})
	assert.Equal(t, "Groceries", result[0].Category)
}

func TestCategorize_MatchesSecondaryFields(t *testing.T) {
	s := newTestStore(t, `
- name: Travel
  keywords: [ns.nl]
`)
	c := New(s, testLogger())

	result := c.Categorize([]models.Transaction{{ID: 1, Details: "PAYMENT", Details5: "NS.NL AMSTERDAM"}})
	assert.Equal(t, "Travel", result[0].Category)
}

func TestCategorize_DefaultCategoryNeverMatches(t *testing.T) {
	// The default bucket can carry keywords (a user may explicitly
	// assign transactions to it), but it is never matched against.
	s := newTestStore(t, `
- name: Uncategorized
  keywords: [jumbo]
- name: Groceries
  keywords: [heijn]
`)
	c := New(s, testLogger())

	result := c.Categorize([]models.Transaction{{ID: 1, Details: "JUMBO UTRECHT"}})
	assert.Equal(t, models.CategoryUncategorized, result[0].Category)
}

func TestCategorize_ReassignsStaleCategories(t *testing.T) {
	s := newTestStore(t, `
- name: Groceries
  keywords: [jumbo]
`)
	c := New(s, testLogger())

	// A previously assigned category is recomputed from scratch.
	result := c.Categorize([]models.Transaction{{ID: 1, Details: "GYM", Category: "Groceries"}})
	assert.Equal(t, models.CategoryUncategorized, result[0].Category)
}

func TestCategorize_DoesNotMutateInput(t *testing.T) {
	s := newTestStore(t, `
- name: Groceries
  keywords: [jumbo]
`)
	c := New(s, testLogger())

	input := []models.Transaction{{ID: 1, Details: "JUMBO UTRECHT", Category: models.CategoryUncategorized}}
	result := c.Categorize(input)

	assert.Equal(t, models.CategoryUncategorized, input[0].Category)
	assert.Equal(t, "Groceries", result[0].Category)
}

func TestCategorize_DoesNotMutateStore(t *testing.T) {
	s := newTestStore(t, `
- name: Groceries
  keywords: [jumbo]
`)
	before := s.Categories()

	c := New(s, testLogger())
	c.Categorize([]models.Transaction{{ID: 1, Details: "JUMBO UTRECHT"}})

	assert.Equal(t, before, s.Categories())
}

func TestCategorize_EveryTransactionGetsExactlyOneCategory(t *testing.T) {
	s := newTestStore(t, `
- name: Groceries
  keywords: [jumbo]
- name: Rent
  keywords: [rent]
`)
	c := New(s, testLogger())

	input := []models.Transaction{
		{ID: 1, Details: "JUMBO UTRECHT"},
		{ID: 2, Details: "MONTHLY RENT"},
		{ID: 3, Details: "SOMETHING ELSE"},
		{ID: 4},
	}
	result := c.Categorize(input)

	require.Len(t, result, len(input))
	for _, tx := range result {
		assert.NotEmpty(t, tx.Category, "transaction %d has no category", tx.ID)
	}
	assert.Equal(t, "Groceries", result[0].Category)
	assert.Equal(t, "Rent", result[1].Category)
	assert.Equal(t, models.CategoryUncategorized, result[2].Category)
	assert.Equal(t, models.CategoryUncategorized, result[3].Category)
}
