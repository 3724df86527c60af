// Package categorizer assigns spending categories to transactions by
// matching the category store's keyword sets against the transactions'
// descriptive text fields.
//
// Matching is deliberately simple and deterministic: lowercase
// substring containment, no word boundaries, no scoring. The keyword
// "rent" matches "parent". Users steer the results by editing keyword
// sets rather than by tuning a model.
package categorizer

import (
	"strings"

	"github.com/avoort95/finance-dashboard/internal/logging"
	"github.com/avoort95/finance-dashboard/internal/models"
	"github.com/avoort95/finance-dashboard/internal/store"
)

// Categorizer assigns categories to transactions using a category
// store. It reads the store but never mutates it.
type Categorizer struct {
	store  *store.CategoryStore
	logger logging.Logger
}

// New creates a Categorizer backed by the given store.
func New(s *store.CategoryStore, logger logging.Logger) *Categorizer {
	return &Categorizer{store: s, logger: logger}
}

// Categorize returns a copy of the given transactions with a category
// assigned to every one. Transactions matching no keyword set keep the
// default category, so no transaction is left uncategorized.
//
// Categories are evaluated in store order and a later category's match
// overwrites an earlier one for the same transaction, so the last
// matching category in store order wins.
func (c *Categorizer) Categorize(transactions []models.Transaction) []models.Transaction {
	result := make([]models.Transaction, len(transactions))
	copy(result, transactions)

	for i := range result {
		result[i].Category = models.CategoryUncategorized
	}

	for _, category := range c.store.Categories() {
		// The default bucket is never matched against.
		if category.Name == models.CategoryUncategorized || len(category.Keywords) == 0 {
			continue
		}

		keywords := make([]string, len(category.Keywords))
		for i, k := range category.Keywords {
			keywords[i] = strings.ToLower(k)
		}

		for i := range result {
			if matchesAny(result[i], keywords) {
				result[i].Category = category.Name
				c.logger.WithFields(
					logging.Field{Key: logging.FieldTransactionID, Value: result[i].ID},
					logging.Field{Key: logging.FieldCategory, Value: category.Name},
				).Debug("Transaction matched category keywords")
			}
		}
	}

	return result
}

// matchesAny reports whether any keyword occurs as a substring of any
// of the transaction's four descriptive text fields, case-insensitively.
func matchesAny(tx models.Transaction, loweredKeywords []string) bool {
	for _, field := range tx.DescriptiveFields() {
		lowered := strings.ToLower(field)
		for _, keyword := range loweredKeywords {
			if strings.Contains(lowered, keyword) {
				return true
			}
		}
	}
	return false
}
