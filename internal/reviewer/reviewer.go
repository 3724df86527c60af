// Package reviewer reconciles user-submitted category corrections back
// into the category store.
//
// Each accepted correction teaches the store a new keyword: the
// transaction's primary descriptive field is appended to the submitted
// category's keyword set, so the next categorization run picks the
// category up automatically.
package reviewer

import (
	"fmt"

	"github.com/avoort95/finance-dashboard/internal/logging"
	"github.com/avoort95/finance-dashboard/internal/models"
	"github.com/avoort95/finance-dashboard/internal/store"
)

// Edit is one user-submitted category correction, referencing a
// transaction by the ID the normalizer assigned.
type Edit struct {
	TransactionID int    `csv:"ID"`
	Category      string `csv:"Category"`
}

// Reviewer applies category corrections to transactions and feeds the
// derived keywords back into the store.
type Reviewer struct {
	store  *store.CategoryStore
	logger logging.Logger
}

// New creates a Reviewer backed by the given store.
func New(s *store.CategoryStore, logger logging.Logger) *Reviewer {
	return &Reviewer{store: s, logger: logger}
}

// Apply applies the edits to the transactions in place.
//
// Edits whose submitted category equals the transaction's current one
// are skipped. For every changed edit the transaction's category is
// updated and the transaction's primary descriptive field is added as a
// keyword to the submitted category; each successful keyword addition
// persists the store immediately, without batching.
//
// An edit naming a category absent from the store fails with
// UnknownCategoryError; it is the collaborator's responsibility to
// offer only existing category names.
func (r *Reviewer) Apply(transactions []models.Transaction, edits []Edit) error {
	byID := make(map[int]int, len(transactions))
	for i, tx := range transactions {
		byID[tx.ID] = i
	}

	for _, edit := range edits {
		idx, ok := byID[edit.TransactionID]
		if !ok {
			return fmt.Errorf("unknown transaction id: %d", edit.TransactionID)
		}
		tx := &transactions[idx]

		if edit.Category == tx.Category {
			continue
		}
		if !r.store.Has(edit.Category) {
			return &store.UnknownCategoryError{Name: edit.Category}
		}

		previous := tx.Category
		tx.Category = edit.Category

		added, err := r.store.AddKeyword(edit.Category, tx.Details)
		if err != nil {
			return err
		}

		r.logger.WithFields(
			logging.Field{Key: logging.FieldTransactionID, Value: tx.ID},
			logging.Field{Key: "previous", Value: previous},
			logging.Field{Key: logging.FieldCategory, Value: edit.Category},
			logging.Field{Key: "keyword_added", Value: added},
		).Info("Applied category correction")
	}

	return nil
}
