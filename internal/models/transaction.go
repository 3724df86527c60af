// Package models defines the canonical data types shared across the
// normalizer, categorizer and reporting layers.
package models

import (
	"github.com/shopspring/decimal"
)

// Transaction is one canonical ledger entry produced by the normalizer.
//
// The descriptive fields mirror the bank export, whose single free-text
// description column concatenates several semantic fields separated by
// runs of whitespace. Details holds the first two fragments joined
// together (typically the counterparty name); Details4 through Details6
// hold the remaining useful fragments. The categorizer matches keywords
// against all four.
//
// Category is the only field mutated after creation, either by the
// categorizer or by a user correction. It references a category in the
// store by name; the store owns the category lifecycle.
type Transaction struct {
	ID       int             `csv:"ID" json:"id"`
	Date     Date            `csv:"Date" json:"date"`
	Type     string          `csv:"Type" json:"type"`
	Amount   decimal.Decimal `csv:"Amount" json:"amount"`
	Details  string          `csv:"Details" json:"details"`
	Details4 string          `csv:"Details4" json:"details4"`
	Details5 string          `csv:"Details5" json:"details5"`
	Details6 string          `csv:"Details6" json:"details6"`
	Category string          `csv:"Category" json:"category"`
}

// DescriptiveFields returns the four text fields the categorizer
// matches keywords against, in column order.
func (t Transaction) DescriptiveFields() [4]string {
	return [4]string{t.Details, t.Details4, t.Details5, t.Details6}
}

// IsDebit returns true if the transaction is a debit.
func (t Transaction) IsDebit() bool {
	return t.Type == TypeDebit
}

// IsCredit returns true if the transaction is a credit.
func (t Transaction) IsCredit() bool {
	return t.Type == TypeCredit
}
