package models

// Transaction types, derived from the sign of the exported amount.
// The bank export records positive amounts for debits and negative
// amounts for credits, and the rest of the system follows that
// convention even though it reads inverted.
const (
	TypeDebit  = "debit"
	TypeCredit = "credit"
)

// CategoryUncategorized is the default category bucket. It always
// exists in the category store and is never matched against.
const CategoryUncategorized = "Uncategorized"
