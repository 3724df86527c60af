package normalizer

import "fmt"

// InvalidDateError indicates a transaction date that does not match the
// export's strict YYYYMMDD format. It aborts the whole batch.
type InvalidDateError struct {
	Row   int
	Value string
	Err   error
}

func (e *InvalidDateError) Error() string {
	return fmt.Sprintf("row %d: invalid transaction date %q: expected YYYYMMDD", e.Row, e.Value)
}

func (e *InvalidDateError) Unwrap() error {
	return e.Err
}

// UnexpectedFieldCountError indicates a description column that split
// into more fragments than the fixed export schema allows. Truncating
// would misalign the text fields the categorizer depends on, so the
// whole batch is rejected instead.
type UnexpectedFieldCountError struct {
	Row   int
	Count int
}

func (e *UnexpectedFieldCountError) Error() string {
	return fmt.Sprintf("row %d: description split into %d fragments, expected at most %d",
		e.Row, e.Count, maxDescriptionFragments)
}

// NormalizationError indicates any other schema violation in an export
// row. It aborts the whole batch.
type NormalizationError struct {
	Row   int
	Field string
	Value string
	Err   error
}

func (e *NormalizationError) Error() string {
	return fmt.Sprintf("row %d: failed to normalize %s=%q: %v", e.Row, e.Field, e.Value, e.Err)
}

func (e *NormalizationError) Unwrap() error {
	return e.Err
}
