package store

import "fmt"

// MalformedStoreError indicates that the persisted category data could
// not be decoded. This is fatal at startup; the store is never silently
// reset to defaults when existing data is unreadable.
type MalformedStoreError struct {
	Path string
	Err  error
}

func (e *MalformedStoreError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("malformed category store %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("malformed category store: %v", e.Err)
}

func (e *MalformedStoreError) Unwrap() error {
	return e.Err
}

// UnknownCategoryError indicates a reference to a category name that is
// not present in the store. This is a caller error; the operation that
// raised it is aborted.
type UnknownCategoryError struct {
	Name string
}

func (e *UnknownCategoryError) Error() string {
	return fmt.Sprintf("unknown category: %s", e.Name)
}
