package models

import (
	"fmt"
	"time"
)

// DateLayoutISO is the canonical date representation used in output files.
const DateLayoutISO = "2006-01-02"

// Date is a calendar date without a time component. It wraps time.Time
// so that CSV and JSON output use the ISO date form rather than a full
// timestamp.
type Date struct {
	time.Time
}

// NewDate creates a Date from a time.Time, discarding any time-of-day component.
func NewDate(t time.Time) Date {
	return Date{time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)}
}

// MarshalCSV implements the gocsv marshaller interface.
func (d Date) MarshalCSV() (string, error) {
	return d.Format(DateLayoutISO), nil
}

// UnmarshalCSV implements the gocsv unmarshaller interface.
func (d *Date) UnmarshalCSV(value string) error {
	t, err := time.Parse(DateLayoutISO, value)
	if err != nil {
		return fmt.Errorf("invalid date %q: %w", value, err)
	}
	*d = Date{t}
	return nil
}

// MarshalJSON renders the date as a quoted ISO date string.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(DateLayoutISO) + `"`), nil
}

// UnmarshalJSON parses a quoted ISO date string.
func (d *Date) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("invalid date JSON: %s", s)
	}
	return d.UnmarshalCSV(s[1 : len(s)-1])
}

// String returns the ISO date form.
func (d Date) String() string {
	return d.Format(DateLayoutISO)
}
