package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStandardizeAmount(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "45.50", "45.50"},
		{"negative", "-45.50", "-45.50"},
		{"whitespace", " 45.50 ", "45.50"},
		{"decimal comma", "45,50", "45.50"},
		{"thousands dot with comma", "1.234,56", "1234.56"},
		{"apostrophe separator", "1'234.56", "1234.56"},
		{"inner space", "1 234.56", "1234.56"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StandardizeAmount(tt.input))
		})
	}
}

func TestParseAmount(t *testing.T) {
	amount, err := ParseAmount("-45,50")
	require.NoError(t, err)
	assert.True(t, amount.Equal(decimal.RequireFromString("-45.50")))

	_, err = ParseAmount("not-a-number")
	assert.Error(t, err)
}

func TestDate_CSVRoundTrip(t *testing.T) {
	d := NewDate(time.Date(2023, 1, 15, 13, 45, 0, 0, time.Local))

	s, err := d.MarshalCSV()
	require.NoError(t, err)
	assert.Equal(t, "2023-01-15", s)

	var parsed Date
	require.NoError(t, parsed.UnmarshalCSV(s))
	assert.True(t, d.Equal(parsed.Time))
}

func TestDate_JSON(t *testing.T) {
	d := NewDate(time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC))

	data, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2023-01-15"`, string(data))

	var parsed Date
	require.NoError(t, json.Unmarshal(data, &parsed))
	assert.True(t, d.Equal(parsed.Time))
}

func TestDate_UnmarshalCSVInvalid(t *testing.T) {
	var d Date
	assert.Error(t, d.UnmarshalCSV("15-01-2023"))
}

func TestTransaction_DescriptiveFields(t *testing.T) {
	tx := Transaction{Details: "a", Details4: "b", Details5: "c", Details6: "d"}
	assert.Equal(t, [4]string{"a", "b", "c", "d"}, tx.DescriptiveFields())
}

func TestTransaction_Direction(t *testing.T) {
	assert.True(t, Transaction{Type: TypeDebit}.IsDebit())
	assert.True(t, Transaction{Type: TypeCredit}.IsCredit())
	assert.False(t, Transaction{Type: TypeCredit}.IsDebit())
}
