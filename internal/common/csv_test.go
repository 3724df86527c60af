package common

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/avoort95/finance-dashboard/internal/logging"
	"github.com/avoort95/finance-dashboard/internal/models"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() logging.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return logging.NewLogrusAdapterFromLogger(l)
}

func testTransactions() []models.Transaction {
	return []models.Transaction{
		{
			ID:       1,
			Date:     models.NewDate(time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC)),
			Type:     models.TypeCredit,
			Amount:   decimal.RequireFromString("45.50"),
			Details:  "ALBERTHEIJN",
			Details4: "STORE",
			Category: "Groceries",
		},
		{
			ID:       2,
			Date:     models.NewDate(time.Date(2023, 1, 16, 0, 0, 0, 0, time.UTC)),
			Type:     models.TypeDebit,
			Amount:   decimal.RequireFromString("2500.00"),
			Details:  "SALARY",
			Category: models.CategoryUncategorized,
		},
	}
}

func TestWriteReadRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(testTransactions(), &buf))

	rows, err := ReadCSV[models.Transaction](&buf)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, 1, rows[0].ID)
	assert.Equal(t, "2023-01-15", rows[0].Date.String())
	assert.Equal(t, "ALBERTHEIJN", rows[0].Details)
	assert.Equal(t, "Groceries", rows[0].Category)
	assert.True(t, rows[0].Amount.Equal(decimal.RequireFromString("45.50")))
	assert.Equal(t, models.TypeDebit, rows[1].Type)
}

func TestWriteCSV_HeaderAndDelimiter(t *testing.T) {
	SetDelimiter(';')
	defer SetDelimiter(',')

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(testTransactions(), &buf))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Equal(t, "ID;Date;Type;Amount;Details;Details4;Details5;Details6;Category", lines[0])
	require.Len(t, lines, 3)
}

func TestWriteTransactionsToCSV(t *testing.T) {
	file := filepath.Join(t.TempDir(), "out", "transactions.csv")

	err := WriteTransactionsToCSV(testTransactions(), file, testLogger())
	require.NoError(t, err)

	rows, err := ReadCSVFile[models.Transaction](file, testLogger())
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}

func TestWriteTransactionsToCSV_Nil(t *testing.T) {
	err := WriteTransactionsToCSV(nil, filepath.Join(t.TempDir(), "out.csv"), testLogger())
	assert.Error(t, err)
}

func TestReadCSVFile_Missing(t *testing.T) {
	_, err := ReadCSVFile[models.Transaction](filepath.Join(t.TempDir(), "missing.csv"), testLogger())
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}
