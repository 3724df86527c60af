// Package normalizer converts raw bank export rows into canonical
// transaction records.
//
// The export schema is fixed: dates are 8-digit YYYYMMDD strings, the
// amount column is signed, and the free-text description concatenates
// up to seven semantic fields separated by runs of two or more spaces.
// A malformed row aborts the whole batch rather than being skipped;
// partial, inconsistently shaped data would corrupt category matching
// downstream.
package normalizer

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"regexp"
	"time"

	"github.com/avoort95/finance-dashboard/internal/common"
	"github.com/avoort95/finance-dashboard/internal/logging"
	"github.com/avoort95/finance-dashboard/internal/models"

	"github.com/shopspring/decimal"
)

// maxDescriptionFragments is the fixed fragment count of the export's
// description column.
const maxDescriptionFragments = 7

// dateLayout is the strict date format of the Transactiedatum column.
const dateLayout = "20060102"

// fragmentSeparator matches the runs of whitespace that separate the
// semantic fields inside the description column.
var fragmentSeparator = regexp.MustCompile(`\s{2,}`)

// ExportRow represents a single row of the bank export CSV.
// It uses struct tags for gocsv unmarshaling.
type ExportRow struct {
	Transactiedatum  string `csv:"Transactiedatum"`
	Rentedatum       string `csv:"Rentedatum"`
	Beginsaldo       string `csv:"Beginsaldo"`
	Eindsaldo        string `csv:"Eindsaldo"`
	Transactiebedrag string `csv:"Transactiebedrag"`
	Omschrijving     string `csv:"Omschrijving"`
}

// requiredColumns are the export columns the normalizer depends on.
// Rentedatum, Beginsaldo and Eindsaldo are discarded during
// normalization but still belong to the expected schema.
var requiredColumns = []string{
	"Transactiedatum",
	"Rentedatum",
	"Beginsaldo",
	"Eindsaldo",
	"Transactiebedrag",
	"Omschrijving",
}

// Parse reads a bank export CSV from a reader and returns canonical
// transactions in input order.
func Parse(r io.Reader, logger logging.Logger) ([]models.Transaction, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading export data: %w", err)
	}

	if err := validateHeader(bytes.NewReader(data)); err != nil {
		return nil, err
	}

	rows, err := common.ReadCSV[ExportRow](bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("error reading export CSV: %w", err)
	}

	return Normalize(rows, logger)
}

// ParseFile reads a bank export CSV file and returns canonical
// transactions. The file handle is released on every exit path.
func ParseFile(filePath string, logger logging.Logger) ([]models.Transaction, error) {
	logger.WithField(logging.FieldFile, filePath).Info("Parsing bank export CSV file")

	file, err := os.Open(filePath) // #nosec G304 -- CLI tool reads user-provided file paths
	if err != nil {
		return nil, fmt.Errorf("error opening export file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			logger.WithError(err).Warn("Failed to close file")
		}
	}()

	return Parse(file, logger)
}

// validateHeader checks that the export carries the expected column
// schema before any row is parsed.
func validateHeader(r io.Reader) error {
	reader := csv.NewReader(r)
	reader.Comma = common.Delimiter

	header, err := reader.Read()
	if err != nil {
		return fmt.Errorf("error reading export header: %w", err)
	}

	present := make(map[string]bool, len(header))
	for _, col := range header {
		present[col] = true
	}
	for _, col := range requiredColumns {
		if !present[col] {
			return &NormalizationError{
				Row:   0,
				Field: col,
				Err:   fmt.Errorf("required column missing from export header"),
			}
		}
	}
	return nil
}

// Normalize converts export rows into canonical transactions,
// preserving input order and assigning sequential IDs. The first
// malformed row fails the whole batch; no partial result is returned.
func Normalize(rows []ExportRow, logger logging.Logger) ([]models.Transaction, error) {
	transactions := make([]models.Transaction, 0, len(rows))

	for i, row := range rows {
		rowNum := i + 1

		tx, err := normalizeRow(rowNum, row)
		if err != nil {
			logger.WithError(err).Error("Export row failed normalization, aborting batch")
			return nil, err
		}
		transactions = append(transactions, tx)
	}

	logger.WithField(logging.FieldCount, len(transactions)).Info("Normalized export rows")
	return transactions, nil
}

func normalizeRow(rowNum int, row ExportRow) (models.Transaction, error) {
	date, err := time.Parse(dateLayout, row.Transactiedatum)
	if err != nil {
		return models.Transaction{}, &InvalidDateError{Row: rowNum, Value: row.Transactiedatum, Err: err}
	}

	signed, err := models.ParseAmount(row.Transactiebedrag)
	if err != nil {
		return models.Transaction{}, &NormalizationError{
			Row:   rowNum,
			Field: "Transactiebedrag",
			Value: row.Transactiebedrag,
			Err:   err,
		}
	}

	// Positive exported amounts are debits, everything else credits.
	// This matches the export's convention, inverted as it may read.
	txType := models.TypeCredit
	if signed.GreaterThan(decimal.Zero) {
		txType = models.TypeDebit
	}

	fragments := fragmentSeparator.Split(row.Omschrijving, -1)
	if len(fragments) > maxDescriptionFragments {
		return models.Transaction{}, &UnexpectedFieldCountError{Row: rowNum, Count: len(fragments)}
	}
	padded := make([]string, maxDescriptionFragments)
	copy(padded, fragments)

	// Fragments 1 and 2 form the primary descriptive field; 4, 5 and 6
	// are kept as secondary fields; 3 and 7 are discarded.
	return models.Transaction{
		ID:       rowNum,
		Date:     models.NewDate(date),
		Type:     txType,
		Amount:   signed.Abs(),
		Details:  padded[0] + padded[1],
		Details4: padded[3],
		Details5: padded[4],
		Details6: padded[5],
		Category: models.CategoryUncategorized,
	}, nil
}
