// Package ingest handles the bank export ingestion command.
package ingest

import (
	"fmt"
	"os"

	"github.com/avoort95/finance-dashboard/cmd/root"
	"github.com/avoort95/finance-dashboard/internal/categorizer"
	"github.com/avoort95/finance-dashboard/internal/common"
	"github.com/avoort95/finance-dashboard/internal/logging"
	"github.com/avoort95/finance-dashboard/internal/normalizer"

	"github.com/spf13/cobra"
)

// Cmd represents the ingest command.
var Cmd = &cobra.Command{
	Use:   "ingest",
	Short: "Normalize a bank export file and categorize its transactions",
	Long: `Ingest reads a bank transaction export CSV, normalizes each row into a
canonical transaction record and assigns a category using the persisted
keyword rules. The categorized transactions are written as CSV to the
output file, or to stdout when no output file is given.`,
	RunE: ingestFunc,
}

func ingestFunc(cmd *cobra.Command, args []string) error {
	if root.SharedFlags.Input == "" {
		return fmt.Errorf("input file is required (use --input)")
	}

	transactions, err := normalizer.ParseFile(root.SharedFlags.Input, root.Log)
	if err != nil {
		return err
	}

	categorized := categorizer.New(root.Store, root.Log).Categorize(transactions)

	root.Log.WithFields(
		logging.Field{Key: logging.FieldInputFile, Value: root.SharedFlags.Input},
		logging.Field{Key: logging.FieldCount, Value: len(categorized)},
	).Info("Categorized transactions")

	if root.SharedFlags.Output == "" {
		return common.WriteCSV(categorized, os.Stdout)
	}
	root.Log.WithField(logging.FieldOutputFile, root.SharedFlags.Output).Info("Writing categorized transactions")
	return common.WriteTransactionsToCSV(categorized, root.SharedFlags.Output, root.Log)
}
