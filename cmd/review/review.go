// Package review handles applying user category corrections.
package review

import (
	"fmt"
	"os"

	"github.com/avoort95/finance-dashboard/cmd/root"
	"github.com/avoort95/finance-dashboard/internal/categorizer"
	"github.com/avoort95/finance-dashboard/internal/common"
	"github.com/avoort95/finance-dashboard/internal/logging"
	"github.com/avoort95/finance-dashboard/internal/normalizer"
	"github.com/avoort95/finance-dashboard/internal/reviewer"

	"github.com/spf13/cobra"
)

var editsFile string

// Cmd represents the review command.
var Cmd = &cobra.Command{
	Use:   "review",
	Short: "Apply category corrections and learn keywords from them",
	Long: `Review re-runs categorization over a bank export and then applies a CSV
of user edits (transaction ID, corrected category). Every accepted
correction adds the transaction's primary descriptive field as a keyword
to the corrected category, so future runs categorize similar
transactions automatically.`,
	RunE: reviewFunc,
}

func init() {
	Cmd.Flags().StringVarP(&editsFile, "edits", "e", "", "CSV file with category corrections (columns: ID, Category)")
	_ = Cmd.MarkFlagRequired("edits")
}

func reviewFunc(cmd *cobra.Command, args []string) error {
	if root.SharedFlags.Input == "" {
		return fmt.Errorf("input file is required (use --input)")
	}

	transactions, err := normalizer.ParseFile(root.SharedFlags.Input, root.Log)
	if err != nil {
		return err
	}
	categorized := categorizer.New(root.Store, root.Log).Categorize(transactions)

	edits, err := common.ReadCSVFile[reviewer.Edit](editsFile, root.Log)
	if err != nil {
		return err
	}

	if err := reviewer.New(root.Store, root.Log).Apply(categorized, edits); err != nil {
		return err
	}

	root.Log.WithFields(
		logging.Field{Key: logging.FieldCount, Value: len(edits)},
		logging.Field{Key: logging.FieldFile, Value: editsFile},
	).Info("Applied category corrections")

	if root.SharedFlags.Output == "" {
		return common.WriteCSV(categorized, os.Stdout)
	}
	return common.WriteTransactionsToCSV(categorized, root.SharedFlags.Output, root.Log)
}
