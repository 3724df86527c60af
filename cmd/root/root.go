// Package root contains the root command for the application.
package root

import (
	"github.com/avoort95/finance-dashboard/internal/common"
	"github.com/avoort95/finance-dashboard/internal/config"
	"github.com/avoort95/finance-dashboard/internal/logging"
	"github.com/avoort95/finance-dashboard/internal/store"

	"github.com/spf13/cobra"
)

// CommonFlags represents the flags that are common to multiple commands.
type CommonFlags struct {
	Input  string
	Output string
}

var (
	// Log is the shared logger instance for commands.
	Log logging.Logger = logging.NewLogrusAdapter("info", "text")

	// Cfg is the loaded application configuration.
	Cfg *config.Config

	// Store is the category store shared by all commands. It is loaded
	// once per invocation and written through on every mutation.
	Store *store.CategoryStore

	// SharedFlags are common flags accessible to all commands.
	SharedFlags = CommonFlags{}

	// Cmd is the root command.
	Cmd = &cobra.Command{
		Use:   "finance-dashboard",
		Short: "Normalize bank transaction exports and categorize them with keyword rules.",
		Long: `finance-dashboard ingests bank transaction export files, normalizes them
into canonical transaction records, and assigns each transaction to a
user-defined spending category using persisted keyword rules.
User corrections feed back into the keyword rules for future runs.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config.LoadEnv()

			cfg, err := config.Initialize()
			if err != nil {
				return err
			}
			Cfg = cfg

			Log = logging.NewLogrusAdapter(cfg.Log.Level, cfg.Log.Format)
			common.SetDelimiter([]rune(cfg.CSV.Delimiter)[0])
			Log.WithField(logging.FieldDelimiter, cfg.CSV.Delimiter).Debug("Configured CSV delimiter")

			// A malformed store aborts the run; it is never reset.
			st, err := store.Load(cfg.Store.File, Log)
			if err != nil {
				return err
			}
			Store = st
			return nil
		},
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to finance-dashboard!")
			Log.Info("Use --help to see available commands")
		},
	}
)

// Init initializes the root command and all persistent flags.
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input file")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output file")
}
