package cmd

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/eventreg/internal/cli"
	"github.com/thenoetrevino/eventreg/internal/cli/event"
	"github.com/thenoetrevino/eventreg/internal/cli/registration"
	"github.com/thenoetrevino/eventreg/internal/cli/report"
	"github.com/thenoetrevino/eventreg/internal/cli/student"
	"github.com/thenoetrevino/eventreg/internal/config"
	"github.com/thenoetrevino/eventreg/internal/logging"
)

// NewRootCmd builds the eventreg command tree
func NewRootCmd() *cobra.Command {
	rootCmd, _ := newRootCmd()
	return rootCmd
}

// newRootCmd also returns closeLog, which closes the log file opened by the
// pre-run hook and reports whether one was still open. Cobra skips
// PersistentPostRun when a command fails, so Execute calls it afterwards.
func newRootCmd() (*cobra.Command, func() bool) {
	var (
		configPath string
		dbPath     string
		logCloser  io.Closer
	)

	closeLog := func() bool {
		if logCloser == nil {
			return false
		}
		if err := logCloser.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "Error closing log file: %v\n", err)
		}
		logCloser = nil
		return true
	}

	rootCmd := &cobra.Command{
		Use:   "eventreg",
		Short: "eventreg - campus event registration records",
		Long: `eventreg keeps campus events, the student roster, registrations and
attendance in a local SQLite file, and reports on participation.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var (
				cfg *config.Config
				err error
			)
			if configPath != "" {
				cfg, err = config.LoadFrom(configPath)
			} else {
				cfg, err = config.Load()
			}
			if err != nil {
				return err
			}

			// --db beats file and environment
			if dbPath != "" {
				cfg.DatabasePath = dbPath
			}

			level, err := cfg.SlogLevel()
			if err != nil {
				return err
			}
			if logCloser, err = logging.Init(cfg.LogFile, level); err != nil {
				return fmt.Errorf("failed to initialize logging: %w", err)
			}

			cmd.SetContext(cli.WithConfig(cmd.Context(), cfg))
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			closeLog()
		},
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default $XDG_CONFIG_HOME/eventreg/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Database file (overrides config and EVENTREG_DATABASE_PATH)")

	rootCmd.AddCommand(event.EventCmd())
	rootCmd.AddCommand(student.StudentCmd())
	rootCmd.AddCommand(registration.RegistrationCmd())
	rootCmd.AddCommand(report.ReportCmd())

	return rootCmd, closeLog
}

// Execute runs the root command and returns the process exit code
func Execute() int {
	rootCmd, closeLog := newRootCmd()
	// commands print their own errors through the output formatter
	rootCmd.SilenceErrors = true

	err := rootCmd.Execute()
	defer closeLog()
	if err == nil {
		return cli.ExitSuccess
	}

	if !cli.IsReported(err) {
		// flag, argument and config errors never reach a formatter
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return cli.ExitUsage
	}

	log.Printf("command failed: %v", err)
	return cli.ExitCodeFor(err)
}
