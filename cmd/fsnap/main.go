package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/electron-utils/fsnap/internal/logging"
)

var (
	version = "0.1.0"
	verbose bool
)

// exitCodeError carries a child process exit status up to main.
type exitCodeError struct {
	code int
}

func (e *exitCodeError) Error() string {
	return fmt.Sprintf("command exited with status %d", e.code)
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "fsnap",
		Short: "fsnap - filesystem snapshots and deltas",
		Long: `Take metadata snapshots of the paths matched by glob patterns, compare
them and report what was deleted, created or changed.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global verbose flag
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(listCmd())
	rootCmd.AddCommand(runCmd())
	rootCmd.AddCommand(watchCmd())

	if err := rootCmd.Execute(); err != nil {
		var exit *exitCodeError
		if errors.As(err, &exit) {
			os.Exit(exit.code)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newLogger builds the process logger. --verbose forces debug.
func newLogger(level, format string) (*logging.ZapLogger, error) {
	if verbose {
		level = "debug"
	}
	return logging.New(level, format)
}
