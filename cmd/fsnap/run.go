package main

import (
	"errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/spf13/cobra"

	"github.com/electron-utils/fsnap"
	"github.com/electron-utils/fsnap/internal/report"
)

// runCmd snapshots, runs a command, snapshots again and prints the delta.
func runCmd() *cobra.Command {
	var (
		raw   bool
		trees []string
		opts  fsnap.MatchOptions
	)

	cmd := &cobra.Command{
		Use:   "run [PATTERN...] -- COMMAND [ARG...]",
		Short: "Report what a command changes on disk",
		Example: `  fsnap run --tree ./dist -- npm run build
  fsnap run 'assets/**/*.png' -- ./optimize.sh`,
		RunE: func(cmd *cobra.Command, args []string) error {
			dash := cmd.ArgsLenAtDash()
			if dash < 0 || dash == len(args) {
				return errors.New("missing command after --")
			}

			patterns := make([]string, 0, len(trees)+dash)
			for _, d := range trees {
				patterns = append(patterns, fsnap.Tree(d))
			}
			patterns = append(patterns, args[:dash]...)
			if len(patterns) == 0 {
				return errors.New("no patterns or --tree given")
			}

			logger, err := newLogger("warn", "text")
			if err != nil {
				return err
			}
			defer logger.Sync()

			s := fsnap.NewSnapshotter(fsnap.WithLogger(logger))
			ctx := cmd.Context()

			before, err := s.Create(ctx, patterns, opts)
			if err != nil {
				return err
			}

			child := exec.CommandContext(ctx, args[dash], args[dash+1:]...)
			child.Stdin = os.Stdin
			child.Stdout = os.Stdout
			child.Stderr = os.Stderr
			logger.Debug("running command", "path", child.Path, "args", child.Args)
			runErr := child.Run()

			var exit *exec.ExitError
			if runErr != nil && !errors.As(runErr, &exit) {
				return fmt.Errorf("running %s: %w", args[dash], runErr)
			}

			after, err := s.Create(ctx, patterns, opts)
			if err != nil {
				return err
			}

			delta := fsnap.Diff(before, after)
			if !raw {
				delta = fsnap.Simplify(delta)
			}
			if err := report.WriteText(cmd.OutOrStdout(), delta); err != nil {
				return err
			}

			if exit != nil {
				return &exitCodeError{code: exit.ExitCode()}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&raw, "raw", false, "Print every changed path instead of collapsing directories")
	cmd.Flags().StringArrayVar(&trees, "tree", nil, "Snapshot everything below this directory (repeatable)")
	cmd.Flags().BoolVar(&opts.Dot, "dot", false, "Match dot-files")
	cmd.Flags().StringSliceVar(&opts.Ignore, "ignore", nil, "Exclude paths matching these patterns")

	return cmd
}
