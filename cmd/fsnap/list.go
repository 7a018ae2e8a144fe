package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/electron-utils/fsnap"
)

// listCmd prints one snapshot: kind, modification time and path per entry.
func listCmd() *cobra.Command {
	var (
		opts    fsnap.MatchOptions
		workers int
	)

	cmd := &cobra.Command{
		Use:   "list PATTERN...",
		Short: "Print the snapshot of the paths matched by the patterns",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger("warn", "text")
			if err != nil {
				return err
			}
			defer logger.Sync()

			s := fsnap.NewSnapshotter(fsnap.WithLogger(logger), fsnap.WithWorkers(workers))
			snap, err := s.Create(cmd.Context(), args, opts)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			snap.Each(func(p string, m fsnap.Metadata) {
				fmt.Fprintf(out, "%s %s %s\n", kind(m), m.ModTime.UTC().Format(time.RFC3339), p)
			})
			return nil
		},
	}

	cmd.Flags().BoolVar(&opts.Dot, "dot", false, "Match dot-files")
	cmd.Flags().BoolVar(&opts.FilesOnly, "files-only", false, "Skip directories")
	cmd.Flags().BoolVar(&opts.NoFollow, "no-follow", false, "Do not traverse symlinked directories")
	cmd.Flags().StringSliceVar(&opts.Ignore, "ignore", nil, "Exclude paths matching these patterns")
	cmd.Flags().IntVarP(&workers, "workers", "w", 1, "Parallel stat calls")

	return cmd
}

func kind(m fsnap.Metadata) string {
	switch {
	case m.IsDir:
		return "d"
	case m.IsFile:
		return "f"
	default:
		return "?"
	}
}
