package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/NicholasBallard/calories-parse/internal/logger"
)

const watchDebounce = 200 * time.Millisecond

func newWatchCommand(ctx context.Context, opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Re-run the conversion every time the diary file is saved.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.session()
			if err != nil {
				return err
			}
			return watch(ctx, cmd, s, opts)
		},
	}

	cmd.Flags().StringVar(&opts.xlsx, "xlsx", "", "Also write an Excel workbook to this path")
	cmd.Flags().StringVar(&opts.sqlite, "sqlite", "", "Also write the rows to a SQLite database at this path")
	cmd.Flags().BoolVar(&opts.noClipboard, "no-clipboard", false, "Skip copying rows to the clipboard")

	return cmd
}

func watch(ctx context.Context, cmd *cobra.Command, s *session, opts *options) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("start watcher: %w", err)
	}
	defer watcher.Close()

	input := s.manager.InputPath()
	// Editors often replace the file, so watch its directory.
	if err := watcher.Add(filepath.Dir(input)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(input), err)
	}

	run := func() {
		res, err := convert(ctx, s, opts.clipboard)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "error: %v\n", err)
			return
		}
		printResult(cmd, res)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Watching %s (Ctrl+C to stop)\n", input)
	run()

	var (
		timer   *time.Timer
		pending <-chan time.Time
	)
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !affectsFile(ev, input) {
				continue
			}
			logger.Debug("%s: %s", ev.Op, ev.Name)
			if timer == nil {
				timer = time.NewTimer(watchDebounce)
			} else {
				timer.Reset(watchDebounce)
			}
			pending = timer.C
		case <-pending:
			pending = nil
			run()
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watcher: %v", err)
		}
	}
}

// affectsFile reports whether ev changes the contents at path.
func affectsFile(ev fsnotify.Event, path string) bool {
	if filepath.Clean(ev.Name) != filepath.Clean(path) {
		return false
	}
	return ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Rename)
}
