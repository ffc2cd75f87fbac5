package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/NicholasBallard/calories-parse/internal/export"
	"github.com/NicholasBallard/calories-parse/internal/logger"
)

// options collects the persistent flags shared by every subcommand.
type options struct {
	basePath   string
	configPath string
	input      string
	output     string
	xlsx       string
	sqlite     string

	noClipboard bool
	strict      bool
	verbose     bool

	clipboard export.ClipboardWriter
}

// NewRootCommand creates the top-level Cobra command. Running it without a
// subcommand converts the diary to CSV and copies the rows to the clipboard.
func NewRootCommand(ctx context.Context) *cobra.Command {
	return newRootCommand(ctx, &options{})
}

func newRootCommand(ctx context.Context, opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calories",
		Short: "Turn a plain-text food diary into spreadsheet rows.",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger.SetOutput(cmd.ErrOrStderr())
			logger.SetVerbose(opts.verbose)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.session()
			if err != nil {
				return err
			}
			res, err := convert(ctx, s, opts.clipboard)
			if err != nil {
				return err
			}
			printResult(cmd, res)
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "TOML rule file (default: $CALORIES_CONFIG)")
	flags.StringVarP(&opts.input, "input", "i", "", "Diary file (default: calories.txt)")
	flags.StringVarP(&opts.output, "output", "o", "", "CSV output path (default: calories.csv)")
	flags.BoolVar(&opts.strict, "strict", false, "Fail when date lines and day blocks cannot be paired")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Print parsing details to stderr")

	cmd.Flags().StringVar(&opts.xlsx, "xlsx", "", "Also write an Excel workbook to this path")
	cmd.Flags().StringVar(&opts.sqlite, "sqlite", "", "Also write the rows to a SQLite database at this path")
	cmd.Flags().BoolVar(&opts.noClipboard, "no-clipboard", false, "Skip copying rows to the clipboard")

	cmd.AddCommand(
		newRowsCommand(ctx, opts),
		newPreviewCommand(ctx, opts),
		newWatchCommand(ctx, opts),
		newRulesCommand(opts),
		newVersionCommand(),
	)

	return cmd
}

// ExecuteCommand is a thin wrapper that executes the Cobra root command.
func ExecuteCommand(ctx context.Context) error {
	return NewRootCommand(ctx).Execute()
}

// Main is a helper used by cmd/calories/main.go to keep wiring contained in one package.
func Main(ctx context.Context) {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := ExecuteCommand(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		stop()
		os.Exit(1)
	}
}
