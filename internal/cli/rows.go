package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/NicholasBallard/calories-parse/internal/diary"
	"github.com/NicholasBallard/calories-parse/internal/export"
)

func newRowsCommand(ctx context.Context, opts *options) *cobra.Command {
	var (
		format     string
		fromSQLite string
	)

	cmd := &cobra.Command{
		Use:   "rows",
		Short: "Print the parsed rows without writing any files.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if fromSQLite != "" {
				return printStoredRows(ctx, cmd, fromSQLite, format)
			}

			s, err := opts.session()
			if err != nil {
				return err
			}

			switch strings.ToLower(format) {
			case "raw":
				// Date tokens as written, so malformed dates can be located.
				rows, err := s.reader.Rows(ctx)
				if err != nil {
					return err
				}
				for _, row := range rows {
					fmt.Fprintf(out, "%s\t%s\t%d\n", row.Item, row.Date, row.Meal)
				}
				return nil
			case "tsv", "csv":
			default:
				return fmt.Errorf("invalid format %q (expected tsv|csv|raw)", format)
			}

			table, err := loadTable(ctx, s)
			if err != nil {
				return err
			}
			if strings.EqualFold(format, "csv") {
				return export.WriteCSV(out, table)
			}
			_, err = fmt.Fprint(out, export.ClipboardText(table))
			return err
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "tsv", "Output format: tsv|csv|raw")
	cmd.Flags().StringVar(&fromSQLite, "from-sqlite", "", "Print the rows stored in a database written by --sqlite instead of parsing the diary")

	return cmd
}

// printStoredRows reads a previous SQLite export back. The dates there are
// already formatted, so raw output is not available.
func printStoredRows(ctx context.Context, cmd *cobra.Command, path, format string) error {
	records, err := export.LoadSQLite(ctx, path)
	if err != nil {
		return fmt.Errorf("read sqlite: %w", err)
	}
	table := export.Table{Header: diary.DefaultColumns[:], Records: records}

	out := cmd.OutOrStdout()
	switch strings.ToLower(format) {
	case "csv":
		return export.WriteCSV(out, table)
	case "tsv":
		_, err = fmt.Fprint(out, export.ClipboardText(table))
		return err
	default:
		return fmt.Errorf("invalid format %q for --from-sqlite (expected tsv|csv)", format)
	}
}
