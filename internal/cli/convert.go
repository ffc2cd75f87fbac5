package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/NicholasBallard/calories-parse/internal/export"
	"github.com/NicholasBallard/calories-parse/internal/logger"
)

const copiedMessage = "Copied to clipboard and ready to paste into Excel."

var successStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))

// convertResult summarizes one run of the export pipeline.
type convertResult struct {
	rows    int
	written []string
	copied  bool
}

// loadTable parses the diary and formats it for export.
func loadTable(ctx context.Context, s *session) (export.Table, error) {
	rows, err := s.reader.Rows(ctx)
	if err != nil {
		return export.Table{}, err
	}
	return export.BuildTable(rows, s.diary)
}

// convert writes every configured sink. Clipboard failures are reported as
// warnings because the files have already been written.
func convert(ctx context.Context, s *session, clip export.ClipboardWriter) (convertResult, error) {
	table, err := loadTable(ctx, s)
	if err != nil {
		return convertResult{}, err
	}
	res := convertResult{rows: table.Len()}

	logger.Section("export")
	out := s.manager.OutputPath()
	data, err := export.EncodeCSV(table)
	if err != nil {
		return res, fmt.Errorf("encode csv: %w", err)
	}
	if err := s.manager.WriteFile(out, data); err != nil {
		return res, fmt.Errorf("write csv: %w", err)
	}
	logger.Info("wrote %s", out)
	res.written = append(res.written, out)

	if s.settings.XLSX != "" {
		path := s.manager.Resolve(s.settings.XLSX)
		data, err := export.EncodeXLSX(table)
		if err != nil {
			return res, fmt.Errorf("encode xlsx: %w", err)
		}
		if err := s.manager.WriteFile(path, data); err != nil {
			return res, fmt.Errorf("write xlsx: %w", err)
		}
		logger.Info("wrote %s", path)
		res.written = append(res.written, path)
	}

	if s.settings.SQLite != "" {
		path := s.manager.Resolve(s.settings.SQLite)
		if err := s.manager.EnsureDir(path); err != nil {
			return res, fmt.Errorf("write sqlite: %w", err)
		}
		if err := export.SaveSQLite(ctx, path, table); err != nil {
			return res, fmt.Errorf("write sqlite: %w", err)
		}
		logger.Info("wrote %s", path)
		res.written = append(res.written, path)
	}

	if s.settings.Clipboard {
		if clip == nil && !export.ClipboardAvailable() {
			logger.Warn("no clipboard utility found; skipping clipboard copy")
			return res, nil
		}
		if err := export.CopyToClipboard(table, clip); err != nil {
			logger.Warn("copy to clipboard: %v", err)
			return res, nil
		}
		res.copied = true
	}
	return res, nil
}

func printResult(cmd *cobra.Command, res convertResult) {
	out := cmd.OutOrStdout()
	for _, path := range res.written {
		fmt.Fprintf(out, "Wrote %d row%s to %s\n", res.rows, plural(res.rows), path)
	}
	if res.copied {
		fmt.Fprintln(out, styled(cmd, copiedMessage))
	}
}

// styled colours text only when stdout is a terminal.
func styled(cmd *cobra.Command, text string) string {
	f, ok := cmd.OutOrStdout().(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return text
	}
	return successStyle.Render(text)
}

func plural(count int) string {
	if count == 1 {
		return ""
	}
	return "s"
}
