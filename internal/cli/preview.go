package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/NicholasBallard/calories-parse/internal/ui"
)

func newPreviewCommand(ctx context.Context, opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "preview",
		Short: "Browse the parsed rows in an interactive table.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.session()
			if err != nil {
				return err
			}
			table, err := loadTable(ctx, s)
			if err != nil {
				return err
			}
			m := ui.NewModel(s.manager.InputPath(), table)
			p := tea.NewProgram(m,
				tea.WithContext(ctx),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()),
			)
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("run preview: %w", err)
			}
			return nil
		},
	}
}
