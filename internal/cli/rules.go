package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRulesCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "List the patterns and substitution rules in the order they apply.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.session()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			cfg := s.diary

			if s.settings.RulesPath != "" {
				fmt.Fprintf(out, "Rule file: %s\n", s.settings.RulesPath)
			}
			fmt.Fprintf(out, "Date line:      %s\n", cfg.DatePattern)
			fmt.Fprintf(out, "Meal delimiter: %s\n", cfg.MealDelimiter)
			fmt.Fprintf(out, "Item delimiter: %q\n", cfg.ItemDelimiter)
			fmt.Fprintf(out, "Alignment:      %s\n", cfg.Alignment)
			fmt.Fprintln(out)

			if len(cfg.Rules) == 0 {
				fmt.Fprintln(out, "(no substitutions)")
				return nil
			}
			fmt.Fprintln(out, "Substitutions:")
			for i, rule := range cfg.Rules {
				fmt.Fprintf(out, "%d. %s -> %q\n", i+1, rule.Pattern, rule.Replacement)
			}
			return nil
		},
	}
}
