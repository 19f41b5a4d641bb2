package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"smartpush.dev/smartpush/internal/classify"
	"smartpush.dev/smartpush/internal/remedy"
	"smartpush.dev/smartpush/internal/tui/style"
)

// newExplainCmd creates the explain command
func newExplainCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "explain [kind]",
		Short: "Show how each kind of push failure is handled",
		Args:  cobra.MaximumNArgs(1),
		ValidArgsFunction: func(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
			if len(args) > 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			kinds := classify.AllKinds()
			names := make([]string, len(kinds))
			for i, k := range kinds {
				names[i] = k.String()
			}
			return names, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			kinds := classify.AllKinds()
			if len(args) == 1 {
				kind, err := classify.ParseKind(args[0])
				if err != nil {
					return err
				}
				kinds = []classify.FailureKind{kind}
			}

			out := cmd.OutOrStdout()
			for _, kind := range kinds {
				r := remedy.Lookup(kind)
				_, _ = fmt.Fprint(out, style.RenderChoice(r.Choice(), true))
				_, _ = fmt.Fprintf(out, "Kind: %s", kind)
				if r.Retryable() {
					_, _ = fmt.Fprintln(out, " (can retry the push)")
				} else {
					_, _ = fmt.Fprintln(out, " (guidance only)")
				}
				if patterns := patternsFor(kind); len(patterns) > 0 {
					_, _ = fmt.Fprintf(out, "Matches: %s\n", strings.Join(patterns, ", "))
				}
			}
			return nil
		},
	}
	return cmd
}

// patternsFor lists the quoted substrings that classify as kind, in table order
func patternsFor(kind classify.FailureKind) []string {
	var patterns []string
	for _, rule := range classify.Rules {
		if rule.Kind != kind {
			continue
		}
		for _, p := range rule.Patterns {
			patterns = append(patterns, fmt.Sprintf("%q", p))
		}
	}
	return patterns
}
