package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"smartpush.dev/smartpush/internal/classify"
	"smartpush.dev/smartpush/internal/remedy"
	"smartpush.dev/smartpush/internal/utils"
)

// newClassifyCmd creates the classify command
func newClassifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "classify [text...]",
		Short: "Classify git output the way a failed push would be",
		Long: `Classify git output the way a failed push would be classified and print the
matching failure kind and its recommended action.

The text is taken from the arguments, or from standard input when no
arguments are given.

Example:
  git push 2>&1 | smartpush classify`,
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")
			if text == "" {
				piped, err := utils.ReadPiped(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("failed to read input: %w", err)
				}
				text = piped
			}
			if text == "" {
				return fmt.Errorf("no text to classify: pass it as arguments or on standard input")
			}

			kind := classify.Classify(text)
			remediation := remedy.Lookup(kind)

			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "Kind:        %s\n", kind)
			_, _ = fmt.Fprintf(out, "Title:       %s\n", remediation.Title)
			_, _ = fmt.Fprintf(out, "Recommended: %s\n", remediation.RecommendedAction)
			return nil
		},
	}
	return cmd
}
