package cli

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"smartpush.dev/smartpush/internal/audit"
	"smartpush.dev/smartpush/internal/cli/common"
	"smartpush.dev/smartpush/internal/tui/style"
)

const defaultLogEntries = 20

// newLogCmd creates the log command
func newLogCmd(v *viper.Viper) *cobra.Command {
	var (
		entries      int
		commandsOnly bool
	)

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Show the most recent entries of the audit log",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := common.LoadConfig(v)
			if err != nil {
				return err
			}
			path, err := common.AuditPath(cfg)
			if err != nil {
				return err
			}

			tail, err := audit.Tail(path, entries)
			if err != nil {
				if errors.Is(err, fs.ErrNotExist) {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "No audit log at %s yet.\n", path)
					return nil
				}
				return err
			}

			out := cmd.OutOrStdout()
			for _, e := range tail {
				if commandsOnly && !e.IsCommand() {
					continue
				}
				ts := style.Dim.Render("[" + e.Timestamp.Format(audit.TimestampLayout) + "]")
				_, _ = fmt.Fprintf(out, "%s %s\n", ts, e.Text)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&entries, "entries", "n", defaultLogEntries, "Number of entries to show (0 shows all)")
	cmd.Flags().BoolVar(&commandsOnly, "commands", false, "Only show command invocations")

	return cmd
}
