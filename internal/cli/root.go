package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"smartpush.dev/smartpush/internal/actions"
	"smartpush.dev/smartpush/internal/cli/common"
	"smartpush.dev/smartpush/internal/config"
	"smartpush.dev/smartpush/internal/git"
	"smartpush.dev/smartpush/internal/output"
	"smartpush.dev/smartpush/internal/runtime"
	"smartpush.dev/smartpush/internal/tui"
)

// Option customizes the root command, used by tests
type Option func(*rootOptions)

type rootOptions struct {
	executor git.Executor
	now      func() time.Time
}

// WithExecutor runs git commands through e
func WithExecutor(e git.Executor) Option {
	return func(o *rootOptions) {
		o.executor = e
	}
}

// WithClock sets the clock used for the commit timestamp
func WithClock(now func() time.Time) Option {
	return func(o *rootOptions) {
		o.now = now
	}
}

// NewRootCmd creates the root cobra command. Running it without a subcommand
// starts a push session.
func NewRootCmd(opts ...Option) *cobra.Command {
	o := &rootOptions{}
	for _, opt := range opts {
		opt(o)
	}

	v := viper.New()
	var (
		cfgFile string
		message string
		branch  string
	)

	rootCmd := &cobra.Command{
		Use:   "smartpush",
		Short: "Stage, commit and push, with guided recovery when the push fails",
		Long: `smartpush stages every change, commits it with a timestamped message and
pushes the current branch. When the push fails it explains what went wrong
and offers the fixes that are safe to apply automatically.

Every git command and its output is appended to git_smart_push.log in the
repository root.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return config.Init(v, cfgFile)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := common.LoadConfig(v)
			if err != nil {
				return err
			}

			splog := common.NewSplog(cmd, cfg)
			defer splog.Close()

			wd, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to get working directory: %w", err)
			}

			prompter := tui.NewPrompter(cfg.Prompt.Interactive, cmd.InOrStdin(), cmd.OutOrStdout())
			rt := runtime.NewContext(cmd.Context(), cfg, splog, prompter, wd)
			rt.Executor = o.executor
			if o.now != nil {
				rt.Now = o.now
			}
			if cfg.Prompt.Interactive != tui.PromptModeNever && tui.IsTTY() {
				rt.Progress = output.NewProgressUI(cmd.ErrOrStderr(), true)
			}

			splog.Info("🧠 smartpush")

			_, err = actions.PushAction(rt, actions.PushOptions{
				Message:          message,
				PromptForMessage: !cmd.Flags().Changed("message"),
				Branch:           branch,
				Remote:           cfg.Git.Remote,
			})
			return err
		},
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default is $XDG_CONFIG_HOME/smartpush/smartpush.yaml or ./smartpush.yaml)")
	rootCmd.PersistentFlags().Bool("debug", false, "Print debug output")
	_ = v.BindPFlag("log.debug", rootCmd.PersistentFlags().Lookup("debug"))

	rootCmd.Flags().StringVarP(&message, "message", "m", "", "Commit message (prompted for when omitted)")
	rootCmd.Flags().StringVar(&branch, "branch", "", "Branch to push (detected when omitted)")
	rootCmd.Flags().String("remote", "", "Remote to push to (default from git.remote, origin)")
	_ = v.BindPFlag("git.remote", rootCmd.Flags().Lookup("remote"))

	rootCmd.AddCommand(newClassifyCmd())
	rootCmd.AddCommand(newExplainCmd())
	rootCmd.AddCommand(newLogCmd(v))

	return rootCmd
}
