// Package common provides shared helper functions for CLI commands.
package common

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"smartpush.dev/smartpush/internal/config"
	"smartpush.dev/smartpush/internal/git"
	"smartpush.dev/smartpush/internal/runtime"
	"smartpush.dev/smartpush/internal/tui"
)

// LoadConfig decodes the command's viper instance into a validated Config
func LoadConfig(v *viper.Viper) (*config.Config, error) {
	cfg, err := config.Load(v)
	if err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// NewSplog creates console output for cmd, mirrored to the diagnostic log when configured.
// A diagnostic log that cannot be opened is reported and skipped.
func NewSplog(cmd *cobra.Command, cfg *config.Config) *tui.Splog {
	opts := tui.SplogOptions{
		Writer:      cmd.OutOrStdout(),
		LogFilePath: cfg.Log.DiagnosticFile,
		Debug:       cfg.Log.Debug || runtime.IsDebug(),
	}
	splog, err := tui.NewSplogWithOptions(opts)
	if err == nil {
		return splog
	}

	opts.LogFilePath = ""
	splog, _ = tui.NewSplogWithOptions(opts)
	splog.Warn("Diagnostic log disabled: %v", err)
	return splog
}

// AuditPath returns the audit log for the repository containing the working
// directory, or for the working directory itself outside a repository.
func AuditPath(cfg *config.Config) (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get working directory: %w", err)
	}
	if root, err := git.FindRepoRoot(wd); err == nil {
		return cfg.AuditPath(root), nil
	}
	return cfg.AuditPath(wd), nil
}
