package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"smartpush.dev/smartpush/internal/tui"
)

// EnvPrefix prefixes every environment variable override
const EnvPrefix = "SMARTPUSH"

// Config represents the complete smartpush configuration
type Config struct {
	Git      GitConfig      `mapstructure:"git"`
	Audit    AuditConfig    `mapstructure:"audit"`
	Commit   CommitConfig   `mapstructure:"commit"`
	Log      LogConfig      `mapstructure:"log"`
	Diagnose DiagnoseConfig `mapstructure:"diagnose"`
	Prompt   PromptConfig   `mapstructure:"prompt"`
}

// GitConfig controls how git is invoked
type GitConfig struct {
	// Binary is the git executable
	Binary string `mapstructure:"binary"`
	// Remote is the remote pushed to
	Remote string `mapstructure:"remote"`
}

// AuditConfig controls the append-only command log
type AuditConfig struct {
	// File is the audit log path; relative paths resolve against the repository root
	File string `mapstructure:"file"`
}

// CommitConfig controls commit message synthesis
type CommitConfig struct {
	// TimestampFormat is the Go time layout appended to the message in brackets
	TimestampFormat string `mapstructure:"timestamp_format"`
}

// LogConfig controls the rotating diagnostic log
type LogConfig struct {
	// DiagnosticFile is the diagnostic log path; empty disables it
	DiagnosticFile string `mapstructure:"diagnostic_file"`
	// Debug prints debug messages on the console
	Debug bool `mapstructure:"debug"`
}

// DiagnoseConfig controls remote diagnostics on credential failures
type DiagnoseConfig struct {
	// GitHub queries the GitHub API when a token is available
	GitHub bool `mapstructure:"github"`
}

// PromptConfig controls interactive prompts
type PromptConfig struct {
	// Interactive is "auto" (terminal widgets on a TTY) or "never" (plain line input)
	Interactive string `mapstructure:"interactive"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Git: GitConfig{
			Binary: "git",
			Remote: "origin",
		},
		Audit: AuditConfig{
			File: "git_smart_push.log",
		},
		Commit: CommitConfig{
			TimestampFormat: "2006-01-02 15:04",
		},
		Log: LogConfig{
			DiagnosticFile: tui.DefaultLogFilePath(),
		},
		Diagnose: DiagnoseConfig{
			GitHub: true,
		},
		Prompt: PromptConfig{
			Interactive: "auto",
		},
	}
}

// SetDefaults registers every default on v so keys resolve without a config file
func SetDefaults(v *viper.Viper) {
	defaults := Default()

	v.SetDefault("git.binary", defaults.Git.Binary)
	v.SetDefault("git.remote", defaults.Git.Remote)
	v.SetDefault("audit.file", defaults.Audit.File)
	v.SetDefault("commit.timestamp_format", defaults.Commit.TimestampFormat)
	v.SetDefault("log.diagnostic_file", defaults.Log.DiagnosticFile)
	v.SetDefault("log.debug", defaults.Log.Debug)
	v.SetDefault("diagnose.github", defaults.Diagnose.GitHub)
	v.SetDefault("prompt.interactive", defaults.Prompt.Interactive)
}

// ConfigDir returns the user configuration directory for smartpush
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "smartpush")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "smartpush")
}

// Init prepares v: defaults, environment overrides and config file lookup.
// An explicit configFile must exist; otherwise a missing file is not an error.
func Init(v *viper.Viper, configFile string) error {
	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	// Replace dots with underscores for nested keys in env vars
	// e.g., SMARTPUSH_GIT_REMOTE for git.remote
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config file %s: %w", configFile, err)
		}
		return nil
	}

	v.SetConfigName("smartpush")
	v.SetConfigType("yaml")
	if dir := ConfigDir(); dir != "" {
		v.AddConfigPath(dir)
	}
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("failed to read config: %w", err)
	}
	return nil
}

// Load decodes v into a validated Config
func Load(v *viper.Viper) (*Config, error) {
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings the session cannot run with
func (c *Config) Validate() error {
	switch {
	case strings.TrimSpace(c.Git.Binary) == "":
		return errors.New("git.binary must not be empty")
	case strings.TrimSpace(c.Git.Remote) == "":
		return errors.New("git.remote must not be empty")
	case strings.TrimSpace(c.Audit.File) == "":
		return errors.New("audit.file must not be empty")
	case strings.TrimSpace(c.Commit.TimestampFormat) == "":
		return errors.New("commit.timestamp_format must not be empty")
	}
	switch c.Prompt.Interactive {
	case "auto", "never":
	default:
		return fmt.Errorf("prompt.interactive must be auto or never, got %q", c.Prompt.Interactive)
	}
	return nil
}

// AuditPath resolves the audit log path against repoRoot
func (c *Config) AuditPath(repoRoot string) string {
	if filepath.IsAbs(c.Audit.File) || repoRoot == "" {
		return c.Audit.File
	}
	return filepath.Join(repoRoot, c.Audit.File)
}
