// Package git provides low-level Git operations.
//
// It wraps git command execution and provides:
//   - CommandRunner, which runs git and appends every invocation to the audit log
//   - Branch resolution with layered fallbacks
//   - Repository discovery and remote lookup via go-git
//
// This package should be the only place where git commands are executed.
package git
