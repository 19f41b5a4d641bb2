// Package output renders progress for long-running git commands.
package output
