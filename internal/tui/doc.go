// Package tui provides the terminal user interface for smartpush.
//
// It handles:
//   - Interactive prompts: numbered menus (survey or plain line input) and
//     commit message entry (bubbletea text input or plain line input)
//   - Console output and the rotating diagnostic log (Splog)
//   - Terminal styling (using lipgloss)
package tui
