package tui

import (
	"os"

	"github.com/mattn/go-isatty"
)

// IsTTY reports whether prompts can use terminal widgets: stdin and stdout
// are both terminals and the controlling terminal can be opened.
func IsTTY() bool {
	if !isTerminal(os.Stdin) || !isTerminal(os.Stdout) {
		return false
	}
	f, err := os.OpenFile("/dev/tty", os.O_RDWR, 0)
	if err != nil {
		return false
	}
	_ = f.Close()
	return true
}

func isTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
