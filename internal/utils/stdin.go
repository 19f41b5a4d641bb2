package utils

import (
	"io"
	"os"
	"strings"
)

// ReadFromStdin reads all content from standard input
func ReadFromStdin() (string, error) {
	return ReadPiped(os.Stdin)
}

// ReadPiped reads all of r and trims it. When r is a terminal or an empty
// regular file it returns "" without blocking.
func ReadPiped(r io.Reader) (string, error) {
	if f, ok := r.(*os.File); ok {
		stat, err := f.Stat()
		if err != nil {
			return "", err
		}

		// If it's a terminal, we don't want to block waiting for input
		if (stat.Mode() & os.ModeCharDevice) != 0 {
			return "", nil
		}

		// If it's a regular file and it's empty, return empty (don't block)
		if stat.Mode().IsRegular() && stat.Size() == 0 {
			return "", nil
		}
	}

	bytes, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(bytes)), nil
}
