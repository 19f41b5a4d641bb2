package remedy

import (
	"fmt"
	"strconv"
	"strings"

	smartpusherrors "smartpush.dev/smartpush/internal/errors"
)

// ValidateSelection turns a 1-based menu answer into a 0-based option index.
// Non-numeric and out-of-range answers return ErrInvalidSelection.
func ValidateSelection(input string, optionCount int) (int, error) {
	trimmed := strings.TrimSpace(input)
	n, err := strconv.Atoi(trimmed)
	if err != nil || strings.HasPrefix(trimmed, "+") {
		return 0, fmt.Errorf("%w: %q is not a number", smartpusherrors.ErrInvalidSelection, trimmed)
	}
	if n < 1 || n > optionCount {
		return 0, fmt.Errorf("%w: choose a number between 1 and %d", smartpusherrors.ErrInvalidSelection, optionCount)
	}
	return n - 1, nil
}
