package main

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// readInput returns the command arguments joined with spaces, or the whole
// of stdin when no arguments are given (so text can be piped in).
func readInput(args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return string(data), nil
}

// checkShift validates the common --shift flag.
func checkShift(n int) error {
	if n < 0 {
		return fmt.Errorf("shift must be non-negative, got %d", n)
	}
	return nil
}
