// Package display provides human-readable names for machine codes.
//
// Rule: code is for machines, words are for humans.
// Use these functions in CLI output and markdown reports.
// Keep raw codes for YAML fields, DB columns, and equality comparisons.
package display

import "fmt"

// --- Verdicts ---

var verdicts = map[string]string{
	"pass": "Correct",
	"fail": "Incorrect",
	"skip": "Unanswered",
}

// Verdict returns the human-readable name for a verdict code.
// Unknown codes are returned as-is.
func Verdict(code string) string {
	if name, ok := verdicts[code]; ok {
		return name
	}
	return code
}

// VerdictWithCode returns "Correct (pass)" format.
func VerdictWithCode(code string) string {
	if name, ok := verdicts[code]; ok {
		return name + " (" + code + ")"
	}
	return code
}

// Shift formats a shift amount with its letter mapping, e.g. "+3 (A→D)".
func Shift(n int) string {
	off := ((n % 26) + 26) % 26
	return fmt.Sprintf("+%d (A→%c)", off, 'A'+off)
}
