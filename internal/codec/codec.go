// Package codec converts text to and from the shifted-letter form of the
// alphabet cipher exercise: non-letters are dropped, case is folded to upper,
// every letter is rotated by the shift amount, and the result is displayed in
// five-letter blocks the way cipher textbooks print it.
package codec

import (
	"strings"

	"rotor/internal/alphabet"
)

// BlockSize is the display grouping width. Purely cosmetic.
const BlockSize = 5

// Parse extracts the letters of input, in order, as validated values.
// Digits, punctuation, whitespace and non-ASCII runes are skipped silently.
// The result is never longer than the rune count of input.
func Parse(input string) []alphabet.Value {
	vals := make([]alphabet.Value, 0, len(input))
	for _, r := range input {
		v, err := alphabet.New(r)
		if err != nil {
			continue // not a letter
		}
		vals = append(vals, v)
	}
	return vals
}

// Render concatenates vals and regroups the letters into space-separated
// BlockSize blocks. The final block may be shorter.
func Render(vals []alphabet.Value) string {
	if len(vals) == 0 {
		return ""
	}
	var b strings.Builder
	b.Grow(len(vals) + len(vals)/BlockSize)
	for i, v := range vals {
		if i > 0 && i%BlockSize == 0 {
			b.WriteByte(' ')
		}
		b.WriteByte(v.Byte())
	}
	return b.String()
}

// Encode is the core boundary of the toolkit: drop non-letters, fold case,
// shift every remaining letter n positions forward (wrapping past 'Z'), and
// render in blocks. Total for any input and any int n; letterless input
// encodes to "".
func Encode(input string, n int) string {
	vals := Parse(input)
	for i, v := range vals {
		vals[i] = v.Shift(n)
	}
	return Render(vals)
}

// Decode reverses the shift by applying its complement, so
// Decode(Encode(s, n), n) == Encode(s, 0) — the normalized form of s.
func Decode(input string, n int) string {
	return Encode(input, -n)
}
