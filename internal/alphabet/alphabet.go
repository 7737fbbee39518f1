// Package alphabet provides the validated letter type the cipher operates on.
//
// Rule: once a Value exists, it is a valid uppercase letter. Validation and
// case folding happen in the constructor; everything downstream (shifting,
// rendering) can rely on the invariant instead of re-checking ranges.
package alphabet

import "errors"

// ErrNotALetter reports input outside A-Z and a-z. It is an expected branch,
// not a fatal condition: callers drop the offending character and move on.
var ErrNotALetter = errors.New("not a Latin letter")

// Size is the number of letters in the alphabet.
const Size = 26

// Value is one validated uppercase letter in ['A','Z'].
// Internally it stores the zero-based offset from 'A', so the zero Value
// is 'A' and out-of-range states are unrepresentable outside this package.
type Value struct {
	off byte // always in [0,25]
}

// New validates and normalizes c. Uppercase letters are stored directly,
// lowercase letters are folded to their uppercase counterpart, and anything
// else (digits, punctuation, whitespace, non-ASCII runes) is ErrNotALetter.
func New(c rune) (Value, error) {
	switch {
	case c >= 'A' && c <= 'Z':
		return Value{off: byte(c - 'A')}, nil
	case c >= 'a' && c <= 'z':
		return Value{off: byte(c - 'a')}, nil
	default:
		return Value{}, ErrNotALetter
	}
}

// Shift rotates the letter n positions forward, wrapping past 'Z'.
// n may be any int: it is reduced into [0,25] before the additive step, so
// negative amounts (decode complements) and amounts beyond 26 both work.
// Shift never fails and never mutates the receiver.
func (v Value) Shift(n int) Value {
	n = ((n % Size) + Size) % Size
	return Value{off: byte((int(v.off) + n) % Size)}
}

// Offset returns the zero-based position from 'A' (0..25).
func (v Value) Offset() int { return int(v.off) }

// Byte returns the uppercase letter as an ASCII byte.
func (v Value) Byte() byte { return 'A' + v.off }

// String implements fmt.Stringer.
func (v Value) String() string { return string(rune('A' + v.off)) }
