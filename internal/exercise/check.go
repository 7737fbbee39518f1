package exercise

import "rotor/internal/codec"

// Verdict classifies one checked case.
type Verdict string

const (
	VerdictPass Verdict = "pass"
	VerdictFail Verdict = "fail"
	VerdictSkip Verdict = "skip" // expected left blank (unanswered)
)

// Result is the outcome of checking one case.
type Result struct {
	Case    Case
	Got     string
	Verdict Verdict
}

// Check encodes the case input and compares it with the expected ciphertext.
// Pure; the only branches are the three verdicts.
func Check(c Case) Result {
	got := codec.Encode(c.Input, c.Shift)
	r := Result{Case: c, Got: got}
	switch {
	case c.Expected == "":
		r.Verdict = VerdictSkip
	case got == c.Expected:
		r.Verdict = VerdictPass
	default:
		r.Verdict = VerdictFail
	}
	return r
}
