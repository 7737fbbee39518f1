// Package analyze breaks shift ciphertexts by letter-frequency statistics.
// It automates the reference answer to the problem set's "why is this cipher
// weak" question: score all 26 possible shifts against English letter
// frequencies and rank them.
package analyze

import (
	"sort"

	"rotor/internal/alphabet"
	"rotor/internal/codec"
)

// english holds relative letter frequencies for English text (A-Z, percent).
// Standard corpus figures; precision beyond two decimals does not change
// the ranking for classroom-length inputs.
var english = [alphabet.Size]float64{
	8.17, 1.49, 2.78, 4.25, 12.70, 2.23, 2.02, 6.09, 6.97, 0.15,
	0.77, 4.03, 2.41, 6.75, 7.51, 1.93, 0.10, 5.99, 6.33, 9.06,
	2.76, 0.98, 2.36, 0.15, 1.97, 0.07,
}

// Candidate is one possible shift with its fit score. Lower is better.
type Candidate struct {
	Shift   int     // the shift the plaintext was encoded with
	Score   float64 // chi-squared distance from English letter frequencies
	Preview string  // the decode under this shift, in display blocks
}

// Frequencies counts the letters of s after parsing (case folded,
// non-letters dropped), indexed by zero-based offset from 'A'.
func Frequencies(s string) [alphabet.Size]int {
	var counts [alphabet.Size]int
	for _, v := range codec.Parse(s) {
		counts[v.Offset()]++
	}
	return counts
}

// Crack scores every possible shift of ciphertext and returns all 26
// candidates sorted best-first (ties broken by smaller shift). It never
// fails; for letterless input all scores are zero and the order is by shift.
func Crack(ciphertext string) []Candidate {
	observed := Frequencies(ciphertext)
	total := 0
	for _, c := range observed {
		total += c
	}

	candidates := make([]Candidate, alphabet.Size)
	for shift := 0; shift < alphabet.Size; shift++ {
		candidates[shift] = Candidate{
			Shift:   shift,
			Score:   chiSquared(observed, shift, total),
			Preview: codec.Decode(ciphertext, shift),
		}
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score < candidates[j].Score
	})
	return candidates
}

// chiSquared measures how far the decode under shift sits from English.
// Decoding by shift maps ciphertext offset c to plaintext offset (c-shift) mod 26,
// so the observed count for plaintext letter p is observed[(p+shift) mod 26].
func chiSquared(observed [alphabet.Size]int, shift, total int) float64 {
	if total == 0 {
		return 0
	}
	var score float64
	for p := 0; p < alphabet.Size; p++ {
		got := float64(observed[(p+shift)%alphabet.Size])
		want := english[p] / 100 * float64(total)
		d := got - want
		score += d * d / want
	}
	return score
}
