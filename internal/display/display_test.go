package display_test

import (
	"testing"

	"rotor/internal/display"
)

func TestVerdict(t *testing.T) {
	tests := []struct{ code, want string }{
		{"pass", "Correct"},
		{"fail", "Incorrect"},
		{"skip", "Unanswered"},
		{"weird", "weird"}, // unknown codes pass through
	}
	for _, tt := range tests {
		if got := display.Verdict(tt.code); got != tt.want {
			t.Errorf("Verdict(%q) = %q, want %q", tt.code, got, tt.want)
		}
	}
}

func TestVerdictWithCode(t *testing.T) {
	if got := display.VerdictWithCode("pass"); got != "Correct (pass)" {
		t.Errorf("VerdictWithCode(pass) = %q", got)
	}
	if got := display.VerdictWithCode("mystery"); got != "mystery" {
		t.Errorf("VerdictWithCode(mystery) = %q", got)
	}
}

func TestShift(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{0, "+0 (A→A)"},
		{3, "+3 (A→D)"},
		{25, "+25 (A→Z)"},
		{26, "+0 (A→A)"},
		{29, "+3 (A→D)"},
		{-1, "+25 (A→Z)"},
	}
	for _, tt := range tests {
		if got := display.Shift(tt.n); got != tt.want {
			t.Errorf("Shift(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}
