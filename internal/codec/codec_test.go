package codec_test

import (
	"strings"
	"testing"

	"rotor/internal/codec"
)

func TestEncode_Scenarios(t *testing.T) {
	tests := []struct {
		name  string
		input string
		shift int
		want  string
	}{
		{"single letter", "A", 1, "B"},
		{"wraps around Z", "Z", 1, "A"},
		{"grouping at five", "HELLOWORLD", 0, "HELLO WORLD"},
		{"case fold shift group", "attackatdawn", 3, "DWWDF NDWGD ZQ"},
		{"non-letters elided", "A1B2C3", 0, "ABC"},
		{"case normalization", "abc", 0, "ABC"},
		{"empty input", "", 7, ""},
		{"no letters at all", "123 !? ...", 5, ""},
		{"punctuation and spacing", "Attack at dawn!", 3, "DWWDF NDWGD ZQ"},
		{"rot13", "HELLO", 13, "URYYB"},
		{"exactly one block", "ABCDE", 0, "ABCDE"},
		{"one past a block", "ABCDEF", 0, "ABCDE F"},
		{"non-ascii dropped", "naïve café", 0, "NAVEC AF"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := codec.Encode(tt.input, tt.shift); got != tt.want {
				t.Errorf("Encode(%q, %d) = %q, want %q", tt.input, tt.shift, got, tt.want)
			}
		})
	}
}

func TestEncode_ShiftCongruentMod26(t *testing.T) {
	const s = "The quick brown fox jumps over the lazy dog"
	for n := 0; n < 26; n++ {
		if codec.Encode(s, n) != codec.Encode(s, n+26) {
			t.Errorf("Encode(s, %d) != Encode(s, %d)", n, n+26)
		}
	}
}

func TestEncode_ZeroShiftNormalizes(t *testing.T) {
	got := codec.Encode("Hello, World 42", 0)
	if got != "HELLO WORLD" {
		t.Errorf("Encode zero shift = %q, want %q", got, "HELLO WORLD")
	}
}

func TestDecode_RoundTrip(t *testing.T) {
	const s = "meet me at the usual place at noon"
	normalized := codec.Encode(s, 0)
	for n := 0; n < 26; n++ {
		enc := codec.Encode(s, n)
		if got := codec.Decode(enc, n); got != normalized {
			t.Errorf("Decode(Encode(s, %d), %d) = %q, want %q", n, n, got, normalized)
		}
	}
}

func TestDecode_ComplementEquivalence(t *testing.T) {
	// Decoding by n equals encoding by 26-n, the written form of the complement.
	const ct = "DWWDF NDWGD ZQ"
	for n := 1; n < 26; n++ {
		if codec.Decode(ct, n) != codec.Encode(ct, 26-n) {
			t.Errorf("Decode(ct, %d) != Encode(ct, %d)", n, 26-n)
		}
	}
}

func TestParse_OrderPreservedAndFiltered(t *testing.T) {
	vals := codec.Parse("a9B c!D")
	var b strings.Builder
	for _, v := range vals {
		b.WriteByte(v.Byte())
	}
	if b.String() != "ABCD" {
		t.Errorf("Parse letters = %q, want ABCD", b.String())
	}
}

func TestRender_BlockBoundaries(t *testing.T) {
	tests := []struct {
		letters string
		want    string
	}{
		{"", ""},
		{"A", "A"},
		{"ABCDE", "ABCDE"},
		{"ABCDEFGHIJ", "ABCDE FGHIJ"},
		{"ABCDEFGHIJK", "ABCDE FGHIJ K"},
	}
	for _, tt := range tests {
		if got := codec.Render(codec.Parse(tt.letters)); got != tt.want {
			t.Errorf("Render(%q) = %q, want %q", tt.letters, got, tt.want)
		}
	}
}
