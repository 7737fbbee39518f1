package format_test

import (
	"strings"
	"testing"

	"rotor/internal/format"
)

func TestASCII_BasicTable(t *testing.T) {
	tb := format.NewTable(format.ASCII)
	tb.Header("Case", "Verdict", "Got")
	tb.Row("warmup", "Correct", "DWWDF NDWGD ZQ")
	tb.Row("identity", "Incorrect", "HELLO WORLD")
	out := tb.String()

	if !strings.Contains(out, "Case") {
		t.Errorf("expected header 'Case' in output:\n%s", out)
	}
	if !strings.Contains(out, "DWWDF NDWGD ZQ") {
		t.Errorf("expected ciphertext in output:\n%s", out)
	}
	// StyleLight draws with box characters
	if !strings.Contains(out, "───") {
		t.Errorf("expected box-drawing characters in ASCII output:\n%s", out)
	}
}

func TestMarkdown_BasicTable(t *testing.T) {
	tb := format.NewTable(format.Markdown)
	tb.Header("Shift", "Score")
	tb.Row(3, 12.4)
	tb.Row(17, 310.9)
	out := tb.String()

	if !strings.Contains(out, "| Shift") {
		t.Errorf("expected markdown header with '| Shift':\n%s", out)
	}
	if !strings.Contains(out, "---") {
		t.Errorf("expected markdown separator '---':\n%s", out)
	}
}

func TestFooter(t *testing.T) {
	tb := format.NewTable(format.Markdown)
	tb.Header("Case", "Verdict")
	tb.Row("a", "pass")
	tb.Footer("TOTAL", 1)
	out := tb.String()
	if !strings.Contains(out, "TOTAL") {
		t.Errorf("expected footer TOTAL in output:\n%s", out)
	}
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in      string
		want    format.Mode
		wantErr bool
	}{
		{"ascii", format.ASCII, false},
		{"", format.ASCII, false},
		{"markdown", format.Markdown, false},
		{"md", format.Markdown, false},
		{"html", format.ASCII, true},
	}
	for _, tt := range tests {
		got, err := format.ParseMode(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseMode(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if err == nil && got != tt.want {
			t.Errorf("ParseMode(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
