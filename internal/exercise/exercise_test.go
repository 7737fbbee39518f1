package exercise_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"rotor/internal/exercise"
)

const sampleSet = `name: week-3
cases:
  - name: warmup
    input: attackatdawn
    shift: 3
    expected: DWWDF NDWGD ZQ
  - name: identity
    input: Hello, World
    shift: 0
    expected: HELLO WORLD
  - name: unanswered
    input: retreat
    shift: 5
    expected: ""
`

func writeSet(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "set.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write set: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	set, err := exercise.Load(writeSet(t, sampleSet))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := &exercise.Set{
		Name: "week-3",
		Cases: []exercise.Case{
			{Name: "warmup", Input: "attackatdawn", Shift: 3, Expected: "DWWDF NDWGD ZQ"},
			{Name: "identity", Input: "Hello, World", Shift: 0, Expected: "HELLO WORLD"},
			{Name: "unanswered", Input: "retreat", Shift: 5},
		},
	}
	if diff := cmp.Diff(want, set); diff != "" {
		t.Errorf("loaded set mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := exercise.Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestValidate_Rejects(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"no set name", "cases:\n  - name: a\n    input: x\n", "set name is required"},
		{"no cases", "name: empty\n", "has no cases"},
		{"unnamed case", "name: s\ncases:\n  - input: x\n", "has no name"},
		{"duplicate names", "name: s\ncases:\n  - name: a\n    input: x\n  - name: a\n    input: y\n", "duplicate case name"},
		{"negative shift", "name: s\ncases:\n  - name: a\n    input: x\n    shift: -1\n", "must be non-negative"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := exercise.Load(writeSet(t, tt.content))
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Load err = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestCheck_Verdicts(t *testing.T) {
	tests := []struct {
		name string
		c    exercise.Case
		want exercise.Verdict
	}{
		{"pass", exercise.Case{Name: "p", Input: "abc", Shift: 0, Expected: "ABC"}, exercise.VerdictPass},
		{"fail", exercise.Case{Name: "f", Input: "abc", Shift: 1, Expected: "ABC"}, exercise.VerdictFail},
		{"skip", exercise.Case{Name: "s", Input: "abc", Shift: 1}, exercise.VerdictSkip},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := exercise.Check(tt.c)
			if res.Verdict != tt.want {
				t.Errorf("verdict = %s, want %s (got %q)", res.Verdict, tt.want, res.Got)
			}
		})
	}
}
