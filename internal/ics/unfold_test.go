package ics

import (
	"reflect"
	"strings"
	"testing"
)

func TestUnfold_MergesContinuationLines(t *testing.T) {
	t.Parallel()

	raw := "SUMMARY:A very long\r\n  title that keeps going\r\nLOCATION:Home\r\n"
	lines := Unfold(raw)

	want := []string{"SUMMARY:A very long title that keeps going", "LOCATION:Home"}
	if !reflect.DeepEqual(lines, want) {
		t.Fatalf("Unfold() = %q, want %q", lines, want)
	}
}

func TestUnfold_TabContinuation(t *testing.T) {
	t.Parallel()

	lines := Unfold("DESCRIPTION:part one\n\tpart two")
	if len(lines) != 1 {
		t.Fatalf("expected 1 logical line, got %d: %q", len(lines), lines)
	}
	if lines[0] != "DESCRIPTION:part onepart two" {
		t.Fatalf("unexpected logical line: %q", lines[0])
	}
}

func TestUnfold_NormalizesLineEndings(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
	}{
		{name: "crlf", raw: "A:1\r\nB:2\r\n"},
		{name: "cr", raw: "A:1\rB:2\r"},
		{name: "lf", raw: "A:1\nB:2\n"},
	}

	want := []string{"A:1", "B:2"}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := Unfold(tc.raw); !reflect.DeepEqual(got, want) {
				t.Fatalf("Unfold(%q) = %q, want %q", tc.raw, got, want)
			}
		})
	}
}

func TestUnfold_DropsEmptyLines(t *testing.T) {
	t.Parallel()

	lines := Unfold("A:1\n\n\nB:2\n\n")
	want := []string{"A:1", "B:2"}
	if !reflect.DeepEqual(lines, want) {
		t.Fatalf("Unfold() = %q, want %q", lines, want)
	}
}

// A continuation with no preceding logical line starts a new line instead
// of panicking.
func TestUnfold_LeadingContinuation(t *testing.T) {
	t.Parallel()

	lines := Unfold(" orphan\nA:1")
	want := []string{" orphan", "A:1"}
	if !reflect.DeepEqual(lines, want) {
		t.Fatalf("Unfold() = %q, want %q", lines, want)
	}
}

// Unfolding already-unfolded text must be a no-op.
func TestUnfold_Idempotent(t *testing.T) {
	t.Parallel()

	raw := "SUMMARY:A very long\r\n title that keeps going\r\nLOCATION:Home\r\n"
	once := Unfold(raw)
	twice := Unfold(strings.Join(once, "\n"))
	if !reflect.DeepEqual(once, twice) {
		t.Fatalf("second unfold changed output: %q vs %q", once, twice)
	}
}
