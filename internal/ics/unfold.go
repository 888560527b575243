// Package ics implements the small slice of the iCalendar text format the
// schedule feed needs: line unfolding, property tokenization, date-time
// interpretation, and text unescaping. It is deliberately tolerant of
// malformed input; a public feed with a few bad entries should still yield
// a usable schedule.
package ics

import "strings"

// Unfold normalizes line endings and merges folded continuation lines
// (physical lines starting with a space or tab) into the preceding logical
// line, dropping the single leading whitespace character. Empty lines are
// discarded entirely.
func Unfold(raw string) []string {
	normalized := strings.ReplaceAll(raw, "\r\n", "\n")
	normalized = strings.ReplaceAll(normalized, "\r", "\n")

	logical := make([]string, 0, strings.Count(normalized, "\n")+1)
	for _, line := range strings.Split(normalized, "\n") {
		if line == "" {
			continue
		}
		if (line[0] == ' ' || line[0] == '\t') && len(logical) > 0 {
			logical[len(logical)-1] += line[1:]
			continue
		}
		logical = append(logical, line)
	}
	return logical
}
