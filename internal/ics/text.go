package ics

import "strings"

// unescaper covers the TEXT escapes the feed actually uses. Escaped
// newlines become spaces so titles and descriptions stay single-line.
var unescaper = strings.NewReplacer(
	`\n`, " ",
	`\N`, " ",
	`\,`, ",",
	`\;`, ";",
)

// UnescapeText reverses iCalendar TEXT escaping and trims surrounding
// whitespace. Text without escape sequences comes back unchanged apart
// from the trim.
func UnescapeText(s string) string {
	return strings.TrimSpace(unescaper.Replace(s))
}
