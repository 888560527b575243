package schedule

import (
	"regexp"
	"strings"
)

// The two prefix forms a summary may carry: "[MLB] ..." or "MLB: ..." /
// "MLB| ...". The bracketed form is checked first.
var typePrefixes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^\s*\[(MLB|F1|FE|BUILD|GAME)\]\s*`),
	regexp.MustCompile(`(?i)^\s*(MLB|F1|FE|BUILD|GAME)\s*[:|]\s*`),
}

// hashtagRules map body hashtags to categories, highest priority first.
var hashtagRules = []struct {
	tags []string
	typ  string
}{
	{tags: []string{"#mlb"}, typ: TypeMLB},
	{tags: []string{"#f1"}, typ: TypeF1},
	{tags: []string{"#fe", "#formulae"}, typ: TypeFE},
	{tags: []string{"#build"}, typ: TypeBuild},
	{tags: []string{"#game"}, typ: TypeGame},
}

// replayMarkers flag an event as a rebroadcast wherever they appear in the
// summary or description.
var replayMarkers = []string{"#replay", "[replay]", "replay:"}

// InferType returns the category marked by the summary prefix or, failing
// that, by a hashtag anywhere in the summary or description. ok is false
// when no marker is present; the caller substitutes TypeStream.
func InferType(summary, description string) (typ string, ok bool) {
	trimmed := strings.TrimSpace(summary)
	for _, prefix := range typePrefixes {
		if m := prefix.FindStringSubmatch(trimmed); m != nil {
			return strings.ToUpper(m[1]), true
		}
	}

	text := strings.ToLower(summary + " " + description)
	for _, rule := range hashtagRules {
		for _, tag := range rule.tags {
			if strings.Contains(text, tag) {
				return rule.typ, true
			}
		}
	}
	return "", false
}

// InferNote reports whether the event is flagged as a replay.
func InferNote(summary, description string) string {
	text := strings.ToLower(summary + " " + description)
	for _, marker := range replayMarkers {
		if strings.Contains(text, marker) {
			return NoteReplay
		}
	}
	return NoteLive
}

// StripTypePrefix removes a category marker prefix from the summary.
// Summaries without a marker come back unchanged apart from trimming.
func StripTypePrefix(summary string) string {
	s := strings.TrimSpace(summary)
	for _, prefix := range typePrefixes {
		s = prefix.ReplaceAllString(s, "")
	}
	return strings.TrimSpace(s)
}
