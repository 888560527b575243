// Package schedule turns a raw iCalendar feed into the flat item list the
// site renders.
package schedule

// Event categories recognized by the classifier. Events matching none of
// the markers fall back to TypeStream.
const (
	TypeMLB    = "MLB"
	TypeF1     = "F1"
	TypeFE     = "FE"
	TypeBuild  = "BUILD"
	TypeGame   = "GAME"
	TypeStream = "STREAM"
)

// Live/replay note values.
const (
	NoteLive   = "Live"
	NoteReplay = "Replay"
)

// DefaultWhere is shown when an event carries no location of its own.
const DefaultWhere = "Kick · Twitch · YouTube"

// Item is one schedule entry as serialized for the site. When is the
// start instant in UTC, formatted as YYYY-MM-DDTHH:MM:SSZ.
type Item struct {
	Title string `json:"title"`
	When  string `json:"when"`
	Where string `json:"where"`
	Type  string `json:"type"`
	Note  string `json:"note"`
}

// Document is the output payload written once per run.
type Document struct {
	Items []Item `json:"items"`
}
