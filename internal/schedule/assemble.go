package schedule

import (
	"strings"
	"time"

	"github.com/keelsystems/thomsfoolery/internal/ics"
)

const (
	beginEvent = "BEGIN:VEVENT"
	endEvent   = "END:VEVENT"
)

// pastGrace keeps events that started shortly before the run; a sync that
// fires mid-stream must not drop the stream it is announcing.
const pastGrace = 24 * time.Hour

// recognized lists the property slots kept per event. Everything else in
// the feed is ignored.
var recognized = map[string]struct{}{
	"SUMMARY":     {},
	"DTSTART":     {},
	"LOCATION":    {},
	"DESCRIPTION": {},
}

// accumulator holds the most recent value of each recognized property for
// the event currently being assembled. It exists only between BEGIN:VEVENT
// and the matching END:VEVENT; later duplicates overwrite earlier ones.
type accumulator map[string]ics.Property

// BuildItems assembles unfolded feed lines into schedule items, keeping
// only events that start within the retention window around now (window
// forward, one day of grace backward). Events with an unusable title or
// start time are dropped individually; one bad entry must not take the
// rest of the schedule down with it.
func BuildItems(lines []string, now time.Time, window time.Duration) []Item {
	items := make([]Item, 0, len(lines)/8)

	inEvent := false
	acc := accumulator{}

	for _, raw := range lines {
		line := strings.TrimSpace(raw)

		switch line {
		case beginEvent:
			// A BEGIN while already inside an event abandons the
			// partial event instead of erroring.
			inEvent = true
			acc = accumulator{}
			continue
		case endEvent:
			if inEvent {
				if item, ok := flush(acc, now, window); ok {
					items = append(items, item)
				}
			}
			inEvent = false
			acc = accumulator{}
			continue
		}

		if !inEvent {
			continue
		}

		prop := ics.ParseProperty(line)
		if _, ok := recognized[prop.Name]; ok {
			acc[prop.Name] = prop
		}
	}

	return items
}

// flush builds one Item from the accumulated properties. ok is false when
// the event is empty, unusable, or outside the retention window.
func flush(acc accumulator, now time.Time, window time.Duration) (Item, bool) {
	if len(acc) == 0 {
		return Item{}, false
	}

	summary := ics.UnescapeText(acc["SUMMARY"].Value)
	if summary == "" {
		return Item{}, false
	}

	dtstart := acc["DTSTART"]
	start, err := ics.ParseDateTime(dtstart.Value, dtstart.Params["TZID"])
	if err != nil {
		return Item{}, false
	}

	if start.Before(now.Add(-pastGrace)) {
		return Item{}, false
	}
	if start.After(now.Add(window)) {
		return Item{}, false
	}

	location := ics.UnescapeText(acc["LOCATION"].Value)
	description := ics.UnescapeText(acc["DESCRIPTION"].Value)

	typ, ok := InferType(summary, description)
	if !ok {
		typ = TypeStream
	}

	where := location
	if where == "" {
		where = DefaultWhere
	}

	return Item{
		Title: StripTypePrefix(summary),
		When:  start.UTC().Format(time.RFC3339),
		Where: where,
		Type:  typ,
		Note:  InferNote(summary, description),
	}, true
}
