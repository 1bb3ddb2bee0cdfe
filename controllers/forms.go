package controllers

import (
	"fmt"
	"time"
)

// Form timestamp layouts, most specific first. The dashboard forms submit
// datetime-local values without a zone; already-canonical RFC 3339 values
// pass through on edit round-trips.
var formTimestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// parseFormTimestamp normalizes a submitted date field to a UTC timestamp.
func parseFormTimestamp(value string) (time.Time, error) {
	for _, layout := range formTimestampLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", value)
}
