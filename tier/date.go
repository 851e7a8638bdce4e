package tier

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrUnknownDate is returned by ParseDate when no layout matches.
var ErrUnknownDate = errors.New("unrecognised date")

// DateLayouts are tried in order by ParseDate after any caller supplied layouts.
var DateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	time.RFC1123Z,
	time.RFC1123,
	"Mon Jan 2 2006 15:04:05",
	"January 2, 2006 15:04:05",
	"January 2, 2006",
	"Jan 2, 2006",
	"2006-01-02",
	"1/2/2006",
	"1/2/06",
}

// ParseDate parses a last seen date, trying layouts first and DateLayouts
// after them.
func ParseDate(value string, layouts ...string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, list := range [][]string{layouts, DateLayouts} {
		for _, layout := range list {
			if t, err := time.Parse(layout, value); err == nil {
				return t, nil
			}
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrUnknownDate, value)
}
