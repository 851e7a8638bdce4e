// Package tier classifies rows by how many days ago they were last seen.
package tier

import (
	"fmt"
	"math"
	"time"
)

// Tier is the recency bucket of a row.
type Tier int

const (
	// None means the row is older than 120 days, or could not be classified.
	None Tier = iota
	// Recent is at most 60 days.
	Recent
	// Moderate is more than 60 and at most 90 days.
	Moderate
	// Aged is more than 90 and at most 120 days.
	Aged
)

const day = 24 * time.Hour

// String returns the string representation of a Tier.
func (t Tier) String() string {
	switch t {
	case None:
		return "none"
	case Recent:
		return "recent"
	case Moderate:
		return "moderate"
	case Aged:
		return "aged"
	default:
		return fmt.Sprintf("unknown(%d)", int(t))
	}
}

// Class returns the contextual css class used to highlight a row of this
// tier, or "" for None.
func (t Tier) Class() string {
	switch t {
	case Recent:
		return "success"
	case Moderate:
		return "warning"
	case Aged:
		return "danger"
	default:
		return ""
	}
}

// Fill returns the RRGGBB background colour matching Class.
func (t Tier) Fill() string {
	switch t {
	case Recent:
		return "DFF0D8"
	case Moderate:
		return "FAF2CC"
	case Aged:
		return "F2DEDE"
	default:
		return ""
	}
}

// ForDays maps a whole number of days to its tier.
func ForDays(days int) Tier {
	switch {
	case days <= 60:
		return Recent
	case days <= 90:
		return Moderate
	case days <= 120:
		return Aged
	default:
		return None
	}
}

// DayDifference returns |a-b| in days, rounded to the nearest whole day.
func DayDifference(a, b time.Time) int {
	d := a.Sub(b)
	if d < 0 {
		d = -d
	}
	return int(math.Round(float64(d) / float64(day)))
}

// Classify returns the tier of something last seen at seen, observed at now.
func Classify(seen, now time.Time) Tier {
	return ForDays(DayDifference(seen, now))
}
