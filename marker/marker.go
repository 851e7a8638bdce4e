// Package marker resolves imprecise timestamps to the nearest recorded
// snapshot time.
package marker

import (
	"errors"
	"fmt"
)

// ErrEmptyMarkerSet is returned when there are no markers to resolve against.
var ErrEmptyMarkerSet = errors.New("empty marker set")

// Direction selects which side of the target a marker may fall on.
type Direction int

const (
	// Backward selects the largest marker at or before the target.
	Backward Direction = iota
	// Forward selects the smallest marker at or after the target.
	Forward
)

// String returns the string representation of a Direction.
func (d Direction) String() string {
	switch d {
	case Backward:
		return "backward"
	case Forward:
		return "forward"
	default:
		return fmt.Sprintf("unknown(%d)", int(d))
	}
}

// Resolve returns the marker nearest to target in direction dir, skipping the
// optional exclude value. When no marker qualifies it falls back to the
// smallest marker (Backward) or the largest marker (Forward).
func Resolve(markers []int64, target int64, dir Direction, exclude ...int64) (int64, error) {
	if len(markers) == 0 {
		return 0, ErrEmptyMarkerSet
	}
	excluded := func(m int64) bool {
		for _, e := range exclude {
			if m == e {
				return true
			}
		}
		return false
	}

	var (
		best   int64
		found  bool
		lo, hi = markers[0], markers[0]
	)
	for _, m := range markers {
		if m < lo {
			lo = m
		}
		if m > hi {
			hi = m
		}
		if excluded(m) {
			continue
		}
		switch dir {
		case Backward:
			if m <= target && (!found || m > best) {
				best, found = m, true
			}
		case Forward:
			if m >= target && (!found || m < best) {
				best, found = m, true
			}
		default:
			return 0, fmt.Errorf("unknown direction %d", int(dir))
		}
	}
	if found {
		return best, nil
	}
	if dir == Backward {
		return lo, nil
	}
	return hi, nil
}

// ResolvePair aligns a from/to target pair to two markers: from is resolved
// backward, then to is resolved forward excluding the marker chosen for from.
func ResolvePair(markers []int64, from, to int64) (int64, int64, error) {
	f, err := Resolve(markers, from, Backward)
	if err != nil {
		return 0, 0, err
	}
	t, err := Resolve(markers, to, Forward, f)
	if err != nil {
		return 0, 0, err
	}
	return f, t, nil
}
