package marker

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// NearestSuffix marks a compare location whose timestamps still need to be
// aligned to recorded snapshots.
const NearestSuffix = "/nearest"

// ErrNoNearest is returned when a location does not carry a timestamp pair
// followed by NearestSuffix.
var ErrNoNearest = errors.New("location has no nearest timestamp pair")

var nearestRe = regexp.MustCompile(`(\d{10})/(\d{10})` + regexp.QuoteMeta(NearestSuffix) + `$`)

// HasNearest reports whether location ends in a timestamp pair and NearestSuffix.
func HasNearest(location string) bool {
	return nearestRe.MatchString(location)
}

// ParseNearest extracts the two target timestamps preceding NearestSuffix.
func ParseNearest(location string) (from, to int64, err error) {
	m := nearestRe.FindStringSubmatch(location)
	if m == nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrNoNearest, location)
	}
	if from, err = strconv.ParseInt(m[1], 10, 64); err != nil {
		return 0, 0, err
	}
	if to, err = strconv.ParseInt(m[2], 10, 64); err != nil {
		return 0, 0, err
	}
	return from, to, nil
}

// ReplaceNearest swaps the timestamp pair and NearestSuffix for "from/to".
func ReplaceNearest(location string, from, to int64) string {
	return nearestRe.ReplaceAllLiteralString(location, FormatPair(from, to))
}

// FormatPair renders a marker pair as "from/to".
func FormatPair(from, to int64) string {
	return strconv.FormatInt(from, 10) + "/" + strconv.FormatInt(to, 10)
}

// ReplacePair swaps the first occurrence of "oldFrom/oldTo" in location for
// "from/to". Locations without the old pair are returned unchanged.
func ReplacePair(location string, oldFrom, oldTo, from, to int64) string {
	return strings.Replace(location, FormatPair(oldFrom, oldTo), FormatPair(from, to), 1)
}

// Step moves a selected option position by increment. A position that would
// fall outside [0, options) is returned unchanged.
func Step(options, index, increment int) int {
	if n := index + increment; n >= 0 && n < options {
		return n
	}
	return index
}
