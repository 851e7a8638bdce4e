package page

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"

	"github.com/aerissecure/salesfinder/marker"
)

var (
	snapshotOptionSel = cascadia.MustCompile("#historicalview option")
	compareFromSel    = cascadia.MustCompile("#inventory-cmp-from")
	compareToSel      = cascadia.MustCompile("#inventory-cmp-to")
	optionSel         = cascadia.MustCompile("option")
)

// Snapshots returns the recorded inventory snapshot times of a profile page.
// Options whose value is not a positive integer are dropped.
func Snapshots(doc *goquery.Document) []int64 {
	var markers []int64
	doc.FindMatcher(snapshotOptionSel).Each(func(_ int, o *goquery.Selection) {
		if v, ok := optionValue(o); ok && v > 0 {
			markers = append(markers, v)
		}
	})
	return markers
}

// NearestLocation aligns the timestamp pair of a "/nearest" compare location
// to recorded snapshots: the first timestamp to the snapshot at or before it,
// the second to a different snapshot at or after it.
func NearestLocation(doc *goquery.Document, location string) (string, error) {
	from, to, err := marker.ParseNearest(location)
	if err != nil {
		return "", err
	}
	f, t, err := marker.ResolvePair(Snapshots(doc), from, to)
	if err != nil {
		return "", err
	}
	return marker.ReplaceNearest(location, f, t), nil
}

// StepLocation moves both compare selects of a profile page by increment
// options (1 for an older pair, -1 for a newer one) and returns location with
// the selected pair replaced.
func StepLocation(doc *goquery.Document, location string, increment int) (string, error) {
	from, err := newCompareSelect(doc, compareFromSel)
	if err != nil {
		return "", err
	}
	to, err := newCompareSelect(doc, compareToSel)
	if err != nil {
		return "", err
	}
	oldFrom, oldTo := from.value(), to.value()
	from.selected = marker.Step(len(from.options), from.selected, increment)
	to.selected = marker.Step(len(to.options), to.selected, increment)
	return marker.ReplacePair(location, oldFrom, oldTo, from.value(), to.value()), nil
}

type compareSelect struct {
	options  []int64
	selected int
}

func newCompareSelect(doc *goquery.Document, sel cascadia.Selector) (*compareSelect, error) {
	node := doc.FindMatcher(sel).First()
	cs := &compareSelect{}
	var bad []string
	node.FindMatcher(optionSel).Each(func(i int, o *goquery.Selection) {
		v, ok := optionValue(o)
		if !ok {
			bad = append(bad, o.AttrOr("value", ""))
			return
		}
		if _, selected := o.Attr("selected"); selected {
			cs.selected = len(cs.options)
		}
		cs.options = append(cs.options, v)
	})
	if len(bad) > 0 {
		return nil, fmt.Errorf("%w: non-numeric snapshot options %s", ErrMalformedRow, strings.Join(bad, ","))
	}
	if len(cs.options) == 0 {
		return nil, fmt.Errorf("%w: compare selects", ErrNoTable)
	}
	return cs, nil
}

func (cs *compareSelect) value() int64 {
	return cs.options[cs.selected]
}

func optionValue(o *goquery.Selection) (int64, bool) {
	raw, ok := o.Attr("value")
	if !ok {
		raw = o.Text()
	}
	v, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
