// Package salesfinder augments backpack.tf pages: item ownership history,
// premium search results, profile inventory comparisons and unusual
// pricelists. Match picks the page kind from a location and Augment runs the
// matching host from package page over a parsed document.
package salesfinder

import "regexp"

type route struct {
	kind     Kind
	includes []*regexp.Regexp
}

// routes are checked in order; the first match wins.
var routes = []route{
	{kind: Item, includes: []*regexp.Regexp{
		regexp.MustCompile(`^https?://(.*\.)?backpack\.tf(:\d+)?/item/\d+`),
	}},
	{kind: Premium, includes: []*regexp.Regexp{
		regexp.MustCompile(`^https?://(.*\.)?backpack\.tf(:\d+)?/premium/search.*`),
	}},
	{kind: Profile, includes: []*regexp.Regexp{
		regexp.MustCompile(`^https?://(.*\.)?backpack\.tf/profiles/\d{17}`),
	}},
	{kind: Unusual, includes: []*regexp.Regexp{
		regexp.MustCompile(`^https?://(.*\.)?backpack\.tf/unusual/*`),
	}},
}

// Match returns the kind of page location points at, or Unknown.
func Match(location string) Kind {
	for _, r := range routes {
		for _, re := range r.includes {
			if re.MatchString(location) {
				return r.kind
			}
		}
	}
	return Unknown
}
