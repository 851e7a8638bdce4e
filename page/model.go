package page

import (
	"errors"
	"fmt"

	"github.com/PuerkitoBio/goquery"

	"github.com/aerissecure/salesfinder/tier"
)

var (
	// ErrNoTable is returned when a page does not contain the table a host works on.
	ErrNoTable = errors.New("table not found")

	// ErrMalformedRow marks a row or option whose source values cannot be
	// parsed. Table hosts keep such rows unclassified and without links.
	ErrMalformedRow = errors.New("malformed row")
)

// Link is an anchor added to the page. Contents is HTML.
type Link struct {
	Href     string
	Contents string
}

func (l Link) String() string {
	return fmt.Sprintf("Href: %s, Contents: %s", l.Href, l.Contents)
}

// Cell is one cell of an augmented table.
//
// Source cells wrap a td of the page and are rendered with its attributes and
// children untouched, followed by Inline links. Derived cells have no Source
// and render Link, or a neutral placeholder when Link is nil.
type Cell struct {
	Source *goquery.Selection
	Link   *Link
	Inline []Link

	// Identity is the first-party steam id of the row, carried to the next row.
	Identity string
}

func (c *Cell) String() string {
	return fmt.Sprintf("Source: %t, Link: %v, Inline: %d, Identity: %s", c.Source != nil, c.Link, len(c.Inline), c.Identity)
}

// Row is one body row of an augmented table.
type Row struct {
	Source *goquery.Selection // tr of the page
	Tier   tier.Tier
}

func (r *Row) String() string {
	return fmt.Sprintf("Tier: %s", r.Tier)
}
