package page

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"k8s.io/klog/v2"

	"github.com/aerissecure/salesfinder/table"
	"github.com/aerissecure/salesfinder/tier"
)

// Column names of the item history table.
const (
	ColumnUser     = "User"
	ColumnLastSeen = "Last seen"
	ColumnSeller   = "Seller"
	ColumnBuyer    = "Buyer"
)

// HistoryColumns are the derived columns added to an item history table.
var HistoryColumns = []table.InsertRequest{
	{Name: ColumnSeller, After: ColumnUser},
	{Name: ColumnBuyer, After: ColumnSeller},
}

var (
	historyTableSel = cascadia.MustCompile(".history-sheet table.table")
	headerSel       = cascadia.MustCompile("thead tr th")
	bodyRowSel      = cascadia.MustCompile("tbody > tr")
	itemSel         = cascadia.MustCompile(".item")
	usernameLinkSel = cascadia.MustCompile(".username a")
	userHandleSel   = cascadia.MustCompile(".user-handle a")
)

const steamIcon = `<i class="stm stm-steam"></i>`

// History is the ownership history table of an item page.
type History struct {
	Table *table.Table[*Cell]
	Rows  []*Row

	// ItemName is the data-name of the item, "" when the item was moved.
	ItemName string
	// Viewer is the steam id of the logged in user, "" when logged out.
	Viewer string

	node    *goquery.Selection
	headers map[string]*goquery.Selection
}

// ParseHistory extracts the history table of an item page.
func ParseHistory(doc *goquery.Document) (*History, error) {
	node := doc.FindMatcher(historyTableSel).First()
	if node.Length() == 0 {
		return nil, fmt.Errorf("%w: no item history", ErrNoTable)
	}

	trs := node.FindMatcher(bodyRowSel)
	h := &History{
		Table:    table.New[*Cell](trs.Length()),
		ItemName: doc.FindMatcher(itemSel).AttrOr("data-name", ""),
		Viewer:   valueFromURL(doc.FindMatcher(usernameLinkSel).AttrOr("href", ""), profileIDRe),
		node:     node,
		headers:  make(map[string]*goquery.Selection),
	}
	trs.Each(func(_ int, tr *goquery.Selection) {
		h.Rows = append(h.Rows, &Row{Source: tr})
	})

	var err error
	node.FindMatcher(headerSel).EachWithBreak(func(index int, th *goquery.Selection) bool {
		name := strings.TrimSpace(th.Text())
		if _, ok := h.headers[name]; ok {
			// Repeated headers get a positional key; the original <th> is
			// still rendered.
			name = fmt.Sprintf("%s#%d", name, index)
			klog.V(2).InfoS("Renaming repeated history column", "column", name)
		}
		cells := make([]*Cell, len(h.Rows))
		for r, row := range h.Rows {
			cells[r] = &Cell{Source: row.Source.Children().Eq(index).Filter("td")}
		}
		if _, err = h.Table.AddColumn(name, cells); err != nil {
			return false
		}
		h.headers[name] = th
		return true
	})
	if err != nil {
		return nil, err
	}
	return h, nil
}

// Augment adds the Seller and Buyer compare columns, classifies every row by
// the days since it was last seen and attaches the steam inventory history
// link to rows involving the viewer.
func (h *History) Augment(opts Options) error {
	opts = opts.withDefaults()
	viewer := opts.ViewerSteamID
	if viewer == "" {
		viewer = h.Viewer
	}
	if err := h.Table.InsertColumns(HistoryColumns...); err != nil {
		return err
	}
	if err := h.Table.Populate(ColumnSeller, h.sellerCell(opts, opts.Clock.Now())); err != nil {
		return err
	}
	return h.Table.Populate(ColumnBuyer, h.buyerCell(opts, viewer))
}

// Replace swaps the page's table for the rendered augmented table.
func (h *History) Replace() {
	h.node.ReplaceWithHtml(h.RenderHTML())
}

// AugmentHistory augments the history table of doc in place.
func AugmentHistory(doc *goquery.Document, opts Options) (*History, error) {
	h, err := ParseHistory(doc)
	if err != nil {
		return nil, err
	}
	if err := h.Augment(opts); err != nil {
		return nil, err
	}
	h.Replace()
	return h, nil
}

type sale struct {
	user     string
	lastSeen time.Time
}

func saleOf(rc table.RowContext[*Cell]) (sale, error) {
	var s sale
	if c, ok := rc.Value(ColumnUser); ok && c != nil && c.Source != nil {
		s.user = c.Source.FindMatcher(userHandleSel).AttrOr("data-id", "")
	}
	if s.user == "" {
		return s, fmt.Errorf("%w: row %d has no user", ErrMalformedRow, rc.Index)
	}

	var href string
	if c, ok := rc.Value(ColumnLastSeen); ok && c != nil && c.Source != nil {
		href = c.Source.Find("a").AttrOr("href", "")
	}
	ts := valueFromURL(href, lastSeenTimeRe)
	if ts == "" {
		return s, fmt.Errorf("%w: row %d has no last seen time", ErrMalformedRow, rc.Index)
	}
	sec, err := strconv.ParseInt(ts, 10, 64)
	if err != nil {
		return s, fmt.Errorf("%w: row %d: %v", ErrMalformedRow, rc.Index, err)
	}
	s.lastSeen = time.Unix(sec, 0).UTC()
	return s, nil
}

// sellerCell links the row's own user on the day the item was last seen and
// classifies the row. Row 0 is the current owner and gets no link.
func (h *History) sellerCell(opts Options, now time.Time) table.Transform[*Cell] {
	return func(rc table.RowContext[*Cell]) *Cell {
		s, err := saleOf(rc)
		if err != nil {
			klog.V(2).InfoS("Leaving history row unclassified", "row", rc.Index, "err", err)
			return &Cell{}
		}
		h.Rows[rc.Index].Tier = tier.Classify(s.lastSeen, now)
		if rc.Index == 0 {
			return &Cell{}
		}
		return &Cell{Link: &Link{Href: CompareURL(opts.BackpackURL, s.user, s.lastSeen), Contents: "Compare"}}
	}
}

// buyerCell links the counterparty, the user of the previous row. The row's
// own user is carried forward as the next row's counterparty.
func (h *History) buyerCell(opts Options, viewer string) table.Transform[*Cell] {
	return func(rc table.RowContext[*Cell]) *Cell {
		s, err := saleOf(rc)
		cell := &Cell{Identity: s.user}
		if err != nil {
			return cell
		}

		var prev string
		if rc.HasPrev && rc.Prev != nil {
			prev = rc.Prev.Identity
		}
		if prev != "" {
			cell.Link = &Link{Href: CompareURL(opts.BackpackURL, prev, s.lastSeen), Contents: "Compare"}
		}

		if showInventoryLink(viewer, s.user, prev, h.ItemName) {
			if user, ok := rc.Value(ColumnUser); ok && user != nil {
				user.Inline = append(user.Inline, Link{
					Href:     InventoryHistoryURL(opts.SteamURL, s.lastSeen, h.ItemName),
					Contents: steamIcon,
				})
			}
		}
		return cell
	}
}

// showInventoryLink reports whether the viewer can open their own inventory
// history for a row: the viewer owned the item in this row (unless it is the
// current owner row of an item that still has a name), or owned it in the
// previous row.
func showInventoryLink(viewer, user, prev, itemName string) bool {
	return viewer != "" && (((prev != "" || itemName == "") && viewer == user) || viewer == prev)
}
