package page

import (
	"fmt"
	"html"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// placeholder fills derived cells whose link was suppressed.
const placeholder = "--------"

// RenderHTML converts the augmented table into an HTML string. Source cells
// keep their attributes and children; rows carry their tier class.
func (h *History) RenderHTML() string {
	var b strings.Builder
	cols := h.Table.Columns()

	b.WriteString(fmt.Sprintf("<table%s>\n", renderAttrs(h.node, "")))
	b.WriteString("  <thead>\n    <tr>\n")
	for _, col := range cols {
		if th, ok := h.headers[col.Name]; ok {
			if outer, err := goquery.OuterHtml(th); err == nil {
				b.WriteString("      " + outer + "\n")
				continue
			}
		}
		b.WriteString(fmt.Sprintf("      <th>%s</th>\n", html.EscapeString(col.Name)))
	}
	b.WriteString("    </tr>\n  </thead>\n  <tbody>\n")

	for r, row := range h.Rows {
		b.WriteString(fmt.Sprintf("    <tr%s>\n", renderAttrs(row.Source, row.Tier.Class())))
		for _, col := range cols {
			b.WriteString("      " + renderCell(col.Cells[r]) + "\n")
		}
		b.WriteString("    </tr>\n")
	}
	b.WriteString("  </tbody>\n</table>\n")
	return b.String()
}

func renderCell(c *Cell) string {
	if c == nil {
		return "<td></td>"
	}
	if c.Source == nil {
		if c.Link == nil {
			return "<td>" + placeholder + "</td>"
		}
		return "<td>" + renderLink(*c.Link) + "</td>"
	}

	var inner string
	if c.Source.Length() > 0 {
		if s, err := c.Source.Html(); err == nil {
			inner = s
		}
	}
	for _, l := range c.Inline {
		inner += `<span style="float:right;margin-left:0.6em;">` + renderLink(l) + `</span>`
	}
	return fmt.Sprintf("<td%s>%s</td>", renderAttrs(c.Source, ""), inner)
}

func renderLink(l Link) string {
	return fmt.Sprintf(`<a href="%s" target="_blank">%s</a>`, html.EscapeString(l.Href), l.Contents)
}

// renderAttrs renders the attributes of the first node of s, appending
// extraClass to its class list.
func renderAttrs(s *goquery.Selection, extraClass string) string {
	var b strings.Builder
	hasClass := false
	if s != nil && s.Length() > 0 {
		for _, a := range s.Nodes[0].Attr {
			val := a.Val
			if a.Namespace == "" && a.Key == "class" {
				hasClass = true
				if extraClass != "" {
					val = strings.TrimSpace(val + " " + extraClass)
				}
			}
			b.WriteString(fmt.Sprintf(` %s="%s"`, a.Key, html.EscapeString(val)))
		}
	}
	if !hasClass && extraClass != "" {
		b.WriteString(fmt.Sprintf(` class="%s"`, html.EscapeString(extraClass)))
	}
	return b.String()
}
