package page

import (
	"fmt"
	"html"
	"regexp"

	"github.com/PuerkitoBio/goquery"
	xhtml "golang.org/x/net/html"
)

var (
	unusualTableSels = []string{
		".table.table-bordered.unusual-pricelist",
		".table.table-bordered.unusual-pricelist-missing",
	}
	particleRe    = regexp.MustCompile(`particles/(\d+)_`)
	lastSegmentRe = regexp.MustCompile(`/([^/?]+)(\?|$)`)
)

// EffectSearchPath is the premium search for an unusual item with a particle effect.
func EffectSearchPath(itemName, effect string) string {
	return fmt.Sprintf("/premium/search?item=%s&quality=5&tradable=1&craftable=1&australium=-1&particle=%s&killstreak_tier=0", itemName, effect)
}

// AugmentUnusual turns every effect heading of the unusual pricelists into a
// link to the premium search for that effect. The item name is the last path
// segment of location. It returns the number of links added.
func AugmentUnusual(doc *goquery.Document, location string) int {
	name := valueFromURL(location, lastSegmentRe)
	if name == "" {
		return 0
	}
	added := 0
	for _, sel := range unusualTableSels {
		doc.Find(sel).First().Find("tbody tr").Each(func(_ int, tr *goquery.Selection) {
			effectName := tr.AttrOr("data-effect_name", "")
			tr.Find("th").Each(func(_ int, th *goquery.Selection) {
				src := th.Find("img").First().AttrOr("src", "")
				if src == "" {
					return
				}
				effect := "1"
				if m := particleRe.FindStringSubmatch(src); m != nil {
					effect = m[1]
				}
				th.Contents().FilterFunction(func(_ int, s *goquery.Selection) bool {
					return s.Nodes[0].Type == xhtml.TextNode
				}).Remove()
				th.AppendHtml(fmt.Sprintf(`<a href="%s" target="_blank"> %s</a>`,
					html.EscapeString(EffectSearchPath(name, effect)), html.EscapeString(effectName)))
				added++
			})
		})
	}
	return added
}
