package page

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"k8s.io/klog/v2"

	"github.com/aerissecure/salesfinder/tier"
)

var (
	premiumResultSel = cascadia.MustCompile(".premium-search-results .result")
	ownerSel         = cascadia.MustCompile(".owners .owner")
	resultButtonSel  = cascadia.MustCompile(".buttons a")
)

// AugmentPremium highlights premium search results by how long ago the item
// changed hands, using the date of the previous owner. It returns the tier of
// every result in page order; results without a date are left as they are.
func AugmentPremium(doc *goquery.Document, opts Options) []tier.Tier {
	opts = opts.withDefaults()
	now := opts.Clock.Now()

	var tiers []tier.Tier
	doc.FindMatcher(premiumResultSel).Each(func(i int, result *goquery.Selection) {
		abbr := result.FindMatcher(ownerSel).Eq(1).Find("abbr")
		if abbr.Length() == 0 {
			tiers = append(tiers, tier.None)
			return
		}
		date, err := tier.ParseDate(abbr.AttrOr("title", ""), opts.DateLayouts...)
		if err != nil {
			klog.V(2).InfoS("Leaving premium result unclassified", "result", i, "err", err)
			tiers = append(tiers, tier.None)
			return
		}
		t := tier.Classify(date, now)
		tiers = append(tiers, t)
		highlightResult(result, t)
	})
	return tiers
}

// highlightResult adds the tier class to the result and puts the matching
// button class first so it takes priority over the button's own colour.
func highlightResult(result *goquery.Selection, t tier.Tier) {
	class := t.Class()
	if class == "" {
		return
	}
	result.FindMatcher(resultButtonSel).Each(func(_ int, a *goquery.Selection) {
		a.SetAttr("class", strings.TrimSpace("btn-"+class+" "+a.AttrOr("class", "")))
	})
	result.AddClass(class)
}
