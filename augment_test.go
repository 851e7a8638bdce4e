package salesfinder

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	testingclock "k8s.io/utils/clock/testing"

	"github.com/aerissecure/salesfinder/marker"
	"github.com/aerissecure/salesfinder/page"
	"github.com/aerissecure/salesfinder/tier"
)

var testNow = time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

func testOptions() page.Options {
	return page.Options{Clock: testingclock.NewFakePassiveClock(testNow)}
}

func itemPage() string {
	row := func(id string, days int) string {
		seen := testNow.Add(-time.Duration(days) * 24 * time.Hour).Unix()
		return fmt.Sprintf(`<tr><td><span class="user-handle"><a data-id="%s">u</a></span></td><td><a href="/item/1?time=%d">seen</a></td></tr>`, id, seen)
	}
	return `<html><body><div class="item" data-name="Hat"></div>
<div class="history-sheet"><table class="table"><thead><tr><th>User</th><th>Last seen</th></tr></thead><tbody>` +
		row("76561198000000001", 5) + row("76561198000000002", 80) + row("76561198000000003", 300) +
		`</tbody></table></div></body></html>`
}

const profilePage = `<html><body>
<select id="historicalview"><option value="1700000000">a</option><option value="1650000000">b</option><option value="1600000000">c</option></select>
<select id="inventory-cmp-from"><option value="1700000000">a</option><option value="1650000000" selected>b</option><option value="1600000000">c</option></select>
<select id="inventory-cmp-to"><option value="1700000000" selected>a</option><option value="1650000000">b</option><option value="1600000000">c</option></select>
</body></html>`

const profileURL = "https://backpack.tf/profiles/76561198000000001"

func TestAugmentItem(t *testing.T) {
	res, err := Augment(context.Background(), "https://backpack.tf/item/42", strings.NewReader(itemPage()), testOptions())
	require.NoError(t, err)
	assert.Equal(t, Item, res.Kind)
	assert.Equal(t, []tier.Tier{tier.Recent, tier.Moderate, tier.None}, res.Tiers)
	assert.Contains(t, res.HTML, "<th>Seller</th>")
	assert.Contains(t, res.HTML, "<th>Buyer</th>")
	assert.Contains(t, res.HTML, `class="success"`)
	assert.Contains(t, res.HTML, "#!/compare/")
}

func TestAugmentPremium(t *testing.T) {
	doc := `<div class="premium-search-results"><div class="result"><div class="owners"><div class="owner">a</div><div class="owner"><abbr title="2024-05-01">b</abbr></div></div></div></div>`
	res, err := Augment(context.Background(), "https://backpack.tf/premium/search?item=Hat", strings.NewReader(doc), testOptions())
	require.NoError(t, err)
	assert.Equal(t, []tier.Tier{tier.Recent}, res.Tiers)

	out, err := goquery.NewDocumentFromReader(strings.NewReader(res.HTML))
	require.NoError(t, err)
	assert.True(t, out.Find(".result").HasClass("success"))
}

func TestAugmentProfile(t *testing.T) {
	location := profileURL + "#!/compare/1660000000/1660000000/nearest"
	res, err := Augment(context.Background(), location, strings.NewReader(profilePage), testOptions())
	require.NoError(t, err)
	assert.Equal(t, Profile, res.Kind)
	assert.Equal(t, profileURL+"#!/compare/1650000000/1700000000", res.Location)

	res, err = Augment(context.Background(), profileURL, strings.NewReader(profilePage), testOptions())
	require.NoError(t, err)
	assert.Equal(t, profileURL, res.Location)

	_, err = Augment(context.Background(), location, strings.NewReader(`<html></html>`), testOptions())
	assert.ErrorIs(t, err, marker.ErrEmptyMarkerSet)
}

func TestAugmentUnusual(t *testing.T) {
	doc := `<table class="table table-bordered unusual-pricelist"><tbody><tr data-effect_name="Sunbeams"><th><img src="/particles/17_94x94.png">Sunbeams</th></tr></tbody></table>`
	res, err := Augment(context.Background(), "https://backpack.tf/unusual/Hat", strings.NewReader(doc), testOptions())
	require.NoError(t, err)
	assert.Equal(t, 1, res.Links)
	assert.Contains(t, res.HTML, "particle=17")
}

func TestAugmentErrors(t *testing.T) {
	_, err := Augment(context.Background(), "https://example.com/", strings.NewReader(""), testOptions())
	assert.ErrorIs(t, err, ErrNoRoute)

	_, err = Augment(context.Background(), "https://backpack.tf/item/1", strings.NewReader(`<html></html>`), testOptions())
	assert.ErrorIs(t, err, page.ErrNoTable)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = Augment(ctx, "https://backpack.tf/item/1", strings.NewReader(itemPage()), testOptions())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestStep(t *testing.T) {
	location := profileURL + "#!/compare/1650000000/1700000000"

	older, err := Step(context.Background(), location, strings.NewReader(profilePage), 1)
	require.NoError(t, err)
	assert.Equal(t, profileURL+"#!/compare/1600000000/1650000000", older)

	newer, err := Step(context.Background(), location, strings.NewReader(profilePage), -1)
	require.NoError(t, err)
	assert.Equal(t, profileURL+"#!/compare/1700000000/1700000000", newer)

	_, err = Step(context.Background(), "https://backpack.tf/item/1", strings.NewReader(profilePage), 1)
	assert.ErrorIs(t, err, ErrNoRoute)
}
