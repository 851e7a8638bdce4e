package page

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/aerissecure/salesfinder/marker"
)

var (
	lastSeenTimeRe = regexp.MustCompile(`time=(\d+)$`)
	profileIDRe    = regexp.MustCompile(`/profiles/(\d{17})$`)
)

// CompareURL links to the inventory comparison of steamID on the day of date.
// The location ends in the nearest sentinel so the profile page aligns it to
// recorded snapshots when it loads.
func CompareURL(backpackURL, steamID string, date time.Time) string {
	x := startOfDay(date).Unix()
	return fmt.Sprintf("%s/profiles/%s#!/compare/%d/%d%s", backpackURL, steamID, x, x, marker.NearestSuffix)
}

// InventoryHistoryURL links to the viewer's own steam inventory history
// starting at the UTC day of date, filtered to itemName when it is known.
func InventoryHistoryURL(steamURL string, date time.Time, itemName string) string {
	u := steamURL + "/my/inventoryhistory/?after_time=" + strconv.FormatInt(startOfDay(date).Unix(), 10) + "&prev=1"
	if itemName != "" {
		u += "#filter-" + itemName
	}
	return u
}

func startOfDay(t time.Time) time.Time {
	d := t.UTC()
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
}

func valueFromURL(u string, re *regexp.Regexp) string {
	m := re.FindStringSubmatch(u)
	if m == nil {
		return ""
	}
	return m[1]
}
