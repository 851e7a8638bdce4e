package xlsx

import (
	"strconv"
	"time"

	"k8s.io/klog/v2"

	"github.com/aerissecure/salesfinder/table"
	"github.com/aerissecure/salesfinder/tier"
)

// DaysColumn is the default name of the column added by Classify.
const DaysColumn = "Days ago"

// Classify inserts newColumn after dateColumn holding the whole number of
// days between each row's date and now, and returns the tier of every row.
// Rows whose date does not parse get an empty cell and tier.None.
func Classify(t *table.Table[string], dateColumn, newColumn string, now time.Time, layouts ...string) ([]tier.Tier, error) {
	if err := t.InsertColumns(table.InsertRequest{Name: newColumn, After: dateColumn}); err != nil {
		return nil, err
	}

	tiers := make([]tier.Tier, t.RowCount())
	err := t.Populate(newColumn, func(rc table.RowContext[string]) string {
		value, _ := rc.Value(dateColumn)
		seen, err := tier.ParseDate(value, layouts...)
		if err != nil {
			klog.V(2).InfoS("Leaving sheet row unclassified", "row", rc.Index, "err", err)
			return ""
		}
		days := tier.DayDifference(seen, now)
		tiers[rc.Index] = tier.ForDays(days)
		return strconv.Itoa(days)
	})
	if err != nil {
		return nil, err
	}
	return tiers, nil
}
