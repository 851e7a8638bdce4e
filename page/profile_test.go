package page

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aerissecure/salesfinder/marker"
)

const profileLocation = "https://backpack.tf/profiles/76561198000000001#!/compare/"

const profilePage = `<html><body>
<select id="historicalview">
  <option value="">Current</option>
  <option value="1700000000">Nov 2023</option>
  <option value="1650000000">Apr 2022</option>
  <option value="1600000000">Sep 2020</option>
  <option value="0">Never</option>
</select>
<select id="inventory-cmp-from">
  <option value="1700000000" selected>Nov 2023</option>
  <option value="1650000000">Apr 2022</option>
  <option value="1600000000">Sep 2020</option>
</select>
<select id="inventory-cmp-to">
  <option value="1700000000">Nov 2023</option>
  <option value="1650000000" selected>Apr 2022</option>
  <option value="1600000000">Sep 2020</option>
</select>
</body></html>`

func TestSnapshots(t *testing.T) {
	assert.Equal(t, []int64{1700000000, 1650000000, 1600000000}, Snapshots(mustDoc(t, profilePage)))
	assert.Empty(t, Snapshots(mustDoc(t, `<html></html>`)))
}

func TestNearestLocation(t *testing.T) {
	tests := []struct {
		name     string
		location string
		want     string
	}{
		{
			name:     "between snapshots",
			location: profileLocation + "1660000000/1660000000/nearest",
			want:     profileLocation + "1650000000/1700000000",
		},
		{
			name:     "exact snapshot",
			location: profileLocation + "1650000000/1650000000/nearest",
			want:     profileLocation + "1650000000/1700000000",
		},
		{
			name:     "before every snapshot",
			location: profileLocation + "1500000000/1500000000/nearest",
			want:     profileLocation + "1600000000/1650000000",
		},
		{
			name:     "after every snapshot",
			location: profileLocation + "1800000000/1800000000/nearest",
			want:     profileLocation + "1700000000/1700000000",
		},
	}
	doc := mustDoc(t, profilePage)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NearestLocation(doc, tt.location)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNearestLocationErrors(t *testing.T) {
	_, err := NearestLocation(mustDoc(t, profilePage), profileLocation+"1660000000/1660000000")
	assert.ErrorIs(t, err, marker.ErrNoNearest)

	_, err = NearestLocation(mustDoc(t, `<html></html>`), profileLocation+"1660000000/1660000000/nearest")
	assert.ErrorIs(t, err, marker.ErrEmptyMarkerSet)
}

func TestStepLocation(t *testing.T) {
	doc := mustDoc(t, profilePage)
	location := profileLocation + "1700000000/1650000000"

	older, err := StepLocation(doc, location, 1)
	require.NoError(t, err)
	assert.Equal(t, profileLocation+"1650000000/1600000000", older)

	newer, err := StepLocation(doc, location, -1)
	require.NoError(t, err)
	assert.Equal(t, profileLocation+"1700000000/1700000000", newer)

	other, err := StepLocation(doc, profileLocation+"1/2", 1)
	require.NoError(t, err)
	assert.Equal(t, profileLocation+"1/2", other)
}

func TestStepLocationErrors(t *testing.T) {
	_, err := StepLocation(mustDoc(t, `<html></html>`), profileLocation, 1)
	assert.ErrorIs(t, err, ErrNoTable)

	_, err = StepLocation(mustDoc(t, `<select id="inventory-cmp-from"><option value="soon">x</option></select>`), profileLocation, 1)
	assert.ErrorIs(t, err, ErrMalformedRow)
}
