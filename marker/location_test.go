package marker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const profile = "https://backpack.tf/profiles/76561198080179568#!/compare/"

func TestParseNearest(t *testing.T) {
	from, to, err := ParseNearest(profile + "1700000000/1700086400/nearest")
	require.NoError(t, err)
	assert.Equal(t, int64(1700000000), from)
	assert.Equal(t, int64(1700086400), to)

	for _, loc := range []string{
		profile + "1700000000/1700086400",
		profile + "170000000/1700086400/nearest",
		profile + "1700000000/1700086400/nearest/extra",
		"",
	} {
		_, _, err := ParseNearest(loc)
		assert.ErrorIs(t, err, ErrNoNearest, loc)
		assert.False(t, HasNearest(loc), loc)
	}
}

func TestReplaceNearest(t *testing.T) {
	got := ReplaceNearest(profile+"1700000000/1700086400/nearest", 1699990000, 1700090000)
	assert.Equal(t, profile+"1699990000/1700090000", got)

	unchanged := profile + "1700000000/1700086400"
	assert.Equal(t, unchanged, ReplaceNearest(unchanged, 1, 2))
}

func TestReplacePair(t *testing.T) {
	loc := profile + "100/200"
	assert.Equal(t, profile+"200/300", ReplacePair(loc, 100, 200, 200, 300))
	assert.Equal(t, loc, ReplacePair(loc, 5, 6, 200, 300))
}

func TestStep(t *testing.T) {
	tests := []struct {
		name                string
		options, index, inc int
		want                int
	}{
		{name: "previous date", options: 5, index: 1, inc: 1, want: 2},
		{name: "next date", options: 5, index: 2, inc: -1, want: 1},
		{name: "stays at first option", options: 5, index: 0, inc: -1, want: 0},
		{name: "stays at last option", options: 5, index: 4, inc: 1, want: 4},
		{name: "no options", options: 0, index: 0, inc: 1, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Step(tt.options, tt.index, tt.inc))
		})
	}
}
