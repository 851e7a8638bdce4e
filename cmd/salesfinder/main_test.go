package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aerissecure/salesfinder/marker"
	"github.com/aerissecure/salesfinder/table"
	"github.com/aerissecure/salesfinder/xlsx"
)

const profilePage = `<html><body>
<select id="historicalview"><option value="1700000000">a</option><option value="1650000000">b</option></select>
<select id="inventory-cmp-from"><option value="1700000000" selected>a</option><option value="1650000000">b</option></select>
<select id="inventory-cmp-to"><option value="1700000000" selected>a</option><option value="1650000000">b</option></select>
</body></html>`

const profileURL = "https://backpack.tf/profiles/76561198000000001#!/compare/"

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	command := newRootCommand()
	var out bytes.Buffer
	command.SetIn(strings.NewReader(stdin))
	command.SetOut(&out)
	command.SetErr(&out)
	command.SetArgs(args)
	err := command.Execute()
	return out.String(), err
}

func TestResolveCommand(t *testing.T) {
	out, err := run(t, "", "resolve", "--markers", "300,100,200", "--from", "150", "--to", "150")
	require.NoError(t, err)
	assert.Equal(t, "100/200\n", out)

	_, err = run(t, "", "resolve", "--from", "150", "--to", "150")
	assert.ErrorIs(t, err, marker.ErrEmptyMarkerSet)
}

func TestAugmentCommandProfile(t *testing.T) {
	out, err := run(t, profilePage, "augment", "--url", profileURL+"1690000000/1690000000/nearest")
	require.NoError(t, err)
	assert.Equal(t, profileURL+"1650000000/1700000000\n", out)
}

func TestAugmentCommandWritesFile(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "unusual.html")
	outPath := filepath.Join(dir, "out.html")
	require.NoError(t, os.WriteFile(in, []byte(`<table class="table table-bordered unusual-pricelist"><tbody>
<tr data-effect_name="Sunbeams"><th><img src="/particles/17_94x94.png">Sunbeams</th></tr></tbody></table>`), 0644))

	out, err := run(t, "", "augment", "--url", "https://backpack.tf/unusual/Hat", "--out", outPath, in)
	require.NoError(t, err)
	assert.Empty(t, out)

	written, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Contains(t, string(written), "particle=17")
}

func TestAugmentCommandInvalidViewer(t *testing.T) {
	_, err := run(t, profilePage, "augment", "--viewer", "123", "--url", "https://backpack.tf/item/1")
	assert.ErrorContains(t, err, "viewerSteamID")
}

func TestStepCommand(t *testing.T) {
	out, err := run(t, profilePage, "step", "--url", profileURL+"1700000000/1700000000", "--increment", "1")
	require.NoError(t, err)
	assert.Equal(t, profileURL+"1650000000/1650000000\n", out)

	_, err = run(t, profilePage, "step", "--url", profileURL+"1700000000/1700000000", "--increment", "0")
	assert.Error(t, err)
}

func TestClassifyCommand(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "sales.xlsx")
	outPath := filepath.Join(dir, "classified.xlsx")
	htmlPath := filepath.Join(dir, "classified.html")

	tbl := table.New[string](2)
	_, err := tbl.AddColumn("Sold", []string{"2024-05-31", "2023-05-31"})
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, xlsx.WriteTable(&buf, "Sales", tbl, nil))
	require.NoError(t, os.WriteFile(in, buf.Bytes(), 0644))

	_, err = run(t, "", "classify", "--now", "2024-06-01T00:00:00Z",
		"--in", in, "--out", outPath, "--date-column", "Sold", "--html", htmlPath)
	require.NoError(t, err)

	f, err := os.Open(outPath)
	require.NoError(t, err)
	defer f.Close()
	info, err := f.Stat()
	require.NoError(t, err)
	s, err := xlsx.ReadSheet(f, info.Size())
	require.NoError(t, err)
	assert.Equal(t, []string{"Sold", xlsx.DaysColumn}, s.Headers)
	require.Len(t, s.Rows, 2)
	assert.Equal(t, []string{"2024-05-31", "1"}, s.Rows[0].Values)
	assert.Equal(t, "DFF0D8", s.Rows[0].Fill)
	assert.Equal(t, []string{"2023-05-31", "367"}, s.Rows[1].Values)
	assert.Equal(t, "", s.Rows[1].Fill)

	preview, err := os.ReadFile(htmlPath)
	require.NoError(t, err)
	assert.Contains(t, string(preview), "background-color:#DFF0D8;")
}

func TestWordSepNormalizeFunc(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "sales.xlsx")
	_, err := run(t, "", "classify", "--in", in, "--out", filepath.Join(dir, "out.xlsx"), "--date_column", "Sold")
	assert.ErrorIs(t, err, os.ErrNotExist)
}
