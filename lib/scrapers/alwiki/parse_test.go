package alwiki

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
)

const equipmentPageFixture = `
<html><body>
<table class="eq-info">
  <tr><th>Firepower</th><td>25 → 45</td></tr>
  <tr><th>Reload</th><td>4.98s</td></tr>
  <tr><th>Range</th><td>60</td></tr>
  <tr><th>Ammo Type</th><td>HE</td></tr>
  <tr><th>Obtained From</th><td>Gear Lab Craft, Event Shop</td></tr>
  <tr><th>Icon</th><td></td></tr>
</table>
</body></html>`

func TestParsePage(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(equipmentPageFixture))
	if err != nil {
		t.Fatal(err)
	}

	frag := ParsePage(doc)

	// numeric cells keep their first value, the upgrade arrow tail is
	// dropped
	require.Equal(t, float64(25), frag.StatsNumerical["firepower"])
	require.Equal(t, 4.98, frag.StatsNumerical["reload"])
	require.Equal(t, float64(60), frag.StatsNumerical["range"])
	require.Equal(t, "HE", frag.StatsQualitative["ammoType"])
	require.Equal(t, []string{"Gear Lab Craft", "Event Shop"}, frag.Source.Methods)
	require.True(t, frag.Source.Craftable)
	require.False(t, frag.Empty())
}

func TestParsePageEmptyDocument(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader("<html><body></body></html>"))
	if err != nil {
		t.Fatal(err)
	}
	require.True(t, ParsePage(doc).Empty())
}
