package guides

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
)

const guidePageFixture = `
<html><body>
<ul class="roles">
  <li>Anti-air filler</li>
  <li>Budget DPS</li>
</ul>
<div class="pros"><ul>
  <li>Easy to obtain</li>
</ul></div>
<div class="cons"><ul>
  <li>Falls off late game</li>
</ul></div>
<div class="verdict">
  <p>Solid stopgap until</p>
  <p>something better drops.</p>
</div>
</body></html>`

func TestParsePage(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(guidePageFixture))
	if err != nil {
		t.Fatal(err)
	}

	frag := ParsePage(doc)
	require.Equal(t, []string{"Anti-air filler", "Budget DPS"}, frag.DerivedAnalysis.PrimaryRoles)
	require.Equal(t, []string{"Easy to obtain"}, frag.DerivedAnalysis.Strengths)
	require.Equal(t, []string{"Falls off late game"}, frag.DerivedAnalysis.Weaknesses)
	require.Equal(t, "Solid stopgap until something better drops.", frag.DerivedAnalysis.Notes)
	require.False(t, frag.Empty())
}

func TestSlug(t *testing.T) {
	testCases := []struct {
		in       string
		expected string
	}{
		{"Twin 127mm (5\"/38 Mk 38)", "twin-127mm-5-38-mk-38"},
		{"Type 93 Torpedo", "type-93-torpedo"},
		{"A6M Zero Fighter", "a6m-zero-fighter"},
	}
	for _, tc := range testCases {
		require.Equal(t, tc.expected, Slug(tc.in))
	}
}
