package equipment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestMergeLastWriterWins(t *testing.T) {
	rec := NewRecord("Twin 127mm (5\"/38 Mk 38)", "destroyer_guns", time.Now())

	err := Merge(&rec, Fragment{
		StatsNumerical: map[string]float64{"range": 5},
	})
	if err != nil {
		t.Fatal(err)
	}
	err = Merge(&rec, Fragment{
		StatsNumerical: map[string]float64{"range": 6, "firepower": 10},
	})
	if err != nil {
		t.Fatal(err)
	}

	require.Equal(t, float64(6), rec.StatsNumerical["range"])
	require.Equal(t, float64(10), rec.StatsNumerical["firepower"])
}

func TestMergeStructSections(t *testing.T) {
	rec := NewRecord("Type 93 Torpedo", "ship_torpedoes", time.Now())

	err := Merge(&rec, Fragment{
		Source: Source{Methods: []string{"event shop"}},
		DerivedAnalysis: Analysis{
			PrimaryRoles: []string{"burst damage"},
			Notes:        "first pass",
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	err = Merge(&rec, Fragment{
		Source: Source{Craftable: true},
		DerivedAnalysis: Analysis{
			Notes: "later source wins",
		},
	})
	if err != nil {
		t.Fatal(err)
	}

	// non-zero fragment fields override, untouched fields survive
	require.Equal(t, []string{"event shop"}, rec.Source.Methods)
	require.True(t, rec.Source.Craftable)
	require.Equal(t, []string{"burst damage"}, rec.DerivedAnalysis.PrimaryRoles)
	require.Equal(t, "later source wins", rec.DerivedAnalysis.Notes)
}

func TestMergeNeverTouchesIdentity(t *testing.T) {
	rec := NewRecord("A6M Zero Fighter", "fighters", time.Now())
	err := Merge(&rec, Fragment{
		StatsNumerical: map[string]float64{"aviation": 45},
	})
	if err != nil {
		t.Fatal(err)
	}
	require.Equal(t, "A6M Zero Fighter", rec.Identity.ItemName)
	require.Equal(t, "fighters", rec.Identity.Type)
}

func TestClassify(t *testing.T) {
	testCases := []struct {
		name     string
		stats    map[string]float64
		analysis Analysis
		expected Completeness
	}{
		{
			name:     "nothing populated",
			expected: CompletenessBasic,
		},
		{
			name:     "stats only",
			stats:    map[string]float64{"range": 5},
			expected: CompletenessPartial,
		},
		{
			name:     "analysis only",
			analysis: Analysis{Strengths: []string{"cheap"}},
			expected: CompletenessBasic,
		},
		{
			name:     "stats and analysis",
			stats:    map[string]float64{"range": 5},
			analysis: Analysis{Strengths: []string{"cheap"}},
			expected: CompletenessComplete,
		},
		{
			name:     "notes alone count as analysis",
			stats:    map[string]float64{"reload": 4.2},
			analysis: Analysis{Notes: "solid all-rounder"},
			expected: CompletenessComplete,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rec := NewRecord("item", "destroyer_guns", time.Now())
			rec.StatsNumerical = tc.stats
			rec.DerivedAnalysis = tc.analysis
			require.Equal(t, tc.expected, Classify(rec))
		})
	}
}

func TestFragmentEmpty(t *testing.T) {
	require.True(t, Fragment{}.Empty())
	require.True(t, Fragment{URL: "https://example.com"}.Empty())
	require.False(t, Fragment{StatsNumerical: map[string]float64{"range": 1}}.Empty())
	require.False(t, Fragment{Source: Source{Craftable: true}}.Empty())
	require.False(t, Fragment{DerivedAnalysis: Analysis{Notes: "n"}}.Empty())
}
