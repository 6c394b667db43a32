package equipment

import "time"

type Completeness string

const (
	CompletenessBasic    Completeness = "basic"
	CompletenessPartial  Completeness = "partial"
	CompletenessComplete Completeness = "complete"
)

// Identity is the canonical key block of a record. ItemName is unique
// within a category and Type always matches the category file the record
// lives in.
type Identity struct {
	ItemName string `json:"itemName"`
	ID       int    `json:"id,omitempty"`
	Rarity   string `json:"rarity,omitempty"`
	Type     string `json:"type"`
	Faction  string `json:"faction,omitempty"`
}

type Source struct {
	Methods   []string `json:"methods,omitempty"`
	Craftable bool     `json:"craftable,omitempty"`
}

type Analysis struct {
	PrimaryRoles []string `json:"primaryRoles,omitempty"`
	Strengths    []string `json:"strengths,omitempty"`
	Weaknesses   []string `json:"weaknesses,omitempty"`
	Notes        string   `json:"notes,omitempty"`
}

func (a Analysis) Empty() bool {
	return len(a.PrimaryRoles) == 0 &&
		len(a.Strengths) == 0 &&
		len(a.Weaknesses) == 0 &&
		a.Notes == ""
}

type Metadata struct {
	LastUpdated      string       `json:"lastUpdated"`
	DataCompleteness Completeness `json:"dataCompleteness"`
	Sources          []string     `json:"sources"`
}

type Record struct {
	Identity         Identity           `json:"identity"`
	Source           Source             `json:"source"`
	StatsNumerical   map[string]float64 `json:"stats_numerical"`
	StatsQualitative map[string]string  `json:"stats_qualitative_visual"`
	DerivedAnalysis  Analysis           `json:"derived_analysis"`
	Metadata         Metadata           `json:"metadata"`
}

// NewRecord returns the skeleton for one item: identity filled in, every
// other section empty, completeness "basic". The maps are allocated so the
// persisted form stays `{}` rather than `null`.
func NewRecord(itemName, category string, now time.Time) Record {
	return Record{
		Identity: Identity{
			ItemName: itemName,
			Type:     category,
		},
		StatsNumerical:   map[string]float64{},
		StatsQualitative: map[string]string{},
		Metadata: Metadata{
			LastUpdated:      now.Format(time.RFC3339),
			DataCompleteness: CompletenessBasic,
			Sources:          []string{},
		},
	}
}

// Classify derives the completeness tag from which sections ended up
// populated: both numerical stats and analysis -> complete, numerical
// stats alone -> partial, anything less -> basic.
func Classify(r Record) Completeness {
	if len(r.StatsNumerical) > 0 && !r.DerivedAnalysis.Empty() {
		return CompletenessComplete
	}
	if len(r.StatsNumerical) > 0 {
		return CompletenessPartial
	}
	return CompletenessBasic
}
