package equipment

import "dario.cat/mergo"

// Fragment is the partial contribution one source makes toward a record.
// Identity is deliberately absent, a source can never rename or re-categorize
// an item. URL, when set, becomes the provenance token for the fragment.
type Fragment struct {
	Source           Source
	StatsNumerical   map[string]float64
	StatsQualitative map[string]string
	DerivedAnalysis  Analysis
	URL              string
}

func (f Fragment) Empty() bool {
	return len(f.StatsNumerical) == 0 &&
		len(f.StatsQualitative) == 0 &&
		len(f.Source.Methods) == 0 &&
		!f.Source.Craftable &&
		f.DerivedAnalysis.Empty()
}

// Merge folds a fragment into the accumulator record. The stat sections are
// merged key-wise with the fragment winning conflicts, the struct sections
// are merged field-by-field with non-zero fragment fields overriding. Folding
// fragments in priority order therefore gives last-writer-wins semantics.
func Merge(dst *Record, frag Fragment) error {
	if dst.StatsNumerical == nil {
		dst.StatsNumerical = map[string]float64{}
	}
	for k, v := range frag.StatsNumerical {
		dst.StatsNumerical[k] = v
	}

	if dst.StatsQualitative == nil {
		dst.StatsQualitative = map[string]string{}
	}
	for k, v := range frag.StatsQualitative {
		dst.StatsQualitative[k] = v
	}

	err := mergo.Merge(&dst.Source, frag.Source, mergo.WithOverride)
	if err != nil {
		return err
	}
	return mergo.Merge(&dst.DerivedAnalysis, frag.DerivedAnalysis, mergo.WithOverride)
}
