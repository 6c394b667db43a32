package alwiki

import (
	"strings"

	"aldb-backend/lib/equipment"
	"aldb-backend/lib/htmlutil"

	"github.com/PuerkitoBio/goquery"
)

// infobox labels that carry numeric stats; everything else with a value
// lands in the qualitative section
var statLabels = map[string]string{
	"Firepower":    "firepower",
	"Torpedo":      "torpedo",
	"Anti-air":     "antiAir",
	"Anti-Air":     "antiAir",
	"Aviation":     "aviation",
	"Damage":       "damage",
	"Rate of Fire": "rateOfFire",
	"Reload":       "reload",
	"Range":        "range",
	"Spread":       "spread",
	"Angle":        "angle",
	"Coefficient":  "coefficient",
	"ASW":          "asw",
	"Accuracy":     "accuracy",
	"Speed":        "speed",
}

var qualitativeLabels = map[string]string{
	"Ammo Type":    "ammoType",
	"Ammo":         "ammoType",
	"Shell":        "shellType",
	"Firing Range": "firingRange",
	"Plane Type":   "planeType",
	"Ordnance":     "ordnance",
	"Notes":        "notes",
}

// ParsePage extracts the stat fragment from an equipment page's infobox
// table. Exported so tests can run it over fixture HTML without touching
// the network.
func ParsePage(doc *goquery.Document) equipment.Fragment {
	frag := equipment.Fragment{
		StatsNumerical:   map[string]float64{},
		StatsQualitative: map[string]string{},
	}

	doc.Find("table.eq-info tr, table.infobox tr, table.wikitable tr").Each(func(_ int, row *goquery.Selection) {
		label := htmlutil.CleanText(row.Find("th").First().Text())
		value := htmlutil.CleanText(row.Find("td").First().Text())
		if label == "" || value == "" {
			return
		}

		if key, ok := statLabels[label]; ok {
			if n, ok := htmlutil.ParseNumber(value); ok {
				frag.StatsNumerical[key] = n
			}
			return
		}
		if key, ok := qualitativeLabels[label]; ok {
			frag.StatsQualitative[key] = value
			return
		}
		if label == "Obtained From" || label == "Obtained" {
			frag.Source.Methods = splitMethods(value)
			frag.Source.Craftable = strings.Contains(strings.ToLower(value), "craft")
		}
	})

	return frag
}

func splitMethods(value string) []string {
	var methods []string
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			methods = append(methods, part)
		}
	}
	return methods
}
