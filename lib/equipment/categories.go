package equipment

// Categories is the closed set of equipment category slugs, one JSON file
// each under the data directory. The order here is the display order.
var Categories = []string{
	"destroyer_guns",
	"light_cruiser_guns",
	"heavy_cruiser_guns",
	"large_cruiser_guns",
	"battleship_guns",
	"anti_air_guns",
	"ship_torpedoes",
	"submarine_torpedoes",
	"fighters",
	"dive_bombers",
	"torpedo_bombers",
	"seaplanes",
	"auxiliary_equipment",
	"augment_modules",
	"anti_submarine_equipment",
}

func ValidCategory(slug string) bool {
	for _, c := range Categories {
		if c == slug {
			return true
		}
	}
	return false
}
