package disease

import (
	"time"

	"github.com/kisanconnect/kisanconnect/internal/lang"
)

// Season is a cropping season of the Vidarbha calendar.
type Season string

const (
	Kharif Season = "kharif"
	Rabi   Season = "rabi"
	Zaid   Season = "zaid"
)

// CurrentSeason maps a date onto the cropping season: June-October is
// kharif, November-February is rabi, the rest is zaid.
func CurrentSeason(t time.Time) Season {
	month := int(t.Month())
	switch {
	case month >= 6 && month <= 10:
		return Kharif
	case month >= 11 || month <= 2:
		return Rabi
	default:
		return Zaid
	}
}

var seasonNames = map[Season]map[lang.Language]string{
	Kharif: {
		lang.English: "Kharif (Monsoon)",
		lang.Hindi:   "खरीफ (मानसून)",
		lang.Marathi: "खरीप (पावसाळा)",
	},
	Rabi: {
		lang.English: "Rabi (Winter)",
		lang.Hindi:   "रबी (सर्दी)",
		lang.Marathi: "रब्बी (हिवाळा)",
	},
	Zaid: {
		lang.English: "Zaid (Summer)",
		lang.Hindi:   "जायद (गर्मी)",
		lang.Marathi: "उन्हाळी (उन्हाळा)",
	},
}

// SeasonName localizes a season for display.
func SeasonName(season Season, lg lang.Language) string {
	return seasonNames[season][lg]
}
