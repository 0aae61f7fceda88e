// Package intent classifies user utterances into a closed set of agronomy
// intents by rule scoring over multilingual keyword patterns.
package intent

import "github.com/kisanconnect/kisanconnect/internal/lang"

// Intent is the closed set of user goals the dialogue core understands.
type Intent string

const (
	Greeting         Intent = "greeting"
	Help             Intent = "help"
	Thanks           Intent = "thanks"
	DiseaseHelp      Intent = "disease_help"
	FertilizerHelp   Intent = "fertilizer_help"
	MarketSellAdvice Intent = "market_sell_advice"
	WeatherAdvice    Intent = "weather_advice"
	GovernmentScheme Intent = "government_scheme"
	CropInfo         Intent = "crop_info"
	PestManagement   Intent = "pest_management"
	IrrigationHelp   Intent = "irrigation_help"
	SoilHelp         Intent = "soil_help"
	OrganicFarming   Intent = "organic_farming"
	SeedInfo         Intent = "seed_info"
	HarvestHelp      Intent = "harvest_help"
	StorageAdvice    Intent = "storage_advice"
	CropRotation     Intent = "crop_rotation"
	SeasonAdvice     Intent = "season_advice"
	Unknown          Intent = "unknown"
)

// Intents returns every intent in declaration order.
func Intents() []Intent {
	return []Intent{
		Greeting, Help, Thanks, DiseaseHelp, FertilizerHelp, MarketSellAdvice,
		WeatherAdvice, GovernmentScheme, CropInfo, PestManagement,
		IrrigationHelp, SoilHelp, OrganicFarming, SeedInfo, HarvestHelp,
		StorageAdvice, CropRotation, SeasonAdvice, Unknown,
	}
}

// Entities are the domain entities extracted from a single utterance.
// Diseases and pests are reserved for population by the disease-detection
// path; text classification leaves them empty.
type Entities struct {
	Crops    []string `json:"crops"`
	Diseases []string `json:"diseases"`
	Pests    []string `json:"pests"`
	Seasons  []string `json:"seasons"`
	States   []string `json:"states"`
}

// Result is the ephemeral outcome of classifying one utterance.
type Result struct {
	Intent           Intent        `json:"intent"`
	Confidence       float64       `json:"confidence"`
	Language         lang.Language `json:"language"`
	Entities         Entities      `json:"entities"`
	RequiresFarmSize bool          `json:"requires_farm_size"`
	IsChemicalQuery  bool          `json:"is_chemical_query"`
}
