// Package knowledge holds the static agronomy knowledge base: crop facts,
// cropping seasons and government schemes, embedded at build time.
package knowledge

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/kisanconnect/kisanconnect/internal/lang"
)

//go:embed crops.json
var cropsJSON []byte

// LocalizedText is a string in all supported languages.
type LocalizedText struct {
	EN string `json:"en"`
	HI string `json:"hi"`
	MR string `json:"mr"`
}

// For returns the text for a language, falling back to English.
func (t LocalizedText) For(l lang.Language) string {
	switch l {
	case lang.Hindi:
		if t.HI != "" {
			return t.HI
		}
	case lang.Marathi:
		if t.MR != "" {
			return t.MR
		}
	}
	return t.EN
}

// TemperatureRange is the crop's suitable range in Celsius.
type TemperatureRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Yield is the expected output per unit area.
type Yield struct {
	Value float64 `json:"value"`
	Unit  string  `json:"unit"`
}

// Nutrient is a per-hectare requirement in kg, applied in Splits doses.
type Nutrient struct {
	Total  float64 `json:"total"`
	Splits int     `json:"splits"`
}

// FertilizerSchedule is the NPK recommendation per hectare.
type FertilizerSchedule struct {
	Nitrogen   Nutrient `json:"nitrogen"`
	Phosphorus Nutrient `json:"phosphorus"`
	Potassium  Nutrient `json:"potassium"`
}

// Crop is one knowledge base entry.
type Crop struct {
	ID                 string              `json:"id"`
	Names              LocalizedText       `json:"names"`
	Season             string              `json:"season"`
	SowingMonths       []string            `json:"sowingMonths"`
	Temperature        TemperatureRange    `json:"temperature"`
	WaterRequirement   string              `json:"waterRequirement"`
	ExpectedYield      Yield               `json:"expectedYield"`
	FertilizerSchedule *FertilizerSchedule `json:"fertilizerSchedule,omitempty"`
}

// Season describes a cropping season.
type Season struct {
	Name   LocalizedText `json:"name"`
	Months string        `json:"months"`
}

// Scheme is a government support scheme entry.
type Scheme struct {
	ID       string        `json:"id"`
	Name     LocalizedText `json:"name"`
	Benefit  LocalizedText `json:"benefit"`
	Website  string        `json:"website"`
	Helpline string        `json:"helpline,omitempty"`
}

// Base is the loaded knowledge base. Lookups are by id; the category
// grouping in the source file exists only for maintainability.
type Base struct {
	crops   map[string]Crop
	seasons map[string]Season
	schemes map[string]Scheme
}

type baseFile struct {
	Crops             map[string][]Crop `json:"crops"`
	Seasons           map[string]Season `json:"seasons"`
	GovernmentSchemes []Scheme          `json:"governmentSchemes"`
}

// Load parses the embedded knowledge base. A malformed or internally
// inconsistent file is a startup error, not a runtime one.
func Load() (*Base, error) {
	var file baseFile
	if err := json.Unmarshal(cropsJSON, &file); err != nil {
		return nil, fmt.Errorf("parsing knowledge base: %w", err)
	}

	b := &Base{
		crops:   make(map[string]Crop),
		seasons: file.Seasons,
		schemes: make(map[string]Scheme, len(file.GovernmentSchemes)),
	}
	for category, crops := range file.Crops {
		for _, crop := range crops {
			if _, dup := b.crops[crop.ID]; dup {
				return nil, fmt.Errorf("duplicate crop id %q in category %q", crop.ID, category)
			}
			if _, ok := file.Seasons[crop.Season]; !ok {
				return nil, fmt.Errorf("crop %q references unknown season %q", crop.ID, crop.Season)
			}
			b.crops[crop.ID] = crop
		}
	}
	for _, scheme := range file.GovernmentSchemes {
		b.schemes[scheme.ID] = scheme
	}
	return b, nil
}

// CropByID looks up a crop by canonical id.
func (b *Base) CropByID(id string) (Crop, bool) {
	c, ok := b.crops[id]
	return c, ok
}

// SeasonByID looks up a cropping season.
func (b *Base) SeasonByID(id string) (Season, bool) {
	s, ok := b.seasons[id]
	return s, ok
}

// SchemeByID looks up a government scheme.
func (b *Base) SchemeByID(id string) (Scheme, bool) {
	s, ok := b.schemes[id]
	return s, ok
}
