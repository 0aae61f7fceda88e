// Package disease interprets plant-disease model output and renders
// per-label advisory plans.
package disease

import "strings"

// Label is the canonical set of conditions the detection model reports.
type Label string

const (
	NitrogenDeficiency Label = "Nitrogen_Deficiency"
	AphidAttack        Label = "Aphid_Attack"
	FungalSpot         Label = "Fungal_Spot"
	Healthy            Label = "Healthy"
	Unknown            Label = "Unknown"
)

// Labels returns every canonical label.
func Labels() []Label {
	return []Label{NitrogenDeficiency, AphidAttack, FungalSpot, Healthy, Unknown}
}

// labelKeywords are matched in order; the first group containing a keyword
// wins, so a label naming both "fungal" and "healthy" resolves to FungalSpot.
var labelKeywords = []struct {
	label    Label
	keywords []string
}{
	{NitrogenDeficiency, []string{"nitrogen", "deficiency"}},
	{AphidAttack, []string{"aphid", "mahu", "माहू"}},
	{FungalSpot, []string{"fungal", "spot", "blight"}},
	{Healthy, []string{"healthy", "normal"}},
}

// ParseModelLabel maps a raw model prediction string onto a canonical label
// by substring matching. Unrecognized input degrades to Unknown, never an
// error.
func ParseModelLabel(prediction string) Label {
	normalized := strings.ToLower(strings.TrimSpace(prediction))
	for _, group := range labelKeywords {
		for _, kw := range group.keywords {
			if strings.Contains(normalized, kw) {
				return group.label
			}
		}
	}
	return Unknown
}

// ModelResult is one detection model output as consumed by the dialogue core.
type ModelResult struct {
	Label         Label   `json:"label"`
	Confidence    float64 `json:"confidence"`
	RawPrediction string  `json:"raw_prediction,omitempty"`
}
