package lang

import "strings"

// ExtractCrops returns the canonical ids of all crops mentioned in the
// message, matching canonical ids and transliterated variants
// case-insensitively. The result is de-duplicated; order follows the
// lexicon's declaration order.
func ExtractCrops(text string) []string {
	lower := strings.ToLower(text)
	var crops []string
	for _, entry := range cropLexicon {
		if strings.Contains(lower, entry.ID) {
			crops = append(crops, entry.ID)
			continue
		}
		for _, variant := range entry.Variants {
			if strings.Contains(lower, variant) {
				crops = append(crops, entry.ID)
				break
			}
		}
	}
	return crops
}

// ExtractSeasons returns the cropping seasons mentioned in the message.
func ExtractSeasons(text string) []string {
	lower := strings.ToLower(text)
	var seasons []string
	for _, entry := range seasonKeywords {
		for _, kw := range entry.Keywords {
			if strings.Contains(lower, kw) {
				seasons = append(seasons, entry.ID)
				break
			}
		}
	}
	return seasons
}

// ExtractStates returns the Indian states mentioned in the message.
func ExtractStates(text string) []string {
	lower := strings.ToLower(text)
	var states []string
	for _, state := range indianStates {
		if strings.Contains(lower, strings.ToLower(state)) {
			states = append(states, state)
		}
	}
	return states
}

// IsChemicalQuery reports whether the message asks about chemical products
// or dosages. This flag is safety-relevant: it gates dosage responses on a
// known farm size.
func IsChemicalQuery(text string) bool {
	lower := strings.ToLower(text)
	for _, kw := range chemicalKeywords {
		if strings.Contains(lower, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}
