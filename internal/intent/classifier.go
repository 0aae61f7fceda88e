package intent

import (
	"strings"

	"github.com/kisanconnect/kisanconnect/internal/lang"
)

// Classifier scores utterances against the keyword pattern table. Scoring is
// pure substring matching, so it never fails and needs no model artifacts.
type Classifier struct {
	confidenceDivisor float64
}

// NewClassifier builds a classifier. confidenceDivisor normalizes raw match
// counts into the 0..1 confidence range; zero or negative falls back to 5.
func NewClassifier(confidenceDivisor int) *Classifier {
	if confidenceDivisor <= 0 {
		confidenceDivisor = 5
	}
	return &Classifier{confidenceDivisor: float64(confidenceDivisor)}
}

// Classify detects the language, scores every intent against the message and
// extracts entities. Ties between intents resolve to the earlier entry in the
// pattern table. A message that matches no intent but names a crop is treated
// as a crop information request.
func (c *Classifier) Classify(message string) Result {
	lower := strings.ToLower(message)
	language := lang.Detect(message)

	maxIntent := Unknown
	maxScore := 0
	for _, ip := range intentPatterns {
		score := 0
		for _, pattern := range ip.Patterns {
			if strings.Contains(lower, strings.ToLower(pattern)) {
				score++
			}
		}
		if score > maxScore {
			maxScore = score
			maxIntent = ip.Intent
		}
	}

	crops := lang.ExtractCrops(message)
	seasons := lang.ExtractSeasons(message)
	states := lang.ExtractStates(message)
	chemical := lang.IsChemicalQuery(message)

	if maxIntent == Unknown && len(crops) > 0 {
		maxIntent = CropInfo
		maxScore = 1
	}

	confidence := float64(maxScore) / c.confidenceDivisor
	if confidence > 1 {
		confidence = 1
	}

	return Result{
		Intent:     maxIntent,
		Confidence: confidence,
		Language:   language,
		Entities: Entities{
			Crops:   crops,
			Seasons: seasons,
			States:  states,
		},
		RequiresFarmSize: chemical,
		IsChemicalQuery:  chemical,
	}
}
