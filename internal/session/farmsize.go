package session

import (
	"regexp"
	"strconv"
	"strings"
)

// farmSizePatterns are tried in order; the first matching unit wins, so
// "2 acre and 1 bigha" resolves to acres.
var farmSizePatterns = []struct {
	regex *regexp.Regexp
	unit  Unit
}{
	{regexp.MustCompile(`(\d+(?:\.\d+)?)\s*(?:acre|एकड़|ekad|akar)`), UnitAcre},
	{regexp.MustCompile(`(\d+(?:\.\d+)?)\s*(?:hectare|हेक्टेयर|hektar|hectar)`), UnitHectare},
	{regexp.MustCompile(`(\d+(?:\.\d+)?)\s*(?:bigha|बीघा|beegha)`), UnitBigha},
	{regexp.MustCompile(`(\d+(?:\.\d+)?)\s*(?:guntha|गुंठा|gunta)`), UnitGuntha},
}

var bareNumberPattern = regexp.MustCompile(`^(\d+(?:\.\d+)?)\s*$`)

// ParseFarmSize extracts a farm size from free text. A bare number with no
// unit is treated as acres, the unit farmers state most often. Returns nil
// when no size is present.
func ParseFarmSize(input string) *FarmSize {
	lower := strings.ToLower(input)

	for _, p := range farmSizePatterns {
		if m := p.regex.FindStringSubmatch(lower); m != nil {
			value, err := strconv.ParseFloat(m[1], 64)
			if err != nil {
				continue
			}
			return &FarmSize{Value: value, Unit: p.unit}
		}
	}

	if m := bareNumberPattern.FindStringSubmatch(strings.TrimSpace(lower)); m != nil {
		value, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			return nil
		}
		return &FarmSize{Value: value, Unit: UnitAcre}
	}

	return nil
}

// Bigha varies by region; this is the common central-India value.
var hectaresPerUnit = map[Unit]float64{
	UnitAcre:    0.4047,
	UnitHectare: 1,
	UnitBigha:   0.25,
	UnitGuntha:  0.01012,
}

// Hectares converts the size to hectares for dosage math. Unknown units
// pass the value through unchanged.
func (f *FarmSize) Hectares() float64 {
	if f == nil {
		return 0
	}
	factor, ok := hectaresPerUnit[f.Unit]
	if !ok {
		factor = 1
	}
	return f.Value * factor
}
