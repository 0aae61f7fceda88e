// Package lang provides script- and keyword-based language detection plus
// entity extraction over curated multilingual agricultural lexicons.
//
// Matching is deliberate substring scanning, not tokenization: the
// agricultural vocabulary is a closed, enumerable domain and transliterated
// spellings ("gehu", "gahu", "gehoo" for wheat) are far more numerous and
// irregular than a morphological analyzer could normalize cheaply.
package lang

import "strings"

// Language is the closed set of languages the dialogue core supports.
type Language string

const (
	English Language = "en"
	Hindi   Language = "hi"
	Marathi Language = "mr"
)

// Languages returns all supported languages in declaration order.
func Languages() []Language {
	return []Language{English, Hindi, Marathi}
}

// Valid reports whether l is a supported language.
func (l Language) Valid() bool {
	switch l {
	case English, Hindi, Marathi:
		return true
	}
	return false
}

// Detect classifies the language of a message.
//
// Devanagari script is authoritative over romanized heuristics: any
// Devanagari character classifies the message as Marathi when a
// Marathi-specific word is also present, Hindi otherwise. Pure-Roman text
// falls back to transliteration indicator counts, where Marathi wins only
// when its count is nonzero and strictly greater than the Hindi count.
func Detect(text string) Language {
	if containsDevanagari(text) {
		for _, w := range marathiWords {
			if strings.Contains(text, w) {
				return Marathi
			}
		}
		return Hindi
	}

	lower := strings.ToLower(text)

	hindiCount := 0
	for _, w := range hinglishIndicators {
		if strings.Contains(lower, w) {
			hindiCount++
		}
	}
	marathiCount := 0
	for _, w := range marathiRomanIndicators {
		if strings.Contains(lower, w) {
			marathiCount++
		}
	}

	if marathiCount >= 1 && marathiCount > hindiCount {
		return Marathi
	}
	if hindiCount >= 1 {
		return Hindi
	}
	return English
}

func containsDevanagari(text string) bool {
	for _, r := range text {
		if r >= 0x0900 && r <= 0x097F {
			return true
		}
	}
	return false
}
