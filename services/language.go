package services

import (
	"math"
	"strings"

	"chat-audit/models"
)

// languageScanLines caps how much of the transcript the detector reads.
// The opening lines of a chat are representative enough; scanning a
// multi-year export in full buys nothing.
const languageScanLines = 500

// DetectLanguage scores a prefix of the raw transcript against every
// language's sentiment keywords and picks the dominant language. Ties
// resolve to the earliest language in the lexicon's fixed order, with
// English as the default when nothing matches. Slang hits are counted
// separately and attributed to no language.
func (a *Analyzer) DetectLanguage(chatContent string) models.LanguageResult {
	lines := strings.Split(chatContent, "\n")
	if len(lines) > languageScanLines {
		lines = lines[:languageScanLines]
	}
	text := strings.ToLower(strings.Join(lines, " "))

	scores := make(map[string]int, len(a.lexicon.Languages()))
	total := 0
	for _, lang := range a.lexicon.Languages() {
		table := a.lexicon.SentimentFor(lang)
		score := 0
		for _, category := range sentimentCategories {
			for _, keyword := range table[category] {
				score += a.lexicon.countWordHits(text, keyword)
			}
		}
		scores[lang] = score
		total += score
	}

	slangCount := 0
	for _, keyword := range a.lexicon.Slang() {
		slangCount += a.lexicon.countWordHits(text, keyword)
	}

	dominant := "en"
	maxScore := 0
	for _, lang := range a.lexicon.Languages() {
		if scores[lang] > maxScore {
			maxScore = scores[lang]
			dominant = lang
		}
	}

	confidence := 0
	if total > 0 {
		confidence = int(math.Round(float64(maxScore) / float64(total) * 100))
		if confidence > 100 {
			confidence = 100
		}
	}

	name, ok := languageNames[dominant]
	if !ok {
		name = dominant
	}

	return models.LanguageResult{
		DominantLanguage: dominant,
		LanguageName:     name,
		Confidence:       confidence,
		LanguageScores:   scores,
		SlangCount:       slangCount,
	}
}
