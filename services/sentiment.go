package services

import (
	"strings"

	"chat-audit/models"
)

// scoreSentiment tallies the five sentiment categories plus slang,
// globally and per partner. Keywords are matched by plain substring
// containment, deliberately looser than the viral scorer's boundary
// rule: sentiment tables hold curated phrases, not short ambiguous
// tokens. A message contributes at most one hit per category.
func (a *Analyzer) scoreSentiment(
	messages []ParsedMessage,
	language string,
	idx senderIndex,
) (models.SentimentStats, map[string]models.SentimentStats) {
	table := a.lexicon.SentimentFor(language)

	var global models.SentimentStats
	var perPartner [2]models.SentimentStats

	for _, msg := range messages {
		lower := strings.ToLower(msg.Body)
		who := idx.of(msg.Sender)
		contains := func(keyword string) bool {
			return strings.Contains(lower, keyword)
		}

		for _, category := range sentimentCategories {
			if _, ok := firstMatch(table[category], contains); ok {
				bumpSentiment(&global, category)
				if who != partnerNone {
					bumpSentiment(&perPartner[who], category)
				}
			}
		}

		// Slang is universal, independent of the detected language.
		if _, ok := firstMatch(a.lexicon.Slang(), contains); ok {
			global.Slang++
			if who != partnerNone {
				perPartner[who].Slang++
			}
		}
	}

	byUser := map[string]models.SentimentStats{
		idx.nameA: perPartner[partnerA],
		idx.nameB: perPartner[partnerB],
	}
	return global, byUser
}

func bumpSentiment(stats *models.SentimentStats, category SentimentCategory) {
	switch category {
	case CategoryRomance:
		stats.Romance++
	case CategoryFight:
		stats.Fight++
	case CategoryFood:
		stats.Food++
	case CategoryMarriage:
		stats.Marriage++
	case CategoryWaiting:
		stats.Waiting++
	}
}
