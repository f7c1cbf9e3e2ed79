package services

import (
	"math"
	"sort"
	"strings"

	"chat-audit/models"
)

// Compatibility formula weights. The score starts from a neutral base
// and each signal is capped before it is applied.
const (
	compatibilityBase = 50.0

	loveWeight, loveCap         = 3.0, 30.0
	redFlagWeight, redFlagCap   = 2.0, 20.0
	jealousyWeight, jealousyCap = 2.0, 15.0
	apologyBalanceWeight        = 10.0

	flirtBonusThreshold = 50
	flirtBonus          = 5.0
)

const topRedFlagLimit = 5

// scoreViral tallies the seven viral keyword categories per message and
// derives the compatibility score and verdict.
//
// Matching is stricter than sentiment scoring: red flag, apology,
// jealousy, love and flirty keywords must clear the boundary rule so a
// bare "k" cannot fire inside "book". Self-focused phrases use plain
// substring containment. Conversation killers only fire on messages of
// at most two words whose entire trimmed, lowercased body equals a
// keyword. Every category counts at most once per message.
func (a *Analyzer) scoreViral(messages []ParsedMessage, idx senderIndex) models.ViralStats {
	redFlags := a.lexicon.ViralKeywords(ViralRedFlag)
	apologies := a.lexicon.ViralKeywords(ViralApology)
	jealousy := a.lexicon.ViralKeywords(ViralJealousy)
	selfFocused := a.lexicon.ViralKeywords(ViralSelfFocused)
	convoKillers := a.lexicon.ViralKeywords(ViralConvoKiller)
	love := a.lexicon.ViralKeywords(ViralLove)
	flirty := a.lexicon.ViralKeywords(ViralFlirty)

	// Table position of each red flag phrase, for stable tie-breaks in
	// the top-5 ranking.
	redFlagRank := make(map[string]int, len(redFlags))
	for i, keyword := range redFlags {
		key := strings.ToLower(keyword)
		if _, ok := redFlagRank[key]; !ok {
			redFlagRank[key] = i
		}
	}

	stats := models.ViralStats{}
	var redFlagBy, apologyBy, jealousyBy, convoKillerBy, loveBy, flirtBy pairCounts
	var selfFocusedBy, messagesBy pairCounts
	redFlagFreq := make(map[string]int)

	for _, msg := range messages {
		lower := strings.ToLower(msg.Body)
		who := idx.of(msg.Sender)
		messagesBy.add(who, 1)

		boundary := func(keyword string) bool {
			return a.lexicon.matchesBoundary(lower, keyword)
		}
		contains := func(keyword string) bool {
			return strings.Contains(lower, keyword)
		}
		equals := func(keyword string) bool {
			return lower == keyword
		}

		if keyword, ok := firstMatch(redFlags, boundary); ok {
			stats.RedFlagCount++
			redFlagBy.add(who, 1)
			redFlagFreq[keyword]++
		}

		if _, ok := firstMatch(apologies, boundary); ok {
			stats.ApologyCount++
			apologyBy.add(who, 1)
		}

		if _, ok := firstMatch(jealousy, boundary); ok {
			stats.JealousyCount++
			jealousyBy.add(who, 1)
		}

		if _, ok := firstMatch(selfFocused, contains); ok {
			selfFocusedBy.add(who, 1)
		}

		if msg.WordCount <= 2 {
			if _, ok := firstMatch(convoKillers, equals); ok {
				stats.ConvoKillerCount++
				convoKillerBy.add(who, 1)
			}
		}

		if _, ok := firstMatch(love, boundary); ok {
			stats.LoveScore++
			loveBy.add(who, 1)
		}

		if _, ok := firstMatch(flirty, boundary); ok {
			stats.FlirtScore++
			flirtBy.add(who, 1)
		}
	}

	stats.RedFlagByUser = redFlagBy.byUser(idx)
	stats.ApologyByUser = apologyBy.byUser(idx)
	stats.JealousyByUser = jealousyBy.byUser(idx)
	stats.ConvoKillerByUser = convoKillerBy.byUser(idx)
	stats.LoveByUser = loveBy.byUser(idx)
	stats.FlirtByUser = flirtBy.byUser(idx)

	stats.MainCharacterScore = map[string]int{
		idx.nameA: percentage(selfFocusedBy[partnerA], messagesBy[partnerA]),
		idx.nameB: percentage(selfFocusedBy[partnerB], messagesBy[partnerB]),
	}

	stats.TopRedFlags = topRedFlags(redFlagFreq, redFlagRank)

	stats.CompatibilityScore = compatibilityScore(
		len(messages), stats.LoveScore, stats.RedFlagCount,
		stats.JealousyCount, apologyBy, stats.FlirtScore)
	stats.CompatibilityVerdict = compatibilityVerdict(stats.CompatibilityScore)

	return stats
}

// percentage is the rounded share of hits in total, 0 when total is 0.
func percentage(hits, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(hits) / float64(total) * 100))
}

// topRedFlags ranks the matched red flag phrases by frequency, breaking
// ties by table position, and keeps the top five.
func topRedFlags(freq map[string]int, rank map[string]int) []string {
	flags := make([]string, 0, len(freq))
	for keyword := range freq {
		flags = append(flags, keyword)
	}
	sort.Slice(flags, func(i, j int) bool {
		if freq[flags[i]] != freq[flags[j]] {
			return freq[flags[i]] > freq[flags[j]]
		}
		return rank[flags[i]] < rank[flags[j]]
	})
	if len(flags) > topRedFlagLimit {
		flags = flags[:topRedFlagLimit]
	}
	return flags
}

// compatibilityScore applies the weighted formula: base 50, love adds up
// to 30 points, red flags subtract up to 20, jealousy subtracts up to
// 15, balanced apologies add up to 10, and heavy flirting adds a flat 5.
// The result is clamped to [0, 100].
func compatibilityScore(
	totalMessages, loveScore, redFlagCount, jealousyCount int,
	apologyBy pairCounts,
	flirtScore int,
) int {
	total := float64(totalMessages)
	lovePercent := float64(loveScore) / total * 100
	redFlagPercent := float64(redFlagCount) / total * 100
	jealousyPercent := float64(jealousyCount) / total * 100

	// Counts are floored at 1 so a partner who never apologizes cannot
	// divide the balance by zero.
	apologyA := float64(max(apologyBy[partnerA], 1))
	apologyB := float64(max(apologyBy[partnerB], 1))
	apologyBalance := math.Min(apologyA, apologyB) / math.Max(apologyA, apologyB)

	score := compatibilityBase
	score += math.Min(lovePercent*loveWeight, loveCap)
	score -= math.Min(redFlagPercent*redFlagWeight, redFlagCap)
	score -= math.Min(jealousyPercent*jealousyWeight, jealousyCap)
	score += apologyBalance * apologyBalanceWeight
	if flirtScore > flirtBonusThreshold {
		score += flirtBonus
	}

	return int(math.Round(math.Max(0, math.Min(100, score))))
}

// compatibilityVerdict maps a compatibility score to its verdict band.
func compatibilityVerdict(score int) string {
	switch {
	case score >= 85:
		return "Soulmate Material 💖"
	case score >= 70:
		return "Couple Goals 💑"
	case score >= 55:
		return "Work in Progress 🛠️"
	case score >= 40:
		return "Situationship Energy 🫠"
	default:
		return "Red Flag Central 🚩"
	}
}
