package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreViralBoundaryRule(t *testing.T) {
	a := NewAnalyzer(nil)
	base := time.Date(2024, time.May, 12, 10, 0, 0, 0, time.Local)
	messages := []ParsedMessage{
		// "fine" embedded in "define" must not fire.
		testMessage("Priya", base, "define the term"),
		// Standalone "fine" with trailing punctuation does.
		testMessage("Rahul", base.Add(time.Minute), "im fine."),
	}
	idx := derivePartners(messages)

	stats := a.scoreViral(messages, idx)
	assert.Equal(t, 1, stats.RedFlagCount)
	assert.Equal(t, 0, stats.RedFlagByUser["Priya"])
	assert.Equal(t, 1, stats.RedFlagByUser["Rahul"])
	assert.Contains(t, stats.TopRedFlags, "fine")
}

func TestScoreViralSingleCharKeywordNeedsStandaloneToken(t *testing.T) {
	a := NewAnalyzer(nil)
	base := time.Date(2024, time.May, 12, 10, 0, 0, 0, time.Local)
	messages := []ParsedMessage{
		// "k" inside "book" is not a red flag.
		testMessage("Priya", base, "reading a good book tonight"),
		// Bare "k" is both a red flag and a conversation killer.
		testMessage("Rahul", base.Add(time.Minute), "k"),
	}
	idx := derivePartners(messages)

	stats := a.scoreViral(messages, idx)
	assert.Equal(t, 1, stats.RedFlagCount)
	assert.Equal(t, 1, stats.ConvoKillerCount)
	assert.Equal(t, 1, stats.ConvoKillerByUser["Rahul"])
}

func TestScoreViralConvoKillerNeedsFullEquality(t *testing.T) {
	a := NewAnalyzer(nil)
	base := time.Date(2024, time.May, 12, 10, 0, 0, 0, time.Local)
	messages := []ParsedMessage{
		testMessage("Priya", base, "hmm"),
		// Two words but not equal to any keyword.
		testMessage("Rahul", base.Add(time.Minute), "ok then"),
		// Contains "ok" but is too long for a killer.
		testMessage("Priya", base.Add(2*time.Minute), "ok I will come over now"),
	}
	idx := derivePartners(messages)

	stats := a.scoreViral(messages, idx)
	assert.Equal(t, 1, stats.ConvoKillerCount)
}

func TestScoreViralLoveJealousyAndMainCharacter(t *testing.T) {
	a := NewAnalyzer(nil)
	base := time.Date(2024, time.May, 12, 10, 0, 0, 0, time.Local)
	messages := []ParsedMessage{
		testMessage("Priya", base, "i love you so much"),
		testMessage("Rahul", base.Add(time.Minute), "who is that in your story"),
		testMessage("Priya", base.Add(2*time.Minute), "i think my day was exhausting"),
		testMessage("Priya", base.Add(3*time.Minute), "what do you want for dinner"),
	}
	idx := derivePartners(messages)

	stats := a.scoreViral(messages, idx)

	assert.Equal(t, 1, stats.LoveScore)
	assert.Equal(t, 1, stats.LoveByUser["Priya"])
	assert.Equal(t, 1, stats.JealousyCount)
	assert.Equal(t, 1, stats.JealousyByUser["Rahul"])

	// One of Priya's three messages is self-focused; all of Rahul's zero.
	assert.Equal(t, 33, stats.MainCharacterScore["Priya"])
	assert.Equal(t, 0, stats.MainCharacterScore["Rahul"])
}

func TestTopRedFlagsRanking(t *testing.T) {
	freq := map[string]int{
		"fine":     2,
		"whatever": 2,
		"sure":     1,
		"nothing":  3,
		"k":        1,
		"im fine":  1,
	}
	rank := map[string]int{
		"fine": 0, "whatever": 1, "k": 2, "sure": 15, "nothing": 17, "im fine": 14,
	}

	flags := topRedFlags(freq, rank)
	require.Len(t, flags, 5)
	// Frequency first, table position breaks ties.
	assert.Equal(t, []string{"nothing", "fine", "whatever", "k", "im fine"}, flags)
}

func TestPercentage(t *testing.T) {
	assert.Equal(t, 25, percentage(1, 4))
	assert.Equal(t, 33, percentage(1, 3))
	assert.Equal(t, 0, percentage(0, 0))
	assert.Equal(t, 0, percentage(5, 0))
}

func TestCompatibilityScoreFormula(t *testing.T) {
	// Neutral chat: base 50 plus the balanced-apology bonus.
	assert.Equal(t, 60, compatibilityScore(10, 0, 0, 0, pairCounts{}, 0))

	// Heavy love maxes the love bonus: 50 + 30 + 10.
	assert.Equal(t, 90, compatibilityScore(100, 10, 0, 0, pairCounts{}, 0))

	// Red flags and jealousy hit their caps; flirting adds its flat bonus.
	assert.Equal(t, 30, compatibilityScore(10, 0, 1, 1, pairCounts{}, 60))

	// Unbalanced apologies shrink the bonus: 2 vs 4 gives half of it.
	assert.Equal(t, 55, compatibilityScore(10, 0, 0, 0, pairCounts{2, 4}, 0))
}

func TestCompatibilityScoreClamped(t *testing.T) {
	// All penalties with no bonuses cannot go below zero.
	score := compatibilityScore(2, 0, 2, 2, pairCounts{}, 0)
	assert.GreaterOrEqual(t, score, 0)

	// All bonuses cannot exceed one hundred.
	score = compatibilityScore(10, 10, 0, 0, pairCounts{3, 3}, 60)
	assert.LessOrEqual(t, score, 100)
}

func TestCompatibilityVerdictBands(t *testing.T) {
	assert.Equal(t, "Soulmate Material 💖", compatibilityVerdict(100))
	assert.Equal(t, "Soulmate Material 💖", compatibilityVerdict(85))
	assert.Equal(t, "Couple Goals 💑", compatibilityVerdict(84))
	assert.Equal(t, "Couple Goals 💑", compatibilityVerdict(70))
	assert.Equal(t, "Work in Progress 🛠️", compatibilityVerdict(69))
	assert.Equal(t, "Work in Progress 🛠️", compatibilityVerdict(55))
	assert.Equal(t, "Situationship Energy 🫠", compatibilityVerdict(54))
	assert.Equal(t, "Situationship Energy 🫠", compatibilityVerdict(40))
	assert.Equal(t, "Red Flag Central 🚩", compatibilityVerdict(39))
	assert.Equal(t, "Red Flag Central 🚩", compatibilityVerdict(0))
}
