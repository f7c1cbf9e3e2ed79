package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const shortTranscript = "12/5/24, 10:00 AM - Priya: I love you babu 😘\n" +
	"12/5/24, 12:30 PM - Rahul: k\n" +
	"12/5/24, 3:00 PM - Priya: fine. whatever\n"

func TestAnalyzeShortTranscript(t *testing.T) {
	a := NewAnalyzer(nil)

	result, err := a.Analyze(shortTranscript, nil)
	require.NoError(t, err)

	assert.Equal(t, 3, result.TotalMessages)
	assert.Equal(t, map[string]int{"Priya": 2, "Rahul": 1}, result.MessagesByUser)
	assert.Equal(t, "Priya", result.MostActiveSender)
	assert.Equal(t, "Priya", result.PartnerA)
	assert.Equal(t, "Rahul", result.PartnerB)

	assert.Equal(t, 150.0, result.AverageReplyTime)

	assert.Equal(t, 1, result.SentimentStats.Romance)
	assert.Equal(t, 1, result.SentimentStats.Fight)

	assert.Equal(t, 1, result.ViralStats.LoveScore)
	assert.Equal(t, 1, result.ViralStats.ConvoKillerCount)
	assert.Equal(t, 2, result.ViralStats.RedFlagCount)
	assert.Equal(t, []string{"fine", "k"}, result.ViralStats.TopRedFlags)

	assert.Equal(t, 2, result.DeepStats.DryTextCount)
	assert.Equal(t, 1, result.EmojiCount)
	assert.Equal(t, 1, result.NicknameCount["babu"])

	assert.Equal(t, "en", result.Language.DominantLanguage)
	assert.Equal(t, 1, result.LongestStreak)
	assert.Equal(t, "Sunday", result.MostActiveDay)
	assert.Equal(t, 10, result.MostActiveHour)
}

func TestAnalyzeCompatibility(t *testing.T) {
	a := NewAnalyzer(nil)

	result, err := a.Analyze(shortTranscript, nil)
	require.NoError(t, err)

	// Love maxes its bonus, two red flags in three messages max the
	// penalty, apologies are balanced at zero: 50 + 30 - 20 + 10.
	assert.Equal(t, 70, result.ViralStats.CompatibilityScore)
	assert.Equal(t, "Couple Goals 💑", result.ViralStats.CompatibilityVerdict)
}

func TestAnalyzeNoValidMessages(t *testing.T) {
	a := NewAnalyzer(nil)

	_, err := a.Analyze("", nil)
	require.ErrorIs(t, err, ErrNoMessages)

	onlyNoise := "random chatter without timestamps\n" +
		"12/5/24, 10:00 AM - Priya: <Media omitted>\n"
	_, err = a.Analyze(onlyNoise, nil)
	require.ErrorIs(t, err, ErrNoMessages)
}

func TestAnalyzeSingleSenderFallback(t *testing.T) {
	a := NewAnalyzer(nil)

	transcript := "12/5/24, 10:00 AM - Priya: talking to myself\n" +
		"12/5/24, 10:05 AM - Priya: still here\n"
	result, err := a.Analyze(transcript, nil)
	require.NoError(t, err)

	assert.Equal(t, "Priya", result.PartnerA)
	assert.Equal(t, "Partner B", result.PartnerB)
	assert.Contains(t, result.MessagesByUser, "Partner B")
	assert.Equal(t, 0, result.MessagesByUser["Partner B"])
	assert.Equal(t, "Priya", result.MostActiveSender)
}

func TestAnalyzeIsDeterministic(t *testing.T) {
	a := NewAnalyzer(nil)

	first, err := a.Analyze(shortTranscript, nil)
	require.NoError(t, err)
	second, err := a.Analyze(shortTranscript, nil)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestAnalyzeThirdSenderCountsGloballyOnly(t *testing.T) {
	a := NewAnalyzer(nil)

	transcript := "12/5/24, 10:00 AM - Priya: hello\n" +
		"12/5/24, 10:05 AM - Rahul: hi there\n" +
		"12/5/24, 10:10 AM - Amit: group crasher message\n"
	result, err := a.Analyze(transcript, nil)
	require.NoError(t, err)

	assert.Equal(t, 3, result.TotalMessages)
	assert.Equal(t, map[string]int{"Priya": 1, "Rahul": 1}, result.MessagesByUser)
	assert.NotContains(t, result.MessagesByUser, "Amit")
}
