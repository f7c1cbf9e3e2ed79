package services

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testMessage(sender string, at time.Time, body string) ParsedMessage {
	return ParsedMessage{
		Timestamp: at,
		Sender:    sender,
		Body:      body,
		Hour:      at.Hour(),
		WordCount: len(strings.Fields(body)),
	}
}

func TestAverageReplyTime(t *testing.T) {
	base := time.Date(2024, time.May, 12, 10, 0, 0, 0, time.Local)
	messages := []ParsedMessage{
		testMessage("A", base, "hello"),
		testMessage("B", base.Add(150*time.Minute), "hi"),
		testMessage("A", base.Add(300*time.Minute), "how are you"),
	}

	assert.Equal(t, 150.0, averageReplyTime(messages))
}

func TestAverageReplyTimeExcludesNonReplies(t *testing.T) {
	base := time.Date(2024, time.May, 12, 10, 0, 0, 0, time.Local)
	messages := []ParsedMessage{
		testMessage("A", base, "one"),
		// Same sender: not a reply.
		testMessage("A", base.Add(10*time.Minute), "two"),
		// Same timestamp: zero gap excluded.
		testMessage("B", base.Add(10*time.Minute), "three"),
		// Day-plus silence: excluded as ghosting, not reply time.
		testMessage("A", base.Add(10*time.Minute).Add(25*time.Hour), "four"),
		testMessage("B", base.Add(10*time.Minute).Add(25*time.Hour).Add(20*time.Minute), "five"),
	}

	assert.Equal(t, 20.0, averageReplyTime(messages))
}

func TestAverageReplyTimeTooFewMessages(t *testing.T) {
	base := time.Date(2024, time.May, 12, 10, 0, 0, 0, time.Local)
	assert.Equal(t, 0.0, averageReplyTime(nil))
	assert.Equal(t, 0.0, averageReplyTime([]ParsedMessage{testMessage("A", base, "hi")}))
}

func TestActivityScores(t *testing.T) {
	day := time.Date(2024, time.May, 12, 0, 0, 0, 0, time.Local)
	messages := []ParsedMessage{
		testMessage("A", day.Add(2*time.Hour), "night text"),
		testMessage("B", day.Add(7*time.Hour), "morning text"),
	}

	night, morning := activityScores(messages)
	assert.Equal(t, 50, night)
	assert.Equal(t, 50, morning)
}

func TestDeepStatsGapAttribution(t *testing.T) {
	base := time.Date(2024, time.May, 12, 9, 0, 0, 0, time.Local)
	messages := []ParsedMessage{
		testMessage("A", base, "good morning"),
		// Five hour gap: past the ghosting threshold, short of the
		// initiation threshold. A left B waiting.
		testMessage("B", base.Add(5*time.Hour), "finally replying"),
		// Seven hour gap: both ghosting (charged to B) and a fresh
		// conversation start (credited to A).
		testMessage("A", base.Add(12*time.Hour), "hello again"),
	}

	idx := derivePartners(messages)
	stats := calculateDeepStats(messages, idx)

	assert.Equal(t, 2, stats.GhostingScore)
	assert.Equal(t, 1, stats.GhostingByUser["A"])
	assert.Equal(t, 1, stats.GhostingByUser["B"])

	assert.Equal(t, 1, stats.InitiationScore["A"])
	assert.Equal(t, 0, stats.InitiationScore["B"])
	assert.Equal(t, stats.InitiationScore, stats.ConversationStarters)
}

func TestDeepStatsDryAndLongMessages(t *testing.T) {
	base := time.Date(2024, time.May, 12, 9, 0, 0, 0, time.Local)
	messages := []ParsedMessage{
		testMessage("A", base, "ok"),
		testMessage("B", base.Add(time.Minute), "three whole words"),
		testMessage("A", base.Add(2*time.Minute), strings.Repeat("word ", 51)),
	}

	idx := derivePartners(messages)
	stats := calculateDeepStats(messages, idx)

	assert.Equal(t, 1, stats.DryTextCount)
	assert.Equal(t, 1, stats.DryTextByUser["A"])
	assert.Equal(t, 0, stats.DryTextByUser["B"])
	assert.Equal(t, 1, stats.LongMessageCount)
	assert.Equal(t, 1, stats.LongMessageByUser["A"])
}

func TestCalculateLongestStreak(t *testing.T) {
	day := func(d int) time.Time {
		return time.Date(2024, time.May, d, 12, 0, 0, 0, time.Local)
	}
	messages := []ParsedMessage{
		testMessage("A", day(1), "one"),
		testMessage("B", day(2), "two"),
		testMessage("A", day(2), "two again"),
		testMessage("B", day(3), "three"),
		// Gap: the 4th is silent.
		testMessage("A", day(5), "five"),
	}

	assert.Equal(t, 3, calculateLongestStreak(messages))
	assert.Equal(t, 0, calculateLongestStreak(nil))
}

func TestFindMostActiveTime(t *testing.T) {
	// 12 May 2024 is a Sunday, 13 May a Monday.
	sunday := time.Date(2024, time.May, 12, 21, 0, 0, 0, time.Local)
	monday := time.Date(2024, time.May, 13, 9, 0, 0, 0, time.Local)
	messages := []ParsedMessage{
		testMessage("A", sunday, "one"),
		testMessage("B", sunday.Add(10*time.Minute), "two"),
		testMessage("A", monday, "three"),
	}

	day, hour := findMostActiveTime(messages)
	assert.Equal(t, "Sunday", day)
	assert.Equal(t, 21, hour)
}

func TestCountEmojis(t *testing.T) {
	base := time.Date(2024, time.May, 12, 10, 0, 0, 0, time.Local)
	messages := []ParsedMessage{
		testMessage("A", base, "miss you 😘😘"),
		testMessage("B", base.Add(time.Minute), "same ❤ plain text"),
	}

	require.Equal(t, 3, countEmojis(messages))
}
