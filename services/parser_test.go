package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLineAndroidFormat(t *testing.T) {
	msg, ok := ParseLine("12/5/24, 10:30 AM - Priya: Good morning, how are you?")
	require.True(t, ok)

	assert.Equal(t, "Priya", msg.Sender)
	assert.Equal(t, "Good morning, how are you?", msg.Body)
	assert.Equal(t, 5, msg.WordCount)
	assert.Equal(t, 10, msg.Hour)
	assert.Equal(t, time.Date(2024, time.May, 12, 10, 30, 0, 0, time.Local), msg.Timestamp)
}

func TestParseLineIOSFormat(t *testing.T) {
	msg, ok := ParseLine("[12/5/24, 22:30:45] Rahul: see you tomorrow")
	require.True(t, ok)

	assert.Equal(t, "Rahul", msg.Sender)
	assert.Equal(t, "see you tomorrow", msg.Body)
	assert.Equal(t, 22, msg.Hour)
	assert.Equal(t, 45, msg.Timestamp.Second())
}

func TestParseLineTwelveHourClock(t *testing.T) {
	tests := []struct {
		line string
		hour int
	}{
		{"1/1/24, 12:15 AM - A: midnight text", 0},
		{"1/1/24, 12:15 PM - A: noon text", 12},
		{"1/1/24, 1:00 PM - A: afternoon text", 13},
		{"1/1/24, 11:59 PM - A: late text", 23},
	}

	for _, tc := range tests {
		msg, ok := ParseLine(tc.line)
		require.True(t, ok, tc.line)
		assert.Equal(t, tc.hour, msg.Hour, tc.line)
	}
}

func TestParseLineFourDigitYear(t *testing.T) {
	msg, ok := ParseLine("3/4/2023, 09:00 - Sam: hello")
	require.True(t, ok)
	assert.Equal(t, 2023, msg.Timestamp.Year())
	assert.Equal(t, time.April, msg.Timestamp.Month())
	assert.Equal(t, 3, msg.Timestamp.Day())
}

func TestParseLineDropsNoise(t *testing.T) {
	dropped := []string{
		"",
		"   ",
		"just a continuation line without a timestamp",
		"12/5/24, 10:30 AM - Priya: <Media omitted>",
		"12/5/24, 10:30 AM - Priya: image omitted",
		"12/5/24, 10:30 AM - Priya: Missed voice call",
		"12/5/24, 10:30 AM - WhatsApp: Messages and calls are end-to-end encrypted.",
		"12/5/24, 10:30 AM - Priya: This message was deleted",
	}

	for _, line := range dropped {
		_, ok := ParseLine(line)
		assert.False(t, ok, "expected line to be dropped: %q", line)
	}
}

func TestParseLineKeepsColonInBody(t *testing.T) {
	msg, ok := ParseLine("12/5/24, 10:30 AM - Priya: note: call me at 5")
	require.True(t, ok)
	assert.Equal(t, "note: call me at 5", msg.Body)
}

func TestParseTranscriptFiltersPerLine(t *testing.T) {
	transcript := "12/5/24, 10:00 AM - Priya: first message\n" +
		"this continuation line is dropped\n" +
		"12/5/24, 10:05 AM - Rahul: <Media omitted>\n" +
		"12/5/24, 10:10 AM - Rahul: second message\n"

	messages := parseTranscript(transcript)
	require.Len(t, messages, 2)
	assert.Equal(t, "first message", messages[0].Body)
	assert.Equal(t, "second message", messages[1].Body)
}
