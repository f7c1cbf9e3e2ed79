package services

import (
	"math"
	"sort"
	"time"

	"chat-audit/models"
)

// Gap thresholds for the timing analytics. A reply after more than four
// hours counts as ghosting; any message after more than six hours of
// silence counts as starting the conversation anew.
const (
	ghostingGap   = 4 * time.Hour
	initiationGap = 6 * time.Hour

	dryTextMaxWords     = 3
	longMessageMinWords = 50
)

// averageReplyTime averages the gaps between adjacent messages from
// different senders, in minutes rounded to one decimal. Gaps outside
// (0, 24h) are excluded: same-minute duplicates carry no signal and
// day-plus silences are ghosting, not reply time.
func averageReplyTime(messages []ParsedMessage) float64 {
	if len(messages) < 2 {
		return 0
	}

	var total float64
	count := 0
	for i := 1; i < len(messages); i++ {
		prev, curr := messages[i-1], messages[i]
		if prev.Sender == curr.Sender {
			continue
		}
		diffMins := curr.Timestamp.Sub(prev.Timestamp).Minutes()
		if diffMins > 0 && diffMins < 1440 {
			total += diffMins
			count++
		}
	}

	if count == 0 {
		return 0
	}
	return math.Round(total/float64(count)*10) / 10
}

// activityScores returns the night-owl (1-5 AM) and morning-person
// (6-10 AM) percentages. The two are rounded independently and need not
// sum with the remaining hours to exactly 100.
func activityScores(messages []ParsedMessage) (nightOwl, morningPerson int) {
	if len(messages) == 0 {
		return 0, 0
	}

	night, morning := 0, 0
	for _, msg := range messages {
		if msg.Hour >= 1 && msg.Hour <= 5 {
			night++
		}
		if msg.Hour >= 6 && msg.Hour <= 10 {
			morning++
		}
	}

	total := float64(len(messages))
	nightOwl = int(math.Round(float64(night) / total * 100))
	morningPerson = int(math.Round(float64(morning) / total * 100))
	return nightOwl, morningPerson
}

// calculateDeepStats tallies dry texts, long messages, ghosting and
// conversation initiation. Ghosting is attributed to the earlier sender
// of the gap (the one who left the other waiting); initiation to the
// later sender (the one who restarted the conversation).
func calculateDeepStats(messages []ParsedMessage, idx senderIndex) models.DeepStats {
	var dry, long, ghostBy, initiation pairCounts
	dryCount, longCount, ghostScore := 0, 0, 0

	for _, msg := range messages {
		who := idx.of(msg.Sender)
		if msg.WordCount < dryTextMaxWords {
			dryCount++
			dry.add(who, 1)
		}
		if msg.WordCount > longMessageMinWords {
			longCount++
			long.add(who, 1)
		}
	}

	for i := 1; i < len(messages); i++ {
		prev, curr := messages[i-1], messages[i]
		gap := curr.Timestamp.Sub(prev.Timestamp)

		if prev.Sender != curr.Sender && gap > ghostingGap {
			ghostScore++
			ghostBy.add(idx.of(prev.Sender), 1)
		}

		if gap > initiationGap {
			initiation.add(idx.of(curr.Sender), 1)
		}
	}

	return models.DeepStats{
		DryTextCount:         dryCount,
		DryTextByUser:        dry.byUser(idx),
		LongMessageCount:     longCount,
		LongMessageByUser:    long.byUser(idx),
		GhostingScore:        ghostScore,
		GhostingByUser:       ghostBy.byUser(idx),
		InitiationScore:      initiation.byUser(idx),
		ConversationStarters: initiation.byUser(idx),
	}
}

// calculateLongestStreak finds the longest run of consecutive calendar
// days with at least one message.
func calculateLongestStreak(messages []ParsedMessage) int {
	if len(messages) == 0 {
		return 0
	}

	seen := make(map[string]bool)
	var dates []string
	for _, msg := range messages {
		day := msg.Timestamp.Format("2006-01-02")
		if !seen[day] {
			seen[day] = true
			dates = append(dates, day)
		}
	}
	sort.Strings(dates)

	maxStreak, current := 1, 1
	for i := 1; i < len(dates); i++ {
		prev, _ := time.Parse("2006-01-02", dates[i-1])
		curr, _ := time.Parse("2006-01-02", dates[i])
		if curr.Sub(prev) == 24*time.Hour {
			current++
			if current > maxStreak {
				maxStreak = current
			}
		} else {
			current = 1
		}
	}

	return maxStreak
}

var weekdayNames = [7]string{
	"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
}

// findMostActiveTime returns the modal weekday name and hour of day.
// Ties resolve to the earliest slot in the fixed iteration order.
func findMostActiveTime(messages []ParsedMessage) (string, int) {
	var dayCount [7]int
	var hourCount [24]int
	for _, msg := range messages {
		dayCount[int(msg.Timestamp.Weekday())]++
		hourCount[msg.Hour]++
	}

	bestDay, bestDayCount := 0, -1
	for day, count := range dayCount {
		if count > bestDayCount {
			bestDay, bestDayCount = day, count
		}
	}

	bestHour, bestHourCount := 0, -1
	for hour, count := range hourCount {
		if count > bestHourCount {
			bestHour, bestHourCount = hour, count
		}
	}

	return weekdayNames[bestDay], bestHour
}

// countEmojis counts characters in the common emoji Unicode ranges
// across all message bodies.
func countEmojis(messages []ParsedMessage) int {
	count := 0
	for _, msg := range messages {
		for _, r := range msg.Body {
			if isEmojiRune(r) {
				count++
			}
		}
	}
	return count
}

func isEmojiRune(r rune) bool {
	switch {
	case r >= 0x1F300 && r <= 0x1F9FF: // pictographs, emoticons, transport
		return true
	case r >= 0x2600 && r <= 0x26FF: // misc symbols
		return true
	case r >= 0x2700 && r <= 0x27BF: // dingbats
		return true
	case r >= 0x1F1E0 && r <= 0x1F1FF: // regional indicators (flags)
		return true
	default:
		return false
	}
}
