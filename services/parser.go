package services

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ParsedMessage is a single chat message extracted from an export line.
// It is immutable once parsed; every downstream stage reads it as-is.
type ParsedMessage struct {
	Timestamp time.Time
	Sender    string
	Body      string
	Hour      int
	WordCount int
}

// The two export line grammars. Android exports write
// "D/M/Y, H:MM AM - Sender: body"; iOS wraps the timestamp in brackets
// and may include seconds.
var (
	androidPattern = regexp.MustCompile(`^(\d{1,2}/\d{1,2}/\d{2,4}),?\s*(\d{1,2}:\d{2})\s*([APap][Mm])?\s*-\s*([^:]+):\s*(.+)$`)
	iosPattern     = regexp.MustCompile(`^\[(\d{1,2}/\d{1,2}/\d{2,4}),?\s*(\d{1,2}:\d{2}(?::\d{2})?)\s*([APap][Mm])?\]\s*([^:]+):\s*(.+)$`)
)

// systemMessages is the denylist of exporter noise: media placeholders,
// encryption notices, call notices, group membership changes. Matched by
// case-insensitive substring against the message body.
var systemMessages = []string{
	"media omitted",
	"image omitted",
	"video omitted",
	"audio omitted",
	"sticker omitted",
	"gif omitted",
	"document omitted",
	"contact card omitted",
	"location omitted",
	"end-to-end encrypted",
	"messages and calls are end-to-end encrypted",
	"you deleted this message",
	"this message was deleted",
	"missed voice call",
	"missed video call",
	"null",
	"changed the subject",
	"changed this group",
	"added you",
	"left",
	"removed",
	"changed the group",
	"created group",
}

// ParseLine extracts a message from one raw export line. It returns
// ok=false for blank lines, lines matching neither grammar, empty bodies
// and system messages; malformed input is dropped, never an error.
//
// Multi-line message bodies are not reattached: each physical line is
// evaluated on its own, and a continuation line that matches neither
// grammar is silently dropped.
func ParseLine(line string) (ParsedMessage, bool) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return ParsedMessage{}, false
	}

	match := androidPattern.FindStringSubmatch(trimmed)
	if match == nil {
		match = iosPattern.FindStringSubmatch(trimmed)
	}
	if match == nil {
		return ParsedMessage{}, false
	}

	body := strings.TrimSpace(match[5])
	if body == "" || isSystemMessage(body) {
		return ParsedMessage{}, false
	}

	timestamp := parseDateTime(match[1], match[2], match[3])
	return ParsedMessage{
		Timestamp: timestamp,
		Sender:    strings.TrimSpace(match[4]),
		Body:      body,
		Hour:      timestamp.Hour(),
		WordCount: countWords(body),
	}, true
}

// parseDateTime builds a timestamp from the captured date, time and
// optional AM/PM marker. Dates are D/M/Y; two-digit years mean 2000+YY.
func parseDateTime(dateStr, timeStr, ampm string) time.Time {
	dateParts := strings.Split(dateStr, "/")
	day, _ := strconv.Atoi(dateParts[0])
	month, _ := strconv.Atoi(dateParts[1])
	year, _ := strconv.Atoi(dateParts[2])

	timeParts := strings.Split(timeStr, ":")
	hours, _ := strconv.Atoi(timeParts[0])
	minutes, _ := strconv.Atoi(timeParts[1])
	seconds := 0
	if len(timeParts) > 2 {
		seconds, _ = strconv.Atoi(timeParts[2])
	}

	if ampm != "" {
		isPM := strings.EqualFold(ampm, "pm")
		if isPM && hours != 12 {
			hours += 12
		}
		if !isPM && hours == 12 {
			hours = 0
		}
	}

	if year < 100 {
		year += 2000
	}

	return time.Date(year, time.Month(month), day, hours, minutes, seconds, 0, time.Local)
}

func countWords(body string) int {
	return len(strings.Fields(body))
}

func isSystemMessage(body string) bool {
	lower := strings.ToLower(body)
	for _, sys := range systemMessages {
		if strings.Contains(lower, sys) {
			return true
		}
	}
	return false
}
