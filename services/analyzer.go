package services

import (
	"errors"
	"strings"

	"chat-audit/models"
)

// ErrNoMessages is the single hard failure of the analysis pipeline:
// after parsing and system-message filtering, nothing usable remained.
// Every other anomaly degrades to zero/default values in the result.
var ErrNoMessages = errors.New("no valid messages found in the chat file")

// Analyzer runs the full transcript analysis pipeline. It is stateless
// apart from the injected read-only Lexicon, so a single instance can
// serve any number of concurrent analyses.
type Analyzer struct {
	lexicon *Lexicon
}

// NewAnalyzer creates an Analyzer. A nil lexicon selects the built-in
// multi-language tables.
func NewAnalyzer(lexicon *Lexicon) *Analyzer {
	if lexicon == nil {
		lexicon = DefaultLexicon()
	}
	return &Analyzer{lexicon: lexicon}
}

// Analyze parses a raw chat export and assembles the complete analysis
// result. The computation is deterministic: identical input always
// produces an identical result. It returns ErrNoMessages when the
// transcript yields no parseable, non-system messages.
func (a *Analyzer) Analyze(transcript string, nicknames *models.CustomNicknames) (*models.AnalysisResult, error) {
	messages := parseTranscript(transcript)
	if len(messages) == 0 {
		return nil, ErrNoMessages
	}

	idx := derivePartners(messages)

	var messagesBy pairCounts
	for _, msg := range messages {
		messagesBy.add(idx.of(msg.Sender), 1)
	}
	mostActive := idx.nameA
	if messagesBy[partnerB] > messagesBy[partnerA] {
		mostActive = idx.nameB
	}

	// Language detection scans the raw text, not the filtered messages:
	// sender names and dropped lines still carry language signal.
	language := a.DetectLanguage(transcript)

	sentiment, sentimentByUser := a.scoreSentiment(messages, language.DominantLanguage, idx)
	deepStats := calculateDeepStats(messages, idx)
	nicknameCount, nicknamesByUser := a.countNicknames(messages, nicknames, idx)
	viralStats := a.scoreViral(messages, idx)

	nightOwl, morningPerson := activityScores(messages)
	mostActiveDay, mostActiveHour := findMostActiveTime(messages)

	return &models.AnalysisResult{
		TotalMessages:      len(messages),
		MessagesByUser:     messagesBy.byUser(idx),
		MostActiveSender:   mostActive,
		AverageReplyTime:   averageReplyTime(messages),
		NightOwlScore:      nightOwl,
		MorningPersonScore: morningPerson,
		SentimentStats:     sentiment,
		SentimentByUser:    sentimentByUser,
		DeepStats:          deepStats,
		ViralStats:         viralStats,
		NicknameCount:      nicknameCount,
		NicknamesByUser:    nicknamesByUser,
		Language:           language,
		LongestStreak:      calculateLongestStreak(messages),
		MostActiveDay:      mostActiveDay,
		MostActiveHour:     mostActiveHour,
		EmojiCount:         countEmojis(messages),
		PartnerA:           idx.nameA,
		PartnerB:           idx.nameB,
	}, nil
}

// parseTranscript splits the export into lines and keeps every line
// that parses as a message. Unparseable and system lines are dropped
// silently; continuation lines of multi-line bodies are therefore lost,
// which mirrors the export format's line-oriented contract.
func parseTranscript(transcript string) []ParsedMessage {
	var messages []ParsedMessage
	for _, line := range strings.Split(transcript, "\n") {
		if msg, ok := ParseLine(line); ok {
			messages = append(messages, msg)
		}
	}
	return messages
}
