package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestScoreSentimentCategories(t *testing.T) {
	a := NewAnalyzer(nil)
	base := time.Date(2024, time.May, 12, 10, 0, 0, 0, time.Local)
	messages := []ParsedMessage{
		testMessage("Priya", base, "I love you so much"),
		testMessage("Rahul", base.Add(time.Minute), "whatever, I am done"),
		testMessage("Priya", base.Add(2*time.Minute), "let's get dinner, I'm starving"),
	}
	idx := derivePartners(messages)

	global, byUser := a.scoreSentiment(messages, "en", idx)

	assert.Equal(t, 1, global.Romance)
	assert.Equal(t, 1, global.Fight)
	assert.Equal(t, 1, global.Food)

	assert.Equal(t, 1, byUser["Priya"].Romance)
	assert.Equal(t, 0, byUser["Rahul"].Romance)
	assert.Equal(t, 1, byUser["Rahul"].Fight)
}

func TestScoreSentimentOneHitPerCategoryPerMessage(t *testing.T) {
	a := NewAnalyzer(nil)
	base := time.Date(2024, time.May, 12, 10, 0, 0, 0, time.Local)
	messages := []ParsedMessage{
		// Several romance keywords in one message still count once.
		testMessage("Priya", base, "love you baby, my darling sweetheart"),
	}
	idx := derivePartners(messages)

	global, _ := a.scoreSentiment(messages, "en", idx)
	assert.Equal(t, 1, global.Romance)
}

func TestScoreSentimentUnknownLanguageFallsBackToEnglish(t *testing.T) {
	a := NewAnalyzer(nil)
	base := time.Date(2024, time.May, 12, 10, 0, 0, 0, time.Local)
	messages := []ParsedMessage{
		testMessage("Priya", base, "miss you already"),
	}
	idx := derivePartners(messages)

	global, _ := a.scoreSentiment(messages, "does-not-exist", idx)
	assert.Equal(t, 1, global.Romance)
}

func TestScoreSentimentSlangIsLanguageIndependent(t *testing.T) {
	a := NewAnalyzer(nil)
	base := time.Date(2024, time.May, 12, 10, 0, 0, 0, time.Local)
	messages := []ParsedMessage{
		testMessage("Priya", base, "that is so delulu no cap"),
		testMessage("Rahul", base.Add(time.Minute), "main character energy fr"),
	}
	idx := derivePartners(messages)

	global, byUser := a.scoreSentiment(messages, "hi", idx)
	assert.Equal(t, 2, global.Slang)
	assert.Equal(t, 1, byUser["Priya"].Slang)
	assert.Equal(t, 1, byUser["Rahul"].Slang)
}

func TestScoreSentimentEmitsBothPartnerKeys(t *testing.T) {
	a := NewAnalyzer(nil)
	base := time.Date(2024, time.May, 12, 10, 0, 0, 0, time.Local)
	messages := []ParsedMessage{
		testMessage("Solo", base, "love you"),
	}
	idx := derivePartners(messages)

	_, byUser := a.scoreSentiment(messages, "en", idx)
	assert.Contains(t, byUser, "Solo")
	assert.Contains(t, byUser, "Partner B")
}
