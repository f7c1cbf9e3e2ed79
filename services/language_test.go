package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectLanguageHindi(t *testing.T) {
	a := NewAnalyzer(nil)

	transcript := "12/5/24, 10:00 AM - A: pyar ishq mohabbat\n" +
		"12/5/24, 10:05 AM - B: dil se yaad aa rahi\n"
	result := a.DetectLanguage(transcript)

	assert.Equal(t, "hi", result.DominantLanguage)
	assert.Equal(t, "Hinglish", result.LanguageName)
	assert.Greater(t, result.Confidence, 0)
	assert.LessOrEqual(t, result.Confidence, 100)
}

func TestDetectLanguageDefaultsToEnglish(t *testing.T) {
	a := NewAnalyzer(nil)

	result := a.DetectLanguage("zzz qqq xxx")
	assert.Equal(t, "en", result.DominantLanguage)
	assert.Equal(t, 0, result.Confidence)
}

func TestDetectLanguageTieBreaksByTableOrder(t *testing.T) {
	a := NewAnalyzer(nil)

	// "sorry" scores one hit in several languages; the tie resolves to
	// the earliest language in the fixed order, which is English.
	result := a.DetectLanguage("sorry")
	assert.Equal(t, "en", result.DominantLanguage)
}

func TestDetectLanguageCountsSlang(t *testing.T) {
	a := NewAnalyzer(nil)

	result := a.DetectLanguage("that is so delulu no cap bestie")
	assert.Equal(t, 3, result.SlangCount)
}

func TestDetectLanguageScansOnlyPrefix(t *testing.T) {
	a := NewAnalyzer(nil)

	// Hindi signal buried past the scan window must not influence the
	// outcome.
	head := strings.Repeat("love forever heart\n", languageScanLines)
	tail := strings.Repeat("pyar ishq mohabbat dil\n", 50)
	result := a.DetectLanguage(head + tail)

	assert.Equal(t, "en", result.DominantLanguage)
	assert.Equal(t, 0, result.LanguageScores["hi"])
}
