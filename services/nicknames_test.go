package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"chat-audit/models"
)

func TestCountNicknamesCommonList(t *testing.T) {
	a := NewAnalyzer(nil)
	base := time.Date(2024, time.May, 12, 10, 0, 0, 0, time.Local)
	messages := []ParsedMessage{
		testMessage("Priya", base, "good morning babu"),
		testMessage("Rahul", base.Add(time.Minute), "hi jaan, missed you babu"),
	}
	idx := derivePartners(messages)

	counts, byUser := a.countNicknames(messages, nil, idx)

	assert.Equal(t, 2, counts["babu"])
	assert.Equal(t, 1, counts["jaan"])
	assert.Equal(t, 1, byUser["Priya"]["babu"])
	assert.Equal(t, 1, byUser["Rahul"]["babu"])
	assert.Equal(t, 1, byUser["Rahul"]["jaan"])
}

func TestCountNicknamesCustomAndDedupe(t *testing.T) {
	a := NewAnalyzer(nil)
	base := time.Date(2024, time.May, 12, 10, 0, 0, 0, time.Local)
	messages := []ParsedMessage{
		testMessage("Priya", base, "hey pookie bear"),
		testMessage("Rahul", base.Add(time.Minute), "POOKIE where are you"),
	}
	idx := derivePartners(messages)

	custom := &models.CustomNicknames{
		PartnerANicknames: []string{"Pookie", "  pookie  "},
		PartnerBNicknames: []string{"POOKIE", ""},
	}
	counts, _ := a.countNicknames(messages, custom, idx)

	// Case and whitespace variants collapse into one configured nickname.
	assert.Equal(t, 2, counts["pookie"])
}

func TestCountNicknamesWordBoundary(t *testing.T) {
	a := NewAnalyzer(nil)
	base := time.Date(2024, time.May, 12, 10, 0, 0, 0, time.Local)
	messages := []ParsedMessage{
		// "baby" inside "babylon" must not count.
		testMessage("Priya", base, "reading about babylon"),
		testMessage("Rahul", base.Add(time.Minute), "ok baby"),
	}
	idx := derivePartners(messages)

	counts, _ := a.countNicknames(messages, nil, idx)
	assert.Equal(t, 1, counts["baby"])
}

func TestCountNicknamesAlwaysEmitsBothPartnerKeys(t *testing.T) {
	a := NewAnalyzer(nil)
	base := time.Date(2024, time.May, 12, 10, 0, 0, 0, time.Local)
	messages := []ParsedMessage{
		testMessage("Solo", base, "plain message"),
	}
	idx := derivePartners(messages)

	_, byUser := a.countNicknames(messages, nil, idx)
	assert.Contains(t, byUser, "Solo")
	assert.Contains(t, byUser, "Partner B")
	assert.Empty(t, byUser["Partner B"])
}
