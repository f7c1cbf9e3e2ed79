package services

import (
	"strings"

	"chat-audit/models"
)

// countNicknames counts exact-phrase, word-boundary occurrences of every
// configured nickname across the transcript, globally and per partner.
// The user's custom nicknames are unioned with the built-in common list;
// zero configured nicknames is not an error, it just yields empty counts.
func (a *Analyzer) countNicknames(
	messages []ParsedMessage,
	custom *models.CustomNicknames,
	idx senderIndex,
) (map[string]int, map[string]map[string]int) {
	var configured []string
	if custom != nil {
		configured = append(configured, custom.PartnerANicknames...)
		configured = append(configured, custom.PartnerBNicknames...)
	}
	configured = append(configured, a.lexicon.CommonNicknames()...)

	seen := make(map[string]bool, len(configured))
	var nicknames []string
	for _, nickname := range configured {
		key := strings.ToLower(strings.TrimSpace(nickname))
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		nicknames = append(nicknames, key)
	}

	counts := make(map[string]int)
	byUser := map[string]map[string]int{
		idx.nameA: {},
		idx.nameB: {},
	}

	for _, msg := range messages {
		lower := strings.ToLower(msg.Body)
		who := idx.of(msg.Sender)
		for _, nickname := range nicknames {
			hits := a.lexicon.countWordHits(lower, nickname)
			if hits == 0 {
				continue
			}
			counts[nickname] += hits
			if who == partnerA {
				byUser[idx.nameA][nickname] += hits
			} else if who == partnerB {
				byUser[idx.nameB][nickname] += hits
			}
		}
	}

	return counts, byUser
}
