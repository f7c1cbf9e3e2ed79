package services

// partner is the closed two-party domain every per-sender tally is keyed
// by internally. Display names only appear at the result boundary, which
// removes the "unknown map key" defaulting the free-text keying would
// otherwise need.
type partner int

const (
	partnerA partner = iota
	partnerB
	// partnerNone marks a sender outside the first two distinct names;
	// such messages count globally but are not attributed to a partner.
	partnerNone
)

const (
	fallbackPartnerA = "Partner A"
	fallbackPartnerB = "Partner B"
)

// senderIndex resolves free-text sender names to the partner pair.
type senderIndex struct {
	nameA string
	nameB string
}

// derivePartners takes the first two distinct sender names, in order of
// first appearance. Transcripts with a single sender fall back to a
// placeholder second partner so downstream stages never crash.
func derivePartners(messages []ParsedMessage) senderIndex {
	idx := senderIndex{nameA: fallbackPartnerA, nameB: fallbackPartnerB}
	seen := 0
	for _, msg := range messages {
		switch {
		case seen == 0:
			idx.nameA = msg.Sender
			seen = 1
		case seen == 1 && msg.Sender != idx.nameA:
			idx.nameB = msg.Sender
			return idx
		}
	}
	return idx
}

func (s senderIndex) of(name string) partner {
	switch name {
	case s.nameA:
		return partnerA
	case s.nameB:
		return partnerB
	default:
		return partnerNone
	}
}

// pairCounts is an integer tally per partner.
type pairCounts [2]int

func (p *pairCounts) add(who partner, n int) {
	if who != partnerNone {
		p[who] += n
	}
}

// byUser translates a tally to a display-name-keyed map. Both partner
// keys are always present, zero-valued when untouched, so consumers can
// render unconditionally.
func (p pairCounts) byUser(idx senderIndex) map[string]int {
	return map[string]int{
		idx.nameA: p[partnerA],
		idx.nameB: p[partnerB],
	}
}
