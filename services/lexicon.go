package services

import (
	"regexp"
	"sort"
	"strings"
)

// SentimentCategory identifies one of the five fixed sentiment categories.
type SentimentCategory string

const (
	CategoryRomance  SentimentCategory = "romance"
	CategoryFight    SentimentCategory = "fight"
	CategoryFood     SentimentCategory = "food"
	CategoryMarriage SentimentCategory = "marriage"
	CategoryWaiting  SentimentCategory = "waiting"
)

// sentimentCategories fixes the scan order of the categories.
var sentimentCategories = []SentimentCategory{
	CategoryRomance,
	CategoryFight,
	CategoryFood,
	CategoryMarriage,
	CategoryWaiting,
}

// SentimentLexicon is one language's keyword lists, keyed by category.
type SentimentLexicon map[SentimentCategory][]string

// ViralCategory identifies one of the seven viral audit categories.
type ViralCategory string

const (
	ViralRedFlag     ViralCategory = "red_flag"
	ViralApology     ViralCategory = "apology"
	ViralJealousy    ViralCategory = "jealousy"
	ViralSelfFocused ViralCategory = "self_focused"
	ViralConvoKiller ViralCategory = "convo_killer"
	ViralLove        ViralCategory = "love"
	ViralFlirty      ViralCategory = "flirty"
)

// Lexicon bundles every keyword table the analyzer needs, with match
// patterns precompiled once at construction. A Lexicon is immutable and
// safe to share across concurrent analyses; scorers receive it by
// injection so they can be tested with substitute tables.
type Lexicon struct {
	languages []string
	sentiment map[string]SentimentLexicon
	slang     []string
	viral     map[ViralCategory][]string
	nicknames []string

	wordPatterns     map[string]*regexp.Regexp
	boundaryPatterns map[string]*regexp.Regexp
}

// DefaultLexicon builds the Lexicon from the built-in multi-language tables.
func DefaultLexicon() *Lexicon {
	return NewLexicon(globalSentiment, sentimentLanguages, slangDictionary,
		viralKeywordTables, viralLanguages, commonNicknames)
}

// NewLexicon assembles a Lexicon from explicit tables. languages fixes the
// detector's iteration order; viralOrder fixes the order in which the
// per-language viral tables are flattened into one keyword list per
// category (falls back to languages when nil). Language codes present in a
// viral table but absent from the order are appended in sorted order.
func NewLexicon(
	sentiment map[string]SentimentLexicon,
	languages []string,
	slang []string,
	viral map[ViralCategory]map[string][]string,
	viralOrder []string,
	nicknames []string,
) *Lexicon {
	if viralOrder == nil {
		viralOrder = languages
	}

	lex := &Lexicon{
		languages:        languages,
		sentiment:        sentiment,
		slang:            slang,
		viral:            make(map[ViralCategory][]string, len(viral)),
		nicknames:        nicknames,
		wordPatterns:     make(map[string]*regexp.Regexp),
		boundaryPatterns: make(map[string]*regexp.Regexp),
	}

	for category, byLanguage := range viral {
		lex.viral[category] = flattenKeywords(byLanguage, viralOrder)
	}

	// Word-boundary patterns back the language detector and the
	// nickname counter.
	for _, langLex := range sentiment {
		for _, words := range langLex {
			for _, word := range words {
				lex.addWordPattern(word)
			}
		}
	}
	for _, word := range slang {
		lex.addWordPattern(word)
	}
	for _, nickname := range nicknames {
		lex.addWordPattern(nickname)
	}

	// Boundary patterns back the viral scorer's stricter matching rule.
	for _, keywords := range lex.viral {
		for _, keyword := range keywords {
			key := strings.ToLower(keyword)
			if len(key) > 1 {
				if _, ok := lex.boundaryPatterns[key]; !ok {
					lex.boundaryPatterns[key] = boundaryPattern(key)
				}
			}
		}
	}

	return lex
}

// flattenKeywords unions a per-language table into a single list, keeping
// the configured language order so downstream tie-breaks stay stable.
func flattenKeywords(byLanguage map[string][]string, order []string) []string {
	var flat []string
	seen := make(map[string]bool, len(order))
	for _, lang := range order {
		seen[lang] = true
		flat = append(flat, byLanguage[lang]...)
	}
	var rest []string
	for lang := range byLanguage {
		if !seen[lang] {
			rest = append(rest, lang)
		}
	}
	sort.Strings(rest)
	for _, lang := range rest {
		flat = append(flat, byLanguage[lang]...)
	}
	return flat
}

// SentimentFor returns the category table for a language code, falling
// back to the English table for unknown codes.
func (l *Lexicon) SentimentFor(lang string) SentimentLexicon {
	if table, ok := l.sentiment[lang]; ok {
		return table
	}
	return l.sentiment["en"]
}

// Languages returns the detector's fixed language iteration order.
func (l *Lexicon) Languages() []string { return l.languages }

// Slang returns the universal slang list.
func (l *Lexicon) Slang() []string { return l.slang }

// ViralKeywords returns the flattened all-language keyword list for a
// viral category.
func (l *Lexicon) ViralKeywords(category ViralCategory) []string {
	return l.viral[category]
}

// CommonNicknames returns the built-in pet-name list counted alongside
// any user-configured nicknames.
func (l *Lexicon) CommonNicknames() []string { return l.nicknames }

func (l *Lexicon) addWordPattern(keyword string) {
	key := strings.ToLower(keyword)
	if _, ok := l.wordPatterns[key]; !ok {
		l.wordPatterns[key] = wordPattern(key)
	}
}

// countWordHits counts word-boundary occurrences of keyword in text.
// Text must already be lowercased.
func (l *Lexicon) countWordHits(text, keyword string) int {
	key := strings.ToLower(keyword)
	re, ok := l.wordPatterns[key]
	if !ok {
		re = wordPattern(key)
	}
	return len(re.FindAllStringIndex(text, -1))
}

// matchesBoundary reports whether keyword occurs in text without being
// embedded in a longer alphabetic run: "k" must not match inside "book",
// "fine" must not match inside "define". A single-character keyword only
// matches the whole text or a standalone space-delimited token. Text must
// already be lowercased; keyword must be lowercase.
func (l *Lexicon) matchesBoundary(text, keyword string) bool {
	if len(keyword) == 1 {
		return text == keyword ||
			strings.HasPrefix(text, keyword+" ") ||
			strings.HasSuffix(text, " "+keyword) ||
			strings.Contains(text, " "+keyword+" ")
	}
	re, ok := l.boundaryPatterns[keyword]
	if !ok {
		re = boundaryPattern(keyword)
	}
	return re.MatchString(text)
}

func wordPattern(keyword string) *regexp.Regexp {
	return regexp.MustCompile(`\b` + regexp.QuoteMeta(keyword) + `\b`)
}

func boundaryPattern(keyword string) *regexp.Regexp {
	return regexp.MustCompile(`(^|\s|[^a-z])` + regexp.QuoteMeta(keyword) + `($|\s|[^a-z])`)
}

// firstMatch returns the first keyword that matches under the given
// predicate. Categories count at most once per message, so scanning
// stops on the first hit.
func firstMatch(keywords []string, matches func(keyword string) bool) (string, bool) {
	for _, keyword := range keywords {
		if matches(strings.ToLower(keyword)) {
			return strings.ToLower(keyword), true
		}
	}
	return "", false
}
