package models

// CustomNicknames carries the pet names each partner uses for the other,
// as entered by the user. The caller is expected to pre-split comma lists.
type CustomNicknames struct {
	PartnerANicknames []string `bson:"partner_a_nicknames" json:"partner_a_nicknames"`
	PartnerBNicknames []string `bson:"partner_b_nicknames" json:"partner_b_nicknames"`
}

// SentimentStats holds per-category sentiment hit counts. A message
// contributes at most one hit to each category.
type SentimentStats struct {
	Romance  int `bson:"romance" json:"romance"`
	Fight    int `bson:"fight" json:"fight"`
	Food     int `bson:"food" json:"food"`
	Marriage int `bson:"marriage" json:"marriage"`
	Waiting  int `bson:"waiting" json:"waiting"`
	Slang    int `bson:"slang" json:"slang"`
}

// DeepStats holds the timing-behavior analytics: dry texts, long
// messages, ghosting and conversation initiation.
type DeepStats struct {
	DryTextCount         int            `bson:"dry_text_count" json:"dry_text_count"`
	DryTextByUser        map[string]int `bson:"dry_text_by_user" json:"dry_text_by_user"`
	LongMessageCount     int            `bson:"long_message_count" json:"long_message_count"`
	LongMessageByUser    map[string]int `bson:"long_message_by_user" json:"long_message_by_user"`
	GhostingScore        int            `bson:"ghosting_score" json:"ghosting_score"`
	GhostingByUser       map[string]int `bson:"ghosting_by_user" json:"ghosting_by_user"`
	InitiationScore      map[string]int `bson:"initiation_score" json:"initiation_score"`
	ConversationStarters map[string]int `bson:"conversation_starters" json:"conversation_starters"`
}

// ViralStats holds the seven keyword-category tallies plus the derived
// compatibility score and verdict.
type ViralStats struct {
	RedFlagCount  int            `bson:"red_flag_count" json:"red_flag_count"`
	RedFlagByUser map[string]int `bson:"red_flag_by_user" json:"red_flag_by_user"`
	TopRedFlags   []string       `bson:"top_red_flags" json:"top_red_flags"`

	ApologyCount  int            `bson:"apology_count" json:"apology_count"`
	ApologyByUser map[string]int `bson:"apology_by_user" json:"apology_by_user"`

	JealousyCount  int            `bson:"jealousy_count" json:"jealousy_count"`
	JealousyByUser map[string]int `bson:"jealousy_by_user" json:"jealousy_by_user"`

	// MainCharacterScore is the percentage of each partner's messages
	// that are self-focused.
	MainCharacterScore map[string]int `bson:"main_character_score" json:"main_character_score"`

	ConvoKillerCount  int            `bson:"convo_killer_count" json:"convo_killer_count"`
	ConvoKillerByUser map[string]int `bson:"convo_killer_by_user" json:"convo_killer_by_user"`

	LoveScore   int            `bson:"love_score" json:"love_score"`
	LoveByUser  map[string]int `bson:"love_by_user" json:"love_by_user"`
	FlirtScore  int            `bson:"flirt_score" json:"flirt_score"`
	FlirtByUser map[string]int `bson:"flirt_by_user" json:"flirt_by_user"`

	CompatibilityScore   int    `bson:"compatibility_score" json:"compatibility_score"`
	CompatibilityVerdict string `bson:"compatibility_verdict" json:"compatibility_verdict"`
}

// LanguageResult is the outcome of language detection over a transcript.
type LanguageResult struct {
	DominantLanguage string         `bson:"dominant_language" json:"dominant_language"`
	LanguageName     string         `bson:"language_name" json:"language_name"`
	Confidence       int            `bson:"confidence" json:"confidence"`
	LanguageScores   map[string]int `bson:"language_scores" json:"language_scores"`
	SlangCount       int            `bson:"slang_count" json:"slang_count"`
}

// AnalysisResult is the complete output of a transcript analysis.
// It is assembled once by the analyzer and never mutated afterwards.
type AnalysisResult struct {
	TotalMessages    int            `bson:"total_messages" json:"total_messages"`
	MessagesByUser   map[string]int `bson:"messages_by_user" json:"messages_by_user"`
	MostActiveSender string         `bson:"most_active_sender" json:"most_active_sender"`

	// AverageReplyTime is in minutes, rounded to one decimal.
	AverageReplyTime float64 `bson:"average_reply_time" json:"average_reply_time"`

	// NightOwlScore is the percentage of messages sent between 1-5 AM;
	// MorningPersonScore between 6-10 AM.
	NightOwlScore      int `bson:"night_owl_score" json:"night_owl_score"`
	MorningPersonScore int `bson:"morning_person_score" json:"morning_person_score"`

	SentimentStats  SentimentStats            `bson:"sentiment_stats" json:"sentiment_stats"`
	SentimentByUser map[string]SentimentStats `bson:"sentiment_by_user" json:"sentiment_by_user"`

	DeepStats  DeepStats  `bson:"deep_stats" json:"deep_stats"`
	ViralStats ViralStats `bson:"viral_stats" json:"viral_stats"`

	NicknameCount   map[string]int            `bson:"nickname_count" json:"nickname_count"`
	NicknamesByUser map[string]map[string]int `bson:"nicknames_by_user" json:"nicknames_by_user"`

	Language LanguageResult `bson:"language" json:"language"`

	LongestStreak  int    `bson:"longest_streak" json:"longest_streak"`
	MostActiveDay  string `bson:"most_active_day" json:"most_active_day"`
	MostActiveHour int    `bson:"most_active_hour" json:"most_active_hour"`
	EmojiCount     int    `bson:"emoji_count" json:"emoji_count"`

	PartnerA string `bson:"partner_a" json:"partner_a"`
	PartnerB string `bson:"partner_b" json:"partner_b"`
}
