package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AnalysisRecord is a stored transcript analysis. The raw transcript is
// deliberately not persisted; only the derived result leaves the request.
type AnalysisRecord struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	AnalysisID string             `bson:"analysis_id" json:"analysis_id"`
	Title      string             `bson:"title,omitempty" json:"title,omitempty"`
	Result     AnalysisResult     `bson:"result" json:"result"`
	CreatedAt  time.Time          `bson:"created_at" json:"created_at"`
}

// AnalysisSummary is the listing view of a stored analysis.
type AnalysisSummary struct {
	AnalysisID         string    `bson:"analysis_id" json:"analysis_id"`
	Title              string    `bson:"title,omitempty" json:"title,omitempty"`
	TotalMessages      int       `json:"total_messages"`
	CompatibilityScore int       `json:"compatibility_score"`
	Verdict            string    `json:"verdict"`
	Language           string    `json:"language"`
	CreatedAt          time.Time `bson:"created_at" json:"created_at"`
}

// AnalysisStats aggregates the stored analyses for the dashboard.
type AnalysisStats struct {
	TotalAnalyses        int64          `json:"total_analyses"`
	AverageCompatibility float64        `json:"average_compatibility"`
	VerdictDistribution  map[string]int `json:"verdict_distribution"`
	LanguageDistribution map[string]int `json:"language_distribution"`
	AnalysesLast24Hours  int64          `json:"analyses_last_24_hours"`
}
