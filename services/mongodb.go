package services

import (
	"context"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"chat-audit/models"
)

var (
	mongoClient *mongo.Client
	database    *mongo.Database
)

// GetDatabase returns the MongoDB database instance
func GetDatabase() *mongo.Database {
	return database
}

// InitMongoDB initializes MongoDB connection
func InitMongoDB(ctx context.Context, uri string) (*mongo.Client, error) {
	clientOptions := options.Client().ApplyURI(uri)

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, err
	}

	// Ping to verify connection
	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}

	slog.Info("Connected to MongoDB")
	mongoClient = client

	return client, nil
}

// InitServices initializes all services
func InitServices(client *mongo.Client, databaseName string) {
	database = client.Database(databaseName)

	// Create indexes
	createIndexes()
}

// createIndexes creates necessary database indexes
func createIndexes() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Analyses collection indexes
	analysesCollection := database.Collection("analyses")
	analysesCollection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.M{"analysis_id": 1}, Options: options.Index().SetUnique(true)},
		{Keys: bson.M{"created_at": -1}},
		{Keys: bson.M{"result.viral_stats.compatibility_score": -1}},
	})

	// Users collection indexes
	usersCollection := database.Collection("users")
	usersCollection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.M{"user_id": 1}, Options: options.Index().SetUnique(true)},
		{Keys: bson.M{"email": 1}, Options: options.Index().SetUnique(true)},
	})

	// Sessions collection indexes
	sessionsCollection := database.Collection("sessions")
	sessionsCollection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.M{"session_id": 1}, Options: options.Index().SetUnique(true)},
		{Keys: bson.M{"user_id": 1}},
		{Keys: bson.M{"expires_at": 1}},
		{Keys: bson.M{"is_active": 1, "expires_at": 1}},
	})
}

// SaveAnalysis stores a completed analysis
func SaveAnalysis(ctx context.Context, record *models.AnalysisRecord) error {
	collection := database.Collection("analyses")
	_, err := collection.InsertOne(ctx, record)
	if err != nil {
		slog.Error("Failed to save analysis",
			"error", err,
			"analysisID", record.AnalysisID,
		)
		return err
	}

	slog.Info("Analysis saved",
		"analysisID", record.AnalysisID,
		"totalMessages", record.Result.TotalMessages,
		"compatibilityScore", record.Result.ViralStats.CompatibilityScore,
	)

	return nil
}

// GetAnalysisByAnalysisID fetches a stored analysis by its public ID.
// Returns nil without error when no analysis exists.
func GetAnalysisByAnalysisID(ctx context.Context, analysisID string) (*models.AnalysisRecord, error) {
	collection := database.Collection("analyses")

	var record models.AnalysisRecord
	err := collection.FindOne(ctx, bson.M{"analysis_id": analysisID}).Decode(&record)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}

	return &record, nil
}

// ListAnalyses returns summaries of stored analyses, newest first
func ListAnalyses(ctx context.Context, limit, skip int) ([]models.AnalysisSummary, error) {
	collection := database.Collection("analyses")

	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if skip < 0 {
		skip = 0
	}

	findOptions := options.Find().
		SetSort(bson.M{"created_at": -1}).
		SetLimit(int64(limit)).
		SetSkip(int64(skip))

	cursor, err := collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var records []models.AnalysisRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}

	summaries := make([]models.AnalysisSummary, 0, len(records))
	for _, record := range records {
		summaries = append(summaries, models.AnalysisSummary{
			AnalysisID:         record.AnalysisID,
			Title:              record.Title,
			TotalMessages:      record.Result.TotalMessages,
			CompatibilityScore: record.Result.ViralStats.CompatibilityScore,
			Verdict:            record.Result.ViralStats.CompatibilityVerdict,
			Language:           record.Result.Language.DominantLanguage,
			CreatedAt:          record.CreatedAt,
		})
	}

	return summaries, nil
}

// DeleteAnalysis removes a stored analysis. Returns true when a
// document was actually deleted.
func DeleteAnalysis(ctx context.Context, analysisID string) (bool, error) {
	collection := database.Collection("analyses")

	result, err := collection.DeleteOne(ctx, bson.M{"analysis_id": analysisID})
	if err != nil {
		return false, err
	}

	return result.DeletedCount > 0, nil
}

// GetAnalysisStats aggregates the stored analyses for the dashboard
func GetAnalysisStats(ctx context.Context) (*models.AnalysisStats, error) {
	collection := database.Collection("analyses")

	total, err := collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, err
	}

	last24h, err := collection.CountDocuments(ctx, bson.M{
		"created_at": bson.M{"$gt": time.Now().Add(-24 * time.Hour)},
	})
	if err != nil {
		return nil, err
	}

	stats := &models.AnalysisStats{
		TotalAnalyses:        total,
		VerdictDistribution:  make(map[string]int),
		LanguageDistribution: make(map[string]int),
		AnalysesLast24Hours:  last24h,
	}

	if total == 0 {
		return stats, nil
	}

	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{
			"_id":       "$result.viral_stats.compatibility_verdict",
			"count":     bson.M{"$sum": 1},
			"avg_score": bson.M{"$avg": "$result.viral_stats.compatibility_score"},
		}}},
	}

	cursor, err := collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var scoreSum float64
	var counted int64
	for cursor.Next(ctx) {
		var row struct {
			Verdict  string  `bson:"_id"`
			Count    int     `bson:"count"`
			AvgScore float64 `bson:"avg_score"`
		}
		if err := cursor.Decode(&row); err != nil {
			return nil, err
		}
		stats.VerdictDistribution[row.Verdict] = row.Count
		scoreSum += row.AvgScore * float64(row.Count)
		counted += int64(row.Count)
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	if counted > 0 {
		stats.AverageCompatibility = scoreSum / float64(counted)
	}

	languagePipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{
			"_id":   "$result.language.dominant_language",
			"count": bson.M{"$sum": 1},
		}}},
	}

	languageCursor, err := collection.Aggregate(ctx, languagePipeline)
	if err != nil {
		return nil, err
	}
	defer languageCursor.Close(ctx)

	for languageCursor.Next(ctx) {
		var row struct {
			Language string `bson:"_id"`
			Count    int    `bson:"count"`
		}
		if err := languageCursor.Decode(&row); err != nil {
			return nil, err
		}
		stats.LanguageDistribution[row.Language] = row.Count
	}
	if err := languageCursor.Err(); err != nil {
		return nil, err
	}

	return stats, nil
}
