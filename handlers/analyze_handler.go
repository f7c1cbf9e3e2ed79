package handlers

import (
	"errors"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"chat-audit/models"
	"chat-audit/services"
)

var (
	analyzer           = services.NewAnalyzer(nil)
	maxTranscriptBytes = 10 * 1024 * 1024
)

// SetMaxTranscriptBytes configures the transcript size limit for the
// analyze endpoint. Called once at startup.
func SetMaxTranscriptBytes(n int) {
	if n > 0 {
		maxTranscriptBytes = n
	}
}

// AnalyzeRequest is the payload of POST /api/analyze
type AnalyzeRequest struct {
	Transcript string                  `json:"transcript"`
	Title      string                  `json:"title,omitempty"`
	Nicknames  *models.CustomNicknames `json:"custom_nicknames,omitempty"`
}

// Analyze runs the full analysis pipeline over an uploaded chat export,
// stores the result, and notifies dashboard clients.
func Analyze(c *fiber.Ctx) error {
	var req AnalyzeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if req.Transcript == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Transcript is required",
		})
	}

	if len(req.Transcript) > maxTranscriptBytes {
		return c.Status(fiber.StatusRequestEntityTooLarge).JSON(fiber.Map{
			"error": "Transcript exceeds the maximum allowed size",
		})
	}

	result, err := analyzer.Analyze(req.Transcript, req.Nicknames)
	if err != nil {
		if errors.Is(err, services.ErrNoMessages) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		slog.Error("Analysis failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Analysis failed",
		})
	}

	record := &models.AnalysisRecord{
		AnalysisID: uuid.New().String(),
		Title:      req.Title,
		Result:     *result,
		CreatedAt:  time.Now(),
	}

	if err := services.SaveAnalysis(c.Context(), record); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to save analysis",
		})
	}

	services.GetWebSocketManager().Broadcast(services.BroadcastMessage{
		Type: services.EventAnalysisCompleted,
		Data: map[string]interface{}{
			"analysis_id":         record.AnalysisID,
			"title":               record.Title,
			"total_messages":      result.TotalMessages,
			"compatibility_score": result.ViralStats.CompatibilityScore,
			"verdict":             result.ViralStats.CompatibilityVerdict,
		},
	})

	return c.Status(fiber.StatusCreated).JSON(record)
}
