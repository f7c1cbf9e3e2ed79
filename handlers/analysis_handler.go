package handlers

import (
	"log/slog"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"chat-audit/services"
)

// GetAnalysis returns a stored analysis by its public ID
func GetAnalysis(c *fiber.Ctx) error {
	analysisID := c.Params("analysisID")
	if analysisID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Analysis ID is required",
		})
	}

	record, err := services.GetAnalysisByAnalysisID(c.Context(), analysisID)
	if err != nil {
		slog.Error("Failed to get analysis", "error", err, "analysisID", analysisID)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get analysis",
		})
	}

	if record == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Analysis not found",
		})
	}

	return c.Status(fiber.StatusOK).JSON(record)
}

// ListAnalyses returns stored analysis summaries, newest first
func ListAnalyses(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit", "20"))
	skip, _ := strconv.Atoi(c.Query("skip", "0"))

	summaries, err := services.ListAnalyses(c.Context(), limit, skip)
	if err != nil {
		slog.Error("Failed to list analyses", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list analyses",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"analyses": summaries,
		"count":    len(summaries),
	})
}

// GetAnalysisStats returns aggregate dashboard statistics
func GetAnalysisStats(c *fiber.Ctx) error {
	stats, err := services.GetAnalysisStats(c.Context())
	if err != nil {
		slog.Error("Failed to get analysis stats", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get analysis stats",
		})
	}

	return c.Status(fiber.StatusOK).JSON(stats)
}

// DeleteAnalysis removes a stored analysis
func DeleteAnalysis(c *fiber.Ctx) error {
	analysisID := c.Params("analysisID")
	if analysisID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Analysis ID is required",
		})
	}

	deleted, err := services.DeleteAnalysis(c.Context(), analysisID)
	if err != nil {
		slog.Error("Failed to delete analysis", "error", err, "analysisID", analysisID)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete analysis",
		})
	}

	if !deleted {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Analysis not found",
		})
	}

	services.GetWebSocketManager().Broadcast(services.BroadcastMessage{
		Type: services.EventAnalysisDeleted,
		Data: map[string]interface{}{
			"analysis_id": analysisID,
		},
	})

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Analysis deleted",
	})
}
