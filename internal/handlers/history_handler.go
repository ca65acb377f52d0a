package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"resumatch/analyzer-api/internal/models"
	"resumatch/analyzer-api/internal/repositories"
)

// historyLimit caps how many recent analyses a session sees.
const historyLimit = 5

type HistoryHandler struct {
	analysisRepo repositories.AnalysisRepository
}

func NewHistoryHandler(analysisRepo repositories.AnalysisRepository) *HistoryHandler {
	return &HistoryHandler{
		analysisRepo: analysisRepo,
	}
}

// HandleHistory handles GET /history
func (h *HistoryHandler) HandleHistory(c *fiber.Ctx) error {
	items, err := h.analysisRepo.History(sessionID(c), historyLimit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load history",
		})
	}

	history := make([]models.HistoryItem, 0, len(items))
	for _, item := range items {
		history = append(history, models.HistoryItem{
			ID:           item.ID.String(),
			TargetRole:   item.TargetRole,
			Filename:     item.Filename,
			Status:       string(item.Status),
			OverallScore: item.OverallScore,
			ATSVerdict:   item.ATSVerdict,
			CreatedAt:    item.CreatedAt.Format(time.RFC3339),
		})
	}

	return c.JSON(fiber.Map{
		"history": history,
	})
}
