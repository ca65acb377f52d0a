package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"resumatch/analyzer-api/internal/models"
	"resumatch/analyzer-api/internal/repositories"
)

type ReportHandler struct {
	analysisRepo repositories.AnalysisRepository
}

func NewReportHandler(analysisRepo repositories.AnalysisRepository) *ReportHandler {
	return &ReportHandler{
		analysisRepo: analysisRepo,
	}
}

// HandleDownloadReport handles GET /report/:id.json as a file download.
func (h *ReportHandler) HandleDownloadReport(c *fiber.Ctx) error {
	idParam := c.Params("id")
	analysisID, err := uuid.Parse(idParam)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid analysis ID format",
		})
	}

	analysis, err := h.analysisRepo.FindByID(analysisID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Analysis not found",
		})
	}

	if analysis.Status != models.StatusCompleted || analysis.ReportJSON == nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "Report is not ready yet",
		})
	}

	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	c.Set(fiber.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="resume_report_%s.json"`, analysis.ID.String()))

	return c.SendString(*analysis.ReportJSON)
}
