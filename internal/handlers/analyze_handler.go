package handlers

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"resumatch/analyzer-api/internal/models"
	"resumatch/analyzer-api/internal/repositories"
	"resumatch/analyzer-api/internal/services"
)

type AnalyzeHandler struct {
	analysisRepo   repositories.AnalysisRepository
	storageService services.StorageService
	worker         services.Worker
	validate       *validator.Validate
	maxFileSize    int64
}

func NewAnalyzeHandler(
	analysisRepo repositories.AnalysisRepository,
	storageService services.StorageService,
	worker services.Worker,
	maxFileSize int64,
) *AnalyzeHandler {
	return &AnalyzeHandler{
		analysisRepo:   analysisRepo,
		storageService: storageService,
		worker:         worker,
		validate:       validator.New(),
		maxFileSize:    maxFileSize,
	}
}

// HandleAnalyze handles POST /analyses
func (h *AnalyzeHandler) HandleAnalyze(c *fiber.Ctx) error {
	var req models.AnalyzeRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if err := h.validate.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("Invalid request: %v", err),
		})
	}

	if req.JDMode == "custom" {
		if req.CustomJD == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "custom_jd is required when jd_mode is custom",
			})
		}
	} else if req.TargetRole == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "target_role is required",
		})
	}

	file, err := c.FormFile("resume")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "resume file is required",
		})
	}

	if file.Size > h.maxFileSize {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("Resume file too large. Max size: %d bytes", h.maxFileSize),
		})
	}

	if !services.ValidateFilename(file.Filename) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid filename. Upload a PDF or TXT resume.",
		})
	}

	storedName, filePath, err := h.storageService.SaveFile(file)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": fmt.Sprintf("failed to save resume file: %v", err),
		})
	}

	analysis := &models.Analysis{
		ID:         uuid.New(),
		SessionID:  sessionID(c),
		TargetRole: req.TargetRole,
		Location:   req.Location,
		Filename:   file.Filename,
		FilePath:   filePath,
		Status:     models.StatusQueued,
	}
	if req.CustomJD != "" {
		analysis.CustomJD = &req.CustomJD
	}

	if err := h.analysisRepo.Create(analysis); err != nil {
		// Cleanup uploaded file if database insert fails
		h.storageService.DeleteFile(storedName)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create analysis job",
		})
	}

	h.worker.EnqueueJob(analysis.ID)

	return c.Status(fiber.StatusAccepted).JSON(models.AnalyzeResponse{
		ID:     analysis.ID.String(),
		Status: string(models.StatusQueued),
	})
}
