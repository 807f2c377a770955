package handlers

import (
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"alfredoptarigan/resume-analyzer/internal/models"
	"alfredoptarigan/resume-analyzer/internal/repositories"
	"alfredoptarigan/resume-analyzer/internal/services"
)

type AnalyzeHandler struct {
	analysisRepo   repositories.AnalysisRepository
	docRepo        repositories.DocumentRepository
	storageService services.StorageService
	worker         services.Worker
	maxFileSize    int64
}

func NewAnalyzeHandler(
	analysisRepo repositories.AnalysisRepository,
	docRepo repositories.DocumentRepository,
	storageService services.StorageService,
	worker services.Worker,
	maxFileSize int64,
) *AnalyzeHandler {
	return &AnalyzeHandler{
		analysisRepo:   analysisRepo,
		docRepo:        docRepo,
		storageService: storageService,
		worker:         worker,
		maxFileSize:    maxFileSize,
	}
}

// HandleAnalyze handles POST /analyze. Each side of the comparison comes in
// as either an uploaded file ("resume", "job_description") or pasted text
// ("resume_text", "job_text"); both sides are required. Failures surface as
// fiber errors rendered by the app's error handler.
func (h *AnalyzeHandler) HandleAnalyze(c *fiber.Ctx) error {
	resumeDoc, err := h.storeInput(c, "resume", "resume_text", models.SourceResume)
	if err != nil {
		return err
	}

	jobDoc, err := h.storeInput(c, "job_description", "job_text", models.SourceJobDescription)
	if err != nil {
		return err
	}

	if resumeDoc == nil || jobDoc == nil {
		return fiber.NewError(fiber.StatusBadRequest,
			"Please provide both a resume and a job description (file or text).")
	}

	analysis := &models.Analysis{
		ID:               uuid.New(),
		ResumeDocumentID: resumeDoc.ID,
		JobDocumentID:    jobDoc.ID,
		Status:           models.StatusQueued,
		CreatedAt:        time.Now(),
		UpdatedAt:        time.Now(),
	}

	if err := h.analysisRepo.Create(analysis); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create analysis job")
	}

	h.worker.EnqueueJob(analysis.ID)

	return c.Status(fiber.StatusAccepted).JSON(models.AnalyzeResponse{
		ID:     analysis.ID.String(),
		Status: string(models.StatusQueued),
	})
}

// storeInput resolves one side of the comparison to a stored document. It
// returns (nil, nil) when neither a file nor text was supplied; the caller
// decides whether that is acceptable.
func (h *AnalyzeHandler) storeInput(c *fiber.Ctx, fileField, textField string, kind models.SourceKind) (*models.Document, error) {
	var (
		filename     string
		filePath     string
		originalName string
	)

	if file, err := c.FormFile(fileField); err == nil && file != nil {
		if file.Size > h.maxFileSize {
			return nil, fiber.NewError(fiber.StatusBadRequest,
				fmt.Sprintf("%s file too large. Max size: %d bytes", kind, h.maxFileSize))
		}

		filename, filePath, err = h.storageService.SaveFile(file, string(kind))
		if err != nil {
			return nil, fiber.NewError(fiber.StatusBadRequest,
				fmt.Sprintf("failed to save %s file: %v", kind, err))
		}
		originalName = file.Filename
	} else if text := c.FormValue(textField); strings.TrimSpace(text) != "" {
		filename, filePath, err = h.storageService.SaveText(text, string(kind))
		if err != nil {
			return nil, fiber.NewError(fiber.StatusInternalServerError,
				fmt.Sprintf("failed to save %s text: %v", kind, err))
		}
	} else {
		return nil, nil
	}

	doc := &models.Document{
		ID:               uuid.New(),
		Filename:         filename,
		OriginalFileName: originalName,
		SourceKind:       kind,
		FilePath:         filePath,
		CreatedAt:        time.Now(),
	}

	if err := h.docRepo.Create(doc); err != nil {
		// Cleanup stored file if the record cannot be kept
		h.storageService.DeleteFile(filename)
		return nil, fiber.NewError(fiber.StatusInternalServerError,
			fmt.Sprintf("failed to save %s document record: %v", kind, err))
	}

	return doc, nil
}
