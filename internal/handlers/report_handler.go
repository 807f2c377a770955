package handlers

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"alfredoptarigan/resume-analyzer/internal/models"
	"alfredoptarigan/resume-analyzer/internal/repositories"
)

type ReportHandler struct {
	analysisRepo repositories.AnalysisRepository
}

func NewReportHandler(analysisRepo repositories.AnalysisRepository) *ReportHandler {
	return &ReportHandler{
		analysisRepo: analysisRepo,
	}
}

// HandleDownloadReport handles GET /report/:id and serves the completed
// analysis as a downloadable Markdown report.
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

	if analysis.Status != models.StatusCompleted || analysis.Result == nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "No report available. Please wait for the analysis to complete.",
		})
	}

	report := RenderReport(analysis.Result)

	c.Set(fiber.HeaderContentType, "text/markdown; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="resume_report.md"`)
	return c.SendString(report)
}

// RenderReport formats an analysis result as a Markdown document.
func RenderReport(result *models.AnalysisResult) string {
	var b strings.Builder

	b.WriteString("# Resume Analysis Report\n\n")
	fmt.Fprintf(&b, "## Fit Score: %d/100\n\n", result.FitScore)

	b.WriteString("## Matched Skills\n\n")
	writeSkillList(&b, result.MatchedSkills, "No matched skills were found.")

	b.WriteString("## Missing Skills\n\n")
	writeSkillList(&b, result.MissingSkills, "No missing skills were identified.")

	b.WriteString("## AI Suggestions\n\n")
	for _, improvement := range result.Improvements {
		b.WriteString(improvement)
		b.WriteString("\n\n")
	}

	b.WriteString("## Summary\n\n")
	b.WriteString(result.Summary)
	b.WriteString("\n\n")

	b.WriteString("## ATS Compatibility\n\n")
	if len(result.AtsReport.Issues) == 0 {
		b.WriteString("No ATS compatibility issues were detected.\n")
	} else {
		for i, issue := range result.AtsReport.Issues {
			suggestion := ""
			if i < len(result.AtsReport.Suggestions) {
				suggestion = result.AtsReport.Suggestions[i]
			}
			fmt.Fprintf(&b, "- **%s**: %s\n", issue, suggestion)
		}
	}

	return b.String()
}

func writeSkillList(b *strings.Builder, skills []string, emptyMessage string) {
	if len(skills) == 0 {
		b.WriteString(emptyMessage)
		b.WriteString("\n\n")
		return
	}
	for _, skill := range skills {
		fmt.Fprintf(b, "- %s\n", skill)
	}
	b.WriteString("\n")
}
