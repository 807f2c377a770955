package services

import (
	"context"
	"fmt"
	"strings"

	"alfredoptarigan/resume-analyzer/internal/models"
)

type FeedbackService interface {
	GenerateFeedback(ctx context.Context, resumeText, jobText string) (*models.Feedback, error)
}

type feedbackService struct {
	gemini        GeminiService
	promptBuilder *PromptBuilder
	maxRetries    int
}

func NewFeedbackService(gemini GeminiService, maxRetries int) FeedbackService {
	return &feedbackService{
		gemini:        gemini,
		promptBuilder: NewPromptBuilder(),
		maxRetries:    maxRetries,
	}
}

// PlaceholderFeedback is the degraded value substituted when the LLM call
// fails entirely.
func PlaceholderFeedback() *models.Feedback {
	return &models.Feedback{
		Improvements: []string{"Unable to generate feedback due to technical issues."},
		Summary:      "Analysis completed with limited functionality.",
	}
}

// GenerateFeedback implements FeedbackService.
func (f *feedbackService) GenerateFeedback(ctx context.Context, resumeText, jobText string) (*models.Feedback, error) {
	prompt := f.promptBuilder.BuildFeedbackPrompt(resumeText, jobText)

	response, err := f.gemini.GenerateTextWithRetry(ctx, prompt, 0.5, f.maxRetries)
	if err != nil {
		return nil, fmt.Errorf("failed to generate feedback: %w", err)
	}

	suggestions, summary := splitFeedbackSections(response)

	// Fall back to the raw output when a section could not be located, so
	// the caller always has something to render.
	if suggestions == "" {
		suggestions = response
	}
	if summary == "" {
		summary = response
	}

	return &models.Feedback{
		Improvements: []string{suggestions},
		Summary:      strings.TrimSpace(summary),
		RawOutput:    response,
	}, nil
}

// splitFeedbackSections scans the response for the "AI Suggestions" and
// "Summary" headings and collects the lines under each.
func splitFeedbackSections(response string) (suggestions, summary string) {
	var current string
	var buffer []string

	flush := func() {
		text := strings.TrimSpace(strings.Join(buffer, "\n"))
		switch current {
		case "suggestions":
			suggestions = text
		case "summary":
			summary = text
		}
		buffer = nil
	}

	for _, line := range strings.Split(response, "\n") {
		switch {
		case strings.Contains(line, "AI Suggestions"):
			flush()
			current = "suggestions"
		case strings.Contains(line, "Summary"):
			flush()
			current = "summary"
		default:
			buffer = append(buffer, line)
		}
	}
	flush()

	return suggestions, summary
}
