package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateFeedbackParsesSections(t *testing.T) {
	response := `**AI Suggestions**:
- Add measurable outcomes to your experience section.
- Mention cloud platforms you have worked with.

**Summary**:
A solid match with room to highlight infrastructure experience.`

	gemini := &mockGemini{textResp: response}
	service := NewFeedbackService(gemini, 3)

	feedback, err := service.GenerateFeedback(context.Background(), "resume text", "job text")
	require.NoError(t, err)

	require.Len(t, feedback.Improvements, 1)
	assert.Contains(t, feedback.Improvements[0], "Add measurable outcomes")
	assert.Contains(t, feedback.Improvements[0], "Mention cloud platforms")
	assert.Equal(t, "A solid match with room to highlight infrastructure experience.", feedback.Summary)
	assert.Equal(t, response, feedback.RawOutput)
}

func TestGenerateFeedbackFallsBackToRawOutput(t *testing.T) {
	response := "The model answered without any of the expected headings."

	gemini := &mockGemini{textResp: response}
	service := NewFeedbackService(gemini, 3)

	feedback, err := service.GenerateFeedback(context.Background(), "resume text", "job text")
	require.NoError(t, err)

	require.Len(t, feedback.Improvements, 1)
	assert.Equal(t, response, feedback.Improvements[0])
	assert.Equal(t, response, feedback.Summary)
}

func TestGenerateFeedbackPropagatesError(t *testing.T) {
	gemini := &mockGemini{textErr: errors.New("quota exceeded")}
	service := NewFeedbackService(gemini, 3)

	feedback, err := service.GenerateFeedback(context.Background(), "resume text", "job text")
	require.Error(t, err)
	assert.Nil(t, feedback)
	assert.Contains(t, err.Error(), "quota exceeded")
}

func TestPlaceholderFeedback(t *testing.T) {
	placeholder := PlaceholderFeedback()

	assert.NotEmpty(t, placeholder.Improvements)
	assert.NotEmpty(t, placeholder.Summary)
}

func TestBuildFeedbackPromptIncludesBothTexts(t *testing.T) {
	builder := NewPromptBuilder()

	prompt := builder.BuildFeedbackPrompt("resume body here", "job posting here")

	assert.Contains(t, prompt, "resume body here")
	assert.Contains(t, prompt, "job posting here")
	assert.Contains(t, prompt, "AI Suggestions")
	assert.Contains(t, prompt, "Summary")
}
