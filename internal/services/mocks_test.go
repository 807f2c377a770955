package services

import (
	"context"
	"sync"

	"alfredoptarigan/resume-analyzer/internal/matching"
	"alfredoptarigan/resume-analyzer/internal/models"

	"github.com/google/uuid"
)

// mockGemini implements GeminiService for tests. Embeddings are looked up
// by input text; unknown texts get a zero vector.
type mockGemini struct {
	dims       int
	embeddings map[string][]float32
	embedErr   error
	textResp   string
	textErr    error
}

func (m *mockGemini) GenerateEmbedding(ctx context.Context, text string) ([]float32, error) {
	if m.embedErr != nil {
		return nil, m.embedErr
	}
	if vec, ok := m.embeddings[text]; ok {
		return vec, nil
	}
	return make([]float32, m.dims), nil
}

func (m *mockGemini) EmbeddingDimensions() int {
	return m.dims
}

func (m *mockGemini) GenerateText(ctx context.Context, prompt string, temperature float32) (string, error) {
	if m.textErr != nil {
		return "", m.textErr
	}
	return m.textResp, nil
}

func (m *mockGemini) GenerateTextWithRetry(ctx context.Context, prompt string, temperature float32, maxRetries int) (string, error) {
	return m.GenerateText(ctx, prompt, temperature)
}

// mockSkillExtractor returns canned skill sets keyed by input text.
type mockSkillExtractor struct {
	skills map[string]matching.SkillSet
	err    error
}

func (m *mockSkillExtractor) ExtractSkills(text string) (matching.SkillSet, error) {
	if m.err != nil {
		return nil, m.err
	}
	if set, ok := m.skills[text]; ok {
		return set, nil
	}
	return make(matching.SkillSet), nil
}

// mockFeedback implements FeedbackService.
type mockFeedback struct {
	feedback *models.Feedback
	err      error
}

func (m *mockFeedback) GenerateFeedback(ctx context.Context, resumeText, jobText string) (*models.Feedback, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.feedback, nil
}

// mockAnalyzer records which analyses were processed.
type mockAnalyzer struct {
	mu        sync.Mutex
	processed []uuid.UUID
}

func (m *mockAnalyzer) Analyze(ctx context.Context, analysisID uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.processed = append(m.processed, analysisID)
	return nil
}

func (m *mockAnalyzer) processedCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.processed)
}
