package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alfredoptarigan/resume-analyzer/internal/models"
	"alfredoptarigan/resume-analyzer/internal/repositories"
	"alfredoptarigan/resume-analyzer/internal/services"
)

type stubWorker struct {
	mu       sync.Mutex
	enqueued []uuid.UUID
}

func (s *stubWorker) Start(ctx context.Context) {}

func (s *stubWorker) Stop() {}

func (s *stubWorker) EnqueueJob(analysisID uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.enqueued = append(s.enqueued, analysisID)
}

func (s *stubWorker) enqueuedCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.enqueued)
}

func newAnalyzeApp(t *testing.T, maxFileSize int64) (*fiber.App, repositories.AnalysisRepository, *stubWorker) {
	t.Helper()

	analysisRepo := repositories.NewAnalysisRepository(time.Hour)
	docRepo := repositories.NewDocumentRepository(time.Hour)
	storage := services.NewStorageService(t.TempDir())
	require.NoError(t, storage.EnsureUploadDir())

	worker := &stubWorker{}
	handler := NewAnalyzeHandler(analysisRepo, docRepo, storage, worker, maxFileSize)

	app := fiber.New()
	app.Post("/api/v1/analyze", handler.HandleAnalyze)
	return app, analysisRepo, worker
}

func multipartBody(t *testing.T, fields map[string]string, files map[string][]byte) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for name, value := range fields {
		require.NoError(t, writer.WriteField(name, value))
	}
	for name, content := range files {
		part, err := writer.CreateFormFile(name, name+".txt")
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())
	return &buf, writer.FormDataContentType()
}

func postAnalyze(t *testing.T, app *fiber.App, body *bytes.Buffer, contentType string) *http.Response {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/analyze", body)
	req.Header.Set(fiber.HeaderContentType, contentType)
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestHandleAnalyzeRejectsEmptyRequest(t *testing.T) {
	app, _, worker := newAnalyzeApp(t, 1<<20)

	body, contentType := multipartBody(t, nil, nil)
	resp := postAnalyze(t, app, body, contentType)

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Zero(t, worker.enqueuedCount())
}

func TestHandleAnalyzeRejectsMissingJobDescription(t *testing.T) {
	app, _, worker := newAnalyzeApp(t, 1<<20)

	body, contentType := multipartBody(t, map[string]string{
		"resume_text": "python developer",
	}, nil)
	resp := postAnalyze(t, app, body, contentType)

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Zero(t, worker.enqueuedCount())
}

func TestHandleAnalyzeAcceptsPastedText(t *testing.T) {
	app, analysisRepo, worker := newAnalyzeApp(t, 1<<20)

	body, contentType := multipartBody(t, map[string]string{
		"resume_text": "Experienced python developer with sql skills",
		"job_text":    "Looking for python, sql, aws engineer",
	}, nil)
	resp := postAnalyze(t, app, body, contentType)

	require.Equal(t, fiber.StatusAccepted, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var accepted models.AnalyzeResponse
	require.NoError(t, json.Unmarshal(raw, &accepted))
	assert.Equal(t, string(models.StatusQueued), accepted.Status)

	analysisID, err := uuid.Parse(accepted.ID)
	require.NoError(t, err)

	analysis, err := analysisRepo.FindByID(analysisID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusQueued, analysis.Status)
	assert.Equal(t, 1, worker.enqueuedCount())
}

func TestHandleAnalyzeAcceptsFileUpload(t *testing.T) {
	app, _, worker := newAnalyzeApp(t, 1<<20)

	body, contentType := multipartBody(t,
		map[string]string{"job_text": "Looking for a go developer"},
		map[string][]byte{"resume": []byte("go developer with docker experience")},
	)
	resp := postAnalyze(t, app, body, contentType)

	assert.Equal(t, fiber.StatusAccepted, resp.StatusCode)
	assert.Equal(t, 1, worker.enqueuedCount())
}

func TestHandleAnalyzeRejectsOversizedFile(t *testing.T) {
	app, _, worker := newAnalyzeApp(t, 16)

	body, contentType := multipartBody(t,
		map[string]string{"job_text": "some job"},
		map[string][]byte{"resume": bytes.Repeat([]byte("x"), 64)},
	)
	resp := postAnalyze(t, app, body, contentType)

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Zero(t, worker.enqueuedCount())
}
