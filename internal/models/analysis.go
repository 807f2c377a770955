package models

import (
	"time"

	"github.com/google/uuid"

	"alfredoptarigan/resume-analyzer/internal/matching"
)

type AnalysisStatus string

const (
	StatusQueued     AnalysisStatus = "queued"
	StatusProcessing AnalysisStatus = "processing"
	StatusCompleted  AnalysisStatus = "completed"
	StatusFailed     AnalysisStatus = "failed"
)

// Analysis is one resume-vs-job-description comparison job.
type Analysis struct {
	ID               uuid.UUID       `json:"id"`
	ResumeDocumentID uuid.UUID       `json:"resume_document_id"`
	JobDocumentID    uuid.UUID       `json:"job_document_id"`
	Status           AnalysisStatus  `json:"status"`
	Result           *AnalysisResult `json:"result,omitempty"`
	ErrorMessage     string          `json:"error_message,omitempty"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// AnalysisResult is the full result shape. Every analysis that reaches the
// pipeline produces one, possibly with degraded values: a zero or neutral
// fit score, empty skill lists, placeholder feedback.
type AnalysisResult struct {
	FitScore      int                `json:"fit_score"`
	MatchedSkills []string           `json:"matched_skills"`
	MissingSkills []string           `json:"missing_skills"`
	Improvements  []string           `json:"improvements"`
	Summary       string             `json:"summary"`
	AtsReport     matching.AtsReport `json:"ats_report"`
}

// Feedback is the narrative output of the LLM reviewer.
type Feedback struct {
	Improvements []string `json:"improvements"`
	Summary      string   `json:"summary"`
	RawOutput    string   `json:"raw_output"`
}
