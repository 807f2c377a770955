package models

import (
	"time"

	"github.com/google/uuid"
)

// SourceKind tells which side of the comparison a document belongs to.
type SourceKind string

const (
	SourceResume         SourceKind = "resume"
	SourceJobDescription SourceKind = "job_description"
)

// Document is a text source supplied for one analysis: an uploaded file or
// pasted text persisted to a temp file. It lives only until the analysis
// that references it completes.
type Document struct {
	ID               uuid.UUID  `json:"id"`
	Filename         string     `json:"filename"`
	OriginalFileName string     `json:"original_filename"`
	SourceKind       SourceKind `json:"source_kind"`
	FilePath         string     `json:"file_path"`
	CreatedAt        time.Time  `json:"created_at"`
}
