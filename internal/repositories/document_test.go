package repositories

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alfredoptarigan/resume-analyzer/internal/models"
)

func newTestDocument(createdAt time.Time) *models.Document {
	return &models.Document{
		ID:         uuid.New(),
		Filename:   "resume_test.txt",
		SourceKind: models.SourceResume,
		FilePath:   "/tmp/resume_test.txt",
		CreatedAt:  createdAt,
	}
}

func TestDocumentRepositoryCreateAndFind(t *testing.T) {
	repo := NewDocumentRepository(time.Hour)

	doc := newTestDocument(time.Now())
	require.NoError(t, repo.Create(doc))

	found, err := repo.FindByID(doc.ID)
	require.NoError(t, err)
	assert.Equal(t, doc.Filename, found.Filename)
	assert.Equal(t, models.SourceResume, found.SourceKind)
}

func TestDocumentRepositoryDelete(t *testing.T) {
	repo := NewDocumentRepository(time.Hour)

	doc := newTestDocument(time.Now())
	require.NoError(t, repo.Create(doc))
	require.NoError(t, repo.Delete(doc.ID))

	_, err := repo.FindByID(doc.ID)
	assert.Error(t, err)
	assert.Error(t, repo.Delete(doc.ID))
}

func TestDocumentRepositoryEvictsExpiredEntries(t *testing.T) {
	repo := NewDocumentRepository(time.Minute)

	stale := newTestDocument(time.Now().Add(-2 * time.Hour))
	require.NoError(t, repo.Create(stale))

	fresh := newTestDocument(time.Now())
	require.NoError(t, repo.Create(fresh))

	_, err := repo.FindByID(stale.ID)
	assert.Error(t, err)

	_, err = repo.FindByID(fresh.ID)
	assert.NoError(t, err)
}
