package repositories

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"alfredoptarigan/resume-analyzer/internal/models"
)

type DocumentRepository interface {
	Create(document *models.Document) error
	FindByID(id uuid.UUID) (*models.Document, error)
	Delete(id uuid.UUID) error
}

type documentRepository struct {
	mu    sync.RWMutex
	items map[uuid.UUID]*models.Document
	ttl   time.Duration
}

func NewDocumentRepository(ttl time.Duration) DocumentRepository {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &documentRepository{
		items: make(map[uuid.UUID]*models.Document),
		ttl:   ttl,
	}
}

// Create implements DocumentRepository.
func (d *documentRepository) Create(document *models.Document) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	cutoff := time.Now().Add(-d.ttl)
	for id, doc := range d.items {
		if doc.CreatedAt.Before(cutoff) {
			delete(d.items, id)
		}
	}

	if _, exists := d.items[document.ID]; exists {
		return fmt.Errorf("document %s already exists", document.ID)
	}

	stored := *document
	d.items[document.ID] = &stored
	return nil
}

// FindByID implements DocumentRepository.
func (d *documentRepository) FindByID(id uuid.UUID) (*models.Document, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	doc, ok := d.items[id]
	if !ok {
		return nil, fmt.Errorf("document not found")
	}

	found := *doc
	return &found, nil
}

// Delete implements DocumentRepository.
func (d *documentRepository) Delete(id uuid.UUID) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.items[id]; !ok {
		return fmt.Errorf("document not found")
	}
	delete(d.items, id)
	return nil
}
