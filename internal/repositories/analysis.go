package repositories

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"alfredoptarigan/resume-analyzer/internal/models"
)

type AnalysisRepository interface {
	Create(analysis *models.Analysis) error
	FindByID(id uuid.UUID) (*models.Analysis, error)
	UpdateStatus(id uuid.UUID, status models.AnalysisStatus) error
	UpdateResult(id uuid.UUID, result *models.AnalysisResult) error
	UpdateError(id uuid.UUID, errorMsg string) error
	FindPendingJobs(limit int) ([]models.Analysis, error)
}

// analysisRepository keeps analyses in process memory. Entries are evicted
// once they have been idle for the configured TTL; nothing survives a
// restart, which is the intended lifecycle for this data.
type analysisRepository struct {
	mu    sync.RWMutex
	items map[uuid.UUID]*models.Analysis
	ttl   time.Duration
}

func NewAnalysisRepository(ttl time.Duration) AnalysisRepository {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &analysisRepository{
		items: make(map[uuid.UUID]*models.Analysis),
		ttl:   ttl,
	}
}

func (r *analysisRepository) Create(analysis *models.Analysis) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.evictExpired()

	if _, exists := r.items[analysis.ID]; exists {
		return fmt.Errorf("analysis %s already exists", analysis.ID)
	}

	stored := *analysis
	r.items[analysis.ID] = &stored
	return nil
}

func (r *analysisRepository) FindByID(id uuid.UUID) (*models.Analysis, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	analysis, ok := r.items[id]
	if !ok {
		return nil, fmt.Errorf("analysis not found")
	}

	found := *analysis
	return &found, nil
}

func (r *analysisRepository) UpdateStatus(id uuid.UUID, status models.AnalysisStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	analysis, ok := r.items[id]
	if !ok {
		return fmt.Errorf("analysis not found")
	}

	analysis.Status = status
	analysis.UpdatedAt = time.Now()
	return nil
}

func (r *analysisRepository) UpdateResult(id uuid.UUID, result *models.AnalysisResult) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	analysis, ok := r.items[id]
	if !ok {
		return fmt.Errorf("analysis not found")
	}

	analysis.Result = result
	analysis.Status = models.StatusCompleted
	analysis.UpdatedAt = time.Now()
	return nil
}

func (r *analysisRepository) UpdateError(id uuid.UUID, errorMsg string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	analysis, ok := r.items[id]
	if !ok {
		return fmt.Errorf("analysis not found")
	}

	analysis.Status = models.StatusFailed
	analysis.ErrorMessage = errorMsg
	analysis.UpdatedAt = time.Now()
	return nil
}

func (r *analysisRepository) FindPendingJobs(limit int) ([]models.Analysis, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var pending []models.Analysis
	for _, analysis := range r.items {
		if analysis.Status == models.StatusQueued {
			pending = append(pending, *analysis)
		}
	}

	sort.Slice(pending, func(i, j int) bool {
		return pending[i].CreatedAt.Before(pending[j].CreatedAt)
	})

	if limit > 0 && len(pending) > limit {
		pending = pending[:limit]
	}
	return pending, nil
}

// evictExpired must be called with the write lock held.
func (r *analysisRepository) evictExpired() {
	cutoff := time.Now().Add(-r.ttl)
	for id, analysis := range r.items {
		if analysis.UpdatedAt.Before(cutoff) {
			delete(r.items, id)
		}
	}
}
