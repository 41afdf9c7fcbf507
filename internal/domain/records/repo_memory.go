package records

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

type memoryRepo struct {
	mu   sync.RWMutex
	docs []*ClinicalDocument // newest first
}

// NewMemoryRepo returns an empty in-memory Repository.
func NewMemoryRepo() Repository {
	return &memoryRepo{}
}

func (r *memoryRepo) Create(_ context.Context, d *ClinicalDocument) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	cp := *d
	r.docs = append([]*ClinicalDocument{&cp}, r.docs...)
	return nil
}

func (r *memoryRepo) GetByID(_ context.Context, id uuid.UUID) (*ClinicalDocument, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, d := range r.docs {
		if d.ID == id {
			cp := *d
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (r *memoryRepo) List(_ context.Context, patientID uuid.UUID, limit, offset int) ([]*ClinicalDocument, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matched []*ClinicalDocument
	for _, d := range r.docs {
		if patientID == uuid.Nil || d.PatientID == patientID {
			matched = append(matched, d)
		}
	}

	total := len(matched)
	if offset >= total {
		return nil, total, nil
	}
	end := offset + limit
	if end > total {
		end = total
	}

	items := make([]*ClinicalDocument, 0, end-offset)
	for _, d := range matched[offset:end] {
		cp := *d
		items = append(items, &cp)
	}
	return items, total, nil
}
