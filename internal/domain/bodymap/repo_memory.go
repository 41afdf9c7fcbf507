package bodymap

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

type memoryRepo struct {
	mu     sync.RWMutex
	points []*PainPoint // newest first
}

// NewMemoryRepo returns an empty in-memory Repository.
func NewMemoryRepo() Repository {
	return &memoryRepo{}
}

func (r *memoryRepo) Create(_ context.Context, p *PainPoint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	cp := *p
	r.points = append([]*PainPoint{&cp}, r.points...)
	return nil
}

func (r *memoryRepo) ListByPatient(_ context.Context, patientID uuid.UUID) ([]*PainPoint, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var items []*PainPoint
	for _, p := range r.points {
		if p.PatientID == patientID {
			cp := *p
			items = append(items, &cp)
		}
	}
	return items, nil
}
