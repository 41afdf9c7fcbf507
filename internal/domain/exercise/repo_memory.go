package exercise

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
)

type memoryRepo struct {
	mu    sync.RWMutex
	items []*Exercise
}

// NewMemoryRepo returns an empty in-memory Repository.
func NewMemoryRepo() Repository {
	return &memoryRepo{}
}

func (r *memoryRepo) Create(_ context.Context, e *Exercise) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	cp := *e
	r.items = append(r.items, &cp)
	return nil
}

func (r *memoryRepo) List(_ context.Context, f Filter, limit, offset int) ([]*Exercise, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matched []*Exercise
	for _, e := range r.items {
		if f.Category != "" && e.Category != f.Category {
			continue
		}
		if f.Specialty != "" && e.Specialty != f.Specialty {
			continue
		}
		matched = append(matched, e)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].Name < matched[j].Name })

	total := len(matched)
	if offset >= total {
		return nil, total, nil
	}
	end := offset + limit
	if end > total {
		end = total
	}

	out := make([]*Exercise, 0, end-offset)
	for _, e := range matched[offset:end] {
		cp := *e
		out = append(out, &cp)
	}
	return out, total, nil
}
