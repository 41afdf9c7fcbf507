package scheduling

import (
	"context"
	"sort"
	"sync"
	"time"
)

// memoryRepo is an in-memory AppointmentRepository. A single RWMutex guards
// both the primary map and the per-resource index so every mutation is
// observed atomically.
type memoryRepo struct {
	mu         sync.RWMutex
	byID       map[string]*Appointment
	byResource map[string][]*Appointment // scheduled only, sorted by StartTime
}

// NewMemoryRepo returns an empty in-memory AppointmentRepository.
func NewMemoryRepo() AppointmentRepository {
	return &memoryRepo{
		byID:       make(map[string]*Appointment),
		byResource: make(map[string][]*Appointment),
	}
}

func (r *memoryRepo) Insert(_ context.Context, a *Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[a.ID]; ok {
		return ErrDuplicateID
	}

	cp := *a
	r.byID[cp.ID] = &cp

	idx := r.byResource[cp.ResourceID]
	pos := sort.Search(len(idx), func(i int) bool {
		return idx[i].StartTime.After(cp.StartTime)
	})
	idx = append(idx, nil)
	copy(idx[pos+1:], idx[pos:])
	idx[pos] = &cp
	r.byResource[cp.ResourceID] = idx
	return nil
}

func (r *memoryRepo) GetByID(_ context.Context, id string) (*Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.byID[id]
	if !ok || a.Status != StatusScheduled {
		return nil, ErrNotFound
	}
	cp := *a
	return &cp, nil
}

func (r *memoryRepo) ListByRange(_ context.Context, resourceID string, start, end time.Time) ([]*Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	query := Interval{Start: start, End: end}
	var out []*Appointment

	appendOverlapping := func(idx []*Appointment) {
		for _, a := range idx {
			if !a.StartTime.Before(end) {
				break // index is sorted by StartTime
			}
			if Overlaps(a.Interval(), query) {
				cp := *a
				out = append(out, &cp)
			}
		}
	}

	if resourceID != "" {
		appendOverlapping(r.byResource[resourceID])
		return out, nil
	}

	for _, idx := range r.byResource {
		appendOverlapping(idx)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].StartTime.Before(out[j].StartTime)
	})
	return out, nil
}

func (r *memoryRepo) Remove(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.byID[id]
	if !ok || a.Status != StatusScheduled {
		return ErrNotFound
	}

	a.Status = StatusCancelled
	a.UpdatedAt = time.Now()

	idx := r.byResource[a.ResourceID]
	for i, entry := range idx {
		if entry.ID == id {
			r.byResource[a.ResourceID] = append(idx[:i], idx[i+1:]...)
			break
		}
	}
	return nil
}
