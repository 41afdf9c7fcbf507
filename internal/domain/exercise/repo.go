package exercise

import "context"

// Filter narrows catalog listings. Empty fields match everything.
type Filter struct {
	Category  string
	Specialty string
}

// Repository stores catalog entries.
type Repository interface {
	Create(ctx context.Context, e *Exercise) error
	List(ctx context.Context, f Filter, limit, offset int) ([]*Exercise, int, error)
}
