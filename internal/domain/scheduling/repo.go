package scheduling

import (
	"context"
	"time"
)

// AppointmentRepository stores appointments and serves range queries over
// them. Implementations must keep the primary lookup and the range index
// consistent: no caller may observe an appointment in one but not the other.
type AppointmentRepository interface {
	// Insert stores a new appointment. Returns ErrDuplicateID when the id
	// is already present.
	Insert(ctx context.Context, a *Appointment) error

	// GetByID returns the scheduled appointment with the given id, or
	// ErrNotFound when it is absent or cancelled.
	GetByID(ctx context.Context, id string) (*Appointment, error)

	// ListByRange returns every scheduled appointment for resourceID whose
	// interval overlaps [start, end), ordered by StartTime ascending. An
	// empty resourceID selects the union across all resources.
	ListByRange(ctx context.Context, resourceID string, start, end time.Time) ([]*Appointment, error)

	// Remove cancels the appointment and drops it from the range index.
	// Returns ErrNotFound when the id is absent or already cancelled.
	Remove(ctx context.Context, id string) error
}

// PatientDirectory answers patient existence checks. The patient package
// provides the production implementation.
type PatientDirectory interface {
	Exists(ctx context.Context, patientID string) (bool, error)
}
