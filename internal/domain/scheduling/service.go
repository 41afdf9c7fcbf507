package scheduling

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// CreateRequest carries the fields needed to book an appointment.
type CreateRequest struct {
	PatientID  string
	ResourceID string
	StartTime  time.Time
	EndTime    time.Time
	Notes      string
}

// Service is the public scheduling API. It validates input, checks patient
// existence, and funnels every write through the conflict guard.
type Service struct {
	repo       AppointmentRepository
	patients   PatientDirectory
	guard      *Guard
	rejectPast bool
	now        func() time.Time
}

func NewService(repo AppointmentRepository, patients PatientDirectory, guard *Guard, rejectPastDated bool) *Service {
	return &Service{
		repo:       repo,
		patients:   patients,
		guard:      guard,
		rejectPast: rejectPastDated,
		now:        time.Now,
	}
}

// Create books a new appointment. Validation runs before any store or guard
// interaction: interval shape, past-dated policy, then patient existence.
// The insert itself happens inside the guard's reservation window.
func (s *Service) Create(ctx context.Context, req CreateRequest) (*Appointment, error) {
	iv := Interval{Start: req.StartTime, End: req.EndTime}
	if !iv.IsValid() {
		return nil, ErrInvalidInterval
	}
	if s.rejectPast && req.StartTime.Before(s.now()) {
		return nil, ErrPastDated
	}

	resourceID := req.ResourceID
	if resourceID == "" {
		resourceID = DefaultResourceID
	}

	exists, err := s.patients.Exists(ctx, req.PatientID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrPatientNotFound
	}

	res, err := s.guard.Reserve(ctx, resourceID, iv)
	if err != nil {
		return nil, err
	}

	now := s.now()
	appt := &Appointment{
		ID:         uuid.NewString(),
		PatientID:  req.PatientID,
		ResourceID: resourceID,
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
		Notes:      req.Notes,
		Status:     StatusScheduled,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.guard.Commit(res, func() error {
		return s.repo.Insert(ctx, appt)
	}); err != nil {
		return nil, err
	}
	return appt, nil
}

// Get returns the scheduled appointment with the given id.
func (s *Service) Get(ctx context.Context, id string) (*Appointment, error) {
	return s.repo.GetByID(ctx, id)
}

// ListByDateRange returns scheduled appointments overlapping [start, end),
// ordered by start time. An empty resourceID spans all resources. A range
// with no matches yields an empty slice, not an error.
func (s *Service) ListByDateRange(ctx context.Context, start, end time.Time, resourceID string) ([]*Appointment, error) {
	if end.Before(start) {
		return nil, ErrInvalidRange
	}
	return s.repo.ListByRange(ctx, resourceID, start, end)
}

// Delete cancels the appointment. Deleting an already-cancelled or unknown
// id reports ErrNotFound.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Remove(ctx, id)
}
