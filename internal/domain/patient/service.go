package patient

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
)

// Service exposes patient CRUD and satisfies the scheduling package's
// PatientDirectory interface.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, p *Patient) error {
	if strings.TrimSpace(p.Name) == "" || strings.TrimSpace(p.Email) == "" {
		return ErrInvalidPatient
	}
	return s.repo.Create(ctx, p)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Patient, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, limit, offset int) ([]*Patient, int, error) {
	return s.repo.List(ctx, limit, offset)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

// Exists implements scheduling.PatientDirectory. Malformed ids resolve to
// false rather than an error.
func (s *Service) Exists(ctx context.Context, patientID string) (bool, error) {
	id, err := uuid.Parse(patientID)
	if err != nil {
		return false, nil
	}
	return s.repo.Exists(ctx, id)
}

// DisplayName implements report.PatientLookup. Unknown or malformed ids
// report found=false rather than an error.
func (s *Service) DisplayName(ctx context.Context, patientID string) (string, bool, error) {
	id, err := uuid.Parse(patientID)
	if err != nil {
		return "", false, nil
	}
	p, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return p.Name, true, nil
}
