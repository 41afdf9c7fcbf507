package bodymap

import (
	"context"

	"github.com/google/uuid"
)

type Service struct {
	repo     Repository
	patients PatientDirectory
}

func NewService(repo Repository, patients PatientDirectory) *Service {
	return &Service{repo: repo, patients: patients}
}

func (s *Service) Create(ctx context.Context, p *PainPoint) error {
	if err := p.validate(); err != nil {
		return err
	}
	exists, err := s.patients.Exists(ctx, p.PatientID.String())
	if err != nil {
		return err
	}
	if !exists {
		return ErrPatientNotFound
	}
	return s.repo.Create(ctx, p)
}

func (s *Service) ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*PainPoint, error) {
	return s.repo.ListByPatient(ctx, patientID)
}
