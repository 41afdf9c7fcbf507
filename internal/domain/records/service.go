package records

import (
	"context"
	"strings"

	"github.com/google/uuid"
)

type Service struct {
	repo     Repository
	patients PatientDirectory
}

func NewService(repo Repository, patients PatientDirectory) *Service {
	return &Service{repo: repo, patients: patients}
}

func (s *Service) Create(ctx context.Context, d *ClinicalDocument) error {
	if d.PatientID == uuid.Nil || strings.TrimSpace(d.Title) == "" || strings.TrimSpace(d.Content) == "" {
		return ErrInvalidRecord
	}
	exists, err := s.patients.Exists(ctx, d.PatientID.String())
	if err != nil {
		return err
	}
	if !exists {
		return ErrPatientNotFound
	}
	return s.repo.Create(ctx, d)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*ClinicalDocument, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, patientID uuid.UUID, limit, offset int) ([]*ClinicalDocument, int, error) {
	return s.repo.List(ctx, patientID, limit, offset)
}
