package records

import (
	"context"

	"github.com/google/uuid"
)

// Repository stores clinical documents.
type Repository interface {
	Create(ctx context.Context, d *ClinicalDocument) error
	GetByID(ctx context.Context, id uuid.UUID) (*ClinicalDocument, error)
	// List returns documents newest first; a zero patientID selects all.
	List(ctx context.Context, patientID uuid.UUID, limit, offset int) ([]*ClinicalDocument, int, error)
}

// PatientDirectory answers patient existence checks.
type PatientDirectory interface {
	Exists(ctx context.Context, patientID string) (bool, error)
}
