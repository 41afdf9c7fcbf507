package bodymap

import (
	"context"

	"github.com/google/uuid"
)

// Repository stores pain points.
type Repository interface {
	Create(ctx context.Context, p *PainPoint) error
	ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*PainPoint, error)
}

// PatientDirectory answers patient existence checks.
type PatientDirectory interface {
	Exists(ctx context.Context, patientID string) (bool, error)
}
