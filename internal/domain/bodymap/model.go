package bodymap

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrPatientNotFound = errors.New("patient not found")
	ErrInvalidPoint    = errors.New("coordinates must be within 0..1 and intensity within 0..10")
)

// PainPoint is a patient-reported pain location on the body map.
// Coordinates are normalized to the [0, 1] body outline; intensity runs 0-10.
type PainPoint struct {
	ID          uuid.UUID `json:"id"`
	PatientID   uuid.UUID `json:"patientId"`
	X           float64   `json:"x"`
	Y           float64   `json:"y"`
	Intensity   int       `json:"intensity"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (p *PainPoint) validate() error {
	if p.X < 0 || p.X > 1 || p.Y < 0 || p.Y > 1 {
		return ErrInvalidPoint
	}
	if p.Intensity < 0 || p.Intensity > 10 {
		return ErrInvalidPoint
	}
	return nil
}
