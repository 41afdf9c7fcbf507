package records

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound        = errors.New("medical record not found")
	ErrPatientNotFound = errors.New("patient not found")
	ErrInvalidRecord   = errors.New("patientId, title and content are required")
)

// ClinicalDocument is a free-text medical record attached to a patient.
type ClinicalDocument struct {
	ID         uuid.UUID `json:"id"`
	PatientID  uuid.UUID `json:"patientId"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	RecordType string    `json:"recordType,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}
