package patient

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrNotFound means no patient matches the id.
	ErrNotFound = errors.New("patient not found")
	// ErrInvalidPatient means a required field is missing.
	ErrInvalidPatient = errors.New("name and email are required")
)

// Patient is a person receiving care at the clinic.
type Patient struct {
	ID             uuid.UUID  `json:"id"`
	Name           string     `json:"name"`
	Email          string     `json:"email"`
	Phone          string     `json:"phone,omitempty"`
	BirthDate      *time.Time `json:"birthDate,omitempty"`
	MedicalHistory []string   `json:"medicalHistory,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}
