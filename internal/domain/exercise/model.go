package exercise

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrInvalidExercise = errors.New("name and category are required")

// Exercise is a catalog entry prescribable to patients.
type Exercise struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Specialty   string    `json:"specialty,omitempty"`
	Description string    `json:"description,omitempty"`
	VideoURL    string    `json:"videoUrl,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}
