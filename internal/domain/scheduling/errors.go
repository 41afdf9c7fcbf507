package scheduling

import "errors"

var (
	// ErrInvalidInterval means end time is not after start time.
	ErrInvalidInterval = errors.New("invalid interval: end must be after start")
	// ErrPastDated means the appointment would start in the past.
	ErrPastDated = errors.New("appointment starts in the past")
	// ErrInvalidRange means a list query's end date is before its start date.
	ErrInvalidRange = errors.New("invalid range: end date before start date")
	// ErrPatientNotFound means the referenced patient does not exist.
	ErrPatientNotFound = errors.New("patient not found")
	// ErrNotFound means no scheduled appointment matches the id.
	ErrNotFound = errors.New("appointment not found")
	// ErrDuplicateID means an appointment with that id already exists.
	ErrDuplicateID = errors.New("duplicate appointment id")
	// ErrConflict means an overlapping scheduled appointment exists for the resource.
	ErrConflict = errors.New("appointment conflicts with an existing booking")
	// ErrReservationExpired means a reservation outlived its TTL and was revoked.
	ErrReservationExpired = errors.New("reservation expired")
)
