package scheduling

import "time"

// Status is the lifecycle state of an appointment. The only legal
// transition is StatusScheduled to StatusCancelled, via Delete.
type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusCancelled Status = "cancelled"
)

// DefaultResourceID is used when a create request names no resource.
// Conflict checking still applies within it.
const DefaultResourceID = "default"

// Appointment is a committed booking of a resource for a patient over a
// half-open time interval. StartTime and EndTime are immutable once stored;
// rescheduling is modeled as delete plus create.
type Appointment struct {
	ID         string    `json:"id"`
	PatientID  string    `json:"patientId"`
	ResourceID string    `json:"resourceId"`
	StartTime  time.Time `json:"startTime"`
	EndTime    time.Time `json:"endTime"`
	Notes      string    `json:"notes,omitempty"`
	Status     Status    `json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// Interval returns the appointment's booked time range.
func (a *Appointment) Interval() Interval {
	return Interval{Start: a.StartTime, End: a.EndTime}
}
