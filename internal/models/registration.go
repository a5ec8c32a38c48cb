package models

import "time"

// AttendanceStatus is the attendance state of a registration.
// The only transition is Absent -> Present.
type AttendanceStatus string

const (
	StatusAbsent  AttendanceStatus = "absent"
	StatusPresent AttendanceStatus = "present"
)

// Registration associates one student with one event
type Registration struct {
	ID           int       `json:"registration_id"`
	EventID      int       `json:"event_id"`
	StudentID    string    `json:"student_id"`
	RegisteredAt time.Time `json:"registration_date"`
	Attended     bool      `json:"attended"`
}

// GetID returns the registration ID (used by quiet CLI output)
func (r *Registration) GetID() int {
	return r.ID
}

// Status maps the attendance flag to its state
func (r *Registration) Status() AttendanceStatus {
	if r.Attended {
		return StatusPresent
	}
	return StatusAbsent
}

// RegistrationDetail is a registration joined with the registered student's details
type RegistrationDetail struct {
	Registration
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Department string `json:"department"`
	YearLevel  int    `json:"year_level"`
}
