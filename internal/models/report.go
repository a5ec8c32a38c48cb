package models

// Counts holds the dashboard totals
type Counts struct {
	Events        int `json:"total_events"`
	Students      int `json:"total_students"`
	Registrations int `json:"total_registrations"`
}

// AttendanceStat is the per-event registered/attended tally
type AttendanceStat struct {
	EventID    int    `json:"event_id"`
	EventName  string `json:"event_name"`
	Registered int    `json:"total_registered"`
	Attended   int    `json:"total_attended"`
}

// Rate returns attended/registered as a percentage, 0 when nobody registered
func (s AttendanceStat) Rate() float64 {
	return Percent(s.Attended, s.Registered)
}

// DepartmentParticipation is the registration count across a department's students
type DepartmentParticipation struct {
	Department    string `json:"department"`
	Registrations int    `json:"registrations"`
}

// Percent returns part/total*100, or 0 when total is 0
func Percent(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(part) / float64(total) * 100
}
