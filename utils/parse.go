package utils

import (
	"time"
)

const (
	// DateLayout is the ISO calendar date accepted on booking requests.
	DateLayout = "2006-01-02"
	// TimeLayout is the 24-hour wall-clock time accepted on booking requests.
	TimeLayout = "15:04"
)

// ParseAppointmentDate validates a YYYY-MM-DD date string.
func ParseAppointmentDate(field, value string) (time.Time, error) {
	d, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, InvalidInputf("invalid %s %q: expected ISO date in YYYY-MM-DD format", field, value)
	}
	return d, nil
}

// ParseAppointmentTime validates a 24-hour HH:MM time string and returns it
// normalized. Appointment times are stored as strings, matching how the rest of
// the schema carries wall-clock times.
func ParseAppointmentTime(field, value string) (string, error) {
	t, err := time.Parse(TimeLayout, value)
	if err != nil {
		return "", InvalidInputf("invalid %s %q: expected 24-hour time in HH:MM format", field, value)
	}
	return t.Format(TimeLayout), nil
}
