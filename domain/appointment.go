package domain

import (
	"fmt"
	"time"
)

// TimeLayout is the storage format for all time-of-day fields.
const TimeLayout = "15:04"

// Appointment is the validated value object for a scheduled visit.
// Date and time are separate fields; only time-of-day is modelled, so a
// computed end time never carries a date rollover.
type Appointment struct {
	ID            int64
	PatientID     int64
	DentistID     *int64
	Date          string
	Time          string
	Duration      int
	Type          AppointmentType
	TreatmentPlan string
	Notes         string
	Status        AppointmentStatus
	CreatedBy     *int64
	CreatedAt     string
	UpdatedAt     string

	// Display fields populated by joined listings.
	PatientName string
	DentistName string
}

// EndTime computes start plus duration at minute precision, rolling over
// the 24h boundary (23:30 + 60min yields 00:30 with no date carried).
// A negative duration wraps backwards the same way, so the result is a
// valid clock time even before validation ran. Returns the empty string
// when the start time is absent or unparseable.
func (a *Appointment) EndTime() string {
	start, err := time.Parse(TimeLayout, a.Time)
	if err != nil {
		return ""
	}
	const day = 24 * 60
	total := (start.Hour()*60+start.Minute()+a.Duration)%day + day
	total %= day
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}

// IsPast reports whether the appointment date is strictly before today.
func (a *Appointment) IsPast() bool {
	d, err := time.Parse(DateLayout, a.Date)
	if err != nil {
		return false
	}
	return d.Before(today())
}

// IsToday reports whether the appointment falls on the current date.
func (a *Appointment) IsToday() bool {
	d, err := time.Parse(DateLayout, a.Date)
	if err != nil {
		return false
	}
	return d.Equal(today())
}

// today is the current wall-clock date pinned to UTC midnight, the same
// representation time.Parse gives a bare YYYY-MM-DD string.
func today() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// Validate returns the list of human-readable violations, evaluated
// against the wall clock for the temporal checks.
func (a *Appointment) Validate() []string {
	var violations []string

	if a.PatientID == 0 {
		violations = append(violations, "patient is required")
	}

	var date time.Time
	if a.Date == "" {
		violations = append(violations, "appointment date is required")
	} else {
		var err error
		date, err = time.Parse(DateLayout, a.Date)
		if err != nil {
			violations = append(violations, "appointment date must be in YYYY-MM-DD format")
		} else if date.Before(today()) {
			violations = append(violations, "appointment date cannot be in the past")
		}
	}

	if a.Time == "" {
		violations = append(violations, "appointment time is required")
	} else if start, err := time.Parse(TimeLayout, a.Time); err != nil {
		violations = append(violations, "appointment time must be in HH:MM format")
	} else if !date.IsZero() && date.Equal(today()) {
		now := time.Now()
		if start.Hour()*60+start.Minute() < now.Hour()*60+now.Minute() {
			violations = append(violations, "appointment time cannot be in the past")
		}
	}

	if a.Duration <= 0 {
		violations = append(violations, "duration must be greater than 0")
	} else if a.Duration > 480 {
		violations = append(violations, "duration cannot exceed 8 hours")
	}

	return violations
}

// ToRecord serialises the appointment to a flat field mapping.
func (a *Appointment) ToRecord() Record {
	return Record{
		"id":               a.ID,
		"patient_id":       a.PatientID,
		"dentist_id":       a.DentistID,
		"appointment_date": a.Date,
		"appointment_time": a.Time,
		"duration":         a.Duration,
		"appointment_type": string(a.Type),
		"treatment_plan":   a.TreatmentPlan,
		"notes":            a.Notes,
		"status":           string(a.Status),
		"created_by":       a.CreatedBy,
		"created_at":       a.CreatedAt,
		"updated_at":       a.UpdatedAt,
		"patient_name":     a.PatientName,
		"dentist_name":     a.DentistName,
	}
}

// AppointmentFromRecord builds an appointment from a flat field mapping,
// substituting enum defaults for unrecognised values.
func AppointmentFromRecord(r Record) *Appointment {
	appt := &Appointment{
		ID:            recInt64(r, "id"),
		PatientID:     recInt64(r, "patient_id"),
		DentistID:     recInt64Ptr(r, "dentist_id"),
		Date:          recString(r, "appointment_date"),
		Time:          recString(r, "appointment_time"),
		Duration:      recInt(r, "duration"),
		Type:          ParseAppointmentType(recString(r, "appointment_type")),
		TreatmentPlan: recString(r, "treatment_plan"),
		Notes:         recString(r, "notes"),
		Status:        ParseAppointmentStatus(recString(r, "status")),
		CreatedBy:     recInt64Ptr(r, "created_by"),
		CreatedAt:     recString(r, "created_at"),
		UpdatedAt:     recString(r, "updated_at"),
		PatientName:   recString(r, "patient_name"),
		DentistName:   recString(r, "dentist_name"),
	}
	if appt.Duration == 0 {
		appt.Duration = 60
	}
	return appt
}
