package services

import (
	"context"
	"errors"

	"DentalDesk/domain"
	"DentalDesk/models"
	"DentalDesk/repositories"

	"github.com/rs/zerolog"
)

// ErrAmbiguousFilter rejects a listing that combines mutually exclusive
// filters.
var ErrAmbiguousFilter = errors.New("date and patient filters are mutually exclusive")

type AppointmentService struct {
	repository *repositories.AppointmentRepository
	log        zerolog.Logger
}

func NewAppointmentService(repository *repositories.AppointmentRepository, log zerolog.Logger) *AppointmentService {
	return &AppointmentService{repository: repository, log: log.With().Str("service", "appointments").Logger()}
}

// Create validates and schedules a new appointment. The initial status is
// always scheduled regardless of what the caller supplied.
func (s *AppointmentService) Create(ctx context.Context, appointment *domain.Appointment) (int64, error) {
	if violations := appointment.Validate(); len(violations) > 0 {
		return 0, &domain.ValidationError{Violations: violations}
	}
	model := appointmentToModel(appointment)
	model.Status = string(domain.StatusScheduled)
	return s.repository.Create(ctx, model)
}

// List returns appointments with patient and dentist display names, ordered
// by (date, time). Filter by exact date or by patient, never both.
func (s *AppointmentService) List(ctx context.Context, date string, patientID int64) ([]*domain.Appointment, error) {
	if date != "" && patientID != 0 {
		return nil, ErrAmbiguousFilter
	}
	rows, err := s.repository.List(ctx, repositories.AppointmentFilter{Date: date, PatientID: patientID})
	if err != nil {
		return nil, err
	}
	appointments := make([]*domain.Appointment, 0, len(rows))
	for i := range rows {
		appointments = append(appointments, appointmentFromRow(&rows[i]))
	}
	return appointments, nil
}

func (s *AppointmentService) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	appointment, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return appointmentFromModel(appointment), nil
}

// Update validates and rewrites the appointment's editable fields. Status
// is not touched here; use TransitionStatus.
func (s *AppointmentService) Update(ctx context.Context, appointment *domain.Appointment) error {
	if violations := appointment.Validate(); len(violations) > 0 {
		return &domain.ValidationError{Violations: violations}
	}
	return s.repository.Update(ctx, appointmentToModel(appointment))
}

// TransitionStatus moves an appointment through its lifecycle, rejecting
// moves the status graph does not allow. Unlike the permissive overwrite
// the clinic ran before, an illegal move fails instead of silently
// rewriting state.
func (s *AppointmentService) TransitionStatus(ctx context.Context, id int64, next domain.AppointmentStatus) error {
	appointment, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return err
	}
	current := domain.ParseAppointmentStatus(appointment.Status)
	if !current.CanTransitionTo(next) {
		return &domain.InvalidTransitionError{From: current, To: next}
	}
	if err := s.repository.UpdateStatus(ctx, id, string(next)); err != nil {
		return err
	}
	s.log.Info().Int64("id", id).Str("from", string(current)).Str("to", string(next)).
		Msg("appointment status transitioned")
	return nil
}

func appointmentToModel(a *domain.Appointment) *models.Appointment {
	duration := a.Duration
	if duration == 0 {
		duration = 60
	}
	appointmentType := a.Type
	if appointmentType == "" {
		appointmentType = domain.TypeCheckup
	}
	return &models.Appointment{
		ID:              a.ID,
		PatientID:       a.PatientID,
		DentistID:       a.DentistID,
		AppointmentDate: a.Date,
		AppointmentTime: a.Time,
		Duration:        duration,
		AppointmentType: string(appointmentType),
		TreatmentPlan:   a.TreatmentPlan,
		Notes:           a.Notes,
		Status:          string(a.Status),
		CreatedBy:       a.CreatedBy,
	}
}

func appointmentFromModel(m *models.Appointment) *domain.Appointment {
	return &domain.Appointment{
		ID:            m.ID,
		PatientID:     m.PatientID,
		DentistID:     m.DentistID,
		Date:          m.AppointmentDate,
		Time:          m.AppointmentTime,
		Duration:      m.Duration,
		Type:          domain.ParseAppointmentType(m.AppointmentType),
		TreatmentPlan: m.TreatmentPlan,
		Notes:         m.Notes,
		Status:        domain.ParseAppointmentStatus(m.Status),
		CreatedBy:     m.CreatedBy,
	}
}

func appointmentFromRow(row *repositories.AppointmentRow) *domain.Appointment {
	return &domain.Appointment{
		ID:            row.ID,
		PatientID:     row.PatientID,
		DentistID:     row.DentistID,
		Date:          row.AppointmentDate,
		Time:          row.AppointmentTime,
		Duration:      row.Duration,
		Type:          domain.ParseAppointmentType(row.AppointmentType),
		TreatmentPlan: row.TreatmentPlan,
		Notes:         row.Notes,
		Status:        domain.ParseAppointmentStatus(row.Status),
		CreatedBy:     row.CreatedBy,
		PatientName:   row.FirstName + " " + row.LastName,
		DentistName:   row.DentistName,
	}
}
