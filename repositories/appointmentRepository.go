package repositories

import (
	"context"

	"DentalDesk/database"
	"DentalDesk/models"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// AppointmentRow is an appointment joined with the patient's display name
// and the dentist's username for listings.
type AppointmentRow struct {
	ID              int64  `gorm:"column:id"`
	PatientID       int64  `gorm:"column:patient_id"`
	DentistID       *int64 `gorm:"column:dentist_id"`
	AppointmentDate string `gorm:"column:appointment_date"`
	AppointmentTime string `gorm:"column:appointment_time"`
	Duration        int    `gorm:"column:duration"`
	AppointmentType string `gorm:"column:appointment_type"`
	TreatmentPlan   string `gorm:"column:treatment_plan"`
	Notes           string `gorm:"column:notes"`
	Status          string `gorm:"column:status"`
	CreatedBy       *int64 `gorm:"column:created_by"`
	FirstName       string `gorm:"column:first_name"`
	LastName        string `gorm:"column:last_name"`
	DentistName     string `gorm:"column:dentist_name"`
}

// AppointmentFilter narrows a listing. Date and PatientID are mutually
// exclusive; both zero-valued returns everything.
type AppointmentFilter struct {
	Date      string
	PatientID int64
}

type AppointmentRepository struct {
	db  *gorm.DB
	log zerolog.Logger
}

func NewAppointmentRepository(db *gorm.DB, log zerolog.Logger) *AppointmentRepository {
	return &AppointmentRepository{db: db, log: log.With().Str("repository", "appointments").Logger()}
}

// Create inserts an appointment and returns its new identifier.
func (r *AppointmentRepository) Create(ctx context.Context, appointment *models.Appointment) (int64, error) {
	if err := r.db.WithContext(ctx).Create(appointment).Error; err != nil {
		r.log.Error().Err(err).Int64("patient_id", appointment.PatientID).Msg("failed to create appointment")
		return 0, database.TranslateError(err)
	}
	return appointment.ID, nil
}

func (r *AppointmentRepository) GetByID(ctx context.Context, id int64) (*models.Appointment, error) {
	var appointment models.Appointment
	if err := r.db.WithContext(ctx).First(&appointment, id).Error; err != nil {
		return nil, database.TranslateError(err)
	}
	return &appointment, nil
}

// List returns appointments joined with patient and dentist display names,
// ordered by (date, time), optionally filtered by exact date or patient.
func (r *AppointmentRepository) List(ctx context.Context, filter AppointmentFilter) ([]AppointmentRow, error) {
	query := r.db.WithContext(ctx).
		Table("appointments a").
		Select("a.id, a.patient_id, a.dentist_id, a.appointment_date, a.appointment_time, " +
			"a.duration, a.appointment_type, a.treatment_plan, a.notes, a.status, a.created_by, " +
			"p.first_name, p.last_name, u.username AS dentist_name").
		Joins("JOIN patients p ON a.patient_id = p.id").
		Joins("LEFT JOIN users u ON a.dentist_id = u.id")

	switch {
	case filter.Date != "":
		query = query.Where("a.appointment_date = ?", filter.Date)
	case filter.PatientID != 0:
		query = query.Where("a.patient_id = ?", filter.PatientID)
	}

	var rows []AppointmentRow
	if err := query.Order("a.appointment_date, a.appointment_time").Scan(&rows).Error; err != nil {
		r.log.Error().Err(err).Msg("failed to list appointments")
		return nil, database.TranslateError(err)
	}
	return rows, nil
}

// Update rewrites the appointment's editable fields; status moves through
// UpdateStatus only, so the transition graph cannot be bypassed here.
func (r *AppointmentRepository) Update(ctx context.Context, appointment *models.Appointment) error {
	result := r.db.WithContext(ctx).Model(&models.Appointment{}).
		Where("id = ?", appointment.ID).
		Select("patient_id", "dentist_id", "appointment_date", "appointment_time",
			"duration", "appointment_type", "treatment_plan", "notes").
		Updates(appointment)
	if result.Error != nil {
		r.log.Error().Err(result.Error).Int64("id", appointment.ID).Msg("failed to update appointment")
		return database.TranslateError(result.Error)
	}
	return rowsAffected(result)
}

// UpdateStatus overwrites the status column. Legality of the transition is
// the service's concern; zero affected rows surfaces as NotFound.
func (r *AppointmentRepository) UpdateStatus(ctx context.Context, id int64, status string) error {
	result := r.db.WithContext(ctx).Model(&models.Appointment{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		r.log.Error().Err(result.Error).Int64("id", id).Str("status", status).Msg("failed to update appointment status")
		return database.TranslateError(result.Error)
	}
	return rowsAffected(result)
}
