package repositories

import (
	"context"
	"time"

	"DentalDesk/database"
	"DentalDesk/models"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

type TreatmentRepository struct {
	db  *gorm.DB
	log zerolog.Logger
}

func NewTreatmentRepository(db *gorm.DB, log zerolog.Logger) *TreatmentRepository {
	return &TreatmentRepository{db: db, log: log.With().Str("repository", "treatments").Logger()}
}

// Create inserts a catalog treatment and returns its new identifier.
func (r *TreatmentRepository) Create(ctx context.Context, treatment *models.Treatment) (int64, error) {
	if err := r.db.WithContext(ctx).Create(treatment).Error; err != nil {
		r.log.Error().Err(err).Str("name", treatment.Name).Msg("failed to create treatment")
		return 0, database.TranslateError(err)
	}
	return treatment.ID, nil
}

// GetAll lists active catalog treatments ordered by name; soft-deleted
// entries are excluded.
func (r *TreatmentRepository) GetAll(ctx context.Context) ([]models.Treatment, error) {
	var treatments []models.Treatment
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("name").
		Find(&treatments).Error
	if err != nil {
		r.log.Error().Err(err).Msg("failed to list treatments")
		return nil, database.TranslateError(err)
	}
	return treatments, nil
}

func (r *TreatmentRepository) GetByID(ctx context.Context, id int64) (*models.Treatment, error) {
	var treatment models.Treatment
	if err := r.db.WithContext(ctx).First(&treatment, id).Error; err != nil {
		return nil, database.TranslateError(err)
	}
	return &treatment, nil
}

func (r *TreatmentRepository) Update(ctx context.Context, treatment *models.Treatment) error {
	result := r.db.WithContext(ctx).Model(&models.Treatment{}).
		Where("id = ?", treatment.ID).
		Select("name", "description", "category", "duration", "base_cost").
		Updates(treatment)
	if result.Error != nil {
		r.log.Error().Err(result.Error).Int64("id", treatment.ID).Msg("failed to update treatment")
		return database.TranslateError(result.Error)
	}
	return rowsAffected(result)
}

// Deactivate soft-deletes a catalog treatment.
func (r *TreatmentRepository) Deactivate(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Model(&models.Treatment{}).
		Where("id = ?", id).
		Update("is_active", false)
	if result.Error != nil {
		r.log.Error().Err(result.Error).Int64("id", id).Msg("failed to deactivate treatment")
		return database.TranslateError(result.Error)
	}
	return rowsAffected(result)
}

// TreatmentHistoryRow is a treatment record joined with the catalog name
// and the dentist's username.
type TreatmentHistoryRow struct {
	ID             int64   `gorm:"column:id"`
	PatientID      int64   `gorm:"column:patient_id"`
	TreatmentID    int64   `gorm:"column:treatment_id"`
	AppointmentID  *int64  `gorm:"column:appointment_id"`
	DentistID      *int64  `gorm:"column:dentist_id"`
	TreatmentDate  string  `gorm:"column:treatment_date"`
	TreatmentNotes string  `gorm:"column:treatment_notes"`
	ActualCost     float64 `gorm:"column:actual_cost"`
	PaymentStatus  string  `gorm:"column:payment_status"`
	TreatmentName  string  `gorm:"column:treatment_name"`
	DentistName    string  `gorm:"column:dentist_name"`
}

// CreateRecord inserts a performed-treatment record and returns its id.
func (r *TreatmentRepository) CreateRecord(ctx context.Context, record *models.TreatmentRecord) (int64, error) {
	if err := r.db.WithContext(ctx).Create(record).Error; err != nil {
		r.log.Error().Err(err).Int64("patient_id", record.PatientID).Msg("failed to create treatment record")
		return 0, database.TranslateError(err)
	}
	return record.ID, nil
}

func (r *TreatmentRepository) GetRecordByID(ctx context.Context, id int64) (*models.TreatmentRecord, error) {
	var record models.TreatmentRecord
	if err := r.db.WithContext(ctx).First(&record, id).Error; err != nil {
		return nil, database.TranslateError(err)
	}
	return &record, nil
}

// HistoryByPatient lists a patient's treatment records newest first, joined
// with treatment names and dentist names.
func (r *TreatmentRepository) HistoryByPatient(ctx context.Context, patientID int64) ([]TreatmentHistoryRow, error) {
	var rows []TreatmentHistoryRow
	err := r.db.WithContext(ctx).
		Table("treatment_records tr").
		Select("tr.id, tr.patient_id, tr.treatment_id, tr.appointment_id, tr.dentist_id, "+
			"tr.treatment_date, tr.treatment_notes, tr.actual_cost, tr.payment_status, "+
			"t.name AS treatment_name, u.username AS dentist_name").
		Joins("JOIN treatments t ON tr.treatment_id = t.id").
		Joins("LEFT JOIN users u ON tr.dentist_id = u.id").
		Where("tr.patient_id = ?", patientID).
		Order("tr.treatment_date DESC").
		Scan(&rows).Error
	if err != nil {
		r.log.Error().Err(err).Int64("patient_id", patientID).Msg("failed to get treatment history")
		return nil, database.TranslateError(err)
	}
	return rows, nil
}

// UpdateRecordPaymentStatus is the only mutation allowed on a completed
// treatment record.
func (r *TreatmentRepository) UpdateRecordPaymentStatus(ctx context.Context, id int64, status string) error {
	result := r.db.WithContext(ctx).Model(&models.TreatmentRecord{}).
		Where("id = ?", id).
		Update("payment_status", status)
	if result.Error != nil {
		r.log.Error().Err(result.Error).Int64("id", id).Msg("failed to update record payment status")
		return database.TranslateError(result.Error)
	}
	return rowsAffected(result)
}

// MarkRecordCompleted stamps completed_at; records are immutable afterwards
// except for payment-status updates.
func (r *TreatmentRepository) MarkRecordCompleted(ctx context.Context, id int64, at time.Time) error {
	result := r.db.WithContext(ctx).Model(&models.TreatmentRecord{}).
		Where("id = ? AND completed_at IS NULL", id).
		Update("completed_at", at)
	if result.Error != nil {
		r.log.Error().Err(result.Error).Int64("id", id).Msg("failed to mark record completed")
		return database.TranslateError(result.Error)
	}
	return rowsAffected(result)
}
