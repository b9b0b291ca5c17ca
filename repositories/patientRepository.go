package repositories

import (
	"context"
	"strings"

	"DentalDesk/database"
	"DentalDesk/models"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

type PatientRepository struct {
	db  *gorm.DB
	log zerolog.Logger
}

func NewPatientRepository(db *gorm.DB, log zerolog.Logger) *PatientRepository {
	return &PatientRepository{db: db, log: log.With().Str("repository", "patients").Logger()}
}

// Create inserts a patient and returns its new identifier.
func (r *PatientRepository) Create(ctx context.Context, patient *models.Patient) (int64, error) {
	if err := r.db.WithContext(ctx).Create(patient).Error; err != nil {
		r.log.Error().Err(err).Str("last_name", patient.LastName).Msg("failed to create patient")
		return 0, database.TranslateError(err)
	}
	return patient.ID, nil
}

// Search lists active patients ordered by (last name, first name). A
// non-empty term filters to patients whose first or last name contains it
// case-insensitively; an empty term returns all active patients.
func (r *PatientRepository) Search(ctx context.Context, term string) ([]models.Patient, error) {
	query := r.db.WithContext(ctx).Where("is_active = ?", true)
	if term != "" {
		pattern := "%" + strings.ToLower(term) + "%"
		query = query.Where("LOWER(first_name) LIKE ? OR LOWER(last_name) LIKE ?", pattern, pattern)
	}

	var patients []models.Patient
	if err := query.Order("last_name, first_name").Find(&patients).Error; err != nil {
		r.log.Error().Err(err).Str("term", term).Msg("failed to search patients")
		return nil, database.TranslateError(err)
	}
	return patients, nil
}

func (r *PatientRepository) GetByID(ctx context.Context, id int64) (*models.Patient, error) {
	var patient models.Patient
	if err := r.db.WithContext(ctx).First(&patient, id).Error; err != nil {
		return nil, database.TranslateError(err)
	}
	return &patient, nil
}

// Update rewrites the patient's editable fields. Zero affected rows means
// the identifier matched nothing.
func (r *PatientRepository) Update(ctx context.Context, patient *models.Patient) error {
	result := r.db.WithContext(ctx).Model(&models.Patient{}).
		Where("id = ?", patient.ID).
		Select("first_name", "last_name", "date_of_birth", "gender", "phone", "email",
			"address", "city", "state", "postal_code",
			"emergency_contact_name", "emergency_contact_phone", "emergency_contact_relationship",
			"medical_history", "allergies",
			"insurance_provider", "insurance_number", "insurance_group_number").
		Updates(patient)
	if result.Error != nil {
		r.log.Error().Err(result.Error).Int64("id", patient.ID).Msg("failed to update patient")
		return database.TranslateError(result.Error)
	}
	return rowsAffected(result)
}

// Deactivate soft-deletes a patient; it disappears from default listings
// but the row survives.
func (r *PatientRepository) Deactivate(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Model(&models.Patient{}).
		Where("id = ?", id).
		Update("is_active", false)
	if result.Error != nil {
		r.log.Error().Err(result.Error).Int64("id", id).Msg("failed to deactivate patient")
		return database.TranslateError(result.Error)
	}
	return rowsAffected(result)
}

// Delete hard-deletes a patient row. Rarely exercised; Deactivate is the
// normal removal path.
func (r *PatientRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&models.Patient{}, id)
	if result.Error != nil {
		r.log.Error().Err(result.Error).Int64("id", id).Msg("failed to delete patient")
		return database.TranslateError(result.Error)
	}
	return rowsAffected(result)
}
