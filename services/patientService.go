package services

import (
	"context"
	"time"

	"DentalDesk/domain"
	"DentalDesk/models"
	"DentalDesk/repositories"

	"github.com/rs/zerolog"
)

type PatientService struct {
	repository *repositories.PatientRepository
	log        zerolog.Logger
}

func NewPatientService(repository *repositories.PatientRepository, log zerolog.Logger) *PatientService {
	return &PatientService{repository: repository, log: log.With().Str("service", "patients").Logger()}
}

// Create validates the patient and inserts it, returning the new id.
func (s *PatientService) Create(ctx context.Context, patient *domain.Patient) (int64, error) {
	if violations := patient.Validate(); len(violations) > 0 {
		return 0, &domain.ValidationError{Violations: violations}
	}
	model := patientToModel(patient)
	model.IsActive = true
	return s.repository.Create(ctx, model)
}

// Search lists active patients ordered by (last name, first name),
// optionally filtered by a case-insensitive substring of first or last
// name.
func (s *PatientService) Search(ctx context.Context, term string) ([]*domain.Patient, error) {
	patients, err := s.repository.Search(ctx, term)
	if err != nil {
		return nil, err
	}
	result := make([]*domain.Patient, 0, len(patients))
	for i := range patients {
		result = append(result, patientFromModel(&patients[i]))
	}
	return result, nil
}

func (s *PatientService) GetByID(ctx context.Context, id int64) (*domain.Patient, error) {
	patient, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return patientFromModel(patient), nil
}

// Update validates and rewrites the patient's editable fields.
func (s *PatientService) Update(ctx context.Context, patient *domain.Patient) error {
	if violations := patient.Validate(); len(violations) > 0 {
		return &domain.ValidationError{Violations: violations}
	}
	return s.repository.Update(ctx, patientToModel(patient))
}

// Deactivate removes the patient from default listings without deleting
// the row.
func (s *PatientService) Deactivate(ctx context.Context, id int64) error {
	return s.repository.Deactivate(ctx, id)
}

// Delete hard-deletes the patient row.
func (s *PatientService) Delete(ctx context.Context, id int64) error {
	return s.repository.Delete(ctx, id)
}

func patientToModel(p *domain.Patient) *models.Patient {
	return &models.Patient{
		ID:                   p.ID,
		FirstName:            p.FirstName,
		LastName:             p.LastName,
		DateOfBirth:          p.DateOfBirth,
		Gender:               string(p.Gender),
		Phone:                p.Phone,
		Email:                p.Email,
		Address:              p.Address,
		City:                 p.City,
		State:                p.State,
		PostalCode:           p.PostalCode,
		EmergencyName:        p.EmergencyName,
		EmergencyPhone:       p.EmergencyPhone,
		EmergencyRelation:    p.EmergencyRelation,
		MedicalHistory:       p.MedicalHistory,
		Allergies:            p.Allergies,
		InsuranceProvider:    p.InsuranceProvider,
		InsuranceNumber:      p.InsuranceNumber,
		InsuranceGroupNumber: p.InsuranceGroupNumber,
		IsActive:             p.Active,
		CreatedBy:            p.CreatedBy,
	}
}

func patientFromModel(m *models.Patient) *domain.Patient {
	return &domain.Patient{
		ID:                   m.ID,
		FirstName:            m.FirstName,
		LastName:             m.LastName,
		DateOfBirth:          m.DateOfBirth,
		Gender:               domain.ParseGender(m.Gender),
		Phone:                m.Phone,
		Email:                m.Email,
		Address:              m.Address,
		City:                 m.City,
		State:                m.State,
		PostalCode:           m.PostalCode,
		EmergencyName:        m.EmergencyName,
		EmergencyPhone:       m.EmergencyPhone,
		EmergencyRelation:    m.EmergencyRelation,
		MedicalHistory:       m.MedicalHistory,
		Allergies:            m.Allergies,
		InsuranceProvider:    m.InsuranceProvider,
		InsuranceNumber:      m.InsuranceNumber,
		InsuranceGroupNumber: m.InsuranceGroupNumber,
		Active:               m.IsActive,
		CreatedBy:            m.CreatedBy,
		CreatedAt:            m.CreatedAt.Format(time.RFC3339),
		UpdatedAt:            m.UpdatedAt.Format(time.RFC3339),
	}
}
