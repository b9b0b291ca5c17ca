package services

import (
	"context"
	"time"

	"DentalDesk/domain"
	"DentalDesk/models"
	"DentalDesk/repositories"

	"github.com/rs/zerolog"
)

type TreatmentService struct {
	repository *repositories.TreatmentRepository
	log        zerolog.Logger
}

func NewTreatmentService(repository *repositories.TreatmentRepository, log zerolog.Logger) *TreatmentService {
	return &TreatmentService{repository: repository, log: log.With().Str("service", "treatments").Logger()}
}

// Create validates and inserts a catalog treatment, returning the new id.
func (s *TreatmentService) Create(ctx context.Context, treatment *domain.Treatment) (int64, error) {
	if violations := treatment.Validate(); len(violations) > 0 {
		return 0, &domain.ValidationError{Violations: violations}
	}
	model := treatmentToModel(treatment)
	model.IsActive = true
	return s.repository.Create(ctx, model)
}

// GetAll lists active catalog treatments ordered by name.
func (s *TreatmentService) GetAll(ctx context.Context) ([]*domain.Treatment, error) {
	treatments, err := s.repository.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]*domain.Treatment, 0, len(treatments))
	for i := range treatments {
		result = append(result, treatmentFromModel(&treatments[i]))
	}
	return result, nil
}

func (s *TreatmentService) GetByID(ctx context.Context, id int64) (*domain.Treatment, error) {
	treatment, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return treatmentFromModel(treatment), nil
}

func (s *TreatmentService) Update(ctx context.Context, treatment *domain.Treatment) error {
	if violations := treatment.Validate(); len(violations) > 0 {
		return &domain.ValidationError{Violations: violations}
	}
	return s.repository.Update(ctx, treatmentToModel(treatment))
}

// Deactivate removes a treatment from the active catalog.
func (s *TreatmentService) Deactivate(ctx context.Context, id int64) error {
	return s.repository.Deactivate(ctx, id)
}

// RecordTreatment stores a performed treatment for a patient and returns
// the record id.
func (s *TreatmentService) RecordTreatment(ctx context.Context, record *domain.TreatmentRecord) (int64, error) {
	var violations []string
	if record.PatientID == 0 {
		violations = append(violations, "patient is required")
	}
	if record.TreatmentID == 0 {
		violations = append(violations, "treatment is required")
	}
	if record.Date == "" {
		violations = append(violations, "treatment date is required")
	}
	if record.ActualCost < 0 {
		violations = append(violations, "cost cannot be negative")
	}
	if len(violations) > 0 {
		return 0, &domain.ValidationError{Violations: violations}
	}

	status := record.PaymentStatus
	if status == "" {
		status = domain.PaymentPending
	}
	model := &models.TreatmentRecord{
		PatientID:      record.PatientID,
		TreatmentID:    record.TreatmentID,
		AppointmentID:  record.AppointmentID,
		DentistID:      record.DentistID,
		TreatmentDate:  record.Date,
		TreatmentNotes: record.Notes,
		ActualCost:     record.ActualCost,
		PaymentStatus:  string(status),
		CreatedBy:      record.CreatedBy,
	}
	return s.repository.CreateRecord(ctx, model)
}

// GetRecord returns a single treatment record by id.
func (s *TreatmentService) GetRecord(ctx context.Context, id int64) (*domain.TreatmentRecord, error) {
	record, err := s.repository.GetRecordByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return treatmentRecordFromModel(record), nil
}

// HistoryByPatient returns a patient's treatment records, newest first,
// with treatment and dentist names resolved.
func (s *TreatmentService) HistoryByPatient(ctx context.Context, patientID int64) ([]*domain.TreatmentRecord, error) {
	rows, err := s.repository.HistoryByPatient(ctx, patientID)
	if err != nil {
		return nil, err
	}
	records := make([]*domain.TreatmentRecord, 0, len(rows))
	for i := range rows {
		records = append(records, treatmentRecordFromRow(&rows[i]))
	}
	return records, nil
}

// UpdateRecordPaymentStatus moves a record's payment status within its
// closed value set.
func (s *TreatmentService) UpdateRecordPaymentStatus(ctx context.Context, id int64, status domain.PaymentStatus) error {
	return s.repository.UpdateRecordPaymentStatus(ctx, id, string(domain.ParsePaymentStatus(string(status))))
}

// CompleteRecord stamps the record as completed now.
func (s *TreatmentService) CompleteRecord(ctx context.Context, id int64) error {
	return s.repository.MarkRecordCompleted(ctx, id, time.Now())
}

func treatmentToModel(t *domain.Treatment) *models.Treatment {
	category := t.Category
	if category == "" {
		category = domain.CategoryGeneral
	}
	duration := t.Duration
	if duration == 0 {
		duration = 60
	}
	return &models.Treatment{
		ID:          t.ID,
		Name:        t.Name,
		Description: t.Description,
		Category:    string(category),
		Duration:    duration,
		BaseCost:    t.BaseCost,
		IsActive:    t.Active,
		CreatedBy:   t.CreatedBy,
	}
}

func treatmentFromModel(m *models.Treatment) *domain.Treatment {
	return &domain.Treatment{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		Category:    domain.ParseTreatmentCategory(m.Category),
		Duration:    m.Duration,
		BaseCost:    m.BaseCost,
		Active:      m.IsActive,
		CreatedBy:   m.CreatedBy,
		CreatedAt:   m.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   m.UpdatedAt.Format(time.RFC3339),
	}
}

func treatmentRecordFromModel(m *models.TreatmentRecord) *domain.TreatmentRecord {
	record := &domain.TreatmentRecord{
		ID:            m.ID,
		PatientID:     m.PatientID,
		TreatmentID:   m.TreatmentID,
		AppointmentID: m.AppointmentID,
		DentistID:     m.DentistID,
		Date:          m.TreatmentDate,
		Notes:         m.TreatmentNotes,
		ActualCost:    m.ActualCost,
		PaymentStatus: domain.ParsePaymentStatus(m.PaymentStatus),
		CreatedBy:     m.CreatedBy,
		CreatedAt:     m.CreatedAt.Format(time.RFC3339),
	}
	if m.CompletedAt != nil {
		record.CompletedAt = m.CompletedAt.Format(time.RFC3339)
	}
	return record
}

func treatmentRecordFromRow(row *repositories.TreatmentHistoryRow) *domain.TreatmentRecord {
	return &domain.TreatmentRecord{
		ID:            row.ID,
		PatientID:     row.PatientID,
		TreatmentID:   row.TreatmentID,
		AppointmentID: row.AppointmentID,
		DentistID:     row.DentistID,
		Date:          row.TreatmentDate,
		Notes:         row.TreatmentNotes,
		ActualCost:    row.ActualCost,
		PaymentStatus: domain.ParsePaymentStatus(row.PaymentStatus),
		TreatmentName: row.TreatmentName,
		DentistName:   row.DentistName,
	}
}
