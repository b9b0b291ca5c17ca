package services

import (
	"context"
	"testing"
	"time"

	"DentalDesk/database"
	"DentalDesk/domain"
	"DentalDesk/repositories"
	"DentalDesk/utils"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// newTestRegistry wires every service against a fresh in-memory store, the
// same way the process entry point does against the on-disk file.
func newTestRegistry(t *testing.T) *Registry {
	t.Helper()
	db := newTestDB(t)
	log := zerolog.Nop()
	return NewRegistry(
		NewUserService(repositories.NewUserRepository(db, log), log),
		NewPatientService(repositories.NewPatientRepository(db, log), log),
		NewAppointmentService(repositories.NewAppointmentRepository(db, log), log),
		NewTreatmentService(repositories.NewTreatmentRepository(db, log), log),
		NewBillingService(repositories.NewInvoiceRepository(db, log), log),
	)
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.InitDB(context.Background(), "file::memory:?_pragma=foreign_keys(1)", utils.HashPassword)
	require.NoError(t, err)
	return db
}

func createTestPatient(t *testing.T, reg *Registry, firstName, lastName string) int64 {
	t.Helper()
	id, err := reg.Patients.Create(context.Background(), &domain.Patient{
		FirstName: firstName,
		LastName:  lastName,
	})
	require.NoError(t, err)
	return id
}

func createTestAppointment(t *testing.T, reg *Registry, patientID int64) int64 {
	t.Helper()
	id, err := reg.Appointments.Create(context.Background(), &domain.Appointment{
		PatientID: patientID,
		Date:      tomorrow(),
		Time:      "09:00",
		Duration:  30,
		Type:      domain.TypeCheckup,
	})
	require.NoError(t, err)
	return id
}

func tomorrow() string {
	return timeNowPlusDays(1)
}

func timeNowPlusDays(days int) string {
	return time.Now().AddDate(0, 0, days).Format(domain.DateLayout)
}
