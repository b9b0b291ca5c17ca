package services

import (
	"context"
	"testing"

	"DentalDesk/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPatientRoundTrip(t *testing.T) {
	reg := newTestRegistry(t)
	ctx := context.Background()

	submitted := &domain.Patient{
		FirstName:            "Jane",
		LastName:             "Doe",
		DateOfBirth:          "1990-05-14",
		Gender:               domain.GenderFemale,
		Phone:                "+15551234567",
		Email:                "jane.doe@example.com",
		Address:              "1 Main St",
		City:                 "Springfield",
		State:                "IL",
		PostalCode:           "62701",
		EmergencyName:        "John Doe",
		EmergencyPhone:       "+15557654321",
		EmergencyRelation:    "spouse",
		MedicalHistory:       "none",
		Allergies:            "penicillin",
		InsuranceProvider:    "Acme Dental",
		InsuranceNumber:      "ACM-1234",
		InsuranceGroupNumber: "GRP-9",
	}

	id, err := reg.Patients.Create(ctx, submitted)
	require.NoError(t, err)
	require.NotZero(t, id)

	got, err := reg.Patients.GetByID(ctx, id)
	require.NoError(t, err)

	assert.Equal(t, submitted.FirstName, got.FirstName)
	assert.Equal(t, submitted.LastName, got.LastName)
	assert.Equal(t, submitted.DateOfBirth, got.DateOfBirth)
	assert.Equal(t, submitted.Gender, got.Gender)
	assert.Equal(t, submitted.Phone, got.Phone)
	assert.Equal(t, submitted.Email, got.Email)
	assert.Equal(t, submitted.Address, got.Address)
	assert.Equal(t, submitted.City, got.City)
	assert.Equal(t, submitted.State, got.State)
	assert.Equal(t, submitted.PostalCode, got.PostalCode)
	assert.Equal(t, submitted.EmergencyName, got.EmergencyName)
	assert.Equal(t, submitted.EmergencyPhone, got.EmergencyPhone)
	assert.Equal(t, submitted.EmergencyRelation, got.EmergencyRelation)
	assert.Equal(t, submitted.MedicalHistory, got.MedicalHistory)
	assert.Equal(t, submitted.Allergies, got.Allergies)
	assert.Equal(t, submitted.InsuranceProvider, got.InsuranceProvider)
	assert.Equal(t, submitted.InsuranceNumber, got.InsuranceNumber)
	assert.Equal(t, submitted.InsuranceGroupNumber, got.InsuranceGroupNumber)
	assert.True(t, got.Active)
}

func TestPatientCreateValidation(t *testing.T) {
	reg := newTestRegistry(t)

	var verr *domain.ValidationError
	_, err := reg.Patients.Create(context.Background(), &domain.Patient{Email: "not-an-email"})
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Violations, "first name is required")
	assert.Contains(t, verr.Violations, "last name is required")
	assert.Contains(t, verr.Violations, "invalid email format")
}

func TestPatientSearch(t *testing.T) {
	reg := newTestRegistry(t)
	ctx := context.Background()

	createTestPatient(t, reg, "Jane", "Doe")
	createTestPatient(t, reg, "John", "Doering")
	createTestPatient(t, reg, "Alice", "Smith")

	names := func(patients []*domain.Patient) []string {
		out := make([]string, 0, len(patients))
		for _, p := range patients {
			out = append(out, p.FullName())
		}
		return out
	}

	all, err := reg.Patients.Search(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"Jane Doe", "John Doering", "Alice Smith"}, names(all))

	matched, err := reg.Patients.Search(ctx, "doe")
	require.NoError(t, err)
	assert.Equal(t, []string{"Jane Doe", "John Doering"}, names(matched))

	// Matching is case-insensitive: any casing of the term is equivalent.
	upper, err := reg.Patients.Search(ctx, "DOE")
	require.NoError(t, err)
	assert.Equal(t, names(matched), names(upper))

	// Every filtered result appears in the unfiltered listing.
	for _, name := range names(matched) {
		assert.Contains(t, names(all), name)
	}

	byFirst, err := reg.Patients.Search(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, []string{"Alice Smith"}, names(byFirst))

	none, err := reg.Patients.Search(ctx, "zzz")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestPatientDeactivateHidesFromSearch(t *testing.T) {
	reg := newTestRegistry(t)
	ctx := context.Background()

	id := createTestPatient(t, reg, "Jane", "Doe")
	require.NoError(t, reg.Patients.Deactivate(ctx, id))

	results, err := reg.Patients.Search(ctx, "")
	require.NoError(t, err)
	assert.Empty(t, results)

	// The row survives and stays reachable by id.
	got, err := reg.Patients.GetByID(ctx, id)
	require.NoError(t, err)
	assert.False(t, got.Active)
}

func TestPatientUpdate(t *testing.T) {
	reg := newTestRegistry(t)
	ctx := context.Background()

	id := createTestPatient(t, reg, "Jane", "Doe")

	got, err := reg.Patients.GetByID(ctx, id)
	require.NoError(t, err)
	got.Phone = "+15559876543"
	got.City = "Shelbyville"
	require.NoError(t, reg.Patients.Update(ctx, got))

	updated, err := reg.Patients.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "+15559876543", updated.Phone)
	assert.Equal(t, "Shelbyville", updated.City)

	missing := &domain.Patient{ID: 99999, FirstName: "No", LastName: "One"}
	assert.ErrorIs(t, reg.Patients.Update(ctx, missing), domain.ErrNotFound)
}

func TestPatientDelete(t *testing.T) {
	reg := newTestRegistry(t)
	ctx := context.Background()

	id := createTestPatient(t, reg, "Jane", "Doe")
	require.NoError(t, reg.Patients.Delete(ctx, id))

	_, err := reg.Patients.GetByID(ctx, id)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, reg.Patients.Delete(ctx, id), domain.ErrNotFound)
}
