package services

import (
	"context"
	"testing"

	"DentalDesk/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestClinicVisitFlow walks a full visit through every service: a new
// patient is booked, seen, treated, invoiced and partially paid.
func TestClinicVisitFlow(t *testing.T) {
	reg := newTestRegistry(t)
	ctx := context.Background()

	patientID, err := reg.Patients.Create(ctx, &domain.Patient{
		FirstName:   "Jane",
		LastName:    "Doe",
		DateOfBirth: "1990-05-14",
		Phone:       "+15551234567",
	})
	require.NoError(t, err)

	appointmentID, err := reg.Appointments.Create(ctx, &domain.Appointment{
		PatientID: patientID,
		Date:      tomorrow(),
		Time:      "09:00",
		Duration:  30,
		Type:      domain.TypeCheckup,
	})
	require.NoError(t, err)

	appointment, err := reg.Appointments.GetByID(ctx, appointmentID)
	require.NoError(t, err)
	require.Equal(t, domain.StatusScheduled, appointment.Status)
	assert.Equal(t, "09:30", appointment.EndTime())

	require.NoError(t, reg.Appointments.TransitionStatus(ctx, appointmentID, domain.StatusConfirmed))
	require.NoError(t, reg.Appointments.TransitionStatus(ctx, appointmentID, domain.StatusCompleted))

	catalog, err := reg.Treatments.GetAll(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, catalog)

	recordID, err := reg.Treatments.RecordTreatment(ctx, &domain.TreatmentRecord{
		PatientID:     patientID,
		TreatmentID:   catalog[0].ID,
		AppointmentID: &appointmentID,
		Date:          appointment.Date,
		ActualCost:    150.00,
	})
	require.NoError(t, err)

	invoiceID, err := reg.Billing.CreateInvoice(ctx, &domain.Invoice{
		PatientID:         patientID,
		TreatmentRecordID: &recordID,
		Subtotal:          150.00,
		TotalAmount:       150.00,
		InvoiceDate:       appointment.Date,
		DueDate:           timeNowPlusDays(31),
		Items: []domain.InvoiceItem{
			{TreatmentRecordID: &recordID, Description: catalog[0].Name, Quantity: 1, UnitPrice: 150.00},
		},
	})
	require.NoError(t, err)

	_, err = reg.Billing.AddPayment(ctx, &domain.Payment{
		InvoiceID: invoiceID,
		Amount:    100.00,
		Method:    domain.MethodCash,
	})
	require.NoError(t, err)

	invoice, err := reg.Billing.GetInvoice(ctx, invoiceID)
	require.NoError(t, err)
	assert.Equal(t, 100.00, invoice.AmountPaid)
	assert.Equal(t, 50.00, invoice.BalanceDue)
	assert.Equal(t, domain.InvoicePending, invoice.Status)

	byNumber, err := reg.Billing.GetInvoiceByNumber(ctx, invoice.InvoiceNumber)
	require.NoError(t, err)
	assert.Equal(t, invoiceID, byNumber.ID)

	history, err := reg.Treatments.HistoryByPatient(ctx, patientID)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, catalog[0].Name, history[0].TreatmentName)
	assert.Equal(t, 150.00, history[0].ActualCost)
}
