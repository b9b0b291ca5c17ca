package services

import (
	"context"
	"regexp"
	"testing"
	"time"

	"DentalDesk/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInvoiceNumberFormat(t *testing.T) {
	at := time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)
	number := NewInvoiceNumber(at)
	assert.Regexp(t, regexp.MustCompile(`^INV-20260829-[0-9A-F]{6}$`), number)
	assert.NotEqual(t, number, NewInvoiceNumber(at))
}

func TestCreateInvoiceDefaults(t *testing.T) {
	reg := newTestRegistry(t)
	ctx := context.Background()

	patientID := createTestPatient(t, reg, "Jane", "Doe")
	id, err := reg.Billing.CreateInvoice(ctx, &domain.Invoice{
		PatientID:   patientID,
		Subtotal:    300,
		TotalAmount: 300,
		InvoiceDate: "2026-08-29",
		DueDate:     "2026-09-28",
		Items: []domain.InvoiceItem{
			{Description: "Composite Filling", Quantity: 2, UnitPrice: 150, TotalPrice: 9999}, // recomputed
		},
	})
	require.NoError(t, err)

	got, err := reg.Billing.GetInvoice(ctx, id)
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^INV-\d{8}-[0-9A-F]{6}$`), got.InvoiceNumber)
	assert.Equal(t, domain.InvoicePending, got.Status)
	assert.Equal(t, "Net 30", got.PaymentTerms)
	assert.Equal(t, 0.0, got.AmountPaid)
	assert.Equal(t, 300.0, got.BalanceDue)
	require.Len(t, got.Items, 1)
	assert.Equal(t, 300.0, got.Items[0].TotalPrice)
}

func TestCreateInvoiceValidation(t *testing.T) {
	reg := newTestRegistry(t)

	var verr *domain.ValidationError
	_, err := reg.Billing.CreateInvoice(context.Background(), &domain.Invoice{
		Subtotal: -1,
		Items:    []domain.InvoiceItem{{Description: "x", Quantity: 0, UnitPrice: -2}},
	})
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Violations, "patient is required")
	assert.Contains(t, verr.Violations, "invoice date is required")
	assert.Contains(t, verr.Violations, "due date is required")
	assert.Contains(t, verr.Violations, "subtotal cannot be negative")
	assert.Contains(t, verr.Violations, "item 1: quantity must be at least 1")
	assert.Contains(t, verr.Violations, "item 1: unit price cannot be negative")
}

func createTestInvoice(t *testing.T, reg *Registry, patientID int64, total float64) int64 {
	t.Helper()
	id, err := reg.Billing.CreateInvoice(context.Background(), &domain.Invoice{
		PatientID:   patientID,
		Subtotal:    total,
		TotalAmount: total,
		InvoiceDate: "2026-08-29",
		DueDate:     "2026-09-28",
	})
	require.NoError(t, err)
	return id
}

func TestAddPaymentKeepsTotalsConsistent(t *testing.T) {
	reg := newTestRegistry(t)
	ctx := context.Background()

	patientID := createTestPatient(t, reg, "Jane", "Doe")
	invoiceID := createTestInvoice(t, reg, patientID, 500)

	// After every payment amount_paid equals the running sum and
	// balance_due equals total minus that sum.
	var paid float64
	for _, amount := range []float64{100, 150, 50} {
		_, err := reg.Billing.AddPayment(ctx, &domain.Payment{
			InvoiceID: invoiceID,
			Amount:    amount,
			Method:    domain.MethodCash,
		})
		require.NoError(t, err)
		paid += amount

		invoice, err := reg.Billing.GetInvoice(ctx, invoiceID)
		require.NoError(t, err)
		assert.Equal(t, paid, invoice.AmountPaid)
		assert.Equal(t, 500-paid, invoice.BalanceDue)
		assert.Equal(t, domain.InvoicePending, invoice.Status)
	}

	payments, err := reg.Billing.ListPayments(ctx, invoiceID)
	require.NoError(t, err)
	assert.Len(t, payments, 3)
	for _, p := range payments {
		assert.NotEmpty(t, p.Reference)
		assert.NotEmpty(t, p.Date)
	}
}

func TestAddPaymentRollsInvoiceToPaid(t *testing.T) {
	reg := newTestRegistry(t)
	ctx := context.Background()

	patientID := createTestPatient(t, reg, "Jane", "Doe")
	invoiceID := createTestInvoice(t, reg, patientID, 200)

	_, err := reg.Billing.AddPayment(ctx, &domain.Payment{InvoiceID: invoiceID, Amount: 200, Method: domain.MethodCreditCard})
	require.NoError(t, err)

	invoice, err := reg.Billing.GetInvoice(ctx, invoiceID)
	require.NoError(t, err)
	assert.Equal(t, 0.0, invoice.BalanceDue)
	assert.Equal(t, domain.InvoicePaid, invoice.Status)
}

func TestAddPaymentValidation(t *testing.T) {
	reg := newTestRegistry(t)

	var verr *domain.ValidationError
	_, err := reg.Billing.AddPayment(context.Background(), &domain.Payment{})
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Violations, "invoice is required")
	assert.Contains(t, verr.Violations, "payment amount must be greater than 0")
}

func TestAddPaymentUnknownInvoice(t *testing.T) {
	reg := newTestRegistry(t)

	_, err := reg.Billing.AddPayment(context.Background(), &domain.Payment{
		InvoiceID: 99999,
		Amount:    50,
		Method:    domain.MethodCash,
	})
	var cv *domain.ConstraintViolationError
	require.ErrorAs(t, err, &cv)
	assert.Equal(t, domain.ConstraintForeignKey, cv.Kind)

	// The failed application left no stray payment rows behind.
	payments, listErr := reg.Billing.ListPayments(context.Background(), 99999)
	require.NoError(t, listErr)
	assert.Empty(t, payments)
}

func TestGetInvoiceByNumber(t *testing.T) {
	reg := newTestRegistry(t)
	ctx := context.Background()

	patientID := createTestPatient(t, reg, "Jane", "Doe")
	id := createTestInvoice(t, reg, patientID, 150)

	created, err := reg.Billing.GetInvoice(ctx, id)
	require.NoError(t, err)

	got, err := reg.Billing.GetInvoiceByNumber(ctx, created.InvoiceNumber)
	require.NoError(t, err)
	assert.Equal(t, id, got.ID)

	_, err = reg.Billing.GetInvoiceByNumber(ctx, "INV-00000000-XXXXXX")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListInvoices(t *testing.T) {
	reg := newTestRegistry(t)
	ctx := context.Background()

	janeID := createTestPatient(t, reg, "Jane", "Doe")
	aliceID := createTestPatient(t, reg, "Alice", "Smith")

	janeInvoice := createTestInvoice(t, reg, janeID, 100)
	createTestInvoice(t, reg, aliceID, 250)
	require.NoError(t, reg.Billing.UpdateInvoiceStatus(ctx, janeInvoice, domain.InvoiceSent))

	byPatient, err := reg.Billing.ListInvoices(ctx, janeID, "")
	require.NoError(t, err)
	require.Len(t, byPatient, 1)
	assert.Equal(t, "Jane Doe", byPatient[0].PatientName)

	byStatus, err := reg.Billing.ListInvoices(ctx, 0, domain.InvoiceSent)
	require.NoError(t, err)
	require.Len(t, byStatus, 1)
	assert.Equal(t, janeInvoice, byStatus[0].ID)

	everything, err := reg.Billing.ListInvoices(ctx, 0, "")
	require.NoError(t, err)
	assert.Len(t, everything, 2)

	_, err = reg.Billing.ListInvoices(ctx, janeID, domain.InvoiceSent)
	assert.ErrorIs(t, err, ErrAmbiguousFilter)
}

func TestUpdateInvoiceStatusUnknownID(t *testing.T) {
	reg := newTestRegistry(t)
	err := reg.Billing.UpdateInvoiceStatus(context.Background(), 99999, domain.InvoicePaid)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
