package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"DentalDesk/domain"
	"DentalDesk/models"
	"DentalDesk/repositories"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type BillingService struct {
	repository *repositories.InvoiceRepository
	log        zerolog.Logger
}

func NewBillingService(repository *repositories.InvoiceRepository, log zerolog.Logger) *BillingService {
	return &BillingService{repository: repository, log: log.With().Str("service", "billing").Logger()}
}

// NewInvoiceNumber builds a unique invoice number of the form
// INV-YYYYMMDD-XXXXXX.
func NewInvoiceNumber(at time.Time) string {
	suffix := strings.ToUpper(uuid.New().String()[:6])
	return fmt.Sprintf("INV-%s-%s", at.Format("20060102"), suffix)
}

// CreateInvoice validates and inserts an invoice with its line items,
// returning the new id. A missing invoice number is generated; line totals
// are recomputed as quantity * unit price so the invariant always holds.
func (s *BillingService) CreateInvoice(ctx context.Context, invoice *domain.Invoice) (int64, error) {
	var violations []string
	if invoice.PatientID == 0 {
		violations = append(violations, "patient is required")
	}
	if invoice.InvoiceDate == "" {
		violations = append(violations, "invoice date is required")
	}
	if invoice.DueDate == "" {
		violations = append(violations, "due date is required")
	}
	for _, amount := range []struct {
		name  string
		value float64
	}{
		{"subtotal", invoice.Subtotal},
		{"tax amount", invoice.TaxAmount},
		{"discount amount", invoice.DiscountAmount},
		{"total amount", invoice.TotalAmount},
	} {
		if amount.value < 0 {
			violations = append(violations, amount.name+" cannot be negative")
		}
	}
	for i := range invoice.Items {
		if invoice.Items[i].Quantity < 1 {
			violations = append(violations, fmt.Sprintf("item %d: quantity must be at least 1", i+1))
		}
		if invoice.Items[i].UnitPrice < 0 {
			violations = append(violations, fmt.Sprintf("item %d: unit price cannot be negative", i+1))
		}
	}
	if len(violations) > 0 {
		return 0, &domain.ValidationError{Violations: violations}
	}

	number := invoice.InvoiceNumber
	if number == "" {
		number = NewInvoiceNumber(time.Now())
	}
	status := invoice.Status
	if status == "" {
		status = domain.InvoicePending
	}
	terms := invoice.PaymentTerms
	if terms == "" {
		terms = "Net 30"
	}

	model := &models.Invoice{
		InvoiceNumber:     number,
		PatientID:         invoice.PatientID,
		TreatmentRecordID: invoice.TreatmentRecordID,
		AppointmentID:     invoice.AppointmentID,
		Subtotal:          invoice.Subtotal,
		TaxAmount:         invoice.TaxAmount,
		DiscountAmount:    invoice.DiscountAmount,
		TotalAmount:       invoice.TotalAmount,
		AmountPaid:        0,
		BalanceDue:        invoice.TotalAmount,
		InvoiceDate:       invoice.InvoiceDate,
		DueDate:           invoice.DueDate,
		Status:            string(status),
		PaymentTerms:      terms,
		Notes:             invoice.Notes,
		CreatedBy:         invoice.CreatedBy,
	}
	items := make([]models.InvoiceItem, 0, len(invoice.Items))
	for _, item := range invoice.Items {
		items = append(items, models.InvoiceItem{
			TreatmentRecordID: item.TreatmentRecordID,
			Description:       item.Description,
			Quantity:          item.Quantity,
			UnitPrice:         item.UnitPrice,
			TotalPrice:        float64(item.Quantity) * item.UnitPrice,
		})
	}

	id, err := s.repository.Create(ctx, model, items)
	if err != nil {
		return 0, err
	}
	s.log.Info().Int64("id", id).Str("invoice_number", number).Msg("invoice created")
	return id, nil
}

func (s *BillingService) GetInvoice(ctx context.Context, id int64) (*domain.Invoice, error) {
	invoice, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return invoiceFromModel(invoice), nil
}

func (s *BillingService) GetInvoiceByNumber(ctx context.Context, number string) (*domain.Invoice, error) {
	invoice, err := s.repository.GetByNumber(ctx, number)
	if err != nil {
		return nil, err
	}
	return invoiceFromModel(invoice), nil
}

// ListInvoices returns invoices with patient names, newest first, filtered
// by patient or by status, never both.
func (s *BillingService) ListInvoices(ctx context.Context, patientID int64, status domain.InvoiceStatus) ([]*domain.Invoice, error) {
	if patientID != 0 && status != "" {
		return nil, ErrAmbiguousFilter
	}
	rows, err := s.repository.List(ctx, repositories.InvoiceFilter{PatientID: patientID, Status: string(status)})
	if err != nil {
		return nil, err
	}
	invoices := make([]*domain.Invoice, 0, len(rows))
	for i := range rows {
		invoices = append(invoices, invoiceFromRow(&rows[i]))
	}
	return invoices, nil
}

func (s *BillingService) UpdateInvoiceStatus(ctx context.Context, id int64, status domain.InvoiceStatus) error {
	return s.repository.UpdateStatus(ctx, id, string(domain.ParseInvoiceStatus(string(status))))
}

// AddPayment applies a payment to an invoice: the payment row is inserted
// and the invoice's amount_paid and balance_due move together atomically.
func (s *BillingService) AddPayment(ctx context.Context, payment *domain.Payment) (int64, error) {
	var violations []string
	if payment.InvoiceID == 0 {
		violations = append(violations, "invoice is required")
	}
	if payment.Amount <= 0 {
		violations = append(violations, "payment amount must be greater than 0")
	}
	if len(violations) > 0 {
		return 0, &domain.ValidationError{Violations: violations}
	}

	date := payment.Date
	if date == "" {
		date = time.Now().Format(domain.DateLayout)
	}
	reference := payment.Reference
	if reference == "" {
		reference = uuid.New().String()
	}
	model := &models.Payment{
		InvoiceID:        payment.InvoiceID,
		PaymentDate:      date,
		PaymentAmount:    payment.Amount,
		PaymentMethod:    string(domain.ParsePaymentMethod(string(payment.Method))),
		PaymentReference: reference,
		Notes:            payment.Notes,
		CreatedBy:        payment.CreatedBy,
	}
	id, err := s.repository.AddPayment(ctx, model)
	if err != nil {
		return 0, err
	}
	s.log.Info().Int64("invoice_id", payment.InvoiceID).Float64("amount", payment.Amount).
		Msg("payment applied")
	return id, nil
}

// ListPayments returns an invoice's payments, newest first.
func (s *BillingService) ListPayments(ctx context.Context, invoiceID int64) ([]*domain.Payment, error) {
	payments, err := s.repository.ListPayments(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	result := make([]*domain.Payment, 0, len(payments))
	for i := range payments {
		result = append(result, paymentFromModel(&payments[i]))
	}
	return result, nil
}

func invoiceFromModel(m *models.Invoice) *domain.Invoice {
	invoice := &domain.Invoice{
		ID:                m.ID,
		InvoiceNumber:     m.InvoiceNumber,
		PatientID:         m.PatientID,
		TreatmentRecordID: m.TreatmentRecordID,
		AppointmentID:     m.AppointmentID,
		Subtotal:          m.Subtotal,
		TaxAmount:         m.TaxAmount,
		DiscountAmount:    m.DiscountAmount,
		TotalAmount:       m.TotalAmount,
		AmountPaid:        m.AmountPaid,
		BalanceDue:        m.BalanceDue,
		InvoiceDate:       m.InvoiceDate,
		DueDate:           m.DueDate,
		Status:            domain.ParseInvoiceStatus(m.Status),
		PaymentTerms:      m.PaymentTerms,
		Notes:             m.Notes,
		CreatedBy:         m.CreatedBy,
		CreatedAt:         m.CreatedAt.Format(time.RFC3339),
	}
	for _, item := range m.Items {
		invoice.Items = append(invoice.Items, domain.InvoiceItem{
			ID:                item.ID,
			InvoiceID:         item.InvoiceID,
			TreatmentRecordID: item.TreatmentRecordID,
			Description:       item.Description,
			Quantity:          item.Quantity,
			UnitPrice:         item.UnitPrice,
			TotalPrice:        item.TotalPrice,
		})
	}
	return invoice
}

func invoiceFromRow(row *repositories.InvoiceRow) *domain.Invoice {
	return &domain.Invoice{
		ID:             row.ID,
		InvoiceNumber:  row.InvoiceNumber,
		PatientID:      row.PatientID,
		Subtotal:       row.Subtotal,
		TaxAmount:      row.TaxAmount,
		DiscountAmount: row.DiscountAmount,
		TotalAmount:    row.TotalAmount,
		AmountPaid:     row.AmountPaid,
		BalanceDue:     row.BalanceDue,
		InvoiceDate:    row.InvoiceDate,
		DueDate:        row.DueDate,
		Status:         domain.ParseInvoiceStatus(row.Status),
		PatientName:    strings.TrimSpace(row.FirstName + " " + row.LastName),
	}
}

func paymentFromModel(m *models.Payment) *domain.Payment {
	return &domain.Payment{
		ID:        m.ID,
		InvoiceID: m.InvoiceID,
		Date:      m.PaymentDate,
		Amount:    m.PaymentAmount,
		Method:    domain.ParsePaymentMethod(m.PaymentMethod),
		Reference: m.PaymentReference,
		Notes:     m.Notes,
		CreatedBy: m.CreatedBy,
		CreatedAt: m.CreatedAt.Format(time.RFC3339),
	}
}
