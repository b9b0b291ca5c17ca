package repositories

import (
	"context"

	"DentalDesk/database"
	"DentalDesk/models"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// InvoiceRow is an invoice joined with the patient's display name.
type InvoiceRow struct {
	ID             int64   `gorm:"column:id"`
	InvoiceNumber  string  `gorm:"column:invoice_number"`
	PatientID      int64   `gorm:"column:patient_id"`
	Subtotal       float64 `gorm:"column:subtotal"`
	TaxAmount      float64 `gorm:"column:tax_amount"`
	DiscountAmount float64 `gorm:"column:discount_amount"`
	TotalAmount    float64 `gorm:"column:total_amount"`
	AmountPaid     float64 `gorm:"column:amount_paid"`
	BalanceDue     float64 `gorm:"column:balance_due"`
	InvoiceDate    string  `gorm:"column:invoice_date"`
	DueDate        string  `gorm:"column:due_date"`
	Status         string  `gorm:"column:status"`
	FirstName      string  `gorm:"column:first_name"`
	LastName       string  `gorm:"column:last_name"`
}

// InvoiceFilter narrows a listing. PatientID and Status are mutually
// exclusive; both zero-valued returns everything.
type InvoiceFilter struct {
	PatientID int64
	Status    string
}

type InvoiceRepository struct {
	db  *gorm.DB
	log zerolog.Logger
}

func NewInvoiceRepository(db *gorm.DB, log zerolog.Logger) *InvoiceRepository {
	return &InvoiceRepository{db: db, log: log.With().Str("repository", "invoices").Logger()}
}

// Create inserts an invoice together with its line items in one
// transaction and returns the invoice's new identifier.
func (r *InvoiceRepository) Create(ctx context.Context, invoice *models.Invoice, items []models.InvoiceItem) (int64, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(invoice).Error; err != nil {
			return err
		}
		for i := range items {
			items[i].InvoiceID = invoice.ID
			if err := tx.Create(&items[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		r.log.Error().Err(err).Str("invoice_number", invoice.InvoiceNumber).Msg("failed to create invoice")
		return 0, database.TranslateError(err)
	}
	return invoice.ID, nil
}

func (r *InvoiceRepository) GetByID(ctx context.Context, id int64) (*models.Invoice, error) {
	var invoice models.Invoice
	if err := r.db.WithContext(ctx).Preload("Items").First(&invoice, id).Error; err != nil {
		return nil, database.TranslateError(err)
	}
	return &invoice, nil
}

func (r *InvoiceRepository) GetByNumber(ctx context.Context, number string) (*models.Invoice, error) {
	var invoice models.Invoice
	err := r.db.WithContext(ctx).Preload("Items").
		Where("invoice_number = ?", number).
		First(&invoice).Error
	if err != nil {
		return nil, database.TranslateError(err)
	}
	return &invoice, nil
}

// List returns invoices joined with the patient name, newest invoice date
// first, optionally filtered by patient or status.
func (r *InvoiceRepository) List(ctx context.Context, filter InvoiceFilter) ([]InvoiceRow, error) {
	query := r.db.WithContext(ctx).
		Table("invoices i").
		Select("i.id, i.invoice_number, i.patient_id, i.subtotal, i.tax_amount, i.discount_amount, " +
			"i.total_amount, i.amount_paid, i.balance_due, i.invoice_date, i.due_date, i.status, " +
			"p.first_name, p.last_name").
		Joins("JOIN patients p ON i.patient_id = p.id")

	switch {
	case filter.PatientID != 0:
		query = query.Where("i.patient_id = ?", filter.PatientID)
	case filter.Status != "":
		query = query.Where("i.status = ?", filter.Status)
	}

	var rows []InvoiceRow
	if err := query.Order("i.invoice_date DESC").Scan(&rows).Error; err != nil {
		r.log.Error().Err(err).Msg("failed to list invoices")
		return nil, database.TranslateError(err)
	}
	return rows, nil
}

func (r *InvoiceRepository) UpdateStatus(ctx context.Context, id int64, status string) error {
	result := r.db.WithContext(ctx).Model(&models.Invoice{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		r.log.Error().Err(result.Error).Int64("id", id).Str("status", status).Msg("failed to update invoice status")
		return database.TranslateError(result.Error)
	}
	return rowsAffected(result)
}

// AddPayment inserts the payment row and applies it to the owning invoice
// in a single transaction: amount_paid grows by the payment amount and
// balance_due is recomputed as total_amount - amount_paid. Both writes
// succeed or neither does.
func (r *InvoiceRepository) AddPayment(ctx context.Context, payment *models.Payment) (int64, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(payment).Error; err != nil {
			return err
		}
		result := tx.Model(&models.Invoice{}).
			Where("id = ?", payment.InvoiceID).
			UpdateColumns(map[string]interface{}{
				"amount_paid": gorm.Expr("amount_paid + ?", payment.PaymentAmount),
				"balance_due": gorm.Expr("total_amount - (amount_paid + ?)", payment.PaymentAmount),
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		// Roll the invoice to paid once the balance reaches zero.
		return tx.Model(&models.Invoice{}).
			Where("id = ? AND balance_due <= 0 AND status NOT IN ('cancelled', 'refunded')", payment.InvoiceID).
			UpdateColumn("status", "paid").Error
	})
	if err != nil {
		r.log.Error().Err(err).Int64("invoice_id", payment.InvoiceID).Msg("failed to apply payment")
		return 0, database.TranslateError(err)
	}
	return payment.ID, nil
}

// ListPayments returns an invoice's payments newest first.
func (r *InvoiceRepository) ListPayments(ctx context.Context, invoiceID int64) ([]models.Payment, error) {
	var payments []models.Payment
	err := r.db.WithContext(ctx).
		Where("invoice_id = ?", invoiceID).
		Order("payment_date DESC, id DESC").
		Find(&payments).Error
	if err != nil {
		r.log.Error().Err(err).Int64("invoice_id", invoiceID).Msg("failed to list payments")
		return nil, database.TranslateError(err)
	}
	return payments, nil
}
