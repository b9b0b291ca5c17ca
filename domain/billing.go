package domain

// TreatmentRecord links a performed treatment to a patient, optionally to
// the appointment it happened in and the dentist who performed it.
type TreatmentRecord struct {
	ID            int64
	PatientID     int64
	TreatmentID   int64
	AppointmentID *int64
	DentistID     *int64
	Date          string
	Notes         string
	ActualCost    float64
	PaymentStatus PaymentStatus
	CompletedAt   string
	CreatedBy     *int64
	CreatedAt     string

	// Display fields populated by joined history listings.
	TreatmentName string
	DentistName   string
}

// ToRecord serialises the treatment record to a flat field mapping.
func (t *TreatmentRecord) ToRecord() Record {
	return Record{
		"id":              t.ID,
		"patient_id":      t.PatientID,
		"treatment_id":    t.TreatmentID,
		"appointment_id":  t.AppointmentID,
		"dentist_id":      t.DentistID,
		"treatment_date":  t.Date,
		"treatment_notes": t.Notes,
		"actual_cost":     t.ActualCost,
		"payment_status":  string(t.PaymentStatus),
		"completed_at":    t.CompletedAt,
		"created_by":      t.CreatedBy,
		"created_at":      t.CreatedAt,
		"treatment_name":  t.TreatmentName,
		"dentist_name":    t.DentistName,
	}
}

// TreatmentRecordFromRecord builds a treatment record from a flat mapping.
func TreatmentRecordFromRecord(r Record) *TreatmentRecord {
	return &TreatmentRecord{
		ID:            recInt64(r, "id"),
		PatientID:     recInt64(r, "patient_id"),
		TreatmentID:   recInt64(r, "treatment_id"),
		AppointmentID: recInt64Ptr(r, "appointment_id"),
		DentistID:     recInt64Ptr(r, "dentist_id"),
		Date:          recString(r, "treatment_date"),
		Notes:         recString(r, "treatment_notes"),
		ActualCost:    recFloat64(r, "actual_cost"),
		PaymentStatus: ParsePaymentStatus(recString(r, "payment_status")),
		CompletedAt:   recString(r, "completed_at"),
		CreatedBy:     recInt64Ptr(r, "created_by"),
		CreatedAt:     recString(r, "created_at"),
		TreatmentName: recString(r, "treatment_name"),
		DentistName:   recString(r, "dentist_name"),
	}
}

// Invoice is the caller-facing shape of a bill. BalanceDue is derived and
// always equals TotalAmount - AmountPaid after any payment application.
type Invoice struct {
	ID                int64
	InvoiceNumber     string
	PatientID         int64
	TreatmentRecordID *int64
	AppointmentID     *int64
	Subtotal          float64
	TaxAmount         float64
	DiscountAmount    float64
	TotalAmount       float64
	AmountPaid        float64
	BalanceDue        float64
	InvoiceDate       string
	DueDate           string
	Status            InvoiceStatus
	PaymentTerms      string
	Notes             string
	CreatedBy         *int64
	CreatedAt         string

	Items []InvoiceItem

	// Display field populated by joined listings.
	PatientName string
}

// ToRecord serialises the invoice (items excluded) to a flat mapping.
func (i *Invoice) ToRecord() Record {
	return Record{
		"id":                  i.ID,
		"invoice_number":      i.InvoiceNumber,
		"patient_id":          i.PatientID,
		"treatment_record_id": i.TreatmentRecordID,
		"appointment_id":      i.AppointmentID,
		"subtotal":            i.Subtotal,
		"tax_amount":          i.TaxAmount,
		"discount_amount":     i.DiscountAmount,
		"total_amount":        i.TotalAmount,
		"amount_paid":         i.AmountPaid,
		"balance_due":         i.BalanceDue,
		"invoice_date":        i.InvoiceDate,
		"due_date":            i.DueDate,
		"status":              string(i.Status),
		"payment_terms":       i.PaymentTerms,
		"notes":               i.Notes,
		"created_by":          i.CreatedBy,
		"created_at":          i.CreatedAt,
		"patient_name":        i.PatientName,
	}
}

// InvoiceFromRecord builds an invoice from a flat field mapping.
func InvoiceFromRecord(r Record) *Invoice {
	return &Invoice{
		ID:                recInt64(r, "id"),
		InvoiceNumber:     recString(r, "invoice_number"),
		PatientID:         recInt64(r, "patient_id"),
		TreatmentRecordID: recInt64Ptr(r, "treatment_record_id"),
		AppointmentID:     recInt64Ptr(r, "appointment_id"),
		Subtotal:          recFloat64(r, "subtotal"),
		TaxAmount:         recFloat64(r, "tax_amount"),
		DiscountAmount:    recFloat64(r, "discount_amount"),
		TotalAmount:       recFloat64(r, "total_amount"),
		AmountPaid:        recFloat64(r, "amount_paid"),
		BalanceDue:        recFloat64(r, "balance_due"),
		InvoiceDate:       recString(r, "invoice_date"),
		DueDate:           recString(r, "due_date"),
		Status:            ParseInvoiceStatus(recString(r, "status")),
		PaymentTerms:      recString(r, "payment_terms"),
		Notes:             recString(r, "notes"),
		CreatedBy:         recInt64Ptr(r, "created_by"),
		CreatedAt:         recString(r, "created_at"),
		PatientName:       recString(r, "patient_name"),
	}
}

// InvoiceItem is a single line on an invoice. TotalPrice must equal
// Quantity * UnitPrice.
type InvoiceItem struct {
	ID                int64
	InvoiceID         int64
	TreatmentRecordID *int64
	Description       string
	Quantity          int
	UnitPrice         float64
	TotalPrice        float64
}

// Payment is a single payment applied against an invoice.
type Payment struct {
	ID        int64
	InvoiceID int64
	Date      string
	Amount    float64
	Method    PaymentMethod
	Reference string
	Notes     string
	CreatedBy *int64
	CreatedAt string
}

// ToRecord serialises the payment to a flat field mapping.
func (p *Payment) ToRecord() Record {
	return Record{
		"id":                p.ID,
		"invoice_id":        p.InvoiceID,
		"payment_date":      p.Date,
		"payment_amount":    p.Amount,
		"payment_method":    string(p.Method),
		"payment_reference": p.Reference,
		"notes":             p.Notes,
		"created_by":        p.CreatedBy,
		"created_at":        p.CreatedAt,
	}
}

// PaymentFromRecord builds a payment from a flat field mapping.
func PaymentFromRecord(r Record) *Payment {
	return &Payment{
		ID:        recInt64(r, "id"),
		InvoiceID: recInt64(r, "invoice_id"),
		Date:      recString(r, "payment_date"),
		Amount:    recFloat64(r, "payment_amount"),
		Method:    ParsePaymentMethod(recString(r, "payment_method")),
		Reference: recString(r, "payment_reference"),
		Notes:     recString(r, "notes"),
		CreatedBy: recInt64Ptr(r, "created_by"),
		CreatedAt: recString(r, "created_at"),
	}
}
