package models

import (
	"time"

	"gorm.io/gorm"
)

// Patient model
type Patient struct {
	ID                   int64     `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	FirstName            string    `gorm:"not null;index:idx_patients_name,priority:2;column:first_name" json:"first_name"`
	LastName             string    `gorm:"not null;index:idx_patients_name,priority:1;column:last_name" json:"last_name"`
	DateOfBirth          string    `gorm:"column:date_of_birth" json:"date_of_birth"`
	Gender               string    `gorm:"check:gender IN ('male', 'female', 'other', 'prefer_not_to_say', '');column:gender" json:"gender"`
	Phone                string    `gorm:"column:phone" json:"phone"`
	Email                string    `gorm:"column:email" json:"email"`
	Address              string    `gorm:"column:address" json:"address"`
	City                 string    `gorm:"column:city" json:"city"`
	State                string    `gorm:"column:state" json:"state"`
	PostalCode           string    `gorm:"column:postal_code" json:"postal_code"`
	EmergencyName        string    `gorm:"column:emergency_contact_name" json:"emergency_contact_name"`
	EmergencyPhone       string    `gorm:"column:emergency_contact_phone" json:"emergency_contact_phone"`
	EmergencyRelation    string    `gorm:"column:emergency_contact_relationship" json:"emergency_contact_relationship"`
	MedicalHistory       string    `gorm:"column:medical_history" json:"medical_history"`
	Allergies            string    `gorm:"column:allergies" json:"allergies"`
	InsuranceProvider    string    `gorm:"column:insurance_provider" json:"insurance_provider"`
	InsuranceNumber      string    `gorm:"column:insurance_number" json:"insurance_number"`
	InsuranceGroupNumber string    `gorm:"column:insurance_group_number" json:"insurance_group_number"`
	IsActive             bool      `gorm:"not null;default:true;column:is_active" json:"is_active"`
	CreatedBy            *int64    `gorm:"column:created_by" json:"created_by"`
	Creator              *User     `gorm:"foreignKey:CreatedBy;references:ID" json:"-"`
	CreatedAt            time.Time `gorm:"autoCreateTime;column:created_at" json:"created_at"`
	UpdatedAt            time.Time `gorm:"autoUpdateTime;column:updated_at" json:"updated_at"`

	Appointments     []Appointment     `gorm:"foreignKey:PatientID;references:ID" json:"-"`
	TreatmentRecords []TreatmentRecord `gorm:"foreignKey:PatientID;references:ID" json:"-"`
	Invoices         []Invoice         `gorm:"foreignKey:PatientID;references:ID" json:"-"`
}

func (Patient) TableName() string {
	return "patients"
}

// Appointment model
type Appointment struct {
	ID              int64     `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	PatientID       int64     `gorm:"not null;index:idx_appointments_patient;column:patient_id" json:"patient_id"`
	DentistID       *int64    `gorm:"column:dentist_id" json:"dentist_id"`
	AppointmentDate string    `gorm:"not null;index:idx_appointments_date;column:appointment_date" json:"appointment_date"`
	AppointmentTime string    `gorm:"not null;column:appointment_time" json:"appointment_time"`
	Duration        int       `gorm:"not null;default:60;column:duration" json:"duration"`
	AppointmentType string    `gorm:"not null;default:checkup;check:appointment_type IN ('checkup', 'cleaning', 'filling', 'extraction', 'root_canal', 'crown', 'consultation', 'emergency', 'follow_up');column:appointment_type" json:"appointment_type"`
	TreatmentPlan   string    `gorm:"column:treatment_plan" json:"treatment_plan"`
	Notes           string    `gorm:"column:notes" json:"notes"`
	Status          string    `gorm:"not null;default:scheduled;check:status IN ('scheduled', 'confirmed', 'in_progress', 'completed', 'cancelled', 'no_show');column:status" json:"status"`
	CreatedBy       *int64    `gorm:"column:created_by" json:"created_by"`
	CreatedAt       time.Time `gorm:"autoCreateTime;column:created_at" json:"created_at"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime;column:updated_at" json:"updated_at"`

	Patient Patient `gorm:"foreignKey:PatientID;references:ID" json:"-"`
	Dentist *User   `gorm:"foreignKey:DentistID;references:ID" json:"-"`
	Creator *User   `gorm:"foreignKey:CreatedBy;references:ID" json:"-"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// Treatment model (catalog item)
type Treatment struct {
	ID          int64     `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	Name        string    `gorm:"not null;column:name" json:"name"`
	Description string    `gorm:"column:description" json:"description"`
	Category    string    `gorm:"not null;default:general;check:category IN ('preventive', 'restorative', 'cosmetic', 'surgical', 'emergency', 'general');column:category" json:"category"`
	Duration    int       `gorm:"not null;default:60;column:duration" json:"duration"`
	BaseCost    float64   `gorm:"not null;column:base_cost" json:"base_cost"`
	IsActive    bool      `gorm:"not null;default:true;column:is_active" json:"is_active"`
	CreatedBy   *int64    `gorm:"column:created_by" json:"created_by"`
	CreatedAt   time.Time `gorm:"autoCreateTime;column:created_at" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime;column:updated_at" json:"updated_at"`
}

func (Treatment) TableName() string {
	return "treatments"
}

// TreatmentRecord model
type TreatmentRecord struct {
	ID             int64      `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	PatientID      int64      `gorm:"not null;index:idx_treatment_records_patient;column:patient_id" json:"patient_id"`
	TreatmentID    int64      `gorm:"not null;column:treatment_id" json:"treatment_id"`
	AppointmentID  *int64     `gorm:"column:appointment_id" json:"appointment_id"`
	DentistID      *int64     `gorm:"column:dentist_id" json:"dentist_id"`
	TreatmentDate  string     `gorm:"not null;column:treatment_date" json:"treatment_date"`
	TreatmentNotes string     `gorm:"column:treatment_notes" json:"treatment_notes"`
	ActualCost     float64    `gorm:"not null;column:actual_cost" json:"actual_cost"`
	PaymentStatus  string     `gorm:"not null;default:pending;check:payment_status IN ('pending', 'partial', 'paid', 'overdue', 'cancelled');column:payment_status" json:"payment_status"`
	CompletedAt    *time.Time `gorm:"column:completed_at" json:"completed_at"`
	CreatedBy      *int64     `gorm:"column:created_by" json:"created_by"`
	CreatedAt      time.Time  `gorm:"autoCreateTime;column:created_at" json:"created_at"`
	UpdatedAt      time.Time  `gorm:"autoUpdateTime;column:updated_at" json:"updated_at"`

	Patient     Patient      `gorm:"foreignKey:PatientID;references:ID" json:"-"`
	Treatment   Treatment    `gorm:"foreignKey:TreatmentID;references:ID" json:"-"`
	Appointment *Appointment `gorm:"foreignKey:AppointmentID;references:ID" json:"-"`
	Dentist     *User        `gorm:"foreignKey:DentistID;references:ID" json:"-"`
}

func (TreatmentRecord) TableName() string {
	return "treatment_records"
}

// Invoice model. balance_due is maintained as total_amount - amount_paid on
// every payment application.
type Invoice struct {
	ID                int64     `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	InvoiceNumber     string    `gorm:"not null;unique;index;column:invoice_number" json:"invoice_number"`
	PatientID         int64     `gorm:"not null;index:idx_invoices_patient;column:patient_id" json:"patient_id"`
	TreatmentRecordID *int64    `gorm:"column:treatment_record_id" json:"treatment_record_id"`
	AppointmentID     *int64    `gorm:"column:appointment_id" json:"appointment_id"`
	Subtotal          float64   `gorm:"not null;default:0;column:subtotal" json:"subtotal"`
	TaxAmount         float64   `gorm:"not null;default:0;column:tax_amount" json:"tax_amount"`
	DiscountAmount    float64   `gorm:"not null;default:0;column:discount_amount" json:"discount_amount"`
	TotalAmount       float64   `gorm:"not null;default:0;column:total_amount" json:"total_amount"`
	AmountPaid        float64   `gorm:"not null;default:0;column:amount_paid" json:"amount_paid"`
	BalanceDue        float64   `gorm:"not null;default:0;column:balance_due" json:"balance_due"`
	InvoiceDate       string    `gorm:"not null;column:invoice_date" json:"invoice_date"`
	DueDate           string    `gorm:"not null;column:due_date" json:"due_date"`
	Status            string    `gorm:"not null;default:pending;index:idx_invoices_status;check:status IN ('draft', 'sent', 'pending', 'paid', 'overdue', 'cancelled', 'refunded');column:status" json:"status"`
	PaymentTerms      string    `gorm:"default:Net 30;column:payment_terms" json:"payment_terms"`
	Notes             string    `gorm:"column:notes" json:"notes"`
	CreatedBy         *int64    `gorm:"column:created_by" json:"created_by"`
	CreatedAt         time.Time `gorm:"autoCreateTime;column:created_at" json:"created_at"`
	UpdatedAt         time.Time `gorm:"autoUpdateTime;column:updated_at" json:"updated_at"`

	Patient         Patient          `gorm:"foreignKey:PatientID;references:ID" json:"-"`
	TreatmentRecord *TreatmentRecord `gorm:"foreignKey:TreatmentRecordID;references:ID" json:"-"`
	Items           []InvoiceItem    `gorm:"foreignKey:InvoiceID;references:ID" json:"items"`
	Payments        []Payment        `gorm:"foreignKey:InvoiceID;references:ID" json:"-"`
}

func (Invoice) TableName() string {
	return "invoices"
}

// InvoiceItem model. total_price must equal quantity * unit_price.
type InvoiceItem struct {
	ID                int64     `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	InvoiceID         int64     `gorm:"not null;index;column:invoice_id" json:"invoice_id"`
	TreatmentRecordID *int64    `gorm:"column:treatment_record_id" json:"treatment_record_id"`
	Description       string    `gorm:"not null;column:description" json:"description"`
	Quantity          int       `gorm:"not null;default:1;check:quantity >= 1;column:quantity" json:"quantity"`
	UnitPrice         float64   `gorm:"not null;column:unit_price" json:"unit_price"`
	TotalPrice        float64   `gorm:"not null;column:total_price" json:"total_price"`
	CreatedAt         time.Time `gorm:"autoCreateTime;column:created_at" json:"created_at"`

	Invoice Invoice `gorm:"foreignKey:InvoiceID;references:ID" json:"-"`
}

func (InvoiceItem) TableName() string {
	return "invoice_items"
}

// Payment model
type Payment struct {
	ID               int64     `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	InvoiceID        int64     `gorm:"not null;index:idx_payments_invoice;column:invoice_id" json:"invoice_id"`
	PaymentDate      string    `gorm:"not null;column:payment_date" json:"payment_date"`
	PaymentAmount    float64   `gorm:"not null;check:payment_amount > 0;column:payment_amount" json:"payment_amount"`
	PaymentMethod    string    `gorm:"not null;check:payment_method IN ('cash', 'credit_card', 'debit_card', 'check', 'insurance', 'online', 'other');column:payment_method" json:"payment_method"`
	PaymentReference string    `gorm:"column:payment_reference" json:"payment_reference"`
	Notes            string    `gorm:"column:notes" json:"notes"`
	CreatedBy        *int64    `gorm:"column:created_by" json:"created_by"`
	CreatedAt        time.Time `gorm:"autoCreateTime;column:created_at" json:"created_at"`

	Invoice Invoice `gorm:"foreignKey:InvoiceID;references:ID" json:"-"`
}

func (Payment) TableName() string {
	return "payments"
}

// DefaultTreatments is the starter catalog seeded on first run.
var DefaultTreatments = []Treatment{
	{Name: "Routine Checkup", Description: "General dental examination", Category: "preventive", Duration: 30, BaseCost: 75.00, IsActive: true},
	{Name: "Teeth Cleaning", Description: "Professional scaling and polishing", Category: "preventive", Duration: 45, BaseCost: 120.00, IsActive: true},
	{Name: "Composite Filling", Description: "Tooth-coloured cavity filling", Category: "restorative", Duration: 60, BaseCost: 180.00, IsActive: true},
	{Name: "Tooth Extraction", Description: "Simple extraction", Category: "surgical", Duration: 45, BaseCost: 220.00, IsActive: true},
	{Name: "Root Canal", Description: "Root canal therapy, single canal", Category: "restorative", Duration: 90, BaseCost: 650.00, IsActive: true},
	{Name: "Crown Placement", Description: "Porcelain crown", Category: "restorative", Duration: 90, BaseCost: 950.00, IsActive: true},
	{Name: "Teeth Whitening", Description: "In-office whitening session", Category: "cosmetic", Duration: 60, BaseCost: 350.00, IsActive: true},
	{Name: "Emergency Visit", Description: "Urgent assessment and pain relief", Category: "emergency", Duration: 30, BaseCost: 150.00, IsActive: true},
}

// SeedTreatments inserts the starter catalog, skipping names already present
// so repeated initialisation never duplicates rows.
func SeedTreatments(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		for _, treatment := range DefaultTreatments {
			if err := tx.FirstOrCreate(&treatment, Treatment{Name: treatment.Name}).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
