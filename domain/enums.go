package domain

import (
	"github.com/rs/zerolog/log"
)

// Role is a user role in the clinic.
type Role string

const (
	RoleAdmin        Role = "admin"
	RoleDentist      Role = "dentist"
	RoleHygienist    Role = "hygienist"
	RoleReceptionist Role = "receptionist"
	RoleStaff        Role = "staff"
)

// Gender values accepted on patient records.
type Gender string

const (
	GenderMale           Gender = "male"
	GenderFemale         Gender = "female"
	GenderOther          Gender = "other"
	GenderPreferNotToSay Gender = "prefer_not_to_say"
	GenderUnspecified    Gender = ""
)

// AppointmentStatus is the lifecycle state of an appointment.
type AppointmentStatus string

const (
	StatusScheduled  AppointmentStatus = "scheduled"
	StatusConfirmed  AppointmentStatus = "confirmed"
	StatusInProgress AppointmentStatus = "in_progress"
	StatusCompleted  AppointmentStatus = "completed"
	StatusCancelled  AppointmentStatus = "cancelled"
	StatusNoShow     AppointmentStatus = "no_show"
)

// appointmentTransitions is the legal status graph. Scheduled is the sole
// initial state; completed, cancelled and no_show are terminal.
var appointmentTransitions = map[AppointmentStatus][]AppointmentStatus{
	StatusScheduled:  {StatusConfirmed, StatusCancelled, StatusNoShow},
	StatusConfirmed:  {StatusInProgress, StatusCompleted, StatusCancelled, StatusNoShow},
	StatusInProgress: {StatusCompleted},
}

// CanTransitionTo reports whether the status graph allows moving to next.
func (s AppointmentStatus) CanTransitionTo(next AppointmentStatus) bool {
	for _, allowed := range appointmentTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no further transition is possible.
func (s AppointmentStatus) IsTerminal() bool {
	return len(appointmentTransitions[s]) == 0
}

// AppointmentType is the kind of visit being scheduled.
type AppointmentType string

const (
	TypeCheckup      AppointmentType = "checkup"
	TypeCleaning     AppointmentType = "cleaning"
	TypeFilling      AppointmentType = "filling"
	TypeExtraction   AppointmentType = "extraction"
	TypeRootCanal    AppointmentType = "root_canal"
	TypeCrown        AppointmentType = "crown"
	TypeConsultation AppointmentType = "consultation"
	TypeEmergency    AppointmentType = "emergency"
	TypeFollowUp     AppointmentType = "follow_up"
)

// TreatmentCategory classifies catalog treatments.
type TreatmentCategory string

const (
	CategoryPreventive  TreatmentCategory = "preventive"
	CategoryRestorative TreatmentCategory = "restorative"
	CategoryCosmetic    TreatmentCategory = "cosmetic"
	CategorySurgical    TreatmentCategory = "surgical"
	CategoryEmergency   TreatmentCategory = "emergency"
	CategoryGeneral     TreatmentCategory = "general"
)

// PaymentStatus tracks how far a treatment record has been paid.
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentPartial   PaymentStatus = "partial"
	PaymentPaid      PaymentStatus = "paid"
	PaymentOverdue   PaymentStatus = "overdue"
	PaymentCancelled PaymentStatus = "cancelled"
)

// InvoiceStatus is the lifecycle state of an invoice.
type InvoiceStatus string

const (
	InvoiceDraft     InvoiceStatus = "draft"
	InvoiceSent      InvoiceStatus = "sent"
	InvoicePending   InvoiceStatus = "pending"
	InvoicePaid      InvoiceStatus = "paid"
	InvoiceOverdue   InvoiceStatus = "overdue"
	InvoiceCancelled InvoiceStatus = "cancelled"
	InvoiceRefunded  InvoiceStatus = "refunded"
)

// PaymentMethod is how a payment was made.
type PaymentMethod string

const (
	MethodCash       PaymentMethod = "cash"
	MethodCreditCard PaymentMethod = "credit_card"
	MethodDebitCard  PaymentMethod = "debit_card"
	MethodCheck      PaymentMethod = "check"
	MethodInsurance  PaymentMethod = "insurance"
	MethodOnline     PaymentMethod = "online"
	MethodOther      PaymentMethod = "other"
)

// fallback logs an unrecognised enum value and substitutes the default.
// Unknown values never fail a parse; callers rely on the log line to spot
// data that drifted outside the closed sets. Absent (empty) values take the
// default silently.
func fallback[T ~string](field, raw string, def T) T {
	if raw != "" {
		log.Warn().Str("field", field).Str("value", raw).Str("fallback", string(def)).
			Msg("unrecognised enum value, substituting default")
	}
	return def
}

// ParseRole maps a stored string onto a Role, defaulting to staff.
func ParseRole(raw string) Role {
	switch r := Role(raw); r {
	case RoleAdmin, RoleDentist, RoleHygienist, RoleReceptionist, RoleStaff:
		return r
	}
	return fallback("role", raw, RoleStaff)
}

// ParseGender maps a stored string onto a Gender. Empty input stays empty;
// anything else unknown falls back to unspecified.
func ParseGender(raw string) Gender {
	switch g := Gender(raw); g {
	case GenderMale, GenderFemale, GenderOther, GenderPreferNotToSay, GenderUnspecified:
		return g
	}
	return fallback("gender", raw, GenderUnspecified)
}

// ParseAppointmentStatus defaults to scheduled on unknown input.
func ParseAppointmentStatus(raw string) AppointmentStatus {
	switch s := AppointmentStatus(raw); s {
	case StatusScheduled, StatusConfirmed, StatusInProgress, StatusCompleted, StatusCancelled, StatusNoShow:
		return s
	}
	return fallback("status", raw, StatusScheduled)
}

// ParseAppointmentType defaults to checkup on unknown input.
func ParseAppointmentType(raw string) AppointmentType {
	switch t := AppointmentType(raw); t {
	case TypeCheckup, TypeCleaning, TypeFilling, TypeExtraction, TypeRootCanal,
		TypeCrown, TypeConsultation, TypeEmergency, TypeFollowUp:
		return t
	}
	return fallback("appointment_type", raw, TypeCheckup)
}

// ParseTreatmentCategory defaults to general on unknown input.
func ParseTreatmentCategory(raw string) TreatmentCategory {
	switch c := TreatmentCategory(raw); c {
	case CategoryPreventive, CategoryRestorative, CategoryCosmetic,
		CategorySurgical, CategoryEmergency, CategoryGeneral:
		return c
	}
	return fallback("category", raw, CategoryGeneral)
}

// ParsePaymentStatus defaults to pending on unknown input.
func ParsePaymentStatus(raw string) PaymentStatus {
	switch s := PaymentStatus(raw); s {
	case PaymentPending, PaymentPartial, PaymentPaid, PaymentOverdue, PaymentCancelled:
		return s
	}
	return fallback("payment_status", raw, PaymentPending)
}

// ParseInvoiceStatus defaults to pending on unknown input.
func ParseInvoiceStatus(raw string) InvoiceStatus {
	switch s := InvoiceStatus(raw); s {
	case InvoiceDraft, InvoiceSent, InvoicePending, InvoicePaid,
		InvoiceOverdue, InvoiceCancelled, InvoiceRefunded:
		return s
	}
	return fallback("invoice_status", raw, InvoicePending)
}

// ParsePaymentMethod defaults to other on unknown input.
func ParsePaymentMethod(raw string) PaymentMethod {
	switch m := PaymentMethod(raw); m {
	case MethodCash, MethodCreditCard, MethodDebitCard, MethodCheck,
		MethodInsurance, MethodOnline, MethodOther:
		return m
	}
	return fallback("payment_method", raw, MethodOther)
}
