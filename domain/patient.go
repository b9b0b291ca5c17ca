package domain

import (
	"regexp"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// DateLayout is the storage format for all date-only fields.
const DateLayout = "2006-01-02"

var phonePattern = regexp.MustCompile(`^\+?[1-9]\d{0,15}$`)

// Patient is the validated value object callers build before submitting to
// the persistence service. Dates travel as YYYY-MM-DD strings.
type Patient struct {
	ID                   int64
	FirstName            string
	LastName             string
	DateOfBirth          string
	Gender               Gender
	Phone                string
	Email                string
	Address              string
	City                 string
	State                string
	PostalCode           string
	EmergencyName        string
	EmergencyPhone       string
	EmergencyRelation    string
	MedicalHistory       string
	Allergies            string
	InsuranceProvider    string
	InsuranceNumber      string
	InsuranceGroupNumber string
	Active               bool
	CreatedBy            *int64
	CreatedAt            string
	UpdatedAt            string
}

// FullName joins first and last name for display.
func (p *Patient) FullName() string {
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}

// Age returns whole years from date of birth to today, decremented by one
// when the birthday has not yet occurred this year. Returns -1 when the
// date of birth is absent or unparseable.
func (p *Patient) Age() int {
	dob, err := time.Parse(DateLayout, p.DateOfBirth)
	if err != nil {
		return -1
	}
	now := time.Now()
	years := now.Year() - dob.Year()
	if now.Month() < dob.Month() || (now.Month() == dob.Month() && now.Day() < dob.Day()) {
		years--
	}
	return years
}

// Validate returns the list of human-readable violations; an empty list
// means the patient may be submitted for persistence.
func (p *Patient) Validate() []string {
	var violations []string

	if strings.TrimSpace(p.FirstName) == "" {
		violations = append(violations, "first name is required")
	}
	if strings.TrimSpace(p.LastName) == "" {
		violations = append(violations, "last name is required")
	}
	if p.DateOfBirth != "" {
		if _, err := time.Parse(DateLayout, p.DateOfBirth); err != nil {
			violations = append(violations, "date of birth must be in YYYY-MM-DD format")
		}
	}
	if p.Phone != "" && !validPhone(p.Phone) {
		violations = append(violations, "invalid phone number format")
	}
	if p.Email != "" {
		if err := validation.Validate(p.Email, is.Email); err != nil {
			violations = append(violations, "invalid email format")
		}
	}
	if p.EmergencyPhone != "" && !validPhone(p.EmergencyPhone) {
		violations = append(violations, "invalid emergency contact phone format")
	}
	return violations
}

// validPhone strips common separators before matching, so formatted numbers
// like (555) 123-4567 pass.
func validPhone(phone string) bool {
	stripped := strings.NewReplacer(" ", "", "-", "", "(", "", ")", "").Replace(phone)
	return phonePattern.MatchString(stripped)
}

// ToRecord serialises the patient to a flat field mapping with enum fields
// as their string values.
func (p *Patient) ToRecord() Record {
	return Record{
		"id":                             p.ID,
		"first_name":                     p.FirstName,
		"last_name":                      p.LastName,
		"date_of_birth":                  p.DateOfBirth,
		"gender":                         string(p.Gender),
		"phone":                          p.Phone,
		"email":                          p.Email,
		"address":                        p.Address,
		"city":                           p.City,
		"state":                          p.State,
		"postal_code":                    p.PostalCode,
		"emergency_contact_name":         p.EmergencyName,
		"emergency_contact_phone":        p.EmergencyPhone,
		"emergency_contact_relationship": p.EmergencyRelation,
		"medical_history":                p.MedicalHistory,
		"allergies":                      p.Allergies,
		"insurance_provider":             p.InsuranceProvider,
		"insurance_number":               p.InsuranceNumber,
		"insurance_group_number":         p.InsuranceGroupNumber,
		"is_active":                      p.Active,
		"created_by":                     p.CreatedBy,
		"created_at":                     p.CreatedAt,
		"updated_at":                     p.UpdatedAt,
	}
}

// PatientFromRecord builds a patient from a flat field mapping. Unknown
// enum values fall back to their defaults and are logged, never rejected.
func PatientFromRecord(r Record) *Patient {
	return &Patient{
		ID:                   recInt64(r, "id"),
		FirstName:            recString(r, "first_name"),
		LastName:             recString(r, "last_name"),
		DateOfBirth:          recString(r, "date_of_birth"),
		Gender:               ParseGender(recString(r, "gender")),
		Phone:                recString(r, "phone"),
		Email:                recString(r, "email"),
		Address:              recString(r, "address"),
		City:                 recString(r, "city"),
		State:                recString(r, "state"),
		PostalCode:           recString(r, "postal_code"),
		EmergencyName:        recString(r, "emergency_contact_name"),
		EmergencyPhone:       recString(r, "emergency_contact_phone"),
		EmergencyRelation:    recString(r, "emergency_contact_relationship"),
		MedicalHistory:       recString(r, "medical_history"),
		Allergies:            recString(r, "allergies"),
		InsuranceProvider:    recString(r, "insurance_provider"),
		InsuranceNumber:      recString(r, "insurance_number"),
		InsuranceGroupNumber: recString(r, "insurance_group_number"),
		Active:               recBool(r, "is_active"),
		CreatedBy:            recInt64Ptr(r, "created_by"),
		CreatedAt:            recString(r, "created_at"),
		UpdatedAt:            recString(r, "updated_at"),
	}
}
