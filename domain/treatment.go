package domain

import (
	"strings"
)

// Treatment is the validated value object for a catalog treatment.
type Treatment struct {
	ID          int64
	Name        string
	Description string
	Category    TreatmentCategory
	Duration    int
	BaseCost    float64
	Active      bool
	CreatedBy   *int64
	CreatedAt   string
	UpdatedAt   string
}

// Validate returns the list of human-readable violations.
func (t *Treatment) Validate() []string {
	var violations []string

	if strings.TrimSpace(t.Name) == "" {
		violations = append(violations, "treatment name is required")
	}
	if t.Duration <= 0 {
		violations = append(violations, "duration must be greater than 0")
	} else if t.Duration > 480 {
		violations = append(violations, "duration cannot exceed 8 hours")
	}
	if t.BaseCost < 0 {
		violations = append(violations, "cost cannot be negative")
	}
	return violations
}

// ToRecord serialises the treatment to a flat field mapping.
func (t *Treatment) ToRecord() Record {
	return Record{
		"id":          t.ID,
		"name":        t.Name,
		"description": t.Description,
		"category":    string(t.Category),
		"duration":    t.Duration,
		"base_cost":   t.BaseCost,
		"is_active":   t.Active,
		"created_by":  t.CreatedBy,
		"created_at":  t.CreatedAt,
		"updated_at":  t.UpdatedAt,
	}
}

// TreatmentFromRecord builds a treatment from a flat field mapping.
func TreatmentFromRecord(r Record) *Treatment {
	tr := &Treatment{
		ID:          recInt64(r, "id"),
		Name:        recString(r, "name"),
		Description: recString(r, "description"),
		Category:    ParseTreatmentCategory(recString(r, "category")),
		Duration:    recInt(r, "duration"),
		BaseCost:    recFloat64(r, "base_cost"),
		Active:      recBool(r, "is_active"),
		CreatedBy:   recInt64Ptr(r, "created_by"),
		CreatedAt:   recString(r, "created_at"),
		UpdatedAt:   recString(r, "updated_at"),
	}
	if tr.Duration == 0 {
		tr.Duration = 60
	}
	return tr
}
