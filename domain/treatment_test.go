package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTreatmentValidate(t *testing.T) {
	treatment := &Treatment{Name: "Teeth Cleaning", Category: CategoryPreventive, Duration: 45, BaseCost: 120}
	assert.Empty(t, treatment.Validate())
}

func TestTreatmentValidateViolations(t *testing.T) {
	tests := []struct {
		name      string
		treatment Treatment
		want      string
	}{
		{"missing name", Treatment{Duration: 30}, "treatment name is required"},
		{"blank name", Treatment{Name: "   ", Duration: 30}, "treatment name is required"},
		{"zero duration", Treatment{Name: "Checkup"}, "duration must be greater than 0"},
		{"duration over eight hours", Treatment{Name: "Checkup", Duration: 481}, "duration cannot exceed 8 hours"},
		{"negative cost", Treatment{Name: "Checkup", Duration: 30, BaseCost: -1}, "cost cannot be negative"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Contains(t, tt.treatment.Validate(), tt.want)
		})
	}
}

func TestTreatmentValidateBoundaries(t *testing.T) {
	for _, duration := range []int{1, 480} {
		treatment := &Treatment{Name: "Checkup", Duration: duration}
		assert.Empty(t, treatment.Validate(), "duration %d", duration)
	}
	free := &Treatment{Name: "Consultation", Duration: 15, BaseCost: 0}
	assert.Empty(t, free.Validate())
}

func TestTreatmentFromRecordDefaults(t *testing.T) {
	got := TreatmentFromRecord(Record{
		"name":     "Mystery Procedure",
		"category": "alchemy",
	})
	assert.Equal(t, CategoryGeneral, got.Category)
	assert.Equal(t, 60, got.Duration)
}
