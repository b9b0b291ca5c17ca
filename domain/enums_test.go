package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseEnumsKnownValues(t *testing.T) {
	assert.Equal(t, RoleDentist, ParseRole("dentist"))
	assert.Equal(t, GenderPreferNotToSay, ParseGender("prefer_not_to_say"))
	assert.Equal(t, StatusNoShow, ParseAppointmentStatus("no_show"))
	assert.Equal(t, TypeRootCanal, ParseAppointmentType("root_canal"))
	assert.Equal(t, CategorySurgical, ParseTreatmentCategory("surgical"))
	assert.Equal(t, PaymentPartial, ParsePaymentStatus("partial"))
	assert.Equal(t, InvoiceRefunded, ParseInvoiceStatus("refunded"))
	assert.Equal(t, MethodInsurance, ParsePaymentMethod("insurance"))
}

func TestParseEnumsFallback(t *testing.T) {
	// Unknown values never fail a parse; they take the documented default.
	assert.Equal(t, RoleStaff, ParseRole("superuser"))
	assert.Equal(t, GenderUnspecified, ParseGender("unknown"))
	assert.Equal(t, StatusScheduled, ParseAppointmentStatus("limbo"))
	assert.Equal(t, TypeCheckup, ParseAppointmentType("teleportation"))
	assert.Equal(t, CategoryGeneral, ParseTreatmentCategory("alchemy"))
	assert.Equal(t, PaymentPending, ParsePaymentStatus("maybe"))
	assert.Equal(t, InvoicePending, ParseInvoiceStatus("lost"))
	assert.Equal(t, MethodOther, ParsePaymentMethod("barter"))
}

func TestParseEnumsEmptyInput(t *testing.T) {
	assert.Equal(t, RoleStaff, ParseRole(""))
	assert.Equal(t, GenderUnspecified, ParseGender(""))
	assert.Equal(t, StatusScheduled, ParseAppointmentStatus(""))
}

func TestAppointmentStatusTransitions(t *testing.T) {
	legal := []struct{ from, to AppointmentStatus }{
		{StatusScheduled, StatusConfirmed},
		{StatusScheduled, StatusCancelled},
		{StatusScheduled, StatusNoShow},
		{StatusConfirmed, StatusInProgress},
		{StatusConfirmed, StatusCompleted},
		{StatusConfirmed, StatusCancelled},
		{StatusConfirmed, StatusNoShow},
		{StatusInProgress, StatusCompleted},
	}
	for _, tt := range legal {
		assert.True(t, tt.from.CanTransitionTo(tt.to), "%s -> %s should be legal", tt.from, tt.to)
	}

	illegal := []struct{ from, to AppointmentStatus }{
		{StatusScheduled, StatusInProgress},
		{StatusScheduled, StatusCompleted},
		{StatusInProgress, StatusCancelled},
		{StatusInProgress, StatusNoShow},
		{StatusCompleted, StatusScheduled},
		{StatusCompleted, StatusCancelled},
		{StatusCancelled, StatusScheduled},
		{StatusCancelled, StatusConfirmed},
		{StatusNoShow, StatusScheduled},
		{StatusConfirmed, StatusScheduled},
	}
	for _, tt := range illegal {
		assert.False(t, tt.from.CanTransitionTo(tt.to), "%s -> %s should be illegal", tt.from, tt.to)
	}
}

func TestAppointmentStatusTerminal(t *testing.T) {
	for _, status := range []AppointmentStatus{StatusCompleted, StatusCancelled, StatusNoShow} {
		assert.True(t, status.IsTerminal(), "%s should be terminal", status)
	}
	for _, status := range []AppointmentStatus{StatusScheduled, StatusConfirmed, StatusInProgress} {
		assert.False(t, status.IsTerminal(), "%s should not be terminal", status)
	}
}
