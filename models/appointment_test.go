package models_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kunalsharma05/garagehub/models"
)

func TestParseAppointmentStatus(t *testing.T) {
	for _, valid := range []string{"Pending", "confirmed", "in-progress", "completed", "canceled"} {
		status, err := models.ParseAppointmentStatus(valid)
		assert.NoError(t, err, valid)
		assert.Equal(t, valid, string(status))
	}

	for _, invalid := range []string{"", "pending", "Confirmed", "done", "cancelled"} {
		_, err := models.ParseAppointmentStatus(invalid)
		assert.Error(t, err, invalid)
	}
}

func TestStatusTransitions(t *testing.T) {
	cases := []struct {
		from    models.AppointmentStatus
		to      models.AppointmentStatus
		allowed bool
	}{
		{models.StatusPending, models.StatusConfirmed, true},
		{models.StatusPending, models.StatusInProgress, true},
		{models.StatusPending, models.StatusCompleted, true},
		{models.StatusPending, models.StatusCanceled, true},
		{models.StatusConfirmed, models.StatusInProgress, true},
		{models.StatusConfirmed, models.StatusCompleted, true},
		{models.StatusConfirmed, models.StatusCanceled, true},
		{models.StatusConfirmed, models.StatusPending, false},
		{models.StatusInProgress, models.StatusCompleted, true},
		{models.StatusInProgress, models.StatusCanceled, true},
		{models.StatusInProgress, models.StatusConfirmed, false},
		{models.StatusCompleted, models.StatusCanceled, false},
		{models.StatusCompleted, models.StatusPending, false},
		{models.StatusCanceled, models.StatusPending, false},
		{models.StatusCanceled, models.StatusCompleted, false},
		{models.StatusPending, models.StatusPending, false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.allowed, tc.from.CanTransitionTo(tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func TestParsePaymentStatus(t *testing.T) {
	for _, valid := range []string{"pending", "paid", "failed"} {
		status, err := models.ParsePaymentStatus(valid)
		assert.NoError(t, err, valid)
		assert.Equal(t, valid, string(status))
	}

	for _, invalid := range []string{"", "Paid", "settled", "refunded"} {
		_, err := models.ParsePaymentStatus(invalid)
		assert.Error(t, err, invalid)
	}
}

func TestProviderDisplayName(t *testing.T) {
	var nilProvider *models.Provider
	assert.Equal(t, "Service Provider", nilProvider.DisplayName())

	assert.Equal(t, "Sharma Motors", (&models.Provider{
		GarageName: "Sharma Motors",
		OwnerName:  "Anil Sharma",
	}).DisplayName())

	assert.Equal(t, "Anil Sharma", (&models.Provider{
		OwnerName: "Anil Sharma",
	}).DisplayName())

	assert.Equal(t, "Service Provider", (&models.Provider{}).DisplayName())
}
