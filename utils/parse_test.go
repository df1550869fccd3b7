package utils_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/kunalsharma05/garagehub/utils"
)

func TestParseAppointmentDate(t *testing.T) {
	d, err := utils.ParseAppointmentDate("date", "2026-03-15")
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC), d)

	for _, invalid := range []string{"", "15-03-2026", "2026/03/15", "2026-13-01", "tomorrow"} {
		_, err := utils.ParseAppointmentDate("date", invalid)
		assert.Error(t, err, invalid)
		assert.True(t, utils.IsKind(err, utils.KindInvalidInput), invalid)
	}
}

func TestParseAppointmentTime(t *testing.T) {
	v, err := utils.ParseAppointmentTime("time", "09:30")
	assert.NoError(t, err)
	assert.Equal(t, "09:30", v)

	v, err = utils.ParseAppointmentTime("time", "23:59")
	assert.NoError(t, err)
	assert.Equal(t, "23:59", v)

	for _, invalid := range []string{"", "9:30 AM", "25:00", "12:60", "noon"} {
		_, err := utils.ParseAppointmentTime("time", invalid)
		assert.Error(t, err, invalid)
		assert.True(t, utils.IsKind(err, utils.KindInvalidInput), invalid)
	}
}
