package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppointmentStatus_Valid(t *testing.T) {
	for _, s := range AppointmentStatuses {
		assert.True(t, s.Valid(), s)
	}
	assert.False(t, AppointmentStatus("All").Valid())
	assert.False(t, AppointmentStatus("scheduled").Valid())
	assert.False(t, AppointmentStatus("").Valid())
}

func TestAppointmentType_Valid(t *testing.T) {
	for _, typ := range []AppointmentType{TypeInitial, TypeFollowUp, TypePreventive} {
		assert.True(t, typ.Valid(), typ)
	}
	assert.False(t, AppointmentType("Emergency").Valid())
}
