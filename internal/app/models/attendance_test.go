package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAttendanceStatusCountsAsPresent(t *testing.T) {
	tests := []struct {
		status AttendanceStatus
		want   bool
	}{
		{AttendancePresent, true},
		{AttendanceLate, true},
		{AttendanceOnDuty, true},
		{AttendanceAbsent, false},
		{AttendanceMedicalLeave, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.status.CountsAsPresent())
		})
	}
}

func TestAttendanceStatusIsValid(t *testing.T) {
	assert.True(t, AttendanceOnDuty.IsValid())
	assert.False(t, AttendanceStatus("X").IsValid())
}
