package enum

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShiftTypeForHour(t *testing.T) {
	tests := []struct {
		hour int
		want ShiftType
	}{
		{0, ShiftTypeEvening},
		{5, ShiftTypeEvening},
		{6, ShiftTypeMorning},
		{11, ShiftTypeMorning},
		{12, ShiftTypeMidday},
		{17, ShiftTypeMidday},
		{18, ShiftTypeEvening},
		{23, ShiftTypeEvening},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ShiftTypeForHour(tt.hour), "hour %d", tt.hour)
	}
}
