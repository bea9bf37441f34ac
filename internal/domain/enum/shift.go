package enum

// ShiftStatus is the lifecycle state of a shift
type ShiftStatus string

const (
	ShiftStatusActive    ShiftStatus = "active"
	ShiftStatusCompleted ShiftStatus = "completed"
)

// ShiftType is the work period label, derived from the wall-clock hour when
// the shift starts
type ShiftType string

const (
	ShiftTypeMorning ShiftType = "早班"
	ShiftTypeMidday  ShiftType = "中班"
	ShiftTypeEvening ShiftType = "晚班"
)

// ShiftTypeForHour maps an hour of day to the shift it belongs to:
// [6,12) morning, [12,18) midday, everything else evening.
func ShiftTypeForHour(hour int) ShiftType {
	switch {
	case hour >= 6 && hour < 12:
		return ShiftTypeMorning
	case hour >= 12 && hour < 18:
		return ShiftTypeMidday
	default:
		return ShiftTypeEvening
	}
}
