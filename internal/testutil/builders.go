package testutil

import "github.com/ffusco/turni/internal/models"

// ShiftBuilder provides a fluent API for creating test shifts.
type ShiftBuilder struct {
	shift models.Shift
}

func NewShift() *ShiftBuilder {
	return &ShiftBuilder{
		shift: models.Shift{
			Date:      "2024-03-04",
			StartTime: "09:00",
			EndTime:   "17:00",
			Type:      models.TypeOrdinary,
		},
	}
}

func (b *ShiftBuilder) WithID(id string) *ShiftBuilder {
	b.shift.ID = id
	return b
}

func (b *ShiftBuilder) WithDate(date string) *ShiftBuilder {
	b.shift.Date = date
	return b
}

func (b *ShiftBuilder) WithSpan(start, end string) *ShiftBuilder {
	b.shift.StartTime = start
	b.shift.EndTime = end
	b.shift.CustomDuration = 0
	return b
}

func (b *ShiftBuilder) WithDuration(hours float64) *ShiftBuilder {
	b.shift.CustomDuration = hours
	b.shift.StartTime = ""
	b.shift.EndTime = ""
	return b
}

func (b *ShiftBuilder) WithBreak(minutes int) *ShiftBuilder {
	b.shift.BreakMinutes = minutes
	return b
}

func (b *ShiftBuilder) WithType(t models.ShiftType) *ShiftBuilder {
	b.shift.Type = t
	return b
}

func (b *ShiftBuilder) WithDescription(d string) *ShiftBuilder {
	b.shift.Description = d
	return b
}

func (b *ShiftBuilder) Build() models.Shift {
	return b.shift
}
