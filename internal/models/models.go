package models

import (
	"time"

	"github.com/ffusco/turni/internal/config"
)

// ShiftType enumerates the closed set of shift categories. The values are
// the Italian display labels; they double as the serialized representation.
type ShiftType string

const (
	TypeOrdinary  ShiftType = "Ordinario"
	TypeHoliday   ShiftType = "Festivo"
	TypeLeave     ShiftType = "Ferie"
	TypeTraining  ShiftType = "Formazione"
	TypeMeeting   ShiftType = "Riunione"
	TypeStrike    ShiftType = "Sciopero"
	TypeMedical   ShiftType = "Visita Medica"
	TypeSpecial   ShiftType = "Evento Speciale"
	TypeAssembly  ShiftType = "Assemblea"
	TypeSafetyNet ShiftType = "Ammortizzatore Sociale"
)

// ShiftTypes lists every category in picker/report order.
var ShiftTypes = []ShiftType{
	TypeOrdinary,
	TypeHoliday,
	TypeLeave,
	TypeTraining,
	TypeMeeting,
	TypeStrike,
	TypeMedical,
	TypeSpecial,
	TypeAssembly,
	TypeSafetyNet,
}

// ParseShiftType maps a label to its ShiftType, reporting whether the label
// belongs to the closed set. Used to validate externally supplied values.
func ParseShiftType(label string) (ShiftType, bool) {
	for _, t := range ShiftTypes {
		if string(t) == label {
			return t, true
		}
	}
	return "", false
}

// Shift represents one recorded work entry.
//
// Exactly one input mode determines how hours are computed: a time span
// (non-empty StartTime and EndTime) or a declared duration (CustomDuration
// greater than zero). CustomDuration always wins when present.
type Shift struct {
	ID             string    `json:"id"`
	Date           string    `json:"date"`      // YYYY-MM-DD
	StartTime      string    `json:"startTime"` // HH:mm, empty in duration mode
	EndTime        string    `json:"endTime"`   // HH:mm, empty in duration mode
	Type           ShiftType `json:"type"`
	Description    string    `json:"description"`
	BreakMinutes   int       `json:"breakMinutes,omitempty"`
	CustomDuration float64   `json:"customDuration,omitempty"`
}

// Day parses the shift date. A malformed date yields the zero time.
func (s Shift) Day() time.Time {
	t, err := time.ParseInLocation(config.DateFormat, s.Date, time.Local)
	if err != nil {
		return time.Time{}
	}
	return t
}

// InMonth reports whether the shift falls in the given calendar month.
func (s Shift) InMonth(year int, month time.Month) bool {
	d := s.Day()
	return !d.IsZero() && d.Year() == year && d.Month() == month
}

// ShiftDraft is a partial shift as returned by the AI quick-fill parser.
// Absent fields stay at their zero value; pointer fields distinguish
// "not returned" from an explicit zero.
type ShiftDraft struct {
	Date           string
	StartTime      string
	EndTime        string
	Type           ShiftType // empty when absent or not in the closed set
	Description    string
	BreakMinutes   *int
	CustomDuration *float64
}

// HasDuration reports whether the draft declares a usable flat duration.
// When it does, any start/end pair in the draft is ignored.
func (d ShiftDraft) HasDuration() bool {
	return d.CustomDuration != nil && *d.CustomDuration > 0
}
