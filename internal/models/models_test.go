package models

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestParseShiftType(t *testing.T) {
	if got, ok := ParseShiftType("Ferie"); !ok || got != TypeLeave {
		t.Fatalf("ParseShiftType(Ferie) = %q, %v", got, ok)
	}
	if got, ok := ParseShiftType("Ammortizzatore Sociale"); !ok || got != TypeSafetyNet {
		t.Fatalf("ParseShiftType(Ammortizzatore Sociale) = %q, %v", got, ok)
	}
	if _, ok := ParseShiftType("Smartworking"); ok {
		t.Fatalf("expected unknown label to be rejected")
	}
	if _, ok := ParseShiftType(""); ok {
		t.Fatalf("expected empty label to be rejected")
	}
}

func TestShiftTypesClosedSet(t *testing.T) {
	if len(ShiftTypes) != 10 {
		t.Fatalf("expected 10 shift types, got %d", len(ShiftTypes))
	}
	seen := make(map[ShiftType]bool)
	for _, st := range ShiftTypes {
		if seen[st] {
			t.Fatalf("duplicate shift type %q", st)
		}
		seen[st] = true
	}
}

func TestShiftDay(t *testing.T) {
	s := Shift{Date: "2024-03-31"}
	d := s.Day()
	if d.Year() != 2024 || d.Month() != time.March || d.Day() != 31 {
		t.Fatalf("Day() = %v", d)
	}
	if !(Shift{Date: "garbage"}).Day().IsZero() {
		t.Fatalf("malformed date should yield zero time")
	}
}

func TestShiftInMonth(t *testing.T) {
	s := Shift{Date: "2024-03-31"}
	if !s.InMonth(2024, time.March) {
		t.Fatalf("expected shift in March 2024")
	}
	if s.InMonth(2024, time.April) || s.InMonth(2023, time.March) {
		t.Fatalf("month filter too loose")
	}
	if (Shift{Date: "bad"}).InMonth(2024, time.March) {
		t.Fatalf("malformed date must not match any month")
	}
}

func TestShiftJSONOmitsEmptyOptionals(t *testing.T) {
	raw, err := json.Marshal(Shift{ID: "x", Date: "2024-03-05", StartTime: "09:00", EndTime: "17:00", Type: TypeOrdinary})
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	for _, field := range []string{"breakMinutes", "customDuration"} {
		if strings.Contains(string(raw), `"`+field+`"`) {
			t.Fatalf("expected %s to be omitted, got %s", field, raw)
		}
	}
}

func TestShiftDraftHasDuration(t *testing.T) {
	hours := 8.0
	zero := 0.0
	if (ShiftDraft{}).HasDuration() {
		t.Fatalf("empty draft must not declare a duration")
	}
	if (ShiftDraft{CustomDuration: &zero}).HasDuration() {
		t.Fatalf("zero duration is not usable")
	}
	if !(ShiftDraft{CustomDuration: &hours}).HasDuration() {
		t.Fatalf("expected duration mode")
	}
}
