// Package calendar provides the pure date logic behind the month view:
// the Monday-based month grid and the Italian holiday calculator.
package calendar

import "time"

// MonthGrid returns the consecutive dates displayed for a month: from the
// Monday of the week containing the 1st through the Sunday of the week
// containing the last day. The result length is always a multiple of 7.
func MonthGrid(year int, month time.Month) []time.Time {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	last := first.AddDate(0, 1, -1)

	// time.Weekday has Sunday=0; remap so Monday=0 ... Sunday=6.
	lead := (int(first.Weekday()) + 6) % 7
	trail := (7 - int(last.Weekday())) % 7

	start := first.AddDate(0, 0, -lead)
	end := last.AddDate(0, 0, trail)

	var days []time.Time
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

// SameDay reports whether two times fall on the same calendar date.
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
