// Package stats computes net worked hours per shift and aggregates them
// into monthly per-category summaries.
package stats

import (
	"math"
	"strconv"
	"strings"

	"github.com/ffusco/turni/internal/models"
)

const minutesPerDay = 24 * 60

// NetHours returns the net worked hours for a shift.
//
// A CustomDuration greater than zero is taken verbatim; it is declared net,
// so break minutes are ignored. Otherwise the span between start and end is
// used, rolling over midnight when the end clock is earlier than the start,
// minus break minutes (floored at zero). A shift with neither a duration nor
// a usable span nets zero.
func NetHours(s models.Shift) float64 {
	if s.CustomDuration > 0 {
		return s.CustomDuration
	}

	start, okStart := parseClock(s.StartTime)
	end, okEnd := parseClock(s.EndTime)
	if !okStart || !okEnd {
		return 0
	}

	minutes := end - start
	if minutes < 0 {
		minutes += minutesPerDay
	}
	minutes -= s.BreakMinutes
	if minutes < 0 {
		minutes = 0
	}
	return float64(minutes) / 60
}

// Round1 rounds hours to one decimal place for presentation. Accumulation
// stays full-precision; only final figures go through here.
func Round1(hours float64) float64 {
	return math.Round(hours*10) / 10
}

// parseClock converts "HH:mm" to minutes since midnight.
func parseClock(clock string) (int, bool) {
	hh, mm, ok := strings.Cut(clock, ":")
	if !ok {
		return 0, false
	}
	h, err := strconv.Atoi(hh)
	if err != nil || h < 0 || h > 23 {
		return 0, false
	}
	m, err := strconv.Atoi(mm)
	if err != nil || m < 0 || m > 59 {
		return 0, false
	}
	return h*60 + m, true
}
