package stats

import (
	"sort"
	"time"

	"github.com/ffusco/turni/internal/models"
)

// MonthlySummary holds the aggregation result for one calendar month.
type MonthlySummary struct {
	Year   int
	Month  time.Month
	Shifts []models.Shift // the month's shifts, sorted by date ascending
	ByType map[models.ShiftType]float64
	Total  float64
}

// Aggregate filters shifts to the given month, sums net hours per category
// and computes the grand total. Categories whose shifts net exactly zero
// hours get no entry; a zero-duration shift is invisible in the summary.
// Sums accumulate at full precision and are rounded once at the end.
func Aggregate(shifts []models.Shift, year int, month time.Month) MonthlySummary {
	summary := MonthlySummary{
		Year:   year,
		Month:  month,
		ByType: make(map[models.ShiftType]float64),
	}

	for _, s := range shifts {
		if s.InMonth(year, month) {
			summary.Shifts = append(summary.Shifts, s)
		}
	}
	sort.SliceStable(summary.Shifts, func(i, j int) bool {
		return summary.Shifts[i].Date < summary.Shifts[j].Date
	})

	raw := make(map[models.ShiftType]float64)
	var total float64
	for _, s := range summary.Shifts {
		hours := NetHours(s)
		if hours > 0 {
			raw[s.Type] += hours
			total += hours
		}
	}

	for t, hours := range raw {
		summary.ByType[t] = Round1(hours)
	}
	summary.Total = Round1(total)
	return summary
}

// Types returns the categories present in the summary, in the fixed
// picker/report order.
func (m MonthlySummary) Types() []models.ShiftType {
	var types []models.ShiftType
	for _, t := range models.ShiftTypes {
		if _, ok := m.ByType[t]; ok {
			types = append(types, t)
		}
	}
	return types
}
