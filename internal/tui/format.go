package tui

import (
	"fmt"
	"strconv"
	"time"

	"github.com/ffusco/turni/internal/models"
	"github.com/ffusco/turni/internal/stats"
)

var monthNames = [...]string{
	"Gennaio", "Febbraio", "Marzo", "Aprile", "Maggio", "Giugno",
	"Luglio", "Agosto", "Settembre", "Ottobre", "Novembre", "Dicembre",
}

var weekdayShort = [...]string{"Lun", "Mar", "Mer", "Gio", "Ven", "Sab", "Dom"}

// MonthTitle formats a month heading, e.g. "Marzo 2024".
func MonthTitle(year int, month time.Month) string {
	return fmt.Sprintf("%s %d", monthNames[month-1], year)
}

// FormatHours renders hours with one decimal, e.g. "7.5".
func FormatHours(h float64) string {
	return strconv.FormatFloat(stats.Round1(h), 'f', 1, 64)
}

// FormatAmount renders a user-declared duration without a forced decimal,
// e.g. "8" or "7.5".
func FormatAmount(h float64) string {
	return strconv.FormatFloat(h, 'f', -1, 64)
}

// TimeOrDuration renders the shift's time column: the clock span in
// time-span mode, the declared total in duration mode.
func TimeOrDuration(s models.Shift) string {
	if s.CustomDuration > 0 {
		return fmt.Sprintf("%s ore", FormatAmount(s.CustomDuration))
	}
	return fmt.Sprintf("%s - %s", s.StartTime, s.EndTime)
}
