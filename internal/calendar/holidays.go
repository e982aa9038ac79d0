package calendar

import "time"

type monthDay struct {
	Month time.Month
	Day   int
}

// Italian national holidays with a fixed date. These recur every year.
var fixedHolidays = map[monthDay]string{
	{time.January, 1}:   "Capodanno",
	{time.January, 6}:   "Epifania",
	{time.April, 25}:    "Liberazione",
	{time.May, 1}:       "Festa del Lavoro",
	{time.June, 2}:      "Festa Repubblica",
	{time.August, 15}:   "Ferragosto",
	{time.November, 1}:  "Ognissanti",
	{time.December, 8}:  "Immacolata",
	{time.December, 25}: "Natale",
	{time.December, 26}: "S. Stefano",
}

// Holiday returns the holiday name for a date, if any. Fixed-date holidays
// are matched on day and month; Easter Sunday and Monday are computed per
// year from the date's own year.
func Holiday(t time.Time) (string, bool) {
	if name, ok := fixedHolidays[monthDay{t.Month(), t.Day()}]; ok {
		return name, true
	}

	easter := Easter(t.Year())
	if SameDay(t, easter) {
		return "Pasqua", true
	}
	if SameDay(t, easter.AddDate(0, 0, 1)) {
		return "Pasquetta", true
	}
	return "", false
}

// Easter computes the date of Easter Sunday in the Gregorian calendar using
// the Meeus/Jones/Butcher algorithm.
func Easter(year int) time.Time {
	g := year % 19
	c := year / 100
	h := (c - c/4 - (8*c+13)/25 + 19*g + 15) % 30
	i := h - (h/28)*(1-(29/(h+1))*((21-g)/11))
	j := (year + year/4 + i + 2 - c + c/4) % 7
	l := i - j
	month := 3 + (l+40)/44
	day := l + 28 - 31*(month/4)
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local)
}
