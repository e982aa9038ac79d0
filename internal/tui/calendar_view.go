package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/ffusco/turni/internal/calendar"
	"github.com/ffusco/turni/internal/stats"
)

const cellWidth = 5

func (m Model) viewCalendar() string {
	var b strings.Builder

	b.WriteString(m.theme.Title.Render(MonthTitle(m.month.Year(), m.month.Month())))
	b.WriteString("  ")
	b.WriteString(m.theme.Subtitle.Render("I Miei Turni"))
	b.WriteString("\n\n")

	var header strings.Builder
	for _, wd := range weekdayShort {
		header.WriteString(m.theme.Weekday.Render(fmt.Sprintf("%-*s", cellWidth, wd)))
	}
	b.WriteString(header.String())
	b.WriteString("\n")

	days := calendar.MonthGrid(m.month.Year(), m.month.Month())
	for i, day := range days {
		b.WriteString(m.renderDayCell(day))
		if (i+1)%7 == 0 {
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(m.renderDayDetail())
	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

func (m Model) renderDayCell(day time.Time) string {
	marker := " "
	if len(m.store.ByDate(day)) > 0 {
		marker = "•"
	}
	content := fmt.Sprintf("%2d%s", day.Day(), marker)

	var style lipgloss.Style
	_, isHoliday := calendar.Holiday(day)
	today := time.Now()
	switch {
	case calendar.SameDay(day, m.cursor):
		style = m.theme.Cursor
	case calendar.SameDay(day, today):
		style = m.theme.Today
	case day.Month() != m.month.Month():
		style = m.theme.DayOutside
	case isHoliday || day.Weekday() == time.Sunday:
		style = m.theme.HolidayDay
	default:
		style = m.theme.Day
	}
	return style.Render(content) + strings.Repeat(" ", cellWidth-lipgloss.Width(content))
}

// renderDayDetail lists the cursor day's shifts with net hours, plus the
// holiday name when the day is one.
func (m Model) renderDayDetail() string {
	var b strings.Builder

	heading := fmt.Sprintf("%s %d %s", weekdayShort[(int(m.cursor.Weekday())+6)%7], m.cursor.Day(), monthNames[m.cursor.Month()-1])
	b.WriteString(m.theme.Selected.Render(heading))
	if name, ok := calendar.Holiday(m.cursor); ok {
		b.WriteString("  ")
		b.WriteString(m.theme.Holiday.Render(name))
	}
	b.WriteString("\n")

	shifts := m.store.ByDate(m.cursor)
	if len(shifts) == 0 {
		b.WriteString(m.theme.Dim.Render("Nessun turno inserito."))
		b.WriteString("\n")
		return b.String()
	}

	for i, s := range shifts {
		line := fmt.Sprintf("%s  %s  %sh", s.Type, TimeOrDuration(s), FormatHours(stats.NetHours(s)))
		if s.BreakMinutes > 0 && s.CustomDuration == 0 {
			line += fmt.Sprintf("  (Pausa: %d min)", s.BreakMinutes)
		}
		if s.Description != "" {
			line += "  " + s.Description
		}
		line = ansi.Truncate(line, 76, "…")
		if i == m.selected {
			b.WriteString(m.theme.Selected.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}

	if m.confirming {
		b.WriteString(m.theme.Error.Render("Eliminare il turno selezionato? (y/n)"))
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderFooter() string {
	var b strings.Builder
	if m.status != "" {
		b.WriteString(m.theme.Subtitle.Render(m.status))
		b.WriteString("\n")
	}
	help := "←→↑↓ giorno | n/p mese | t oggi | a nuovo | d elimina | J/K turni | tab statistiche | e PDF | q esci"
	b.WriteString(m.theme.Dim.Render(help))
	return b.String()
}
