package tui

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Name       string
	Base       lipgloss.Style
	Title      lipgloss.Style
	Subtitle   lipgloss.Style
	Weekday    lipgloss.Style
	Day        lipgloss.Style
	DayOutside lipgloss.Style
	Today      lipgloss.Style
	Cursor     lipgloss.Style
	HolidayDay lipgloss.Style
	Holiday    lipgloss.Style
	Marker     lipgloss.Style
	Selected   lipgloss.Style
	Total      lipgloss.Style
	Dim        lipgloss.Style
	Error      lipgloss.Style
	Input      lipgloss.Style
	Label      lipgloss.Style
	Focused    lipgloss.Style
}

var Themes = map[string]Theme{
	"default": {
		Name:       "Default",
		Base:       lipgloss.NewStyle().Margin(1, 2),
		Title:      lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Subtitle:   lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		Weekday:    lipgloss.NewStyle().Foreground(lipgloss.Color("63")).Bold(true),
		Day:        lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		DayOutside: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Today:      lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("63")).Bold(true),
		Cursor:     lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("205")).Bold(true),
		HolidayDay: lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Holiday:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		Marker:     lipgloss.NewStyle().Foreground(lipgloss.Color("81")),
		Selected:   lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Total:      lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Bold(true),
		Dim:        lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Error:      lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Input:      lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("205")).Padding(0, 1),
		Label:      lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		Focused:    lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
	},
}

// CurrentTheme holds the currently active theme.
var CurrentTheme = Themes["default"]
