package tui

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ffusco/turni/internal/ai"
	"github.com/ffusco/turni/internal/config"
	"github.com/ffusco/turni/internal/models"
	"github.com/ffusco/turni/internal/stats"
	"github.com/ffusco/turni/internal/store"
)

// viewMode selects the main pane.
type viewMode int

const (
	viewCalendar viewMode = iota
	viewStats
)

// --- Messages ---

type aiResultMsg struct {
	token int
	draft models.ShiftDraft
	err   error
}

type pdfDoneMsg struct {
	path string
	err  error
}

// Model is the root bubbletea model: month navigation, the calendar and
// stats panes, the day detail list and the shift form modal.
type Model struct {
	ctx   context.Context
	store *store.Store
	ai    *ai.Client
	theme Theme

	month  time.Time // first day of the displayed month
	cursor time.Time // selected date
	view   viewMode

	form       *FormModel
	selected   int    // index into the cursor day's shifts
	confirming bool   // pending delete confirmation
	confirmID  string // shift to delete on 'y'

	status string
	width  int
	height int
}

func NewModel(ctx context.Context, st *store.Store, client *ai.Client) Model {
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)
	return Model{
		ctx:    ctx,
		store:  st,
		ai:     client,
		theme:  CurrentTheme,
		month:  time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.Local),
		cursor: today,
	}
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case pdfDoneMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Errore esportazione: %v", msg.err)
		} else {
			m.status = fmt.Sprintf("Report salvato: %s", msg.path)
		}
		return m, nil

	case aiResultMsg:
		// A response for a closed form or a superseded request is stale;
		// discard it instead of applying.
		if m.form == nil || msg.token != m.form.aiToken {
			return m, nil
		}
		form, cmd := m.form.handleAIResult(msg)
		m.form = &form
		return m, cmd

	case formSaveMsg:
		if _, err := m.store.Add(m.ctx, msg.seed); err != nil {
			m.status = fmt.Sprintf("Errore salvataggio: %v", err)
		} else {
			m.status = "Turno salvato."
			if d, err := time.ParseInLocation(config.DateFormat, msg.seed.Date, time.Local); err == nil {
				m.setCursor(d)
			}
		}
		m.form = nil
		return m, nil

	case formCancelMsg:
		m.form = nil
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.form != nil {
			form, cmd := m.form.Update(msg)
			m.form = &form
			return m, cmd
		}
		return m.handleKey(msg)
	}

	if m.form != nil {
		form, cmd := m.form.Update(msg)
		m.form = &form
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.confirming {
		switch msg.String() {
		case "y", "d", "enter":
			if err := m.store.Remove(m.ctx, m.confirmID); err != nil {
				m.status = fmt.Sprintf("Errore eliminazione: %v", err)
			} else {
				m.status = "Turno eliminato."
			}
			m.clampSelection()
		}
		m.confirming = false
		m.confirmID = ""
		return m, nil
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit

	case "tab":
		if m.view == viewCalendar {
			m.view = viewStats
		} else {
			m.view = viewCalendar
		}
		return m, nil

	case "n", "pgdown":
		m.setMonth(m.month.AddDate(0, 1, 0))
		return m, nil

	case "p", "pgup":
		m.setMonth(m.month.AddDate(0, -1, 0))
		return m, nil

	case "t":
		now := time.Now()
		m.setCursor(time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local))
		return m, nil

	case "left", "h":
		m.setCursor(m.cursor.AddDate(0, 0, -1))
		return m, nil

	case "right", "l":
		m.setCursor(m.cursor.AddDate(0, 0, 1))
		return m, nil

	case "up", "k":
		m.setCursor(m.cursor.AddDate(0, 0, -7))
		return m, nil

	case "down", "j":
		m.setCursor(m.cursor.AddDate(0, 0, 7))
		return m, nil

	case "J":
		m.moveSelection(1)
		return m, nil

	case "K":
		m.moveSelection(-1)
		return m, nil

	case "a", "enter":
		form := NewFormModel(m.theme, m.cursor, m.ctx, m.ai)
		m.form = &form
		return m, form.Focus()

	case "d", "backspace":
		shifts := m.store.ByDate(m.cursor)
		if len(shifts) == 0 {
			return m, nil
		}
		idx := m.selected
		if idx >= len(shifts) {
			idx = len(shifts) - 1
		}
		m.confirming = true
		m.confirmID = shifts[idx].ID
		return m, nil

	case "e":
		return m, m.exportCmd()
	}
	return m, nil
}

// setCursor moves the selection, following it across month boundaries.
func (m *Model) setCursor(d time.Time) {
	m.cursor = d
	m.month = time.Date(d.Year(), d.Month(), 1, 0, 0, 0, 0, time.Local)
	m.selected = 0
	m.status = ""
}

func (m *Model) setMonth(first time.Time) {
	m.month = first
	m.cursor = first
	m.selected = 0
	m.status = ""
}

func (m *Model) moveSelection(delta int) {
	n := len(m.store.ByDate(m.cursor))
	if n == 0 {
		m.selected = 0
		return
	}
	m.selected = (m.selected + delta + n) % n
}

func (m *Model) clampSelection() {
	if n := len(m.store.ByDate(m.cursor)); m.selected >= n {
		m.selected = 0
	}
}

// exportCmd renders the displayed month's report in the background.
func (m Model) exportCmd() tea.Cmd {
	summary := stats.Aggregate(m.store.ByMonth(m.month.Year(), m.month.Month()), m.month.Year(), m.month.Month())
	return func() tea.Msg {
		path, err := GeneratePDFReport(summary)
		return pdfDoneMsg{path: path, err: err}
	}
}

// aiParseCmd runs the quick-fill request; the token lets the form drop
// responses that arrive after a newer submission.
func aiParseCmd(ctx context.Context, client *ai.Client, token int, text string) tea.Cmd {
	reference := time.Now().Format(config.DateFormat)
	return func() tea.Msg {
		draft, err := client.ParseShift(ctx, text, reference)
		return aiResultMsg{token: token, draft: draft, err: err}
	}
}

func (m Model) View() string {
	if m.form != nil {
		return m.theme.Base.Render(m.form.View())
	}

	var body string
	switch m.view {
	case viewStats:
		body = m.viewStats()
	default:
		body = m.viewCalendar()
	}
	return m.theme.Base.Render(body)
}
