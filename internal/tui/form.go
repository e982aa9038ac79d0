package tui

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ffusco/turni/internal/ai"
	"github.com/ffusco/turni/internal/config"
	"github.com/ffusco/turni/internal/models"
)

type formField int

const (
	fieldPrompt formField = iota
	fieldDate
	fieldMode
	fieldStart
	fieldEnd
	fieldBreak
	fieldDuration
	fieldType
	fieldDesc
)

type formSaveMsg struct{ seed models.Shift }

type formCancelMsg struct{}

// FormModel is the add-shift modal: manual entry in two modes (time span
// or flat duration) plus the optional AI quick-fill line.
type FormModel struct {
	theme Theme
	ctx   context.Context
	ai    *ai.Client

	prompt   textinput.Model
	date     textinput.Model
	start    textinput.Model
	end      textinput.Model
	brk      textinput.Model
	duration textinput.Model
	desc     textinput.Model

	durationMode bool
	typeIdx      int
	focus        formField

	aiPending bool
	aiToken   int
	errMsg    string
}

func NewFormModel(theme Theme, date time.Time, ctx context.Context, client *ai.Client) FormModel {
	newInput := func(placeholder string, width, limit int) textinput.Model {
		ti := textinput.New()
		ti.Placeholder = placeholder
		ti.Width = width
		ti.CharLimit = limit
		return ti
	}

	f := FormModel{
		theme:    theme,
		ctx:      ctx,
		ai:       client,
		prompt:   newInput("es. 8 ore ferie lunedì", 40, 120),
		date:     newInput("YYYY-MM-DD", 12, 10),
		start:    newInput("HH:mm", 7, 5),
		end:      newInput("HH:mm", 7, 5),
		brk:      newInput("0", 5, 4),
		duration: newInput("8", 6, 6),
		desc:     newInput("Note, luogo, ecc.", 40, config.MaxDescriptionLen),
	}
	f.date.SetValue(date.Format(config.DateFormat))
	f.start.SetValue(config.DefaultStartTime)
	f.end.SetValue(config.DefaultEndTime)
	f.duration.SetValue(FormatAmount(config.DefaultDuration))
	f.focus = f.firstField()
	f.syncFocus()
	return f
}

func (f FormModel) firstField() formField {
	if f.ai.Enabled() {
		return fieldPrompt
	}
	return fieldDate
}

// fields returns the focusable fields in visual order for the active mode.
func (f FormModel) fields() []formField {
	var order []formField
	if f.ai.Enabled() {
		order = append(order, fieldPrompt)
	}
	order = append(order, fieldDate, fieldMode)
	if f.durationMode {
		order = append(order, fieldDuration)
	} else {
		order = append(order, fieldStart, fieldEnd, fieldBreak)
	}
	return append(order, fieldType, fieldDesc)
}

func (f *FormModel) input(field formField) *textinput.Model {
	switch field {
	case fieldPrompt:
		return &f.prompt
	case fieldDate:
		return &f.date
	case fieldStart:
		return &f.start
	case fieldEnd:
		return &f.end
	case fieldBreak:
		return &f.brk
	case fieldDuration:
		return &f.duration
	case fieldDesc:
		return &f.desc
	}
	return nil
}

// Focus gives input focus to the active field.
func (f FormModel) Focus() tea.Cmd {
	return textinput.Blink
}

func (f *FormModel) syncFocus() {
	for _, field := range []formField{fieldPrompt, fieldDate, fieldStart, fieldEnd, fieldBreak, fieldDuration, fieldDesc} {
		f.input(field).Blur()
	}
	if in := f.input(f.focus); in != nil {
		in.Focus()
	}
}

func (f *FormModel) moveFocus(delta int) {
	order := f.fields()
	idx := 0
	for i, field := range order {
		if field == f.focus {
			idx = i
			break
		}
	}
	idx = (idx + delta + len(order)) % len(order)
	f.focus = order[idx]
	f.syncFocus()
}

func (f FormModel) Update(msg tea.Msg) (FormModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return f, nil
	}

	switch keyMsg.String() {
	case "esc":
		return f, func() tea.Msg { return formCancelMsg{} }

	case "tab", "down":
		f.moveFocus(1)
		return f, nil

	case "shift+tab", "up":
		f.moveFocus(-1)
		return f, nil

	case "ctrl+s":
		return f.submit()

	case "enter":
		if f.focus == fieldPrompt {
			return f.submitAI()
		}
		return f.submit()
	}

	switch f.focus {
	case fieldMode:
		switch keyMsg.String() {
		case "left", "right", "h", "l", " ":
			f.durationMode = !f.durationMode
		}
		return f, nil

	case fieldType:
		switch keyMsg.String() {
		case "right", "l", " ":
			f.typeIdx = (f.typeIdx + 1) % len(models.ShiftTypes)
		case "left", "h":
			f.typeIdx = (f.typeIdx + len(models.ShiftTypes) - 1) % len(models.ShiftTypes)
		}
		return f, nil
	}

	f.syncFocus()
	in := f.input(f.focus)
	if in == nil {
		return f, nil
	}
	var cmd tea.Cmd
	*in, cmd = in.Update(msg)
	return f, cmd
}

// submitAI fires the quick-fill request. Re-entry is blocked while a call
// is pending; each submission bumps the token so a late response for an
// older prompt is discarded.
func (f FormModel) submitAI() (FormModel, tea.Cmd) {
	text := strings.TrimSpace(f.prompt.Value())
	if f.aiPending || text == "" {
		return f, nil
	}
	f.aiPending = true
	f.aiToken++
	f.errMsg = ""
	return f, aiParseCmd(f.ctx, f.ai, f.aiToken, text)
}

func (f FormModel) handleAIResult(msg aiResultMsg) (FormModel, tea.Cmd) {
	f.aiPending = false
	if msg.err != nil {
		if errors.Is(msg.err, ai.ErrNoResult) {
			f.errMsg = "Non ho capito. Prova '8 ore ferie domani' o '9-18 lavoro'."
		} else {
			f.errMsg = "Servizio AI non disponibile."
		}
		return f, nil
	}
	f.errMsg = ""
	f.applyDraft(msg.draft)
	return f, nil
}

func (f *FormModel) applyDraft(d models.ShiftDraft) {
	if d.Date != "" {
		f.date.SetValue(d.Date)
	}
	if d.HasDuration() {
		f.durationMode = true
		f.duration.SetValue(FormatAmount(*d.CustomDuration))
	} else if d.StartTime != "" || d.EndTime != "" {
		f.durationMode = false
		if d.StartTime != "" {
			f.start.SetValue(d.StartTime)
		}
		if d.EndTime != "" {
			f.end.SetValue(d.EndTime)
		}
	}
	if d.BreakMinutes != nil {
		f.brk.SetValue(strconv.Itoa(*d.BreakMinutes))
	}
	if d.Type != "" {
		for i, t := range models.ShiftTypes {
			if t == d.Type {
				f.typeIdx = i
				break
			}
		}
	}
	if d.Description != "" {
		f.desc.SetValue(d.Description)
	}
}

func (f FormModel) submit() (FormModel, tea.Cmd) {
	seed, err := f.buildSeed()
	if err != nil {
		f.errMsg = err.Error()
		return f, nil
	}
	return f, func() tea.Msg { return formSaveMsg{seed: seed} }
}

func (f FormModel) buildSeed() (models.Shift, error) {
	dateVal := strings.TrimSpace(f.date.Value())
	if _, err := time.ParseInLocation(config.DateFormat, dateVal, time.Local); err != nil {
		return models.Shift{}, fmt.Errorf("data non valida, usa il formato YYYY-MM-DD")
	}

	seed := models.Shift{
		Date:        dateVal,
		Type:        models.ShiftTypes[f.typeIdx],
		Description: strings.TrimSpace(f.desc.Value()),
	}

	if f.durationMode {
		hours, err := strconv.ParseFloat(strings.TrimSpace(f.duration.Value()), 64)
		if err != nil || hours <= 0 {
			return models.Shift{}, fmt.Errorf("ore totali non valide")
		}
		seed.CustomDuration = hours
		return seed, nil
	}

	startVal := strings.TrimSpace(f.start.Value())
	endVal := strings.TrimSpace(f.end.Value())
	if _, err := time.Parse(config.ClockFormat, startVal); err != nil {
		return models.Shift{}, fmt.Errorf("orario di inizio non valido, usa HH:mm")
	}
	if _, err := time.Parse(config.ClockFormat, endVal); err != nil {
		return models.Shift{}, fmt.Errorf("orario di fine non valido, usa HH:mm")
	}
	seed.StartTime = startVal
	seed.EndTime = endVal

	if brkVal := strings.TrimSpace(f.brk.Value()); brkVal != "" {
		minutes, err := strconv.Atoi(brkVal)
		if err != nil || minutes < 0 {
			return models.Shift{}, fmt.Errorf("pausa non valida")
		}
		seed.BreakMinutes = minutes
	}
	return seed, nil
}
