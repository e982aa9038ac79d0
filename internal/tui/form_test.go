package tui

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ffusco/turni/internal/ai"
	"github.com/ffusco/turni/internal/models"
)

func newTestForm(t *testing.T, client *ai.Client) FormModel {
	t.Helper()
	day := time.Date(2024, time.March, 5, 0, 0, 0, 0, time.Local)
	return NewFormModel(Themes["default"], day, context.Background(), client)
}

func keyPress(s string) tea.KeyMsg {
	switch s {
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestFormDefaultsAndFirstField(t *testing.T) {
	f := newTestForm(t, ai.NewClient(""))
	if f.focus != fieldDate {
		t.Fatalf("without AI the form must start on the date field, got %v", f.focus)
	}
	if got := f.date.Value(); got != "2024-03-05" {
		t.Fatalf("date prefill = %q", got)
	}
	if f.durationMode {
		t.Fatalf("time-span mode must be the default")
	}

	withAI := newTestForm(t, ai.NewClient("key"))
	if withAI.focus != fieldPrompt {
		t.Fatalf("with AI the form must start on the prompt, got %v", withAI.focus)
	}
}

func TestFormModeToggleChangesFieldOrder(t *testing.T) {
	f := newTestForm(t, ai.NewClient(""))

	f.focus = fieldMode
	f.syncFocus()
	f, _ = f.Update(keyPress("right"))
	if !f.durationMode {
		t.Fatalf("expected duration mode after toggle")
	}

	fields := f.fields()
	for _, field := range fields {
		if field == fieldStart || field == fieldEnd || field == fieldBreak {
			t.Fatalf("span fields must be hidden in duration mode, got %v", fields)
		}
	}

	f, _ = f.Update(keyPress("left"))
	if f.durationMode {
		t.Fatalf("expected span mode after toggling back")
	}
}

func TestFormEscCancels(t *testing.T) {
	f := newTestForm(t, ai.NewClient(""))
	_, cmd := f.Update(keyPress("esc"))
	if cmd == nil {
		t.Fatalf("esc must produce a command")
	}
	if _, ok := cmd().(formCancelMsg); !ok {
		t.Fatalf("esc must emit formCancelMsg")
	}
}

func TestBuildSeedTimeSpan(t *testing.T) {
	f := newTestForm(t, ai.NewClient(""))
	f.start.SetValue("09:00")
	f.end.SetValue("17:30")
	f.brk.SetValue("30")
	f.desc.SetValue("  cantiere nord  ")

	seed, err := f.buildSeed()
	if err != nil {
		t.Fatalf("buildSeed failed: %v", err)
	}
	if seed.Date != "2024-03-05" || seed.StartTime != "09:00" || seed.EndTime != "17:30" {
		t.Fatalf("seed = %+v", seed)
	}
	if seed.BreakMinutes != 30 {
		t.Fatalf("BreakMinutes = %d", seed.BreakMinutes)
	}
	if seed.Description != "cantiere nord" {
		t.Fatalf("Description = %q, want trimmed value", seed.Description)
	}
	if seed.CustomDuration != 0 {
		t.Fatalf("span mode must not set a duration, got %v", seed.CustomDuration)
	}
}

func TestBuildSeedDuration(t *testing.T) {
	f := newTestForm(t, ai.NewClient(""))
	f.durationMode = true
	f.duration.SetValue("7.5")

	seed, err := f.buildSeed()
	if err != nil {
		t.Fatalf("buildSeed failed: %v", err)
	}
	if seed.CustomDuration != 7.5 {
		t.Fatalf("CustomDuration = %v", seed.CustomDuration)
	}
	if seed.StartTime != "" || seed.EndTime != "" {
		t.Fatalf("duration mode must not carry a span, got %+v", seed)
	}
}

func TestBuildSeedValidation(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(f *FormModel)
		wantErr string
	}{
		{
			name:    "bad date",
			mutate:  func(f *FormModel) { f.date.SetValue("05/03/2024") },
			wantErr: "data non valida, usa il formato YYYY-MM-DD",
		},
		{
			name:    "bad start",
			mutate:  func(f *FormModel) { f.start.SetValue("9am") },
			wantErr: "orario di inizio non valido, usa HH:mm",
		},
		{
			name:    "bad end",
			mutate:  func(f *FormModel) { f.end.SetValue("25:99") },
			wantErr: "orario di fine non valido, usa HH:mm",
		},
		{
			name:    "negative break",
			mutate:  func(f *FormModel) { f.brk.SetValue("-5") },
			wantErr: "pausa non valida",
		},
		{
			name: "zero duration",
			mutate: func(f *FormModel) {
				f.durationMode = true
				f.duration.SetValue("0")
			},
			wantErr: "ore totali non valide",
		},
		{
			name: "garbage duration",
			mutate: func(f *FormModel) {
				f.durationMode = true
				f.duration.SetValue("otto")
			},
			wantErr: "ore totali non valide",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newTestForm(t, ai.NewClient(""))
			tc.mutate(&f)
			_, err := f.buildSeed()
			if err == nil || err.Error() != tc.wantErr {
				t.Fatalf("buildSeed error = %v, want %q", err, tc.wantErr)
			}
		})
	}
}

func TestApplyDraftDuration(t *testing.T) {
	f := newTestForm(t, ai.NewClient("key"))
	hours := 8.0
	f.applyDraft(models.ShiftDraft{
		Date:           "2024-03-06",
		Type:           models.TypeLeave,
		CustomDuration: &hours,
		Description:    "ferie",
	})

	if !f.durationMode {
		t.Fatalf("draft with a duration must switch to duration mode")
	}
	if got := f.duration.Value(); got != "8" {
		t.Fatalf("duration field = %q", got)
	}
	if got := f.date.Value(); got != "2024-03-06" {
		t.Fatalf("date field = %q", got)
	}
	if models.ShiftTypes[f.typeIdx] != models.TypeLeave {
		t.Fatalf("type picker = %q", models.ShiftTypes[f.typeIdx])
	}
	if got := f.desc.Value(); got != "ferie" {
		t.Fatalf("description field = %q", got)
	}
}

func TestApplyDraftSpanAndBreak(t *testing.T) {
	f := newTestForm(t, ai.NewClient("key"))
	f.durationMode = true
	brk := 45
	f.applyDraft(models.ShiftDraft{
		StartTime:    "10:00",
		EndTime:      "19:00",
		BreakMinutes: &brk,
	})

	if f.durationMode {
		t.Fatalf("draft with a span must switch back to span mode")
	}
	if f.start.Value() != "10:00" || f.end.Value() != "19:00" || f.brk.Value() != "45" {
		t.Fatalf("fields = %q %q %q", f.start.Value(), f.end.Value(), f.brk.Value())
	}
}

func TestSubmitAIBlocksReentry(t *testing.T) {
	f := newTestForm(t, ai.NewClient("key"))
	f.prompt.SetValue("8 ore ferie domani")

	f, cmd := f.submitAI()
	if cmd == nil || !f.aiPending {
		t.Fatalf("first submission must fire a command and mark pending")
	}
	token := f.aiToken

	f, cmd = f.submitAI()
	if cmd != nil {
		t.Fatalf("submission while pending must be ignored")
	}
	if f.aiToken != token {
		t.Fatalf("ignored submission must not bump the token")
	}
}

func TestSubmitAIIgnoresEmptyPrompt(t *testing.T) {
	f := newTestForm(t, ai.NewClient("key"))
	f.prompt.SetValue("   ")
	if _, cmd := f.submitAI(); cmd != nil {
		t.Fatalf("blank prompt must not fire a request")
	}
}

func TestHandleAIResultMessages(t *testing.T) {
	f := newTestForm(t, ai.NewClient("key"))
	f.aiPending = true

	f, _ = f.handleAIResult(aiResultMsg{err: ai.ErrNoResult})
	if f.aiPending {
		t.Fatalf("a result must clear the pending flag")
	}
	if f.errMsg != "Non ho capito. Prova '8 ore ferie domani' o '9-18 lavoro'." {
		t.Fatalf("errMsg = %q", f.errMsg)
	}

	f, _ = f.handleAIResult(aiResultMsg{err: errors.New("dial tcp: timeout")})
	if f.errMsg != "Servizio AI non disponibile." {
		t.Fatalf("errMsg = %q", f.errMsg)
	}

	hours := 6.0
	f, _ = f.handleAIResult(aiResultMsg{draft: models.ShiftDraft{CustomDuration: &hours}})
	if f.errMsg != "" {
		t.Fatalf("a successful draft must clear the error, got %q", f.errMsg)
	}
	if !f.durationMode || f.duration.Value() != "6" {
		t.Fatalf("draft not applied: mode=%v duration=%q", f.durationMode, f.duration.Value())
	}
}
