package tui

import (
	"fmt"
	"strings"

	"github.com/ffusco/turni/internal/models"
)

func (f FormModel) View() string {
	var b strings.Builder

	b.WriteString(f.theme.Title.Render("Aggiungi Turno"))
	b.WriteString("\n\n")

	if f.ai.Enabled() {
		label := "Compilazione Rapida AI"
		if f.aiPending {
			label += " (in corso...)"
		}
		b.WriteString(f.fieldLabel(fieldPrompt, label))
		b.WriteString("\n")
		b.WriteString(f.theme.Input.Render(f.prompt.View()))
		b.WriteString("\n\n")
	}

	b.WriteString(f.fieldLabel(fieldDate, "Data"))
	b.WriteString("  ")
	b.WriteString(f.date.View())
	b.WriteString("\n")

	b.WriteString(f.fieldLabel(fieldMode, "Modalità"))
	b.WriteString("  ")
	b.WriteString(f.renderModeToggle())
	b.WriteString("\n")

	if f.durationMode {
		b.WriteString(f.fieldLabel(fieldDuration, "Ore totali"))
		b.WriteString("  ")
		b.WriteString(f.duration.View())
		b.WriteString("\n")
	} else {
		b.WriteString(f.fieldLabel(fieldStart, "Inizio"))
		b.WriteString("  ")
		b.WriteString(f.start.View())
		b.WriteString("\n")
		b.WriteString(f.fieldLabel(fieldEnd, "Fine"))
		b.WriteString("  ")
		b.WriteString(f.end.View())
		b.WriteString("\n")
		b.WriteString(f.fieldLabel(fieldBreak, "Pausa (minuti)"))
		b.WriteString("  ")
		b.WriteString(f.brk.View())
		b.WriteString("\n")
	}

	b.WriteString(f.fieldLabel(fieldType, "Tipo Turno"))
	b.WriteString("  ")
	b.WriteString(f.renderTypePicker())
	b.WriteString("\n")

	b.WriteString(f.fieldLabel(fieldDesc, "Descrizione"))
	b.WriteString("  ")
	b.WriteString(f.desc.View())
	b.WriteString("\n\n")

	if f.errMsg != "" {
		b.WriteString(f.theme.Error.Render(f.errMsg))
		b.WriteString("\n")
	}
	b.WriteString(f.theme.Dim.Render("tab campo | invio salva | esc annulla"))
	return b.String()
}

func (f FormModel) fieldLabel(field formField, text string) string {
	label := fmt.Sprintf("%-16s", text)
	if f.focus == field {
		return f.theme.Focused.Render(label)
	}
	return f.theme.Label.Render(label)
}

func (f FormModel) renderModeToggle() string {
	span := "Orario (es. 9-17)"
	flat := "Ore Totali (es. 8h)"
	if f.durationMode {
		return f.theme.Dim.Render(span) + "   " + f.theme.Selected.Render("["+flat+"]")
	}
	return f.theme.Selected.Render("["+span+"]") + "   " + f.theme.Dim.Render(flat)
}

func (f FormModel) renderTypePicker() string {
	t := models.ShiftTypes[f.typeIdx]
	return f.theme.Selected.Render(fmt.Sprintf("< %s >", t))
}
