package tui

import (
	"fmt"
	"strings"

	"github.com/ffusco/turni/internal/stats"
)

func (m Model) viewStats() string {
	var b strings.Builder

	b.WriteString(m.theme.Title.Render(MonthTitle(m.month.Year(), m.month.Month())))
	b.WriteString("  ")
	b.WriteString(m.theme.Subtitle.Render("Riepilogo Mensile"))
	b.WriteString("\n\n")

	summary := stats.Aggregate(m.store.ByMonth(m.month.Year(), m.month.Month()), m.month.Year(), m.month.Month())
	if len(summary.ByType) == 0 {
		b.WriteString(m.theme.Dim.Render("Nessun turno per questo mese."))
		b.WriteString("\n\n")
		b.WriteString(m.renderFooter())
		return b.String()
	}

	b.WriteString(m.theme.Total.Render(fmt.Sprintf("%s Ore Totali", FormatHours(summary.Total))))
	b.WriteString("\n\n")

	for _, t := range summary.Types() {
		b.WriteString(fmt.Sprintf("%s%sh\n",
			m.theme.Label.Render(fmt.Sprintf("%-24s", string(t))),
			m.theme.Total.Render(FormatHours(summary.ByType[t]))))
	}

	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}
