package tui

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-pdf/fpdf"

	"github.com/ffusco/turni/internal/config"
	"github.com/ffusco/turni/internal/stats"
	"github.com/ffusco/turni/internal/util"
)

// GeneratePDFReport writes the monthly report: one table row per shift,
// followed by per-category totals. Returns the absolute path of the file.
func GeneratePDFReport(summary stats.MonthlySummary) (string, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, tr(fmt.Sprintf("Report Turni - %s", MonthTitle(summary.Year, summary.Month))))
	pdf.Ln(14)

	colWidths := []float64{28, 38, 46, 78}
	headers := []string{"Data", "Orario / Ore", "Tipo", "Note"}

	pdf.SetFont("Arial", "B", 11)
	pdf.SetFillColor(230, 230, 230)
	for i, h := range headers {
		pdf.CellFormat(colWidths[i], 8, h, "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 10)
	for _, s := range summary.Shifts {
		note := s.Description
		timeStr := TimeOrDuration(s)
		if s.CustomDuration > 0 {
			timeStr = fmt.Sprintf("Totale: %sh", FormatAmount(s.CustomDuration))
		} else if s.BreakMinutes > 0 {
			if note != "" {
				note += " "
			}
			note += fmt.Sprintf("(Pausa: %d min)", s.BreakMinutes)
		}
		cells := []string{
			s.Day().Format(config.ReportFormat),
			timeStr,
			string(s.Type),
			note,
		}
		for i, c := range cells {
			pdf.CellFormat(colWidths[i], 7, tr(c), "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	pdf.Ln(6)
	pdf.SetFont("Arial", "B", 11)
	for _, t := range summary.Types() {
		pdf.Cell(0, 7, tr(fmt.Sprintf("%s: %sh", t, FormatHours(summary.ByType[t]))))
		pdf.Ln(6)
	}
	pdf.Ln(2)
	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Ore totali: %sh", FormatHours(summary.Total)))

	reportRoot := util.ReportsDir(config.AppName)
	if err := os.MkdirAll(reportRoot, 0o755); err != nil {
		return "", err
	}
	filename := filepath.Join(reportRoot, fmt.Sprintf("Turni_%d_%02d.pdf", summary.Year, int(summary.Month)))
	if err := pdf.OutputFileAndClose(filename); err != nil {
		return "", err
	}
	return filepath.Abs(filename)
}
