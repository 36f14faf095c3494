package app

import (
	"github.com/jung-kurt/gofpdf"

	"github.com/stayscan/stayscan/internal/extract"
	"github.com/stayscan/stayscan/internal/tabulate"
)

// Column widths in mm for an A4 landscape page, matching FieldNames order.
var pdfColWidths = []float64{42, 48, 26, 34, 26, 18, 22, 22, 39}

// writeTablePDF renders the availability table as a minimal PDF report. This
// is intentionally simple: fixed column widths, clipped cells, a repeated
// header after each page break.
func writeTablePDF(outPath string, records []extract.Record) error {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.AddPage()

	header := func() {
		pdf.SetFont("Helvetica", "B", 8)
		for i, name := range extract.FieldNames {
			pdf.CellFormat(pdfColWidths[i], 7, name, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetFont("Helvetica", "", 8)
	}
	header()

	for _, r := range records {
		if pdf.GetY() > 185 {
			pdf.AddPage()
			header()
		}
		for i, cell := range r.Values() {
			pdf.CellFormat(pdfColWidths[i], 6, tabulate.Clip(cell, 40), "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	return pdf.OutputFileAndClose(outPath)
}
