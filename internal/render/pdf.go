package render

import (
	"path/filepath"

	"github.com/go-pdf/fpdf"
)

// PDFRenderer writes the classic single-page A4 certificate.
type PDFRenderer struct {
	dir string
}

func (r *PDFRenderer) Render(c Certificate) (string, error) {
	path := filepath.Join(r.dir, c.Code+".pdf")

	pdf := fpdf.New("P", "mm", "A4", "")
	// Core fonts are cp1252; translate the accented strings.
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Arial", "", 24)
	pdf.SetTextColor(10, 50, 150)
	pdf.CellFormat(0, 40, tr(title), "", 1, "C", false, 0, "")
	pdf.Ln(20)

	pdf.SetFont("Arial", "", 16)
	pdf.SetTextColor(0, 0, 0)
	pdf.MultiCell(0, 10, tr(c.body()), "", "C", false)

	pdf.SetY(-30)
	pdf.SetFont("Arial", "I", 12)
	pdf.CellFormat(0, 10, tr(footer), "", 1, "C", false, 0, "")

	if err := pdf.OutputFileAndClose(path); err != nil {
		return "", err
	}
	return path, nil
}
