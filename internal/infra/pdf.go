package infra

// pdf.go: printable export of a Tabla using go-pdf/fpdf.
// A4 portrait, title on top, header row repeated on every page, one bordered
// row per record and the summary line after the last row.

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
)

const (
	pdfMargen   = 12.0
	pdfAltoFila = 7.0
)

// GenerarPDF renders t as a paged PDF document and returns its bytes.
func GenerarPDF(t Tabla) ([]byte, error) {
	pdf, err := construirPDF(t)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf: generar: %w", err)
	}
	return buf.Bytes(), nil
}

func construirPDF(t Tabla) (*fpdf.Fpdf, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pdfMargen, pdfMargen, pdfMargen)
	pdf.SetAutoPageBreak(false, pdfMargen)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pageW, pageH := pdf.GetPageSize()
	contentW := pageW - 2*pdfMargen

	// ── Title ────────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(contentW, 10, tr(t.Titulo), "", 1, "C", false, 0, "")
	pdf.Ln(3)

	cols := len(t.Columnas)
	if cols == 0 {
		return nil, fmt.Errorf("pdf: tabla sin columnas")
	}
	colW := contentW / float64(cols)

	encabezado := func() {
		pdf.SetFont("Helvetica", "B", 9)
		pdf.SetFillColor(230, 230, 230)
		for i, c := range t.Columnas {
			ln := 0
			if i == cols-1 {
				ln = 1
			}
			pdf.CellFormat(colW, pdfAltoFila, tr(c), "1", ln, "C", true, 0, "")
		}
		pdf.SetFont("Helvetica", "", 9)
	}
	encabezado()

	// ── Rows ─────────────────────────────────────────────────────────────────
	for _, fila := range textoFilas(t) {
		if pdf.GetY()+pdfAltoFila > pageH-pdfMargen {
			pdf.AddPage()
			encabezado()
		}
		for i := 0; i < cols; i++ {
			texto := ""
			if i < len(fila) {
				texto = recortar(pdf, tr, fila[i], colW-2)
			}
			ln := 0
			if i == cols-1 {
				ln = 1
			}
			pdf.CellFormat(colW, pdfAltoFila, texto, "1", ln, "L", false, 0, "")
		}
	}

	// ── Summary ──────────────────────────────────────────────────────────────
	if t.Resumen != "" {
		if pdf.GetY()+2*pdfAltoFila > pageH-pdfMargen {
			pdf.AddPage()
		}
		pdf.Ln(4)
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(contentW, pdfAltoFila, tr(t.Resumen), "", 1, "L", false, 0, "")
	}
	return pdf, pdf.Error()
}

// recortar translates s and, when it does not fit in width, drops runes from
// the UTF-8 text until the translated result plus "..." fits.
func recortar(pdf *fpdf.Fpdf, tr func(string) string, s string, width float64) string {
	if out := tr(s); pdf.GetStringWidth(out) <= width {
		return out
	}
	r := []rune(s)
	for len(r) > 0 && pdf.GetStringWidth(tr(string(r)+"...")) > width {
		r = r[:len(r)-1]
	}
	return tr(string(r) + "...")
}
