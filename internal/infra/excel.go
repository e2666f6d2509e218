package infra

import (
	"bytes"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// GenerarXLSX writes t as a single-sheet workbook named t.Hoja: a bold header
// row followed by one row per record. Decimal cells are written as numbers.
func GenerarXLSX(t Tabla) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	hoja := t.Hoja
	if hoja == "" {
		hoja = "Hoja1"
	}
	if err := f.SetSheetName(f.GetSheetName(f.GetActiveSheetIndex()), hoja); err != nil {
		return nil, fmt.Errorf("excel: nombre de hoja: %w", err)
	}

	header := make([]interface{}, len(t.Columnas))
	for i, c := range t.Columnas {
		header[i] = c
	}
	if err := f.SetSheetRow(hoja, "A1", &header); err != nil {
		return nil, fmt.Errorf("excel: encabezado: %w", err)
	}

	for i, fila := range t.Filas {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, fmt.Errorf("excel: celda: %w", err)
		}
		row := make([]interface{}, len(fila))
		for j, v := range fila {
			row[j] = valorCelda(v)
		}
		if err := f.SetSheetRow(hoja, cell, &row); err != nil {
			return nil, fmt.Errorf("excel: fila %d: %w", i+2, err)
		}
	}

	if len(t.Columnas) > 0 {
		bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
		if err != nil {
			return nil, fmt.Errorf("excel: estilo: %w", err)
		}
		last, _ := excelize.CoordinatesToCellName(len(t.Columnas), 1)
		if err := f.SetCellStyle(hoja, "A1", last, bold); err != nil {
			return nil, fmt.Errorf("excel: estilo: %w", err)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("excel: escribir: %w", err)
	}
	return buf.Bytes(), nil
}

func valorCelda(v interface{}) interface{} {
	switch c := v.(type) {
	case decimal.Decimal:
		return c.InexactFloat64()
	case nil, *string:
		return TextoCelda(c)
	default:
		return c
	}
}
