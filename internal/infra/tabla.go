package infra

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Tabla is the format-neutral snapshot every exporter renders: a title, the
// sheet name, display columns, one row per record and a trailing summary line.
type Tabla struct {
	Titulo   string
	Hoja     string
	Nombre   string // base file name, without extension
	Columnas []string
	Filas    [][]interface{}
	Resumen  string
}

// TextoCelda renders a cell for the text formats (PDF and HTML).
func TextoCelda(v interface{}) string {
	switch c := v.(type) {
	case nil:
		return "-"
	case string:
		return c
	case decimal.Decimal:
		return c.String()
	case *string:
		if c == nil || *c == "" {
			return "-"
		}
		return *c
	default:
		return fmt.Sprint(c)
	}
}

func textoFilas(t Tabla) [][]string {
	out := make([][]string, len(t.Filas))
	for i, fila := range t.Filas {
		out[i] = make([]string, len(fila))
		for j, v := range fila {
			out[i][j] = TextoCelda(v)
		}
	}
	return out
}
