package service

import (
	"fmt"

	"github.com/EfrainEsquivar/GrupoKZ-copiaV1/internal/infra"
	"github.com/EfrainEsquivar/GrupoKZ-copiaV1/internal/model"
)

// Entidades exportables.
const (
	EntidadCuentas   = "cuentas_por_pagar"
	EntidadProductos = "productos"
)

// TablaCuentas shapes the filtered payables for export. A missing descripcion
// or gasto is shown as "-".
func TablaCuentas(cuentas []model.CuentaPorPagar) infra.Tabla {
	filas := make([][]interface{}, 0, len(cuentas))
	for _, c := range cuentas {
		fecha := ""
		if c.Fecha != nil {
			fecha = c.Fecha.Format(FormatoFecha)
		}
		var gasto interface{}
		if concepto := c.GastoConcepto(); concepto != "" {
			gasto = concepto
		}
		filas = append(filas, []interface{}{
			fecha,
			model.Texto(c.Proveedor),
			c.Importe.Decimal,
			model.Texto(c.Estado),
			c.Descripcion,
			gasto,
		})
	}
	return infra.Tabla{
		Titulo:   "Cuentas por Pagar",
		Hoja:     "CuentasPorPagar",
		Nombre:   EntidadCuentas,
		Columnas: []string{"Fecha", "Proveedor", "Importe", "Estado", "Descripción", "Gasto"},
		Filas:    filas,
		Resumen:  fmt.Sprintf("Total de cuentas: %d", len(cuentas)),
	}
}

// TablaProductos shapes the catalog of one material for export.
func TablaProductos(material string, productos []model.Producto) infra.Tabla {
	filas := make([][]interface{}, 0, len(productos))
	for _, p := range productos {
		filas = append(filas, []interface{}{
			model.Texto(p.Nombre),
			p.Existencia.Decimal,
			p.Precio.Decimal,
			model.Texto(p.Unidad),
		})
	}
	return infra.Tabla{
		Titulo:   "Productos de " + material,
		Hoja:     hojaMaterial(material),
		Nombre:   EntidadProductos + "_" + nombreArchivo(material),
		Columnas: []string{"Nombre", "Existencia", "Precio", "Unidad"},
		Filas:    filas,
		Resumen:  fmt.Sprintf("Total de productos: %d", len(productos)),
	}
}

var sinAcentos = map[rune]rune{'á': 'a', 'é': 'e', 'í': 'i', 'ó': 'o', 'ú': 'u', 'ñ': 'n',
	'Á': 'A', 'É': 'E', 'Í': 'I', 'Ó': 'O', 'Ú': 'U', 'Ñ': 'N'}

// hojaMaterial strips accents and spaces so "Celofán" becomes sheet "Celofan".
// Characters not allowed in sheet names become "_"; an empty result falls
// back to "Productos".
func hojaMaterial(material string) string {
	out := make([]rune, 0, len(material))
	for _, r := range material {
		switch r {
		case ' ', '\'':
			continue
		case ':', '\\', '/', '?', '*', '[', ']':
			r = '_'
		}
		if s, ok := sinAcentos[r]; ok {
			r = s
		}
		out = append(out, r)
	}
	if len(out) == 0 {
		return "Productos"
	}
	if len(out) > 31 {
		out = out[:31]
	}
	return string(out)
}

func nombreArchivo(material string) string {
	out := make([]rune, 0, len(material))
	for _, r := range hojaMaterial(material) {
		if r >= 'A' && r <= 'Z' {
			r += 'a' - 'A'
		}
		out = append(out, r)
	}
	return string(out)
}
