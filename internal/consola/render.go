package consola

import (
	"github.com/EfrainEsquivar/GrupoKZ-copiaV1/internal/infra"
	"github.com/EfrainEsquivar/GrupoKZ-copiaV1/internal/model"
	"github.com/EfrainEsquivar/GrupoKZ-copiaV1/internal/pantalla"
	"github.com/EfrainEsquivar/GrupoKZ-copiaV1/internal/service"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// renderTabla draws t with an ID column in front, so rows can be picked by id.
func renderTabla(t infra.Tabla, ids []int64) string {
	tb := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(append([]string{"ID"}, t.Columnas...)...)
	for i, fila := range t.Filas {
		celdas := make([]string, 0, len(fila)+1)
		celdas = append(celdas, itoa(ids[i]))
		for _, v := range fila {
			celdas = append(celdas, infra.TextoCelda(v))
		}
		tb.Row(celdas...)
	}
	return estiloTitulo.Render(t.Titulo) + "\n" + tb.String() + "\n" + t.Resumen + "\n"
}

func renderProductos(p *pantalla.CelofanPantalla) string {
	list := p.Productos()
	if len(list) == 0 {
		return "No hay productos de " + p.Material() + " registrados\n"
	}
	ids := make([]int64, 0, len(list))
	for _, pr := range list {
		ids = append(ids, pr.ID)
	}
	return renderTabla(service.TablaProductos(p.Material(), list), ids)
}

func renderCuentas(p *pantalla.CuentasPantalla) string {
	list := p.Cuentas()
	if msg := p.MensajeVacio(); msg != "" {
		return msg + "\n"
	}
	return renderTabla(service.TablaCuentas(list), idsCuentas(list))
}

func idsCuentas(list []model.CuentaPorPagar) []int64 {
	ids := make([]int64, 0, len(list))
	for _, c := range list {
		ids = append(ids, c.ID)
	}
	return ids
}
