// Package pantalla holds the state of the two interactive screens: the
// material catalog and the payables ledger. Each screen owns its state and
// changes it only through its named operations; every successful mutation is
// followed by exactly one re-fetch from the store.
package pantalla

import (
	"context"

	"github.com/EfrainEsquivar/GrupoKZ-copiaV1/internal/dto"
	"github.com/EfrainEsquivar/GrupoKZ-copiaV1/internal/infra"
	"github.com/EfrainEsquivar/GrupoKZ-copiaV1/internal/service"
)

// Dialogo is the user-facing alert surface.
type Dialogo interface {
	Alerta(titulo, mensaje string)
	// Confirmar asks a destructive yes/no question; true means proceed.
	Confirmar(titulo, mensaje string) bool
}

// Exportador renders a snapshot and stores it; service.ExportService implements it.
type Exportador = service.ExportService

const (
	tituloError   = "Error"
	tituloExito   = "Éxito"
	tituloSinDato = "Sin datos"

	tituloConfirmar = "Confirmar eliminación"
)

// alertarValidacion shows a local validation failure. It reports false for
// any other error so the caller can show its own message.
func alertarValidacion(d Dialogo, err error) bool {
	v, ok := service.AsValidacion(err)
	if ok {
		d.Alerta(v.Titulo, v.Mensaje)
	}
	return ok
}

// exportar runs the export and hands the file to the share target. Errors
// come back to the caller, which shows the per-format alert.
func exportar(ctx context.Context, e Exportador, c service.Compartidor, t infra.Tabla, formato string) error {
	a, err := e.Exportar(ctx, t, formato)
	if err != nil {
		return err
	}
	return c.Compartir(ctx, a)
}

var nombreFormato = map[string]string{
	dto.FormatoXLSX: "Excel",
	dto.FormatoPDF:  "PDF",
	dto.FormatoHTML: "HTML",
}

func msgExportFallida(formato string) string {
	n, ok := nombreFormato[formato]
	if !ok {
		n = formato
	}
	return "No se pudo exportar el archivo " + n + "."
}
