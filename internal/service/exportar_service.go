package service

import (
	"context"
	"fmt"
	"path"
	"time"

	"github.com/EfrainEsquivar/GrupoKZ-copiaV1/internal/dto"
	"github.com/EfrainEsquivar/GrupoKZ-copiaV1/internal/infra"
	"github.com/EfrainEsquivar/GrupoKZ-copiaV1/internal/metrics"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Archivo is an exported file already written to the export disk.
type Archivo struct {
	Nombre    string
	Ruta      string
	URL       string
	TipoMIME  string
	Contenido []byte
}

// Compartidor hands an exported file to the user: a download, a mail or a
// path printed on the console.
type Compartidor interface {
	Compartir(ctx context.Context, a *Archivo) error
}

// ExportService renders a snapshot and stores it. It never reads or writes
// the database.
type ExportService interface {
	Exportar(ctx context.Context, t infra.Tabla, formato string) (*Archivo, error)
}

type exportService struct {
	disk infra.Disk
	now  func() time.Time
}

func NewExportService(disk infra.Disk) ExportService {
	return &exportService{disk: disk, now: time.Now}
}

type formatoExport struct {
	ext     string
	mime    string
	generar func(infra.Tabla) ([]byte, error)
}

var formatos = map[string]formatoExport{
	dto.FormatoXLSX: {"xlsx", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", infra.GenerarXLSX},
	dto.FormatoPDF:  {"pdf", "application/pdf", infra.GenerarPDF},
	dto.FormatoHTML: {"html", "text/html; charset=utf-8", infra.GenerarHTML},
}

// Exportar returns ErrSinDatos without touching the disk when t has no rows.
func (s *exportService) Exportar(ctx context.Context, t infra.Tabla, formato string) (*Archivo, error) {
	f, ok := formatos[formato]
	if !ok {
		return nil, ErrFormatoInvalido
	}
	if len(t.Filas) == 0 {
		metrics.Exportaciones.WithLabelValues(t.Nombre, formato, "sin_datos").Inc()
		return nil, ErrSinDatos
	}

	contenido, err := f.generar(t)
	if err != nil {
		metrics.Exportaciones.WithLabelValues(t.Nombre, formato, "error").Inc()
		return nil, fmt.Errorf("exportar %s: %w", formato, err)
	}

	nombre := t.Nombre + "." + f.ext
	ruta := path.Join(s.now().Format(FormatoFecha), uuid.NewString(), nombre)
	if err := s.disk.Put(ctx, ruta, contenido); err != nil {
		metrics.Exportaciones.WithLabelValues(t.Nombre, formato, "error").Inc()
		return nil, fmt.Errorf("guardar %s: %w", nombre, err)
	}

	metrics.Exportaciones.WithLabelValues(t.Nombre, formato, "ok").Inc()
	log.Info().Str("archivo", ruta).Int("filas", len(t.Filas)).Msg("exportacion generada")
	return &Archivo{
		Nombre:    nombre,
		Ruta:      ruta,
		URL:       s.disk.URL(ruta),
		TipoMIME:  f.mime,
		Contenido: contenido,
	}, nil
}
