package worker

// compartir_worker.go
// Mails an exported file (already on the export disk) to the address the user
// gave. SMTP failures are retried with backoff; after the last attempt the job
// goes to the dead letter queue.

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/EfrainEsquivar/GrupoKZ-copiaV1/internal/infra"
	"github.com/EfrainEsquivar/GrupoKZ-copiaV1/internal/service"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const compartirMaxIntentos = 3

// CompartirJobPayload is the job envelope sent to QueueCompartir.
type CompartirJobPayload struct {
	ToEmail  string `json:"to_email"`
	Asunto   string `json:"asunto"`
	Cuerpo   string `json:"cuerpo"`
	Ruta     string `json:"ruta"`
	Nombre   string `json:"nombre"`
	TipoMIME string `json:"tipo_mime"`
}

// Enviador sends one email with an attachment. *infra.Mailer implements it.
type Enviador interface {
	EnviarArchivo(to, subject, body string, adj infra.Adjunto) error
}

type deadLetterFunc func(ctx context.Context, queue, jobType string, payload json.RawMessage, reason string, attempts int)

// CompartirWorker processes jobs from QueueCompartir.
type CompartirWorker struct {
	disk       infra.Disk
	mailer     Enviador
	deadLetter deadLetterFunc
	retryBase  time.Duration
}

func NewCompartirWorker(disk infra.Disk, mailer Enviador, rdb *redis.Client) *CompartirWorker {
	w := &CompartirWorker{disk: disk, mailer: mailer, retryBase: time.Second}
	w.deadLetter = func(ctx context.Context, queue, jobType string, payload json.RawMessage, reason string, attempts int) {
		if rdb == nil {
			return
		}
		SendToDLQ(ctx, rdb, queue, jobType, payload, reason, attempts)
	}
	return w
}

// Process reads the file from the export disk and mails it.
func (w *CompartirWorker) Process(ctx context.Context, raw json.RawMessage) error {
	var p CompartirJobPayload
	if err := json.Unmarshal(raw, &p); err != nil {
		return fmt.Errorf("compartir_worker: invalid payload: %w", err)
	}
	if p.ToEmail == "" || p.Ruta == "" {
		return errors.New("compartir_worker: to_email and ruta are required")
	}

	contenido, err := w.disk.Get(ctx, p.Ruta)
	if err != nil {
		w.deadLetter(ctx, QueueCompartir, JobCompartir, raw, err.Error(), 1)
		return fmt.Errorf("compartir_worker: read %s: %w", p.Ruta, err)
	}

	adj := infra.Adjunto{Nombre: p.Nombre, TipoMIME: p.TipoMIME, Contenido: contenido}
	err = withRetry(ctx, compartirMaxIntentos, w.retryBase, func(attempt int) error {
		err := w.mailer.EnviarArchivo(p.ToEmail, p.Asunto, p.Cuerpo, adj)
		if err != nil {
			log.Warn().Err(err).Int("attempt", attempt+1).Str("to", p.ToEmail).Msg("compartir_worker: send failed")
		}
		return err
	})
	if err != nil {
		w.deadLetter(ctx, QueueCompartir, JobCompartir, raw, err.Error(), compartirMaxIntentos)
		return fmt.Errorf("compartir_worker: send to %s: %w", p.ToEmail, err)
	}

	log.Info().Str("to", p.ToEmail).Str("archivo", p.Nombre).Msg("compartir_worker: archivo enviado")
	return nil
}

// CorreoCompartidor is a service.Compartidor that queues the file for delivery
// to one address.
type CorreoCompartidor struct {
	dispatcher *Dispatcher
	email      string
}

func NewCorreoCompartidor(d *Dispatcher, email string) *CorreoCompartidor {
	return &CorreoCompartidor{dispatcher: d, email: email}
}

func (c *CorreoCompartidor) Compartir(ctx context.Context, a *service.Archivo) error {
	return c.dispatcher.EnqueueCompartir(ctx, CompartirJobPayload{
		ToEmail:  c.email,
		Asunto:   "Exportación: " + a.Nombre,
		Cuerpo:   "Se adjunta el archivo " + a.Nombre + ".",
		Ruta:     a.Ruta,
		Nombre:   a.Nombre,
		TipoMIME: a.TipoMIME,
	})
}

var _ service.Compartidor = (*CorreoCompartidor)(nil)
