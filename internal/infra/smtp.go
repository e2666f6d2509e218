package infra

import (
	"bytes"
	"errors"
	"fmt"
	"net/smtp"

	"github.com/EfrainEsquivar/GrupoKZ-copiaV1/internal/config"

	"github.com/jordan-wright/email"
)

// ErrSMTPNoConfigurado is returned when SMTP_HOST is empty.
var ErrSMTPNoConfigurado = errors.New("smtp no configurado")

// Adjunto is a file attached to an outgoing email.
type Adjunto struct {
	Nombre    string
	TipoMIME  string
	Contenido []byte
}

// Mailer sends exported files over SMTP. Every send goes through a circuit
// breaker so an unreachable server fails fast instead of tying up workers.
type Mailer struct {
	host     string
	user     string
	password string
	addr     string
	cb       *CircuitBreaker
}

func NewMailer(cfg *config.Config, cb *CircuitBreaker) *Mailer {
	if cb == nil {
		cb = NewCircuitBreaker("smtp", DefaultCBConfig())
	}
	return &Mailer{
		host:     cfg.SMTPHost,
		user:     cfg.SMTPUser,
		password: cfg.SMTPPassword,
		addr:     fmt.Sprintf("%s:%d", cfg.SMTPHost, cfg.SMTPPort),
		cb:       cb,
	}
}

// Breaker exposes the circuit breaker for health reporting.
func (m *Mailer) Breaker() *CircuitBreaker { return m.cb }

// EnviarArchivo sends body to the recipient with adj attached.
func (m *Mailer) EnviarArchivo(to, subject, body string, adj Adjunto) error {
	if m.host == "" {
		return ErrSMTPNoConfigurado
	}

	e := email.NewEmail()
	e.From = m.user
	e.To = []string{to}
	e.Subject = subject
	e.Text = []byte(body)
	if _, err := e.Attach(bytes.NewReader(adj.Contenido), adj.Nombre, adj.TipoMIME); err != nil {
		return fmt.Errorf("mailer: adjuntar %s: %w", adj.Nombre, err)
	}

	auth := smtp.PlainAuth("", m.user, m.password, m.host)
	return m.cb.Execute(func() error {
		return e.Send(m.addr, auth)
	})
}
