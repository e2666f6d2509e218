// Package consola drives the interactive screens from a terminal: a line
// based command loop, tables rendered with lipgloss and alerts on stdout.
package consola

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/EfrainEsquivar/GrupoKZ-copiaV1/internal/service"

	"github.com/charmbracelet/lipgloss"
)

var (
	estiloTitulo = lipgloss.NewStyle().Bold(true)
	estiloAlerta = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
)

// Terminal reads commands and answers from in and writes to out. It is the
// pantalla.Dialogo of the console.
type Terminal struct {
	in  *bufio.Scanner
	out io.Writer
}

func NewTerminal(in io.Reader, out io.Writer) *Terminal {
	return &Terminal{in: bufio.NewScanner(in), out: out}
}

func (t *Terminal) Alerta(titulo, mensaje string) {
	fmt.Fprintf(t.out, "%s %s\n", estiloAlerta.Render("["+titulo+"]"), mensaje)
}

// Confirmar accepts "s" or "si"; anything else, including end of input, cancels.
func (t *Terminal) Confirmar(titulo, mensaje string) bool {
	fmt.Fprintf(t.out, "%s\n%s [s/N]: ", estiloTitulo.Render(titulo), mensaje)
	linea, ok := t.leer()
	if !ok {
		return false
	}
	switch strings.ToLower(linea) {
	case "s", "si", "sí":
		return true
	}
	return false
}

// Leer prints prompt and returns the next trimmed line; false at end of input.
func (t *Terminal) Leer(prompt string) (string, bool) {
	fmt.Fprint(t.out, prompt)
	return t.leer()
}

func (t *Terminal) leer() (string, bool) {
	if !t.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(t.in.Text()), true
}

func (t *Terminal) Printf(format string, args ...interface{}) {
	fmt.Fprintf(t.out, format, args...)
}

// Ruta is the console share target: it prints where the file was stored.
type Ruta struct{ out io.Writer }

func NewRuta(out io.Writer) *Ruta { return &Ruta{out: out} }

func (r *Ruta) Compartir(_ context.Context, a *service.Archivo) error {
	_, err := fmt.Fprintf(r.out, "Archivo exportado: %s\n", a.URL)
	return err
}
