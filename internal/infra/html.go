package infra

import (
	"bytes"
	"fmt"
	"html/template"
)

var documentoHTML = template.Must(template.New("tabla").Parse(`<!DOCTYPE html>
<html lang="es">
<head>
<meta charset="utf-8">
<title>{{.Titulo}}</title>
<style>
  body { font-family: Helvetica, Arial, sans-serif; padding: 20px; }
  h1 { text-align: center; }
  table { width: 100%; border-collapse: collapse; margin-top: 20px; }
  th, td { border: 1px solid #000; padding: 8px; text-align: left; }
  th { background-color: #f2f2f2; }
  .total { margin-top: 20px; font-weight: bold; }
</style>
</head>
<body>
<h1>{{.Titulo}}</h1>
<table>
<thead><tr>{{range .Columnas}}<th>{{.}}</th>{{end}}</tr></thead>
<tbody>
{{- range .Filas}}
<tr>{{range .}}<td>{{.}}</td>{{end}}</tr>
{{- end}}
</tbody>
</table>
{{- if .Resumen}}
<p class="total">{{.Resumen}}</p>
{{- end}}
</body>
</html>
`))

// GenerarHTML renders t as a printable HTML document. Cell text is escaped.
func GenerarHTML(t Tabla) ([]byte, error) {
	data := struct {
		Titulo   string
		Columnas []string
		Filas    [][]string
		Resumen  string
	}{t.Titulo, t.Columnas, textoFilas(t), t.Resumen}

	var buf bytes.Buffer
	if err := documentoHTML.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("html: generar: %w", err)
	}
	return buf.Bytes(), nil
}
