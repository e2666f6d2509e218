package dto

// Formatos de exportación.
const (
	FormatoXLSX = "xlsx"
	FormatoPDF  = "pdf"
	FormatoHTML = "html"
)

// ExportarQuery selects the format and, for payables, the same search applied
// to the list. Email switches the response from download to delivery by mail.
type ExportarQuery struct {
	CuentaFilter
	Email string `form:"email" validate:"omitempty,email"`
}

// ExportacionEncoladaResponse is returned when the export is mailed instead of downloaded.
type ExportacionEncoladaResponse struct {
	Archivo string `json:"archivo"`
	URL     string `json:"url"`
	Email   string `json:"email"`
}
