// Package apierror provides standardized error response structures for the API.
// All errors returned to clients go through this package so that store errors
// and internal details never reach the client.
package apierror

// APIError is the canonical error envelope for all 4xx/5xx HTTP responses.
type APIError struct {
	Detail string `json:"detail"`
}

func New(msg string) *APIError {
	return &APIError{Detail: msg}
}

// ValidationError wraps multiple field errors. Titulo mirrors the alert title
// shown by the interactive screens.
type ValidationError struct {
	Detail string            `json:"detail"`
	Titulo string            `json:"titulo,omitempty"`
	Fields map[string]string `json:"fields"`
}

func NewValidation(fields map[string]string) *ValidationError {
	return &ValidationError{Detail: "Error de validacion", Fields: fields}
}

// NewValidationMsg builds a validation envelope carrying a user-facing message.
func NewValidationMsg(titulo, mensaje string, fields map[string]string) *ValidationError {
	if fields == nil {
		fields = map[string]string{}
	}
	return &ValidationError{Detail: mensaje, Titulo: titulo, Fields: fields}
}

// ConfirmationRequired is returned for destructive operations sent without
// explicit confirmation.
type ConfirmationRequired struct {
	Detail string `json:"detail"`
	Titulo string `json:"titulo"`
}

func NewConfirmation(titulo, mensaje string) *ConfirmationRequired {
	return &ConfirmationRequired{Detail: mensaje, Titulo: titulo}
}
