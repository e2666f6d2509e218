package dto

import (
	"strconv"

	"github.com/shopspring/decimal"
)

// ─── Form ────────────────────────────────────────────────────────────────────

// CuentaForm is the editable state of the payables form. ID is nil for a new
// payable and set once an existing one is being edited.
type CuentaForm struct {
	ID          *int64 `json:"id"`
	Fecha       string `json:"fecha"`
	Proveedor   string `json:"proveedor"`
	Importe     string `json:"importe"`
	Estado      string `json:"estado"`
	Descripcion string `json:"descripcion"`
	GastoID     string `json:"gasto_id"`
}

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CuentaRequest struct {
	Fecha       string           `json:"fecha"`
	Proveedor   string           `json:"proveedor"   validate:"max=160"`
	Importe     *decimal.Decimal `json:"importe"`
	Estado      string           `json:"estado"      validate:"omitempty,oneof=Pendiente Pagado"`
	Descripcion string           `json:"descripcion" validate:"max=500"`
	GastoID     *int64           `json:"gasto_id"    validate:"omitempty,min=1"`
}

// Form converts the request into form state. id is nil for creation.
func (r CuentaRequest) Form(id *int64) CuentaForm {
	f := CuentaForm{
		ID:          id,
		Fecha:       r.Fecha,
		Proveedor:   r.Proveedor,
		Importe:     decimalTexto(r.Importe),
		Estado:      r.Estado,
		Descripcion: r.Descripcion,
	}
	if r.GastoID != nil {
		f.GastoID = strconv.FormatInt(*r.GastoID, 10)
	}
	return f
}

// ─── Filter ──────────────────────────────────────────────────────────────────

// Campos de búsqueda. CampoTodos matches proveedor OR estado.
const (
	CampoTodos     = ""
	CampoProveedor = "proveedor"
	CampoEstado    = "estado"
)

// CampoValido reports whether campo names a search scope.
func CampoValido(campo string) bool {
	switch campo {
	case CampoTodos, CampoProveedor, CampoEstado:
		return true
	}
	return false
}

type CuentaFilter struct {
	Busqueda string `form:"busqueda" validate:"max=100"`
	Campo    string `form:"campo"    validate:"omitempty,oneof=proveedor estado"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type CuentaResponse struct {
	ID            int64           `json:"id"`
	Fecha         string          `json:"fecha"`
	Proveedor     string          `json:"proveedor"`
	Importe       decimal.Decimal `json:"importe"`
	Estado        string          `json:"estado"`
	Descripcion   *string         `json:"descripcion"`
	GastoID       *int64          `json:"gasto_id"`
	GastoConcepto *string         `json:"gasto_concepto"`
}

type CuentaListResponse struct {
	Data  []CuentaResponse `json:"data"`
	Total int              `json:"total"`
}
