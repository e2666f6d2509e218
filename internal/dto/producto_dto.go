package dto

import "github.com/shopspring/decimal"

// ─── Form ────────────────────────────────────────────────────────────────────

// ProductoForm is the editable state of the catalog form. Numeric fields are
// kept as text, the way the inputs hold them.
type ProductoForm struct {
	Nombre     string `json:"nombre"`
	Existencia string `json:"existencia"`
	Precio     string `json:"precio"`
	Unidad     string `json:"unidad"`
	Material   string `json:"material"`
}

// NuevoProductoForm returns the empty form scoped to material.
func NuevoProductoForm(material string) ProductoForm {
	return ProductoForm{Material: material}
}

// ─── Request DTOs ────────────────────────────────────────────────────────────

// ProductoRequest is the JSON body for create and update. Required fields are
// checked by the service so the API and the console answer with the same message.
type ProductoRequest struct {
	Nombre     string           `json:"nombre"     validate:"max=120"`
	Existencia *decimal.Decimal `json:"existencia"`
	Precio     *decimal.Decimal `json:"precio"`
	Unidad     string           `json:"unidad"     validate:"max=40"`
}

// Form converts the request into form state for the given material.
func (r ProductoRequest) Form(material string) ProductoForm {
	return ProductoForm{
		Nombre:     r.Nombre,
		Existencia: decimalTexto(r.Existencia),
		Precio:     decimalTexto(r.Precio),
		Unidad:     r.Unidad,
		Material:   material,
	}
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ProductoResponse struct {
	ID         int64           `json:"id"`
	Nombre     string          `json:"nombre"`
	Existencia decimal.Decimal `json:"existencia"`
	Precio     decimal.Decimal `json:"precio"`
	Unidad     string          `json:"unidad"`
	Material   string          `json:"material"`
}

type ProductoListResponse struct {
	Data  []ProductoResponse `json:"data"`
	Total int                `json:"total"`
}

func decimalTexto(d *decimal.Decimal) string {
	if d == nil {
		return ""
	}
	return d.String()
}
