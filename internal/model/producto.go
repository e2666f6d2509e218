package model

import (
	"strings"

	"github.com/shopspring/decimal"
)

// MaterialCelofan is the material tag that scopes the catalog screen.
const MaterialCelofan = "Celofán"

// Producto is a row of the shared productos table. Material discriminates the
// product family; every column except ID is nullable in the store.
type Producto struct {
	ID         int64               `gorm:"primaryKey"`
	Nombre     *string             `gorm:"index"`
	Existencia decimal.NullDecimal `gorm:"type:numeric(12,2)"`
	Precio     decimal.NullDecimal `gorm:"type:numeric(12,2)"`
	Unidad     *string
	Material   *string `gorm:"index"`
}

func (Producto) TableName() string { return "productos" }

// Valido reports whether the row can be displayed for the given material:
// nombre and unidad non-empty, existencia and precio present.
func (p Producto) Valido(material string) bool {
	return p.Material != nil && *p.Material == material &&
		noVacio(p.Nombre) &&
		p.Existencia.Valid &&
		p.Precio.Valid &&
		noVacio(p.Unidad)
}

func noVacio(s *string) bool {
	return s != nil && strings.TrimSpace(*s) != ""
}

// Texto dereferences an optional column, returning "" for NULL.
func Texto(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
