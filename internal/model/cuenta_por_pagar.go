package model

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	EstadoPendiente = "Pendiente"
	EstadoPagado    = "Pagado"
)

// Estados lists the accepted values for CuentaPorPagar.Estado, in selector order.
var Estados = []string{EstadoPendiente, EstadoPagado}

// CuentaPorPagar is a supplier payable. Gasto is populated through the
// gastos(concepto) join when listing.
type CuentaPorPagar struct {
	ID          int64               `gorm:"primaryKey"`
	Fecha       *time.Time          `gorm:"type:date;index"`
	Proveedor   *string             `gorm:"index"`
	Importe     decimal.NullDecimal `gorm:"type:numeric(12,2)"`
	Estado      *string
	Descripcion *string
	GastoID     *int64 `gorm:"index"`

	Gasto *Gasto `gorm:"foreignKey:GastoID"`
}

func (CuentaPorPagar) TableName() string { return "cuentas_por_pagar" }

// Valida reports whether the payable has every field the ledger needs to display it.
func (c CuentaPorPagar) Valida() bool {
	return c.Fecha != nil && noVacio(c.Proveedor) && noVacio(c.Estado) && c.Importe.Valid
}

// GastoConcepto returns the joined expense concept, or "" when there is none.
func (c CuentaPorPagar) GastoConcepto() string {
	if c.Gasto == nil {
		return ""
	}
	return c.Gasto.Concepto
}

// EstadoValido reports whether s is one of Estados.
func EstadoValido(s string) bool {
	for _, e := range Estados {
		if e == s {
			return true
		}
	}
	return false
}
