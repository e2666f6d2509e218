package model

import "time"

// Gasto is read-only reference data: it feeds the expense selector and the
// concept label shown on each payable.
type Gasto struct {
	ID       int64      `gorm:"primaryKey"`
	Concepto string     `gorm:"not null"`
	Fecha    *time.Time `gorm:"type:date"`
}

func (Gasto) TableName() string { return "gastos" }
