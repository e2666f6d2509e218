package repository

import (
	"context"

	"github.com/EfrainEsquivar/GrupoKZ-copiaV1/internal/model"

	"gorm.io/gorm"
)

// GastoRepository reads the expense reference table. It has no write methods.
type GastoRepository interface {
	List(ctx context.Context) ([]model.Gasto, error)
}

type gastoRepo struct{ db *gorm.DB }

func NewGastoRepository(db *gorm.DB) GastoRepository { return &gastoRepo{db: db} }

func (r *gastoRepo) List(ctx context.Context) ([]model.Gasto, error) {
	var gastos []model.Gasto
	err := r.db.WithContext(ctx).
		Select("id", "concepto", "fecha").
		Order("fecha DESC").
		Find(&gastos).Error
	return gastos, err
}
