package repository

import (
	"context"

	"github.com/EfrainEsquivar/GrupoKZ-copiaV1/internal/model"

	"gorm.io/gorm"
)

// CuentaRepository is the data access contract for cuentas por pagar.
type CuentaRepository interface {
	// List returns every payable with its gasto concept, newest fecha first.
	List(ctx context.Context) ([]model.CuentaPorPagar, error)
	Create(ctx context.Context, c *model.CuentaPorPagar) error
	Update(ctx context.Context, id int64, campos map[string]interface{}) error
	Delete(ctx context.Context, id int64) error
}

type cuentaRepo struct{ db *gorm.DB }

func NewCuentaRepository(db *gorm.DB) CuentaRepository { return &cuentaRepo{db: db} }

func (r *cuentaRepo) List(ctx context.Context) ([]model.CuentaPorPagar, error) {
	var cuentas []model.CuentaPorPagar
	err := r.db.WithContext(ctx).
		Preload("Gasto", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "concepto")
		}).
		Order("fecha DESC").
		Order("id DESC").
		Find(&cuentas).Error
	return cuentas, err
}

func (r *cuentaRepo) Create(ctx context.Context, c *model.CuentaPorPagar) error {
	// Omit the association so GORM does not upsert gastos.
	return r.db.WithContext(ctx).Omit("Gasto").Create(c).Error
}

func (r *cuentaRepo) Update(ctx context.Context, id int64, campos map[string]interface{}) error {
	res := r.db.WithContext(ctx).Model(&model.CuentaPorPagar{}).Where("id = ?", id).Updates(campos)
	return afectadas(res)
}

func (r *cuentaRepo) Delete(ctx context.Context, id int64) error {
	return afectadas(r.db.WithContext(ctx).Delete(&model.CuentaPorPagar{}, id))
}
