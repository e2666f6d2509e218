package repository

import (
	"context"

	"github.com/EfrainEsquivar/GrupoKZ-copiaV1/internal/model"

	"gorm.io/gorm"
)

// ProductoRepository defines the data access contract for catalog products.
// Services depend on this interface, not on the concrete GORM implementation,
// enabling unit tests with in-memory stubs.
type ProductoRepository interface {
	ListByMaterial(ctx context.Context, material string) ([]model.Producto, error)
	Create(ctx context.Context, p *model.Producto) error
	// Update applies a partial update keyed by id. Missing rows return gorm.ErrRecordNotFound.
	Update(ctx context.Context, id int64, campos map[string]interface{}) error
	Delete(ctx context.Context, id int64) error
}

type productoRepo struct{ db *gorm.DB }

func NewProductoRepository(db *gorm.DB) ProductoRepository { return &productoRepo{db: db} }

func (r *productoRepo) ListByMaterial(ctx context.Context, material string) ([]model.Producto, error) {
	var productos []model.Producto
	err := r.db.WithContext(ctx).
		Where("material = ?", material).
		Order("nombre ASC").
		Find(&productos).Error
	return productos, err
}

func (r *productoRepo) Create(ctx context.Context, p *model.Producto) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *productoRepo) Update(ctx context.Context, id int64, campos map[string]interface{}) error {
	res := r.db.WithContext(ctx).Model(&model.Producto{}).Where("id = ?", id).Updates(campos)
	return afectadas(res)
}

func (r *productoRepo) Delete(ctx context.Context, id int64) error {
	return afectadas(r.db.WithContext(ctx).Delete(&model.Producto{}, id))
}

// afectadas turns a zero-row write into gorm.ErrRecordNotFound.
func afectadas(res *gorm.DB) error {
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
