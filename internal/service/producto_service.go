package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/EfrainEsquivar/GrupoKZ-copiaV1/internal/dto"
	"github.com/EfrainEsquivar/GrupoKZ-copiaV1/internal/model"
	"github.com/EfrainEsquivar/GrupoKZ-copiaV1/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ProductoService defines the catalog operations for one material.
type ProductoService interface {
	Material() string
	// Listar returns the products of the material ordered by nombre, keeping
	// only rows that satisfy model.Producto.Valido.
	Listar(ctx context.Context) ([]model.Producto, error)
	Crear(ctx context.Context, form dto.ProductoForm) (*model.Producto, error)
	Actualizar(ctx context.Context, id int64, form dto.ProductoForm) error
	Eliminar(ctx context.Context, id int64) error
}

type productoService struct {
	repo     repository.ProductoRepository
	material string
}

func NewProductoService(repo repository.ProductoRepository, material string) ProductoService {
	if material == "" {
		material = model.MaterialCelofan
	}
	return &productoService{repo: repo, material: material}
}

func (s *productoService) Material() string { return s.material }

func (s *productoService) Listar(ctx context.Context) ([]model.Producto, error) {
	list, err := s.repo.ListByMaterial(ctx, s.material)
	if err != nil {
		return nil, fmt.Errorf("listar productos: %w", err)
	}
	validos := make([]model.Producto, 0, len(list))
	for _, p := range list {
		if p.Valido(s.material) {
			validos = append(validos, p)
		}
	}
	return validos, nil
}

func (s *productoService) Crear(ctx context.Context, form dto.ProductoForm) (*model.Producto, error) {
	v, err := validarProducto(form)
	if err != nil {
		return nil, err
	}
	p := &model.Producto{
		Nombre:     &v.nombre,
		Existencia: decimal.NewNullDecimal(v.existencia),
		Precio:     decimal.NewNullDecimal(v.precio),
		Unidad:     &v.unidad,
		Material:   &s.material,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("crear producto: %w", err)
	}
	return p, nil
}

func (s *productoService) Actualizar(ctx context.Context, id int64, form dto.ProductoForm) error {
	v, err := validarProducto(form)
	if err != nil {
		return err
	}
	campos := map[string]interface{}{
		"nombre":     v.nombre,
		"existencia": v.existencia,
		"precio":     v.precio,
		"unidad":     v.unidad,
		"material":   s.material,
	}
	if err := s.repo.Update(ctx, id, campos); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNoEncontrado
		}
		return fmt.Errorf("actualizar producto %d: %w", id, err)
	}
	return nil
}

func (s *productoService) Eliminar(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNoEncontrado
		}
		return fmt.Errorf("eliminar producto %d: %w", id, err)
	}
	return nil
}

type productoValidado struct {
	nombre     string
	existencia decimal.Decimal
	precio     decimal.Decimal
	unidad     string
}

// ValidarProducto checks the form locally: every field present, existencia
// and precio numeric and not negative.
func ValidarProducto(form dto.ProductoForm) error {
	_, err := validarProducto(form)
	return err
}

func validarProducto(form dto.ProductoForm) (productoValidado, error) {
	v := productoValidado{
		nombre: strings.TrimSpace(form.Nombre),
		unidad: strings.TrimSpace(form.Unidad),
	}
	existencia := strings.TrimSpace(form.Existencia)
	precio := strings.TrimSpace(form.Precio)

	var faltantes []string
	for _, c := range [...]struct{ campo, valor string }{
		{"nombre", v.nombre}, {"existencia", existencia}, {"precio", precio}, {"unidad", v.unidad},
	} {
		if c.valor == "" {
			faltantes = append(faltantes, c.campo)
		}
	}
	if len(faltantes) > 0 {
		return v, nuevaValidacion(TituloCamposRequeridos, MsgCamposProducto, faltantes...)
	}

	var err error
	v.existencia, err = decimal.NewFromString(existencia)
	if err != nil || v.existencia.IsNegative() {
		return v, nuevaValidacion(TituloError, MsgExistenciaValida, "existencia")
	}
	v.precio, err = decimal.NewFromString(precio)
	if err != nil || v.precio.IsNegative() {
		return v, nuevaValidacion(TituloError, MsgPrecioValido, "precio")
	}
	return v, nil
}

// FormDesdeProducto copies a stored product into form state, numeric fields as text.
func FormDesdeProducto(p model.Producto, material string) dto.ProductoForm {
	f := dto.ProductoForm{
		Nombre:   model.Texto(p.Nombre),
		Unidad:   model.Texto(p.Unidad),
		Material: material,
	}
	if p.Existencia.Valid {
		f.Existencia = p.Existencia.Decimal.String()
	}
	if p.Precio.Valid {
		f.Precio = p.Precio.Decimal.String()
	}
	return f
}

// MapProducto converts a valid product into its API response.
func MapProducto(p model.Producto) dto.ProductoResponse {
	return dto.ProductoResponse{
		ID:         p.ID,
		Nombre:     model.Texto(p.Nombre),
		Existencia: p.Existencia.Decimal,
		Precio:     p.Precio.Decimal,
		Unidad:     model.Texto(p.Unidad),
		Material:   model.Texto(p.Material),
	}
}
