package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/EfrainEsquivar/GrupoKZ-copiaV1/internal/dto"
	"github.com/EfrainEsquivar/GrupoKZ-copiaV1/internal/model"
	"github.com/EfrainEsquivar/GrupoKZ-copiaV1/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// FormatoFecha is the layout of fecha in forms, responses and exports.
const FormatoFecha = "2006-01-02"

// CuentaService defines the operations of the payables ledger.
type CuentaService interface {
	// Listar returns valid payables, newest first, narrowed by filtro.
	Listar(ctx context.Context, filtro dto.CuentaFilter) ([]model.CuentaPorPagar, error)
	ListarGastos(ctx context.Context) ([]model.Gasto, error)
	// Guardar inserts when form.ID is nil, otherwise updates that id.
	Guardar(ctx context.Context, form dto.CuentaForm) (*model.CuentaPorPagar, error)
	Eliminar(ctx context.Context, id int64) error
}

type cuentaService struct {
	repo      repository.CuentaRepository
	gastoRepo repository.GastoRepository
}

func NewCuentaService(repo repository.CuentaRepository, gastoRepo repository.GastoRepository) CuentaService {
	return &cuentaService{repo: repo, gastoRepo: gastoRepo}
}

func (s *cuentaService) Listar(ctx context.Context, filtro dto.CuentaFilter) ([]model.CuentaPorPagar, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listar cuentas por pagar: %w", err)
	}
	validas := make([]model.CuentaPorPagar, 0, len(list))
	for _, c := range list {
		if c.Valida() {
			validas = append(validas, c)
		}
	}
	return FiltrarCuentas(validas, filtro), nil
}

func (s *cuentaService) ListarGastos(ctx context.Context) ([]model.Gasto, error) {
	gastos, err := s.gastoRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listar gastos: %w", err)
	}
	return gastos, nil
}

func (s *cuentaService) Guardar(ctx context.Context, form dto.CuentaForm) (*model.CuentaPorPagar, error) {
	p, err := ValidarCuenta(form)
	if err != nil {
		return nil, err
	}

	if form.ID == nil {
		c := p.Modelo()
		if err := s.repo.Create(ctx, c); err != nil {
			return nil, fmt.Errorf("crear cuenta por pagar: %w", err)
		}
		return c, nil
	}

	id := *form.ID
	if err := s.repo.Update(ctx, id, p.Campos()); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoEncontrado
		}
		return nil, fmt.Errorf("actualizar cuenta por pagar %d: %w", id, err)
	}
	c := p.Modelo()
	c.ID = id
	return c, nil
}

func (s *cuentaService) Eliminar(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNoEncontrado
		}
		return fmt.Errorf("eliminar cuenta por pagar %d: %w", id, err)
	}
	return nil
}

// CuentaPayload is a validated form, ready to be written.
type CuentaPayload struct {
	Fecha       time.Time
	Proveedor   string
	Importe     decimal.Decimal
	Estado      string
	Descripcion *string
	GastoID     *int64
}

// Modelo builds the row to insert.
func (p CuentaPayload) Modelo() *model.CuentaPorPagar {
	fecha := p.Fecha
	proveedor := p.Proveedor
	estado := p.Estado
	return &model.CuentaPorPagar{
		Fecha:       &fecha,
		Proveedor:   &proveedor,
		Importe:     decimal.NewNullDecimal(p.Importe),
		Estado:      &estado,
		Descripcion: p.Descripcion,
		GastoID:     p.GastoID,
	}
}

// Campos is the update set. descripcion and gasto_id are written as NULL when absent.
func (p CuentaPayload) Campos() map[string]interface{} {
	campos := map[string]interface{}{
		"fecha":       p.Fecha,
		"proveedor":   p.Proveedor,
		"importe":     p.Importe,
		"estado":      p.Estado,
		"descripcion": nil,
		"gasto_id":    nil,
	}
	if p.Descripcion != nil {
		campos["descripcion"] = *p.Descripcion
	}
	if p.GastoID != nil {
		campos["gasto_id"] = *p.GastoID
	}
	return campos
}

// ValidarCuenta runs the local checks in the order the ledger reports them:
// required fields first, then importe, then the remaining formats.
func ValidarCuenta(form dto.CuentaForm) (*CuentaPayload, error) {
	fecha := strings.TrimSpace(form.Fecha)
	proveedor := strings.TrimSpace(form.Proveedor)
	estado := strings.TrimSpace(form.Estado)

	var faltantes []string
	if fecha == "" {
		faltantes = append(faltantes, "fecha")
	}
	if proveedor == "" {
		faltantes = append(faltantes, "proveedor")
	}
	if estado == "" {
		faltantes = append(faltantes, "estado")
	}
	if len(faltantes) > 0 {
		return nil, nuevaValidacion(TituloCamposRequeridos, MsgCamposCuenta, faltantes...)
	}

	importe, err := decimal.NewFromString(strings.TrimSpace(form.Importe))
	if err != nil || !importe.IsPositive() {
		return nil, nuevaValidacion(TituloError, MsgImporteInvalido, "importe")
	}

	f, err := time.Parse(FormatoFecha, fecha)
	if err != nil {
		return nil, nuevaValidacion(TituloError, MsgFechaInvalida, "fecha")
	}
	if !model.EstadoValido(estado) {
		return nil, nuevaValidacion(TituloError, MsgEstadoInvalido, "estado")
	}

	p := &CuentaPayload{
		Fecha:     f,
		Proveedor: proveedor,
		Importe:   importe,
		Estado:    estado,
	}
	if d := strings.TrimSpace(form.Descripcion); d != "" {
		p.Descripcion = &d
	}
	if g := strings.TrimSpace(form.GastoID); g != "" {
		id, err := strconv.ParseInt(g, 10, 64)
		if err != nil || id <= 0 {
			return nil, nuevaValidacion(TituloError, MsgGastoInvalido, "gasto_id")
		}
		p.GastoID = &id
	}
	return p, nil
}

// NuevoFormCuenta returns the default form: today's date in UTC, importe "0", Pendiente.
func NuevoFormCuenta(now time.Time) dto.CuentaForm {
	return dto.CuentaForm{
		Fecha:   now.UTC().Format(FormatoFecha),
		Importe: "0",
		Estado:  model.EstadoPendiente,
	}
}

// FormDesdeCuenta copies a stored payable into form state, every field as text.
func FormDesdeCuenta(c model.CuentaPorPagar) dto.CuentaForm {
	id := c.ID
	f := dto.CuentaForm{
		ID:          &id,
		Proveedor:   model.Texto(c.Proveedor),
		Estado:      model.Texto(c.Estado),
		Descripcion: model.Texto(c.Descripcion),
	}
	if c.Fecha != nil {
		f.Fecha = c.Fecha.Format(FormatoFecha)
	}
	if c.Importe.Valid {
		f.Importe = c.Importe.Decimal.String()
	}
	if c.GastoID != nil {
		f.GastoID = strconv.FormatInt(*c.GastoID, 10)
	}
	return f
}

// FiltrarCuentas narrows the list by a case-insensitive substring of
// proveedor or estado. filtro.Campo restricts the match to one field; an
// empty Busqueda returns the list unchanged.
func FiltrarCuentas(cuentas []model.CuentaPorPagar, filtro dto.CuentaFilter) []model.CuentaPorPagar {
	if filtro.Busqueda == "" {
		return cuentas
	}
	q := strings.ToLower(filtro.Busqueda)
	out := make([]model.CuentaPorPagar, 0, len(cuentas))
	for _, c := range cuentas {
		enProveedor := strings.Contains(strings.ToLower(model.Texto(c.Proveedor)), q)
		enEstado := strings.Contains(strings.ToLower(model.Texto(c.Estado)), q)

		var ok bool
		switch filtro.Campo {
		case dto.CampoProveedor:
			ok = enProveedor
		case dto.CampoEstado:
			ok = enEstado
		default:
			ok = enProveedor || enEstado
		}
		if ok {
			out = append(out, c)
		}
	}
	return out
}

// MapCuenta converts a valid payable into its API response.
func MapCuenta(c model.CuentaPorPagar) dto.CuentaResponse {
	r := dto.CuentaResponse{
		ID:          c.ID,
		Proveedor:   model.Texto(c.Proveedor),
		Importe:     c.Importe.Decimal,
		Estado:      model.Texto(c.Estado),
		Descripcion: c.Descripcion,
		GastoID:     c.GastoID,
	}
	if c.Fecha != nil {
		r.Fecha = c.Fecha.Format(FormatoFecha)
	}
	if c.Gasto != nil {
		concepto := c.Gasto.Concepto
		r.GastoConcepto = &concepto
	}
	return r
}
