package pantalla

import (
	"context"
	"errors"
	"time"

	"github.com/EfrainEsquivar/GrupoKZ-copiaV1/internal/infra"
	"github.com/EfrainEsquivar/GrupoKZ-copiaV1/internal/model"
	"github.com/EfrainEsquivar/GrupoKZ-copiaV1/internal/service"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var errStore = errors.New("store: connection reset")

func ptr[T any](v T) *T { return &v }

func fecha(s string) *time.Time {
	t, _ := time.Parse("2006-01-02", s)
	return &t
}

// ── Dialogo ───────────────────────────────────────────────────────────────────

type alerta struct{ titulo, mensaje string }

type dialogoFalso struct {
	alertas   []alerta
	preguntas []alerta
	respuesta bool
}

func (d *dialogoFalso) Alerta(titulo, mensaje string) {
	d.alertas = append(d.alertas, alerta{titulo, mensaje})
}

func (d *dialogoFalso) Confirmar(titulo, mensaje string) bool {
	d.preguntas = append(d.preguntas, alerta{titulo, mensaje})
	return d.respuesta
}

// ── Repositories ──────────────────────────────────────────────────────────────

type repoProductos struct {
	rows     []model.Producto
	listas   int
	creados  []model.Producto
	updates  []int64
	borrados []int64
	errList  error
	errEsc   error
}

func (r *repoProductos) ListByMaterial(context.Context, string) ([]model.Producto, error) {
	r.listas++
	if r.errList != nil {
		return nil, r.errList
	}
	return append([]model.Producto(nil), r.rows...), nil
}

func (r *repoProductos) Create(_ context.Context, p *model.Producto) error {
	if r.errEsc != nil {
		return r.errEsc
	}
	p.ID = int64(100 + len(r.creados))
	r.creados = append(r.creados, *p)
	return nil
}

func (r *repoProductos) Update(_ context.Context, id int64, _ map[string]interface{}) error {
	if r.errEsc != nil {
		return r.errEsc
	}
	r.updates = append(r.updates, id)
	return nil
}

func (r *repoProductos) Delete(_ context.Context, id int64) error {
	if r.errEsc != nil {
		return r.errEsc
	}
	r.borrados = append(r.borrados, id)
	return nil
}

type repoCuentas struct {
	rows     []model.CuentaPorPagar
	listas   int
	creadas  []model.CuentaPorPagar
	updates  map[int64]map[string]interface{}
	borradas []int64
	errList  error
	errEsc   error
}

func (r *repoCuentas) escrituras() int {
	return len(r.creadas) + len(r.updates) + len(r.borradas)
}

func (r *repoCuentas) List(context.Context) ([]model.CuentaPorPagar, error) {
	r.listas++
	if r.errList != nil {
		return nil, r.errList
	}
	return append([]model.CuentaPorPagar(nil), r.rows...), nil
}

func (r *repoCuentas) Create(_ context.Context, c *model.CuentaPorPagar) error {
	if r.errEsc != nil {
		return r.errEsc
	}
	r.creadas = append(r.creadas, *c)
	return nil
}

func (r *repoCuentas) Update(_ context.Context, id int64, campos map[string]interface{}) error {
	if r.errEsc != nil {
		return r.errEsc
	}
	if r.updates == nil {
		r.updates = map[int64]map[string]interface{}{}
	}
	r.updates[id] = campos
	return nil
}

func (r *repoCuentas) Delete(_ context.Context, id int64) error {
	if r.errEsc != nil {
		return r.errEsc
	}
	if id == 404 {
		return gorm.ErrRecordNotFound
	}
	r.borradas = append(r.borradas, id)
	return nil
}

type repoGastos struct {
	rows []model.Gasto
	err  error
}

func (r repoGastos) List(context.Context) ([]model.Gasto, error) { return r.rows, r.err }

// ── Export ────────────────────────────────────────────────────────────────────

type exportadorFalso struct {
	tablas []infra.Tabla
	err    error
}

func (e *exportadorFalso) Exportar(_ context.Context, t infra.Tabla, formato string) (*service.Archivo, error) {
	e.tablas = append(e.tablas, t)
	if e.err != nil {
		return nil, e.err
	}
	return &service.Archivo{Nombre: t.Nombre + "." + formato, Ruta: "x/" + t.Nombre + "." + formato}, nil
}

type compartidorFalso struct{ archivos []string }

func (c *compartidorFalso) Compartir(_ context.Context, a *service.Archivo) error {
	c.archivos = append(c.archivos, a.Nombre)
	return nil
}

// ── Fixtures ──────────────────────────────────────────────────────────────────

func celofan(id int64, nombre string) model.Producto {
	return model.Producto{
		ID:         id,
		Nombre:     ptr(nombre),
		Existencia: decimal.NewNullDecimal(decimal.NewFromInt(10)),
		Precio:     decimal.NewNullDecimal(decimal.RequireFromString("25.5")),
		Unidad:     ptr("rollo"),
		Material:   ptr(model.MaterialCelofan),
	}
}

func cuenta(id int64, f, proveedor, importe, estado string) model.CuentaPorPagar {
	return model.CuentaPorPagar{
		ID:        id,
		Fecha:     fecha(f),
		Proveedor: ptr(proveedor),
		Importe:   decimal.NewNullDecimal(decimal.RequireFromString(importe)),
		Estado:    ptr(estado),
	}
}
