package pantalla

import (
	"context"
	"fmt"

	"github.com/EfrainEsquivar/GrupoKZ-copiaV1/internal/dto"
	"github.com/EfrainEsquivar/GrupoKZ-copiaV1/internal/model"
	"github.com/EfrainEsquivar/GrupoKZ-copiaV1/internal/service"

	"github.com/rs/zerolog/log"
)

const (
	msgErrorObtenerProductos = "Error al obtener productos"
	msgErrorAgregarProducto  = "Error al agregar producto"
	msgErrorActualizarProd   = "Error al actualizar producto"
	msgErrorEliminarProducto = "Error al eliminar producto"
	msgConfirmarProducto     = "¿Estás seguro de que deseas eliminar este producto?"
	msgSinProductos          = "No hay productos para exportar."
)

// CelofanPantalla is the catalog screen for one material.
type CelofanPantalla struct {
	svc        service.ProductoService
	export     Exportador
	compartir  service.Compartidor
	dialogo    Dialogo
	productos  []model.Producto
	form       dto.ProductoForm
	editandoID *int64

	Cargando         bool
	CargandoExportar bool
}

func NewCelofanPantalla(svc service.ProductoService, export Exportador, compartir service.Compartidor, dialogo Dialogo) *CelofanPantalla {
	return &CelofanPantalla{
		svc:       svc,
		export:    export,
		compartir: compartir,
		dialogo:   dialogo,
		form:      dto.NuevoProductoForm(svc.Material()),
	}
}

func (p *CelofanPantalla) Material() string { return p.svc.Material() }

// Productos returns the last fetched list, limited to rows valid for the material.
func (p *CelofanPantalla) Productos() []model.Producto {
	out := make([]model.Producto, 0, len(p.productos))
	for _, pr := range p.productos {
		if pr.Valido(p.svc.Material()) {
			out = append(out, pr)
		}
	}
	return out
}

func (p *CelofanPantalla) Form() dto.ProductoForm { return p.form }

// EditandoID is the id being edited, or nil when the form creates.
func (p *CelofanPantalla) EditandoID() *int64 { return p.editandoID }

func (p *CelofanPantalla) Montar(ctx context.Context) { p.Cargar(ctx) }

// Cargar re-reads the catalog. On failure the previous list is kept.
func (p *CelofanPantalla) Cargar(ctx context.Context) {
	p.Cargando = true
	defer func() { p.Cargando = false }()

	list, err := p.svc.Listar(ctx)
	if err != nil {
		log.Error().Err(err).Str("material", p.svc.Material()).Msg("pantalla: fetch productos")
		p.dialogo.Alerta(tituloError, msgErrorObtenerProductos)
		return
	}
	p.productos = list
}

// CambiarCampo sets one form field by its JSON name.
func (p *CelofanPantalla) CambiarCampo(campo, valor string) error {
	switch campo {
	case "nombre":
		p.form.Nombre = valor
	case "existencia":
		p.form.Existencia = valor
	case "precio":
		p.form.Precio = valor
	case "unidad":
		p.form.Unidad = valor
	default:
		return fmt.Errorf("campo desconocido: %q", campo)
	}
	return nil
}

// ResetForm restores the empty form. The editing id is left alone.
func (p *CelofanPantalla) ResetForm() {
	p.form = dto.NuevoProductoForm(p.svc.Material())
}

// Cancelar drops the current edit.
func (p *CelofanPantalla) Cancelar() {
	p.ResetForm()
	p.editandoID = nil
}

func (p *CelofanPantalla) Agregar(ctx context.Context) {
	if _, err := p.svc.Crear(ctx, p.form); err != nil {
		if !alertarValidacion(p.dialogo, err) {
			log.Error().Err(err).Msg("pantalla: crear producto")
			p.dialogo.Alerta(tituloError, msgErrorAgregarProducto)
		}
		return
	}
	p.Cargar(ctx)
	p.ResetForm()
}

// Editar loads pr into the form and records its id.
func (p *CelofanPantalla) Editar(pr model.Producto) {
	p.form = service.FormDesdeProducto(pr, p.svc.Material())
	id := pr.ID
	p.editandoID = &id
}

// Actualizar saves the form over the record being edited.
func (p *CelofanPantalla) Actualizar(ctx context.Context) {
	if p.editandoID == nil {
		return
	}
	if err := p.svc.Actualizar(ctx, *p.editandoID, p.form); err != nil {
		if !alertarValidacion(p.dialogo, err) {
			log.Error().Err(err).Int64("id", *p.editandoID).Msg("pantalla: actualizar producto")
			p.dialogo.Alerta(tituloError, msgErrorActualizarProd)
		}
		return
	}
	p.Cargar(ctx)
	p.ResetForm()
	p.editandoID = nil
}

// Eliminar deletes id after the user confirms.
func (p *CelofanPantalla) Eliminar(ctx context.Context, id int64) {
	if !p.dialogo.Confirmar(tituloConfirmar, msgConfirmarProducto) {
		return
	}
	if err := p.svc.Eliminar(ctx, id); err != nil {
		log.Error().Err(err).Int64("id", id).Msg("pantalla: eliminar producto")
		p.dialogo.Alerta(tituloError, msgErrorEliminarProducto)
		return
	}
	p.Cargar(ctx)
}

// Exportar writes the displayed catalog in formato and shares it.
func (p *CelofanPantalla) Exportar(ctx context.Context, formato string) {
	p.CargandoExportar = true
	defer func() { p.CargandoExportar = false }()

	list := p.Productos()
	if len(list) == 0 {
		p.dialogo.Alerta(tituloSinDato, msgSinProductos)
		return
	}
	if err := exportar(ctx, p.export, p.compartir, service.TablaProductos(p.svc.Material(), list), formato); err != nil {
		log.Error().Err(err).Str("formato", formato).Msg("pantalla: exportar productos")
		p.dialogo.Alerta(tituloError, msgExportFallida(formato))
	}
}
