package pantalla

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/EfrainEsquivar/GrupoKZ-copiaV1/internal/dto"
	"github.com/EfrainEsquivar/GrupoKZ-copiaV1/internal/model"
	"github.com/EfrainEsquivar/GrupoKZ-copiaV1/internal/service"

	"github.com/rs/zerolog/log"
)

const (
	msgErrorCargarCuentas = "No se pudieron cargar las cuentas por pagar"
	msgErrorGuardarCuenta = "No se pudo guardar la cuenta por pagar."
	msgErrorEliminarCta   = "No se pudo eliminar la cuenta."
	msgCuentaCreada       = "Cuenta creada correctamente"
	msgCuentaActualizada  = "Cuenta actualizada correctamente"
	msgCuentaEliminada    = "Cuenta eliminada correctamente"
	msgConfirmarCuenta    = "¿Estás seguro de que deseas eliminar esta cuenta por pagar? Esto puede afectar reportes financieros."
	msgSinCuentas         = "No hay cuentas por pagar para exportar."

	MsgSinResultados = "No se encontraron cuentas con esa búsqueda"
	MsgSinCuentas    = "No hay cuentas por pagar registradas"

	// SinGasto labels the empty option of the gasto selector.
	SinGasto = "Sin gasto"
)

// Opcion is one entry of a selector: the value stored in the form and its label.
type Opcion struct {
	Valor    string
	Etiqueta string
}

// CuentasPantalla is the payables ledger screen.
type CuentasPantalla struct {
	svc       service.CuentaService
	export    Exportador
	compartir service.Compartidor
	dialogo   Dialogo
	now       func() time.Time

	cuentas []model.CuentaPorPagar
	gastos  []model.Gasto
	filtro  dto.CuentaFilter
	form    dto.CuentaForm

	MostrarForm      bool
	Cargando         bool
	CargandoExportar bool
}

func NewCuentasPantalla(svc service.CuentaService, export Exportador, compartir service.Compartidor, dialogo Dialogo) *CuentasPantalla {
	p := &CuentasPantalla{
		svc:       svc,
		export:    export,
		compartir: compartir,
		dialogo:   dialogo,
		now:       time.Now,
	}
	p.form = service.NuevoFormCuenta(p.now())
	return p
}

func (p *CuentasPantalla) Montar(ctx context.Context) {
	p.Cargar(ctx)
	p.CargarGastos(ctx)
}

// Cargar re-reads the payables. The search is applied locally by Cuentas.
func (p *CuentasPantalla) Cargar(ctx context.Context) {
	p.Cargando = true
	defer func() { p.Cargando = false }()

	list, err := p.svc.Listar(ctx, dto.CuentaFilter{})
	if err != nil {
		log.Error().Err(err).Msg("pantalla: fetch cuentas por pagar")
		p.dialogo.Alerta(tituloError, msgErrorCargarCuentas)
		return
	}
	p.cuentas = list
}

// CargarGastos fills the gasto selector. Failures are only logged.
func (p *CuentasPantalla) CargarGastos(ctx context.Context) {
	gastos, err := p.svc.ListarGastos(ctx)
	if err != nil {
		log.Error().Err(err).Msg("pantalla: fetch gastos")
		return
	}
	p.gastos = gastos
}

func (p *CuentasPantalla) Buscar(texto string) { p.filtro.Busqueda = texto }

// BuscarEn scopes the search to one field; dto.CampoTodos restores the OR match.
func (p *CuentasPantalla) BuscarEn(campo string) error {
	if !dto.CampoValido(campo) {
		return fmt.Errorf("campo de búsqueda desconocido: %q", campo)
	}
	p.filtro.Campo = campo
	return nil
}

func (p *CuentasPantalla) Busqueda() string { return p.filtro.Busqueda }

// Cuentas returns the fetched payables narrowed by the current search.
func (p *CuentasPantalla) Cuentas() []model.CuentaPorPagar {
	validas := make([]model.CuentaPorPagar, 0, len(p.cuentas))
	for _, c := range p.cuentas {
		if c.Valida() {
			validas = append(validas, c)
		}
	}
	return service.FiltrarCuentas(validas, p.filtro)
}

// MensajeVacio is the text shown in place of an empty list, or "" when there
// are rows.
func (p *CuentasPantalla) MensajeVacio() string {
	if len(p.Cuentas()) > 0 {
		return ""
	}
	if p.filtro.Busqueda != "" {
		return MsgSinResultados
	}
	return MsgSinCuentas
}

func (p *CuentasPantalla) Form() dto.CuentaForm { return p.form }

// ImporteVisible is the importe input text; the default "0" shows empty.
func (p *CuentasPantalla) ImporteVisible() string {
	if p.form.Importe == "0" {
		return ""
	}
	return p.form.Importe
}

func (p *CuentasPantalla) OpcionesEstado() []Opcion {
	out := make([]Opcion, 0, len(model.Estados))
	for _, e := range model.Estados {
		out = append(out, Opcion{Valor: e, Etiqueta: e})
	}
	return out
}

// OpcionesGasto lists the gasto selector, "Sin gasto" first.
func (p *CuentasPantalla) OpcionesGasto() []Opcion {
	out := []Opcion{{Valor: "", Etiqueta: SinGasto}}
	for _, g := range p.gastos {
		out = append(out, Opcion{Valor: strconv.FormatInt(g.ID, 10), Etiqueta: g.Concepto})
	}
	return out
}

// Nueva opens an empty form.
func (p *CuentasPantalla) Nueva() {
	p.form = service.NuevoFormCuenta(p.now())
	p.MostrarForm = true
}

// Editar loads c into the form and shows it.
func (p *CuentasPantalla) Editar(c model.CuentaPorPagar) {
	p.form = service.FormDesdeCuenta(c)
	p.MostrarForm = true
}

// ResetForm restores the default form and hides it.
func (p *CuentasPantalla) ResetForm() {
	p.form = service.NuevoFormCuenta(p.now())
	p.MostrarForm = false
}

func (p *CuentasPantalla) CambiarCampo(campo, valor string) error {
	switch campo {
	case "fecha":
		p.form.Fecha = valor
	case "proveedor":
		p.form.Proveedor = valor
	case "importe":
		p.form.Importe = valor
	case "estado":
		p.form.Estado = valor
	case "descripcion":
		p.form.Descripcion = valor
	case "gasto_id":
		p.form.GastoID = valor
	default:
		return fmt.Errorf("campo desconocido: %q", campo)
	}
	return nil
}

// Guardar validates locally, then inserts or updates by the form's id.
func (p *CuentasPantalla) Guardar(ctx context.Context) {
	p.Cargando = true
	defer func() { p.Cargando = false }()

	editando := p.form.ID != nil
	if _, err := p.svc.Guardar(ctx, p.form); err != nil {
		if !alertarValidacion(p.dialogo, err) {
			log.Error().Err(err).Bool("editando", editando).Msg("pantalla: guardar cuenta")
			p.dialogo.Alerta(tituloError, msgErrorGuardarCuenta)
		}
		return
	}
	if editando {
		p.dialogo.Alerta(tituloExito, msgCuentaActualizada)
	} else {
		p.dialogo.Alerta(tituloExito, msgCuentaCreada)
	}
	p.ResetForm()
	p.Cargar(ctx)
}

// Eliminar deletes id after the destructive confirmation. The form is kept.
func (p *CuentasPantalla) Eliminar(ctx context.Context, id int64) {
	if !p.dialogo.Confirmar(tituloConfirmar, msgConfirmarCuenta) {
		return
	}
	if err := p.svc.Eliminar(ctx, id); err != nil {
		log.Error().Err(err).Int64("id", id).Msg("pantalla: eliminar cuenta")
		p.dialogo.Alerta(tituloError, msgErrorEliminarCta)
		return
	}
	p.dialogo.Alerta(tituloExito, msgCuentaEliminada)
	p.Cargar(ctx)
}

func (p *CuentasPantalla) ExportarExcel(ctx context.Context) { p.Exportar(ctx, dto.FormatoXLSX) }

func (p *CuentasPantalla) ExportarPDF(ctx context.Context) { p.Exportar(ctx, dto.FormatoPDF) }

// Exportar writes the filtered list in formato and shares it.
func (p *CuentasPantalla) Exportar(ctx context.Context, formato string) {
	p.CargandoExportar = true
	defer func() { p.CargandoExportar = false }()

	list := p.Cuentas()
	if len(list) == 0 {
		p.dialogo.Alerta(tituloSinDato, msgSinCuentas)
		return
	}
	if err := exportar(ctx, p.export, p.compartir, service.TablaCuentas(list), formato); err != nil {
		log.Error().Err(err).Str("formato", formato).Msg("pantalla: exportar cuentas")
		p.dialogo.Alerta(tituloError, msgExportFallida(formato))
	}
}
