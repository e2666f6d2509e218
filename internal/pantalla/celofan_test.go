package pantalla

import (
	"context"
	"testing"

	"github.com/EfrainEsquivar/GrupoKZ-copiaV1/internal/dto"
	"github.com/EfrainEsquivar/GrupoKZ-copiaV1/internal/model"
	"github.com/EfrainEsquivar/GrupoKZ-copiaV1/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type celofanFixture struct {
	p      *CelofanPantalla
	repo   *repoProductos
	dlg    *dialogoFalso
	export *exportadorFalso
	comp   *compartidorFalso
}

func newCelofan(rows ...model.Producto) celofanFixture {
	f := celofanFixture{
		repo:   &repoProductos{rows: rows},
		dlg:    &dialogoFalso{respuesta: true},
		export: &exportadorFalso{},
		comp:   &compartidorFalso{},
	}
	svc := service.NewProductoService(f.repo, model.MaterialCelofan)
	f.p = NewCelofanPantalla(svc, f.export, f.comp, f.dlg)
	return f
}

func llenarProducto(t *testing.T, p *CelofanPantalla, nombre, existencia, precio, unidad string) {
	t.Helper()
	require.NoError(t, p.CambiarCampo("nombre", nombre))
	require.NoError(t, p.CambiarCampo("existencia", existencia))
	require.NoError(t, p.CambiarCampo("precio", precio))
	require.NoError(t, p.CambiarCampo("unidad", unidad))
}

func TestCelofan_MontarFiltraInvalidos(t *testing.T) {
	invalido := celofan(3, "")
	sinPrecio := celofan(4, "Sin precio")
	sinPrecio.Precio.Valid = false
	f := newCelofan(celofan(1, "Rollo 30cm"), invalido, sinPrecio)

	f.p.Montar(context.Background())

	require.Len(t, f.p.Productos(), 1)
	assert.Equal(t, int64(1), f.p.Productos()[0].ID)
	assert.False(t, f.p.Cargando)
	assert.Empty(t, f.dlg.alertas)
}

func TestCelofan_CargarErrorConservaLista(t *testing.T) {
	f := newCelofan(celofan(1, "Rollo 30cm"))
	f.p.Cargar(context.Background())

	f.repo.errList = errStore
	f.p.Cargar(context.Background())

	assert.Len(t, f.p.Productos(), 1)
	assert.False(t, f.p.Cargando)
	assert.Equal(t, []alerta{{"Error", "Error al obtener productos"}}, f.dlg.alertas)
}

func TestCelofan_CargaInicialFallidaQuedaVacia(t *testing.T) {
	f := newCelofan(celofan(1, "Rollo 30cm"))
	f.repo.errList = errStore

	f.p.Montar(context.Background())

	assert.Empty(t, f.p.Productos())
	assert.False(t, f.p.Cargando)
}

func TestCelofan_AgregarRecargaYLimpia(t *testing.T) {
	f := newCelofan()
	llenarProducto(t, f.p, "Celofán azul", "12", "30.5", "rollo")

	f.p.Agregar(context.Background())

	require.Len(t, f.repo.creados, 1)
	assert.Equal(t, model.MaterialCelofan, *f.repo.creados[0].Material)
	assert.Equal(t, 1, f.repo.listas)
	assert.Equal(t, dto.NuevoProductoForm(model.MaterialCelofan), f.p.Form())
	assert.Empty(t, f.dlg.alertas)
}

func TestCelofan_AgregarInvalidoNoEscribe(t *testing.T) {
	f := newCelofan()
	llenarProducto(t, f.p, "Celofán azul", "", "30.5", "rollo")

	f.p.Agregar(context.Background())

	assert.Empty(t, f.repo.creados)
	assert.Zero(t, f.repo.listas)
	assert.Equal(t, []alerta{{service.TituloCamposRequeridos, service.MsgCamposProducto}}, f.dlg.alertas)
	assert.Equal(t, "Celofán azul", f.p.Form().Nombre)
}

func TestCelofan_AgregarErrorStoreConservaForm(t *testing.T) {
	f := newCelofan()
	f.repo.errEsc = errStore
	llenarProducto(t, f.p, "Celofán azul", "1", "2", "rollo")

	f.p.Agregar(context.Background())

	assert.Equal(t, []alerta{{"Error", "Error al agregar producto"}}, f.dlg.alertas)
	assert.Equal(t, "Celofán azul", f.p.Form().Nombre)
	assert.Zero(t, f.repo.listas)
}

func TestCelofan_EditarYActualizar(t *testing.T) {
	f := newCelofan(celofan(5, "Rollo 30cm"))
	f.p.Montar(context.Background())

	f.p.Editar(f.p.Productos()[0])
	require.NotNil(t, f.p.EditandoID())
	assert.Equal(t, int64(5), *f.p.EditandoID())
	assert.Equal(t, "10", f.p.Form().Existencia)
	assert.Equal(t, "25.5", f.p.Form().Precio)

	require.NoError(t, f.p.CambiarCampo("precio", "27"))
	f.p.Actualizar(context.Background())

	assert.Equal(t, []int64{5}, f.repo.updates)
	assert.Empty(t, f.repo.creados)
	assert.Equal(t, 2, f.repo.listas)
	assert.Nil(t, f.p.EditandoID())
	assert.Equal(t, "", f.p.Form().Nombre)
}

func TestCelofan_ActualizarFallidoConservaEdicion(t *testing.T) {
	f := newCelofan(celofan(5, "Rollo 30cm"))
	f.p.Editar(celofan(5, "Rollo 30cm"))
	f.repo.errEsc = errStore

	f.p.Actualizar(context.Background())

	assert.Equal(t, []alerta{{"Error", "Error al actualizar producto"}}, f.dlg.alertas)
	require.NotNil(t, f.p.EditandoID())
	assert.Equal(t, "Rollo 30cm", f.p.Form().Nombre)
}

func TestCelofan_EliminarPideConfirmacion(t *testing.T) {
	f := newCelofan(celofan(5, "Rollo 30cm"))
	f.dlg.respuesta = false

	f.p.Eliminar(context.Background(), 5)
	assert.Empty(t, f.repo.borrados)
	require.Len(t, f.dlg.preguntas, 1)
	assert.Equal(t, "Confirmar eliminación", f.dlg.preguntas[0].titulo)

	f.dlg.respuesta = true
	f.p.Eliminar(context.Background(), 5)
	assert.Equal(t, []int64{5}, f.repo.borrados)
	assert.Equal(t, 1, f.repo.listas)
}

func TestCelofan_CambiarCampoDesconocido(t *testing.T) {
	f := newCelofan()
	assert.Error(t, f.p.CambiarCampo("material", "Papel"))
}

func TestCelofan_ExportarVacioAvisaUnaVez(t *testing.T) {
	f := newCelofan()
	f.p.Exportar(context.Background(), dto.FormatoXLSX)

	assert.Equal(t, []alerta{{"Sin datos", "No hay productos para exportar."}}, f.dlg.alertas)
	assert.Empty(t, f.export.tablas)
	assert.Empty(t, f.comp.archivos)
	assert.False(t, f.p.CargandoExportar)
}

func TestCelofan_ExportarComparte(t *testing.T) {
	f := newCelofan(celofan(1, "Rollo 30cm"))
	f.p.Montar(context.Background())

	f.p.Exportar(context.Background(), dto.FormatoPDF)

	require.Len(t, f.export.tablas, 1)
	assert.Equal(t, []string{"Nombre", "Existencia", "Precio", "Unidad"}, f.export.tablas[0].Columnas)
	assert.Equal(t, []string{"productos_celofan.pdf"}, f.comp.archivos)
	assert.False(t, f.p.CargandoExportar)
}
