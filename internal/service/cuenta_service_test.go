package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/EfrainEsquivar/GrupoKZ-copiaV1/internal/dto"
	"github.com/EfrainEsquivar/GrupoKZ-copiaV1/internal/model"
	"github.com/EfrainEsquivar/GrupoKZ-copiaV1/internal/service"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fecha(s string) *time.Time {
	t, err := time.Parse(service.FormatoFecha, s)
	if err != nil {
		panic(err)
	}
	return &t
}

func cuenta(id int64, f, proveedor, importe, estado string) model.CuentaPorPagar {
	c := model.CuentaPorPagar{ID: id, Proveedor: ptr(proveedor), Estado: ptr(estado)}
	if f != "" {
		c.Fecha = fecha(f)
	}
	if importe != "" {
		c.Importe = decimal.NewNullDecimal(decimal.RequireFromString(importe))
	}
	return c
}

func buildCuentaSvc(cuentas ...model.CuentaPorPagar) (service.CuentaService, *stubCuentaRepo) {
	repo := &stubCuentaRepo{cuentas: cuentas}
	gastos := &stubGastoRepo{gastos: []model.Gasto{{ID: 1, Concepto: "Renta"}}}
	return service.NewCuentaService(repo, gastos), repo
}

func TestGuardarCuenta_CreaConImporteNumerico(t *testing.T) {
	svc, repo := buildCuentaSvc()

	c, err := svc.Guardar(context.Background(), dto.CuentaForm{
		Fecha: "2024-01-15", Proveedor: "ACME", Importe: "150.50", Estado: "Pendiente",
	})

	require.NoError(t, err)
	require.Len(t, repo.creates, 1)
	assert.Empty(t, repo.updates)
	inserted := repo.creates[0]
	assert.True(t, inserted.Importe.Decimal.Equal(decimal.RequireFromString("150.5")))
	assert.Equal(t, "2024-01-15", inserted.Fecha.Format(service.FormatoFecha))
	assert.Nil(t, inserted.Descripcion)
	assert.Nil(t, inserted.GastoID)
	assert.Equal(t, int64(101), c.ID)
}

func TestGuardarCuenta_RecortaProveedorYDescripcion(t *testing.T) {
	svc, repo := buildCuentaSvc()

	_, err := svc.Guardar(context.Background(), dto.CuentaForm{
		Fecha: "2024-02-01", Proveedor: "  Plásticos SA ", Importe: "10", Estado: "Pagado",
		Descripcion: "  factura 77  ", GastoID: "3",
	})

	require.NoError(t, err)
	inserted := repo.creates[0]
	assert.Equal(t, "Plásticos SA", *inserted.Proveedor)
	assert.Equal(t, "factura 77", *inserted.Descripcion)
	assert.Equal(t, int64(3), *inserted.GastoID)
}

func TestGuardarCuenta_EditarActualizaPorID(t *testing.T) {
	existente := cuenta(7, "2024-01-15", "ACME", "150.5", "Pendiente")
	svc, repo := buildCuentaSvc(existente)

	form := service.FormDesdeCuenta(existente)
	require.NotNil(t, form.ID)
	assert.Equal(t, int64(7), *form.ID)
	assert.Equal(t, "150.5", form.Importe)
	assert.Equal(t, "2024-01-15", form.Fecha)

	form.Estado = "Pagado"
	c, err := svc.Guardar(context.Background(), form)

	require.NoError(t, err)
	assert.Empty(t, repo.creates)
	require.Len(t, repo.updates, 1)
	assert.Equal(t, int64(7), repo.updates[0].id)
	assert.Equal(t, "Pagado", repo.updates[0].campos["estado"])
	assert.Nil(t, repo.updates[0].campos["descripcion"])
	assert.Nil(t, repo.updates[0].campos["gasto_id"])
	assert.Equal(t, int64(7), c.ID)
}

func TestGuardarCuenta_ActualizarNoExiste(t *testing.T) {
	svc, _ := buildCuentaSvc()
	id := int64(42)
	_, err := svc.Guardar(context.Background(), dto.CuentaForm{
		ID: &id, Fecha: "2024-01-15", Proveedor: "ACME", Importe: "1", Estado: "Pendiente",
	})
	assert.ErrorIs(t, err, service.ErrNoEncontrado)
}

func TestGuardarCuenta_ValidacionSinEscrituras(t *testing.T) {
	valido := dto.CuentaForm{Fecha: "2024-01-15", Proveedor: "ACME", Importe: "150.50", Estado: "Pendiente"}
	cases := []struct {
		name    string
		mutate  func(f *dto.CuentaForm)
		titulo  string
		mensaje string
	}{
		{"sin fecha", func(f *dto.CuentaForm) { f.Fecha = "" }, service.TituloCamposRequeridos, service.MsgCamposCuenta},
		{"proveedor en blanco", func(f *dto.CuentaForm) { f.Proveedor = "   " }, service.TituloCamposRequeridos, service.MsgCamposCuenta},
		{"sin estado", func(f *dto.CuentaForm) { f.Estado = "" }, service.TituloCamposRequeridos, service.MsgCamposCuenta},
		{"importe cero", func(f *dto.CuentaForm) { f.Importe = "0" }, service.TituloError, service.MsgImporteInvalido},
		{"importe negativo", func(f *dto.CuentaForm) { f.Importe = "-5" }, service.TituloError, service.MsgImporteInvalido},
		{"importe no numerico", func(f *dto.CuentaForm) { f.Importe = "mil" }, service.TituloError, service.MsgImporteInvalido},
		{"importe vacio", func(f *dto.CuentaForm) { f.Importe = "" }, service.TituloError, service.MsgImporteInvalido},
		{"fecha mal formada", func(f *dto.CuentaForm) { f.Fecha = "15/01/2024" }, service.TituloError, service.MsgFechaInvalida},
		{"estado desconocido", func(f *dto.CuentaForm) { f.Estado = "Vencido" }, service.TituloError, service.MsgEstadoInvalido},
		{"gasto invalido", func(f *dto.CuentaForm) { f.GastoID = "x" }, service.TituloError, service.MsgGastoInvalido},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc, repo := buildCuentaSvc()
			form := valido
			tc.mutate(&form)

			_, err := svc.Guardar(context.Background(), form)

			v, ok := service.AsValidacion(err)
			require.True(t, ok, "expected validation error, got %v", err)
			assert.Equal(t, tc.titulo, v.Titulo)
			assert.Equal(t, tc.mensaje, v.Mensaje)
			assert.Zero(t, repo.writes())
		})
	}
}

func TestGuardarCuenta_RequeridosAntesQueImporte(t *testing.T) {
	_, err := service.ValidarCuenta(dto.CuentaForm{Importe: "-1"})
	v, ok := service.AsValidacion(err)
	require.True(t, ok)
	assert.Equal(t, service.TituloCamposRequeridos, v.Titulo)
	assert.Contains(t, v.Campos, "fecha")
	assert.Contains(t, v.Campos, "proveedor")
	assert.Contains(t, v.Campos, "estado")
}

func TestListarCuentas_FiltraInvalidasYBusca(t *testing.T) {
	svc, repo := buildCuentaSvc(
		cuenta(1, "2024-03-01", "ACME", "10", "Pendiente"),
		cuenta(2, "2024-02-01", "Pendientes SA", "20", "Pagado"),
		cuenta(3, "2024-01-01", "Cartones", "30", "Pagado"),
		cuenta(4, "", "Sin fecha", "40", "Pendiente"),
		cuenta(5, "2024-01-01", "Sin importe", "", "Pendiente"),
	)

	todas, err := svc.Listar(context.Background(), dto.CuentaFilter{})
	require.NoError(t, err)
	assert.Len(t, todas, 3)

	pend, err := svc.Listar(context.Background(), dto.CuentaFilter{Busqueda: "PEND"})
	require.NoError(t, err)
	require.Len(t, pend, 2)
	assert.Equal(t, int64(1), pend[0].ID)
	assert.Equal(t, int64(2), pend[1].ID)
	assert.Equal(t, 2, repo.listCalls)
}

func TestListarCuentas_ErrorStore(t *testing.T) {
	svc, repo := buildCuentaSvc()
	repo.listErr = errStore
	_, err := svc.Listar(context.Background(), dto.CuentaFilter{})
	assert.ErrorIs(t, err, errStore)
}

func TestFiltrarCuentas(t *testing.T) {
	cuentas := []model.CuentaPorPagar{
		cuenta(1, "2024-03-01", "ACME", "10", "Pendiente"),
		cuenta(2, "2024-02-01", "Pendientes SA", "20", "Pagado"),
		cuenta(3, "2024-01-01", "Cartones", "30", "Pagado"),
	}

	assert.Len(t, service.FiltrarCuentas(cuentas, dto.CuentaFilter{}), 3)
	assert.Len(t, service.FiltrarCuentas(cuentas, dto.CuentaFilter{Busqueda: "pag"}), 2)
	assert.Len(t, service.FiltrarCuentas(cuentas, dto.CuentaFilter{Busqueda: "acme"}), 1)
	assert.Empty(t, service.FiltrarCuentas(cuentas, dto.CuentaFilter{Busqueda: "zzz"}))

	soloEstado := service.FiltrarCuentas(cuentas, dto.CuentaFilter{Busqueda: "pend", Campo: dto.CampoEstado})
	require.Len(t, soloEstado, 1)
	assert.Equal(t, int64(1), soloEstado[0].ID)

	soloProveedor := service.FiltrarCuentas(cuentas, dto.CuentaFilter{Busqueda: "pend", Campo: dto.CampoProveedor})
	require.Len(t, soloProveedor, 1)
	assert.Equal(t, int64(2), soloProveedor[0].ID)
}

func TestNuevoFormCuenta(t *testing.T) {
	now := time.Date(2024, 5, 31, 23, 30, 0, 0, time.FixedZone("CST", -6*3600))
	form := service.NuevoFormCuenta(now)
	assert.Equal(t, dto.CuentaForm{Fecha: "2024-06-01", Importe: "0", Estado: model.EstadoPendiente}, form)
}

func TestEliminarCuenta(t *testing.T) {
	svc, repo := buildCuentaSvc(cuenta(7, "2024-01-15", "ACME", "1", "Pendiente"))
	require.NoError(t, svc.Eliminar(context.Background(), 7))
	assert.Equal(t, []int64{7}, repo.deletes)
	assert.ErrorIs(t, svc.Eliminar(context.Background(), 7), service.ErrNoEncontrado)
}

func TestListarGastos(t *testing.T) {
	svc, _ := buildCuentaSvc()
	gastos, err := svc.ListarGastos(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Renta", gastos[0].Concepto)
}

func TestMapCuenta(t *testing.T) {
	c := cuenta(7, "2024-01-15", "ACME", "150.50", "Pendiente")
	c.GastoID = ptr(int64(2))
	c.Gasto = &model.Gasto{ID: 2, Concepto: "Insumos"}

	r := service.MapCuenta(c)
	assert.Equal(t, "2024-01-15", r.Fecha)
	assert.Equal(t, "150.5", r.Importe.String())
	require.NotNil(t, r.GastoConcepto)
	assert.Equal(t, "Insumos", *r.GastoConcepto)
}
