package service_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/EfrainEsquivar/GrupoKZ-copiaV1/internal/dto"
	"github.com/EfrainEsquivar/GrupoKZ-copiaV1/internal/infra"
	"github.com/EfrainEsquivar/GrupoKZ-copiaV1/internal/model"
	"github.com/EfrainEsquivar/GrupoKZ-copiaV1/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTablaCuentas(t *testing.T) {
	c1 := cuenta(1, "2024-01-15", "ACME", "150.50", "Pendiente")
	c1.Descripcion = ptr("Bobinas")
	c1.Gasto = &model.Gasto{ID: 4, Concepto: "Insumos"}
	c2 := cuenta(2, "2024-01-10", "Cartones", "80", "Pagado")

	tabla := service.TablaCuentas([]model.CuentaPorPagar{c1, c2})

	assert.Equal(t, "CuentasPorPagar", tabla.Hoja)
	assert.Equal(t, []string{"Fecha", "Proveedor", "Importe", "Estado", "Descripción", "Gasto"}, tabla.Columnas)
	require.Len(t, tabla.Filas, 2)
	assert.Equal(t, "Insumos", tabla.Filas[0][5])
	assert.Nil(t, tabla.Filas[1][5])
	assert.Equal(t, "Total de cuentas: 2", tabla.Resumen)
}

func TestTablaProductos(t *testing.T) {
	repo := newStubProductoRepo()
	p := seedProducto(repo, "Rollo", "3", "120", "rollo", model.MaterialCelofan)

	tabla := service.TablaProductos(model.MaterialCelofan, []model.Producto{*p})

	assert.Equal(t, "Celofan", tabla.Hoja)
	assert.Equal(t, "productos_celofan", tabla.Nombre)
	assert.Equal(t, []string{"Nombre", "Existencia", "Precio", "Unidad"}, tabla.Columnas)
	assert.Equal(t, "Productos de Celofán", tabla.Titulo)
}

func TestTablaProductos_MaterialConCaracteresDeHoja(t *testing.T) {
	repo := newStubProductoRepo()
	material := "Bolsa 1/2 [kg]: nueva?*"
	p := seedProducto(repo, "Rollo", "3", "120", "rollo", material)

	tabla := service.TablaProductos(material, []model.Producto{*p})

	assert.Equal(t, "Bolsa1_2_kg__nueva__", tabla.Hoja)
	assert.NotContains(t, tabla.Nombre, "/")

	_, err := infra.GenerarXLSX(tabla)
	require.NoError(t, err)
}

func TestExportar_SinDatosNoEscribe(t *testing.T) {
	disk := newStubDisk()
	svc := service.NewExportService(disk)

	for _, formato := range []string{dto.FormatoXLSX, dto.FormatoPDF, dto.FormatoHTML} {
		_, err := svc.Exportar(context.Background(), service.TablaCuentas(nil), formato)
		assert.ErrorIs(t, err, service.ErrSinDatos)
	}
	assert.Zero(t, disk.puts)
}

func TestExportar_FormatoInvalido(t *testing.T) {
	disk := newStubDisk()
	svc := service.NewExportService(disk)

	tabla := service.TablaCuentas([]model.CuentaPorPagar{cuenta(1, "2024-01-15", "ACME", "1", "Pendiente")})
	_, err := svc.Exportar(context.Background(), tabla, "csv")
	assert.ErrorIs(t, err, service.ErrFormatoInvalido)
	assert.Zero(t, disk.puts)
}

func TestExportar_GuardaArchivo(t *testing.T) {
	disk := newStubDisk()
	svc := service.NewExportService(disk)
	tabla := service.TablaCuentas([]model.CuentaPorPagar{cuenta(1, "2024-01-15", "ACME", "150.5", "Pendiente")})

	cases := map[string]struct {
		nombre string
		mime   string
		magic  []byte
	}{
		dto.FormatoXLSX: {"cuentas_por_pagar.xlsx", "spreadsheetml", []byte("PK")},
		dto.FormatoPDF:  {"cuentas_por_pagar.pdf", "application/pdf", []byte("%PDF")},
		dto.FormatoHTML: {"cuentas_por_pagar.html", "text/html", []byte("<!DOCTYPE html>")},
	}
	for formato, want := range cases {
		t.Run(formato, func(t *testing.T) {
			a, err := svc.Exportar(context.Background(), tabla, formato)
			require.NoError(t, err)

			assert.Equal(t, want.nombre, a.Nombre)
			assert.Contains(t, a.TipoMIME, want.mime)
			assert.True(t, bytes.HasPrefix(a.Contenido, want.magic))
			assert.True(t, strings.HasSuffix(a.Ruta, "/"+want.nombre))
			assert.Equal(t, "https://files.example.com/"+a.Ruta, a.URL)

			stored, err := disk.Get(context.Background(), a.Ruta)
			require.NoError(t, err)
			assert.Equal(t, a.Contenido, stored)
		})
	}
	assert.Equal(t, 3, disk.puts)
}

func TestExportar_ErrorDisco(t *testing.T) {
	disk := newStubDisk()
	disk.putErr = errStore
	svc := service.NewExportService(disk)
	tabla := service.TablaCuentas([]model.CuentaPorPagar{cuenta(1, "2024-01-15", "ACME", "1", "Pendiente")})

	_, err := svc.Exportar(context.Background(), tabla, dto.FormatoPDF)
	assert.ErrorIs(t, err, errStore)
}
