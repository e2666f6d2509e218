package main

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportar_CampoDesconocido(t *testing.T) {
	cmd := newExportarCmd()
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{"cuentas", "--busqueda", "acme", "--campo", "provedor"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "provedor")
}

func TestExportar_EntidadDesconocida(t *testing.T) {
	cmd := newExportarCmd()
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{"proveedores"})

	assert.Error(t, cmd.Execute())
}
