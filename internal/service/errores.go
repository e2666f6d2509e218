package service

import (
	"errors"
	"fmt"
)

var (
	// ErrNoEncontrado is returned when an update or delete targets a missing id.
	ErrNoEncontrado = errors.New("registro no encontrado")
	// ErrSinDatos is returned by exports over an empty list; nothing is written.
	ErrSinDatos = errors.New("no hay datos para exportar")
	// ErrFormatoInvalido is returned for an unknown export format.
	ErrFormatoInvalido = errors.New("formato de exportación inválido")
)

// Títulos y mensajes compartidos por la API y las pantallas.
const (
	TituloCamposRequeridos = "Campos requeridos"
	TituloError            = "Error"

	MsgCamposCuenta     = "Fecha, proveedor y estado son obligatorios."
	MsgImporteInvalido  = "El importe debe ser un número mayor a 0."
	MsgFechaInvalida    = "La fecha debe tener el formato AAAA-MM-DD."
	MsgEstadoInvalido   = "El estado debe ser Pendiente o Pagado."
	MsgGastoInvalido    = "El gasto seleccionado no es válido."
	MsgCamposProducto   = "Nombre, existencia, precio y unidad son obligatorios."
	MsgExistenciaValida = "La existencia debe ser un número mayor o igual a 0."
	MsgPrecioValido     = "El precio debe ser un número mayor o igual a 0."
)

// ValidacionError is a local validation failure. No store call is made when
// one is returned.
type ValidacionError struct {
	Titulo  string
	Mensaje string
	Campos  map[string]string
}

func (e *ValidacionError) Error() string {
	return fmt.Sprintf("%s: %s", e.Titulo, e.Mensaje)
}

func nuevaValidacion(titulo, mensaje string, campos ...string) *ValidacionError {
	m := make(map[string]string, len(campos))
	for _, c := range campos {
		m[c] = "invalid"
	}
	return &ValidacionError{Titulo: titulo, Mensaje: mensaje, Campos: m}
}

// AsValidacion unwraps err into a *ValidacionError.
func AsValidacion(err error) (*ValidacionError, bool) {
	var v *ValidacionError
	if errors.As(err, &v) {
		return v, true
	}
	return nil, false
}
