package handler

import (
	"net/http"

	"github.com/EfrainEsquivar/GrupoKZ-copiaV1/internal/apierror"
	"github.com/EfrainEsquivar/GrupoKZ-copiaV1/internal/dto"
	"github.com/EfrainEsquivar/GrupoKZ-copiaV1/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	msgCuentaNoEncontrada      = "Cuenta por pagar no encontrada"
	msgSinCuentas              = "No hay cuentas por pagar para exportar."
	msgConfirmarEliminarCuenta = "¿Estás seguro de que deseas eliminar esta cuenta por pagar? Esto puede afectar reportes financieros."
)

type CuentasHandler struct {
	svc       service.CuentaService
	export    service.ExportService
	porCorreo func(email string) service.Compartidor
}

func NewCuentasHandler(svc service.CuentaService, export service.ExportService, porCorreo func(email string) service.Compartidor) *CuentasHandler {
	return &CuentasHandler{svc: svc, export: export, porCorreo: porCorreo}
}

func (h *CuentasHandler) Listar(c *gin.Context) {
	var filtro dto.CuentaFilter
	if !bindQuery(c, &filtro) {
		return
	}
	list, err := h.svc.Listar(c.Request.Context(), filtro)
	if err != nil {
		responderError(c, err, msgCuentaNoEncontrada, "")
		return
	}
	resp := dto.CuentaListResponse{Data: make([]dto.CuentaResponse, 0, len(list)), Total: len(list)}
	for _, cu := range list {
		resp.Data = append(resp.Data, service.MapCuenta(cu))
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CuentasHandler) Crear(c *gin.Context) {
	var req dto.CuentaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	cu, err := h.svc.Guardar(c.Request.Context(), req.Form(nil))
	if err != nil {
		responderError(c, err, msgCuentaNoEncontrada, "")
		return
	}
	c.JSON(http.StatusCreated, service.MapCuenta(*cu))
}

func (h *CuentasHandler) Actualizar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.CuentaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	cu, err := h.svc.Guardar(c.Request.Context(), req.Form(&id))
	if err != nil {
		responderError(c, err, msgCuentaNoEncontrada, "")
		return
	}
	c.JSON(http.StatusOK, service.MapCuenta(*cu))
}

func (h *CuentasHandler) Eliminar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if !confirmado(c, tituloConfirmarEliminar, msgConfirmarEliminarCuenta) {
		return
	}
	if err := h.svc.Eliminar(c.Request.Context(), id); err != nil {
		responderError(c, err, msgCuentaNoEncontrada, "")
		return
	}
	c.Status(http.StatusNoContent)
}

// Exportar renders the payables matching busqueda/campo. With ?email= the file
// is mailed by the worker pool and the response is 202.
func (h *CuentasHandler) Exportar(c *gin.Context) {
	var q dto.ExportarQuery
	if !bindQuery(c, &q) {
		return
	}
	if q.Email != "" && h.porCorreo == nil {
		c.JSON(http.StatusServiceUnavailable, apierror.New("El envio por correo no esta disponible"))
		return
	}
	list, err := h.svc.Listar(c.Request.Context(), q.CuentaFilter)
	if err != nil {
		responderError(c, err, msgCuentaNoEncontrada, msgSinCuentas)
		return
	}
	a, err := h.export.Exportar(c.Request.Context(), service.TablaCuentas(list), c.Param("formato"))
	if err != nil {
		responderError(c, err, msgCuentaNoEncontrada, msgSinCuentas)
		return
	}
	entregarArchivo(c, a, q.Email, h.porCorreo)
}

// Gastos lists the expense selector options, newest first.
func (h *CuentasHandler) Gastos(c *gin.Context) {
	gastos, err := h.svc.ListarGastos(c.Request.Context())
	if err != nil {
		responderError(c, err, "", "")
		return
	}
	resp := make([]dto.GastoResponse, 0, len(gastos))
	for _, g := range gastos {
		resp = append(resp, dto.GastoResponse{ID: g.ID, Concepto: g.Concepto})
	}
	c.JSON(http.StatusOK, resp)
}
