package handler

import (
	"net/http"

	"github.com/EfrainEsquivar/GrupoKZ-copiaV1/internal/apierror"
	"github.com/EfrainEsquivar/GrupoKZ-copiaV1/internal/dto"
	"github.com/EfrainEsquivar/GrupoKZ-copiaV1/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	msgProductoNoEncontrado  = "Producto no encontrado"
	msgSinProductos          = "No hay productos para exportar."
	msgConfirmarEliminarProd = "¿Estás seguro de que deseas eliminar este producto?"
	tituloConfirmarEliminar  = "Confirmar eliminación"
)

// CelofanHandler serves the catalog of the configured material.
type CelofanHandler struct {
	svc       service.ProductoService
	export    service.ExportService
	porCorreo func(email string) service.Compartidor
}

func NewCelofanHandler(svc service.ProductoService, export service.ExportService, porCorreo func(email string) service.Compartidor) *CelofanHandler {
	return &CelofanHandler{svc: svc, export: export, porCorreo: porCorreo}
}

func (h *CelofanHandler) Listar(c *gin.Context) {
	list, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		responderError(c, err, msgProductoNoEncontrado, "")
		return
	}
	resp := dto.ProductoListResponse{Data: make([]dto.ProductoResponse, 0, len(list)), Total: len(list)}
	for _, p := range list {
		resp.Data = append(resp.Data, service.MapProducto(p))
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CelofanHandler) Crear(c *gin.Context) {
	var req dto.ProductoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	p, err := h.svc.Crear(c.Request.Context(), req.Form(h.svc.Material()))
	if err != nil {
		responderError(c, err, msgProductoNoEncontrado, "")
		return
	}
	c.JSON(http.StatusCreated, service.MapProducto(*p))
}

func (h *CelofanHandler) Actualizar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.ProductoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.Actualizar(c.Request.Context(), id, req.Form(h.svc.Material())); err != nil {
		responderError(c, err, msgProductoNoEncontrado, "")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CelofanHandler) Eliminar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if !confirmado(c, tituloConfirmarEliminar, msgConfirmarEliminarProd) {
		return
	}
	if err := h.svc.Eliminar(c.Request.Context(), id); err != nil {
		responderError(c, err, msgProductoNoEncontrado, "")
		return
	}
	c.Status(http.StatusNoContent)
}

// Exportar renders the current catalog as xlsx, pdf or html.
func (h *CelofanHandler) Exportar(c *gin.Context) {
	var q dto.ExportarQuery
	if !bindQuery(c, &q) {
		return
	}
	if q.Email != "" && h.porCorreo == nil {
		c.JSON(http.StatusServiceUnavailable, apierror.New("El envio por correo no esta disponible"))
		return
	}
	list, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		responderError(c, err, msgProductoNoEncontrado, msgSinProductos)
		return
	}
	a, err := h.export.Exportar(c.Request.Context(), service.TablaProductos(h.svc.Material(), list), c.Param("formato"))
	if err != nil {
		responderError(c, err, msgProductoNoEncontrado, msgSinProductos)
		return
	}
	entregarArchivo(c, a, q.Email, h.porCorreo)
}
