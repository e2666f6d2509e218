package handler

import (
	"errors"
	"net/http"
	"reflect"
	"strconv"

	"github.com/EfrainEsquivar/GrupoKZ-copiaV1/internal/apierror"
	"github.com/EfrainEsquivar/GrupoKZ-copiaV1/internal/dto"
	"github.com/EfrainEsquivar/GrupoKZ-copiaV1/internal/middleware"
	"github.com/EfrainEsquivar/GrupoKZ-copiaV1/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

var validate = validator.New()

func init() {
	// Register decimal.Decimal as a numeric type so that validator tags like
	// min=0, gt=0, required work without panicking ("Bad field type decimal.Decimal").
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if v, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := v.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
}

// bindAndValidate binds JSON body and runs go-playground/validator tags.
// Returns false and writes the error response if validation fails;
// the caller should return immediately without writing another response.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("JSON invalido: "+err.Error()))
		return false
	}
	return validar(c, req)
}

// bindQuery is bindAndValidate for query strings.
func bindQuery(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindQuery(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Parametros invalidos: "+err.Error()))
		return false
	}
	return validar(c, req)
}

func validar(c *gin.Context, req interface{}) bool {
	if err := validate.Struct(req); err != nil {
		fields := make(map[string]string)
		for _, fe := range err.(validator.ValidationErrors) {
			fields[fe.Field()] = fe.Tag()
		}
		c.JSON(http.StatusUnprocessableEntity, apierror.NewValidation(fields))
		return false
	}
	return true
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return 0, false
	}
	return id, true
}

// confirmado reports whether a destructive request carries ?confirmar=true.
// Otherwise it answers 428 with the prompt the screens show.
func confirmado(c *gin.Context, titulo, mensaje string) bool {
	if ok, _ := strconv.ParseBool(c.Query("confirmar")); ok {
		return true
	}
	c.JSON(http.StatusPreconditionRequired, apierror.NewConfirmation(titulo, mensaje))
	return false
}

// responderError maps service errors to the API envelope. noEncontrado is the
// 404 message for the entity; sinDatos the one for an empty export.
func responderError(c *gin.Context, err error, noEncontrado, sinDatos string) {
	if v, ok := service.AsValidacion(err); ok {
		c.JSON(http.StatusUnprocessableEntity, apierror.NewValidationMsg(v.Titulo, v.Mensaje, v.Campos))
		return
	}
	switch {
	case errors.Is(err, service.ErrNoEncontrado):
		c.JSON(http.StatusNotFound, apierror.New(noEncontrado))
	case errors.Is(err, service.ErrSinDatos):
		c.JSON(http.StatusNotFound, apierror.New(sinDatos))
	case errors.Is(err, service.ErrFormatoInvalido):
		c.JSON(http.StatusBadRequest, apierror.New("Formato invalido: use xlsx, pdf o html"))
	default:
		log.Error().
			Err(err).
			Str("request_id", c.GetString(middleware.RequestIDKey)).
			Str("path", c.FullPath()).
			Msg("store error")
		c.JSON(http.StatusInternalServerError, apierror.New("Error interno del servidor"))
	}
}

// entregarArchivo sends the export as a download, or queues it by mail when
// email is set.
func entregarArchivo(c *gin.Context, a *service.Archivo, email string, porCorreo func(email string) service.Compartidor) {
	if email != "" && porCorreo != nil {
		if err := porCorreo(email).Compartir(c.Request.Context(), a); err != nil {
			responderError(c, err, "", "")
			return
		}
		c.JSON(http.StatusAccepted, dto.ExportacionEncoladaResponse{Archivo: a.Nombre, URL: a.URL, Email: email})
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+a.Nombre+`"`)
	c.Data(http.StatusOK, a.TipoMIME, a.Contenido)
}
