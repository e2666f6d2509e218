package router

import (
	"context"
	"time"

	"github.com/EfrainEsquivar/GrupoKZ-copiaV1/internal/config"
	"github.com/EfrainEsquivar/GrupoKZ-copiaV1/internal/handler"
	"github.com/EfrainEsquivar/GrupoKZ-copiaV1/internal/infra"
	"github.com/EfrainEsquivar/GrupoKZ-copiaV1/internal/metrics"
	"github.com/EfrainEsquivar/GrupoKZ-copiaV1/internal/middleware"
	"github.com/EfrainEsquivar/GrupoKZ-copiaV1/internal/repository"
	"github.com/EfrainEsquivar/GrupoKZ-copiaV1/internal/service"
	"github.com/EfrainEsquivar/GrupoKZ-copiaV1/internal/worker"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Deps are the infrastructure pieces built in main.
type Deps struct {
	DB   *gorm.DB
	RDB  *redis.Client
	Disk infra.Disk
	// SMTPBreaker is reported by /health; nil hides it.
	SMTPBreaker *infra.CircuitBreaker
}

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
// ctx bounds background housekeeping (rate limiter purge).
func New(ctx context.Context, cfg *config.Config, deps Deps) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	limiter := middleware.NewRateLimiter(cfg.RateLimit, time.Minute)
	go limiter.RunPurge(ctx.Done(), 5*time.Minute)

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(metrics.Middleware())
	r.Use(middleware.CORS(cfg.CORSOrigins))
	r.Use(middleware.ErrorHandler())
	r.Use(limiter.Middleware())

	// ── Repositories ─────────────────────────────────────────────────────────
	productoRepo := repository.NewProductoRepository(deps.DB)
	cuentaRepo := repository.NewCuentaRepository(deps.DB)
	gastoRepo := repository.NewGastoRepository(deps.DB)

	// ── Services ─────────────────────────────────────────────────────────────
	productoSvc := service.NewProductoService(productoRepo, cfg.Material)
	cuentaSvc := service.NewCuentaService(cuentaRepo, gastoRepo)
	exportSvc := service.NewExportService(deps.Disk)

	// Share-by-email goes through the worker queue; without SMTP it is off.
	var porCorreo func(email string) service.Compartidor
	if cfg.SMTPHost != "" {
		dispatcher := worker.NewDispatcher(deps.RDB)
		porCorreo = func(email string) service.Compartidor {
			return worker.NewCorreoCompartidor(dispatcher, email)
		}
	}

	// ── Handlers ─────────────────────────────────────────────────────────────
	celofanH := handler.NewCelofanHandler(productoSvc, exportSvc, porCorreo)
	cuentasH := handler.NewCuentasHandler(cuentaSvc, exportSvc, porCorreo)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(deps.DB, deps.RDB, deps.SMTPBreaker))
	r.GET("/metrics", metrics.Handler())

	// Protected routes
	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	v1 := r.Group("/v1", jwtMW)
	{
		celofan := v1.Group("/celofan")
		{
			celofan.GET("", celofanH.Listar)
			celofan.POST("", celofanH.Crear)
			celofan.PUT("/:id", celofanH.Actualizar)
			celofan.DELETE("/:id", celofanH.Eliminar)
			celofan.GET("/exportar/:formato", celofanH.Exportar)
		}

		cuentas := v1.Group("/cuentas-por-pagar")
		{
			cuentas.GET("", cuentasH.Listar)
			cuentas.POST("", cuentasH.Crear)
			cuentas.PUT("/:id", cuentasH.Actualizar)
			cuentas.DELETE("/:id", cuentasH.Eliminar)
			cuentas.GET("/exportar/:formato", cuentasH.Exportar)
		}

		v1.GET("/gastos", cuentasH.Gastos)
	}

	// Exported files on the local disk are served behind the same auth.
	if cfg.ExportDisk == "" || cfg.ExportDisk == "local" {
		r.Group("/exportaciones", jwtMW).Static("/", cfg.ExportLocalPath)
	}

	return r
}
