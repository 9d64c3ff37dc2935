package router

import (
	"time"

	"github.com/Kevin2407/gestion-proveedores/internal/config"
	"github.com/Kevin2407/gestion-proveedores/internal/handler"
	"github.com/Kevin2407/gestion-proveedores/internal/middleware"
	"github.com/Kevin2407/gestion-proveedores/internal/repository"
	"github.com/Kevin2407/gestion-proveedores/internal/service"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(cfg.RateLimitPerMinute, time.Minute))

	// ── Repositories ─────────────────────────────────────────────────────────
	proveedorRepo := repository.NewProveedorRepository(db)
	ordenRepo := repository.NewOrdenRepository(db)
	contratoRepo := repository.NewContratoRepository(db)
	productoRepo := repository.NewProductoRepository(db)
	tecnicoRepo := repository.NewTecnicoRepository(db)
	calificacionRepo := repository.NewCalificacionRepository(db)
	fallaRepo := repository.NewFallaRepository(db)
	tipoEquipoRepo := repository.NewTipoEquipoRepository(db)
	equipoRepo := repository.NewEquipoRepository(db)
	reporteRepo := repository.NewReporteRepository(db, fallaRepo)

	// ── Services ─────────────────────────────────────────────────────────────
	proveedorSvc := service.NewProveedorService(proveedorRepo, fallaRepo)
	ordenSvc := service.NewOrdenService(ordenRepo, proveedorRepo)
	contratoSvc := service.NewContratoService(contratoRepo, proveedorRepo)
	productoSvc := service.NewProductoService(productoRepo)
	tecnicoSvc := service.NewTecnicoService(tecnicoRepo)
	calificacionSvc := service.NewCalificacionService(calificacionRepo, proveedorRepo)
	fallaSvc := service.NewFallaService(fallaRepo)
	tipoEquipoSvc := service.NewTipoEquipoService(tipoEquipoRepo)
	equipoSvc := service.NewEquipoService(equipoRepo, tipoEquipoRepo)
	reporteSvc := service.NewReporteService(reporteRepo, rdb, time.Duration(cfg.ReportCacheTTLSec)*time.Second)

	// ── Handlers ─────────────────────────────────────────────────────────────
	proveedoresH := handler.NewProveedoresHandler(proveedorSvc)
	ordenesH := handler.NewOrdenesHandler(ordenSvc)
	contratosH := handler.NewContratosHandler(contratoSvc)
	productosH := handler.NewProductosHandler(productoSvc)
	tecnicosH := handler.NewTecnicosHandler(tecnicoSvc)
	calificacionesH := handler.NewCalificacionesHandler(calificacionSvc)
	fallasH := handler.NewFallasHandler(fallaSvc)
	equiposH := handler.NewEquiposHandler(equipoSvc)
	tiposEquipoH := handler.NewTiposEquipoHandler(tipoEquipoSvc)
	reportesH := handler.NewReportesHandler(reporteSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	r.GET("/health", handler.Health(db, rdb))

	api := r.Group("/api")
	{
		providers := api.Group("/providers")
		{
			providers.GET("", proveedoresH.Listar)
			providers.POST("", proveedoresH.Crear)
			providers.PUT("", proveedoresH.Actualizar)
			providers.DELETE("", proveedoresH.Eliminar)
		}

		orders := api.Group("/orders")
		{
			orders.GET("", ordenesH.Listar)
			orders.POST("", ordenesH.Crear)
			orders.PUT("", ordenesH.Actualizar)
			orders.DELETE("", ordenesH.Eliminar)
		}

		contracts := api.Group("/contracts")
		{
			contracts.GET("", contratosH.Listar)
			contracts.POST("", contratosH.Crear)
			contracts.PUT("", contratosH.Actualizar)
			contracts.DELETE("", contratosH.Eliminar)
		}

		products := api.Group("/products")
		{
			products.GET("", productosH.Listar)
			products.POST("", productosH.Crear)
			products.PUT("", productosH.Actualizar)
			products.DELETE("", productosH.Eliminar)
		}

		technicians := api.Group("/technicians")
		{
			technicians.GET("", tecnicosH.Listar)
			technicians.POST("", tecnicosH.Crear)
			technicians.PUT("", tecnicosH.Actualizar)
			technicians.DELETE("", tecnicosH.Eliminar)
		}
		api.GET("/specialties", tecnicosH.ListarEspecialidades)

		ratings := api.Group("/ratings")
		{
			ratings.GET("", calificacionesH.Listar)
			ratings.POST("", calificacionesH.Crear)
			ratings.PUT("", calificacionesH.Actualizar)
			ratings.DELETE("", calificacionesH.Eliminar)
		}

		failures := api.Group("/supplier-failures")
		{
			failures.GET("", fallasH.Listar)
			failures.POST("", fallasH.Crear)
			failures.PUT("", fallasH.Actualizar)
			failures.DELETE("", fallasH.Eliminar)
		}

		equipment := api.Group("/equipment")
		{
			equipment.GET("", equiposH.Listar)
			equipment.POST("", equiposH.Crear)
			equipment.PUT("", equiposH.Actualizar)
			equipment.DELETE("", equiposH.Eliminar)
		}

		equipmentTypes := api.Group("/equipment-types")
		{
			equipmentTypes.GET("", tiposEquipoH.Listar)
			equipmentTypes.POST("", tiposEquipoH.Crear)
			equipmentTypes.PUT("", tiposEquipoH.Actualizar)
			equipmentTypes.DELETE("", tiposEquipoH.Eliminar)
		}

		api.GET("/reports", reportesH.Dashboard)
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
