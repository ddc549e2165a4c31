package handlers

import (
	"decarb_pathways/internal/logger"
	"decarb_pathways/internal/service"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, log *logger.Logger) *Handler {
	return &Handler{services: services, log: log}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health endpoint
	router.GET("/health", h.health)

	// Auth endpoints
	h.registerAuthRoutes(router)

	// Versioned API endpoints (protected)
	h.registerAPIRoutes(router)

	// Minimal WebSocket connection (HTTP upgrade) — same port
	router.GET("/ws", h.wsConnect)

	return router
}

func (h *Handler) registerAuthRoutes(r *gin.Engine) {
	auth := r.Group("/auth")
	{
		auth.POST("/sign-up", h.signUp)
		auth.POST("/sign-in", h.signIn)
	}
}

func (h *Handler) registerAPIRoutes(r *gin.Engine) {
	api := r.Group("/api/v1", h.userIdMiddleware)
	{
		h.registerProfileRoutes(api)
		h.registerLibraryRoutes(api)
		h.registerEmissionsRoutes(api)
		h.registerRunRoutes(api)
		h.registerLogRoutes(api)
	}
}

func (h *Handler) registerProfileRoutes(api *gin.RouterGroup) {
	profiles := api.Group("/profiles")
	{
		profiles.POST("/", h.saveProfile)
		profiles.GET("/", h.listProfiles)
		profiles.GET("/:id", h.getProfile)
		profiles.DELETE("/:id", h.deleteProfile)
	}
}

func (h *Handler) registerLibraryRoutes(api *gin.RouterGroup) {
	library := api.Group("/library")
	{
		equipment := library.Group("/equipment")
		{
			equipment.POST("/", h.saveEquipment)
			equipment.GET("/", h.listEquipment)
			equipment.GET("/:id", h.getEquipment)
			equipment.DELETE("/:id", h.deleteEquipment)
		}
		scenarios := library.Group("/scenarios")
		{
			scenarios.POST("/", h.saveScenario)
			scenarios.GET("/", h.listScenarios)
			scenarios.GET("/:id", h.getScenario)
			scenarios.DELETE("/:id", h.deleteScenario)
		}
	}
}

func (h *Handler) registerEmissionsRoutes(api *gin.RouterGroup) {
	emissions := api.Group("/emissions")
	{
		emissions.POST("/rates", h.importRates)
		emissions.GET("/rates", h.getRates)

		configs := emissions.Group("/configs")
		{
			configs.POST("/", h.saveEmissionsConfig)
			configs.GET("/", h.listEmissionsConfigs)
			configs.GET("/:id", h.getEmissionsConfig)
		}
	}
}

func (h *Handler) registerRunRoutes(api *gin.RouterGroup) {
	runs := api.Group("/runs")
	{
		runs.POST("/", h.executeRun)
		runs.GET("/", h.listRuns)
		runs.GET("/latest", h.latestRun)
		runs.GET("/:id", h.getRun)
	}
}

func (h *Handler) registerLogRoutes(api *gin.RouterGroup) {
	logs := api.Group("/logs")
	{
		logs.GET("/", h.getLogs)
	}
}
