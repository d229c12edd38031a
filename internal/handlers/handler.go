package handlers

import (
	"status_monitor/internal/logger"
	"status_monitor/internal/service"
	"status_monitor/internal/stream"

	_ "status_monitor/docs"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// DefaultWebhookPath is where Statuspage deliveries are posted.
const DefaultWebhookPath = "/webhooks/openai-status"

// Handler wires HTTP layer to services, the live stream and logging.
type Handler struct {
	services    *service.Service
	hub         *stream.Hub
	log         *logger.Logger
	webhookPath string
}

// NewHandler constructs a new HTTP handler with dependencies. hub may be nil.
func NewHandler(services *service.Service, hub *stream.Hub, log *logger.Logger, webhookPath string) *Handler {
	if webhookPath == "" {
		webhookPath = DefaultWebhookPath
	}
	return &Handler{services: services, hub: hub, log: log, webhookPath: webhookPath}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	router.GET("/", h.root)
	router.GET("/health", h.health)

	router.POST(h.webhookPath, h.receiveWebhook)

	h.registerAuthRoutes(router)
	h.registerAPIRoutes(router)

	router.GET("/ws", h.wsConnect)

	return router
}

func (h *Handler) registerAuthRoutes(r *gin.Engine) {
	auth := r.Group("/auth")
	{
		auth.POST("/sign-in", h.signIn)
	}
}

func (h *Handler) registerAPIRoutes(r *gin.Engine) {
	api := r.Group("/api/v1", h.operatorMiddleware)
	{
		h.registerIncidentRoutes(api)
	}
}

func (h *Handler) registerIncidentRoutes(api *gin.RouterGroup) {
	incidents := api.Group("/incidents")
	{
		incidents.GET("/", h.listIncidents)
	}
}
