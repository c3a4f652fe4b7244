package handlers

import (
	"sauna_api/internal/logger"
	"sauna_api/internal/mw"
	"sauna_api/internal/service"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	_ "sauna_api/docs"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Options tunes the router. The zero value serves every route without auth,
// without rate limiting, and with CORS open to all origins.
type Options struct {
	AuthEnabled    bool
	SignUpDisabled bool // sign-in keeps working
	AllowedOrigins []string
	RateLimitPerS  float64
	RateLimitBurst int
}

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger
	opts     Options
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, log *logger.Logger, opts Options) *Handler {
	if log == nil {
		log = logger.NewNop()
	}
	if len(opts.AllowedOrigins) == 0 {
		opts.AllowedOrigins = []string{"*"}
	}
	return &Handler{services: services, log: log, opts: opts}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.CustomRecovery(h.recovery), h.requestLogger, h.cors)
	if h.opts.RateLimitPerS > 0 {
		router.Use(mw.RateLimiter(rate.Limit(h.opts.RateLimitPerS), h.opts.RateLimitBurst))
	}

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", h.health)

	h.registerAuthRoutes(router)
	h.registerSaunaRoutes(router)

	return router
}

func (h *Handler) registerAuthRoutes(r *gin.Engine) {
	auth := r.Group("/auth")
	{
		auth.POST("/sign-up", h.signUp)
		auth.POST("/sign-in", h.signIn)
	}
}

func (h *Handler) registerSaunaRoutes(r *gin.Engine) {
	sauna := r.Group("/sauna")
	{
		sauna.GET("/ping", h.ping)

		sauna.GET("/:sauna_id/status", h.getStatus)
		sauna.GET("/:sauna_id/status/ws", h.wsStatus)
		sauna.GET("/:sauna_id/schedules", h.getSchedules)
		sauna.GET("/:sauna_id/programs", h.getPrograms)
		sauna.GET("/:sauna_id/events", h.getEvents)
	}

	write := sauna.Group("")
	if h.opts.AuthEnabled {
		write.Use(h.userIdMiddleware)
	}
	{
		write.PUT("/:sauna_id/status", h.updateStatus)
		write.POST("/:sauna_id/schedules", h.addSchedules)
		write.DELETE("/:sauna_id/schedules/:schedule_id", h.deleteSchedule)
	}
}
