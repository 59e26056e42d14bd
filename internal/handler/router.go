package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"hotel-block-service/internal/handler/api"
	"hotel-block-service/internal/handler/middleware"
	"hotel-block-service/internal/pkg/config"
	"hotel-block-service/internal/pkg/jwt"
	"hotel-block-service/internal/pkg/metrics"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	HotelReservations *api.HotelReservationHandler
	Orders            *api.OrderHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, m *metrics.Registry, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg, logger, m)
	setupRoutes(engine, m, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, m *metrics.Registry) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(m.Middleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, m *metrics.Registry, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(m.Handler()))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	manager := []gin.HandlerFunc{authMiddleware.RequireRole(jwt.RoleHotelManager)}

	apiGroup := engine.Group("/api")
	apiGroup.Use(authMiddleware.RequireAuth())
	{
		reservations := apiGroup.Group("/hotel-reservations")
		addRoutes(reservations, []route{
			{Method: http.MethodPost, Path: "", Handler: h.HotelReservations.Create, Mw: manager},
			{Method: http.MethodGet, Path: "", Handler: h.HotelReservations.List},
			{Method: http.MethodGet, Path: "/exists", Handler: h.HotelReservations.Exists},
			{Method: http.MethodGet, Path: "/:id", Handler: h.HotelReservations.Get},
			{Method: http.MethodPatch, Path: "/:id", Handler: h.HotelReservations.Update, Mw: manager},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.HotelReservations.Delete, Mw: manager},
			{Method: http.MethodGet, Path: "/:id/history", Handler: h.HotelReservations.History},
		})

		orders := apiGroup.Group("/orders")
		orders.Use(manager...)
		addRoutes(orders, []route{
			{Method: http.MethodPut, Path: "/:id/hotel-reservation-code", Handler: h.Orders.AssignCode},
			{Method: http.MethodPost, Path: "/:id/line-items/adjust", Handler: h.Orders.AdjustLineItems},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
