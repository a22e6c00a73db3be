package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	"dormstay/internal/domain/student"
	"dormstay/internal/handler/api"
	"dormstay/internal/handler/middleware"
	"dormstay/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, cfg config.Config, bookingHandler *api.BookingHandler, availabilityHandler *api.AvailabilityHandler, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, cfg, bookingHandler, availabilityHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.NewLogger(cfg.Log).LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, cfg config.Config, bookingHandler *api.BookingHandler, availabilityHandler *api.AvailabilityHandler, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	bookingLimiter := middleware.RateLimiter(rate.Limit(cfg.RateLimit.RequestsPerSecond), cfg.RateLimit.Burst)
	vacancyCache := middleware.Cache(cache.New(cfg.Cache.VacancyTTL, 5*time.Minute), cfg.Cache.VacancyTTL)

	apiGroup := engine.Group("/api")
	{
		reservations := apiGroup.Group("/reservations")
		reservations.Use(authMiddleware.RequireAuth())
		{
			addRoutes(reservations, []route{
				{Method: http.MethodPost, Path: "", Handler: bookingHandler.CreateReservation, Mw: []gin.HandlerFunc{bookingLimiter}},
				{Method: http.MethodGet, Path: "", Handler: bookingHandler.ListMyReservations},
				{Method: http.MethodGet, Path: "/:id", Handler: bookingHandler.GetReservation},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: bookingHandler.CancelReservation},
				{Method: http.MethodPost, Path: "/:id/approve", Handler: bookingHandler.ApproveReservation, Mw: []gin.HandlerFunc{authMiddleware.RequireRoleAtLeast(student.RoleStaff)}},
				{Method: http.MethodPost, Path: "/:id/complete", Handler: bookingHandler.CompleteReservation, Mw: []gin.HandlerFunc{authMiddleware.RequireRoleAtLeast(student.RoleStaff)}},
			})
		}

		residences := apiGroup.Group("/residences")
		residences.Use(authMiddleware.RequireAuth())
		{
			addRoutes(residences, []route{
				{Method: http.MethodGet, Path: "/:id/rooms/vacant", Handler: availabilityHandler.ListVacantRooms, Mw: []gin.HandlerFunc{vacancyCache}},
			})
		}
	}
}

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
