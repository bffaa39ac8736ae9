package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"stagelink/internal/handler/api"
	"stagelink/internal/handler/middleware"
	"stagelink/internal/pkg/config"
	"stagelink/internal/pkg/jwt"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	availabilityHandler *api.AvailabilityHandler,
	bookingHandler *api.BookingHandler,
	walletHandler *api.WalletHandler,
	wizardHandler *api.WizardHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, availabilityHandler, bookingHandler, walletHandler, wizardHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.NewLogger(cfg.Log).LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	availabilityHandler *api.AvailabilityHandler,
	bookingHandler *api.BookingHandler,
	walletHandler *api.WalletHandler,
	wizardHandler *api.WizardHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	v1 := engine.Group("/api/v1")
	{
		performers := v1.Group("/performers/:id")
		{
			addRoutes(performers, []route{
				{Method: http.MethodGet, Path: "/availability", Handler: availabilityHandler.GetAvailability},
				{Method: http.MethodGet, Path: "/availability/week", Handler: availabilityHandler.WeeklyOverview},
				{Method: http.MethodGet, Path: "/slots", Handler: availabilityHandler.GetSlots},
			})

			performerOnly := performers.Group("")
			performerOnly.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRole(jwt.RolePerformer))
			addRoutes(performerOnly, []route{
				{Method: http.MethodPut, Path: "/availability", Handler: availabilityHandler.SetAvailability},
				{Method: http.MethodPost, Path: "/availability/range", Handler: availabilityHandler.BulkSetRange},
				{Method: http.MethodGet, Path: "/booking-requests", Handler: bookingHandler.ListBookingRequests},
				{Method: http.MethodGet, Path: "/wallet", Handler: walletHandler.GetWallet},
				{Method: http.MethodPost, Path: "/wallet/transactions", Handler: walletHandler.ApplyTransaction},
			})
		}

		bookings := v1.Group("/booking-requests")
		bookings.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRole(jwt.RolePerformer))
		{
			addRoutes(bookings, []route{
				{Method: http.MethodPost, Path: "/:id/respond", Handler: bookingHandler.Respond},
			})
		}

		wizard := v1.Group("/wizard/sessions")
		wizard.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRole(jwt.RoleVenue))
		{
			addRoutes(wizard, []route{
				{Method: http.MethodPost, Path: "", Handler: wizardHandler.Start},
				{Method: http.MethodGet, Path: "/:id", Handler: wizardHandler.Get},
				{Method: http.MethodDelete, Path: "/:id", Handler: wizardHandler.Cancel},
				{Method: http.MethodPost, Path: "/:id/date", Handler: wizardHandler.SelectDate},
				{Method: http.MethodPost, Path: "/:id/time", Handler: wizardHandler.SelectTime},
				{Method: http.MethodPost, Path: "/:id/pricing", Handler: wizardHandler.SelectTier},
				{Method: http.MethodPost, Path: "/:id/details", Handler: wizardHandler.EnterDetails},
				{Method: http.MethodPost, Path: "/:id/back", Handler: wizardHandler.Back},
				{Method: http.MethodPost, Path: "/:id/confirm", Handler: wizardHandler.Confirm},
			})
		}
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
