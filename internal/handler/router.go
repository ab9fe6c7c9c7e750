package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"groundio/internal/domain/user"
	"groundio/internal/handler/api"
	"groundio/internal/handler/middleware"
	"groundio/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth     *api.AuthHandler
	Venue    *api.VenueHandler
	Booking  *api.BookingHandler
	Merchant *api.MerchantHandler
	Profile  *api.ProfileHandler
	Review   *api.ReviewHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/signup", Handler: h.Auth.Signup},
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
				{Method: http.MethodPost, Path: "/refresh", Handler: h.Auth.Refresh},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
				{Method: http.MethodGet, Path: "/events", Handler: h.Auth.Events},
			})
		}

		venues := apiGroup.Group("/venues")
		{
			addRoutes(venues, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Venue.List},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Venue.Get},
				{Method: http.MethodGet, Path: "/:id/slots", Handler: h.Venue.Slots},
				{Method: http.MethodGet, Path: "/:id/reviews", Handler: h.Venue.Reviews},
			})
		}

		bookings := apiGroup.Group("/bookings")
		bookings.Use(authMiddleware.RequireAuth())
		{
			addRoutes(bookings, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Booking.Submit, Mw: []gin.HandlerFunc{authMiddleware.RequireRole(user.RoleCustomer)}},
				{Method: http.MethodGet, Path: "", Handler: h.Booking.List},
				{Method: http.MethodGet, Path: "/stream", Handler: h.Booking.Stream},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Booking.Get},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: h.Booking.Cancel},
			})
		}

		reviews := apiGroup.Group("/reviews")
		reviews.Use(authMiddleware.RequireAuth())
		{
			addRoutes(reviews, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Review.Create},
			})
		}

		profile := apiGroup.Group("/profile")
		profile.Use(authMiddleware.RequireAuth())
		{
			addRoutes(profile, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Profile.Get},
				{Method: http.MethodPut, Path: "", Handler: h.Profile.Update},
				{Method: http.MethodPut, Path: "/merchant", Handler: h.Profile.UpdateMerchant, Mw: []gin.HandlerFunc{authMiddleware.RequireRole(user.RoleMerchant)}},
			})
		}

		merchant := apiGroup.Group("/merchant")
		merchant.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRole(user.RoleMerchant))
		{
			addRoutes(merchant, []route{
				{Method: http.MethodGet, Path: "/venues", Handler: h.Merchant.ListVenues},
				{Method: http.MethodPost, Path: "/venues", Handler: h.Merchant.CreateVenue},
				{Method: http.MethodPatch, Path: "/venues/:id", Handler: h.Merchant.UpdateVenue},
				{Method: http.MethodDelete, Path: "/venues/:id", Handler: h.Merchant.DeleteVenue},
				{Method: http.MethodPost, Path: "/venues/:id/activate", Handler: h.Merchant.ActivateVenue},
				{Method: http.MethodPost, Path: "/venues/:id/deactivate", Handler: h.Merchant.DeactivateVenue},
				{Method: http.MethodGet, Path: "/venues/:id/bookings", Handler: h.Merchant.VenueBookings},
				{Method: http.MethodGet, Path: "/venues/:id/bookings/stream", Handler: h.Merchant.VenueBookingsStream},
				{Method: http.MethodPost, Path: "/bookings/:id/confirm", Handler: h.Booking.Confirm},
				{Method: http.MethodPost, Path: "/bookings/:id/complete", Handler: h.Booking.Complete},
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
