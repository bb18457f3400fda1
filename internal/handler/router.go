package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"

	"yacht-charter/internal/domain/policy"
	"yacht-charter/internal/handler/api"
	"yacht-charter/internal/handler/middleware"
	"yacht-charter/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type RouterParams struct {
	fx.In

	Engine         *gin.Engine
	Config         config.Config
	Logger         *middleware.Logger
	Pool           *pgxpool.Pool `optional:"true"`
	AuthMiddleware *middleware.AuthMiddleware
	Yachts         *api.YachtHandler
	Pricing        *api.PricingHandler
	Bookings       *api.BookingHandler
	Reviews        *api.ReviewHandler
	Users          *api.UserHandler
	Messages       *api.MessageHandler
}

func NewRouter(p RouterParams) {
	setupMiddleware(p.Engine, p.Config, p.Logger)
	setupRoutes(p)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(p RouterParams) {
	engine := p.Engine
	engine.GET("/health", healthCheck(p.Pool))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	auth := p.AuthMiddleware.RequireAuth()
	authed := []gin.HandlerFunc{auth}

	apiGroup := engine.Group("/api")
	{
		yachts := apiGroup.Group("/yachts")
		addRoutes(yachts, []route{
			{Method: http.MethodGet, Path: "", Handler: p.Yachts.Search},
			{Method: http.MethodPost, Path: "", Handler: p.Yachts.Create,
				Mw: []gin.HandlerFunc{auth, p.AuthMiddleware.RequireCapability(policy.CapCreateYacht)}},
			{Method: http.MethodGet, Path: "/:id", Handler: p.Yachts.Get},
			{Method: http.MethodPut, Path: "/:id", Handler: p.Yachts.Update, Mw: authed},
			{Method: http.MethodDelete, Path: "/:id", Handler: p.Yachts.Delete, Mw: authed},

			{Method: http.MethodGet, Path: "/:id/pricing-periods", Handler: p.Pricing.ListPeriods},
			{Method: http.MethodPost, Path: "/:id/pricing-periods", Handler: p.Pricing.CreatePeriod, Mw: authed},
			{Method: http.MethodGet, Path: "/:id/quote", Handler: p.Pricing.Quote},
			{Method: http.MethodGet, Path: "/:id/calendar", Handler: p.Pricing.Calendar},

			{Method: http.MethodGet, Path: "/:id/reviews", Handler: p.Reviews.ListByYacht},
			{Method: http.MethodGet, Path: "/:id/rating-stats", Handler: p.Reviews.YachtRatingStats},
		})

		periods := apiGroup.Group("/pricing-periods")
		periods.Use(auth)
		{
			addRoutes(periods, []route{
				{Method: http.MethodPut, Path: "/:id", Handler: p.Pricing.UpdatePeriod},
				{Method: http.MethodDelete, Path: "/:id", Handler: p.Pricing.DeletePeriod},
			})
		}

		bookings := apiGroup.Group("/bookings")
		bookings.Use(auth)
		{
			addRoutes(bookings, []route{
				{Method: http.MethodPost, Path: "", Handler: p.Bookings.Create,
					Mw: []gin.HandlerFunc{p.AuthMiddleware.RequireCapability(policy.CapCreateBooking)}},
				{Method: http.MethodGet, Path: "", Handler: p.Bookings.List},
				{Method: http.MethodGet, Path: "/:id", Handler: p.Bookings.Get},
				{Method: http.MethodDelete, Path: "/:id", Handler: p.Bookings.Delete},
				{Method: http.MethodPost, Path: "/:id/confirm", Handler: p.Bookings.Confirm},
				{Method: http.MethodPost, Path: "/:id/reject", Handler: p.Bookings.Reject},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: p.Bookings.Cancel},
				{Method: http.MethodPost, Path: "/:id/complete", Handler: p.Bookings.Complete},
				{Method: http.MethodPost, Path: "/:id/review", Handler: p.Reviews.Create},
			})
		}

		reviews := apiGroup.Group("/reviews")
		addRoutes(reviews, []route{
			{Method: http.MethodGet, Path: "/:id", Handler: p.Reviews.Get},
			{Method: http.MethodPut, Path: "/:id", Handler: p.Reviews.Update, Mw: authed},
			{Method: http.MethodDelete, Path: "/:id", Handler: p.Reviews.Delete, Mw: authed},
		})

		conversations := apiGroup.Group("/conversations")
		conversations.Use(auth)
		{
			addRoutes(conversations, []route{
				{Method: http.MethodGet, Path: "", Handler: p.Messages.ListConversations},
				{Method: http.MethodPost, Path: "", Handler: p.Messages.Start},
				{Method: http.MethodGet, Path: "/:id", Handler: p.Messages.Show},
				{Method: http.MethodPost, Path: "/:id/messages", Handler: p.Messages.Send},
			})
		}

		messages := apiGroup.Group("/messages")
		messages.Use(auth)
		{
			addRoutes(messages, []route{
				{Method: http.MethodPost, Path: "/:id/read", Handler: p.Messages.MarkRead},
				{Method: http.MethodDelete, Path: "/:id", Handler: p.Messages.Delete},
			})
		}

		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/me", Handler: p.Users.Me, Mw: authed},
			{Method: http.MethodGet, Path: "/my/yachts", Handler: p.Yachts.ListMine, Mw: authed},
		})
	}
}

// @Summary Health check
// @Description Check if the service and its database are reachable
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /health [get]
func healthCheck(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if pool != nil {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()
			if err := pool.Ping(ctx); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{
					"status":  "unavailable",
					"message": "Database unreachable",
				})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Service is healthy",
		})
	}
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
