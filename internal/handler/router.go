package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"blane-checkout/internal/handler/api"
	"blane-checkout/internal/handler/middleware"
	"blane-checkout/internal/pkg/config"
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
	checkoutHandler *api.CheckoutHandler,
	transactionHandler *api.TransactionHandler,
	paymentHandler *api.PaymentHandler,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, availabilityHandler, checkoutHandler, transactionHandler, paymentHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	availabilityHandler *api.AvailabilityHandler,
	checkoutHandler *api.CheckoutHandler,
	transactionHandler *api.TransactionHandler,
	paymentHandler *api.PaymentHandler,
) {
	engine.GET("/health", healthCheck)

	// Gateway re-entry page; served outside /api because the browser
	// navigates here directly.
	engine.GET("/pay/:kind/:id", paymentHandler.Resume)

	apiGroup := engine.Group("/api")
	{
		deals := apiGroup.Group("/deals/:slug")
		{
			addRoutes(deals, []route{
				{Method: http.MethodGet, Path: "/availability", Handler: availabilityHandler.DaySlots},
				{Method: http.MethodPost, Path: "/quote", Handler: checkoutHandler.Quote},
				{Method: http.MethodPost, Path: "/checkout", Handler: checkoutHandler.Checkout},
				{Method: http.MethodGet, Path: "/transaction", Handler: transactionHandler.Current},
				{Method: http.MethodPost, Path: "/transaction/reset", Handler: transactionHandler.Reset},
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
