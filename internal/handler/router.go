package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"shootflow/internal/handler/api"
	"shootflow/internal/handler/middleware"
	"shootflow/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, cfg config.Config, requestHandler *api.RequestHandler) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, requestHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, requestHandler *api.RequestHandler) {
	engine.GET("/health", healthCheck)

	apiGroup := engine.Group("/api")
	{
		requests := apiGroup.Group("/requests")
		{
			addRoutes(requests, []route{
				{Method: http.MethodPost, Path: "", Handler: requestHandler.CreateRequest},
				{Method: http.MethodGet, Path: "", Handler: requestHandler.ListRequests},
				{Method: http.MethodGet, Path: "/:id", Handler: requestHandler.GetRequest},
				{Method: http.MethodGet, Path: "/:id/group", Handler: requestHandler.GetGroup},
				{Method: http.MethodPost, Path: "/:id/send-to-vendor", Handler: requestHandler.SendToVendor},
				{Method: http.MethodPost, Path: "/:id/quote", Handler: requestHandler.SubmitQuote},
				{Method: http.MethodPost, Path: "/:id/approve", Handler: requestHandler.Approve},
				{Method: http.MethodPost, Path: "/:id/reject", Handler: requestHandler.Reject},
				{Method: http.MethodPost, Path: "/:id/invoice", Handler: requestHandler.UploadInvoice},
				{Method: http.MethodPost, Path: "/:id/paid", Handler: requestHandler.MarkPaid},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: requestHandler.Cancel},
				{Method: http.MethodPost, Path: "/:id/pricing", Handler: requestHandler.AmendPricing},
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
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, r.Handler)
		case http.MethodPost:
			g.POST(r.Path, r.Handler)
		case http.MethodPut:
			g.PUT(r.Path, r.Handler)
		case http.MethodDelete:
			g.DELETE(r.Path, r.Handler)
		default:
			g.Any(r.Path, r.Handler)
		}
	}
}
