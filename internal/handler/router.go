package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"plateshare-server/internal/handler/api"
	"plateshare-server/internal/handler/middleware"
	"plateshare-server/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Listing     *api.ListingHandler
	FoodRequest *api.FoodRequestHandler
	Health      *api.HealthHandler
}

type Middlewares struct {
	Logger  *middleware.Logger
	Metrics *middleware.Metrics
	Auth    *middleware.AuthMiddleware
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, mw Middlewares) {
	setupMiddleware(engine, cfg, mw)
	setupRoutes(engine, h, mw)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, mw Middlewares) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(mw.Logger.LoggingMiddleware())
	engine.Use(mw.Metrics.Middleware())
	engine.Use(middleware.ErrorHandler())
	engine.NoRoute(middleware.NotFound())
}

func setupRoutes(engine *gin.Engine, h Handlers, mw Middlewares) {
	engine.GET("/metrics", mw.Metrics.Handler())

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	root := engine.Group("")
	addRoutes(root, []route{
		{Method: http.MethodGet, Path: "/", Handler: h.Health.Root},
		{Method: http.MethodGet, Path: "/health", Handler: h.Health.Health},
	})

	addRoutes(root, []route{
		{Method: http.MethodGet, Path: "/foods", Handler: h.Listing.List},
		{Method: http.MethodGet, Path: "/foods-manage", Handler: h.Listing.ListByDonor},
		{Method: http.MethodGet, Path: "/food/:id", Handler: h.Listing.Get},
		{Method: http.MethodGet, Path: "/featured-foods", Handler: h.Listing.Featured},
		{Method: http.MethodPost, Path: "/add-food", Handler: h.Listing.Create},
		{Method: http.MethodPatch, Path: "/foods/:id", Handler: h.Listing.Update},
		{Method: http.MethodDelete, Path: "/foods/:id", Handler: h.Listing.Delete},
	})

	addRoutes(root, []route{
		{Method: http.MethodGet, Path: "/food-requests/:foodId", Handler: h.FoodRequest.ListForListing, Mw: []gin.HandlerFunc{mw.Auth.ResolveCaller()}},
		{Method: http.MethodPost, Path: "/foodRequests", Handler: h.FoodRequest.Create},
		{Method: http.MethodPatch, Path: "/food-requests/accept/:id", Handler: h.FoodRequest.Accept},
		{Method: http.MethodPatch, Path: "/food-requests/reject/:id", Handler: h.FoodRequest.Reject},
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
