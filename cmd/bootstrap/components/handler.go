package components

import (
	"plateshare-server/internal/handler"
	"plateshare-server/internal/handler/api"
	"plateshare-server/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewListingHandler,
		api.NewFoodRequestHandler,
		api.NewHealthHandler,
		middleware.NewAuthMiddleware,
		func(l *api.ListingHandler, fr *api.FoodRequestHandler, h *api.HealthHandler) handler.Handlers {
			return handler.Handlers{Listing: l, FoodRequest: fr, Health: h}
		},
		func(l *middleware.Logger, m *middleware.Metrics, a *middleware.AuthMiddleware) handler.Middlewares {
			return handler.Middlewares{Logger: l, Metrics: m, Auth: a}
		},
	),
	fx.Invoke(handler.NewRouter),
)
