package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/minjaeyoo/shopcore-backend/api/controllers"
	cartcontrollers "github.com/minjaeyoo/shopcore-backend/api/controllers/cart"
	catalogcontrollers "github.com/minjaeyoo/shopcore-backend/api/controllers/catalog"
	eventcontrollers "github.com/minjaeyoo/shopcore-backend/api/controllers/events"
	"github.com/minjaeyoo/shopcore-backend/api/middleware"
	"github.com/minjaeyoo/shopcore-backend/internal/promo"
	"github.com/minjaeyoo/shopcore-backend/internal/shop"
	"github.com/minjaeyoo/shopcore-backend/pkg/config"
	"github.com/minjaeyoo/shopcore-backend/pkg/logger"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	shopService *shop.Service,
	promoHub *promo.Hub,
	registry *prometheus.Registry,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg))
	})

	if registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/catalog", catalogcontrollers.CatalogList(shopService, logg))
		r.Get("/stock/advisory", catalogcontrollers.StockAdvisory(shopService, logg))

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", cartcontrollers.CartFetch(shopService, logg))
			r.Get("/pricing", cartcontrollers.CartPricing(shopService, logg))
			r.Get("/loyalty", cartcontrollers.CartLoyalty(shopService, logg))
			r.Post("/items", cartcontrollers.CartAddItem(shopService, logg))
			r.Patch("/items/{productID}", cartcontrollers.CartChangeQuantity(shopService, logg))
			r.Delete("/items/{productID}", cartcontrollers.CartRemoveItem(shopService, logg))
			r.Post("/reset", cartcontrollers.CartReset(shopService, logg))
		})

		r.Get("/events", eventcontrollers.Stream(promoHub, logg))
	})

	return r
}
