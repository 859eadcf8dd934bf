package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/aurelioguzman/tendermarket-backend/api/controllers"
	analyticscontrollers "github.com/aurelioguzman/tendermarket-backend/api/controllers/analytics"
	"github.com/aurelioguzman/tendermarket-backend/api/middleware"
	"github.com/aurelioguzman/tendermarket-backend/internal/analytics"
	"github.com/aurelioguzman/tendermarket-backend/pkg/config"
	"github.com/aurelioguzman/tendermarket-backend/pkg/enums"
	"github.com/aurelioguzman/tendermarket-backend/pkg/logger"
)

// NewRouter assembles the HTTP surface: liveness and readiness probes,
// Prometheus metrics, a public ping, and the admin-only analytics API.
func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbPinger controllers.Pinger,
	redisPinger controllers.Pinger,
	analyticsService analytics.Service,
	snapshotReader analyticscontrollers.SnapshotReader,
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
		r.Get("/ready", controllers.HealthReady(cfg, logg, dbPinger, redisPinger))
	})

	if registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	}

	r.Route("/api/public", func(r chi.Router) {
		r.Get("/ping", controllers.PublicPing())
	})

	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, logg))

		r.Get("/ping", controllers.PrivatePing())

		r.Route("/v1/analytics", func(r chi.Router) {
			r.Use(middleware.RequireRoles(logg, enums.UserRoleAdmin, enums.UserRoleAdminManager))

			r.Get("/users", analyticscontrollers.UserAnalytics(analyticsService, logg))
			r.Get("/sales", analyticscontrollers.SalesAnalytics(analyticsService, logg))
			r.Get("/marketplace", analyticscontrollers.MarketplaceAnalytics(analyticsService, logg))
			r.Get("/predictive", analyticscontrollers.PredictiveAnalytics(analyticsService, logg))
			r.Get("/trends", analyticscontrollers.MarketTrends(analyticsService, logg))
			r.Get("/sellers", analyticscontrollers.SellerPerformance(analyticsService, logg))
			r.Get("/revenue-insights", analyticscontrollers.RevenueInsights(analyticsService, logg))
			r.Get("/dashboard", analyticscontrollers.UnifiedDashboard(analyticsService, logg))
			r.Get("/dashboard/snapshot", analyticscontrollers.DashboardSnapshot(snapshotReader, logg))
			r.Get("/health", analyticscontrollers.ServiceHealth(analyticsService))
		})
	})

	return r
}
