package analytics

import (
	"net/http"

	"github.com/aurelioguzman/tendermarket-backend/api/responses"
	"github.com/aurelioguzman/tendermarket-backend/internal/analytics"
	"github.com/aurelioguzman/tendermarket-backend/pkg/logger"
)

// UserAnalytics serves GET /api/v1/analytics/users.
func UserAnalytics(service analytics.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		days, err := parseWindowDays(r)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		report, err := service.UserAnalytics(ctx, days)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, report)
	}
}

// SalesAnalytics serves GET /api/v1/analytics/sales.
func SalesAnalytics(service analytics.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		days, err := parseWindowDays(r)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		report, err := service.SalesAnalytics(ctx, days)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, report)
	}
}

// MarketplaceAnalytics serves GET /api/v1/analytics/marketplace.
func MarketplaceAnalytics(service analytics.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		days, err := parseWindowDays(r)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		report, err := service.MarketplaceAnalytics(ctx, days)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, report)
	}
}

// PredictiveAnalytics serves GET /api/v1/analytics/predictive.
func PredictiveAnalytics(service analytics.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		forecastDays, err := parseForecastDays(r)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		report, err := service.PredictiveAnalytics(ctx, forecastDays)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, report)
	}
}

// UnifiedDashboard serves GET /api/v1/analytics/dashboard, computing the
// composite on demand.
func UnifiedDashboard(service analytics.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		dashboard, err := service.UnifiedDashboard(ctx)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, dashboard)
	}
}

// ServiceHealth serves GET /api/v1/analytics/health.
func ServiceHealth(service analytics.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, service.ServiceHealth())
	}
}
