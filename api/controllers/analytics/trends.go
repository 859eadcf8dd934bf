package analytics

import (
	"net/http"

	"github.com/aurelioguzman/tendermarket-backend/api/responses"
	"github.com/aurelioguzman/tendermarket-backend/api/validators"
	"github.com/aurelioguzman/tendermarket-backend/internal/analytics"
	"github.com/aurelioguzman/tendermarket-backend/pkg/enums"
	"github.com/aurelioguzman/tendermarket-backend/pkg/logger"
)

// MarketTrends serves GET /api/v1/analytics/trends.
func MarketTrends(service analytics.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		params, err := parseTrendParams(r)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		trends, err := service.MarketTrends(ctx, params.Period)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, trends)
	}
}

// SellerPerformance serves GET /api/v1/analytics/sellers.
func SellerPerformance(service analytics.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		sellerID, err := validators.ParseQueryUUID(r, "seller_id")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		performances, err := service.SellerPerformance(ctx, sellerID)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, performances)
	}
}

// RevenueInsights serves GET /api/v1/analytics/revenue-insights.
func RevenueInsights(service analytics.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		params, err := parseInsightParams(r)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		insights, err := service.RevenueInsights(ctx, enums.InsightPeriod(params.Period))
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, insights)
	}
}
