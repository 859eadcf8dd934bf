package analytics

import (
	"context"
	"fmt"
	"math"
)

// Dashboard aggregation window and health score weights. The health score is
// an ad hoc composite of three linearly capped sub-scores, each clamped to
// 10.
const (
	dashboardWindowDays = 30

	healthWeightUsers    = 0.40
	healthWeightRevenue  = 0.35
	healthWeightListings = 0.25

	healthUsersPerPoint    = 10.0
	healthRevenuePerPoint  = 1000.0
	healthListingsPerPoint = 5.0
)

// UnifiedDashboard composes the 30-day user, sales, and marketplace reports
// with the forecasts, a platform health score, and rule-based
// recommendations. Each sub-report goes through its own cache.
func (s *service) UnifiedDashboard(ctx context.Context) (*DashboardReport, error) {
	users, err := s.UserAnalytics(ctx, dashboardWindowDays)
	if err != nil {
		return nil, fmt.Errorf("user analytics: %w", err)
	}
	sales, err := s.SalesAnalytics(ctx, dashboardWindowDays)
	if err != nil {
		return nil, fmt.Errorf("sales analytics: %w", err)
	}
	marketplace, err := s.MarketplaceAnalytics(ctx, dashboardWindowDays)
	if err != nil {
		return nil, fmt.Errorf("marketplace analytics: %w", err)
	}
	predictive, err := s.PredictiveAnalytics(ctx, dashboardWindowDays)
	if err != nil {
		return nil, fmt.Errorf("predictive analytics: %w", err)
	}

	breakdown := HealthBreakdown{
		UserScore:    cappedScore(float64(users.Summary.TotalUsers), healthUsersPerPoint),
		RevenueScore: cappedScore(sales.Summary.TotalRevenue.InexactFloat64(), healthRevenuePerPoint),
		ListingScore: cappedScore(float64(marketplace.Summary.ActiveListings), healthListingsPerPoint),
	}
	score := healthWeightUsers*breakdown.UserScore +
		healthWeightRevenue*breakdown.RevenueScore +
		healthWeightListings*breakdown.ListingScore

	return &DashboardReport{
		GeneratedAt:     s.now().UTC(),
		Users:           *users,
		Sales:           *sales,
		Marketplace:     *marketplace,
		Predictive:      *predictive,
		HealthScore:     math.Round(score*100) / 100,
		HealthBreakdown: breakdown,
		Recommendations: dashboardRecommendations(users, sales, marketplace),
	}, nil
}

// cappedScore maps a raw count linearly onto [0, 10].
func cappedScore(value, perPoint float64) float64 {
	return math.Min(value/perPoint, 10)
}

func dashboardRecommendations(users *UserAnalyticsReport, sales *SalesAnalyticsReport, marketplace *MarketplaceAnalyticsReport) []string {
	recs := []string{}
	if users.Summary.TotalUsers < 50 {
		recs = append(recs, "Launch a referral program to grow the user base")
	}
	if sales.Summary.TotalTransactions == 0 {
		recs = append(recs, "Promote featured listings to seed first transactions")
	}
	if marketplace.Summary.ActiveListings < 20 {
		recs = append(recs, "Onboard more sellers to deepen active inventory")
	}
	if marketplace.Summary.SuccessRate < 30 && marketplace.Summary.SoldListings > 0 {
		recs = append(recs, "Review stale active listings; sell-through is below 30%")
	}
	return recs
}
