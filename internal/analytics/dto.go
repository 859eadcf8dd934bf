package analytics

import (
	"time"

	"github.com/aurelioguzman/tendermarket-backend/pkg/enums"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// HeuristicScore is a confidence value produced by a fixed formula or
// constant, not by a trained or statistically validated model. The distinct
// type exists so callers never mistake these for measured probabilities.
type HeuristicScore float64

// UserAnalyticsReport summarizes user acquisition over a day window.
type UserAnalyticsReport struct {
	WindowDays int              `json:"window_days"`
	Summary    UserSummary      `json:"summary"`
	Engagement EngagementRatios `json:"engagement"`
}

// UserSummary holds the windowed user counts.
//
// ActiveUsers approximates activity as "created within the window"; the store
// keeps no session or event data to do better.
type UserSummary struct {
	TotalUsers     int64   `json:"total_users"`
	NewUsers       int64   `json:"new_users"`
	ActiveUsers    int64   `json:"active_users"`
	UserGrowthRate float64 `json:"user_growth_rate"`
	NewListings    int64   `json:"new_listings"`
	NewTenders     int64   `json:"new_tenders"`
}

// EngagementRatios are per-active-user activity ratios.
type EngagementRatios struct {
	ListingsPerActiveUser float64 `json:"listings_per_active_user"`
	TendersPerActiveUser  float64 `json:"tenders_per_active_user"`
}

// SalesAnalyticsReport summarizes realized revenue over a day window.
type SalesAnalyticsReport struct {
	WindowDays     int            `json:"window_days"`
	Summary        SalesSummary   `json:"summary"`
	RevenueSources RevenueSources `json:"revenue_sources"`
}

type SalesSummary struct {
	TotalRevenue        decimal.Decimal `json:"total_revenue"`
	TotalTransactions   int64           `json:"total_transactions"`
	AvgTransactionValue decimal.Decimal `json:"avg_transaction_value"`
}

// RevenueSources splits realized revenue by origin.
type RevenueSources struct {
	TenderRevenue   decimal.Decimal `json:"tender_revenue"`
	AcceptedTenders int64           `json:"accepted_tenders"`
	ListingRevenue  decimal.Decimal `json:"listing_revenue"`
	SoldListings    int64           `json:"sold_listings"`
}

// MarketplaceAnalyticsReport summarizes listing inventory health.
type MarketplaceAnalyticsReport struct {
	WindowDays int                `json:"window_days"`
	Summary    MarketplaceSummary `json:"summary"`
	Categories []CategoryCount    `json:"categories"`
}

type MarketplaceSummary struct {
	ActiveListings int64   `json:"active_listings"`
	SoldListings   int64   `json:"sold_listings"`
	NewListings    int64   `json:"new_listings"`
	SuccessRate    float64 `json:"success_rate"`
}

// PredictiveReport carries the three linear extrapolations.
type PredictiveReport struct {
	ForecastDays  int            `json:"forecast_days"`
	LookbackDays  int            `json:"lookback_days"`
	Revenue       MetricForecast `json:"revenue"`
	UserGrowth    MetricForecast `json:"user_growth"`
	ListingVolume MetricForecast `json:"listing_volume"`
	GeneratedAt   time.Time      `json:"generated_at"`
}

// MetricForecast is a recent-vs-older average comparison extrapolated
// forward. Forecast is never negative.
type MetricForecast struct {
	RecentAvg  float64        `json:"recent_avg"`
	OlderAvg   float64        `json:"older_avg"`
	Trend      float64        `json:"trend"`
	Forecast   float64        `json:"forecast"`
	DataPoints int            `json:"data_points"`
	Confidence HeuristicScore `json:"confidence"`
}

// MarketTrend classifies one category's listing volume against the
// immediately preceding equal-length window.
type MarketTrend struct {
	Category         string               `json:"category"`
	CurrentListings  int64                `json:"current_listings"`
	PreviousListings int64                `json:"previous_listings"`
	PredictedGrowth  float64              `json:"predicted_growth"`
	TrendDirection   enums.TrendDirection `json:"trend_direction"`
	TrendStrength    float64              `json:"trend_strength"`
	Confidence       HeuristicScore       `json:"confidence_score"`
}

// SellerPerformance is a heuristic seller score. The ratings come from the
// accepted-sales formula, not from buyer feedback.
type SellerPerformance struct {
	SellerID        uuid.UUID      `json:"seller_id"`
	Role            enums.UserRole `json:"role"`
	AcceptedSales   int64          `json:"accepted_sales"`
	ActiveListings  int64          `json:"active_listings"`
	CurrentRating   float64        `json:"current_rating"`
	PredictedRating float64        `json:"predicted_rating"`
	Recommendations []string       `json:"recommendations"`
}

// Insight kinds emitted by RevenueInsights.
const (
	InsightRevenueGrowth    = "revenue_growth"
	InsightRevenueDecline   = "revenue_decline"
	InsightAverageDealValue = "average_deal_value"
	InsightTenderConversion = "tender_conversion"
)

// RevenueInsight is one tagged observation about the period's revenue.
type RevenueInsight struct {
	Kind       string             `json:"kind"`
	Period     enums.InsightPeriod `json:"period"`
	Message    string             `json:"message"`
	Value      decimal.Decimal    `json:"value"`
	ChangePct  float64            `json:"change_pct"`
	Confidence HeuristicScore     `json:"confidence"`
}

// HealthBreakdown exposes the three capped sub-scores behind the platform
// health score.
type HealthBreakdown struct {
	UserScore    float64 `json:"user_score"`
	RevenueScore float64 `json:"revenue_score"`
	ListingScore float64 `json:"listing_score"`
}

// DashboardReport composes the point-in-time reports with the forecasts and
// an ad hoc 0-10 platform health score.
type DashboardReport struct {
	GeneratedAt     time.Time                  `json:"generated_at"`
	Users           UserAnalyticsReport        `json:"users"`
	Sales           SalesAnalyticsReport       `json:"sales"`
	Marketplace     MarketplaceAnalyticsReport `json:"marketplace"`
	Predictive      PredictiveReport           `json:"predictive"`
	HealthScore     float64                    `json:"platform_health_score"`
	HealthBreakdown HealthBreakdown            `json:"health_breakdown"`
	Recommendations []string                   `json:"recommendations"`
}

// ServiceHealthReport is the static capability descriptor plus live cache
// counters.
type ServiceHealthReport struct {
	Service      string     `json:"service"`
	Version      string     `json:"version"`
	Status       string     `json:"status"`
	Capabilities []string   `json:"capabilities"`
	Cache        CacheStats `json:"cache"`
	GeneratedAt  time.Time  `json:"generated_at"`
}
