package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/aurelioguzman/tendermarket-backend/pkg/enums"
	pkgerrors "github.com/aurelioguzman/tendermarket-backend/pkg/errors"
	"github.com/aurelioguzman/tendermarket-backend/pkg/logger"
	"github.com/aurelioguzman/tendermarket-backend/pkg/metrics"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Metric names; cache keys are <metric>_<days>.
const (
	metricUsers           = "users"
	metricSales           = "sales"
	metricMarketplace     = "marketplace"
	metricPredictive      = "predictive"
	metricTrends          = "trends"
	metricSellers         = "sellers"
	metricRevenueInsights = "revenue_insights"
)

// Monetary values outside (minRealisticAmount, maxRealisticAmount] are
// treated as data-entry noise and excluded from revenue sums.
var (
	minRealisticAmount = decimal.Zero
	maxRealisticAmount = decimal.NewFromInt(10000)
)

const (
	defaultCacheTTL        = 5 * time.Minute
	defaultCacheMaxEntries = 256
	defaultLookbackDays    = 90
)

// Service aggregates marketplace entities into windowed metrics, heuristic
// forecasts, and trend classifications, memoized in a TTL cache.
type Service interface {
	UserAnalytics(ctx context.Context, days int) (*UserAnalyticsReport, error)
	SalesAnalytics(ctx context.Context, days int) (*SalesAnalyticsReport, error)
	MarketplaceAnalytics(ctx context.Context, days int) (*MarketplaceAnalyticsReport, error)
	PredictiveAnalytics(ctx context.Context, forecastDays int) (*PredictiveReport, error)
	MarketTrends(ctx context.Context, period string) ([]MarketTrend, error)
	SellerPerformance(ctx context.Context, sellerID *uuid.UUID) ([]SellerPerformance, error)
	RevenueInsights(ctx context.Context, period enums.InsightPeriod) ([]RevenueInsight, error)
	UnifiedDashboard(ctx context.Context) (*DashboardReport, error)
	ServiceHealth() *ServiceHealthReport
	Close()
}

// ServiceParams wires the service's dependencies. Store and Logger are
// required; the rest default sensibly.
type ServiceParams struct {
	Store           MarketStore
	Logger          *logger.Logger
	Metrics         *metrics.AnalyticsMetrics
	CacheTTL        time.Duration
	CacheMaxEntries int
	LookbackDays    int
	Now             func() time.Time
}

type service struct {
	store        MarketStore
	logger       *logger.Logger
	metrics      *metrics.AnalyticsMetrics
	cache        *ResultCache
	lookbackDays int
	now          func() time.Time
}

// NewService constructs the analytics service.
func NewService(params ServiceParams) (Service, error) {
	if params.Store == nil {
		return nil, fmt.Errorf("market store required")
	}
	if params.Logger == nil {
		return nil, fmt.Errorf("logger required")
	}
	if params.CacheTTL <= 0 {
		params.CacheTTL = defaultCacheTTL
	}
	if params.CacheMaxEntries <= 0 {
		params.CacheMaxEntries = defaultCacheMaxEntries
	}
	if params.LookbackDays <= 0 {
		params.LookbackDays = defaultLookbackDays
	}
	if params.Now == nil {
		params.Now = time.Now
	}

	cache, err := NewResultCache(params.CacheMaxEntries, params.CacheTTL, params.Now)
	if err != nil {
		return nil, fmt.Errorf("building result cache: %w", err)
	}

	return &service{
		store:        params.Store,
		logger:       params.Logger,
		metrics:      params.Metrics,
		cache:        cache,
		lookbackDays: params.LookbackDays,
		now:          params.Now,
	}, nil
}

// Close drops all cached results. Safe to call at shutdown.
func (s *service) Close() {
	s.cache.Purge()
}

func validateDays(days int) error {
	if days <= 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("days must be positive, got %d", days))
	}
	return nil
}

// cached memoizes compute under <metric>_<days>. Concurrent callers racing
// the same cold key may duplicate the underlying read; reads are idempotent
// against the store so the race only costs work.
func cached[T any](ctx context.Context, s *service, metric string, days int, compute func(ctx context.Context) (T, error)) (T, error) {
	var zero T

	key := cacheKey(metric, days)
	if value, ok := s.cache.Get(key); ok {
		s.metrics.IncCacheHit(metric)
		if typed, ok := value.(T); ok {
			return typed, nil
		}
		// Key collision across result types would be a programming error.
		s.logger.Warn(ctx, fmt.Sprintf("cached value under %q has unexpected type %T", key, value))
	}
	s.metrics.IncCacheMiss(metric)

	started := s.now()
	result, err := compute(ctx)
	if err != nil {
		return zero, err
	}
	s.metrics.ObserveCompute(metric, s.now().Sub(started))

	s.cache.Put(key, result)
	return result, nil
}
