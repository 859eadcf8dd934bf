package analytics

import (
	"context"
	"fmt"
)

// MarketplaceAnalytics reports listing inventory health. The category
// breakdown spans all listings ever created, not just the window; downstream
// dashboards rely on the all-time breakdown.
func (s *service) MarketplaceAnalytics(ctx context.Context, days int) (*MarketplaceAnalyticsReport, error) {
	if err := validateDays(days); err != nil {
		return nil, err
	}

	ctx = s.logger.WithMetric(ctx, metricMarketplace)
	return cached(ctx, s, metricMarketplace, days, func(ctx context.Context) (*MarketplaceAnalyticsReport, error) {
		window := NewMetricWindow(s.now(), days)

		activeListings, err := s.store.CountActiveListings(ctx)
		if err != nil {
			return nil, fmt.Errorf("counting active listings: %w", err)
		}
		soldListings, err := s.store.CountSoldListings(ctx)
		if err != nil {
			return nil, fmt.Errorf("counting sold listings: %w", err)
		}
		newListings, err := s.store.CountListingsCreatedBetween(ctx, window.Start, window.End)
		if err != nil {
			return nil, fmt.Errorf("counting new listings: %w", err)
		}
		categories, err := s.store.ListingsByCategory(ctx)
		if err != nil {
			return nil, fmt.Errorf("grouping listings by category: %w", err)
		}

		successRate := 0.0
		if closed := activeListings + soldListings; closed > 0 {
			successRate = float64(soldListings) / float64(closed) * 100
		}

		return &MarketplaceAnalyticsReport{
			WindowDays: days,
			Summary: MarketplaceSummary{
				ActiveListings: activeListings,
				SoldListings:   soldListings,
				NewListings:    newListings,
				SuccessRate:    successRate,
			},
			Categories: categories,
		}, nil
	})
}
