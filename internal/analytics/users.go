package analytics

import (
	"context"
	"fmt"
)

// UserAnalytics reports user acquisition for the trailing days window.
func (s *service) UserAnalytics(ctx context.Context, days int) (*UserAnalyticsReport, error) {
	if err := validateDays(days); err != nil {
		return nil, err
	}

	ctx = s.logger.WithMetric(ctx, metricUsers)
	return cached(ctx, s, metricUsers, days, func(ctx context.Context) (*UserAnalyticsReport, error) {
		window := NewMetricWindow(s.now(), days)
		previous := window.Previous()

		totalUsers, err := s.store.CountUsers(ctx)
		if err != nil {
			return nil, fmt.Errorf("counting users: %w", err)
		}
		newUsers, err := s.store.CountUsersCreatedBetween(ctx, window.Start, window.End)
		if err != nil {
			return nil, fmt.Errorf("counting new users: %w", err)
		}
		previousNewUsers, err := s.store.CountUsersCreatedBetween(ctx, previous.Start, previous.End)
		if err != nil {
			return nil, fmt.Errorf("counting prior-window users: %w", err)
		}
		newListings, err := s.store.CountListingsCreatedBetween(ctx, window.Start, window.End)
		if err != nil {
			return nil, fmt.Errorf("counting new listings: %w", err)
		}
		newTenders, err := s.store.CountTendersCreatedBetween(ctx, window.Start, window.End)
		if err != nil {
			return nil, fmt.Errorf("counting new tenders: %w", err)
		}

		// Creation within the window stands in for activity; the store keeps
		// no per-user event history.
		activeUsers := newUsers

		return &UserAnalyticsReport{
			WindowDays: days,
			Summary: UserSummary{
				TotalUsers:     totalUsers,
				NewUsers:       newUsers,
				ActiveUsers:    activeUsers,
				UserGrowthRate: guardedGrowthRate(float64(newUsers), float64(previousNewUsers)),
				NewListings:    newListings,
				NewTenders:     newTenders,
			},
			Engagement: EngagementRatios{
				ListingsPerActiveUser: perUserRatio(newListings, activeUsers),
				TendersPerActiveUser:  perUserRatio(newTenders, activeUsers),
			},
		}, nil
	})
}

// guardedGrowthRate is percentage growth of current over previous, returning
// 0 when the previous period had nothing to compare against.
func guardedGrowthRate(current, previous float64) float64 {
	if previous <= 0 {
		return 0
	}
	return (current - previous) / previous * 100
}

func perUserRatio(count, activeUsers int64) float64 {
	if activeUsers < 1 {
		activeUsers = 1
	}
	return float64(count) / float64(activeUsers)
}
