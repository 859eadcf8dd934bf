package analytics

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
)

// SalesAnalytics reports realized revenue for the trailing days window.
// Realized revenue is accepted tender offers plus sold listing prices, each
// filtered to the plausible monetary range.
func (s *service) SalesAnalytics(ctx context.Context, days int) (*SalesAnalyticsReport, error) {
	if err := validateDays(days); err != nil {
		return nil, err
	}

	ctx = s.logger.WithMetric(ctx, metricSales)
	return cached(ctx, s, metricSales, days, func(ctx context.Context) (*SalesAnalyticsReport, error) {
		window := NewMetricWindow(s.now(), days)

		tenderRevenue, acceptedTenders, err := s.store.SumAcceptedTenderOffers(ctx, window.Start, window.End, minRealisticAmount, maxRealisticAmount)
		if err != nil {
			return nil, fmt.Errorf("summing accepted tender offers: %w", err)
		}
		listingRevenue, soldListings, err := s.store.SumSoldListingPrices(ctx, window.Start, window.End, minRealisticAmount, maxRealisticAmount)
		if err != nil {
			return nil, fmt.Errorf("summing sold listing prices: %w", err)
		}

		totalRevenue := tenderRevenue.Add(listingRevenue)
		totalTransactions := acceptedTenders + soldListings

		divisor := totalTransactions
		if divisor < 1 {
			divisor = 1
		}
		avgTransaction := totalRevenue.Div(decimal.NewFromInt(divisor)).Round(2)

		return &SalesAnalyticsReport{
			WindowDays: days,
			Summary: SalesSummary{
				TotalRevenue:        totalRevenue,
				TotalTransactions:   totalTransactions,
				AvgTransactionValue: avgTransaction,
			},
			RevenueSources: RevenueSources{
				TenderRevenue:   tenderRevenue,
				AcceptedTenders: acceptedTenders,
				ListingRevenue:  listingRevenue,
				SoldListings:    soldListings,
			},
		}, nil
	})
}
