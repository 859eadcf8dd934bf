package analytics

import (
	"context"
	"fmt"

	"github.com/aurelioguzman/tendermarket-backend/pkg/enums"
	pkgerrors "github.com/aurelioguzman/tendermarket-backend/pkg/errors"
	"github.com/shopspring/decimal"
)

const (
	confidenceInsightDeep    HeuristicScore = 0.8
	confidenceInsightShallow HeuristicScore = 0.5
	insightSampleThreshold                  = 5
)

// RevenueInsights compares the period's realized revenue against the
// preceding equal-length period and emits tagged observations.
func (s *service) RevenueInsights(ctx context.Context, period enums.InsightPeriod) ([]RevenueInsight, error) {
	if !period.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("period %q must be weekly, monthly, or quarterly", period))
	}

	ctx = s.logger.WithMetric(ctx, metricRevenueInsights)
	return cached(ctx, s, metricRevenueInsights, period.Days(), func(ctx context.Context) ([]RevenueInsight, error) {
		window := NewMetricWindow(s.now(), period.Days())
		previous := window.Previous()

		currentRevenue, currentTxns, err := s.realizedRevenue(ctx, window)
		if err != nil {
			return nil, err
		}
		previousRevenue, previousTxns, err := s.realizedRevenue(ctx, previous)
		if err != nil {
			return nil, err
		}

		tendersCreated, err := s.store.CountTendersCreatedBetween(ctx, window.Start, window.End)
		if err != nil {
			return nil, fmt.Errorf("counting tenders: %w", err)
		}
		tendersAccepted, err := s.store.CountAcceptedTendersBetween(ctx, window.Start, window.End)
		if err != nil {
			return nil, fmt.Errorf("counting accepted tenders: %w", err)
		}

		confidence := confidenceInsightShallow
		if currentTxns > insightSampleThreshold {
			confidence = confidenceInsightDeep
		}

		insights := make([]RevenueInsight, 0, 3)

		revenueChange := trendGrowthRate(currentRevenue.InexactFloat64(), previousRevenue.InexactFloat64())
		kind, verb := InsightRevenueGrowth, "up"
		if revenueChange < 0 {
			kind, verb = InsightRevenueDecline, "down"
		}
		insights = append(insights, RevenueInsight{
			Kind:       kind,
			Period:     period,
			Message:    fmt.Sprintf("Realized revenue is %s %.1f%% over the previous %s period", verb, absFloat(revenueChange), period),
			Value:      currentRevenue,
			ChangePct:  revenueChange,
			Confidence: confidence,
		})

		currentAvg := averageDeal(currentRevenue, currentTxns)
		previousAvg := averageDeal(previousRevenue, previousTxns)
		insights = append(insights, RevenueInsight{
			Kind:       InsightAverageDealValue,
			Period:     period,
			Message:    fmt.Sprintf("Average deal value for the %s period is %s", period, currentAvg.StringFixed(2)),
			Value:      currentAvg,
			ChangePct:  trendGrowthRate(currentAvg.InexactFloat64(), previousAvg.InexactFloat64()),
			Confidence: confidence,
		})

		divisor := tendersCreated
		if divisor < 1 {
			divisor = 1
		}
		conversion := float64(tendersAccepted) / float64(divisor) * 100
		insights = append(insights, RevenueInsight{
			Kind:       InsightTenderConversion,
			Period:     period,
			Message:    fmt.Sprintf("%.1f%% of tenders created in the %s period were accepted", conversion, period),
			Value:      decimal.NewFromFloat(conversion).Round(2),
			ChangePct:  0,
			Confidence: confidence,
		})

		return insights, nil
	})
}

// realizedRevenue totals accepted tender offers and sold listing prices for
// the window under the plausible-amount bounds.
func (s *service) realizedRevenue(ctx context.Context, window MetricWindow) (decimal.Decimal, int64, error) {
	tenderRevenue, acceptedTenders, err := s.store.SumAcceptedTenderOffers(ctx, window.Start, window.End, minRealisticAmount, maxRealisticAmount)
	if err != nil {
		return decimal.Zero, 0, fmt.Errorf("summing accepted tender offers: %w", err)
	}
	listingRevenue, soldListings, err := s.store.SumSoldListingPrices(ctx, window.Start, window.End, minRealisticAmount, maxRealisticAmount)
	if err != nil {
		return decimal.Zero, 0, fmt.Errorf("summing sold listing prices: %w", err)
	}
	return tenderRevenue.Add(listingRevenue), acceptedTenders + soldListings, nil
}

func averageDeal(total decimal.Decimal, txns int64) decimal.Decimal {
	if txns < 1 {
		txns = 1
	}
	return total.Div(decimal.NewFromInt(txns)).Round(2)
}

func absFloat(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
