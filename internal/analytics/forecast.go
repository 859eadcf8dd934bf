package analytics

import (
	"context"
	"fmt"
	"time"

	pkgerrors "github.com/aurelioguzman/tendermarket-backend/pkg/errors"
	"github.com/samber/lo"
)

// Averaging horizon for the recent-vs-older comparison.
const forecastAvgDays = 7

// Heuristic confidence constants for the three forecast series.
const (
	confidenceRevenueLong  HeuristicScore = 0.8
	confidenceRevenueShort HeuristicScore = 0.6
	confidenceUserGrowth   HeuristicScore = 0.75
	confidenceListings     HeuristicScore = 0.85
)

// PredictiveAnalytics extrapolates revenue, signup, and listing volume
// forward forecastDays days from grouped-by-day history over the lookback
// window. These are average-comparison extrapolations, not fitted models.
func (s *service) PredictiveAnalytics(ctx context.Context, forecastDays int) (*PredictiveReport, error) {
	if forecastDays <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("forecast days must be positive, got %d", forecastDays))
	}

	ctx = s.logger.WithMetric(ctx, metricPredictive)
	return cached(ctx, s, metricPredictive, forecastDays, func(ctx context.Context) (*PredictiveReport, error) {
		window := NewMetricWindow(s.now(), s.lookbackDays)

		revenueRows, err := s.store.DailyRevenue(ctx, window.Start, window.End, minRealisticAmount, maxRealisticAmount)
		if err != nil {
			return nil, fmt.Errorf("loading daily revenue: %w", err)
		}
		signupRows, err := s.store.DailyUserSignups(ctx, window.Start, window.End)
		if err != nil {
			return nil, fmt.Errorf("loading daily signups: %w", err)
		}
		listingRows, err := s.store.DailyNewListings(ctx, window.Start, window.End)
		if err != nil {
			return nil, fmt.Errorf("loading daily listings: %w", err)
		}

		revenueSeries := zeroFilledAmounts(window, revenueRows)
		signupSeries := zeroFilledCounts(window, signupRows)
		listingSeries := zeroFilledCounts(window, listingRows)

		revenue := forecastFromSeries(revenueSeries, forecastDays)
		if revenue.DataPoints >= 2*forecastAvgDays {
			revenue.Confidence = confidenceRevenueLong
		} else {
			revenue.Confidence = confidenceRevenueShort
		}
		userGrowth := forecastFromSeries(signupSeries, forecastDays)
		userGrowth.Confidence = confidenceUserGrowth
		listingVolume := forecastFromSeries(listingSeries, forecastDays)
		listingVolume.Confidence = confidenceListings

		return &PredictiveReport{
			ForecastDays:  forecastDays,
			LookbackDays:  s.lookbackDays,
			Revenue:       revenue,
			UserGrowth:    userGrowth,
			ListingVolume: listingVolume,
			GeneratedAt:   s.now().UTC(),
		}, nil
	})
}

// forecastFromSeries compares the mean of the last forecastAvgDays values
// against the mean of the first forecastAvgDays (when the series has at
// least two horizons of data; otherwise the trend is zero) and extrapolates
// linearly. The forecast is floored at zero.
func forecastFromSeries(series []float64, forecastDays int) MetricForecast {
	recentN := forecastAvgDays
	if len(series) < recentN {
		recentN = len(series)
	}

	recent := mean(series[len(series)-recentN:])
	older := recent
	if len(series) >= 2*forecastAvgDays {
		older = mean(series[:forecastAvgDays])
	}

	trend := recent - older
	forecast := recent + trend*float64(forecastDays)/forecastAvgDays
	if forecast < 0 {
		forecast = 0
	}

	return MetricForecast{
		RecentAvg:  recent,
		OlderAvg:   older,
		Trend:      trend,
		Forecast:   forecast,
		DataPoints: len(series),
	}
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	return lo.Sum(values) / float64(len(values))
}

// zeroFilledCounts spreads sparse daily rows across every day of the window.
func zeroFilledCounts(window MetricWindow, rows []DailyCount) []float64 {
	series := make([]float64, seriesSpan(window))
	start := dayFloor(window.Start)
	for _, row := range rows {
		if idx := dayIndex(start, row.Day); idx >= 0 && idx < len(series) {
			series[idx] += float64(row.Count)
		}
	}
	return series
}

func zeroFilledAmounts(window MetricWindow, rows []DailyAmount) []float64 {
	series := make([]float64, seriesSpan(window))
	start := dayFloor(window.Start)
	for _, row := range rows {
		if idx := dayIndex(start, row.Day); idx >= 0 && idx < len(series) {
			series[idx] += row.Amount.InexactFloat64()
		}
	}
	return series
}

// seriesSpan counts the calendar days touched by [Start, End). A mid-day End
// adds a slot for the current partial day so its rows are not dropped.
func seriesSpan(window MetricWindow) int {
	start := dayFloor(window.Start)
	last := dayFloor(window.End.Add(-time.Nanosecond))
	span := dayIndex(start, last) + 1
	if span < 1 {
		span = 1
	}
	return span
}

func dayFloor(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func dayIndex(start, day time.Time) int {
	return int(dayFloor(day).Sub(start).Hours() / 24)
}
