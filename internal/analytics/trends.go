package analytics

import (
	"context"
	"fmt"
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/aurelioguzman/tendermarket-backend/pkg/enums"
	pkgerrors "github.com/aurelioguzman/tendermarket-backend/pkg/errors"
	"github.com/samber/lo"
)

// Trend classification thresholds: growth must exceed +5% to count as "up"
// and fall below -5% to count as "down". Exactly +/-5% is stable.
const trendThresholdPct = 5.0

const (
	confidenceTrendDeep    HeuristicScore = 0.8
	confidenceTrendShallow HeuristicScore = 0.5
	trendSampleThreshold                  = 5
)

var periodPattern = regexp.MustCompile(`^(\d+)([dwmy])$`)

// ParseTrendPeriod converts an Nd|Nw|Nm|Ny period expression into days.
func ParseTrendPeriod(period string) (int, error) {
	match := periodPattern.FindStringSubmatch(strings.ToLower(strings.TrimSpace(period)))
	if match == nil {
		return 0, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("period %q must match Nd, Nw, Nm, or Ny", period))
	}

	n, err := strconv.Atoi(match[1])
	if err != nil || n <= 0 {
		return 0, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("period %q must have a positive count", period))
	}

	switch match[2] {
	case "d":
		return n, nil
	case "w":
		return n * 7, nil
	case "m":
		return n * 30, nil
	default:
		return n * 365, nil
	}
}

// MarketTrends classifies each listing category's volume in the period
// window against the immediately preceding equal-length window.
func (s *service) MarketTrends(ctx context.Context, period string) ([]MarketTrend, error) {
	days, err := ParseTrendPeriod(period)
	if err != nil {
		return nil, err
	}

	ctx = s.logger.WithMetric(ctx, metricTrends)
	return cached(ctx, s, metricTrends, days, func(ctx context.Context) ([]MarketTrend, error) {
		window := NewMetricWindow(s.now(), days)
		previous := window.Previous()

		currentRows, err := s.store.ListingsByCategoryBetween(ctx, window.Start, window.End)
		if err != nil {
			return nil, fmt.Errorf("grouping current-window categories: %w", err)
		}
		previousRows, err := s.store.ListingsByCategoryBetween(ctx, previous.Start, previous.End)
		if err != nil {
			return nil, fmt.Errorf("grouping prior-window categories: %w", err)
		}

		current := categoryCountsByName(currentRows)
		prior := categoryCountsByName(previousRows)
		categories := lo.Uniq(append(lo.Keys(current), lo.Keys(prior)...))

		trends := make([]MarketTrend, 0, len(categories))
		for _, category := range categories {
			cur, prev := current[category], prior[category]
			growth := trendGrowthRate(float64(cur), float64(prev))

			confidence := confidenceTrendShallow
			if cur > trendSampleThreshold {
				confidence = confidenceTrendDeep
			}

			trends = append(trends, MarketTrend{
				Category:         category,
				CurrentListings:  cur,
				PreviousListings: prev,
				PredictedGrowth:  growth,
				TrendDirection:   classifyTrend(growth),
				TrendStrength:    math.Min(math.Abs(growth)/100, 1.0),
				Confidence:       confidence,
			})
		}

		sort.Slice(trends, func(i, j int) bool {
			if trends[i].PredictedGrowth != trends[j].PredictedGrowth {
				return trends[i].PredictedGrowth > trends[j].PredictedGrowth
			}
			return trends[i].Category < trends[j].Category
		})
		return trends, nil
	})
}

func categoryCountsByName(rows []CategoryCount) map[string]int64 {
	return lo.Associate(rows, func(row CategoryCount) (string, int64) {
		return row.Category, row.Listings
	})
}

// trendGrowthRate is percentage growth treating a from-nothing increase as
// +100% rather than unbounded.
func trendGrowthRate(current, previous float64) float64 {
	if previous <= 0 {
		if current > 0 {
			return 100
		}
		return 0
	}
	return (current - previous) / previous * 100
}

func classifyTrend(growthPct float64) enums.TrendDirection {
	switch {
	case growthPct > trendThresholdPct:
		return enums.TrendDirectionUp
	case growthPct < -trendThresholdPct:
		return enums.TrendDirectionDown
	default:
		return enums.TrendDirectionStable
	}
}
