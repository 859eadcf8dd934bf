package analytics

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// Rating formula bounds. Ratings are heuristic scores over accepted sales
// counts, not review-derived.
const (
	ratingNoSales      = 3.5
	ratingBase         = 4.0
	ratingPerSale      = 0.1
	ratingMax          = 5.0
	ratingNudge        = 0.1
	inventoryThreshold = 5
)

// SellerPerformance scores each seller-capable user, or just one when
// sellerID is set. The single-seller path bypasses the cache; only the full
// scan is worth memoizing.
func (s *service) SellerPerformance(ctx context.Context, sellerID *uuid.UUID) ([]SellerPerformance, error) {
	ctx = s.logger.WithMetric(ctx, metricSellers)

	if sellerID != nil {
		return s.computeSellerPerformance(ctx, sellerID)
	}
	return cached(ctx, s, metricSellers, 0, func(ctx context.Context) ([]SellerPerformance, error) {
		return s.computeSellerPerformance(ctx, nil)
	})
}

func (s *service) computeSellerPerformance(ctx context.Context, sellerID *uuid.UUID) ([]SellerPerformance, error) {
	rows, err := s.store.SellerActivity(ctx, sellerID)
	if err != nil {
		return nil, fmt.Errorf("loading seller activity: %w", err)
	}

	performances := make([]SellerPerformance, 0, len(rows))
	for _, row := range rows {
		current := sellerRating(row.AcceptedSales)

		predicted := current - ratingNudge
		if row.ActiveListings > inventoryThreshold {
			predicted = current + ratingNudge
		}
		predicted = clampRating(predicted)

		performances = append(performances, SellerPerformance{
			SellerID:        row.SellerID,
			Role:            row.Role,
			AcceptedSales:   row.AcceptedSales,
			ActiveListings:  row.ActiveListings,
			CurrentRating:   current,
			PredictedRating: predicted,
			Recommendations: sellerRecommendations(row),
		})
	}
	return performances, nil
}

func sellerRating(acceptedSales int64) float64 {
	if acceptedSales == 0 {
		return ratingNoSales
	}
	rating := ratingBase + ratingPerSale*float64(acceptedSales)
	if rating > ratingMax {
		return ratingMax
	}
	return rating
}

func clampRating(rating float64) float64 {
	if rating < 0 {
		return 0
	}
	if rating > ratingMax {
		return ratingMax
	}
	return rating
}

func sellerRecommendations(row SellerActivityRow) []string {
	recs := []string{}
	if row.AcceptedSales == 0 {
		recs = append(recs, "Accept a first tender to start building a sales record")
	}
	if row.ActiveListings <= inventoryThreshold {
		recs = append(recs, "Keep more than 5 listings active to improve visibility")
	}
	if row.AcceptedSales > 0 && row.ActiveListings == 0 {
		recs = append(recs, "Relist inventory; past buyers have nothing to bid on")
	}
	return recs
}
