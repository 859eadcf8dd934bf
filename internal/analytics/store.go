package analytics

import (
	"context"
	"time"

	"github.com/aurelioguzman/tendermarket-backend/pkg/enums"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CategoryCount is a per-category listing tally.
type CategoryCount struct {
	Category string `json:"category"`
	Listings int64  `json:"listings"`
}

// DailyCount is one day's entity count in a grouped-by-day series.
type DailyCount struct {
	Day   time.Time
	Count int64
}

// DailyAmount is one day's monetary sum in a grouped-by-day series.
type DailyAmount struct {
	Day    time.Time
	Amount decimal.Decimal
}

// SellerActivityRow is one seller's accepted sales and live inventory.
type SellerActivityRow struct {
	SellerID       uuid.UUID
	Role           enums.UserRole
	AcceptedSales  int64
	ActiveListings int64
}

// MarketStore is the read-only view of the marketplace entities this package
// aggregates over. All windowed methods filter on created_at with native
// timestamps; daily series come back as a single grouped query, sparse (days
// with no rows are absent) and ordered by day ascending.
type MarketStore interface {
	CountUsers(ctx context.Context) (int64, error)
	CountUsersCreatedBetween(ctx context.Context, start, end time.Time) (int64, error)

	CountActiveListings(ctx context.Context) (int64, error)
	CountSoldListings(ctx context.Context) (int64, error)
	CountListingsCreatedBetween(ctx context.Context, start, end time.Time) (int64, error)
	ListingsByCategory(ctx context.Context) ([]CategoryCount, error)
	ListingsByCategoryBetween(ctx context.Context, start, end time.Time) ([]CategoryCount, error)

	CountTendersCreatedBetween(ctx context.Context, start, end time.Time) (int64, error)
	CountAcceptedTendersBetween(ctx context.Context, start, end time.Time) (int64, error)

	// SumAcceptedTenderOffers totals offer_amount over accepted tenders created
	// in [start, end) where minAmount < offer_amount <= maxAmount, returning the
	// sum and the number of tenders included.
	SumAcceptedTenderOffers(ctx context.Context, start, end time.Time, minAmount, maxAmount decimal.Decimal) (decimal.Decimal, int64, error)

	// SumSoldListingPrices totals COALESCE(final_price, price) over sold
	// listings created in [start, end) under the same amount bounds.
	SumSoldListingPrices(ctx context.Context, start, end time.Time, minAmount, maxAmount decimal.Decimal) (decimal.Decimal, int64, error)

	// DailyRevenue groups realized revenue (accepted tender offers plus sold
	// listing prices, bounds-filtered) by calendar day.
	DailyRevenue(ctx context.Context, start, end time.Time, minAmount, maxAmount decimal.Decimal) ([]DailyAmount, error)
	DailyUserSignups(ctx context.Context, start, end time.Time) ([]DailyCount, error)
	DailyNewListings(ctx context.Context, start, end time.Time) ([]DailyCount, error)

	// SellerActivity returns one row per seller-capable user, optionally
	// narrowed to a single seller.
	SellerActivity(ctx context.Context, sellerID *uuid.UUID) ([]SellerActivityRow, error)
}
