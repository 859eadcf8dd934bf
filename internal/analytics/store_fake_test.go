package analytics

import (
	"context"
	"time"

	"github.com/aurelioguzman/tendermarket-backend/pkg/enums"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// fakeMarketStore serves canned values and counts every call so tests can
// assert cache behavior by query volume.
type fakeMarketStore struct {
	calls map[string]int

	totalUsers      int64
	usersByWindow   map[time.Time]int64
	activeListings  int64
	soldListings    int64
	newListings     int64
	newTenders      int64
	acceptedTenders int64
	categories      []CategoryCount
	categoriesByWin map[time.Time][]CategoryCount
	tenderSum       decimal.Decimal
	tenderCount     int64
	listingSum      decimal.Decimal
	listingCount    int64
	dailyRevenue    []DailyAmount
	dailySignups    []DailyCount
	dailyListings   []DailyCount
	sellerRows      []SellerActivityRow
	err             error

	lastMinAmount decimal.Decimal
	lastMaxAmount decimal.Decimal
}

func newFakeMarketStore() *fakeMarketStore {
	return &fakeMarketStore{
		calls:           map[string]int{},
		usersByWindow:   map[time.Time]int64{},
		categoriesByWin: map[time.Time][]CategoryCount{},
	}
}

func (f *fakeMarketStore) record(method string) { f.calls[method]++ }

func (f *fakeMarketStore) totalCalls() int {
	total := 0
	for _, n := range f.calls {
		total += n
	}
	return total
}

func (f *fakeMarketStore) CountUsers(context.Context) (int64, error) {
	f.record("CountUsers")
	return f.totalUsers, f.err
}

func (f *fakeMarketStore) CountUsersCreatedBetween(_ context.Context, start, _ time.Time) (int64, error) {
	f.record("CountUsersCreatedBetween")
	return f.usersByWindow[start], f.err
}

func (f *fakeMarketStore) CountActiveListings(context.Context) (int64, error) {
	f.record("CountActiveListings")
	return f.activeListings, f.err
}

func (f *fakeMarketStore) CountSoldListings(context.Context) (int64, error) {
	f.record("CountSoldListings")
	return f.soldListings, f.err
}

func (f *fakeMarketStore) CountListingsCreatedBetween(_ context.Context, _, _ time.Time) (int64, error) {
	f.record("CountListingsCreatedBetween")
	return f.newListings, f.err
}

func (f *fakeMarketStore) ListingsByCategory(context.Context) ([]CategoryCount, error) {
	f.record("ListingsByCategory")
	return f.categories, f.err
}

func (f *fakeMarketStore) ListingsByCategoryBetween(_ context.Context, start, _ time.Time) ([]CategoryCount, error) {
	f.record("ListingsByCategoryBetween")
	return f.categoriesByWin[start], f.err
}

func (f *fakeMarketStore) CountTendersCreatedBetween(_ context.Context, _, _ time.Time) (int64, error) {
	f.record("CountTendersCreatedBetween")
	return f.newTenders, f.err
}

func (f *fakeMarketStore) CountAcceptedTendersBetween(_ context.Context, _, _ time.Time) (int64, error) {
	f.record("CountAcceptedTendersBetween")
	return f.acceptedTenders, f.err
}

func (f *fakeMarketStore) SumAcceptedTenderOffers(_ context.Context, _, _ time.Time, minAmount, maxAmount decimal.Decimal) (decimal.Decimal, int64, error) {
	f.record("SumAcceptedTenderOffers")
	f.lastMinAmount, f.lastMaxAmount = minAmount, maxAmount
	return f.tenderSum, f.tenderCount, f.err
}

func (f *fakeMarketStore) SumSoldListingPrices(_ context.Context, _, _ time.Time, minAmount, maxAmount decimal.Decimal) (decimal.Decimal, int64, error) {
	f.record("SumSoldListingPrices")
	f.lastMinAmount, f.lastMaxAmount = minAmount, maxAmount
	return f.listingSum, f.listingCount, f.err
}

func (f *fakeMarketStore) DailyRevenue(_ context.Context, _, _ time.Time, _, _ decimal.Decimal) ([]DailyAmount, error) {
	f.record("DailyRevenue")
	return f.dailyRevenue, f.err
}

func (f *fakeMarketStore) DailyUserSignups(_ context.Context, _, _ time.Time) ([]DailyCount, error) {
	f.record("DailyUserSignups")
	return f.dailySignups, f.err
}

func (f *fakeMarketStore) DailyNewListings(_ context.Context, _, _ time.Time) ([]DailyCount, error) {
	f.record("DailyNewListings")
	return f.dailyListings, f.err
}

func (f *fakeMarketStore) SellerActivity(_ context.Context, sellerID *uuid.UUID) ([]SellerActivityRow, error) {
	f.record("SellerActivity")
	if sellerID == nil {
		return f.sellerRows, f.err
	}
	for _, row := range f.sellerRows {
		if row.SellerID == *sellerID {
			return []SellerActivityRow{row}, f.err
		}
	}
	return nil, f.err
}

var _ MarketStore = (*fakeMarketStore)(nil)

func sellerRow(sales, active int64) SellerActivityRow {
	return SellerActivityRow{
		SellerID:       uuid.New(),
		Role:           enums.UserRoleSeller,
		AcceptedSales:  sales,
		ActiveListings: active,
	}
}
