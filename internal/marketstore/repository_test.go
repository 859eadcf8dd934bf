package marketstore

import (
	"context"
	"testing"
	"time"

	"github.com/aurelioguzman/tendermarket-backend/internal/analytics"
	"github.com/aurelioguzman/tendermarket-backend/pkg/db/models"
	"github.com/aurelioguzman/tendermarket-backend/pkg/enums"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var _ analytics.MarketStore = (*Repository)(nil)

var (
	testNow      = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	minRealistic = decimal.Zero
	maxRealistic = decimal.NewFromInt(10000)
)

func setupMarketTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)

	users := `
CREATE TABLE users (
  id TEXT PRIMARY KEY,
  email TEXT NOT NULL UNIQUE,
  role TEXT NOT NULL,
  is_active INTEGER NOT NULL DEFAULT 1,
  created_at DATETIME,
  updated_at DATETIME
);`
	listings := `
CREATE TABLE listings (
  id TEXT PRIMARY KEY,
  seller_id TEXT NOT NULL,
  category TEXT NOT NULL,
  title TEXT NOT NULL,
  price NUMERIC NOT NULL,
  final_price NUMERIC,
  status TEXT NOT NULL,
  created_at DATETIME,
  updated_at DATETIME
);`
	tenders := `
CREATE TABLE tenders (
  id TEXT PRIMARY KEY,
  listing_id TEXT NOT NULL,
  buyer_id TEXT NOT NULL,
  seller_id TEXT NOT NULL,
  offer_amount NUMERIC NOT NULL,
  status TEXT NOT NULL,
  created_at DATETIME,
  updated_at DATETIME
);`
	for _, stmt := range []string{users, listings, tenders} {
		require.NoError(t, db.Exec(stmt).Error)
	}
	return db
}

func seedUser(t *testing.T, db *gorm.DB, role enums.UserRole, createdAt time.Time) uuid.UUID {
	t.Helper()
	id := uuid.New()
	user := models.User{
		ID:        id,
		Email:     id.String() + "@example.com",
		Role:      role,
		IsActive:  true,
		CreatedAt: createdAt,
	}
	require.NoError(t, db.Create(&user).Error)
	return id
}

func seedListing(t *testing.T, db *gorm.DB, sellerID uuid.UUID, category string, price float64, finalPrice *float64, status enums.ListingStatus, createdAt time.Time) uuid.UUID {
	t.Helper()
	listing := models.Listing{
		ID:        uuid.New(),
		SellerID:  sellerID,
		Category:  category,
		Title:     category + " item",
		Price:     decimal.NewFromFloat(price),
		Status:    status,
		CreatedAt: createdAt,
	}
	if finalPrice != nil {
		fp := decimal.NewFromFloat(*finalPrice)
		listing.FinalPrice = &fp
	}
	require.NoError(t, db.Create(&listing).Error)
	return listing.ID
}

func seedTender(t *testing.T, db *gorm.DB, listingID, buyerID, sellerID uuid.UUID, amount float64, status enums.TenderStatus, createdAt time.Time) {
	t.Helper()
	tender := models.Tender{
		ID:          uuid.New(),
		ListingID:   listingID,
		BuyerID:     buyerID,
		SellerID:    sellerID,
		OfferAmount: decimal.NewFromFloat(amount),
		Status:      status,
		CreatedAt:   createdAt,
	}
	require.NoError(t, db.Create(&tender).Error)
}

func floatPtr(v float64) *float64 { return &v }

func TestCountUsersCreatedBetween(t *testing.T) {
	db := setupMarketTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	seedUser(t, db, enums.UserRoleBuyer, testNow.AddDate(0, 0, -2))
	seedUser(t, db, enums.UserRoleBuyer, testNow.AddDate(0, 0, -20))

	total, err := repo.CountUsers(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)

	recent, err := repo.CountUsersCreatedBetween(ctx, testNow.AddDate(0, 0, -7), testNow)
	require.NoError(t, err)
	assert.Equal(t, int64(1), recent)
}

func TestSumAcceptedTenderOffers_RealisticFilter(t *testing.T) {
	db := setupMarketTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	buyer := seedUser(t, db, enums.UserRoleBuyer, testNow.AddDate(0, 0, -40))
	seller := seedUser(t, db, enums.UserRoleSeller, testNow.AddDate(0, 0, -40))
	listing := seedListing(t, db, seller, "Electronics", 100, nil, enums.ListingStatusActive, testNow.AddDate(0, 0, -10))

	created := testNow.AddDate(0, 0, -5)
	seedTender(t, db, listing, buyer, seller, 150, enums.TenderStatusAccepted, created)
	seedTender(t, db, listing, buyer, seller, 15000, enums.TenderStatusAccepted, created) // excluded, above bound
	seedTender(t, db, listing, buyer, seller, 10000, enums.TenderStatusAccepted, created) // inclusive upper bound
	seedTender(t, db, listing, buyer, seller, 400, enums.TenderStatusPending, created)    // not accepted
	seedTender(t, db, listing, buyer, seller, 75, enums.TenderStatusAccepted, testNow.AddDate(0, 0, -60))

	total, count, err := repo.SumAcceptedTenderOffers(ctx, testNow.AddDate(0, 0, -30), testNow, minRealistic, maxRealistic)
	require.NoError(t, err)
	assert.True(t, total.Equal(decimal.NewFromInt(10150)), "got %s", total)
	assert.Equal(t, int64(2), count)
}

func TestSumSoldListingPrices_PrefersFinalPrice(t *testing.T) {
	db := setupMarketTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	seller := seedUser(t, db, enums.UserRoleSeller, testNow.AddDate(0, 0, -40))
	created := testNow.AddDate(0, 0, -3)

	seedListing(t, db, seller, "Books", 300, nil, enums.ListingStatusSold, created)
	seedListing(t, db, seller, "Books", 500, floatPtr(450), enums.ListingStatusSold, created)
	seedListing(t, db, seller, "Books", 20000, nil, enums.ListingStatusSold, created) // excluded
	seedListing(t, db, seller, "Books", 80, nil, enums.ListingStatusActive, created)  // not sold

	total, count, err := repo.SumSoldListingPrices(ctx, testNow.AddDate(0, 0, -30), testNow, minRealistic, maxRealistic)
	require.NoError(t, err)
	assert.True(t, total.Equal(decimal.NewFromInt(750)), "got %s", total)
	assert.Equal(t, int64(2), count)
}

func TestListingsByCategory_WindowedAndAllTime(t *testing.T) {
	db := setupMarketTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	seller := seedUser(t, db, enums.UserRoleSeller, testNow.AddDate(0, 0, -90))
	recent := testNow.AddDate(0, 0, -2)
	old := testNow.AddDate(0, 0, -50)

	for i := 0; i < 3; i++ {
		seedListing(t, db, seller, "Electronics", 50, nil, enums.ListingStatusActive, recent)
	}
	seedListing(t, db, seller, "Books", 20, nil, enums.ListingStatusActive, recent)
	seedListing(t, db, seller, "Books", 20, nil, enums.ListingStatusActive, old)

	allTime, err := repo.ListingsByCategory(ctx)
	require.NoError(t, err)
	assert.Equal(t, []analytics.CategoryCount{
		{Category: "Electronics", Listings: 3},
		{Category: "Books", Listings: 2},
	}, allTime)

	windowed, err := repo.ListingsByCategoryBetween(ctx, testNow.AddDate(0, 0, -7), testNow)
	require.NoError(t, err)
	assert.Equal(t, []analytics.CategoryCount{
		{Category: "Electronics", Listings: 3},
		{Category: "Books", Listings: 1},
	}, windowed)
}

func TestDailyRevenue_GroupsTendersAndListings(t *testing.T) {
	db := setupMarketTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	buyer := seedUser(t, db, enums.UserRoleBuyer, testNow.AddDate(0, 0, -40))
	seller := seedUser(t, db, enums.UserRoleSeller, testNow.AddDate(0, 0, -40))
	listing := seedListing(t, db, seller, "Electronics", 100, nil, enums.ListingStatusActive, testNow.AddDate(0, 0, -20))

	dayOne := time.Date(2026, 3, 5, 9, 0, 0, 0, time.UTC)
	dayTwo := time.Date(2026, 3, 7, 16, 0, 0, 0, time.UTC)

	seedTender(t, db, listing, buyer, seller, 200, enums.TenderStatusAccepted, dayOne)
	seedListing(t, db, seller, "Books", 300, nil, enums.ListingStatusSold, dayOne)
	seedTender(t, db, listing, buyer, seller, 50, enums.TenderStatusAccepted, dayTwo)
	seedTender(t, db, listing, buyer, seller, 99999, enums.TenderStatusAccepted, dayTwo) // filtered out

	series, err := repo.DailyRevenue(ctx, testNow.AddDate(0, 0, -30), testNow, minRealistic, maxRealistic)
	require.NoError(t, err)
	require.Len(t, series, 2)

	assert.Equal(t, time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC), series[0].Day)
	assert.True(t, series[0].Amount.Equal(decimal.NewFromInt(500)), "got %s", series[0].Amount)
	assert.Equal(t, time.Date(2026, 3, 7, 0, 0, 0, 0, time.UTC), series[1].Day)
	assert.True(t, series[1].Amount.Equal(decimal.NewFromInt(50)))
}

func TestDailyUserSignups(t *testing.T) {
	db := setupMarketTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	dayOne := time.Date(2026, 3, 3, 8, 0, 0, 0, time.UTC)
	seedUser(t, db, enums.UserRoleBuyer, dayOne)
	seedUser(t, db, enums.UserRoleBuyer, dayOne.Add(6*time.Hour))
	seedUser(t, db, enums.UserRoleSeller, time.Date(2026, 3, 8, 8, 0, 0, 0, time.UTC))

	series, err := repo.DailyUserSignups(ctx, testNow.AddDate(0, 0, -30), testNow)
	require.NoError(t, err)
	require.Len(t, series, 2)
	assert.Equal(t, int64(2), series[0].Count)
	assert.Equal(t, int64(1), series[1].Count)
}

func TestSellerActivity(t *testing.T) {
	db := setupMarketTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	buyer := seedUser(t, db, enums.UserRoleBuyer, testNow.AddDate(0, 0, -40))
	busy := seedUser(t, db, enums.UserRoleSeller, testNow.AddDate(0, 0, -40))
	idle := seedUser(t, db, enums.UserRoleAdmin, testNow.AddDate(0, 0, -40))

	created := testNow.AddDate(0, 0, -5)
	listing := seedListing(t, db, busy, "Electronics", 100, nil, enums.ListingStatusActive, created)
	seedListing(t, db, busy, "Electronics", 100, nil, enums.ListingStatusSold, created)
	seedTender(t, db, listing, buyer, busy, 90, enums.TenderStatusAccepted, created)
	seedTender(t, db, listing, buyer, busy, 95, enums.TenderStatusAccepted, created)
	seedTender(t, db, listing, buyer, busy, 80, enums.TenderStatusRejected, created)

	rows, err := repo.SellerActivity(ctx, nil)
	require.NoError(t, err)
	require.Len(t, rows, 2, "buyers are excluded")

	assert.Equal(t, busy, rows[0].SellerID)
	assert.Equal(t, int64(2), rows[0].AcceptedSales)
	assert.Equal(t, int64(1), rows[0].ActiveListings)
	assert.Equal(t, idle, rows[1].SellerID)
	assert.Equal(t, int64(0), rows[1].AcceptedSales)

	single, err := repo.SellerActivity(ctx, &busy)
	require.NoError(t, err)
	require.Len(t, single, 1)
	assert.Equal(t, busy, single[0].SellerID)
}
