package marketstore

import (
	"context"
	"fmt"
	"time"

	"github.com/aurelioguzman/tendermarket-backend/internal/analytics"
	"github.com/aurelioguzman/tendermarket-backend/pkg/db/models"
	"github.com/aurelioguzman/tendermarket-backend/pkg/enums"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Grouped-by-day queries keyed on DATE(created_at); the function form works
// on both Postgres and the sqlite test driver. Day comes back as a string
// and is parsed in scan helpers.
const (
	dailyRevenueQuery = `
SELECT day, SUM(amount) AS amount FROM (
  SELECT DATE(created_at) AS day, offer_amount AS amount
  FROM tenders
  WHERE status = ? AND created_at >= ? AND created_at < ?
    AND offer_amount > ? AND offer_amount <= ?
  UNION ALL
  SELECT DATE(created_at) AS day, COALESCE(final_price, price) AS amount
  FROM listings
  WHERE status = ? AND created_at >= ? AND created_at < ?
    AND COALESCE(final_price, price) > CAST(? AS NUMERIC) AND COALESCE(final_price, price) <= CAST(? AS NUMERIC)
) realized
GROUP BY day
ORDER BY day ASC
`

	sellerActivityQuery = `
SELECT u.id AS seller_id,
       u.role AS role,
       (SELECT COUNT(*) FROM tenders t WHERE t.seller_id = u.id AND t.status = ?) AS accepted_sales,
       (SELECT COUNT(*) FROM listings l WHERE l.seller_id = u.id AND l.status = ?) AS active_listings
FROM users u
WHERE u.role IN ?
`
)

// Repository is the GORM-backed read model the analytics service aggregates
// over. All methods are read-only.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) CountUsers(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.User{}).Count(&count).Error
	return count, err
}

func (r *Repository) CountUsersCreatedBetween(ctx context.Context, start, end time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("created_at >= ? AND created_at < ?", start, end).
		Count(&count).Error
	return count, err
}

func (r *Repository) CountActiveListings(ctx context.Context) (int64, error) {
	return r.countListingsByStatus(ctx, enums.ListingStatusActive)
}

func (r *Repository) CountSoldListings(ctx context.Context) (int64, error) {
	return r.countListingsByStatus(ctx, enums.ListingStatusSold)
}

func (r *Repository) countListingsByStatus(ctx context.Context, status enums.ListingStatus) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Listing{}).
		Where("status = ?", status).
		Count(&count).Error
	return count, err
}

func (r *Repository) CountListingsCreatedBetween(ctx context.Context, start, end time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Listing{}).
		Where("created_at >= ? AND created_at < ?", start, end).
		Count(&count).Error
	return count, err
}

func (r *Repository) ListingsByCategory(ctx context.Context) ([]analytics.CategoryCount, error) {
	var rows []analytics.CategoryCount
	err := r.db.WithContext(ctx).
		Model(&models.Listing{}).
		Select("category, COUNT(*) AS listings").
		Group("category").
		Order("listings DESC, category ASC").
		Scan(&rows).Error
	return rows, err
}

func (r *Repository) ListingsByCategoryBetween(ctx context.Context, start, end time.Time) ([]analytics.CategoryCount, error) {
	var rows []analytics.CategoryCount
	err := r.db.WithContext(ctx).
		Model(&models.Listing{}).
		Select("category, COUNT(*) AS listings").
		Where("created_at >= ? AND created_at < ?", start, end).
		Group("category").
		Order("listings DESC, category ASC").
		Scan(&rows).Error
	return rows, err
}

func (r *Repository) CountTendersCreatedBetween(ctx context.Context, start, end time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Tender{}).
		Where("created_at >= ? AND created_at < ?", start, end).
		Count(&count).Error
	return count, err
}

func (r *Repository) CountAcceptedTendersBetween(ctx context.Context, start, end time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Tender{}).
		Where("status = ? AND created_at >= ? AND created_at < ?", enums.TenderStatusAccepted, start, end).
		Count(&count).Error
	return count, err
}

type sumRow struct {
	Total    decimal.Decimal
	Included int64
}

func (r *Repository) SumAcceptedTenderOffers(ctx context.Context, start, end time.Time, minAmount, maxAmount decimal.Decimal) (decimal.Decimal, int64, error) {
	var row sumRow
	err := r.db.WithContext(ctx).
		Model(&models.Tender{}).
		Select("COALESCE(SUM(offer_amount), 0) AS total, COUNT(*) AS included").
		Where("status = ? AND created_at >= ? AND created_at < ?", enums.TenderStatusAccepted, start, end).
		Where("offer_amount > ? AND offer_amount <= ?", minAmount, maxAmount).
		Scan(&row).Error
	if err != nil {
		return decimal.Zero, 0, err
	}
	return row.Total, row.Included, nil
}

func (r *Repository) SumSoldListingPrices(ctx context.Context, start, end time.Time, minAmount, maxAmount decimal.Decimal) (decimal.Decimal, int64, error) {
	var row sumRow
	err := r.db.WithContext(ctx).
		Model(&models.Listing{}).
		Select("COALESCE(SUM(COALESCE(final_price, price)), 0) AS total, COUNT(*) AS included").
		Where("status = ? AND created_at >= ? AND created_at < ?", enums.ListingStatusSold, start, end).
		// COALESCE has no column affinity, so the bounds are cast to keep the
		// comparison numeric when the driver binds decimals as text.
		Where("COALESCE(final_price, price) > CAST(? AS NUMERIC) AND COALESCE(final_price, price) <= CAST(? AS NUMERIC)", minAmount, maxAmount).
		Scan(&row).Error
	if err != nil {
		return decimal.Zero, 0, err
	}
	return row.Total, row.Included, nil
}

type dailyAmountRow struct {
	Day    string
	Amount decimal.Decimal
}

type dailyCountRow struct {
	Day   string
	Count int64
}

func (r *Repository) DailyRevenue(ctx context.Context, start, end time.Time, minAmount, maxAmount decimal.Decimal) ([]analytics.DailyAmount, error) {
	var rows []dailyAmountRow
	err := r.db.WithContext(ctx).
		Raw(dailyRevenueQuery,
			enums.TenderStatusAccepted, start, end, minAmount, maxAmount,
			enums.ListingStatusSold, start, end, minAmount, maxAmount,
		).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	series := make([]analytics.DailyAmount, 0, len(rows))
	for _, row := range rows {
		day, err := parseDay(row.Day)
		if err != nil {
			return nil, err
		}
		series = append(series, analytics.DailyAmount{Day: day, Amount: row.Amount})
	}
	return series, nil
}

func (r *Repository) DailyUserSignups(ctx context.Context, start, end time.Time) ([]analytics.DailyCount, error) {
	return r.dailyCounts(ctx, &models.User{}, start, end)
}

func (r *Repository) DailyNewListings(ctx context.Context, start, end time.Time) ([]analytics.DailyCount, error) {
	return r.dailyCounts(ctx, &models.Listing{}, start, end)
}

func (r *Repository) dailyCounts(ctx context.Context, model any, start, end time.Time) ([]analytics.DailyCount, error) {
	var rows []dailyCountRow
	err := r.db.WithContext(ctx).
		Model(model).
		Select("DATE(created_at) AS day, COUNT(*) AS count").
		Where("created_at >= ? AND created_at < ?", start, end).
		Group("DATE(created_at)").
		Order("day ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	series := make([]analytics.DailyCount, 0, len(rows))
	for _, row := range rows {
		day, err := parseDay(row.Day)
		if err != nil {
			return nil, err
		}
		series = append(series, analytics.DailyCount{Day: day, Count: row.Count})
	}
	return series, nil
}

func (r *Repository) SellerActivity(ctx context.Context, sellerID *uuid.UUID) ([]analytics.SellerActivityRow, error) {
	roles := make([]string, 0, len(enums.SellerRoles))
	for _, role := range enums.SellerRoles {
		roles = append(roles, role.String())
	}

	query := r.db.WithContext(ctx).
		Raw(sellerActivityQuery+" ORDER BY accepted_sales DESC, u.id ASC",
			enums.TenderStatusAccepted, enums.ListingStatusActive, roles)
	if sellerID != nil {
		query = r.db.WithContext(ctx).
			Raw(sellerActivityQuery+" AND u.id = ?",
				enums.TenderStatusAccepted, enums.ListingStatusActive, roles, *sellerID)
	}

	var rows []analytics.SellerActivityRow
	if err := query.Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// parseDay normalizes a DATE() result to a UTC midnight timestamp. Drivers
// hand dates back as "2006-01-02" or a full timestamp prefix.
func parseDay(raw string) (time.Time, error) {
	if len(raw) < 10 {
		return time.Time{}, fmt.Errorf("malformed day value %q", raw)
	}
	day, err := time.ParseInLocation("2006-01-02", raw[:10], time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing day %q: %w", raw, err)
	}
	return day, nil
}
