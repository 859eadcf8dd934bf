package models

import (
	"time"

	"github.com/aurelioguzman/tendermarket-backend/pkg/enums"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Tender is a buyer's offer on a listing.
type Tender struct {
	ID          uuid.UUID          `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	ListingID   uuid.UUID          `gorm:"type:uuid;column:listing_id;not null;index"`
	BuyerID     uuid.UUID          `gorm:"type:uuid;column:buyer_id;not null;index"`
	SellerID    uuid.UUID          `gorm:"type:uuid;column:seller_id;not null;index"`
	OfferAmount decimal.Decimal    `gorm:"type:numeric(12,2);column:offer_amount;not null"`
	Status      enums.TenderStatus `gorm:"type:text;not null;index"`
	CreatedAt   time.Time          `gorm:"column:created_at;autoCreateTime;index"`
	UpdatedAt   time.Time          `gorm:"column:updated_at;autoUpdateTime"`
}
