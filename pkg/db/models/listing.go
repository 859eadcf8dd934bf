package models

import (
	"time"

	"github.com/aurelioguzman/tendermarket-backend/pkg/enums"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Listing represents an item offered for sale. FinalPrice is set when the
// sale closes below or above the asking price; revenue aggregation prefers it.
type Listing struct {
	ID         uuid.UUID           `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	SellerID   uuid.UUID           `gorm:"type:uuid;column:seller_id;not null;index"`
	Category   string              `gorm:"type:text;not null;index"`
	Title      string              `gorm:"type:text;not null"`
	Price      decimal.Decimal     `gorm:"type:numeric(12,2);not null"`
	FinalPrice *decimal.Decimal    `gorm:"type:numeric(12,2);column:final_price"`
	Status     enums.ListingStatus `gorm:"type:text;not null;index"`
	CreatedAt  time.Time           `gorm:"column:created_at;autoCreateTime;index"`
	UpdatedAt  time.Time           `gorm:"column:updated_at;autoUpdateTime"`
}
