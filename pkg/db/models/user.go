package models

import (
	"time"

	"github.com/aurelioguzman/tendermarket-backend/pkg/enums"
	"github.com/google/uuid"
)

// User represents a marketplace account; analytics reads it, never writes it.
type User struct {
	ID        uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Email     string         `gorm:"type:text;not null;uniqueIndex"`
	Role      enums.UserRole `gorm:"type:text;column:role;not null;index"`
	IsActive  bool           `gorm:"column:is_active;not null;default:true"`
	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime;index"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime"`
}
