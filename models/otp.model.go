package models

import (
	"time"

	"gorm.io/gorm"
)

// OTP is a one-time code mailed for email verification and password
// recovery. Codes expire and are single use.
type OTP struct {
	gorm.Model
	UserID      uint      `gorm:"not null" json:"user_id"`
	Email       string    `gorm:"size:100;index" json:"email"`
	Code        string    `gorm:"size:6;not null" json:"code"`
	ExpiresAt   time.Time `gorm:"not null" json:"expires_at"`
	IsUsed      bool      `gorm:"default:false" json:"is_used"`
	Description string    `gorm:"size:255" json:"description,omitempty"` // purpose of the code
	IsDeleted   bool      `gorm:"default:false"`
}
