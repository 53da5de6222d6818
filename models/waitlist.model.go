package models

import (
	"time"

	"gorm.io/gorm"
)

// Waitlist records a user's interest in a course that is not yet published.
// NotifiedAt is stamped once the publish notification email goes out.
type Waitlist struct {
	gorm.Model
	UserID     uint       `json:"user_id" gorm:"index;not null"`
	CourseID   uint       `json:"course_id" gorm:"index;not null"`
	NotifiedAt *time.Time `json:"notified_at"`
	IsDeleted  bool       `gorm:"default:false"`
}
