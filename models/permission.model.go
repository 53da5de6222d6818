package models

import (
	"gorm.io/gorm"
)

// Permission grants one named capability to a user, seeded by role at
// signup and checked per route by the permission middleware.
type Permission struct {
	gorm.Model
	UserID     uint   `gorm:"index;not null"`
	User       User   `gorm:"foreignKey:UserID"`
	Role       string // role the grant was seeded from
	Permission string `gorm:"type:varchar(255)"` // e.g. "manage-courses"
	IsDeleted  bool   `gorm:"default:false"`
}
