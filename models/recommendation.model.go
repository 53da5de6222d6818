package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Recommendation is one AI-suggested career direction for a user,
// produced from their latest assessment attempt.
type Recommendation struct {
	gorm.Model
	UserID      uint           `json:"user_id" gorm:"index;not null"`
	AttemptID   uint           `json:"attempt_id" gorm:"index;not null"`
	CareerTitle string         `json:"career_title"`
	Rationale   string         `json:"rationale" gorm:"type:text"`
	CourseTags  datatypes.JSON `json:"course_tags"`                // tags matched against Course.Tags
	MatchScore  int            `json:"match_score"`                // 0-100
	Source      string         `json:"source" gorm:"default:'AI'"` // AI, FALLBACK
	IsDeleted   bool           `gorm:"default:false"`
}
