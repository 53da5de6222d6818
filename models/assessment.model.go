package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Aptitude categories a question (and a student strength) can belong to
const (
	CategoryAnalytical   = "ANALYTICAL"
	CategoryVerbal       = "VERBAL"
	CategoryQuantitative = "QUANTITATIVE"
	CategoryCreative     = "CREATIVE"
	CategoryTechnical    = "TECHNICAL"
)

// AptitudeCategories lists every category in a fixed order
var AptitudeCategories = []string{
	CategoryAnalytical,
	CategoryVerbal,
	CategoryQuantitative,
	CategoryCreative,
	CategoryTechnical,
}

// AptitudeQuestion is a single question of the aptitude assessment.
// Options are stored as a JSON array of strings; each question scores
// toward exactly one category when answered correctly.
type AptitudeQuestion struct {
	gorm.Model
	QuestionText string         `json:"question_text" gorm:"type:text;not null"`
	Category     string         `json:"category" gorm:"index;not null"`
	Options      datatypes.JSON `json:"options" gorm:"not null"`
	CorrectIndex int            `json:"-" gorm:"not null"`
	OrderIndex   int            `json:"order_index" gorm:"default:0"`
	IsActive     bool           `json:"is_active" gorm:"default:true"`
	IsDeleted    bool           `gorm:"default:false"`
}

// AssessmentAttempt stores one submitted assessment with the raw answers
// and the derived per-category strength percentages.
type AssessmentAttempt struct {
	gorm.Model
	UserID         uint           `json:"user_id" gorm:"index;not null"`
	Answers        datatypes.JSON `json:"answers"`         // question_id -> selected option index
	CategoryScores datatypes.JSON `json:"category_scores"` // category -> percentage (0-100)
	TopCategories  string         `json:"top_categories"`  // comma separated, strongest first
	TotalQuestions int            `json:"total_questions"`
	IsDeleted      bool           `gorm:"default:false"`
}
