package course

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Exam schedule statuses
const (
	ExamScheduled  = "SCHEDULED"
	ExamInProgress = "IN_PROGRESS"
	ExamSubmitted  = "SUBMITTED"
	ExamExpired    = "EXPIRED"
)

// ExamSchedule is one scheduled/attempted final exam instance for a
// user and course. Questions are generated on start and stored as JSON
// (with correct indexes), answers as question_id -> selected index.
type ExamSchedule struct {
	gorm.Model
	UserID      uint           `json:"user_id" gorm:"index;not null"`
	CourseID    uint           `json:"course_id" gorm:"index;not null"`
	ScheduledAt time.Time      `json:"scheduled_at"`
	StartedAt   *time.Time     `json:"started_at"`
	SubmittedAt *time.Time     `json:"submitted_at"`
	Status      string         `json:"status" gorm:"default:'SCHEDULED'"`
	Questions   datatypes.JSON `json:"-"` // never serialized before submission
	Answers     datatypes.JSON `json:"answers"`
	Score       int            `json:"score"`   // percentage (0-100)
	Passed      bool           `json:"passed" gorm:"default:false"`
	IsDeleted   bool           `gorm:"default:false"`
}

// ExamQuestion is a generated question embedded in ExamSchedule.Questions
type ExamQuestion struct {
	ID           uint     `json:"id"`
	QuestionText string   `json:"question_text"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correct_index"`
}
