package course

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// QuizQuestion is a multiple-choice question attached to a topic.
// Options are a JSON array of strings; exactly one index is correct.
type QuizQuestion struct {
	gorm.Model
	TopicID      uint           `json:"topic_id" gorm:"index;not null"`
	QuestionText string         `json:"question_text" gorm:"type:text"`
	Options      datatypes.JSON `json:"options"`
	CorrectIndex int            `json:"-"`
	Explanation  string         `json:"explanation" gorm:"type:text"`
	OrderIndex   int            `json:"order_index" gorm:"default:0"`
	IsDeleted    bool           `gorm:"default:false"`
}

// QuizAttempt represents one submission of a topic quiz
type QuizAttempt struct {
	gorm.Model
	UserID        uint           `json:"user_id" gorm:"index;not null"`
	TopicID       uint           `json:"topic_id" gorm:"index;not null"`
	Answers       datatypes.JSON `json:"answers"` // question_id -> selected option index
	Score         int            `json:"score"`   // correct answers
	MaxScore      int            `json:"max_score"`
	Percent       int            `json:"percent"`
	Passed        bool           `json:"passed" gorm:"default:false"`
	AttemptNumber int            `json:"attempt_number" gorm:"default:1"`
	IsDeleted     bool           `gorm:"default:false"`
}
