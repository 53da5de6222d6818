package course

import "gorm.io/gorm"

// Topic is a unit of course content: a video with its transcript,
// written notes and an optional quiz, grouped into sections.
type Topic struct {
	gorm.Model
	CourseID    uint   `json:"course_id" gorm:"index;not null"`
	Section     string `json:"section" gorm:"default:'General'"`
	Title       string `json:"title"`
	VideoURL    string `json:"video_url"`
	Transcript  string `json:"transcript" gorm:"type:text"`
	Notes       string `json:"notes" gorm:"type:text"`
	OrderIndex  int    `json:"order_index" gorm:"default:0"` // Topic order within the course
	IsPublished bool   `json:"is_published" gorm:"default:false"`
	IsDeleted   bool   `gorm:"default:false"`
}

// TopicProgress tracks a user's completion of one topic.
// A topic with a quiz completes when the quiz is passed; a quiz-less
// topic completes when it is marked viewed.
type TopicProgress struct {
	gorm.Model
	UserID    uint   `json:"user_id" gorm:"index;not null"`
	CourseID  uint   `json:"course_id" gorm:"index;not null"`
	TopicID   uint   `json:"topic_id" gorm:"index;not null"`
	Status    string `json:"status" gorm:"default:'COMPLETED'"`
	IsDeleted bool   `gorm:"default:false"`
}

// VideoJob tracks a synthesis request against the hosted video API
type VideoJob struct {
	gorm.Model
	TopicID    uint   `json:"topic_id" gorm:"index;not null"`
	ProviderID string `json:"provider_id"`                     // job id returned by the video API
	Status     string `json:"status" gorm:"default:'PENDING'"` // PENDING, PROCESSING, READY, FAILED
	VideoURL   string `json:"video_url"`
	Error      string `json:"error"`
	IsDeleted  bool   `gorm:"default:false"`
}
