package course

import (
	"time"

	"gorm.io/gorm"
)

// Certificate levels, derived from the final exam score
const (
	LevelBronze   = "BRONZE"
	LevelSilver   = "SILVER"
	LevelGold     = "GOLD"
	LevelPlatinum = "PLATINUM"
)

// LevelForScore maps an exam percentage to a certificate level.
// Callers must only pass passing scores.
func LevelForScore(percent int) string {
	switch {
	case percent >= 95:
		return LevelPlatinum
	case percent >= 85:
		return LevelGold
	case percent >= 70:
		return LevelSilver
	default:
		return LevelBronze
	}
}

// Certificate represents an issued credential for a passed final exam
type Certificate struct {
	gorm.Model
	UserID            uint      `json:"user_id" gorm:"index;not null"`
	CourseID          uint      `json:"course_id" gorm:"index;not null"`
	ExamScheduleID    uint      `json:"exam_schedule_id" gorm:"index;not null"`
	CertificateNumber string    `json:"certificate_number" gorm:"unique"`
	Level             string    `json:"level"`
	Score             int       `json:"score"` // exam percentage at issue time
	IssuedAt          time.Time `json:"issued_at"`
	IsRevoked         bool      `json:"is_revoked" gorm:"default:false"`
	IsDeleted         bool      `gorm:"default:false"`
}
