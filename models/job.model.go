package models

import (
	"time"

	"gorm.io/gorm"
)

// Job is an opening posted for a partner company
type Job struct {
	gorm.Model
	CompanyID          uint    `json:"company_id" gorm:"index;not null"`
	Company            Company `json:"company" gorm:"foreignKey:CompanyID"`
	Title              string  `json:"title" gorm:"not null"`
	Description        string  `json:"description" gorm:"type:text"`
	Skills             string  `json:"skills"` // comma separated skill tags
	Location           string  `json:"location"`
	SalaryMin          int64   `json:"salary_min" gorm:"default:0"`
	SalaryMax          int64   `json:"salary_max" gorm:"default:0"`
	ExperienceRequired int     `json:"experience_required" gorm:"default:0"` // years
	Status             string  `json:"status" gorm:"default:'OPEN'"`         // OPEN, CLOSED
	IsDeleted          bool    `gorm:"default:false"`
}

// JobApplication tracks a certified user's application to a job
type JobApplication struct {
	gorm.Model
	JobID      uint       `json:"job_id" gorm:"index;not null"`
	Job        Job        `json:"job" gorm:"foreignKey:JobID"`
	UserID     uint       `json:"user_id" gorm:"index;not null"`
	ResumeURL  string     `json:"resume_url"`
	CoverNote  string     `json:"cover_note" gorm:"type:text"`
	Status     string     `json:"status" gorm:"default:'APPLIED'"` // APPLIED, SHORTLISTED, REJECTED, HIRED
	ReviewedAt *time.Time `json:"reviewed_at"`
	ReviewedBy *uint      `json:"reviewed_by"`
	IsDeleted  bool       `gorm:"default:false"`
}
