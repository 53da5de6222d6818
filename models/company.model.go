package models

import "gorm.io/gorm"

// Company is a partner company whose jobs are listed on the platform
type Company struct {
	gorm.Model
	Name      string `json:"name" gorm:"not null"`
	About     string `json:"about" gorm:"type:text"`
	Website   string `json:"website"`
	LogoURL   string `json:"logo_url"`
	Industry  string `json:"industry"`
	Location  string `json:"location"`
	IsActive  bool   `json:"is_active" gorm:"default:true"`
	IsDeleted bool   `gorm:"default:false"`
}
