package models

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// ContactLink is one entry on the company's public links page.
type ContactLink struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CompanyID uint      `gorm:"not null;index" json:"company_id"`
	Title     string    `gorm:"type:varchar(100);not null" json:"title" validate:"required,min=1,max=100"`
	URL       string    `gorm:"type:varchar(255);not null" json:"url" validate:"required,url,max=255"`
	Position  int       `gorm:"default:0" json:"position"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (l *ContactLink) Validate() error {
	v := validator.New()

	return v.Struct(l)
}
