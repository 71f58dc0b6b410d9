package models

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// Banner is a promotional image shown on top of the storefront. Only
// premium companies can have banners.
type Banner struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CompanyID uint      `gorm:"not null;index" json:"company_id"`
	ImageURL  string    `gorm:"type:varchar(255);not null" json:"image_url" validate:"required,max=255"`
	LinkURL   string    `gorm:"type:varchar(255);default:null" json:"link_url" validate:"omitempty,url,max=255"`
	Position  int       `gorm:"default:0" json:"position"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (b *Banner) Validate() error {
	v := validator.New()

	return v.Struct(b)
}
