package models

import (
	"time"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// Company is the tenant of the catalog. Each owner account has exactly one
// company; products, categories, banners and links all hang off it.
type Company struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	OwnerID     uint           `gorm:"not null;uniqueIndex" json:"owner_id"`
	Name        string         `gorm:"type:varchar(150);not null" json:"name" validate:"required,min=2,max=150"`
	Slug        string         `gorm:"type:varchar(100);not null;uniqueIndex" json:"slug" validate:"required,min=2,max=100"`
	Phone       string         `gorm:"type:varchar(20);not null" json:"phone" validate:"required,min=8,max=20"`
	Description string         `gorm:"type:text" json:"description" validate:"max=1000"`
	ThemeColor  string         `gorm:"type:varchar(7);default:'#6366f1'" json:"theme_color" validate:"omitempty,hexcolor"`
	LogoURL     string         `gorm:"type:varchar(255);default:null" json:"logo_url" validate:"max=255"`
	CreatedAt   time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	Owner *User `gorm:"foreignKey:OwnerID" json:"-"`
}

func (c *Company) Validate() error {
	v := validator.New()

	return v.Struct(c)
}
