package models

import (
	"time"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

type Product struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	CompanyID   uint           `gorm:"not null;index:idx_products_company_slug,priority:1" json:"company_id"`
	CategoryID  *uint          `gorm:"index" json:"category_id,omitempty"`
	Name        string         `gorm:"type:varchar(150);not null" json:"name" validate:"required,min=2,max=150"`
	Slug        string         `gorm:"type:varchar(150);not null;index:idx_products_company_slug,priority:2" json:"slug" validate:"required,max=150"`
	Description string         `gorm:"type:text" json:"description" validate:"max=2000"`
	PriceCents  int64          `gorm:"not null" json:"price_cents" validate:"gte=0"`
	PromoCents  *int64         `gorm:"default:null" json:"promo_cents,omitempty"`
	Visible     bool           `gorm:"default:true" json:"visible"`
	Highlight   bool           `gorm:"default:false" json:"highlight"`
	CreatedAt   time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	Category     *Category      `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Images       []ProductImage `gorm:"foreignKey:ProductID" json:"images"`
	StockEntries []StockEntry   `gorm:"foreignKey:ProductID" json:"stock_entries,omitempty"`
}

type ProductImage struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ProductID uint      `gorm:"not null;index" json:"product_id"`
	URL       string    `gorm:"type:varchar(255);not null" json:"url"`
	Position  int       `gorm:"default:0" json:"position"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// StockEntry tracks quantity for a product, optionally per variant
// (e.g. size or color). Quantity can go negative after reconciliation.
type StockEntry struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ProductID uint      `gorm:"not null;index" json:"product_id"`
	Variant   string    `gorm:"type:varchar(100);default:''" json:"variant"`
	Quantity  int       `gorm:"not null;default:0" json:"quantity"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (p *Product) Validate() error {
	v := validator.New()

	return v.Struct(p)
}

// HasStock derives availability at read time. A product without stock
// tracking (no entries) is always available; with entries it is available
// as long as at least one entry has a positive quantity.
func (p *Product) HasStock() bool {
	if len(p.StockEntries) == 0 {
		return true
	}
	for _, entry := range p.StockEntries {
		if entry.Quantity > 0 {
			return true
		}
	}
	return false
}

// EffectivePriceCents returns the promo price when one is set, else the
// regular price.
func (p *Product) EffectivePriceCents() int64 {
	if p.PromoCents != nil && *p.PromoCents > 0 && *p.PromoCents < p.PriceCents {
		return *p.PromoCents
	}
	return p.PriceCents
}
