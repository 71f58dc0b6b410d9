package models

import (
	"time"

	"github.com/go-playground/validator/v10"
)

const (
	ORDER_STATUS_PENDING   = "pending"
	ORDER_STATUS_CONFIRMED = "confirmed"
	ORDER_STATUS_CANCELED  = "canceled"
)

// Order is a checkout recorded before the shopper is handed off to
// WhatsApp. Item names and prices are snapshots so later product edits
// do not rewrite history.
type Order struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Code       string    `gorm:"type:varchar(20);not null;uniqueIndex" json:"code"`
	CompanyID  uint      `gorm:"not null;index" json:"company_id"`
	BuyerName  string    `gorm:"type:varchar(150);not null" json:"buyer_name" validate:"required,min=2,max=150"`
	BuyerPhone string    `gorm:"type:varchar(20);not null" json:"buyer_phone" validate:"required,min=8,max=20"`
	TotalCents int64     `gorm:"not null" json:"total_cents"`
	Status     string    `gorm:"type:varchar(20);not null;default:'pending'" json:"status" validate:"oneof=pending confirmed canceled"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Items []OrderItem `gorm:"foreignKey:OrderID" json:"items"`
}

type OrderItem struct {
	ID             uint   `gorm:"primaryKey" json:"id"`
	OrderID        uint   `gorm:"not null;index" json:"order_id"`
	ProductID      uint   `gorm:"not null;index" json:"product_id"`
	ProductName    string `gorm:"type:varchar(150);not null" json:"product_name"`
	UnitPriceCents int64  `gorm:"not null" json:"unit_price_cents"`
	Quantity       int    `gorm:"not null" json:"quantity" validate:"gt=0"`
}

func (o *Order) Validate() error {
	v := validator.New()

	return v.Struct(o)
}

// ComputeTotal sums item snapshots into TotalCents.
func (o *Order) ComputeTotal() {
	var total int64
	for _, item := range o.Items {
		total += item.UnitPriceCents * int64(item.Quantity)
	}
	o.TotalCents = total
}
