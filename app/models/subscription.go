package models

import "time"

// SubscriptionStatus is a closed enum. EXPIRED is only ever written by the
// billing webhook once the expiry timestamp elapses; application code reads
// statuses but never invents new ones.
type SubscriptionStatus string

const (
	SubscriptionStatusActive    SubscriptionStatus = "ACTIVE"
	SubscriptionStatusCanceled  SubscriptionStatus = "CANCELED"
	SubscriptionStatusCanceling SubscriptionStatus = "CANCELING"
	SubscriptionStatusExpired   SubscriptionStatus = "EXPIRED"
)

// Subscription mirrors the payment provider state for a company. A company
// has at most one current row; the billing webhook upserts by company ID.
type Subscription struct {
	ID                   uint               `gorm:"primaryKey" json:"id"`
	CompanyID            uint               `gorm:"not null;index" json:"company_id"`
	Status               SubscriptionStatus `gorm:"type:varchar(20);not null;default:'ACTIVE';index" json:"status"`
	ExpiresAt            *time.Time         `gorm:"type:timestamp;default:null" json:"expires_at,omitempty"`
	StripeCustomerID     string             `gorm:"type:varchar(191);index" json:"-"`
	StripeSubscriptionID string             `gorm:"type:varchar(191);uniqueIndex" json:"-"`
	CreatedAt            time.Time          `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt            time.Time          `gorm:"autoUpdateTime" json:"updated_at"`

	Company *Company `gorm:"foreignKey:CompanyID" json:"-"`
}

// IsTerminal reports whether the subscription can never grant entitlements
// again without a new purchase.
func (s *Subscription) IsTerminal() bool {
	switch s.Status {
	case SubscriptionStatusCanceled, SubscriptionStatusExpired:
		return true
	case SubscriptionStatusActive, SubscriptionStatusCanceling:
		return false
	}
	return false
}
