package repository

import (
	"time"

	"github.com/GBDev13/catalify-sub001/app/models"
	"gorm.io/gorm"
)

// subscriptionRepository implements the SubscriptionRepository interface
type subscriptionRepository struct {
	db *gorm.DB
}

// NewSubscriptionRepository creates a new subscription repository instance
func NewSubscriptionRepository(db *gorm.DB) SubscriptionRepository {
	return &subscriptionRepository{db: db}
}

// GetByCompanyID returns the company's current subscription. The webhook
// upserts by company so at most one row should exist; ordering by creation
// time keeps the result deterministic if historical rows ever pile up.
func (r *subscriptionRepository) GetByCompanyID(companyID uint) (*models.Subscription, error) {
	var sub models.Subscription
	err := r.db.Where("company_id = ?", companyID).Order("created_at DESC").First(&sub).Error
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

func (r *subscriptionRepository) GetByStripeSubscriptionID(id string) (*models.Subscription, error) {
	var sub models.Subscription
	err := r.db.Where("stripe_subscription_id = ?", id).First(&sub).Error
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

// Upsert writes the subscription keyed by company: an existing row for the
// company is updated in place, otherwise a new one is created.
func (r *subscriptionRepository) Upsert(sub *models.Subscription) error {
	var existing models.Subscription
	err := r.db.Where("company_id = ?", sub.CompanyID).Order("created_at DESC").First(&existing).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return r.db.Create(sub).Error
		}
		return err
	}
	sub.ID = existing.ID
	sub.CreatedAt = existing.CreatedAt
	return r.db.Save(sub).Error
}

func (r *subscriptionRepository) UpdateStatus(companyID uint, status models.SubscriptionStatus, expiresAt *time.Time) error {
	return r.db.Model(&models.Subscription{}).
		Where("company_id = ?", companyID).
		Updates(map[string]interface{}{
			"status":     status,
			"expires_at": expiresAt,
		}).Error
}
