package repository

import (
	"github.com/GBDev13/catalify-sub001/app/models"
	"gorm.io/gorm"
)

// orderRepository implements the OrderRepository interface
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository creates a new order repository instance
func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

// Create stores the order together with its item snapshots.
func (r *orderRepository) Create(order *models.Order) error {
	return r.db.Create(order).Error
}

func (r *orderRepository) GetByCode(code string) (*models.Order, error) {
	var order models.Order
	err := r.db.Preload("Items").Where("code = ?", code).First(&order).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) GetByCompanyID(companyID uint, offset, limit int) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Preload("Items").Where("company_id = ?", companyID).
		Order("created_at DESC").Offset(offset).Limit(limit).Find(&orders).Error
	return orders, err
}

func (r *orderRepository) UpdateStatus(code string, status string) error {
	return r.db.Model(&models.Order{}).Where("code = ?", code).Update("status", status).Error
}
