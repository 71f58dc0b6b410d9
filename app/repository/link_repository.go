package repository

import (
	"github.com/GBDev13/catalify-sub001/app/models"
	"gorm.io/gorm"
)

// contactLinkRepository implements the ContactLinkRepository interface
type contactLinkRepository struct {
	db *gorm.DB
}

// NewContactLinkRepository creates a new contact link repository instance
func NewContactLinkRepository(db *gorm.DB) ContactLinkRepository {
	return &contactLinkRepository{db: db}
}

func (r *contactLinkRepository) Create(link *models.ContactLink) error {
	return r.db.Create(link).Error
}

func (r *contactLinkRepository) GetByID(id uint) (*models.ContactLink, error) {
	var link models.ContactLink
	err := r.db.First(&link, id).Error
	if err != nil {
		return nil, err
	}
	return &link, nil
}

func (r *contactLinkRepository) GetByCompanyID(companyID uint) ([]models.ContactLink, error) {
	var links []models.ContactLink
	err := r.db.Where("company_id = ?", companyID).Order("position ASC, id ASC").Find(&links).Error
	return links, err
}

// CountByCompanyID feeds the plan-limit check before a create.
func (r *contactLinkRepository) CountByCompanyID(companyID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.ContactLink{}).Where("company_id = ?", companyID).Count(&count).Error
	return count, err
}

func (r *contactLinkRepository) Update(link *models.ContactLink) error {
	return r.db.Save(link).Error
}

func (r *contactLinkRepository) Delete(id uint) error {
	return r.db.Delete(&models.ContactLink{}, id).Error
}
