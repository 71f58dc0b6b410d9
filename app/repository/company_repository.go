package repository

import (
	"github.com/GBDev13/catalify-sub001/app/models"
	"gorm.io/gorm"
)

// companyRepository implements the CompanyRepository interface
type companyRepository struct {
	db *gorm.DB
}

// NewCompanyRepository creates a new company repository instance
func NewCompanyRepository(db *gorm.DB) CompanyRepository {
	return &companyRepository{db: db}
}

func (r *companyRepository) Create(company *models.Company) error {
	return r.db.Create(company).Error
}

func (r *companyRepository) GetByID(id uint) (*models.Company, error) {
	var company models.Company
	err := r.db.First(&company, id).Error
	if err != nil {
		return nil, err
	}
	return &company, nil
}

// GetByOwnerID resolves the company owned by the given user, if any.
func (r *companyRepository) GetByOwnerID(ownerID uint) (*models.Company, error) {
	var company models.Company
	err := r.db.Where("owner_id = ?", ownerID).First(&company).Error
	if err != nil {
		return nil, err
	}
	return &company, nil
}

func (r *companyRepository) GetBySlug(slug string) (*models.Company, error) {
	var company models.Company
	err := r.db.Where("slug = ?", slug).First(&company).Error
	if err != nil {
		return nil, err
	}
	return &company, nil
}

func (r *companyRepository) SlugExists(slug string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Company{}).Where("slug = ?", slug).Count(&count).Error
	return count > 0, err
}

func (r *companyRepository) Update(company *models.Company) error {
	return r.db.Save(company).Error
}
