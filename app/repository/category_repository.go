package repository

import (
	"github.com/GBDev13/catalify-sub001/app/models"
	"gorm.io/gorm"
)

// categoryRepository implements the CategoryRepository interface
type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new category repository instance
func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) Create(category *models.Category) error {
	return r.db.Create(category).Error
}

func (r *categoryRepository) GetByID(id uint) (*models.Category, error) {
	var category models.Category
	err := r.db.First(&category, id).Error
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) GetByCompanyID(companyID uint) ([]models.Category, error) {
	var categories []models.Category
	err := r.db.Where("company_id = ?", companyID).Order("name ASC").Find(&categories).Error
	return categories, err
}

// CountByCompanyID feeds the plan-limit check before a create.
func (r *categoryRepository) CountByCompanyID(companyID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Category{}).Where("company_id = ?", companyID).Count(&count).Error
	return count, err
}

func (r *categoryRepository) Update(category *models.Category) error {
	return r.db.Save(category).Error
}

func (r *categoryRepository) Delete(id uint) error {
	// products keep existing but lose their category reference
	if err := r.db.Model(&models.Product{}).Where("category_id = ?", id).Update("category_id", nil).Error; err != nil {
		return err
	}
	return r.db.Delete(&models.Category{}, id).Error
}
