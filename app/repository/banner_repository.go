package repository

import (
	"github.com/GBDev13/catalify-sub001/app/models"
	"gorm.io/gorm"
)

// bannerRepository implements the BannerRepository interface
type bannerRepository struct {
	db *gorm.DB
}

// NewBannerRepository creates a new banner repository instance
func NewBannerRepository(db *gorm.DB) BannerRepository {
	return &bannerRepository{db: db}
}

func (r *bannerRepository) Create(banner *models.Banner) error {
	return r.db.Create(banner).Error
}

func (r *bannerRepository) GetByID(id uint) (*models.Banner, error) {
	var banner models.Banner
	err := r.db.First(&banner, id).Error
	if err != nil {
		return nil, err
	}
	return &banner, nil
}

func (r *bannerRepository) GetByCompanyID(companyID uint) ([]models.Banner, error) {
	var banners []models.Banner
	err := r.db.Where("company_id = ?", companyID).Order("position ASC, id ASC").Find(&banners).Error
	return banners, err
}

// CountByCompanyID feeds the plan-limit check before a create.
func (r *bannerRepository) CountByCompanyID(companyID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Banner{}).Where("company_id = ?", companyID).Count(&count).Error
	return count, err
}

func (r *bannerRepository) Update(banner *models.Banner) error {
	return r.db.Save(banner).Error
}

func (r *bannerRepository) Delete(id uint) error {
	return r.db.Delete(&models.Banner{}, id).Error
}
