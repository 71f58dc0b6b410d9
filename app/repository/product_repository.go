package repository

import (
	"github.com/GBDev13/catalify-sub001/app/models"
	"gorm.io/gorm"
)

// productRepository implements the ProductRepository interface
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository creates a new product repository instance
func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) Create(product *models.Product) error {
	return r.db.Create(product).Error
}

func (r *productRepository) GetByID(id uint) (*models.Product, error) {
	var product models.Product
	err := r.db.Preload("Images").Preload("StockEntries").Preload("Category").First(&product, id).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) GetBySlug(companyID uint, slug string) (*models.Product, error) {
	var product models.Product
	err := r.db.Preload("Images").Preload("StockEntries").Preload("Category").
		Where("company_id = ? AND slug = ?", companyID, slug).First(&product).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) GetByCompanyID(companyID uint, offset, limit int) ([]models.Product, error) {
	var products []models.Product
	err := r.db.Preload("Images").Preload("StockEntries").Preload("Category").
		Where("company_id = ?", companyID).
		Order("created_at DESC").Offset(offset).Limit(limit).Find(&products).Error
	return products, err
}

// GetVisibleByCompanyID returns the storefront product list with stock
// entries preloaded so HasStock can be derived without extra queries.
func (r *productRepository) GetVisibleByCompanyID(companyID uint) ([]models.Product, error) {
	var products []models.Product
	err := r.db.Preload("Images").Preload("StockEntries").Preload("Category").
		Where("company_id = ? AND visible = ?", companyID, true).
		Order("highlight DESC, created_at DESC").Find(&products).Error
	return products, err
}

// CountByCompanyID feeds the plan-limit check before a create.
func (r *productRepository) CountByCompanyID(companyID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Product{}).Where("company_id = ?", companyID).Count(&count).Error
	return count, err
}

// CountImages feeds the per-product image cap check.
func (r *productRepository) CountImages(productID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.ProductImage{}).Where("product_id = ?", productID).Count(&count).Error
	return count, err
}

func (r *productRepository) AddImage(image *models.ProductImage) error {
	return r.db.Create(image).Error
}

func (r *productRepository) DeleteImage(productID, imageID uint) error {
	result := r.db.Where("product_id = ?", productID).Delete(&models.ProductImage{}, imageID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ReplaceStock swaps the full set of stock entries in one transaction.
func (r *productRepository) ReplaceStock(productID uint, entries []models.StockEntry) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("product_id = ?", productID).Delete(&models.StockEntry{}).Error; err != nil {
			return err
		}
		for i := range entries {
			entries[i].ID = 0
			entries[i].ProductID = productID
		}
		if len(entries) == 0 {
			return nil
		}
		return tx.Create(&entries).Error
	})
}

func (r *productRepository) Update(product *models.Product) error {
	return r.db.Save(product).Error
}

func (r *productRepository) Delete(id uint) error {
	return r.db.Delete(&models.Product{}, id).Error
}
