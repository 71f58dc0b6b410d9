package repository

import (
	"time"

	"github.com/GBDev13/catalify-sub001/app/models"
	"gorm.io/gorm"
)

// UserRepository defines the interface for user-related database operations
type UserRepository interface {
	Create(user *models.User) error
	GetByID(id uint) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetByActivationToken(token string) (*models.User, error)
	Update(user *models.User) error
	Delete(id uint) error
}

// CompanyRepository defines the interface for company-related database operations
type CompanyRepository interface {
	Create(company *models.Company) error
	GetByID(id uint) (*models.Company, error)
	GetByOwnerID(ownerID uint) (*models.Company, error)
	GetBySlug(slug string) (*models.Company, error)
	SlugExists(slug string) (bool, error)
	Update(company *models.Company) error
}

// SubscriptionRepository defines the interface for subscription lookups and
// billing-webhook writes
type SubscriptionRepository interface {
	GetByCompanyID(companyID uint) (*models.Subscription, error)
	GetByStripeSubscriptionID(id string) (*models.Subscription, error)
	Upsert(sub *models.Subscription) error
	UpdateStatus(companyID uint, status models.SubscriptionStatus, expiresAt *time.Time) error
}

// CategoryRepository defines the interface for category-related database operations
type CategoryRepository interface {
	Create(category *models.Category) error
	GetByID(id uint) (*models.Category, error)
	GetByCompanyID(companyID uint) ([]models.Category, error)
	CountByCompanyID(companyID uint) (int64, error)
	Update(category *models.Category) error
	Delete(id uint) error
}

// ProductRepository defines the interface for product-related database operations
type ProductRepository interface {
	Create(product *models.Product) error
	GetByID(id uint) (*models.Product, error)
	GetBySlug(companyID uint, slug string) (*models.Product, error)
	GetByCompanyID(companyID uint, offset, limit int) ([]models.Product, error)
	GetVisibleByCompanyID(companyID uint) ([]models.Product, error)
	CountByCompanyID(companyID uint) (int64, error)
	CountImages(productID uint) (int64, error)
	AddImage(image *models.ProductImage) error
	DeleteImage(productID, imageID uint) error
	ReplaceStock(productID uint, entries []models.StockEntry) error
	Update(product *models.Product) error
	Delete(id uint) error
}

// ContactLinkRepository defines the interface for links-page entries
type ContactLinkRepository interface {
	Create(link *models.ContactLink) error
	GetByID(id uint) (*models.ContactLink, error)
	GetByCompanyID(companyID uint) ([]models.ContactLink, error)
	CountByCompanyID(companyID uint) (int64, error)
	Update(link *models.ContactLink) error
	Delete(id uint) error
}

// BannerRepository defines the interface for storefront banners
type BannerRepository interface {
	Create(banner *models.Banner) error
	GetByID(id uint) (*models.Banner, error)
	GetByCompanyID(companyID uint) ([]models.Banner, error)
	CountByCompanyID(companyID uint) (int64, error)
	Update(banner *models.Banner) error
	Delete(id uint) error
}

// OrderRepository defines the interface for WhatsApp checkout orders
type OrderRepository interface {
	Create(order *models.Order) error
	GetByCode(code string) (*models.Order, error)
	GetByCompanyID(companyID uint, offset, limit int) ([]models.Order, error)
	UpdateStatus(code string, status string) error
}

// Repositories struct holds all repository instances
type Repositories struct {
	User         UserRepository
	Company      CompanyRepository
	Subscription SubscriptionRepository
	Category     CategoryRepository
	Product      ProductRepository
	ContactLink  ContactLinkRepository
	Banner       BannerRepository
	Order        OrderRepository
}

// NewRepositories creates a new instance of all repositories
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		User:         NewUserRepository(db),
		Company:      NewCompanyRepository(db),
		Subscription: NewSubscriptionRepository(db),
		Category:     NewCategoryRepository(db),
		Product:      NewProductRepository(db),
		ContactLink:  NewContactLinkRepository(db),
		Banner:       NewBannerRepository(db),
		Order:        NewOrderRepository(db),
	}
}
