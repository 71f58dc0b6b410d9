package controllers

import (
	"encoding/json"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/GBDev13/catalify-sub001/app/models"
	"github.com/GBDev13/catalify-sub001/app/repository"
	"github.com/GBDev13/catalify-sub001/internal/pkg/cache"
)

// catalogCacheTTL bounds staleness of the public storefront payload.
const catalogCacheTTL = 60 * time.Second

type catalogCompany struct {
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Phone       string `json:"phone"`
	Description string `json:"description"`
	ThemeColor  string `json:"theme_color"`
	LogoURL     string `json:"logo_url,omitempty"`
}

type catalogProduct struct {
	ID             uint                  `json:"id"`
	Name           string                `json:"name"`
	Slug           string                `json:"slug"`
	Description    string                `json:"description"`
	PriceCents     int64                 `json:"price_cents"`
	PromoCents     *int64                `json:"promo_cents,omitempty"`
	EffectiveCents int64                 `json:"effective_cents"`
	Highlight      bool                  `json:"highlight"`
	HasStock       bool                  `json:"has_stock"`
	CategoryID     *uint                 `json:"category_id,omitempty"`
	Images         []models.ProductImage `json:"images"`
}

type catalogPayload struct {
	Company    catalogCompany       `json:"company"`
	Categories []models.Category    `json:"categories"`
	Products   []catalogProduct     `json:"products"`
	Banners    []models.Banner      `json:"banners"`
	Links      []models.ContactLink `json:"links"`
}

// HandleCatalogAPI serves the public storefront as JSON. The payload is
// cached in Redis per slug and invalidated on owner writes.
func HandleCatalogAPI(c *fiber.Ctx) error {
	slug := c.Params("slug")

	if cached, err := cache.Get(catalogCacheKey(slug)); err == nil && cached != "" {
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		return c.SendString(cached)
	}

	payload, ok := buildCatalogPayload(c, slug)
	if !ok {
		return nil
	}

	if raw, err := json.Marshal(payload); err == nil {
		_ = cache.Set(catalogCacheKey(slug), string(raw), catalogCacheTTL)
	}

	return c.JSON(payload)
}

// HandleCatalogPage renders the public storefront
func HandleCatalogPage(c *fiber.Ctx) error {
	slug := c.Params("slug")

	payload, ok := buildCatalogPayload(c, slug)
	if !ok {
		return nil
	}

	return c.Render("store", fiber.Map{
		"Company":    payload.Company,
		"Categories": payload.Categories,
		"Products":   payload.Products,
		"Banners":    payload.Banners,
	})
}

// HandleCatalogProduct serves one visible product of a store as JSON
func HandleCatalogProduct(c *fiber.Ctx) error {
	repos := repository.GetGlobalRepositories()

	company, err := repos.Company.GetBySlug(c.Params("slug"))
	if err != nil {
		if isNotFound(err) {
			return respondNotFound(c, "Store not found")
		}
		return respondInternalError(c, err)
	}

	product, err := repos.Product.GetBySlug(company.ID, c.Params("productSlug"))
	if err != nil || !product.Visible {
		if err != nil && !isNotFound(err) {
			return respondInternalError(c, err)
		}
		return respondNotFound(c, "Product not found")
	}

	return c.JSON(catalogProduct{
		ID:             product.ID,
		Name:           product.Name,
		Slug:           product.Slug,
		Description:    product.Description,
		PriceCents:     product.PriceCents,
		PromoCents:     product.PromoCents,
		EffectiveCents: product.EffectivePriceCents(),
		Highlight:      product.Highlight,
		HasStock:       product.HasStock(),
		CategoryID:     product.CategoryID,
		Images:         product.Images,
	})
}

// HandleLinksPage renders the public links page
func HandleLinksPage(c *fiber.Ctx) error {
	slug := c.Params("slug")
	repos := repository.GetGlobalRepositories()

	company, err := repos.Company.GetBySlug(slug)
	if err != nil {
		if isNotFound(err) {
			return respondNotFound(c, "Store not found")
		}
		return respondInternalError(c, err)
	}

	links, err := repos.ContactLink.GetByCompanyID(company.ID)
	if err != nil {
		return respondInternalError(c, err)
	}

	return c.Render("links", fiber.Map{
		"Company": company,
		"Links":   links,
	})
}

// buildCatalogPayload assembles the public view of a store. Hidden products
// and raw stock entries never leave the owner API.
func buildCatalogPayload(c *fiber.Ctx, slug string) (*catalogPayload, bool) {
	repos := repository.GetGlobalRepositories()

	company, err := repos.Company.GetBySlug(slug)
	if err != nil {
		if isNotFound(err) {
			_ = respondNotFound(c, "Store not found")
		} else {
			_ = respondInternalError(c, err)
		}
		return nil, false
	}

	categories, err := repos.Category.GetByCompanyID(company.ID)
	if err != nil {
		_ = respondInternalError(c, err)
		return nil, false
	}

	products, err := repos.Product.GetVisibleByCompanyID(company.ID)
	if err != nil {
		_ = respondInternalError(c, err)
		return nil, false
	}

	banners, err := repos.Banner.GetByCompanyID(company.ID)
	if err != nil {
		_ = respondInternalError(c, err)
		return nil, false
	}

	links, err := repos.ContactLink.GetByCompanyID(company.ID)
	if err != nil {
		_ = respondInternalError(c, err)
		return nil, false
	}

	publicProducts := make([]catalogProduct, 0, len(products))
	for i := range products {
		p := &products[i]
		publicProducts = append(publicProducts, catalogProduct{
			ID:             p.ID,
			Name:           p.Name,
			Slug:           p.Slug,
			Description:    p.Description,
			PriceCents:     p.PriceCents,
			PromoCents:     p.PromoCents,
			EffectiveCents: p.EffectivePriceCents(),
			Highlight:      p.Highlight,
			HasStock:       p.HasStock(),
			CategoryID:     p.CategoryID,
			Images:         p.Images,
		})
	}

	return &catalogPayload{
		Company: catalogCompany{
			Name:        company.Name,
			Slug:        company.Slug,
			Phone:       company.Phone,
			Description: company.Description,
			ThemeColor:  company.ThemeColor,
			LogoURL:     company.LogoURL,
		},
		Categories: categories,
		Products:   publicProducts,
		Banners:    banners,
		Links:      links,
	}, true
}
