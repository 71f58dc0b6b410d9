package controllers

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/GBDev13/catalify-sub001/app/models"
	"github.com/GBDev13/catalify-sub001/app/repository"
	"github.com/GBDev13/catalify-sub001/internal/pkg/companycontext"
	"github.com/GBDev13/catalify-sub001/internal/pkg/entitlements"
	"github.com/GBDev13/catalify-sub001/internal/pkg/imageprocessor"
	"github.com/GBDev13/catalify-sub001/internal/pkg/shortener"
	"github.com/GBDev13/catalify-sub001/internal/pkg/storage"
	"github.com/GBDev13/catalify-sub001/internal/pkg/upload"
)

type productRequest struct {
	Name        string `json:"name" form:"name"`
	Description string `json:"description" form:"description"`
	CategoryID  *uint  `json:"category_id" form:"category_id"`
	PriceCents  int64  `json:"price_cents" form:"price_cents"`
	PromoCents  *int64 `json:"promo_cents" form:"promo_cents"`
	Visible     *bool  `json:"visible" form:"visible"`
	Highlight   *bool  `json:"highlight" form:"highlight"`
}

type stockRequest struct {
	Entries []stockEntryRequest `json:"entries"`
}

type stockEntryRequest struct {
	Variant  string `json:"variant"`
	Quantity int    `json:"quantity"`
}

func HandleProductList(c *fiber.Ctx) error {
	cc := companycontext.GetCompanyContext(c)
	repo := repository.GetGlobalFactory().GetProductRepository()

	page, _ := strconv.Atoi(c.Query("page", "1"))
	if page < 1 {
		page = 1
	}
	perPage, _ := strconv.Atoi(c.Query("per_page", "20"))
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}

	products, err := repo.GetByCompanyID(cc.Company.ID, (page-1)*perPage, perPage)
	if err != nil {
		return respondInternalError(c, err)
	}
	total, err := repo.CountByCompanyID(cc.Company.ID)
	if err != nil {
		return respondInternalError(c, err)
	}

	return c.JSON(fiber.Map{
		"products": products,
		"total":    total,
		"page":     page,
		"per_page": perPage,
	})
}

func HandleProductGet(c *fiber.Ctx) error {
	cc := companycontext.GetCompanyContext(c)
	repo := repository.GetGlobalFactory().GetProductRepository()

	product, ok := loadCompanyProduct(c, repo, cc.Company.ID)
	if !ok {
		return nil
	}

	return c.JSON(product)
}

func HandleProductCreate(c *fiber.Ctx) error {
	cc := companycontext.GetCompanyContext(c)
	repo := repository.GetGlobalFactory().GetProductRepository()

	count, err := repo.CountByCompanyID(cc.Company.ID)
	if err != nil {
		return respondInternalError(c, err)
	}
	if err := entitlements.CheckLimit(cc.Plan(), entitlements.ResourceProducts, count); err != nil {
		return respondLimitExceeded(c, err)
	}

	var req productRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "invalid_body",
			"message": "Could not parse request body",
		})
	}

	if ok := validateCategoryOwnership(c, req.CategoryID, cc.Company.ID); !ok {
		return nil
	}

	product := &models.Product{
		CompanyID:   cc.Company.ID,
		CategoryID:  req.CategoryID,
		Name:        req.Name,
		Slug:        shortener.Slugify(req.Name),
		Description: req.Description,
		PriceCents:  req.PriceCents,
		PromoCents:  req.PromoCents,
		Visible:     true,
	}
	if req.Visible != nil {
		product.Visible = *req.Visible
	}
	if req.Highlight != nil {
		product.Highlight = *req.Highlight
	}
	if err := product.Validate(); err != nil {
		return respondValidationError(c, err)
	}
	if err := repo.Create(product); err != nil {
		return respondInternalError(c, err)
	}

	invalidateCatalogCache(cc.Company.Slug)

	return c.Status(fiber.StatusCreated).JSON(product)
}

func HandleProductUpdate(c *fiber.Ctx) error {
	cc := companycontext.GetCompanyContext(c)
	repo := repository.GetGlobalFactory().GetProductRepository()

	product, ok := loadCompanyProduct(c, repo, cc.Company.ID)
	if !ok {
		return nil
	}

	var req productRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "invalid_body",
			"message": "Could not parse request body",
		})
	}

	if req.CategoryID != nil {
		if ok := validateCategoryOwnership(c, req.CategoryID, cc.Company.ID); !ok {
			return nil
		}
	}
	applyProductUpdate(product, req)

	if err := product.Validate(); err != nil {
		return respondValidationError(c, err)
	}
	if err := repo.Update(product); err != nil {
		return respondInternalError(c, err)
	}

	invalidateCatalogCache(cc.Company.Slug)

	return c.JSON(product)
}

// applyProductUpdate merges an update request into a product. Omitted
// fields stay unchanged. A promo_cents of zero or less clears the
// promotional price.
func applyProductUpdate(product *models.Product, req productRequest) {
	if req.CategoryID != nil {
		product.CategoryID = req.CategoryID
	}
	if req.Name != "" {
		product.Name = req.Name
		product.Slug = shortener.Slugify(req.Name)
	}
	if req.Description != "" {
		product.Description = req.Description
	}
	if req.PriceCents > 0 {
		product.PriceCents = req.PriceCents
	}
	if req.PromoCents != nil {
		if *req.PromoCents > 0 {
			product.PromoCents = req.PromoCents
		} else {
			product.PromoCents = nil
		}
	}
	if req.Visible != nil {
		product.Visible = *req.Visible
	}
	if req.Highlight != nil {
		product.Highlight = *req.Highlight
	}
}

func HandleProductDelete(c *fiber.Ctx) error {
	cc := companycontext.GetCompanyContext(c)
	repo := repository.GetGlobalFactory().GetProductRepository()

	product, ok := loadCompanyProduct(c, repo, cc.Company.ID)
	if !ok {
		return nil
	}

	if err := repo.Delete(product.ID); err != nil {
		return respondInternalError(c, err)
	}

	invalidateCatalogCache(cc.Company.Slug)

	return c.SendStatus(fiber.StatusNoContent)
}

// HandleProductImageUpload adds an image to a product, capped per plan.
// Each upload stores a display rendition plus a webp thumbnail in S3.
func HandleProductImageUpload(c *fiber.Ctx) error {
	cc := companycontext.GetCompanyContext(c)
	repo := repository.GetGlobalFactory().GetProductRepository()

	product, ok := loadCompanyProduct(c, repo, cc.Company.ID)
	if !ok {
		return nil
	}

	count, err := repo.CountImages(product.ID)
	if err != nil {
		return respondInternalError(c, err)
	}
	if err := entitlements.CheckLimit(cc.Plan(), entitlements.ResourceProductImages, count); err != nil {
		return respondLimitExceeded(c, err)
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "missing_file",
			"message": "An image file is required",
		})
	}

	f, err := fileHeader.Open()
	if err != nil {
		return respondInternalError(c, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return respondInternalError(c, err)
	}

	head := data
	if len(head) > 512 {
		head = head[:512]
	}
	if _, err := upload.ValidateImageBySniff(fileHeader.Filename, head); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error":   "invalid_image",
			"message": err.Error(),
		})
	}

	variants, err := imageprocessor.Process(data)
	if err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error":   "invalid_image",
			"message": "Could not process the uploaded image",
		})
	}

	client, err := storage.GetClient()
	if err != nil {
		return respondInternalError(c, err)
	}

	base := fmt.Sprintf("companies/%d/products/%d/%s", cc.Company.ID, product.ID, uuid.NewString())
	var imageURL string
	for _, v := range variants {
		ext := ".jpg"
		if strings.Contains(v.ContentType, "webp") {
			ext = ".webp"
		}
		key := base + v.Suffix + ext
		url, err := client.UploadBytes(c.Context(), key, v.Data, v.ContentType)
		if err != nil {
			return respondInternalError(c, err)
		}
		if v.Suffix == "" {
			imageURL = url
		}
	}

	image := &models.ProductImage{
		ProductID: product.ID,
		URL:       imageURL,
		Position:  int(count),
	}
	if err := repo.AddImage(image); err != nil {
		return respondInternalError(c, err)
	}

	invalidateCatalogCache(cc.Company.Slug)

	return c.Status(fiber.StatusCreated).JSON(image)
}

func HandleProductImageDelete(c *fiber.Ctx) error {
	cc := companycontext.GetCompanyContext(c)
	repo := repository.GetGlobalFactory().GetProductRepository()

	product, ok := loadCompanyProduct(c, repo, cc.Company.ID)
	if !ok {
		return nil
	}

	imageID, err := strconv.ParseUint(c.Params("imageID"), 10, 32)
	if err != nil {
		return respondNotFound(c, "Image not found")
	}

	if err := repo.DeleteImage(product.ID, uint(imageID)); err != nil {
		if isNotFound(err) {
			return respondNotFound(c, "Image not found")
		}
		return respondInternalError(c, err)
	}

	invalidateCatalogCache(cc.Company.Slug)

	return c.SendStatus(fiber.StatusNoContent)
}

// HandleProductStockReplace swaps the full set of stock entries for a product.
// An empty list disables stock tracking, which reads as always in stock.
func HandleProductStockReplace(c *fiber.Ctx) error {
	cc := companycontext.GetCompanyContext(c)
	repo := repository.GetGlobalFactory().GetProductRepository()

	product, ok := loadCompanyProduct(c, repo, cc.Company.ID)
	if !ok {
		return nil
	}

	var req stockRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "invalid_body",
			"message": "Could not parse request body",
		})
	}

	entries := make([]models.StockEntry, 0, len(req.Entries))
	for _, e := range req.Entries {
		entries = append(entries, models.StockEntry{
			ProductID: product.ID,
			Variant:   e.Variant,
			Quantity:  e.Quantity,
		})
	}

	if err := repo.ReplaceStock(product.ID, entries); err != nil {
		return respondInternalError(c, err)
	}

	invalidateCatalogCache(cc.Company.Slug)

	product, err := repo.GetByID(product.ID)
	if err != nil {
		return respondInternalError(c, err)
	}

	return c.JSON(fiber.Map{
		"stock_entries": product.StockEntries,
		"has_stock":     product.HasStock(),
	})
}

// validateCategoryOwnership rejects category ids belonging to another tenant.
// When it returns false the error response has already been written.
func validateCategoryOwnership(c *fiber.Ctx, categoryID *uint, companyID uint) bool {
	if categoryID == nil {
		return true
	}

	catRepo := repository.GetGlobalFactory().GetCategoryRepository()
	category, err := catRepo.GetByID(*categoryID)
	if err != nil || category.CompanyID != companyID {
		_ = c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error":   "invalid_category",
			"message": "Category does not exist",
		})
		return false
	}

	return true
}

// loadCompanyProduct resolves the :id param and enforces tenant ownership.
// When it returns false the error response has already been written.
func loadCompanyProduct(c *fiber.Ctx, repo repository.ProductRepository, companyID uint) (*models.Product, bool) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		_ = respondNotFound(c, "Product not found")
		return nil, false
	}

	product, err := repo.GetByID(uint(id))
	if err != nil {
		if isNotFound(err) {
			_ = respondNotFound(c, "Product not found")
		} else {
			_ = respondInternalError(c, err)
		}
		return nil, false
	}
	if product.CompanyID != companyID {
		_ = respondNotFound(c, "Product not found")
		return nil, false
	}

	return product, true
}
