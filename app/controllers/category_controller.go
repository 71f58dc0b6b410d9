package controllers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/GBDev13/catalify-sub001/app/models"
	"github.com/GBDev13/catalify-sub001/app/repository"
	"github.com/GBDev13/catalify-sub001/internal/pkg/companycontext"
	"github.com/GBDev13/catalify-sub001/internal/pkg/entitlements"
	"github.com/GBDev13/catalify-sub001/internal/pkg/shortener"
)

type categoryRequest struct {
	Name string `json:"name" form:"name"`
}

func HandleCategoryList(c *fiber.Ctx) error {
	cc := companycontext.GetCompanyContext(c)
	repo := repository.GetGlobalFactory().GetCategoryRepository()

	categories, err := repo.GetByCompanyID(cc.Company.ID)
	if err != nil {
		return respondInternalError(c, err)
	}

	return c.JSON(categories)
}

func HandleCategoryCreate(c *fiber.Ctx) error {
	cc := companycontext.GetCompanyContext(c)
	repo := repository.GetGlobalFactory().GetCategoryRepository()

	count, err := repo.CountByCompanyID(cc.Company.ID)
	if err != nil {
		return respondInternalError(c, err)
	}
	if err := entitlements.CheckLimit(cc.Plan(), entitlements.ResourceCategories, count); err != nil {
		return respondLimitExceeded(c, err)
	}

	var req categoryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "invalid_body",
			"message": "Could not parse request body",
		})
	}

	category := &models.Category{
		CompanyID: cc.Company.ID,
		Name:      req.Name,
		Slug:      shortener.Slugify(req.Name),
	}
	if err := category.Validate(); err != nil {
		return respondValidationError(c, err)
	}
	if err := repo.Create(category); err != nil {
		return respondInternalError(c, err)
	}

	invalidateCatalogCache(cc.Company.Slug)

	return c.Status(fiber.StatusCreated).JSON(category)
}

func HandleCategoryUpdate(c *fiber.Ctx) error {
	cc := companycontext.GetCompanyContext(c)
	repo := repository.GetGlobalFactory().GetCategoryRepository()

	category, ok := loadCompanyCategory(c, repo, cc.Company.ID)
	if !ok {
		return nil
	}

	var req categoryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "invalid_body",
			"message": "Could not parse request body",
		})
	}

	if req.Name != "" {
		category.Name = req.Name
		category.Slug = shortener.Slugify(req.Name)
	}
	if err := category.Validate(); err != nil {
		return respondValidationError(c, err)
	}
	if err := repo.Update(category); err != nil {
		return respondInternalError(c, err)
	}

	invalidateCatalogCache(cc.Company.Slug)

	return c.JSON(category)
}

func HandleCategoryDelete(c *fiber.Ctx) error {
	cc := companycontext.GetCompanyContext(c)
	repo := repository.GetGlobalFactory().GetCategoryRepository()

	category, ok := loadCompanyCategory(c, repo, cc.Company.ID)
	if !ok {
		return nil
	}

	// products in this category are kept and become uncategorized
	if err := repo.Delete(category.ID); err != nil {
		return respondInternalError(c, err)
	}

	invalidateCatalogCache(cc.Company.Slug)

	return c.SendStatus(fiber.StatusNoContent)
}

// loadCompanyCategory resolves the :id param and enforces tenant ownership.
// When it returns false the error response has already been written.
func loadCompanyCategory(c *fiber.Ctx, repo repository.CategoryRepository, companyID uint) (*models.Category, bool) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		_ = respondNotFound(c, "Category not found")
		return nil, false
	}

	category, err := repo.GetByID(uint(id))
	if err != nil {
		if isNotFound(err) {
			_ = respondNotFound(c, "Category not found")
		} else {
			_ = respondInternalError(c, err)
		}
		return nil, false
	}
	if category.CompanyID != companyID {
		_ = respondNotFound(c, "Category not found")
		return nil, false
	}

	return category, true
}
