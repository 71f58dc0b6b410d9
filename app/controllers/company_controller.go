package controllers

import (
	"fmt"
	"io"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/GBDev13/catalify-sub001/app/models"
	"github.com/GBDev13/catalify-sub001/app/repository"
	"github.com/GBDev13/catalify-sub001/internal/pkg/cache"
	"github.com/GBDev13/catalify-sub001/internal/pkg/companycontext"
	"github.com/GBDev13/catalify-sub001/internal/pkg/imageprocessor"
	"github.com/GBDev13/catalify-sub001/internal/pkg/shortener"
	"github.com/GBDev13/catalify-sub001/internal/pkg/storage"
	"github.com/GBDev13/catalify-sub001/internal/pkg/upload"
)

type companyRequest struct {
	Name        string `json:"name" form:"name"`
	Slug        string `json:"slug" form:"slug"`
	Phone       string `json:"phone" form:"phone"`
	Description string `json:"description" form:"description"`
	ThemeColor  string `json:"theme_color" form:"theme_color"`
}

// HandleCompanyCreate onboards the logged-in user by creating their company.
// A user owns at most one company; a second create returns a conflict.
func HandleCompanyCreate(c *fiber.Ctx) error {
	userID := companycontext.GetUserID(c)
	repos := repository.GetGlobalRepositories()

	if existing, err := repos.Company.GetByOwnerID(userID); err == nil && existing != nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error":   "company_exists",
			"message": "You already have a company",
		})
	}

	var req companyRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "invalid_body",
			"message": "Could not parse request body",
		})
	}

	slug := req.Slug
	if slug == "" {
		slug = req.Name
	}
	uniqueSlug, err := shortener.UniqueSlug(slug, repos.Company.SlugExists)
	if err != nil {
		return respondInternalError(c, err)
	}

	company := &models.Company{
		OwnerID:     userID,
		Name:        req.Name,
		Slug:        uniqueSlug,
		Phone:       req.Phone,
		Description: req.Description,
	}
	if req.ThemeColor != "" {
		company.ThemeColor = req.ThemeColor
	}
	if err := company.Validate(); err != nil {
		return respondValidationError(c, err)
	}
	if err := repos.Company.Create(company); err != nil {
		return respondInternalError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(company)
}

// HandleCompanyGet returns the company attached to the current session
func HandleCompanyGet(c *fiber.Ctx) error {
	cc := companycontext.GetCompanyContext(c)

	return c.JSON(cc.Company)
}

// HandleCompanyUpdate updates storefront settings for the current company
func HandleCompanyUpdate(c *fiber.Ctx) error {
	cc := companycontext.GetCompanyContext(c)
	repos := repository.GetGlobalRepositories()

	var req companyRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "invalid_body",
			"message": "Could not parse request body",
		})
	}

	company := cc.Company
	oldSlug := company.Slug
	if req.Name != "" {
		company.Name = req.Name
	}
	if req.Phone != "" {
		company.Phone = req.Phone
	}
	if req.Description != "" {
		company.Description = req.Description
	}
	if req.ThemeColor != "" {
		company.ThemeColor = req.ThemeColor
	}
	if req.Slug != "" && req.Slug != company.Slug {
		uniqueSlug, err := shortener.UniqueSlug(req.Slug, repos.Company.SlugExists)
		if err != nil {
			return respondInternalError(c, err)
		}
		company.Slug = uniqueSlug
	}

	if err := company.Validate(); err != nil {
		return respondValidationError(c, err)
	}
	if err := repos.Company.Update(company); err != nil {
		return respondInternalError(c, err)
	}

	invalidateCatalogCache(oldSlug)
	invalidateCatalogCache(company.Slug)

	return c.JSON(company)
}

// HandleCompanyLogoUpload stores a resized logo in S3 and saves its public URL
func HandleCompanyLogoUpload(c *fiber.Ctx) error {
	cc := companycontext.GetCompanyContext(c)
	repos := repository.GetGlobalRepositories()

	fileHeader, err := c.FormFile("logo")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "missing_file",
			"message": "A logo file is required",
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

	base := fmt.Sprintf("companies/%d/logo/%s", cc.Company.ID, uuid.NewString())
	var logoURL string
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
			logoURL = url
		}
	}

	cc.Company.LogoURL = logoURL
	if err := repos.Company.Update(cc.Company); err != nil {
		return respondInternalError(c, err)
	}

	invalidateCatalogCache(cc.Company.Slug)

	return c.JSON(fiber.Map{"logo_url": logoURL})
}

// invalidateCatalogCache drops the cached public catalog payload for a slug
func invalidateCatalogCache(slug string) {
	_ = cache.Delete(catalogCacheKey(slug))
}

func catalogCacheKey(slug string) string {
	return "catalog:" + slug
}
