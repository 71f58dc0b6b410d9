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
	"github.com/GBDev13/catalify-sub001/internal/pkg/storage"
	"github.com/GBDev13/catalify-sub001/internal/pkg/upload"
)

func HandleBannerList(c *fiber.Ctx) error {
	cc := companycontext.GetCompanyContext(c)
	repo := repository.GetGlobalFactory().GetBannerRepository()

	banners, err := repo.GetByCompanyID(cc.Company.ID)
	if err != nil {
		return respondInternalError(c, err)
	}

	return c.JSON(banners)
}

// HandleBannerCreate uploads a banner image. The free plan has no banner
// allowance, so the limit check rejects every create on it.
func HandleBannerCreate(c *fiber.Ctx) error {
	cc := companycontext.GetCompanyContext(c)
	repo := repository.GetGlobalFactory().GetBannerRepository()

	count, err := repo.CountByCompanyID(cc.Company.ID)
	if err != nil {
		return respondInternalError(c, err)
	}
	if err := entitlements.CheckLimit(cc.Plan(), entitlements.ResourceBanners, count); err != nil {
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

	base := fmt.Sprintf("companies/%d/banners/%s", cc.Company.ID, uuid.NewString())
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

	banner := &models.Banner{
		CompanyID: cc.Company.ID,
		ImageURL:  imageURL,
		LinkURL:   c.FormValue("link_url"),
		Position:  int(count),
	}
	if err := banner.Validate(); err != nil {
		return respondValidationError(c, err)
	}
	if err := repo.Create(banner); err != nil {
		return respondInternalError(c, err)
	}

	invalidateCatalogCache(cc.Company.Slug)

	return c.Status(fiber.StatusCreated).JSON(banner)
}

// HandleBannerUpdate edits the click-through link or ordering; the image
// itself is immutable, replace the banner to change it.
func HandleBannerUpdate(c *fiber.Ctx) error {
	cc := companycontext.GetCompanyContext(c)
	repo := repository.GetGlobalFactory().GetBannerRepository()

	banner, ok := loadCompanyBanner(c, repo, cc.Company.ID)
	if !ok {
		return nil
	}

	var req struct {
		LinkURL  *string `json:"link_url" form:"link_url"`
		Position *int    `json:"position" form:"position"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "invalid_body",
			"message": "Could not parse request body",
		})
	}

	if req.LinkURL != nil {
		banner.LinkURL = *req.LinkURL
	}
	if req.Position != nil {
		banner.Position = *req.Position
	}
	if err := banner.Validate(); err != nil {
		return respondValidationError(c, err)
	}
	if err := repo.Update(banner); err != nil {
		return respondInternalError(c, err)
	}

	invalidateCatalogCache(cc.Company.Slug)

	return c.JSON(banner)
}

func HandleBannerDelete(c *fiber.Ctx) error {
	cc := companycontext.GetCompanyContext(c)
	repo := repository.GetGlobalFactory().GetBannerRepository()

	banner, ok := loadCompanyBanner(c, repo, cc.Company.ID)
	if !ok {
		return nil
	}

	if err := repo.Delete(banner.ID); err != nil {
		return respondInternalError(c, err)
	}

	invalidateCatalogCache(cc.Company.Slug)

	return c.SendStatus(fiber.StatusNoContent)
}

func loadCompanyBanner(c *fiber.Ctx, repo repository.BannerRepository, companyID uint) (*models.Banner, bool) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		_ = respondNotFound(c, "Banner not found")
		return nil, false
	}

	banner, err := repo.GetByID(uint(id))
	if err != nil {
		if isNotFound(err) {
			_ = respondNotFound(c, "Banner not found")
		} else {
			_ = respondInternalError(c, err)
		}
		return nil, false
	}
	if banner.CompanyID != companyID {
		_ = respondNotFound(c, "Banner not found")
		return nil, false
	}

	return banner, true
}
