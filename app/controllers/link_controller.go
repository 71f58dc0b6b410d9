package controllers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/GBDev13/catalify-sub001/app/models"
	"github.com/GBDev13/catalify-sub001/app/repository"
	"github.com/GBDev13/catalify-sub001/internal/pkg/companycontext"
	"github.com/GBDev13/catalify-sub001/internal/pkg/entitlements"
)

type linkRequest struct {
	Title    string `json:"title" form:"title"`
	URL      string `json:"url" form:"url"`
	Position *int   `json:"position" form:"position"`
}

func HandleLinkList(c *fiber.Ctx) error {
	cc := companycontext.GetCompanyContext(c)
	repo := repository.GetGlobalFactory().GetContactLinkRepository()

	links, err := repo.GetByCompanyID(cc.Company.ID)
	if err != nil {
		return respondInternalError(c, err)
	}

	return c.JSON(links)
}

func HandleLinkCreate(c *fiber.Ctx) error {
	cc := companycontext.GetCompanyContext(c)
	repo := repository.GetGlobalFactory().GetContactLinkRepository()

	count, err := repo.CountByCompanyID(cc.Company.ID)
	if err != nil {
		return respondInternalError(c, err)
	}
	if err := entitlements.CheckLimit(cc.Plan(), entitlements.ResourceContactLinks, count); err != nil {
		return respondLimitExceeded(c, err)
	}

	var req linkRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "invalid_body",
			"message": "Could not parse request body",
		})
	}

	link := &models.ContactLink{
		CompanyID: cc.Company.ID,
		Title:     req.Title,
		URL:       req.URL,
		Position:  int(count),
	}
	if req.Position != nil {
		link.Position = *req.Position
	}
	if err := link.Validate(); err != nil {
		return respondValidationError(c, err)
	}
	if err := repo.Create(link); err != nil {
		return respondInternalError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(link)
}

func HandleLinkUpdate(c *fiber.Ctx) error {
	cc := companycontext.GetCompanyContext(c)
	repo := repository.GetGlobalFactory().GetContactLinkRepository()

	link, ok := loadCompanyLink(c, repo, cc.Company.ID)
	if !ok {
		return nil
	}

	var req linkRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "invalid_body",
			"message": "Could not parse request body",
		})
	}

	if req.Title != "" {
		link.Title = req.Title
	}
	if req.URL != "" {
		link.URL = req.URL
	}
	if req.Position != nil {
		link.Position = *req.Position
	}
	if err := link.Validate(); err != nil {
		return respondValidationError(c, err)
	}
	if err := repo.Update(link); err != nil {
		return respondInternalError(c, err)
	}

	return c.JSON(link)
}

func HandleLinkDelete(c *fiber.Ctx) error {
	cc := companycontext.GetCompanyContext(c)
	repo := repository.GetGlobalFactory().GetContactLinkRepository()

	link, ok := loadCompanyLink(c, repo, cc.Company.ID)
	if !ok {
		return nil
	}

	if err := repo.Delete(link.ID); err != nil {
		return respondInternalError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func loadCompanyLink(c *fiber.Ctx, repo repository.ContactLinkRepository, companyID uint) (*models.ContactLink, bool) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		_ = respondNotFound(c, "Link not found")
		return nil, false
	}

	link, err := repo.GetByID(uint(id))
	if err != nil {
		if isNotFound(err) {
			_ = respondNotFound(c, "Link not found")
		} else {
			_ = respondInternalError(c, err)
		}
		return nil, false
	}
	if link.CompanyID != companyID {
		_ = respondNotFound(c, "Link not found")
		return nil, false
	}

	return link, true
}
