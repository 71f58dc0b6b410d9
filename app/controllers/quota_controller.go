package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/GBDev13/catalify-sub001/app/repository"
	"github.com/GBDev13/catalify-sub001/internal/pkg/companycontext"
	"github.com/GBDev13/catalify-sub001/internal/pkg/entitlements"
)

// HandleAccountQuota reports plan caps and current usage so the dashboard
// can show limit bars. Unlimited caps serialize as null.
func HandleAccountQuota(c *fiber.Ctx) error {
	cc := companycontext.GetCompanyContext(c)
	factory := repository.GetGlobalFactory()
	plan := cc.Plan()

	categories, err := factory.GetCategoryRepository().CountByCompanyID(cc.Company.ID)
	if err != nil {
		return respondInternalError(c, err)
	}
	products, err := factory.GetProductRepository().CountByCompanyID(cc.Company.ID)
	if err != nil {
		return respondInternalError(c, err)
	}
	links, err := factory.GetContactLinkRepository().CountByCompanyID(cc.Company.ID)
	if err != nil {
		return respondInternalError(c, err)
	}
	banners, err := factory.GetBannerRepository().CountByCompanyID(cc.Company.ID)
	if err != nil {
		return respondInternalError(c, err)
	}

	resp := fiber.Map{
		"plan": string(plan),
		"resources": fiber.Map{
			string(entitlements.ResourceCategories):   quotaEntry(plan, entitlements.ResourceCategories, categories),
			string(entitlements.ResourceProducts):     quotaEntry(plan, entitlements.ResourceProducts, products),
			string(entitlements.ResourceContactLinks): quotaEntry(plan, entitlements.ResourceContactLinks, links),
			string(entitlements.ResourceBanners):      quotaEntry(plan, entitlements.ResourceBanners, banners),
			// the image cap applies per product, usage is not aggregated
			string(entitlements.ResourceProductImages): fiber.Map{
				"limit": limitOrNil(entitlements.LimitFor(plan, entitlements.ResourceProductImages)),
			},
		},
	}

	if cc.Subscription != nil {
		resp["subscription"] = fiber.Map{
			"status":     string(cc.Subscription.Status),
			"expires_at": formatTimePtr(cc.Subscription.ExpiresAt),
		}
	}

	return c.JSON(resp)
}

func quotaEntry(plan entitlements.Plan, resource entitlements.Resource, used int64) fiber.Map {
	limit := entitlements.LimitFor(plan, resource)
	entry := fiber.Map{
		"limit": limitOrNil(limit),
		"used":  used,
	}
	if limit != entitlements.Unlimited {
		remaining := int64(limit) - used
		if remaining < 0 {
			remaining = 0
		}
		entry["remaining"] = remaining
	}

	return entry
}

func limitOrNil(limit int) interface{} {
	if limit == entitlements.Unlimited {
		return nil
	}
	return limit
}
