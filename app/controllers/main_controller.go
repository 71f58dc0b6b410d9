package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sujit-baniya/flash"

	"github.com/GBDev13/catalify-sub001/internal/pkg/companycontext"
	"github.com/GBDev13/catalify-sub001/internal/pkg/entitlements"
)

func HandleHome(c *fiber.Ctx) error {
	cc := companycontext.GetCompanyContext(c)

	return c.Render("home", fiber.Map{
		"IsLoggedIn": cc.IsLoggedIn,
		"UserName":   cc.Name,
		"Flash":      flash.Get(c),
	})
}

func HandlePricing(c *fiber.Ctx) error {
	cc := companycontext.GetCompanyContext(c)

	return c.Render("pricing", fiber.Map{
		"IsLoggedIn": cc.IsLoggedIn,
		"Plan":       string(cc.Plan()),
	})
}

// HandleDashboard renders the owner dashboard shell. Users without a
// company yet are sent to onboarding.
func HandleDashboard(c *fiber.Ctx) error {
	cc := companycontext.GetCompanyContext(c)

	if !cc.HasCompany() {
		return c.Render("onboarding", fiber.Map{
			"UserName": cc.Name,
			"Flash":    flash.Get(c),
		})
	}

	return c.Render("dashboard", fiber.Map{
		"UserName":  cc.Name,
		"Company":   cc.Company,
		"Plan":      string(cc.Plan()),
		"IsPremium": cc.Plan() == entitlements.PlanPremium,
		"Flash":     flash.Get(c),
	})
}
