package companycontext

import (
	"github.com/gofiber/fiber/v2"

	"github.com/GBDev13/catalify-sub001/app/models"
	"github.com/GBDev13/catalify-sub001/internal/pkg/entitlements"
)

// Locals keys shared between the middleware and guards.
const (
	KeyContext       = "COMPANY_CONTEXT"
	KeyFromProtected = "from_protected"
	KeyIsAdmin       = "is_admin"
)

// CompanyContext is the per-request resolution result: the logged-in user,
// their company and the company's current subscription. Every field past
// IsLoggedIn may be absent; absence always means the free tier, never an
// error.
type CompanyContext struct {
	UserID       uint
	Name         string
	IsLoggedIn   bool
	IsAdmin      bool
	Company      *models.Company
	Subscription *models.Subscription
}

// Plan derives the entitlement tier from the resolved subscription.
func (cc CompanyContext) Plan() entitlements.Plan {
	return entitlements.PlanFor(cc.Subscription)
}

// HasCompany reports whether the request belongs to an onboarded company owner.
func (cc CompanyContext) HasCompany() bool {
	return cc.Company != nil
}

// GetCompanyContext retrieves the company context from fiber context.
// Returns a default anonymous context if none is set.
func GetCompanyContext(c *fiber.Ctx) CompanyContext {
	if ctx := c.Locals(KeyContext); ctx != nil {
		if cc, ok := ctx.(CompanyContext); ok {
			return cc
		}
	}
	return CompanyContext{IsLoggedIn: false, IsAdmin: false}
}

// IsLoggedIn checks if the current user is logged in
func IsLoggedIn(c *fiber.Ctx) bool {
	return GetCompanyContext(c).IsLoggedIn
}

// GetUserID returns the current user's ID, or 0 if not logged in
func GetUserID(c *fiber.Ctx) uint {
	return GetCompanyContext(c).UserID
}
