package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/GBDev13/catalify-sub001/app/controllers"
	"github.com/GBDev13/catalify-sub001/app/models"
	"github.com/GBDev13/catalify-sub001/app/repository"
	"github.com/GBDev13/catalify-sub001/internal/pkg/companycontext"
	"github.com/GBDev13/catalify-sub001/internal/pkg/session"
)

var (
	companyRepo      repository.CompanyRepository
	subscriptionRepo repository.SubscriptionRepository
)

// InitializeCompanyResolver wires the repositories the resolver reads from.
// Called once from the router; tests inject fakes through the same hook.
func InitializeCompanyResolver(companies repository.CompanyRepository, subscriptions repository.SubscriptionRepository) {
	companyRepo = companies
	subscriptionRepo = subscriptions
}

// CompanyContextMiddleware resolves the caller's company and its current
// subscription and attaches both to the request. Resolution never fails the
// request: a missing session, user, company or subscription degrades to an
// anonymous or free-tier context so public endpoints keep working.
func CompanyContextMiddleware(c *fiber.Ctx) error {
	// Goth manages its own session store on the OAuth routes; skip ours
	// there to prevent cross-store collisions.
	if strings.HasPrefix(c.Path(), "/auth/") {
		return c.Next()
	}

	sess, err := session.GetSessionStore().Get(c)
	if err != nil {
		setAnonymous(c)
		return c.Next()
	}

	userID := sess.Get(controllers.USER_ID)
	if userID == nil {
		setAnonymous(c)
		return c.Next()
	}

	uid, ok := userID.(uint)
	if !ok {
		setAnonymous(c)
		return c.Next()
	}

	isAdmin, _ := sess.Get(controllers.USER_IS_ADMIN).(bool)
	cc := companycontext.CompanyContext{
		UserID:     uid,
		Name:       session.GetSessionValue(c, controllers.USER_NAME),
		IsLoggedIn: true,
		IsAdmin:    isAdmin,
	}
	cc.Company, cc.Subscription = ResolveCompany(uid)

	c.Locals(companycontext.KeyContext, cc)
	c.Locals(companycontext.KeyFromProtected, true)
	c.Locals(companycontext.KeyIsAdmin, cc.IsAdmin)

	return c.Next()
}

// ResolveCompany looks up the company owned by the user and its current
// subscription. Lookup misses return nils; no error ever escapes.
func ResolveCompany(userID uint) (*models.Company, *models.Subscription) {
	companies, subscriptions := companyRepo, subscriptionRepo
	if companies == nil || subscriptions == nil {
		repos := repository.GetGlobalRepositories()
		companies, subscriptions = repos.Company, repos.Subscription
	}

	company, err := companies.GetByOwnerID(userID)
	if err != nil || company == nil {
		return nil, nil
	}

	sub, err := subscriptions.GetByCompanyID(company.ID)
	if err != nil {
		return company, nil
	}
	return company, sub
}

func setAnonymous(c *fiber.Ctx) {
	c.Locals(companycontext.KeyContext, companycontext.CompanyContext{
		IsLoggedIn: false,
		IsAdmin:    false,
	})
	c.Locals(companycontext.KeyFromProtected, false)
	c.Locals(companycontext.KeyIsAdmin, false)
}
