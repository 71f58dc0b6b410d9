package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/GBDev13/catalify-sub001/app/repository"
	"github.com/GBDev13/catalify-sub001/internal/pkg/middleware"
	"github.com/GBDev13/catalify-sub001/internal/pkg/oauth"
	"github.com/GBDev13/catalify-sub001/internal/pkg/session"
)

type HttpRouter struct {
}

func (h HttpRouter) InstallRouter(app *fiber.App) {
	// init session
	session.NewSessionStore()

	// init oauth providers
	oauth.Setup()

	// Wire the resolver to the repository layer, then apply the
	// company-context middleware globally as first middleware.
	factory := repository.GetGlobalFactory()
	middleware.InitializeCompanyResolver(
		factory.GetCompanyRepository(),
		factory.GetSubscriptionRepository(),
	)
	app.Use(middleware.CompanyContextMiddleware)

	h.registerPublicRoutes(app)
	h.registerCSRFProtectedRoutes(app)
}

func NewHttpRouter() *HttpRouter {
	return &HttpRouter{}
}

func loggedInMiddleware(c *fiber.Ctx) error {
	// company context is already resolved globally, nothing extra to do
	return c.Next()
}
