package router

import (
	"github.com/gofiber/fiber/v2"
	gothfiber "github.com/shareed2k/goth_fiber"

	"github.com/GBDev13/catalify-sub001/app/controllers"
	"github.com/GBDev13/catalify-sub001/internal/pkg/middleware"
)

func (h HttpRouter) registerPublicRoutes(app *fiber.App) {
	// Static pages
	app.Get("/pricing", loggedInMiddleware, controllers.HandlePricing)

	// Public storefront pages
	app.Get("/store/:slug", loggedInMiddleware, controllers.HandleCatalogPage)
	app.Get("/store/:slug/links", loggedInMiddleware, controllers.HandleLinksPage)

	// Auth
	app.Post("/logout", middleware.RequireAuth, controllers.HandleAuthLogout)

	// Social OAuth
	app.Get("/auth/:provider", gothfiber.BeginAuthHandler)
	app.Get("/auth/:provider/callback", controllers.HandleOAuthCallback)

	// Billing provider webhooks (no CSRF, signature-verified in controller)
	app.Post("/webhooks/stripe", controllers.HandleBillingWebhook)
}
