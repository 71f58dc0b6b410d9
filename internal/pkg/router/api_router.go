package router

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"github.com/GBDev13/catalify-sub001/app/controllers"
	"github.com/GBDev13/catalify-sub001/internal/pkg/middleware"
)

type ApiRouter struct {
}

func (h ApiRouter) InstallRouter(app *fiber.App) {
	api := app.Group("/api", limiter.New())
	api.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
			"message": "Hello from api",
		})
	})

	// Public catalog endpoints, keyed by store slug
	api.Get("/catalog/:slug", controllers.HandleCatalogAPI)
	api.Get("/catalog/:slug/products/:productSlug", controllers.HandleCatalogProduct)
	api.Post("/catalog/:slug/orders", controllers.HandleOrderCreate)
	api.Get("/orders/:code", controllers.HandleOrderGetByCode)

	// Owner endpoints, session-authenticated
	v1 := api.Group("/v1", middleware.RequireAPISessionAuth)

	v1.Post("/company", controllers.HandleCompanyCreate)

	owner := v1.Group("", middleware.RequireCompany)
	owner.Get("/company", controllers.HandleCompanyGet)
	owner.Put("/company", controllers.HandleCompanyUpdate)
	owner.Post("/company/logo", controllers.HandleCompanyLogoUpload)

	owner.Get("/categories", controllers.HandleCategoryList)
	owner.Post("/categories", controllers.HandleCategoryCreate)
	owner.Put("/categories/:id", controllers.HandleCategoryUpdate)
	owner.Delete("/categories/:id", controllers.HandleCategoryDelete)

	owner.Get("/products", controllers.HandleProductList)
	owner.Post("/products", controllers.HandleProductCreate)
	owner.Get("/products/:id", controllers.HandleProductGet)
	owner.Put("/products/:id", controllers.HandleProductUpdate)
	owner.Delete("/products/:id", controllers.HandleProductDelete)
	owner.Post("/products/:id/images", controllers.HandleProductImageUpload)
	owner.Delete("/products/:id/images/:imageID", controllers.HandleProductImageDelete)
	owner.Put("/products/:id/stock", controllers.HandleProductStockReplace)

	owner.Get("/links", controllers.HandleLinkList)
	owner.Post("/links", controllers.HandleLinkCreate)
	owner.Put("/links/:id", controllers.HandleLinkUpdate)
	owner.Delete("/links/:id", controllers.HandleLinkDelete)

	owner.Get("/banners", controllers.HandleBannerList)
	owner.Post("/banners", controllers.HandleBannerCreate)
	owner.Put("/banners/:id", controllers.HandleBannerUpdate)
	owner.Delete("/banners/:id", controllers.HandleBannerDelete)

	owner.Get("/orders", controllers.HandleOrderList)
	owner.Put("/orders/:code/status", controllers.HandleOrderUpdateStatus)

	owner.Get("/account/quota", controllers.HandleAccountQuota)
	owner.Post("/billing/checkout", controllers.HandleBillingCheckout)
	owner.Post("/billing/cancel", controllers.HandleBillingCancel)
}

func NewApiRouter() *ApiRouter {
	return &ApiRouter{}
}
