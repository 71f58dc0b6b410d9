package controllers

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/GBDev13/catalify-sub001/app/models"
	"github.com/GBDev13/catalify-sub001/app/repository"
	"github.com/GBDev13/catalify-sub001/internal/pkg/companycontext"
	"github.com/GBDev13/catalify-sub001/internal/pkg/mail"
	"github.com/GBDev13/catalify-sub001/internal/pkg/shortener"
	"github.com/GBDev13/catalify-sub001/internal/pkg/whatsapp"
)

type orderRequest struct {
	BuyerName  string             `json:"buyer_name"`
	BuyerPhone string             `json:"buyer_phone"`
	Items      []orderItemRequest `json:"items"`
}

type orderItemRequest struct {
	ProductID uint `json:"product_id"`
	Quantity  int  `json:"quantity"`
}

// HandleOrderCreate records a checkout for a public storefront and returns
// the wa.me link the shopper is sent to. Prices and names are snapshotted
// from the current catalog, out-of-stock products are rejected.
func HandleOrderCreate(c *fiber.Ctx) error {
	slug := c.Params("slug")
	repos := repository.GetGlobalRepositories()

	company, err := repos.Company.GetBySlug(slug)
	if err != nil {
		if isNotFound(err) {
			return respondNotFound(c, "Store not found")
		}
		return respondInternalError(c, err)
	}

	var req orderRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "invalid_body",
			"message": "Could not parse request body",
		})
	}
	if len(req.Items) == 0 {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error":   "empty_order",
			"message": "An order needs at least one item",
		})
	}

	items := make([]models.OrderItem, 0, len(req.Items))
	for _, reqItem := range req.Items {
		if reqItem.Quantity <= 0 {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
				"error":   "invalid_quantity",
				"message": "Item quantities must be positive",
			})
		}

		product, err := repos.Product.GetByID(reqItem.ProductID)
		if err != nil || product.CompanyID != company.ID || !product.Visible {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
				"error":   "unknown_product",
				"message": "One of the ordered products is not available",
			})
		}
		if !product.HasStock() {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
				"error":   "out_of_stock",
				"message": product.Name + " is out of stock",
			})
		}

		items = append(items, models.OrderItem{
			ProductID:      product.ID,
			ProductName:    product.Name,
			UnitPriceCents: product.EffectivePriceCents(),
			Quantity:       reqItem.Quantity,
		})
	}

	code, err := shortener.GenerateSecureSlug(10)
	if err != nil {
		return respondInternalError(c, err)
	}

	order := &models.Order{
		Code:       strings.ToUpper(code),
		CompanyID:  company.ID,
		BuyerName:  req.BuyerName,
		BuyerPhone: req.BuyerPhone,
		Status:     models.ORDER_STATUS_PENDING,
		Items:      items,
	}
	order.ComputeTotal()
	if err := order.Validate(); err != nil {
		return respondValidationError(c, err)
	}
	if err := repos.Order.Create(order); err != nil {
		return respondInternalError(c, err)
	}

	if owner, err := repos.User.GetByID(company.OwnerID); err == nil {
		go mail.SendNewOrderMail(owner.Email, company.Name, order.Code)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"order":        order,
		"whatsapp_url": whatsapp.CheckoutURL(company, order),
	})
}

// HandleOrderGetByCode lets a shopper check their order status
func HandleOrderGetByCode(c *fiber.Ctx) error {
	order, err := repository.GetGlobalRepositories().Order.GetByCode(c.Params("code"))
	if err != nil {
		if isNotFound(err) {
			return respondNotFound(c, "Order not found")
		}
		return respondInternalError(c, err)
	}

	return c.JSON(fiber.Map{
		"code":        order.Code,
		"status":      order.Status,
		"total_cents": order.TotalCents,
		"created_at":  order.CreatedAt,
	})
}

func HandleOrderList(c *fiber.Ctx) error {
	cc := companycontext.GetCompanyContext(c)
	repos := repository.GetGlobalRepositories()

	page, _ := strconv.Atoi(c.Query("page", "1"))
	if page < 1 {
		page = 1
	}
	perPage, _ := strconv.Atoi(c.Query("per_page", "20"))
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}

	orders, err := repos.Order.GetByCompanyID(cc.Company.ID, (page-1)*perPage, perPage)
	if err != nil {
		return respondInternalError(c, err)
	}

	return c.JSON(fiber.Map{
		"orders":   orders,
		"page":     page,
		"per_page": perPage,
	})
}

// HandleOrderUpdateStatus confirms or cancels a pending order
func HandleOrderUpdateStatus(c *fiber.Ctx) error {
	cc := companycontext.GetCompanyContext(c)
	repos := repository.GetGlobalRepositories()

	order, err := repos.Order.GetByCode(c.Params("code"))
	if err != nil {
		if isNotFound(err) {
			return respondNotFound(c, "Order not found")
		}
		return respondInternalError(c, err)
	}
	if order.CompanyID != cc.Company.ID {
		return respondNotFound(c, "Order not found")
	}

	var req struct {
		Status string `json:"status" form:"status"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "invalid_body",
			"message": "Could not parse request body",
		})
	}

	switch req.Status {
	case models.ORDER_STATUS_CONFIRMED, models.ORDER_STATUS_CANCELED:
	default:
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error":   "invalid_status",
			"message": "Status must be confirmed or canceled",
		})
	}
	if order.Status != models.ORDER_STATUS_PENDING {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error":   "already_settled",
			"message": "Order was already " + order.Status,
		})
	}

	if err := repos.Order.UpdateStatus(order.Code, req.Status); err != nil {
		return respondInternalError(c, err)
	}
	order.Status = req.Status

	return c.JSON(order)
}
