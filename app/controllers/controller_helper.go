package controllers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/GBDev13/catalify-sub001/internal/pkg/entitlements"
)

// Session keys
const (
	AUTH_KEY      string = "authenticated"
	USER_ID       string = "user_id"
	USER_NAME     string = "username"
	USER_IS_ADMIN string = "isAdmin"
)

// respondLimitExceeded maps a plan-limit rejection to the upgrade-prompt
// payload the dashboard consumes. Non-limit errors fall through to a 500.
func respondLimitExceeded(c *fiber.Ctx, err error) error {
	var limitErr *entitlements.LimitError
	if errors.As(err, &limitErr) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error":    "limit_exceeded",
			"resource": limitErr.Resource,
			"limit":    limitErr.Limit,
			"message":  "Plan limit reached. Upgrade to premium to add more.",
		})
	}
	return respondInternalError(c, err)
}

func respondNotFound(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"error":   "not_found",
		"message": message,
	})
}

func respondValidationError(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
		"error":   "validation_failed",
		"message": err.Error(),
	})
}

func respondInternalError(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error":   "internal_server_error",
		"message": err.Error(),
	})
}

// isNotFound unwraps the gorm sentinel so controllers can 404 cleanly.
func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

func formatTimePtr(t *time.Time) interface{} {
	if t == nil {
		return nil
	}
	return t.UTC().Format(time.RFC3339)
}
