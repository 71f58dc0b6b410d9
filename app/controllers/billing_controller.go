package controllers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/GBDev13/catalify-sub001/app/models"
	"github.com/GBDev13/catalify-sub001/app/repository"
	"github.com/GBDev13/catalify-sub001/internal/pkg/billing"
	"github.com/GBDev13/catalify-sub001/internal/pkg/companycontext"
	"github.com/GBDev13/catalify-sub001/internal/pkg/entitlements"
	"github.com/GBDev13/catalify-sub001/internal/pkg/env"
)

func billingService() *billing.Service {
	return billing.NewService(repository.GetGlobalFactory().GetSubscriptionRepository())
}

// HandleBillingCheckout starts a Stripe Checkout session for the premium plan
func HandleBillingCheckout(c *fiber.Ctx) error {
	cc := companycontext.GetCompanyContext(c)

	if cc.Subscription != nil && entitlements.IsPlanValid(cc.Subscription) {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error":   "already_subscribed",
			"message": "Your company already has an active subscription",
		})
	}

	owner, err := repository.GetGlobalFactory().GetUserRepository().GetByID(cc.Company.OwnerID)
	if err != nil {
		return respondInternalError(c, err)
	}

	checkoutURL, err := billingService().CreateCheckoutSession(cc.Company, owner.Email)
	if err != nil {
		return respondInternalError(c, err)
	}

	return c.JSON(fiber.Map{"checkout_url": checkoutURL})
}

// HandleBillingCancel asks Stripe to stop renewing. Premium entitlements
// stay on until the paid period runs out.
func HandleBillingCancel(c *fiber.Ctx) error {
	cc := companycontext.GetCompanyContext(c)

	sub := cc.Subscription
	if sub == nil || !entitlements.IsPlanValid(sub) {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error":   "no_subscription",
			"message": "There is no active subscription to cancel",
		})
	}
	if sub.Status == models.SubscriptionStatusCanceling {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error":   "already_canceling",
			"message": "Your subscription is already set to cancel",
		})
	}

	if err := billingService().RequestCancellation(sub); err != nil {
		return respondInternalError(c, err)
	}

	expiresAt := sub.ExpiresAt
	if fresh, err := repository.GetGlobalFactory().GetSubscriptionRepository().GetByCompanyID(cc.Company.ID); err == nil {
		expiresAt = fresh.ExpiresAt
	}

	return c.JSON(fiber.Map{
		"status":     string(models.SubscriptionStatusCanceling),
		"expires_at": formatTimePtr(expiresAt),
	})
}

// HandleBillingWebhook receives Stripe events. The signature check rejects
// anything not signed with the endpoint secret.
func HandleBillingWebhook(c *fiber.Ctx) error {
	secret := env.GetEnv("STRIPE_WEBHOOK_SECRET", "")

	event, err := billing.ParseEvent(c.Body(), c.Get("Stripe-Signature"), secret)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "invalid_signature",
			"message": "Webhook signature verification failed",
		})
	}

	if err := billingService().HandleEvent(event); err != nil {
		// non-2xx makes Stripe retry the delivery
		log.Printf("[Billing] webhook %s failed: %v", event.Type, err)
		return c.SendStatus(fiber.StatusInternalServerError)
	}

	return c.JSON(fiber.Map{"received": true})
}
