package billing

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/stripe/stripe-go/v75"
	checkoutsession "github.com/stripe/stripe-go/v75/checkout/session"
	stripesub "github.com/stripe/stripe-go/v75/subscription"

	"github.com/GBDev13/catalify-sub001/app/models"
	"github.com/GBDev13/catalify-sub001/app/repository"
	"github.com/GBDev13/catalify-sub001/internal/pkg/env"
)

// Service synchronizes Stripe subscription state into the local
// Subscription rows the plan-limit policy reads.
type Service struct {
	subscriptions repository.SubscriptionRepository
}

// NewService creates a billing service from an injected repository.
func NewService(subscriptions repository.SubscriptionRepository) *Service {
	return &Service{subscriptions: subscriptions}
}

// CreateCheckoutSession starts a Stripe Checkout flow for the premium plan
// and returns the hosted payment URL.
func (s *Service) CreateCheckoutSession(company *models.Company, ownerEmail string) (string, error) {
	stripe.Key = env.GetEnv("STRIPE_SECRET_KEY", "")
	if stripe.Key == "" {
		return "", fmt.Errorf("STRIPE_SECRET_KEY not configured")
	}
	priceID := env.GetEnv("STRIPE_PREMIUM_PRICE_ID", "")
	if priceID == "" {
		return "", fmt.Errorf("STRIPE_PREMIUM_PRICE_ID not configured")
	}

	appURL := env.GetEnv("PUBLIC_DOMAIN", "http://localhost:4000")

	params := &stripe.CheckoutSessionParams{
		SuccessURL:    stripe.String(appURL + "/dashboard?upgraded=1"),
		CancelURL:     stripe.String(appURL + "/pricing?canceled=1"),
		Mode:          stripe.String(string(stripe.CheckoutSessionModeSubscription)),
		CustomerEmail: stripe.String(ownerEmail),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{Price: stripe.String(priceID), Quantity: stripe.Int64(1)},
		},
		ClientReferenceID: stripe.String(fmt.Sprint(company.ID)),
		SubscriptionData: &stripe.CheckoutSessionSubscriptionDataParams{
			Metadata: map[string]string{
				"company_id": fmt.Sprint(company.ID),
			},
		},
	}

	sess, err := checkoutsession.New(params)
	if err != nil {
		return "", fmt.Errorf("failed to create checkout session: %w", err)
	}
	return sess.URL, nil
}

// RequestCancellation flags the Stripe subscription to end at period close
// and moves the local row to CANCELING. The plan stays usable until the
// expiry timestamp elapses.
func (s *Service) RequestCancellation(sub *models.Subscription) error {
	stripe.Key = env.GetEnv("STRIPE_SECRET_KEY", "")
	if stripe.Key == "" {
		return fmt.Errorf("STRIPE_SECRET_KEY not configured")
	}
	if sub.StripeSubscriptionID == "" {
		return fmt.Errorf("subscription has no Stripe reference")
	}

	updated, err := stripesub.Update(sub.StripeSubscriptionID, &stripe.SubscriptionParams{
		CancelAtPeriodEnd: stripe.Bool(true),
	})
	if err != nil {
		return fmt.Errorf("failed to request cancellation: %w", err)
	}

	var expiresAt *time.Time
	if updated.CurrentPeriodEnd > 0 {
		t := time.Unix(updated.CurrentPeriodEnd, 0)
		expiresAt = &t
	}
	return s.subscriptions.UpdateStatus(sub.CompanyID, models.SubscriptionStatusCanceling, expiresAt)
}

// HandleEvent applies one verified webhook event to the local state.
// Unknown event types are acknowledged and ignored.
func (s *Service) HandleEvent(event stripe.Event) error {
	switch event.Type {
	case "checkout.session.completed":
		var sess stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &sess); err != nil {
			return fmt.Errorf("failed to parse checkout session: %w", err)
		}
		return s.handleCheckoutCompleted(&sess)

	case "customer.subscription.updated":
		var sub stripe.Subscription
		if err := json.Unmarshal(event.Data.Raw, &sub); err != nil {
			return fmt.Errorf("failed to parse subscription: %w", err)
		}
		return s.handleSubscriptionChanged(&sub)

	case "customer.subscription.deleted":
		var sub stripe.Subscription
		if err := json.Unmarshal(event.Data.Raw, &sub); err != nil {
			return fmt.Errorf("failed to parse subscription: %w", err)
		}
		return s.applyStatus(&sub, models.SubscriptionStatusExpired, nil)

	case "invoice.payment_failed":
		var invoice stripe.Invoice
		if err := json.Unmarshal(event.Data.Raw, &invoice); err != nil {
			return fmt.Errorf("failed to parse invoice: %w", err)
		}
		if invoice.Subscription == nil {
			return nil
		}
		local, err := s.subscriptions.GetByStripeSubscriptionID(invoice.Subscription.ID)
		if err != nil {
			// unknown subscription, acknowledge to stop retries
			return nil
		}
		return s.subscriptions.UpdateStatus(local.CompanyID, models.SubscriptionStatusCanceled, nil)
	}

	return nil
}

func (s *Service) handleCheckoutCompleted(sess *stripe.CheckoutSession) error {
	companyID, err := strconv.ParseUint(sess.ClientReferenceID, 10, 64)
	if err != nil {
		return fmt.Errorf("checkout session missing company reference: %w", err)
	}

	sub := &models.Subscription{
		CompanyID: uint(companyID),
		Status:    models.SubscriptionStatusActive,
	}
	if sess.Customer != nil {
		sub.StripeCustomerID = sess.Customer.ID
	}
	if sess.Subscription != nil {
		sub.StripeSubscriptionID = sess.Subscription.ID
	}
	return s.subscriptions.Upsert(sub)
}

func (s *Service) handleSubscriptionChanged(sub *stripe.Subscription) error {
	status := StatusFromStripe(sub.Status, sub.CancelAtPeriodEnd)

	var expiresAt *time.Time
	if sub.CancelAtPeriodEnd && sub.CurrentPeriodEnd > 0 {
		t := time.Unix(sub.CurrentPeriodEnd, 0)
		expiresAt = &t
	}
	return s.applyStatus(sub, status, expiresAt)
}

func (s *Service) applyStatus(sub *stripe.Subscription, status models.SubscriptionStatus, expiresAt *time.Time) error {
	local, err := s.subscriptions.GetByStripeSubscriptionID(sub.ID)
	if err != nil {
		// the company reference travels in metadata as a fallback
		companyID, perr := strconv.ParseUint(sub.Metadata["company_id"], 10, 64)
		if perr != nil {
			// unknown subscription, acknowledge to stop retries
			return nil
		}
		return s.subscriptions.Upsert(&models.Subscription{
			CompanyID:            uint(companyID),
			Status:               status,
			ExpiresAt:            expiresAt,
			StripeSubscriptionID: sub.ID,
		})
	}
	return s.subscriptions.UpdateStatus(local.CompanyID, status, expiresAt)
}

// StatusFromStripe maps a provider subscription state onto the local enum.
// A subscription flagged to end at period close is CANCELING regardless of
// its provider status; it keeps entitling until expiry.
func StatusFromStripe(status stripe.SubscriptionStatus, cancelAtPeriodEnd bool) models.SubscriptionStatus {
	if cancelAtPeriodEnd {
		return models.SubscriptionStatusCanceling
	}
	switch status {
	case stripe.SubscriptionStatusActive, stripe.SubscriptionStatusTrialing:
		return models.SubscriptionStatusActive
	case stripe.SubscriptionStatusCanceled, stripe.SubscriptionStatusIncompleteExpired:
		return models.SubscriptionStatusExpired
	default:
		// past_due, unpaid, incomplete, paused: no entitlements
		return models.SubscriptionStatusCanceled
	}
}
