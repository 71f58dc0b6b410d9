package billing

import (
	"github.com/stripe/stripe-go/v75"
	"github.com/stripe/stripe-go/v75/webhook"
)

// ParseEvent verifies the Stripe-Signature header against the endpoint
// secret and returns the decoded event. Rejected payloads never reach the
// event handler.
func ParseEvent(payload []byte, signatureHeader, endpointSecret string) (stripe.Event, error) {
	return webhook.ConstructEventWithOptions(
		payload,
		signatureHeader,
		endpointSecret,
		webhook.ConstructEventOptions{IgnoreAPIVersionMismatch: true},
	)
}
