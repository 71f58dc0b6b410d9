package billing

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"testing"
	"time"

	"github.com/stripe/stripe-go/v75"

	"github.com/GBDev13/catalify-sub001/app/models"
)

func TestStatusFromStripe(t *testing.T) {
	tests := []struct {
		status            stripe.SubscriptionStatus
		cancelAtPeriodEnd bool
		want              models.SubscriptionStatus
	}{
		{stripe.SubscriptionStatusActive, false, models.SubscriptionStatusActive},
		{stripe.SubscriptionStatusTrialing, false, models.SubscriptionStatusActive},
		{stripe.SubscriptionStatusActive, true, models.SubscriptionStatusCanceling},
		{stripe.SubscriptionStatusPastDue, false, models.SubscriptionStatusCanceled},
		{stripe.SubscriptionStatusUnpaid, false, models.SubscriptionStatusCanceled},
		{stripe.SubscriptionStatusCanceled, false, models.SubscriptionStatusExpired},
		{stripe.SubscriptionStatusIncompleteExpired, false, models.SubscriptionStatusExpired},
	}

	for _, tt := range tests {
		if got := StatusFromStripe(tt.status, tt.cancelAtPeriodEnd); got != tt.want {
			t.Fatalf("StatusFromStripe(%q, %v) = %q, want %q", tt.status, tt.cancelAtPeriodEnd, got, tt.want)
		}
	}
}

func TestParseEventRejectsBadSignature(t *testing.T) {
	payload := []byte(`{"id":"evt_test","type":"checkout.session.completed"}`)

	if _, err := ParseEvent(payload, "t=1,v1=deadbeef", "whsec_test"); err == nil {
		t.Fatal("expected signature verification to fail")
	}
	if _, err := ParseEvent(payload, "", "whsec_test"); err == nil {
		t.Fatal("expected missing signature header to fail")
	}
}

func TestParseEventAcceptsValidSignature(t *testing.T) {
	secret := "whsec_test"
	payload := []byte(`{"id":"evt_test","type":"customer.subscription.deleted","data":{"object":{"id":"sub_123"}}}`)

	ts := time.Now().Unix()
	mac := hmac.New(sha256.New, []byte(secret))
	fmt.Fprintf(mac, "%d.%s", ts, payload)
	header := fmt.Sprintf("t=%d,v1=%s", ts, hex.EncodeToString(mac.Sum(nil)))

	event, err := ParseEvent(payload, header, secret)
	if err != nil {
		t.Fatalf("expected valid signature to verify, got %v", err)
	}
	if event.Type != "customer.subscription.deleted" {
		t.Fatalf("unexpected event type %q", event.Type)
	}
}
