package entitlements

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/GBDev13/catalify-sub001/app/models"
)

func TestIsPlanValid(t *testing.T) {
	for _, status := range []models.SubscriptionStatus{models.SubscriptionStatusActive, models.SubscriptionStatusCanceling} {
		if !IsPlanValid(&models.Subscription{Status: status}) {
			t.Fatalf("expected status %q to be valid", status)
		}
	}
	for _, status := range []models.SubscriptionStatus{models.SubscriptionStatusCanceled, models.SubscriptionStatusExpired} {
		if IsPlanValid(&models.Subscription{Status: status}) {
			t.Fatalf("expected status %q to be invalid", status)
		}
	}
	if IsPlanValid(nil) {
		t.Fatal("expected missing subscription to be invalid")
	}
}

func TestPlanFor(t *testing.T) {
	if got := PlanFor(&models.Subscription{Status: models.SubscriptionStatusActive}); got != PlanPremium {
		t.Fatalf("PlanFor(active) = %q, want premium", got)
	}
	if got := PlanFor(&models.Subscription{Status: models.SubscriptionStatusExpired}); got != PlanFree {
		t.Fatalf("PlanFor(expired) = %q, want free", got)
	}
	if got := PlanFor(nil); got != PlanFree {
		t.Fatalf("PlanFor(nil) = %q, want free", got)
	}
}

func TestLimitFor(t *testing.T) {
	tests := []struct {
		plan     Plan
		resource Resource
		want     int
	}{
		{PlanFree, ResourceCategories, 5},
		{PlanFree, ResourceProducts, 10},
		{PlanFree, ResourceProductImages, 3},
		{PlanFree, ResourceContactLinks, 2},
		{PlanFree, ResourceBanners, 0},
		{PlanPremium, ResourceCategories, Unlimited},
		{PlanPremium, ResourceProducts, Unlimited},
		{PlanPremium, ResourceProductImages, 5},
		{PlanPremium, ResourceContactLinks, 10},
		{PlanPremium, ResourceBanners, 3},
	}

	for _, tt := range tests {
		if got := LimitFor(tt.plan, tt.resource); got != tt.want {
			t.Fatalf("LimitFor(%q, %q) = %d, want %d", tt.plan, tt.resource, got, tt.want)
		}
	}

	// unknown plan falls back to free tier caps
	if got := LimitFor(Plan("enterprise"), ResourceProducts); got != 10 {
		t.Fatalf("LimitFor(unknown, products) = %d, want 10", got)
	}
}

func TestCheckLimitBoundaries(t *testing.T) {
	// the 5th category fits, the 6th does not
	if err := CheckLimit(PlanFree, ResourceCategories, 4); err != nil {
		t.Fatalf("expected 5th category to pass, got %v", err)
	}
	err := CheckLimit(PlanFree, ResourceCategories, 5)
	var limitErr *LimitError
	if !errors.As(err, &limitErr) {
		t.Fatalf("expected LimitError, got %v", err)
	}
	if limitErr.Resource != ResourceCategories || limitErr.Limit != 5 {
		t.Fatalf("unexpected LimitError contents: %+v", limitErr)
	}

	// the 10th product fits, the 11th does not
	if err := CheckLimit(PlanFree, ResourceProducts, 9); err != nil {
		t.Fatalf("expected 10th product to pass, got %v", err)
	}
	if err := CheckLimit(PlanFree, ResourceProducts, 10); err == nil {
		t.Fatal("expected 11th product to be rejected")
	}

	// free tier never gets banners
	if err := CheckLimit(PlanFree, ResourceBanners, 0); err == nil {
		t.Fatal("expected banner creation on free tier to be rejected")
	}

	// premium never rejects unlimited resources
	for _, current := range []int64{0, 10, 100000} {
		if err := CheckLimit(PlanPremium, ResourceCategories, current); err != nil {
			t.Fatalf("premium categories rejected at %d: %v", current, err)
		}
		if err := CheckLimit(PlanPremium, ResourceProducts, current); err != nil {
			t.Fatalf("premium products rejected at %d: %v", current, err)
		}
	}
}

// Two concurrent creators racing for the last banner slot may both pass the
// check; the overshoot is bounded at one over the cap.
func TestCheckLimitConcurrentOvershootBounded(t *testing.T) {
	var count int64 = 2 // premium banner cap is 3, one slot left

	var created int64
	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := CheckLimit(PlanPremium, ResourceBanners, atomic.LoadInt64(&count)); err == nil {
				atomic.AddInt64(&created, 1)
			}
		}()
	}
	wg.Wait()

	total := count + created
	limit := int64(LimitFor(PlanPremium, ResourceBanners))
	if total > limit+1 {
		t.Fatalf("overshoot beyond bound: total %d, cap %d", total, limit)
	}
	if created < 1 {
		t.Fatal("expected at least one creation to pass with a free slot")
	}
}
