package middleware

import (
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/GBDev13/catalify-sub001/app/models"
	"github.com/GBDev13/catalify-sub001/internal/pkg/entitlements"
)

type fakeCompanyRepo struct {
	byOwner map[uint]*models.Company
}

func (f *fakeCompanyRepo) Create(*models.Company) error           { return nil }
func (f *fakeCompanyRepo) GetByID(uint) (*models.Company, error)  { return nil, gorm.ErrRecordNotFound }
func (f *fakeCompanyRepo) GetBySlug(string) (*models.Company, error) {
	return nil, gorm.ErrRecordNotFound
}
func (f *fakeCompanyRepo) SlugExists(string) (bool, error) { return false, nil }
func (f *fakeCompanyRepo) Update(*models.Company) error    { return nil }

func (f *fakeCompanyRepo) GetByOwnerID(ownerID uint) (*models.Company, error) {
	if company, ok := f.byOwner[ownerID]; ok {
		return company, nil
	}
	return nil, gorm.ErrRecordNotFound
}

type fakeSubscriptionRepo struct {
	byCompany map[uint]*models.Subscription
}

func (f *fakeSubscriptionRepo) GetByStripeSubscriptionID(string) (*models.Subscription, error) {
	return nil, gorm.ErrRecordNotFound
}
func (f *fakeSubscriptionRepo) Upsert(*models.Subscription) error { return nil }
func (f *fakeSubscriptionRepo) UpdateStatus(uint, models.SubscriptionStatus, *time.Time) error {
	return nil
}

func (f *fakeSubscriptionRepo) GetByCompanyID(companyID uint) (*models.Subscription, error) {
	if sub, ok := f.byCompany[companyID]; ok {
		return sub, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func TestResolveCompanyFailOpen(t *testing.T) {
	InitializeCompanyResolver(
		&fakeCompanyRepo{byOwner: map[uint]*models.Company{
			7: {ID: 42, OwnerID: 7, Name: "Flower Shop", Slug: "flower-shop"},
		}},
		&fakeSubscriptionRepo{byCompany: map[uint]*models.Subscription{
			42: {ID: 1, CompanyID: 42, Status: models.SubscriptionStatusActive},
		}},
	)
	defer InitializeCompanyResolver(nil, nil)

	// user without a company resolves to nothing, not an error
	company, sub := ResolveCompany(99)
	if company != nil || sub != nil {
		t.Fatalf("expected nil resolution for unknown owner, got %v / %v", company, sub)
	}
	if got := entitlements.PlanFor(sub); got != entitlements.PlanFree {
		t.Fatalf("expected free plan for unresolved subscription, got %q", got)
	}

	// owner with company and active subscription resolves both
	company, sub = ResolveCompany(7)
	if company == nil || company.ID != 42 {
		t.Fatalf("expected company 42, got %v", company)
	}
	if sub == nil || sub.Status != models.SubscriptionStatusActive {
		t.Fatalf("expected active subscription, got %v", sub)
	}
	if got := entitlements.PlanFor(sub); got != entitlements.PlanPremium {
		t.Fatalf("expected premium plan, got %q", got)
	}
}

func TestResolveCompanyWithoutSubscription(t *testing.T) {
	InitializeCompanyResolver(
		&fakeCompanyRepo{byOwner: map[uint]*models.Company{
			3: {ID: 10, OwnerID: 3, Name: "Bakery", Slug: "bakery"},
		}},
		&fakeSubscriptionRepo{byCompany: map[uint]*models.Subscription{}},
	)
	defer InitializeCompanyResolver(nil, nil)

	company, sub := ResolveCompany(3)
	if company == nil || company.ID != 10 {
		t.Fatalf("expected company 10, got %v", company)
	}
	if sub != nil {
		t.Fatalf("expected no subscription, got %v", sub)
	}
}
