package entitlements

import (
	"fmt"

	"github.com/GBDev13/catalify-sub001/app/models"
)

type Plan string

const (
	PlanFree    Plan = "free"
	PlanPremium Plan = "premium"
)

// Resource identifies a capped resource kind.
type Resource string

const (
	ResourceCategories    Resource = "categories"
	ResourceProducts      Resource = "products"
	ResourceProductImages Resource = "product_images"
	ResourceContactLinks  Resource = "contact_links"
	ResourceBanners       Resource = "banners"
)

// Unlimited is the cap sentinel for resources without a numeric limit.
const Unlimited = -1

var planLimits = map[Plan]map[Resource]int{
	PlanFree: {
		ResourceCategories:    5,
		ResourceProducts:      10,
		ResourceProductImages: 3,
		ResourceContactLinks:  2,
		ResourceBanners:       0,
	},
	PlanPremium: {
		ResourceCategories:    Unlimited,
		ResourceProducts:      Unlimited,
		ResourceProductImages: 5,
		ResourceContactLinks:  10,
		ResourceBanners:       3,
	},
}

// IsPlanValid reports whether a subscription grants premium entitlements.
// ACTIVE and CANCELING subscriptions still entitle (a canceling plan stays
// usable until it expires); CANCELED and EXPIRED do not. A missing
// subscription never entitles.
func IsPlanValid(sub *models.Subscription) bool {
	if sub == nil {
		return false
	}
	switch sub.Status {
	case models.SubscriptionStatusActive, models.SubscriptionStatusCanceling:
		return true
	case models.SubscriptionStatusCanceled, models.SubscriptionStatusExpired:
		return false
	}
	return false
}

// PlanFor derives the tier from the resolved subscription.
func PlanFor(sub *models.Subscription) Plan {
	if IsPlanValid(sub) {
		return PlanPremium
	}
	return PlanFree
}

// LimitFor returns the cap for a resource on the given plan, or Unlimited.
// Unknown plans fall back to the free tier.
func LimitFor(plan Plan, resource Resource) int {
	limits, ok := planLimits[plan]
	if !ok {
		limits = planLimits[PlanFree]
	}
	limit, ok := limits[resource]
	if !ok {
		return Unlimited
	}
	return limit
}

// LimitError names the resource and cap that blocked a creation.
type LimitError struct {
	Resource Resource
	Limit    int
}

func (e *LimitError) Error() string {
	return fmt.Sprintf("limit exceeded: %s (max %d)", e.Resource, e.Limit)
}

// CheckLimit decides whether one more resource of the given kind may be
// created. The caller counts first and inserts after; the check is not
// atomic against concurrent creations, which can overshoot the cap by one.
func CheckLimit(plan Plan, resource Resource, current int64) error {
	limit := LimitFor(plan, resource)
	if limit == Unlimited {
		return nil
	}
	if current >= int64(limit) {
		return &LimitError{Resource: resource, Limit: limit}
	}
	return nil
}
