package controllers

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/GBDev13/catalify-sub001/internal/pkg/entitlements"
)

func TestQuotaEntryCapped(t *testing.T) {
	entry := quotaEntry(entitlements.PlanFree, entitlements.ResourceProducts, 7)

	assert.Equal(t, 10, entry["limit"])
	assert.Equal(t, int64(7), entry["used"])
	assert.Equal(t, int64(3), entry["remaining"])
}

func TestQuotaEntryOverCapClampsRemaining(t *testing.T) {
	// usage can exceed the cap after a downgrade, remaining never goes negative
	entry := quotaEntry(entitlements.PlanFree, entitlements.ResourceProducts, 25)

	assert.Equal(t, int64(0), entry["remaining"])
}

func TestQuotaEntryUnlimited(t *testing.T) {
	entry := quotaEntry(entitlements.PlanPremium, entitlements.ResourceProducts, 500)

	assert.Nil(t, entry["limit"])
	assert.Equal(t, int64(500), entry["used"])
	_, hasRemaining := entry["remaining"]
	assert.False(t, hasRemaining)
}

func TestLimitOrNil(t *testing.T) {
	assert.Nil(t, limitOrNil(entitlements.Unlimited))
	assert.Equal(t, 3, limitOrNil(3))
}
