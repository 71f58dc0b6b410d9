package controllers

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/GBDev13/catalify-sub001/app/models"
)

func int64Ptr(v int64) *int64 { return &v }

func TestApplyProductUpdateKeepsOmittedFields(t *testing.T) {
	promo := int64Ptr(1500)
	product := &models.Product{
		Name:        "Ceramic Mug",
		Slug:        "ceramic-mug",
		Description: "Handmade",
		PriceCents:  2500,
		PromoCents:  promo,
		Visible:     true,
		Highlight:   true,
	}

	applyProductUpdate(product, productRequest{Description: "Handmade, 300ml"})

	assert.Equal(t, "Ceramic Mug", product.Name)
	assert.Equal(t, "Handmade, 300ml", product.Description)
	assert.Equal(t, int64(2500), product.PriceCents)
	assert.Equal(t, promo, product.PromoCents, "omitted promo_cents must not clear the promo price")
	assert.True(t, product.Visible)
	assert.True(t, product.Highlight)
}

func TestApplyProductUpdatePromoPrice(t *testing.T) {
	product := &models.Product{Name: "Ceramic Mug", PriceCents: 2500}

	applyProductUpdate(product, productRequest{PromoCents: int64Ptr(1900)})
	assert.Equal(t, int64Ptr(1900), product.PromoCents)

	applyProductUpdate(product, productRequest{PromoCents: int64Ptr(0)})
	assert.Nil(t, product.PromoCents, "a zero promo_cents clears the promo price")
}

func TestApplyProductUpdateRenameRefreshesSlug(t *testing.T) {
	product := &models.Product{Name: "Ceramic Mug", Slug: "ceramic-mug"}

	applyProductUpdate(product, productRequest{Name: "Enamel Mug"})

	assert.Equal(t, "Enamel Mug", product.Name)
	assert.Equal(t, "enamel-mug", product.Slug)
}
