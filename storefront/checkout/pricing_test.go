package checkout

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCartPagePricingBelowThreshold(t *testing.T) {
	// {price 10 × 2} + {price 5 × 1} = 25; 10% tax; +$10 shipping
	q := Price(25, CartPagePricing)

	assert.Equal(t, 25.0, q.ItemsPrice)
	assert.Equal(t, 2.5, q.TaxPrice)
	assert.Equal(t, 10.0, q.ShippingPrice)
	assert.Equal(t, 37.5, q.TotalPrice)
}

func TestCartPagePricingFreeShippingAboveThreshold(t *testing.T) {
	q := Price(60, CartPagePricing)

	assert.Equal(t, 0.0, q.ShippingPrice)
	assert.Equal(t, 66.0, q.TotalPrice)
}

func TestCartPagePricingChargesShippingAtThreshold(t *testing.T) {
	// shipping is free strictly above $50
	q := Price(50, CartPagePricing)

	assert.Equal(t, 10.0, q.ShippingPrice)
}

func TestCheckoutPricing(t *testing.T) {
	q := Price(100, CheckoutPricing)

	assert.Equal(t, 100.0, q.ItemsPrice)
	assert.InDelta(t, 7.0, q.TaxPrice, 1e-9)
	assert.Equal(t, 0.0, q.ShippingPrice)
	assert.InDelta(t, 107.0, q.TotalPrice, 1e-9)
}
