package checkout

// PricingOptions parameterize tax and shipping. The storefront has two
// historical presets that disagree on the tax rate; both are kept here
// explicitly rather than duplicated across flows.
type PricingOptions struct {
	TaxRate         float64
	FreeShippingMin float64 // subtotal above which shipping is free
	ShippingFlat    float64 // flat fee below the threshold
}

// CartPagePricing is the cart-page quote: 10% tax, free shipping over
// $50, $10 flat otherwise.
var CartPagePricing = PricingOptions{
	TaxRate:         0.10,
	FreeShippingMin: 50,
	ShippingFlat:    10,
}

// CheckoutPricing is the checkout-submission quote: 7% tax, no
// shipping charge. The rate drift against CartPagePricing is inherited
// from the storefront and kept deliberate and visible here.
var CheckoutPricing = PricingOptions{
	TaxRate: 0.07,
}

// Quote is a priced order summary.
type Quote struct {
	ItemsPrice    float64
	TaxPrice      float64
	ShippingPrice float64
	TotalPrice    float64
}

// Price derives a quote from a subtotal.
func Price(subtotal float64, opts PricingOptions) Quote {
	shipping := 0.0
	if opts.ShippingFlat > 0 && subtotal <= opts.FreeShippingMin {
		shipping = opts.ShippingFlat
	}
	tax := subtotal * opts.TaxRate
	return Quote{
		ItemsPrice:    subtotal,
		TaxPrice:      tax,
		ShippingPrice: shipping,
		TotalPrice:    subtotal + tax + shipping,
	}
}
