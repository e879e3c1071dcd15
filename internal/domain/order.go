package domain

import "time"

// Order is one storefront order as retrieved from Shopify, alive only for
// the duration of an aggregation pass. UTMSource is the lowercased source of
// the first journey moment that carried UTM parameters, nil when the
// customer journey has none.
type Order struct {
	ID        string
	Name      string
	CreatedAt time.Time
	UTMSource *string
	LineItems []LineItem
}

// LineItem carries the per-unit amounts used by the sales and COGS
// aggregators. Quantity is nil when Shopify omitted or returned an invalid
// value; each aggregator applies its own default.
type LineItem struct {
	SKU                 string
	Quantity            *int
	DiscountedUnitPrice float64
	UnitCost            float64
}

// ReportFilters is the resolved date window of a metric request. Both
// bounds are calendar dates; End is serialized end-of-day inclusive when
// sent to Shopify (see the shopify integrator).
type ReportFilters struct {
	StartDate *time.Time
	EndDate   *time.Time
}
