package reporting

import (
	"testing"

	"github.com/storepulse/commerce-dashboard-api/internal/domain"
	"github.com/stretchr/testify/assert"
)

func testClassifier() *domain.ChannelClassifier {
	return domain.NewChannelClassifier([]string{
		"facebook", "instagram", "meta", "fb", "ig", "{{site_source_name}}",
	})
}

// sampleOrders is the fixture shared by the aggregator and service tests:
// one paid-social order, one paid-search order, and one organic order with a
// missing quantity.
func sampleOrders() []domain.Order {
	return []domain.Order{
		{
			ID:        "gid://shopify/Order/1",
			UTMSource: stringPtr("facebook"),
			LineItems: []domain.LineItem{
				{SKU: "SKU-A", Quantity: intPtr(2), DiscountedUnitPrice: 100, UnitCost: 40},
			},
		},
		{
			ID:        "gid://shopify/Order/2",
			UTMSource: stringPtr("google"),
			LineItems: []domain.LineItem{
				{SKU: "SKU-B", Quantity: intPtr(2), DiscountedUnitPrice: 25, UnitCost: 5},
			},
		},
		{
			ID: "gid://shopify/Order/3",
			LineItems: []domain.LineItem{
				{SKU: "SKU-C", Quantity: nil, DiscountedUnitPrice: 30, UnitCost: 6},
			},
		},
	}
}

func TestAggregateSales(t *testing.T) {
	totals := aggregateSales(testClassifier(), sampleOrders())

	assert.Equal(t, 200.0, totals.PaidSocial)
	assert.Equal(t, 50.0, totals.PaidSearch)
	assert.Equal(t, 30.0, totals.Organic)
	assert.Equal(t, 280.0, totals.Total)
	assert.Equal(t, totals.PaidSocial+totals.PaidSearch+totals.Organic, totals.Total)
}

func TestAggregateCogs(t *testing.T) {
	totals := aggregateCogs(testClassifier(), sampleOrders())

	assert.Equal(t, 80.0, totals.PaidSocial)
	assert.Equal(t, 10.0, totals.PaidSearch)
	assert.Equal(t, 6.0, totals.Organic)
	assert.Equal(t, 96.0, totals.Total)
}

func TestAggregateQuantities(t *testing.T) {
	totals := aggregateQuantities(testClassifier(), sampleOrders())

	// A missing quantity counts as zero here, unlike the revenue math.
	assert.Equal(t, 2, totals.paidSocial)
	assert.Equal(t, 2, totals.paidSearch)
	assert.Equal(t, 0, totals.organic)
	assert.Equal(t, 4, totals.total)
}

func TestQuantityDefaults(t *testing.T) {
	missing := domain.LineItem{Quantity: nil}
	zero := domain.LineItem{Quantity: intPtr(0)}
	three := domain.LineItem{Quantity: intPtr(3)}

	assert.Equal(t, 1, revenueQuantity(missing))
	assert.Equal(t, 1, revenueQuantity(zero))
	assert.Equal(t, 3, revenueQuantity(three))

	assert.Equal(t, 0, countQuantity(missing))
	assert.Equal(t, 0, countQuantity(zero))
	assert.Equal(t, 3, countQuantity(three))
}

func stringPtr(s string) *string {
	return &s
}

func intPtr(i int) *int {
	return &i
}
