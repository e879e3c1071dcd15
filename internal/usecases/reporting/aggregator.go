package reporting

import (
	"github.com/storepulse/commerce-dashboard-api/internal/domain"
)

// The aggregators below each make one linear pass over an order slice. The
// channel is resolved once per order; every line-item value lands in that
// channel's accumulator and in the total.

func aggregateSales(classifier *domain.ChannelClassifier, orders []domain.Order) domain.ChannelTotals {
	var totals domain.ChannelTotals

	for _, order := range orders {
		channel := classifier.Classify(order.UTMSource)
		for _, item := range order.LineItems {
			totals.Add(channel, item.DiscountedUnitPrice*float64(revenueQuantity(item)))
		}
	}

	return totals
}

func aggregateCogs(classifier *domain.ChannelClassifier, orders []domain.Order) domain.ChannelTotals {
	var totals domain.ChannelTotals

	for _, order := range orders {
		channel := classifier.Classify(order.UTMSource)
		for _, item := range order.LineItems {
			totals.Add(channel, item.UnitCost*float64(revenueQuantity(item)))
		}
	}

	return totals
}

// quantityTotals accumulates unit counts per channel.
type quantityTotals struct {
	paidSocial int
	paidSearch int
	organic    int
	total      int
}

func (t *quantityTotals) add(channel domain.Channel, quantity int) {
	t.total += quantity

	switch channel {
	case domain.PaidSocial:
		t.paidSocial += quantity
	case domain.PaidSearch:
		t.paidSearch += quantity
	default:
		t.organic += quantity
	}
}

func aggregateQuantities(classifier *domain.ChannelClassifier, orders []domain.Order) quantityTotals {
	var totals quantityTotals

	for _, order := range orders {
		channel := classifier.Classify(order.UTMSource)
		for _, item := range order.LineItems {
			totals.add(channel, countQuantity(item))
		}
	}

	return totals
}

// revenueQuantity is the quantity used for revenue and cost math: a missing
// or zero quantity counts as one unit.
func revenueQuantity(item domain.LineItem) int {
	if item.Quantity == nil || *item.Quantity == 0 {
		return 1
	}

	return *item.Quantity
}

// countQuantity is the quantity used for pure counting: a missing quantity
// counts as zero. The asymmetry with revenueQuantity is deliberate and
// matches the dashboard's historical numbers.
func countQuantity(item domain.LineItem) int {
	if item.Quantity == nil {
		return 0
	}

	return *item.Quantity
}
