package shopifyclient

import (
	"fmt"
	"time"

	shopifydomain "github.com/storepulse/commerce-dashboard-api/infrastructure/integrator/shopify/domain"
	"github.com/storepulse/commerce-dashboard-api/internal/domain"
)

// storeTimezoneOffset is the store's fixed local offset; every created_at
// bound sent to Shopify is rendered in it.
const storeTimezoneOffset = "+05:30"

const (
	ordersPageSize     = 50
	statsPageSize      = 250
	lineItemsPerOrder  = 10
	lineItemsCountOnly = 100
)

// ordersQuery pulls everything the sales and COGS aggregators need: prices,
// unit costs, and the customer journey for UTM attribution.
var ordersQuery = fmt.Sprintf(`
query getOrders($query: String!, $first: Int!, $after: String) {
	orders(query: $query, first: $first, after: $after, reverse: true) {
		pageInfo { hasNextPage endCursor }
		edges {
			node {
				id
				name
				createdAt
				customerJourney {
					moments {
						... on CustomerVisit {
							utmParameters { source medium campaign content term }
						}
					}
				}
				lineItems(first: %d) {
					edges {
						node {
							sku
							quantity
							discountedUnitPriceSet: discountedUnitPriceAfterAllDiscountsSet {
								shopMoney { amount currencyCode }
							}
							variant {
								inventoryItem { unitCost { amount currencyCode } }
							}
						}
					}
				}
			}
		}
	}
}`, lineItemsPerOrder)

// orderQuantitiesQuery is the slim shape used for counting: quantities and
// the UTM source only, with a deeper line-item bound.
var orderQuantitiesQuery = fmt.Sprintf(`
query getOrderQuantities($query: String!, $first: Int!, $after: String) {
	orders(query: $query, first: $first, after: $after, reverse: true) {
		pageInfo { hasNextPage endCursor }
		edges {
			node {
				id
				customerJourney {
					moments {
						... on CustomerVisit {
							utmParameters { source }
						}
					}
				}
				lineItems(first: %d) {
					edges { node { quantity } }
				}
			}
		}
	}
}`, lineItemsCountOnly)

// orderTotalsQuery fetches only order totals, at the maximum page size.
const orderTotalsQuery = `
query getOrderTotals($query: String!, $first: Int!, $after: String) {
	orders(query: $query, first: $first, after: $after, reverse: true) {
		pageInfo { hasNextPage endCursor }
		edges {
			node {
				id
				createdAt
				totalPriceSet { shopMoney { amount currencyCode } }
			}
		}
	}
}`

func (c *ShopifyClient) GetOrders(filters *domain.ReportFilters) ([]shopifydomain.OrderNode, error) {
	return c.paginate(ordersQuery, filters, ordersPageSize)
}

func (c *ShopifyClient) GetOrderQuantities(filters *domain.ReportFilters) ([]shopifydomain.OrderNode, error) {
	return c.paginate(orderQuantitiesQuery, filters, ordersPageSize)
}

func (c *ShopifyClient) GetOrderTotals(filters *domain.ReportFilters) ([]shopifydomain.OrderNode, error) {
	return c.paginate(orderTotalsQuery, filters, statsPageSize)
}

// buildCreatedAtQuery renders the date window as a Shopify search clause.
// The lower bound expands to start of day and the upper bound to 23:59:59 of
// the end date, so the end date is effectively inclusive even though named
// timeframes already pass an exclusive end.
func buildCreatedAtQuery(filters *domain.ReportFilters) string {
	return fmt.Sprintf(
		"created_at:>='%sT00:00:00%s' AND created_at<'%sT23:59:59%s'",
		filters.StartDate.Format(time.DateOnly), storeTimezoneOffset,
		filters.EndDate.Format(time.DateOnly), storeTimezoneOffset,
	)
}
