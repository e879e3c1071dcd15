package shopify

import (
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	shopifydomain "github.com/storepulse/commerce-dashboard-api/infrastructure/integrator/shopify/domain"
	"github.com/storepulse/commerce-dashboard-api/infrastructure/integrator/shopify/shopifyclient"
	"github.com/storepulse/commerce-dashboard-api/internal/config"
	"github.com/storepulse/commerce-dashboard-api/internal/domain"
)

// OrderIntegrator retrieves every order in a date window, with upstream
// pagination handled transparently. Each call starts a fresh pagination run;
// nothing is cached.
type OrderIntegrator interface {
	GetOrders(filters *domain.ReportFilters) ([]domain.Order, error)
	GetOrderQuantities(filters *domain.ReportFilters) ([]domain.Order, error)
	GetOrderStats(filters *domain.ReportFilters) (*domain.OrderStats, error)
}

type ShopifyService struct {
	cfg    *config.Config
	Client shopifyclient.Client
}

func New(cfg *config.Config, client shopifyclient.Client) OrderIntegrator {
	return &ShopifyService{
		cfg:    cfg,
		Client: client,
	}
}

func (s *ShopifyService) GetOrders(filters *domain.ReportFilters) ([]domain.Order, error) {
	nodes, err := s.Client.GetOrders(filters)
	if err != nil {
		return nil, errors.Wrap(err, "fetching orders from Shopify")
	}

	return mapOrders(nodes), nil
}

func (s *ShopifyService) GetOrderQuantities(filters *domain.ReportFilters) ([]domain.Order, error) {
	nodes, err := s.Client.GetOrderQuantities(filters)
	if err != nil {
		return nil, errors.Wrap(err, "fetching order quantities from Shopify")
	}

	return mapOrders(nodes), nil
}

// GetOrderStats summarizes order count, revenue, and average order value for
// the window using the slim totals query.
func (s *ShopifyService) GetOrderStats(filters *domain.ReportFilters) (*domain.OrderStats, error) {
	nodes, err := s.Client.GetOrderTotals(filters)
	if err != nil {
		return nil, errors.Wrap(err, "fetching order totals from Shopify")
	}

	stats := &domain.OrderStats{
		OrderCount: len(nodes),
		Currency:   "INR",
	}

	for _, node := range nodes {
		if node.TotalPriceSet != nil {
			stats.TotalRevenue += parseAmount(node.TotalPriceSet.ShopMoney.Amount)
		}
	}

	if stats.OrderCount > 0 {
		stats.AvgOrderValue = stats.TotalRevenue / float64(stats.OrderCount)

		if node := nodes[0]; node.TotalPriceSet != nil && node.TotalPriceSet.ShopMoney.CurrencyCode != "" {
			stats.Currency = node.TotalPriceSet.ShopMoney.CurrencyCode
		}
	}

	return stats, nil
}

func mapOrders(nodes []shopifydomain.OrderNode) []domain.Order {
	orders := make([]domain.Order, 0, len(nodes))
	for _, node := range nodes {
		orders = append(orders, mapOrder(node))
	}

	return orders
}

func mapOrder(node shopifydomain.OrderNode) domain.Order {
	order := domain.Order{
		ID:        node.ID,
		Name:      node.Name,
		UTMSource: firstUTMSource(node.CustomerJourney),
	}

	if createdAt, err := time.Parse(time.RFC3339, node.CreatedAt); err == nil {
		order.CreatedAt = createdAt
	}

	for _, edge := range node.LineItems.Edges {
		order.LineItems = append(order.LineItems, mapLineItem(edge.Node))
	}

	return order
}

func mapLineItem(node shopifydomain.LineItemNode) domain.LineItem {
	item := domain.LineItem{
		SKU:      node.SKU,
		Quantity: node.Quantity,
	}

	if node.DiscountedUnitPriceSet != nil {
		item.DiscountedUnitPrice = parseAmount(node.DiscountedUnitPriceSet.ShopMoney.Amount)
	}

	if node.Variant != nil && node.Variant.InventoryItem != nil && node.Variant.InventoryItem.UnitCost != nil {
		item.UnitCost = parseAmount(node.Variant.InventoryItem.UnitCost.Amount)
	}

	return item
}

// firstUTMSource scans journey moments in upstream order and returns the
// first non-empty UTM source, lowercased. First match wins, not best match.
func firstUTMSource(journey *shopifydomain.CustomerJourney) *string {
	if journey == nil {
		return nil
	}

	for _, moment := range journey.Moments {
		if moment.UTMParameters != nil && moment.UTMParameters.Source != "" {
			source := strings.ToLower(moment.UTMParameters.Source)
			return &source
		}
	}

	return nil
}

// parseAmount coerces Shopify's decimal strings to float64, treating
// missing or malformed amounts as zero.
func parseAmount(amount string) float64 {
	if amount == "" {
		return 0
	}

	value, err := strconv.ParseFloat(amount, 64)
	if err != nil {
		return 0
	}

	return value
}
