package reporting

import (
	"github.com/storepulse/commerce-dashboard-api/internal/domain"
)

// Reporter computes the dashboard's channel-attributed metrics for a date
// window. Every call paginates the full window fresh; results are never
// cached here.
type Reporter interface {
	// TotalSales sums discounted line-item revenue per channel.
	TotalSales(filters *domain.ReportFilters) (*domain.SalesReport, error)

	// TotalCogs sums line-item unit costs per channel.
	TotalCogs(filters *domain.ReportFilters) (*domain.CogsReport, error)

	// AdSpend sums Google and Meta ad spend for the window.
	AdSpend(filters *domain.ReportFilters) (*domain.AdSpendReport, error)

	// NetProfit combines sales, COGS, and ad spend per paid channel.
	NetProfit(filters *domain.ReportFilters) (*domain.NetProfitReport, error)

	// OrderCount counts orders and units sold per channel.
	OrderCount(filters *domain.ReportFilters) (*domain.OrderCountReport, error)

	// Roas computes gross, net, and break-even return on ad spend.
	Roas(filters *domain.ReportFilters) (*domain.RoasReport, error)

	// OrderStatsByTimeframe resolves a named timeframe and summarizes the
	// window's orders.
	OrderStatsByTimeframe(timeframe domain.Timeframe, startDate, endDate string) (*domain.OrderStats, error)
}
