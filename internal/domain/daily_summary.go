package domain

import "time"

// DailySummary is one day's precomputed headline metrics, written by the
// summary sync scheduler so the dashboard has history without re-walking
// Shopify pagination.
type DailySummary struct {
	Date         time.Time `json:"date"`
	TotalSales   float64   `json:"total_sales"`
	TotalCogs    float64   `json:"total_cogs"`
	TotalAdSpend float64   `json:"total_ad_spend"`
	NetProfit    float64   `json:"net_profit"`
	OrderCount   int       `json:"order_count"`
	UpdatedAt    time.Time `json:"updated_at"`
}
