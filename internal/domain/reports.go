package domain

// SalesReport is the per-channel revenue breakdown served by GET /sales.
type SalesReport struct {
	PaidSocialSales float64 `json:"paidSocialSales"`
	PaidSearchSales float64 `json:"paidSearchSales"`
	OrganicSales    float64 `json:"organicSales"`
	TotalSales      float64 `json:"totalSales"`
}

// CogsReport is the per-channel cost-of-goods breakdown served by GET /cogs.
type CogsReport struct {
	PaidSocialCogs float64 `json:"paidSocialCogs"`
	PaidSearchCogs float64 `json:"paidSearchCogs"`
	OrganicCogs    float64 `json:"organicCogs"`
	TotalCogs      float64 `json:"totalCogs"`
}

// AdSpendReport sums the window's spend across both ad platforms. Spend is
// an account-level aggregate per platform, not attributable per order.
type AdSpendReport struct {
	GoogleSpend float64 `json:"googleSpend"`
	MetaSpend   float64 `json:"metaSpend"`
	TotalSpend  float64 `json:"totalSpend"`
}

// NetProfitReport is sales minus COGS minus ad spend per paid channel.
// Organic carries no ad spend and is not reported here.
type NetProfitReport struct {
	PaidSocialNetProfit float64 `json:"paidSocialNetProfit"`
	PaidSearchNetProfit float64 `json:"paidSearchNetProfit"`
	TotalNetProfit      float64 `json:"totalNetProfit"`
}

// OrderCountReport counts orders and units sold per channel.
type OrderCountReport struct {
	OrderCount         int `json:"orderCount"`
	TotalQuantity      int `json:"totalQuantity"`
	PaidSocialQuantity int `json:"paidSocialQuantity"`
	PaidSearchQuantity int `json:"paidSearchQuantity"`
	OrganicQuantity    int `json:"organicQuantity"`
}

// RoasMetrics holds the three return-on-ad-spend variants for one channel.
// Values are nil when the channel had no ad spend in the window.
type RoasMetrics struct {
	GrossRoas     *float64 `json:"grossRoas"`
	NetRoas       *float64 `json:"netRoas"`
	BreakEvenRoas *float64 `json:"breakEvenRoas"`
}

// RoasReport is served by GET /roas. Organic is excluded: it has no ad
// spend denominator.
type RoasReport struct {
	PaidSocial RoasMetrics `json:"paidSocial"`
	PaidSearch RoasMetrics `json:"paidSearch"`
	Total      RoasMetrics `json:"total"`
}

// OrderStats is the headline summary served by GET /orders/:timeframe.
type OrderStats struct {
	OrderCount    int     `json:"orderCount"`
	TotalRevenue  float64 `json:"totalRevenue"`
	AvgOrderValue float64 `json:"avgOrderValue"`
	Currency      string  `json:"currency"`
}
