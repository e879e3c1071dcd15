package domain

// ProductMetric is one row of the product_metrics table managed by the SKU
// dashboard. SKUName is the business key used by the update and delete
// endpoints.
type ProductMetric struct {
	ProductName   string  `json:"product_name"`
	Size          string  `json:"size"`
	SKUName       string  `json:"sku_name"`
	SellingPrice  float64 `json:"selling_price"`
	PerBottleCost float64 `json:"per_bottle_cost"`
	NetMargin     float64 `json:"net_margin"`
}
