package domain

// Wire types for the Shopify Admin GraphQL API. Optional upstream fields are
// pointers; absence is handled during mapping, never treated as an error.

type OrdersEnvelope struct {
	Data   *OrdersData    `json:"data"`
	Errors []GraphQLError `json:"errors"`
}

type GraphQLError struct {
	Message string `json:"message"`
}

type OrdersData struct {
	Orders OrdersConnection `json:"orders"`
}

type OrdersConnection struct {
	PageInfo PageInfo    `json:"pageInfo"`
	Edges    []OrderEdge `json:"edges"`
}

type PageInfo struct {
	HasNextPage bool    `json:"hasNextPage"`
	EndCursor   *string `json:"endCursor"`
}

type OrderEdge struct {
	Node OrderNode `json:"node"`
}

type OrderNode struct {
	ID              string           `json:"id"`
	Name            string           `json:"name"`
	CreatedAt       string           `json:"createdAt"`
	CustomerJourney *CustomerJourney `json:"customerJourney"`
	LineItems       LineItems        `json:"lineItems"`
	TotalPriceSet   *MoneyBag        `json:"totalPriceSet"`
}

type CustomerJourney struct {
	Moments []JourneyMoment `json:"moments"`
}

type JourneyMoment struct {
	UTMParameters *UTMParameters `json:"utmParameters"`
}

type UTMParameters struct {
	Source   string `json:"source"`
	Medium   string `json:"medium"`
	Campaign string `json:"campaign"`
	Content  string `json:"content"`
	Term     string `json:"term"`
}

type LineItems struct {
	Edges []LineItemEdge `json:"edges"`
}

type LineItemEdge struct {
	Node LineItemNode `json:"node"`
}

type LineItemNode struct {
	SKU                    string    `json:"sku"`
	Quantity               *int      `json:"quantity"`
	DiscountedUnitPriceSet *MoneyBag `json:"discountedUnitPriceSet"`
	Variant                *Variant  `json:"variant"`
}

type Variant struct {
	InventoryItem *InventoryItem `json:"inventoryItem"`
}

type InventoryItem struct {
	UnitCost *Money `json:"unitCost"`
}

type MoneyBag struct {
	ShopMoney Money `json:"shopMoney"`
}

// Money carries the amount as the decimal string Shopify serializes;
// mapping coerces unparseable amounts to zero.
type Money struct {
	Amount       string `json:"amount"`
	CurrencyCode string `json:"currencyCode"`
}
