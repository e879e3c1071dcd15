package shopifyclient

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/storepulse/commerce-dashboard-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testWindow() *domain.ReportFilters {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)

	return &domain.ReportFilters{StartDate: &start, EndDate: &end}
}

func TestGetOrders_PaginatesUntilLastPage(t *testing.T) {
	var requests []map[string]any

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "shpat_test", r.Header.Get("X-Shopify-Access-Token"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		requests = append(requests, body)

		if len(requests) == 1 {
			w.Write([]byte(`{
				"data": {"orders": {
					"pageInfo": {"hasNextPage": true, "endCursor": "cursor-1"},
					"edges": [
						{"node": {"id": "gid://shopify/Order/1", "name": "#1001", "createdAt": "2024-01-02T10:00:00Z"}},
						{"node": {"id": "gid://shopify/Order/2", "name": "#1002", "createdAt": "2024-01-03T10:00:00Z"}}
					]
				}}
			}`))
			return
		}

		w.Write([]byte(`{
			"data": {"orders": {
				"pageInfo": {"hasNextPage": false, "endCursor": null},
				"edges": [
					{"node": {"id": "gid://shopify/Order/3", "name": "#1003", "createdAt": "2024-01-04T10:00:00Z"}}
				]
			}}
		}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "shpat_test")

	orders, err := client.GetOrders(testWindow())

	require.NoError(t, err)
	require.Len(t, orders, 3)
	assert.Equal(t, "gid://shopify/Order/1", orders[0].ID)
	assert.Equal(t, "gid://shopify/Order/3", orders[2].ID)

	require.Len(t, requests, 2)

	firstVars := requests[0]["variables"].(map[string]any)
	assert.Nil(t, firstVars["after"])
	assert.Equal(t, float64(ordersPageSize), firstVars["first"])
	assert.Contains(t, firstVars["query"],
		"created_at:>='2024-01-01T00:00:00+05:30' AND created_at<'2024-01-31T23:59:59+05:30'")

	secondVars := requests[1]["variables"].(map[string]any)
	assert.Equal(t, "cursor-1", secondVars["after"])
}

func TestGetOrders_MidPaginationFailureDiscardsEverything(t *testing.T) {
	var calls int

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++

		if calls == 1 {
			w.Write([]byte(`{
				"data": {"orders": {
					"pageInfo": {"hasNextPage": true, "endCursor": "cursor-1"},
					"edges": [{"node": {"id": "gid://shopify/Order/1"}}]
				}}
			}`))
			return
		}

		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewClient(server.URL, "shpat_test")

	orders, err := client.GetOrders(testWindow())

	assert.Error(t, err)
	assert.Nil(t, orders)
	assert.Equal(t, 2, calls)
}

func TestGetOrders_GraphQLLevelErrorsAbort(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"errors": [{"message": "Throttled"}]}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "shpat_test")

	orders, err := client.GetOrders(testWindow())

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Throttled")
	assert.Nil(t, orders)
}

func TestGetOrderTotals_UsesLargerPageSize(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))

		vars := body["variables"].(map[string]any)
		assert.Equal(t, float64(statsPageSize), vars["first"])

		w.Write([]byte(`{
			"data": {"orders": {
				"pageInfo": {"hasNextPage": false, "endCursor": null},
				"edges": [{"node": {"id": "gid://shopify/Order/1", "totalPriceSet": {"shopMoney": {"amount": "499.00", "currencyCode": "INR"}}}}]
			}}
		}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "shpat_test")

	orders, err := client.GetOrderTotals(testWindow())

	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, "499.00", orders[0].TotalPriceSet.ShopMoney.Amount)
}

func TestBuildCreatedAtQuery(t *testing.T) {
	query := buildCreatedAtQuery(testWindow())

	assert.Equal(t,
		"created_at:>='2024-01-01T00:00:00+05:30' AND created_at<'2024-01-31T23:59:59+05:30'",
		query,
	)
}
