package googleadsclient

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/storepulse/commerce-dashboard-api/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(tokenURL, apiURL string) *config.Config {
	return &config.Config{
		GoogleAds: config.GoogleAds{
			ClientID:        "client-id",
			ClientSecret:    "client-secret",
			RefreshToken:    "refresh-token",
			DeveloperToken:  "dev-token",
			CustomerID:      "1234567890",
			LoginCustomerID: "0987654321",
			TokenURL:        tokenURL,
			APIURL:          apiURL,
		},
	}
}

func TestGetAccessToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "refresh_token", r.PostForm.Get("grant_type"))
		assert.Equal(t, "client-id", r.PostForm.Get("client_id"))
		assert.Equal(t, "refresh-token", r.PostForm.Get("refresh_token"))

		json.NewEncoder(w).Encode(map[string]any{
			"access_token": "ya29.fresh",
			"token_type":   "Bearer",
			"expires_in":   3599,
		})
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL, ""))

	token, err := client.GetAccessToken()

	require.NoError(t, err)
	assert.Equal(t, "ya29.fresh", token)
}

func TestGetAccessToken_EmptyTokenIsAnError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"token_type": "Bearer"})
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL, ""))

	_, err := client.GetAccessToken()
	assert.Error(t, err)
}

func TestSearchCostMicros(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/customers/1234567890/googleAds:search", r.URL.Path)
		assert.Equal(t, "dev-token", r.Header.Get("developer-token"))
		assert.Equal(t, "0987654321", r.Header.Get("login-customer-id"))
		assert.Equal(t, "Bearer ya29.fresh", r.Header.Get("Authorization"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t,
			"SELECT metrics.cost_micros FROM customer WHERE segments.date BETWEEN '2024-01-01' AND '2024-01-31'",
			body["query"],
		)

		w.Write([]byte(`{"results": [{"metrics": {"costMicros": "12345678"}}]}`))
	}))
	defer server.Close()

	client := NewClient(testConfig("", server.URL))

	micros, err := client.SearchCostMicros(
		"ya29.fresh",
		time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC),
	)

	require.NoError(t, err)
	assert.Equal(t, int64(12345678), micros)
}

func TestSearchCostMicros_AcceptsSnakeCaseMetric(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"results": [{"metrics": {"cost_micros": 9900000}}]}`))
	}))
	defer server.Close()

	client := NewClient(testConfig("", server.URL))

	micros, err := client.SearchCostMicros("token", time.Now(), time.Now())

	require.NoError(t, err)
	assert.Equal(t, int64(9900000), micros)
}

func TestSearchCostMicros_EmptyResultsMeanZeroSpend(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"results": []}`))
	}))
	defer server.Close()

	client := NewClient(testConfig("", server.URL))

	micros, err := client.SearchCostMicros("token", time.Now(), time.Now())

	require.NoError(t, err)
	assert.Equal(t, int64(0), micros)
}
