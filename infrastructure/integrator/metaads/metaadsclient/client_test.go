package metaadsclient

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/storepulse/commerce-dashboard-api/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(baseURL string) *config.Config {
	return &config.Config{
		MetaAds: config.MetaAds{
			URL:         baseURL,
			AccessToken: "meta-token",
			AdAccountID: "123456",
		},
	}
}

func TestGetAccountSpend(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/act_123456/insights", r.URL.Path)

		query := r.URL.Query()
		assert.Equal(t, "spend", query.Get("fields"))
		assert.Equal(t, "account", query.Get("level"))
		assert.Equal(t, `{"since":"2024-01-01","until":"2024-01-31"}`, query.Get("time_range"))
		assert.Equal(t, "meta-token", query.Get("access_token"))

		w.Write([]byte(`{"data": [{"spend": "1234.56"}]}`))
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL))

	spend, err := client.GetAccountSpend(
		time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC),
	)

	require.NoError(t, err)
	assert.Equal(t, 1234.56, spend)
}

func TestGetAccountSpend_EmptyDataMeansZero(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data": []}`))
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL))

	spend, err := client.GetAccountSpend(time.Now(), time.Now())

	require.NoError(t, err)
	assert.Equal(t, 0.0, spend)
}

func TestGetAccountSpend_UpstreamErrorAborts(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error": {"message": "Invalid OAuth access token"}}`))
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL))

	spend, err := client.GetAccountSpend(time.Now(), time.Now())

	assert.Error(t, err)
	assert.Equal(t, 0.0, spend)
}

func TestParseSpend(t *testing.T) {
	assert.Equal(t, 99.5, parseSpend("99.5"))
	assert.Equal(t, 0.0, parseSpend(""))
	assert.Equal(t, 0.0, parseSpend("abc"))
}
