package googleadsclient

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/pkg/errors"
)

type searchRequest struct {
	Query string `json:"query"`
}

type searchResponse struct {
	Results []searchResult `json:"results"`
}

type searchResult struct {
	Metrics *searchMetrics `json:"metrics"`
}

// searchMetrics accepts both field spellings the API has been observed to
// return for the cost metric.
type searchMetrics struct {
	CostMicros      json.Number `json:"costMicros"`
	CostMicrosSnake json.Number `json:"cost_micros"`
}

// SearchCostMicros queries total account cost for the window via the Google
// Ads search endpoint. The value comes back in micro-currency units.
func (c *GoogleAdsClient) SearchCostMicros(accessToken string, startDate, endDate time.Time) (int64, error) {
	query := fmt.Sprintf(
		"SELECT metrics.cost_micros FROM customer WHERE segments.date BETWEEN '%s' AND '%s'",
		startDate.Format(time.DateOnly),
		endDate.Format(time.DateOnly),
	)

	payload, err := json.Marshal(searchRequest{Query: query})
	if err != nil {
		return 0, errors.Wrap(err, "encoding Google Ads search request")
	}

	url := fmt.Sprintf(
		"%s/customers/%s/googleAds:search",
		c.cfg.GoogleAds.APIURL,
		c.cfg.GoogleAds.CustomerID,
	)

	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return 0, errors.Wrap(err, "creating Google Ads search request")
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("developer-token", c.cfg.GoogleAds.DeveloperToken)
	req.Header.Set("login-customer-id", c.cfg.GoogleAds.LoginCustomerID)
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, errors.Wrap(err, "executing Google Ads search request")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, errors.Wrap(err, "reading Google Ads search response")
	}

	if resp.StatusCode != http.StatusOK {
		return 0, errors.Errorf("Google Ads search failed with status %s: %s", resp.Status, body)
	}

	var response searchResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return 0, errors.Wrap(err, "decoding Google Ads search response")
	}

	// An empty result set means no spend for the window.
	if len(response.Results) == 0 || response.Results[0].Metrics == nil {
		return 0, nil
	}

	return response.Results[0].Metrics.costMicros(), nil
}

func (m *searchMetrics) costMicros() int64 {
	raw := m.CostMicros
	if raw == "" {
		raw = m.CostMicrosSnake
	}
	if raw == "" {
		return 0
	}

	micros, err := raw.Int64()
	if err != nil {
		return 0
	}

	return micros
}
