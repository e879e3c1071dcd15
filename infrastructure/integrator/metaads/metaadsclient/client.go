package metaadsclient

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/storepulse/commerce-dashboard-api/internal/config"
	"github.com/storepulse/commerce-dashboard-api/pkg/utils"
)

type Client interface {
	GetAccountSpend(startDate, endDate time.Time) (float64, error)
}

type MetaAdsClient struct {
	cfg *config.Config
}

func NewClient(cfg *config.Config) Client {
	return &MetaAdsClient{cfg: cfg}
}

type insightsResponse struct {
	Data []insightRecord `json:"data"`
}

type insightRecord struct {
	Spend string `json:"spend"`
}

// GetAccountSpend queries the single account-level insights record for the
// window. An empty data array means no spend; a failed request is an error.
func (c *MetaAdsClient) GetAccountSpend(startDate, endDate time.Time) (float64, error) {
	timeRange := fmt.Sprintf(
		`{"since":"%s","until":"%s"}`,
		startDate.Format(time.DateOnly),
		endDate.Format(time.DateOnly),
	)

	params := url.Values{}
	params.Set("fields", "spend")
	params.Set("level", "account")
	params.Set("time_range", timeRange)
	params.Set("access_token", c.cfg.MetaAds.AccessToken)

	requestURL := fmt.Sprintf(
		"%s/act_%s/insights?%s",
		c.cfg.MetaAds.URL,
		c.cfg.MetaAds.AdAccountID,
		params.Encode(),
	)

	body, err := utils.MakeRequest(requestURL)
	if err != nil {
		return 0, errors.Wrap(err, "requesting Meta insights")
	}

	var response insightsResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return 0, errors.Wrap(err, "decoding Meta insights response")
	}

	if len(response.Data) == 0 {
		return 0, nil
	}

	return parseSpend(response.Data[0].Spend), nil
}

// parseSpend coerces the API's decimal string to float64, zero on absence
// or malformed input.
func parseSpend(spend string) float64 {
	value, err := strconv.ParseFloat(spend, 64)
	if err != nil {
		return 0
	}

	return value
}
