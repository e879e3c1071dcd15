package googleadsclient

import (
	"net/http"
	"time"

	"github.com/storepulse/commerce-dashboard-api/internal/config"
)

type Client interface {
	GetAccessToken() (string, error)
	SearchCostMicros(accessToken string, startDate, endDate time.Time) (int64, error)
}

type GoogleAdsClient struct {
	cfg        *config.Config
	httpClient *http.Client
}

func NewClient(cfg *config.Config) Client {
	return &GoogleAdsClient{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}
