package googleads

import (
	"github.com/pkg/errors"
	"github.com/storepulse/commerce-dashboard-api/infrastructure/integrator/googleads/googleadsclient"
	"github.com/storepulse/commerce-dashboard-api/internal/config"
	"github.com/storepulse/commerce-dashboard-api/internal/domain"
)

// microsPerUnit converts the API's micro-currency cost into currency units.
const microsPerUnit = 1_000_000

// SpendIntegrator reports total Google Ads spend for a date window.
type SpendIntegrator interface {
	GetSpend(filters *domain.ReportFilters) (float64, error)
}

type GoogleAdsService struct {
	cfg    *config.Config
	Client googleadsclient.Client
}

func New(cfg *config.Config, client googleadsclient.Client) SpendIntegrator {
	return &GoogleAdsService{
		cfg:    cfg,
		Client: client,
	}
}

// GetSpend performs a fresh OAuth refresh-token exchange, queries account
// cost for the window, and normalizes it from micros.
func (s *GoogleAdsService) GetSpend(filters *domain.ReportFilters) (float64, error) {
	accessToken, err := s.Client.GetAccessToken()
	if err != nil {
		return 0, errors.Wrap(err, "obtaining Google Ads access token")
	}

	costMicros, err := s.Client.SearchCostMicros(accessToken, *filters.StartDate, *filters.EndDate)
	if err != nil {
		return 0, errors.Wrap(err, "fetching Google Ads cost")
	}

	return float64(costMicros) / microsPerUnit, nil
}
