package metaads

import (
	"github.com/pkg/errors"
	"github.com/storepulse/commerce-dashboard-api/infrastructure/integrator/metaads/metaadsclient"
	"github.com/storepulse/commerce-dashboard-api/internal/config"
	"github.com/storepulse/commerce-dashboard-api/internal/domain"
)

// SpendIntegrator reports total Meta ads spend for a date window.
type SpendIntegrator interface {
	GetSpend(filters *domain.ReportFilters) (float64, error)
}

type MetaAdsService struct {
	cfg    *config.Config
	Client metaadsclient.Client
}

func New(cfg *config.Config, client metaadsclient.Client) SpendIntegrator {
	return &MetaAdsService{
		cfg:    cfg,
		Client: client,
	}
}

func (s *MetaAdsService) GetSpend(filters *domain.ReportFilters) (float64, error) {
	spend, err := s.Client.GetAccountSpend(*filters.StartDate, *filters.EndDate)
	if err != nil {
		return 0, errors.Wrap(err, "fetching Meta ads spend")
	}

	return spend, nil
}
