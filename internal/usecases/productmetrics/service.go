package productmetrics

import (
	"github.com/pkg/errors"
	"github.com/storepulse/commerce-dashboard-api/infrastructure/repository"
	"github.com/storepulse/commerce-dashboard-api/internal/domain"
)

// ProductMetricService manages the product_metrics table behind the SKU
// dashboard's CRUD endpoints.
type ProductMetricService interface {
	List() ([]*domain.ProductMetric, error)
	Create(metric *domain.ProductMetric) (*domain.ProductMetric, error)
	Update(skuName string, metric *domain.ProductMetric) (*domain.ProductMetric, error)
	Delete(skuName string) error
}

type Service struct {
	repo repository.ProductMetricRepository
}

func NewService(repo repository.ProductMetricRepository) ProductMetricService {
	return &Service{repo: repo}
}

func (s *Service) List() ([]*domain.ProductMetric, error) {
	return s.repo.List()
}

func (s *Service) Create(metric *domain.ProductMetric) (*domain.ProductMetric, error) {
	if metric.SKUName == "" {
		return nil, errors.New("sku_name is required")
	}

	return s.repo.Create(metric)
}

func (s *Service) Update(skuName string, metric *domain.ProductMetric) (*domain.ProductMetric, error) {
	return s.repo.Update(skuName, metric)
}

func (s *Service) Delete(skuName string) error {
	return s.repo.Delete(skuName)
}
