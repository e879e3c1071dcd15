package reporting

import (
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/storepulse/commerce-dashboard-api/infrastructure/integrator/googleads"
	"github.com/storepulse/commerce-dashboard-api/infrastructure/integrator/metaads"
	"github.com/storepulse/commerce-dashboard-api/infrastructure/integrator/shopify"
	"github.com/storepulse/commerce-dashboard-api/internal/config"
	"github.com/storepulse/commerce-dashboard-api/internal/domain"
	"github.com/storepulse/commerce-dashboard-api/pkg/utils"
)

// Service implements Reporter. Derived metrics (net profit, ROAS) fetch the
// order window once and feed every aggregator from the same slice; each API
// call still runs its own full pagination.
type Service struct {
	cfg              *config.Config
	classifier       *domain.ChannelClassifier
	orderService     shopify.OrderIntegrator
	googleAdsService googleads.SpendIntegrator
	metaAdsService   metaads.SpendIntegrator
}

func NewService(
	cfg *config.Config,
	orderService shopify.OrderIntegrator,
	googleAdsService googleads.SpendIntegrator,
	metaAdsService metaads.SpendIntegrator,
) Reporter {
	return &Service{
		cfg:              cfg,
		classifier:       domain.NewChannelClassifier(cfg.Attribution.PaidSocialSources),
		orderService:     orderService,
		googleAdsService: googleAdsService,
		metaAdsService:   metaAdsService,
	}
}

func validateFilters(filters *domain.ReportFilters) error {
	if filters == nil || filters.StartDate == nil || filters.EndDate == nil {
		return errors.New("start and end dates are required")
	}

	if filters.StartDate.After(*filters.EndDate) {
		return errors.New("start date cannot be after end date")
	}

	return nil
}

func (s *Service) TotalSales(filters *domain.ReportFilters) (*domain.SalesReport, error) {
	if err := validateFilters(filters); err != nil {
		return nil, err
	}

	orders, err := s.orderService.GetOrders(filters)
	if err != nil {
		return nil, err
	}

	totals := aggregateSales(s.classifier, orders)

	return &domain.SalesReport{
		PaidSocialSales: totals.PaidSocial,
		PaidSearchSales: totals.PaidSearch,
		OrganicSales:    totals.Organic,
		TotalSales:      totals.Total,
	}, nil
}

func (s *Service) TotalCogs(filters *domain.ReportFilters) (*domain.CogsReport, error) {
	if err := validateFilters(filters); err != nil {
		return nil, err
	}

	orders, err := s.orderService.GetOrders(filters)
	if err != nil {
		return nil, err
	}

	totals := aggregateCogs(s.classifier, orders)

	return &domain.CogsReport{
		PaidSocialCogs: totals.PaidSocial,
		PaidSearchCogs: totals.PaidSearch,
		OrganicCogs:    totals.Organic,
		TotalCogs:      totals.Total,
	}, nil
}

// AdSpend fetches both platforms concurrently and waits for both. Either
// failure aborts the whole report; spend is never silently zeroed.
func (s *Service) AdSpend(filters *domain.ReportFilters) (*domain.AdSpendReport, error) {
	if err := validateFilters(filters); err != nil {
		return nil, err
	}

	var (
		googleSpend float64
		metaSpend   float64
		googleErr   error
		metaErr     error
	)

	wg := sync.WaitGroup{}
	wg.Add(2)

	go func() {
		defer wg.Done()
		googleSpend, googleErr = s.googleAdsService.GetSpend(filters)
	}()

	go func() {
		defer wg.Done()
		metaSpend, metaErr = s.metaAdsService.GetSpend(filters)
	}()

	wg.Wait()

	if googleErr != nil {
		return nil, errors.Wrap(googleErr, "aggregating ad spend")
	}
	if metaErr != nil {
		return nil, errors.Wrap(metaErr, "aggregating ad spend")
	}

	return &domain.AdSpendReport{
		GoogleSpend: googleSpend,
		MetaSpend:   metaSpend,
		TotalSpend:  googleSpend + metaSpend,
	}, nil
}

func (s *Service) NetProfit(filters *domain.ReportFilters) (*domain.NetProfitReport, error) {
	sales, cogs, adSpend, err := s.fetchProfitInputs(filters)
	if err != nil {
		return nil, err
	}

	return &domain.NetProfitReport{
		PaidSocialNetProfit: sales.PaidSocial - cogs.PaidSocial - adSpend.MetaSpend,
		PaidSearchNetProfit: sales.PaidSearch - cogs.PaidSearch - adSpend.GoogleSpend,
		TotalNetProfit:      sales.Total - cogs.Total - adSpend.TotalSpend,
	}, nil
}

func (s *Service) Roas(filters *domain.ReportFilters) (*domain.RoasReport, error) {
	sales, cogs, adSpend, err := s.fetchProfitInputs(filters)
	if err != nil {
		return nil, err
	}

	return &domain.RoasReport{
		PaidSocial: roasMetrics(sales.PaidSocial, cogs.PaidSocial, adSpend.MetaSpend),
		PaidSearch: roasMetrics(sales.PaidSearch, cogs.PaidSearch, adSpend.GoogleSpend),
		Total:      roasMetrics(sales.Total, cogs.Total, adSpend.TotalSpend),
	}, nil
}

func roasMetrics(revenue, cogs, adSpend float64) domain.RoasMetrics {
	return domain.RoasMetrics{
		GrossRoas:     utils.SafeDiv(revenue, adSpend),
		NetRoas:       utils.SafeDiv(revenue-cogs, adSpend),
		BreakEvenRoas: utils.SafeDiv(cogs+adSpend, adSpend),
	}
}

// fetchProfitInputs retrieves the order window once, runs the sales and COGS
// aggregators over the shared slice, and fetches ad spend concurrently with
// the order pagination.
func (s *Service) fetchProfitInputs(filters *domain.ReportFilters) (sales, cogs domain.ChannelTotals, adSpend *domain.AdSpendReport, err error) {
	if err = validateFilters(filters); err != nil {
		return
	}

	var (
		orders     []domain.Order
		ordersErr  error
		adSpendErr error
	)

	wg := sync.WaitGroup{}
	wg.Add(2)

	go func() {
		defer wg.Done()
		orders, ordersErr = s.orderService.GetOrders(filters)
	}()

	go func() {
		defer wg.Done()
		adSpend, adSpendErr = s.AdSpend(filters)
	}()

	wg.Wait()

	if ordersErr != nil {
		err = ordersErr
		return
	}
	if adSpendErr != nil {
		err = adSpendErr
		return
	}

	sales = aggregateSales(s.classifier, orders)
	cogs = aggregateCogs(s.classifier, orders)
	return
}

func (s *Service) OrderCount(filters *domain.ReportFilters) (*domain.OrderCountReport, error) {
	if err := validateFilters(filters); err != nil {
		return nil, err
	}

	orders, err := s.orderService.GetOrderQuantities(filters)
	if err != nil {
		return nil, err
	}

	totals := aggregateQuantities(s.classifier, orders)

	return &domain.OrderCountReport{
		OrderCount:         len(orders),
		TotalQuantity:      totals.total,
		PaidSocialQuantity: totals.paidSocial,
		PaidSearchQuantity: totals.paidSearch,
		OrganicQuantity:    totals.organic,
	}, nil
}

func (s *Service) OrderStatsByTimeframe(timeframe domain.Timeframe, startDate, endDate string) (*domain.OrderStats, error) {
	dateRange, err := domain.ResolveDateRange(timeframe, time.Now().UTC(), startDate, endDate)
	if err != nil {
		return nil, err
	}

	return s.orderService.GetOrderStats(&domain.ReportFilters{
		StartDate: &dateRange.Start,
		EndDate:   &dateRange.End,
	})
}
