package reporting

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	googleadsmocks "github.com/storepulse/commerce-dashboard-api/infrastructure/integrator/googleads/mocks"
	metaadsmocks "github.com/storepulse/commerce-dashboard-api/infrastructure/integrator/metaads/mocks"
	shopifymocks "github.com/storepulse/commerce-dashboard-api/infrastructure/integrator/shopify/mocks"
	"github.com/storepulse/commerce-dashboard-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func testFilters() *domain.ReportFilters {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)

	return &domain.ReportFilters{StartDate: &start, EndDate: &end}
}

type serviceMocks struct {
	orders *shopifymocks.MockOrderIntegrator
	google *googleadsmocks.MockSpendIntegrator
	meta   *metaadsmocks.MockSpendIntegrator
}

func newTestService(ctrl *gomock.Controller) (*Service, serviceMocks) {
	m := serviceMocks{
		orders: shopifymocks.NewMockOrderIntegrator(ctrl),
		google: googleadsmocks.NewMockSpendIntegrator(ctrl),
		meta:   metaadsmocks.NewMockSpendIntegrator(ctrl),
	}

	service := &Service{
		classifier:       testClassifier(),
		orderService:     m.orders,
		googleAdsService: m.google,
		metaAdsService:   m.meta,
	}

	return service, m
}

func TestService_TotalSales(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestService(ctrl)
	filters := testFilters()

	m.orders.EXPECT().GetOrders(filters).Return(sampleOrders(), nil)

	report, err := service.TotalSales(filters)

	assert.NoError(t, err)
	assert.Equal(t, 200.0, report.PaidSocialSales)
	assert.Equal(t, 50.0, report.PaidSearchSales)
	assert.Equal(t, 30.0, report.OrganicSales)
	assert.Equal(t, 280.0, report.TotalSales)
}

func TestService_TotalSales_UpstreamError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestService(ctrl)
	filters := testFilters()

	m.orders.EXPECT().GetOrders(filters).Return(nil, errors.New("shopify down"))

	report, err := service.TotalSales(filters)

	assert.Error(t, err)
	assert.Nil(t, report)
}

func TestService_TotalCogs(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestService(ctrl)
	filters := testFilters()

	m.orders.EXPECT().GetOrders(filters).Return(sampleOrders(), nil)

	report, err := service.TotalCogs(filters)

	assert.NoError(t, err)
	assert.Equal(t, 80.0, report.PaidSocialCogs)
	assert.Equal(t, 10.0, report.PaidSearchCogs)
	assert.Equal(t, 6.0, report.OrganicCogs)
	assert.Equal(t, 96.0, report.TotalCogs)
}

func TestService_AdSpend(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestService(ctrl)
	filters := testFilters()

	m.google.EXPECT().GetSpend(filters).Return(50.0, nil)
	m.meta.EXPECT().GetSpend(filters).Return(100.0, nil)

	report, err := service.AdSpend(filters)

	assert.NoError(t, err)
	assert.Equal(t, 50.0, report.GoogleSpend)
	assert.Equal(t, 100.0, report.MetaSpend)
	assert.Equal(t, 150.0, report.TotalSpend)
}

func TestService_AdSpend_EitherPlatformFailureAborts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestService(ctrl)
	filters := testFilters()

	m.google.EXPECT().GetSpend(filters).Return(0.0, errors.New("quota exceeded"))
	m.meta.EXPECT().GetSpend(filters).Return(100.0, nil)

	report, err := service.AdSpend(filters)

	assert.Error(t, err)
	assert.Nil(t, report)
}

func TestService_NetProfit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestService(ctrl)
	filters := testFilters()

	// The order window is fetched once and shared by the sales and COGS
	// aggregations.
	m.orders.EXPECT().GetOrders(filters).Return(sampleOrders(), nil).Times(1)
	m.google.EXPECT().GetSpend(filters).Return(50.0, nil)
	m.meta.EXPECT().GetSpend(filters).Return(100.0, nil)

	report, err := service.NetProfit(filters)

	assert.NoError(t, err)
	assert.Equal(t, 20.0, report.PaidSocialNetProfit)  // 200 - 80 - 100
	assert.Equal(t, -10.0, report.PaidSearchNetProfit) // 50 - 10 - 50
	assert.Equal(t, 34.0, report.TotalNetProfit)       // 280 - 96 - 150
}

func TestService_Roas(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestService(ctrl)
	filters := testFilters()

	m.orders.EXPECT().GetOrders(filters).Return(sampleOrders(), nil).Times(1)
	m.google.EXPECT().GetSpend(filters).Return(50.0, nil)
	m.meta.EXPECT().GetSpend(filters).Return(100.0, nil)

	report, err := service.Roas(filters)

	assert.NoError(t, err)

	assert.Equal(t, 2.0, *report.PaidSocial.GrossRoas)     // 200 / 100
	assert.Equal(t, 1.2, *report.PaidSocial.NetRoas)       // (200 - 80) / 100
	assert.Equal(t, 1.8, *report.PaidSocial.BreakEvenRoas) // (80 + 100) / 100

	assert.Equal(t, 1.0, *report.PaidSearch.GrossRoas)
	assert.InDelta(t, 280.0/150.0, *report.Total.GrossRoas, 1e-9)
}

func TestService_Roas_ZeroSpendYieldsNilRatios(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestService(ctrl)
	filters := testFilters()

	m.orders.EXPECT().GetOrders(filters).Return(sampleOrders(), nil).Times(1)
	m.google.EXPECT().GetSpend(filters).Return(0.0, nil)
	m.meta.EXPECT().GetSpend(filters).Return(0.0, nil)

	report, err := service.Roas(filters)

	assert.NoError(t, err)
	assert.Nil(t, report.PaidSocial.GrossRoas)
	assert.Nil(t, report.PaidSearch.NetRoas)
	assert.Nil(t, report.Total.BreakEvenRoas)
}

func TestService_OrderCount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestService(ctrl)
	filters := testFilters()

	m.orders.EXPECT().GetOrderQuantities(filters).Return(sampleOrders(), nil)

	report, err := service.OrderCount(filters)

	assert.NoError(t, err)
	assert.Equal(t, 3, report.OrderCount)
	assert.Equal(t, 4, report.TotalQuantity)
	assert.Equal(t, 2, report.PaidSocialQuantity)
	assert.Equal(t, 2, report.PaidSearchQuantity)
	assert.Equal(t, 0, report.OrganicQuantity)
}

func TestService_ValidatesFilters(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _ := newTestService(ctrl)

	_, err := service.TotalSales(nil)
	assert.Error(t, err)

	_, err = service.TotalSales(&domain.ReportFilters{})
	assert.Error(t, err)

	start := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	_, err = service.AdSpend(&domain.ReportFilters{StartDate: &start, EndDate: &end})
	assert.Error(t, err)
}

func TestService_OrderStatsByTimeframe(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestService(ctrl)

	m.orders.EXPECT().
		GetOrderStats(gomock.Any()).
		DoAndReturn(func(filters *domain.ReportFilters) (*domain.OrderStats, error) {
			assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), *filters.StartDate)
			assert.Equal(t, time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), *filters.EndDate)

			return &domain.OrderStats{OrderCount: 7, TotalRevenue: 700, AvgOrderValue: 100, Currency: "INR"}, nil
		})

	stats, err := service.OrderStatsByTimeframe(domain.TimeframeCustom, "2024-03-01", "2024-03-10")

	assert.NoError(t, err)
	assert.Equal(t, 7, stats.OrderCount)
}

func TestService_OrderStatsByTimeframe_InvalidCustomDates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _ := newTestService(ctrl)

	_, err := service.OrderStatsByTimeframe(domain.TimeframeCustom, "bad", "2024-03-10")
	assert.ErrorIs(t, err, domain.ErrInvalidDate)
}
