package scheduler

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	repomocks "github.com/storepulse/commerce-dashboard-api/infrastructure/repository/mocks"
	"github.com/storepulse/commerce-dashboard-api/internal/domain"
	reportingmocks "github.com/storepulse/commerce-dashboard-api/internal/usecases/reporting/mocks"
	"github.com/storepulse/commerce-dashboard-api/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestDailySummarySyncService_syncDay(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReporter := reportingmocks.NewMockReporter(ctrl)
	mockRepo := repomocks.NewMockDailySummaryRepository(ctrl)

	service := &DailySummarySyncService{
		reporter:    mockReporter,
		summaryRepo: mockRepo,
	}

	day := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)

	mockReporter.EXPECT().
		TotalSales(gomock.Any()).
		DoAndReturn(func(filters *domain.ReportFilters) (*domain.SalesReport, error) {
			assert.Equal(t, day, *filters.StartDate)
			assert.Equal(t, day.AddDate(0, 0, 1), *filters.EndDate)

			return &domain.SalesReport{TotalSales: 280}, nil
		})
	mockReporter.EXPECT().TotalCogs(gomock.Any()).Return(&domain.CogsReport{TotalCogs: 96}, nil)
	mockReporter.EXPECT().AdSpend(gomock.Any()).Return(&domain.AdSpendReport{TotalSpend: 150}, nil)
	mockReporter.EXPECT().OrderCount(gomock.Any()).Return(&domain.OrderCountReport{OrderCount: 3}, nil)

	mockRepo.EXPECT().
		SaveOrUpdate(gomock.Any()).
		DoAndReturn(func(summary *domain.DailySummary) error {
			assert.Equal(t, day, summary.Date)
			assert.Equal(t, 280.0, summary.TotalSales)
			assert.Equal(t, 96.0, summary.TotalCogs)
			assert.Equal(t, 150.0, summary.TotalAdSpend)
			assert.Equal(t, 34.0, summary.NetProfit)
			assert.Equal(t, 3, summary.OrderCount)

			return nil
		})

	require.NoError(t, service.syncDay(day))
}

func TestDailySummarySyncService_syncDay_ReporterFailureSkipsUpsert(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReporter := reportingmocks.NewMockReporter(ctrl)
	mockRepo := repomocks.NewMockDailySummaryRepository(ctrl)

	service := &DailySummarySyncService{
		reporter:    mockReporter,
		summaryRepo: mockRepo,
	}

	mockReporter.EXPECT().
		TotalSales(gomock.Any()).
		Return(nil, errors.New("shopify down"))

	err := service.syncDay(time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC))
	assert.Error(t, err)
}

func TestDailySummarySyncService_syncRecentSummaries(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReporter := reportingmocks.NewMockReporter(ctrl)
	mockRepo := repomocks.NewMockDailySummaryRepository(ctrl)

	service := &DailySummarySyncService{
		config: DailySummarySyncConfig{
			LookbackDays: 2,
			SyncEnabled:  true,
		},
		reporter:    mockReporter,
		summaryRepo: mockRepo,
	}

	var syncedDates []time.Time

	mockReporter.EXPECT().
		TotalSales(gomock.Any()).
		DoAndReturn(func(filters *domain.ReportFilters) (*domain.SalesReport, error) {
			syncedDates = append(syncedDates, *filters.StartDate)
			return &domain.SalesReport{}, nil
		}).
		Times(2)
	mockReporter.EXPECT().TotalCogs(gomock.Any()).Return(&domain.CogsReport{}, nil).Times(2)
	mockReporter.EXPECT().AdSpend(gomock.Any()).Return(&domain.AdSpendReport{}, nil).Times(2)
	mockReporter.EXPECT().OrderCount(gomock.Any()).Return(&domain.OrderCountReport{}, nil).Times(2)
	mockRepo.EXPECT().SaveOrUpdate(gomock.Any()).Return(nil).Times(2)

	service.syncRecentSummaries()

	today := utils.Today()
	require.Len(t, syncedDates, 2)
	assert.Equal(t, today.AddDate(0, 0, -1), syncedDates[0])
	assert.Equal(t, today.AddDate(0, 0, -2), syncedDates[1])

	status := service.Status()
	assert.Equal(t, false, status["running"])
	assert.NotZero(t, status["last_sync_completed_at"])
}
