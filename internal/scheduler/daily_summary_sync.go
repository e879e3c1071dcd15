package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/storepulse/commerce-dashboard-api/infrastructure/repository"
	"github.com/storepulse/commerce-dashboard-api/internal/config"
	"github.com/storepulse/commerce-dashboard-api/internal/domain"
	"github.com/storepulse/commerce-dashboard-api/internal/usecases/reporting"
	"github.com/storepulse/commerce-dashboard-api/pkg/utils"
)

// DailySummarySyncConfig holds the scheduler's tunables.
type DailySummarySyncConfig struct {
	CronSchedule string
	LookbackDays int
	SyncEnabled  bool
}

// DailySummarySyncService recomputes the last N days' headline metrics on a
// cron schedule and persists them, so the dashboard has warm history without
// re-walking Shopify pagination. The live metric endpoints never read these
// rows.
type DailySummarySyncService struct {
	scheduler           *gocron.Scheduler
	config              DailySummarySyncConfig
	reporter            reporting.Reporter
	summaryRepo         repository.DailySummaryRepository
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

func NewDailySummarySyncService(
	reporter reporting.Reporter,
	summaryRepo repository.DailySummaryRepository,
	appConfig *config.Config,
) *DailySummarySyncService {
	syncConfig := DailySummarySyncConfig{
		CronSchedule: appConfig.SummarySync.CronSchedule,
		LookbackDays: appConfig.SummarySync.LookbackDays,
		SyncEnabled:  appConfig.SummarySync.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"lookback_days": syncConfig.LookbackDays,
		"sync_enabled":  syncConfig.SyncEnabled,
	}).Info("daily summary sync configuration loaded")

	return &DailySummarySyncService{
		scheduler:   gocron.NewScheduler(time.UTC),
		config:      syncConfig,
		reporter:    reporter,
		summaryRepo: summaryRepo,
	}
}

// Start schedules the sync and stops it when the context is cancelled.
func (s *DailySummarySyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("daily summary sync disabled by configuration")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("starting daily summary sync scheduler")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncRecentSummaries()
	})
	if err != nil {
		return errors.Wrap(err, "scheduling daily summary sync")
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("stopping daily summary sync scheduler")
		s.scheduler.Stop()
	}()

	return nil
}

// RunNow triggers a sync outside the schedule, used by the cron endpoint.
func (s *DailySummarySyncService) RunNow() {
	go s.syncRecentSummaries()
}

// Status reports whether a sync is running and when the last one ran.
func (s *DailySummarySyncService) Status() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"enabled":                s.config.SyncEnabled,
		"running":                s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}

func (s *DailySummarySyncService) syncRecentSummaries() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("daily summary sync already running, skipping")
		return
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.lastSyncCompletedAt = time.Now()
		s.syncMutex.Unlock()
	}()

	runID, err := utils.GenerateID()
	if err != nil {
		runID = "unknown"
	}

	logger := logrus.WithField("run_id", runID)
	logger.WithField("lookback_days", s.config.LookbackDays).Info("daily summary sync started")

	today := utils.Today()
	synced := 0

	for offset := 1; offset <= s.config.LookbackDays; offset++ {
		day := today.AddDate(0, 0, -offset)

		if err := s.syncDay(day); err != nil {
			logger.WithError(err).WithField("date", day.Format(time.DateOnly)).
				Error("failed to sync daily summary")
			continue
		}

		synced++
	}

	logger.WithFields(logrus.Fields{
		"synced_days": synced,
		"duration":    time.Since(s.lastSyncStartedAt).String(),
	}).Info("daily summary sync finished")
}

// syncDay recomputes one day's metrics and upserts the summary row.
func (s *DailySummarySyncService) syncDay(day time.Time) error {
	end := day.AddDate(0, 0, 1)
	filters := &domain.ReportFilters{
		StartDate: &day,
		EndDate:   &end,
	}

	sales, err := s.reporter.TotalSales(filters)
	if err != nil {
		return errors.Wrap(err, "computing sales")
	}

	cogs, err := s.reporter.TotalCogs(filters)
	if err != nil {
		return errors.Wrap(err, "computing cogs")
	}

	adSpend, err := s.reporter.AdSpend(filters)
	if err != nil {
		return errors.Wrap(err, "computing ad spend")
	}

	orderCount, err := s.reporter.OrderCount(filters)
	if err != nil {
		return errors.Wrap(err, "computing order count")
	}

	summary := &domain.DailySummary{
		Date:         day,
		TotalSales:   sales.TotalSales,
		TotalCogs:    cogs.TotalCogs,
		TotalAdSpend: adSpend.TotalSpend,
		NetProfit:    sales.TotalSales - cogs.TotalCogs - adSpend.TotalSpend,
		OrderCount:   orderCount.OrderCount,
	}

	return s.summaryRepo.SaveOrUpdate(summary)
}
