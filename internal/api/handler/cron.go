package handler

import (
	"net/http"

	"github.com/storepulse/commerce-dashboard-api/internal/scheduler"
	"github.com/storepulse/commerce-dashboard-api/pkg/log"
)

// RunSummarySync kicks off a daily summary sync in the background and
// returns immediately. Overlapping runs are skipped by the service itself.
func RunSummarySync(service *scheduler.DailySummarySyncService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		service.RunNow()

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusAccepted)
		if err := json.NewEncoder(w).Encode(map[string]string{
			"message": "Summary sync started",
		}); err != nil {
			logger.WithError(err).Error("failed to encode response")
		}
	})
}

func SummarySyncStatus(service *scheduler.DailySummarySyncService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		writeJSON(w, logger, service.Status())
	})
}
