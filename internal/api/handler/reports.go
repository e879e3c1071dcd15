package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/julienschmidt/httprouter"
	"github.com/storepulse/commerce-dashboard-api/internal/domain"
	"github.com/storepulse/commerce-dashboard-api/internal/usecases/reporting"
	"github.com/storepulse/commerce-dashboard-api/pkg/apiErrors"
	"github.com/storepulse/commerce-dashboard-api/pkg/log"
	"github.com/storepulse/commerce-dashboard-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// parseWindow reads the startDate/endDate query parameters, both defaulting
// to today's date.
func parseWindow(r *http.Request) (*domain.ReportFilters, error) {
	startDate, err := utils.ParseDateOrToday(r.URL.Query().Get("startDate"))
	if err != nil {
		return nil, err
	}

	endDate, err := utils.ParseDateOrToday(r.URL.Query().Get("endDate"))
	if err != nil {
		return nil, err
	}

	return &domain.ReportFilters{
		StartDate: &startDate,
		EndDate:   &endDate,
	}, nil
}

func writeJSON(w http.ResponseWriter, logger log.Logger, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.WithError(err).Error("failed to encode response")
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func TotalSales(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filters, err := parseWindow(r)
		if err != nil {
			apiErrors.WriteInternalError(w, "Failed to fetch Sales", err)
			return
		}

		report, err := service.TotalSales(filters)
		if err != nil {
			logger.WithError(err).Error("reports: failed to fetch sales")
			apiErrors.WriteInternalError(w, "Failed to fetch Sales", err)
			return
		}

		writeJSON(w, logger, report)
	})
}

func TotalCogs(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filters, err := parseWindow(r)
		if err != nil {
			apiErrors.WriteInternalError(w, "Failed to fetch COGS", err)
			return
		}

		report, err := service.TotalCogs(filters)
		if err != nil {
			logger.WithError(err).Error("reports: failed to fetch cogs")
			apiErrors.WriteInternalError(w, "Failed to fetch COGS", err)
			return
		}

		writeJSON(w, logger, report)
	})
}

func AdSpend(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filters, err := parseWindow(r)
		if err != nil {
			apiErrors.WriteInternalError(w, "Failed to fetch Ad Spend", err)
			return
		}

		report, err := service.AdSpend(filters)
		if err != nil {
			logger.WithError(err).Error("reports: failed to fetch ad spend")
			apiErrors.WriteInternalError(w, "Failed to fetch Ad Spend", err)
			return
		}

		writeJSON(w, logger, report)
	})
}

func NetProfit(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filters, err := parseWindow(r)
		if err != nil {
			apiErrors.WriteInternalError(w, "Failed to calculate net profit", err)
			return
		}

		report, err := service.NetProfit(filters)
		if err != nil {
			logger.WithError(err).Error("reports: failed to calculate net profit")
			apiErrors.WriteInternalError(w, "Failed to calculate net profit", err)
			return
		}

		writeJSON(w, logger, report)
	})
}

func OrderCount(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filters, err := parseWindow(r)
		if err != nil {
			apiErrors.WriteInternalError(w, "Failed to fetch order count", err)
			return
		}

		report, err := service.OrderCount(filters)
		if err != nil {
			logger.WithError(err).Error("reports: failed to fetch order count")
			apiErrors.WriteInternalError(w, "Failed to fetch order count", err)
			return
		}

		writeJSON(w, logger, report)
	})
}

func Roas(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filters, err := parseWindow(r)
		if err != nil {
			apiErrors.WriteInternalError(w, "Failed to calculate ROAS", err)
			return
		}

		report, err := service.Roas(filters)
		if err != nil {
			logger.WithError(err).Error("reports: failed to calculate roas")
			apiErrors.WriteInternalError(w, "Failed to calculate ROAS", err)
			return
		}

		writeJSON(w, logger, report)
	})
}

// OrdersByTimeframe serves GET /orders/:timeframe. The custom timeframe
// requires startDate and endDate query parameters.
func OrdersByTimeframe(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		timeframe := httprouter.ParamsFromContext(r.Context()).ByName("timeframe")

		stats, err := service.OrderStatsByTimeframe(
			domain.Timeframe(timeframe),
			r.URL.Query().Get("startDate"),
			r.URL.Query().Get("endDate"),
		)
		if err != nil {
			logger.WithError(err).WithField("timeframe", timeframe).
				Error("reports: failed to fetch order stats")
			apiErrors.WriteInternalError(w, "Failed to fetch order stats", err)
			return
		}

		writeJSON(w, logger, stats)
	})
}
