package handler

import (
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/storepulse/commerce-dashboard-api/infrastructure/repository"
	"github.com/storepulse/commerce-dashboard-api/internal/domain"
	"github.com/storepulse/commerce-dashboard-api/internal/usecases/productmetrics"
	"github.com/storepulse/commerce-dashboard-api/pkg/apiErrors"
	"github.com/storepulse/commerce-dashboard-api/pkg/log"
)

func ListProductMetrics(service productmetrics.ProductMetricService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		metrics, err := service.List()
		if err != nil {
			logger.WithError(err).Error("product metrics: failed to list")
			apiErrors.WriteInternalError(w, "Failed to fetch product metrics", err)
			return
		}

		writeJSON(w, logger, metrics)
	})
}

func CreateProductMetric(service productmetrics.ProductMetricService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var metric domain.ProductMetric
		if err := json.NewDecoder(r.Body).Decode(&metric); err != nil {
			apiErrors.WriteError(w, http.StatusBadRequest, "Invalid request body", err)
			return
		}

		created, err := service.Create(&metric)
		if err != nil {
			logger.WithError(err).Error("product metrics: failed to create")
			apiErrors.WriteInternalError(w, "Failed to create product metric", err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(created); err != nil {
			logger.WithError(err).Error("failed to encode response")
		}
	})
}

func UpdateProductMetric(service productmetrics.ProductMetricService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		skuName := httprouter.ParamsFromContext(r.Context()).ByName("sku_name")

		var metric domain.ProductMetric
		if err := json.NewDecoder(r.Body).Decode(&metric); err != nil {
			apiErrors.WriteError(w, http.StatusBadRequest, "Invalid request body", err)
			return
		}

		updated, err := service.Update(skuName, &metric)
		if err != nil {
			if errors.Is(err, repository.ErrProductMetricNotFound) {
				apiErrors.WriteNotFound(w, "Product metric not found")
				return
			}
			logger.WithError(err).WithField("sku_name", skuName).
				Error("product metrics: failed to update")
			apiErrors.WriteInternalError(w, "Failed to update product metric", err)
			return
		}

		writeJSON(w, logger, updated)
	})
}

func DeleteProductMetric(service productmetrics.ProductMetricService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		skuName := httprouter.ParamsFromContext(r.Context()).ByName("sku_name")

		if err := service.Delete(skuName); err != nil {
			if errors.Is(err, repository.ErrProductMetricNotFound) {
				apiErrors.WriteNotFound(w, "Product metric not found")
				return
			}
			logger.WithError(err).WithField("sku_name", skuName).
				Error("product metrics: failed to delete")
			apiErrors.WriteInternalError(w, "Failed to delete product metric", err)
			return
		}

		writeJSON(w, logger, map[string]string{"message": "Product metric deleted"})
	})
}
