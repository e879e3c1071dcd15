package handler

import (
	"net/http"

	"github.com/storepulse/commerce-dashboard-api/internal/api/handler/router"
	"github.com/storepulse/commerce-dashboard-api/internal/scheduler"
	"github.com/storepulse/commerce-dashboard-api/internal/usecases/productmetrics"
	"github.com/storepulse/commerce-dashboard-api/internal/usecases/reporting"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

// Reports wires the read-only metric endpoints consumed by the charts.
func Reports(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:    "/sales",
			Method:  http.MethodGet,
			Handler: TotalSales(service),
		},
		{
			Path:    "/cogs",
			Method:  http.MethodGet,
			Handler: TotalCogs(service),
		},
		{
			Path:    "/ad_spend",
			Method:  http.MethodGet,
			Handler: AdSpend(service),
		},
		{
			Path:    "/net_profit",
			Method:  http.MethodGet,
			Handler: NetProfit(service),
		},
		{
			Path:    "/order_count",
			Method:  http.MethodGet,
			Handler: OrderCount(service),
		},
		{
			Path:    "/roas",
			Method:  http.MethodGet,
			Handler: Roas(service),
		},
		{
			Path:    "/orders/:timeframe",
			Method:  http.MethodGet,
			Handler: OrdersByTimeframe(service),
		},
	}
}

func ProductMetrics(service productmetrics.ProductMetricService) []router.Route {
	return []router.Route{
		{
			Path:    "/product_metrics",
			Method:  http.MethodGet,
			Handler: ListProductMetrics(service),
		},
		{
			Path:    "/product_metrics",
			Method:  http.MethodPost,
			Handler: CreateProductMetric(service),
		},
		{
			Path:    "/product_metrics/:sku_name",
			Method:  http.MethodPut,
			Handler: UpdateProductMetric(service),
		},
		{
			Path:    "/product_metrics/:sku_name",
			Method:  http.MethodDelete,
			Handler: DeleteProductMetric(service),
		},
	}
}

func CronJobs(service *scheduler.DailySummarySyncService) []router.Route {
	return []router.Route{
		{
			Path:    "/cron/summary/run",
			Method:  http.MethodPost,
			Handler: RunSummarySync(service),
		},
		{
			Path:    "/cron/status",
			Method:  http.MethodGet,
			Handler: SummarySyncStatus(service),
		},
	}
}
