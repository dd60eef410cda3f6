package handler

import (
	"net/http"

	"github.com/vfg2006/vgsales-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/vgsales-dashboard-api/internal/charts"
	"github.com/vfg2006/vgsales-dashboard-api/internal/domain"
	"github.com/vfg2006/vgsales-dashboard-api/internal/export"
	"github.com/vfg2006/vgsales-dashboard-api/internal/usecases/dashboarding"
	"github.com/vfg2006/vgsales-dashboard-api/internal/usecases/predicting"
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

func Dashboard(service dashboarding.Dashboarder, exporter *export.ExcelExporter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/filters/options",
			Method:  http.MethodGet,
			Handler: GetFilterOptions(service),
		},
		{
			Path:    "/v1/dashboard",
			Method:  http.MethodGet,
			Handler: GetDashboard(service),
		},
		{
			Path:    "/v1/dashboard/export",
			Method:  http.MethodGet,
			Handler: ExportDashboard(service, exporter),
		},
	}
}

func Charts(service dashboarding.Dashboarder, config charts.ChartConfig) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/charts/genre",
			Method:  http.MethodGet,
			Handler: GetChart(service, config, domain.SectionGenre, renderGenreChart),
		},
		{
			Path:    "/v1/charts/yearly",
			Method:  http.MethodGet,
			Handler: GetChart(service, config, domain.SectionYearly, renderYearlyChart),
		},
		{
			Path:    "/v1/charts/regions",
			Method:  http.MethodGet,
			Handler: GetChart(service, config, domain.SectionRegions, renderRegionalChart),
		},
	}
}

func Predictions(service predicting.Predictor) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/model",
			Method:  http.MethodGet,
			Handler: GetModelStatus(service),
		},
		{
			Path:    "/v1/predictions",
			Method:  http.MethodPost,
			Handler: CreatePrediction(service),
		},
	}
}
