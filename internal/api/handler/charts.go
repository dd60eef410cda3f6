package handler

import (
	"bytes"
	"errors"
	"net/http"

	"github.com/vfg2006/vgsales-dashboard-api/internal/charts"
	"github.com/vfg2006/vgsales-dashboard-api/internal/domain"
	"github.com/vfg2006/vgsales-dashboard-api/internal/usecases/dashboarding"
	"github.com/vfg2006/vgsales-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/vgsales-dashboard-api/pkg/log"
)

type chartRenderer func(buf *bytes.Buffer, dashboard *domain.DashboardResponse, config charts.ChartConfig) error

// GetChart desenha um dos gráficos do dashboard como página HTML autocontida.
// section define a mensagem devolvida quando não há dados para desenhar.
func GetChart(service dashboarding.Dashboarder, config charts.ChartConfig, section string, render chartRenderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dashboard, ok := loadDashboard(w, r, service)
		if !ok {
			return
		}

		var buf bytes.Buffer
		if err := render(&buf, dashboard, config); err != nil {
			if errors.Is(err, charts.ErrNoData) {
				message := dashboard.Sections[section]
				if message == "" {
					message = dashboarding.MessageNoData
				}
				apiErrors.WriteError(w, apiErrors.ErrNoData, message, dashboard.Filters)
				return
			}

			log.ForContext(r.Context()).WithError(err).Error("dashboard: chart rendering failed")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "failed to render chart", nil)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		if _, err := buf.WriteTo(w); err != nil {
			log.ForContext(r.Context()).WithError(err).Warn("dashboard: chart response interrupted")
		}
	}
}

func renderGenreChart(buf *bytes.Buffer, d *domain.DashboardResponse, config charts.ChartConfig) error {
	return charts.RenderGenreChart(buf, d.SalesByGenre, config)
}

func renderYearlyChart(buf *bytes.Buffer, d *domain.DashboardResponse, config charts.ChartConfig) error {
	return charts.RenderYearlyChart(buf, d.SalesByYear, config)
}

func renderRegionalChart(buf *bytes.Buffer, d *domain.DashboardResponse, config charts.ChartConfig) error {
	return charts.RenderRegionalChart(buf, d.SalesByRegion, d.Regions, config)
}
