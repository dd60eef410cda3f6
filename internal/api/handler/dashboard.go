package handler

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/vfg2006/vgsales-dashboard-api/internal/export"
	"github.com/vfg2006/vgsales-dashboard-api/internal/usecases/dashboarding"
	"github.com/vfg2006/vgsales-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/vgsales-dashboard-api/pkg/log"
)

// GetFilterOptions retorna os limites do slider de anos e os gêneros disponíveis
func GetFilterOptions(service dashboarding.Dashboarder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, http.StatusOK, service.FilterOptions())
	}
}

// GetDashboard retorna métricas, séries e mensagens das seções para o filtro informado
func GetDashboard(service dashboarding.Dashboarder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dashboard, ok := loadDashboard(w, r, service)
		if !ok {
			return
		}

		writeJSON(w, r, http.StatusOK, dashboard)
	}
}

// ExportDashboard gera a planilha .xlsx da visão filtrada
func ExportDashboard(service dashboarding.Dashboarder, exporter *export.ExcelExporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dashboard, ok := loadDashboard(w, r, service)
		if !ok {
			return
		}

		var buf bytes.Buffer
		if err := exporter.Export(dashboard, &buf); err != nil {
			log.ForContext(r.Context()).WithError(err).Error("dashboard: export failed")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "failed to generate spreadsheet", nil)
			return
		}

		filename := fmt.Sprintf("vgsales-dashboard-%d-%d%s",
			dashboard.Filters.YearMin, dashboard.Filters.YearMax, exporter.GetFileExtension())

		w.Header().Set("Content-Type", exporter.GetContentType())
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
		w.WriteHeader(http.StatusOK)
		if _, err := buf.WriteTo(w); err != nil {
			log.ForContext(r.Context()).WithError(err).Warn("dashboard: export interrupted")
		}
	}
}
