package handler

import (
	"errors"
	"net/http"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/vgsales-dashboard-api/internal/domain"
	"github.com/vfg2006/vgsales-dashboard-api/internal/usecases/dashboarding"
	"github.com/vfg2006/vgsales-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/vgsales-dashboard-api/pkg/log"
	"github.com/vfg2006/vgsales-dashboard-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("failed to write response")
	}
}

// parseCriteria lê year_min, year_max e genre; parâmetros ausentes usam o intervalo completo do dataset
func parseCriteria(r *http.Request, service dashboarding.Dashboarder) (domain.FilterCriteria, error) {
	criteria := service.DefaultCriteria()
	query := r.URL.Query()

	yearMin, ok, err := utils.ParseOptionalInt("year_min", query.Get("year_min"))
	if err != nil {
		return criteria, err
	}
	if ok {
		criteria.YearMin = yearMin
	}

	yearMax, ok, err := utils.ParseOptionalInt("year_max", query.Get("year_max"))
	if err != nil {
		return criteria, err
	}
	if ok {
		criteria.YearMax = yearMax
	}

	genre := strings.TrimSpace(query.Get("genre"))
	if strings.EqualFold(genre, "all") {
		genre = domain.AllGenres
	}
	criteria.Genre = genre

	return criteria, nil
}

// parseRegions lê a lista "NA,EU,JP"; vazia usa as regiões padrão do gráfico
func parseRegions(r *http.Request) ([]domain.Region, error) {
	values := utils.SplitList(r.URL.Query().Get("regions"))
	regions := make([]domain.Region, 0, len(values))
	for _, value := range values {
		region, ok := domain.ParseRegion(value)
		if !ok {
			return nil, errors.New("invalid region " + value + ": expected NA, EU, JP or Other")
		}
		regions = append(regions, region)
	}
	return regions, nil
}

// loadDashboard resolve filtros e regiões e calcula o dashboard, respondendo o erro quando houver
func loadDashboard(w http.ResponseWriter, r *http.Request, service dashboarding.Dashboarder) (*domain.DashboardResponse, bool) {
	criteria, err := parseCriteria(r, service)
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
		return nil, false
	}

	regions, err := parseRegions(r)
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
		return nil, false
	}

	dashboard, err := service.GetDashboard(r.Context(), criteria, regions)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidYearRange) {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), criteria)
			return nil, false
		}
		log.ForContext(r.Context()).WithError(err).Error("dashboard: failed to build")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "failed to build dashboard", nil)
		return nil, false
	}

	return dashboard, true
}
