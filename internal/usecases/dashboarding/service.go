package dashboarding

import (
	"context"
	"fmt"
	"strings"

	"github.com/vfg2006/vgsales-dashboard-api/internal/domain"
	"github.com/vfg2006/vgsales-dashboard-api/internal/usecases/aggregating"
	"github.com/vfg2006/vgsales-dashboard-api/internal/usecases/filtering"
	"github.com/vfg2006/vgsales-dashboard-api/internal/usecases/predicting"
	"github.com/vfg2006/vgsales-dashboard-api/pkg/log"
	"github.com/vfg2006/vgsales-dashboard-api/pkg/utils"
)

// MessageNoData substitui gráficos e tabelas quando a visão filtrada está vazia
const MessageNoData = "no data for the selected filter"

type Dashboarder interface {
	FilterOptions() domain.FilterOptions
	DefaultCriteria() domain.FilterCriteria
	GetDashboard(ctx context.Context, criteria domain.FilterCriteria, regions []domain.Region) (*domain.DashboardResponse, error)
}

// DashboardService recalcula todas as visões a partir do dataset carregado na inicialização
type DashboardService struct {
	dataset    *domain.Dataset
	prediction predicting.Predictor
}

func NewDashboardService(dataset *domain.Dataset, prediction predicting.Predictor) Dashboarder {
	return &DashboardService{
		dataset:    dataset,
		prediction: prediction,
	}
}

func (s *DashboardService) FilterOptions() domain.FilterOptions {
	return filtering.Options(s.dataset)
}

func (s *DashboardService) DefaultCriteria() domain.FilterCriteria {
	return filtering.DefaultCriteria(s.dataset)
}

// GetDashboard aplica o filtro e monta métricas, séries e mensagens das seções.
// regions vazio usa as regiões do gráfico de tendência (NA, EU, JP).
func (s *DashboardService) GetDashboard(ctx context.Context, criteria domain.FilterCriteria, regions []domain.Region) (*domain.DashboardResponse, error) {
	if err := criteria.Validate(); err != nil {
		return nil, err
	}

	if len(regions) == 0 {
		regions = domain.TrendRegions
	}

	view := filtering.Filter(s.dataset, criteria)

	log.ForContext(ctx).WithFields(log.Fields{
		"filter_year_min": criteria.YearMin,
		"filter_year_max": criteria.YearMax,
		"filter_genre":    criteria.Genre,
		"records":         view.Len(),
	}).Debug("dashboard: view filtered")

	metrics := aggregating.Summarize(view)
	metrics.Display = domain.MetricsDisplay{
		TotalGlobalSales: utils.FormatMillionCopies(metrics.TotalGlobalSales),
		RecordCount:      utils.FormatCount(metrics.RecordCount),
		MeanGlobalSales:  utils.FormatMillions(metrics.MeanGlobalSales),
	}

	salesByRegion, available := aggregating.SalesByYearAndRegion(view, regions)

	response := &domain.DashboardResponse{
		Filters:       criteria,
		Metrics:       metrics,
		SalesByGenre:  aggregating.SalesByGenre(view),
		SalesByYear:   aggregating.SalesByYear(view),
		SalesByRegion: salesByRegion,
		Regions:       available,
	}

	if view.IsEmpty() {
		response.SetSectionMessage(domain.SectionGenre, MessageNoData)
		response.SetSectionMessage(domain.SectionYearly, MessageNoData)
	}

	switch {
	case len(available) == 0:
		response.SetSectionMessage(domain.SectionRegions, MissingRegionsMessage(regions))
	case view.IsEmpty():
		response.SetSectionMessage(domain.SectionRegions, MessageNoData)
	}

	if s.prediction != nil {
		if status := s.prediction.Status(); !status.Available {
			response.SetSectionMessage(domain.SectionPrediction, status.Message)
		}
	}

	return response, nil
}

// MissingRegionsMessage descreve as colunas regionais ausentes, ex: "region sales columns (NA, EU, JP) not found in dataset"
func MissingRegionsMessage(regions []domain.Region) string {
	names := make([]string, len(regions))
	for i, region := range regions {
		names[i] = string(region)
	}
	return fmt.Sprintf("region sales columns (%s) not found in dataset", strings.Join(names, ", "))
}
