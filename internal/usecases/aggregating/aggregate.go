// Package aggregating calcula as métricas e séries exibidas no dashboard a partir de uma visão filtrada
package aggregating

import (
	"sort"

	"github.com/vfg2006/vgsales-dashboard-api/internal/domain"
)

func TotalGlobalSales(view *domain.Dataset) float64 {
	total := 0.0
	view.Each(func(r domain.SalesRecord) {
		total += r.GlobalSales
	})
	return total
}

func RecordCount(view *domain.Dataset) int {
	return view.Len()
}

// MeanGlobalSales retorna 0 para visão vazia
func MeanGlobalSales(view *domain.Dataset) float64 {
	count := RecordCount(view)
	if count == 0 {
		return 0
	}
	return TotalGlobalSales(view) / float64(count)
}

// TopGenre retorna o gênero com maior venda global somada, ou "-" para visão vazia
func TopGenre(view *domain.Dataset) string {
	byGenre := SalesByGenre(view)
	if len(byGenre) == 0 {
		return domain.NoTopGenre
	}
	return byGenre[0].Genre
}

// SalesByGenre soma Global_Sales por gênero em ordem decrescente de vendas.
// Empates ficam em ordem alfabética de gênero. Registros sem gênero não formam grupo.
func SalesByGenre(view *domain.Dataset) []domain.GenreSales {
	sums := make(map[string]float64)
	view.Each(func(r domain.SalesRecord) {
		if r.Genre == "" {
			return
		}
		sums[r.Genre] += r.GlobalSales
	})

	result := make([]domain.GenreSales, 0, len(sums))
	for genre, total := range sums {
		result = append(result, domain.GenreSales{Genre: genre, GlobalSales: total})
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].GlobalSales != result[j].GlobalSales {
			return result[i].GlobalSales > result[j].GlobalSales
		}
		return result[i].Genre < result[j].Genre
	})

	return result
}

// SalesByYear soma Global_Sales por ano, em ordem crescente de ano
func SalesByYear(view *domain.Dataset) []domain.YearSales {
	sums := make(map[int]float64)
	view.Each(func(r domain.SalesRecord) {
		sums[r.Year] += r.GlobalSales
	})

	result := make([]domain.YearSales, 0, len(sums))
	for year, total := range sums {
		result = append(result, domain.YearSales{Year: year, GlobalSales: total})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Year < result[j].Year
	})

	return result
}

// AvailableRegions filtra as regiões cuja coluna existe no dataset, sem repetições
func AvailableRegions(view *domain.Dataset, regions []domain.Region) []domain.Region {
	available := make([]domain.Region, 0, len(regions))
	seen := make(map[domain.Region]struct{}, len(regions))
	for _, region := range regions {
		if _, dup := seen[region]; dup {
			continue
		}
		seen[region] = struct{}{}
		if view.HasColumn(region.Column()) {
			available = append(available, region)
		}
	}
	return available
}

// SalesByYearAndRegion soma as vendas de cada região disponível por ano, em ordem crescente de ano.
// Regiões sem coluna no dataset são ignoradas; o segundo retorno lista as regiões calculadas.
func SalesByYearAndRegion(view *domain.Dataset, regions []domain.Region) ([]domain.YearRegionSales, []domain.Region) {
	available := AvailableRegions(view, regions)
	if len(available) == 0 {
		return []domain.YearRegionSales{}, available
	}

	byYear := make(map[int]map[domain.Region]float64)
	view.Each(func(r domain.SalesRecord) {
		sums, ok := byYear[r.Year]
		if !ok {
			sums = make(map[domain.Region]float64, len(available))
			byYear[r.Year] = sums
		}
		for _, region := range available {
			sums[region] += r.RegionSales(region)
		}
	})

	result := make([]domain.YearRegionSales, 0, len(byYear))
	for year, sums := range byYear {
		result = append(result, domain.YearRegionSales{Year: year, Sales: sums})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Year < result[j].Year
	})

	return result, available
}

// Summarize calcula as quatro métricas dos cards do dashboard
func Summarize(view *domain.Dataset) domain.SummaryMetrics {
	return domain.SummaryMetrics{
		TotalGlobalSales: TotalGlobalSales(view),
		RecordCount:      RecordCount(view),
		MeanGlobalSales:  MeanGlobalSales(view),
		TopGenre:         TopGenre(view),
	}
}
