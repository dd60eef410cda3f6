package filtering

import "github.com/vfg2006/vgsales-dashboard-api/internal/domain"

// Filter mantém os registros com ano em [YearMin, YearMax] e, se informado, do gênero escolhido.
// A ordem de origem é preservada e o dataset recebido não é alterado.
func Filter(ds *domain.Dataset, criteria domain.FilterCriteria) *domain.Dataset {
	return ds.Where(criteria.Matches)
}

// DefaultCriteria cobre todo o intervalo de anos do dataset e todos os gêneros
func DefaultCriteria(ds *domain.Dataset) domain.FilterCriteria {
	minYear, maxYear, _ := ds.YearBounds()
	return domain.FilterCriteria{
		YearMin: minYear,
		YearMax: maxYear,
		Genre:   domain.AllGenres,
	}
}

// Options retorna os limites do slider de anos e a lista de gêneros
func Options(ds *domain.Dataset) domain.FilterOptions {
	minYear, maxYear, _ := ds.YearBounds()
	return domain.FilterOptions{
		YearMin: minYear,
		YearMax: maxYear,
		Genres:  ds.Genres(),
	}
}
