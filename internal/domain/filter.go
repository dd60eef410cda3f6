package domain

import (
	"errors"
	"fmt"
)

var ErrInvalidYearRange = errors.New("year_min must not be greater than year_max")

// FilterCriteria representa o estado dos filtros do dashboard em uma interação.
// Genre vazio significa todos os gêneros.
type FilterCriteria struct {
	YearMin int    `json:"year_min"`
	YearMax int    `json:"year_max"`
	Genre   string `json:"genre,omitempty"`
}

// AllGenres é o valor de Genre que não restringe o gênero
const AllGenres = ""

func (c FilterCriteria) Validate() error {
	if c.YearMin > c.YearMax {
		return fmt.Errorf("%w: %d > %d", ErrInvalidYearRange, c.YearMin, c.YearMax)
	}
	return nil
}

func (c FilterCriteria) MatchesAllGenres() bool {
	return c.Genre == AllGenres
}

// Matches indica se o registro pertence à visão filtrada (intervalo de anos inclusivo)
func (c FilterCriteria) Matches(r SalesRecord) bool {
	if r.Year < c.YearMin || r.Year > c.YearMax {
		return false
	}
	return c.MatchesAllGenres() || r.Genre == c.Genre
}

// FilterOptions alimenta o slider de anos e o seletor de gênero
type FilterOptions struct {
	YearMin int      `json:"year_min"`
	YearMax int      `json:"year_max"`
	Genres  []string `json:"genres"`
}
