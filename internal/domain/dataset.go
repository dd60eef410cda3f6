package domain

import "sort"

// Dataset é uma sequência ordenada e imutável de SalesRecord.
// Toda filtragem produz um novo Dataset; o de entrada nunca é alterado.
type Dataset struct {
	records []SalesRecord
	columns map[string]bool
}

// NewDataset copia os registros recebidos. columns lista as colunas presentes na origem.
func NewDataset(records []SalesRecord, columns []string) *Dataset {
	cp := make([]SalesRecord, len(records))
	copy(cp, records)

	cols := make(map[string]bool, len(columns))
	for _, c := range columns {
		cols[c] = true
	}

	return &Dataset{records: cp, columns: cols}
}

func (d *Dataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.records)
}

func (d *Dataset) IsEmpty() bool {
	return d.Len() == 0
}

// Records retorna uma cópia dos registros
func (d *Dataset) Records() []SalesRecord {
	if d == nil {
		return nil
	}
	cp := make([]SalesRecord, len(d.records))
	copy(cp, d.records)
	return cp
}

// Each percorre os registros na ordem de carga sem copiá-los
func (d *Dataset) Each(fn func(SalesRecord)) {
	if d == nil {
		return
	}
	for _, r := range d.records {
		fn(r)
	}
}

// Where retorna uma visão derivada com os registros aceitos por keep, preservando a ordem
func (d *Dataset) Where(keep func(SalesRecord) bool) *Dataset {
	if d == nil {
		return &Dataset{columns: map[string]bool{}}
	}

	kept := make([]SalesRecord, 0, len(d.records))
	for _, r := range d.records {
		if keep(r) {
			kept = append(kept, r)
		}
	}

	return &Dataset{records: kept, columns: d.columns}
}

func (d *Dataset) HasColumn(name string) bool {
	if d == nil {
		return false
	}
	return d.columns[name]
}

// Columns retorna as colunas presentes, na ordem de ExpectedColumns
func (d *Dataset) Columns() []string {
	cols := make([]string, 0, len(ExpectedColumns))
	for _, c := range ExpectedColumns {
		if d.HasColumn(c) {
			cols = append(cols, c)
		}
	}
	return cols
}

// YearBounds retorna o menor e o maior ano do dataset. ok é false para dataset vazio.
func (d *Dataset) YearBounds() (minYear, maxYear int, ok bool) {
	if d.IsEmpty() {
		return 0, 0, false
	}

	minYear, maxYear = d.records[0].Year, d.records[0].Year
	for _, r := range d.records[1:] {
		if r.Year < minYear {
			minYear = r.Year
		}
		if r.Year > maxYear {
			maxYear = r.Year
		}
	}

	return minYear, maxYear, true
}

// Genres retorna os gêneros distintos em ordem alfabética, sem valores vazios
func (d *Dataset) Genres() []string {
	seen := make(map[string]bool)
	genres := make([]string, 0)

	d.Each(func(r SalesRecord) {
		if r.Genre == "" || seen[r.Genre] {
			return
		}
		seen[r.Genre] = true
		genres = append(genres, r.Genre)
	})

	sort.Strings(genres)
	return genres
}
