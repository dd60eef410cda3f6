// Package domain contém as estruturas de dados do domínio da aplicação
package domain

// Colunas do arquivo vgsales.csv
const (
	ColumnRank        = "Rank"
	ColumnName        = "Name"
	ColumnPlatform    = "Platform"
	ColumnYear        = "Year"
	ColumnGenre       = "Genre"
	ColumnPublisher   = "Publisher"
	ColumnNASales     = "NA_Sales"
	ColumnEUSales     = "EU_Sales"
	ColumnJPSales     = "JP_Sales"
	ColumnOtherSales  = "Other_Sales"
	ColumnGlobalSales = "Global_Sales"
)

// ExpectedColumns é o cabeçalho esperado do dataset, na ordem das colunas do vgsales.csv
var ExpectedColumns = []string{
	ColumnRank,
	ColumnName,
	ColumnPlatform,
	ColumnYear,
	ColumnGenre,
	ColumnPublisher,
	ColumnNASales,
	ColumnEUSales,
	ColumnJPSales,
	ColumnOtherSales,
	ColumnGlobalSales,
}

// RequiredColumns são as colunas sem as quais nenhuma visão do dashboard faz sentido
var RequiredColumns = []string{ColumnYear, ColumnGenre, ColumnGlobalSales}

type Region string

const (
	RegionNA    Region = "NA"
	RegionEU    Region = "EU"
	RegionJP    Region = "JP"
	RegionOther Region = "Other"
)

// TrendRegions são as regiões exibidas no gráfico de tendência por região
var TrendRegions = []Region{RegionNA, RegionEU, RegionJP}

// Column retorna o nome da coluna de vendas da região (ex: NA_Sales)
func (r Region) Column() string {
	return string(r) + "_Sales"
}

// ParseRegion converte "NA", "EU", "JP" ou "Other" em Region
func ParseRegion(s string) (Region, bool) {
	switch Region(s) {
	case RegionNA, RegionEU, RegionJP, RegionOther:
		return Region(s), true
	}
	return "", false
}

// SalesRecord representa uma linha do dataset. Vendas em milhões de unidades.
type SalesRecord struct {
	Rank        int     `json:"rank"`
	Name        string  `json:"name"`
	Platform    string  `json:"platform"`
	Year        int     `json:"year"`
	Genre       string  `json:"genre"`
	Publisher   string  `json:"publisher"`
	NASales     float64 `json:"na_sales"`
	EUSales     float64 `json:"eu_sales"`
	JPSales     float64 `json:"jp_sales"`
	OtherSales  float64 `json:"other_sales"`
	GlobalSales float64 `json:"global_sales"`
}

// RegionSales retorna as vendas do registro para a região informada
func (r SalesRecord) RegionSales(region Region) float64 {
	switch region {
	case RegionNA:
		return r.NASales
	case RegionEU:
		return r.EUSales
	case RegionJP:
		return r.JPSales
	case RegionOther:
		return r.OtherSales
	}
	return 0
}
