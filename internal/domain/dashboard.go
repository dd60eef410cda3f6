package domain

// Seções do dashboard que podem exibir mensagens no lugar do conteúdo
const (
	SectionGenre      = "genre"
	SectionYearly     = "yearly"
	SectionRegions    = "regions"
	SectionPrediction = "prediction"
)

// DashboardResponse agrega tudo o que uma renderização do dashboard precisa
type DashboardResponse struct {
	Filters       FilterCriteria    `json:"filters"`
	Metrics       SummaryMetrics    `json:"metrics"`
	SalesByGenre  []GenreSales      `json:"sales_by_genre"`
	SalesByYear   []YearSales       `json:"sales_by_year"`
	SalesByRegion []YearRegionSales `json:"sales_by_region"`
	Regions       []Region          `json:"regions"`
	Sections      map[string]string `json:"sections,omitempty"`
}

// SetSectionMessage registra a mensagem exibida no lugar de uma seção
func (d *DashboardResponse) SetSectionMessage(section, message string) {
	if d.Sections == nil {
		d.Sections = make(map[string]string)
	}
	d.Sections[section] = message
}
