package domain

// NoTopGenre é exibido quando a visão filtrada está vazia
const NoTopGenre = "-"

type SummaryMetrics struct {
	TotalGlobalSales float64        `json:"total_global_sales"`
	RecordCount      int            `json:"record_count"`
	MeanGlobalSales  float64        `json:"mean_global_sales"`
	TopGenre         string         `json:"top_genre"`
	Display          MetricsDisplay `json:"display"`
}

// MetricsDisplay contém os valores já formatados para os cards do dashboard
type MetricsDisplay struct {
	TotalGlobalSales string `json:"total_global_sales"`
	RecordCount      string `json:"record_count"`
	MeanGlobalSales  string `json:"mean_global_sales"`
}

type GenreSales struct {
	Genre       string  `json:"genre"`
	GlobalSales float64 `json:"global_sales"`
}

type YearSales struct {
	Year        int     `json:"year"`
	GlobalSales float64 `json:"global_sales"`
}

type YearRegionSales struct {
	Year  int                `json:"year"`
	Sales map[Region]float64 `json:"sales"`
}
