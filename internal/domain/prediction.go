package domain

// PredictionRequest são as vendas regionais informadas no formulário (milhões de unidades)
type PredictionRequest struct {
	NASales    float64 `json:"na_sales"`
	EUSales    float64 `json:"eu_sales"`
	JPSales    float64 `json:"jp_sales"`
	OtherSales float64 `json:"other_sales"`
}

type PredictionResult struct {
	ID                   string            `json:"id"`
	Request              PredictionRequest `json:"request"`
	PredictedGlobalSales float64           `json:"predicted_global_sales"`
	Display              string            `json:"display"`
	Model                string            `json:"model"`
}

type ModelStatus struct {
	Available bool   `json:"available"`
	Name      string `json:"name,omitempty"`
	Kind      string `json:"kind,omitempty"`
	Path      string `json:"path,omitempty"`
	Message   string `json:"message,omitempty"`
}
