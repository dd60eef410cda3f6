package inference

import (
	"context"

	"github.com/vfg2006/vgsales-dashboard-api/internal/domain"
)

// FeatureNames é o esquema com que o modelo foi treinado, na ordem das colunas de entrada
var FeatureNames = []string{
	domain.ColumnNASales,
	domain.ColumnEUSales,
	domain.ColumnJPSales,
	domain.ColumnOtherSales,
}

type Feature struct {
	Name  string
	Value float64
}

// FeatureRow é uma linha de entrada do modelo com colunas nomeadas e ordenadas
type FeatureRow []Feature

func (r FeatureRow) Value(name string) (float64, bool) {
	for _, f := range r {
		if f.Name == name {
			return f.Value, true
		}
	}
	return 0, false
}

func (r FeatureRow) Names() []string {
	names := make([]string, len(r))
	for i, f := range r {
		names[i] = f.Name
	}
	return names
}

func (r FeatureRow) Values() []float64 {
	values := make([]float64, len(r))
	for i, f := range r {
		values[i] = f.Value
	}
	return values
}

// NewFeatureRow monta a linha de entrada a partir do formulário de previsão
func NewFeatureRow(req domain.PredictionRequest) FeatureRow {
	return FeatureRow{
		{Name: domain.ColumnNASales, Value: req.NASales},
		{Name: domain.ColumnEUSales, Value: req.EUSales},
		{Name: domain.ColumnJPSales, Value: req.JPSales},
		{Name: domain.ColumnOtherSales, Value: req.OtherSales},
	}
}

type ModelInfo struct {
	Name string `json:"name"`
	Kind string `json:"kind"`
	Path string `json:"path"`
}

//go:generate mockgen -source=predictor.go -destination=mocks/predictor.go -package=mocks

// Predictor é o regressor pré-treinado. Retorna uma previsão por linha de entrada.
type Predictor interface {
	Predict(ctx context.Context, rows []FeatureRow) ([]float64, error)
	Info() ModelInfo
}
