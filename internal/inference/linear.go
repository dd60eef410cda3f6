package inference

import (
	"context"
	"fmt"
)

const KindLinear = "linear"

// LinearModel avalia a forma linear exportada de um modelo já treinado; não treina nem ajusta nada.
// O regressor treinado em si é servido pelo kind remote.
type LinearModel struct {
	info         ModelInfo
	features     []string
	coefficients []float64
	intercept    float64
}

func newLinearModel(info ModelInfo, def modelFile) (*LinearModel, error) {
	if len(def.Features) == 0 {
		return nil, fmt.Errorf("%w: linear model without features", ErrInvalidModel)
	}
	if len(def.Features) != len(def.Coefficients) {
		return nil, fmt.Errorf("%w: %d features but %d coefficients",
			ErrInvalidModel, len(def.Features), len(def.Coefficients))
	}

	return &LinearModel{
		info:         info,
		features:     def.Features,
		coefficients: def.Coefficients,
		intercept:    def.Intercept,
	}, nil
}

func (m *LinearModel) Info() ModelInfo {
	return m.info
}

func (m *LinearModel) Predict(ctx context.Context, rows []FeatureRow) ([]float64, error) {
	predictions := make([]float64, 0, len(rows))

	for _, row := range rows {
		if len(row) != len(m.features) {
			return nil, fmt.Errorf("%w: model expects %d features, got %d",
				ErrFeatureMismatch, len(m.features), len(row))
		}

		value := m.intercept
		for i, name := range m.features {
			x, ok := row.Value(name)
			if !ok {
				return nil, fmt.Errorf("%w: feature %s missing from input", ErrFeatureMismatch, name)
			}
			value += m.coefficients[i] * x
		}

		predictions = append(predictions, value)
	}

	return predictions, nil
}
