package inference

import (
	"context"
	"fmt"
	"math"

	"github.com/vfg2006/vgsales-dashboard-api/internal/domain"
)

// Predict monta a linha de entrada com NA, EU, JP e Other e devolve a primeira previsão.
// Qualquer falha do modelo, inclusive panic, vira *InferenceError.
func Predict(ctx context.Context, model Predictor, req domain.PredictionRequest) (prediction float64, err error) {
	if model == nil {
		return 0, &InferenceError{Err: ErrNoModel}
	}

	defer func() {
		if r := recover(); r != nil {
			prediction, err = 0, &InferenceError{Err: fmt.Errorf("model panicked: %v", r)}
		}
	}()

	predictions, err := model.Predict(ctx, []FeatureRow{NewFeatureRow(req)})
	if err != nil {
		return 0, &InferenceError{Err: err}
	}

	if len(predictions) == 0 {
		return 0, &InferenceError{Err: ErrEmptyPrediction}
	}

	prediction = predictions[0]
	if math.IsNaN(prediction) || math.IsInf(prediction, 0) {
		return 0, &InferenceError{Err: ErrNonFinitePrediction}
	}

	return prediction, nil
}
