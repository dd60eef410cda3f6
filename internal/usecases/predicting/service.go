package predicting

import (
	"context"
	"fmt"
	"math"

	"github.com/vfg2006/vgsales-dashboard-api/internal/domain"
	"github.com/vfg2006/vgsales-dashboard-api/internal/inference"
	"github.com/vfg2006/vgsales-dashboard-api/pkg/log"
	"github.com/vfg2006/vgsales-dashboard-api/pkg/utils"
)

type Predictor interface {
	Status() domain.ModelStatus
	Predict(ctx context.Context, req domain.PredictionRequest) (*domain.PredictionResult, error)
}

type PredictionService struct {
	model   inference.Predictor
	loadErr error
}

// NewPredictionService recebe o resultado da carga do modelo. Com model nil, loadErr explica a indisponibilidade.
func NewPredictionService(model inference.Predictor, loadErr error) Predictor {
	return &PredictionService{
		model:   model,
		loadErr: loadErr,
	}
}

func (s *PredictionService) Status() domain.ModelStatus {
	if s.model == nil {
		return domain.ModelStatus{
			Available: false,
			Message:   s.unavailableMessage(),
		}
	}

	info := s.model.Info()
	return domain.ModelStatus{
		Available: true,
		Name:      info.Name,
		Kind:      info.Kind,
		Path:      info.Path,
	}
}

func (s *PredictionService) Predict(ctx context.Context, req domain.PredictionRequest) (*domain.PredictionResult, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	if s.model == nil {
		return nil, fmt.Errorf("%w: %s", ErrModelUnavailable, s.unavailableMessage())
	}

	prediction, err := inference.Predict(ctx, s.model, req)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("prediction: model failed")
		return nil, &PredictionError{Err: err}
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate prediction id: %w", err)
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"prediction_id": id,
		"prediction":    prediction,
	}).Info("prediction: global sales estimated")

	return &domain.PredictionResult{
		ID:                   id,
		Request:              req,
		PredictedGlobalSales: prediction,
		Display:              utils.FormatMillions(prediction),
		Model:                s.model.Info().Name,
	}, nil
}

func (s *PredictionService) unavailableMessage() string {
	if s.loadErr != nil {
		return s.loadErr.Error()
	}
	return inference.ErrNoModel.Error()
}

func validateRequest(req domain.PredictionRequest) error {
	fields := []struct {
		name  string
		value float64
	}{
		{"na_sales", req.NASales},
		{"eu_sales", req.EUSales},
		{"jp_sales", req.JPSales},
		{"other_sales", req.OtherSales},
	}

	for _, f := range fields {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return fmt.Errorf("%w: %s must be a finite number", ErrInvalidRequest, f.name)
		}
		if f.value < 0 {
			return fmt.Errorf("%w: %s must not be negative", ErrInvalidRequest, f.name)
		}
	}

	return nil
}
