package handler

import (
	"errors"
	"net/http"

	"github.com/vfg2006/vgsales-dashboard-api/internal/domain"
	"github.com/vfg2006/vgsales-dashboard-api/internal/usecases/predicting"
	"github.com/vfg2006/vgsales-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/vgsales-dashboard-api/pkg/log"
)

const maxPredictionBodyBytes = 1 << 12

// GetModelStatus informa se o modelo foi carregado e, caso contrário, o motivo
func GetModelStatus(service predicting.Predictor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, http.StatusOK, service.Status())
	}
}

// CreatePrediction estima as vendas globais a partir das vendas regionais informadas
func CreatePrediction(service predicting.Predictor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.PredictionRequest

		decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxPredictionBodyBytes))
		if err := decoder.Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "invalid request body: "+err.Error(), nil)
			return
		}

		result, err := service.Predict(r.Context(), req)
		if err != nil {
			var predictionErr *predicting.PredictionError
			switch {
			case errors.Is(err, predicting.ErrInvalidRequest):
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			case errors.Is(err, predicting.ErrModelUnavailable):
				apiErrors.WriteError(w, apiErrors.ErrModelUnavailable, service.Status().Message, nil)
			case errors.As(err, &predictionErr):
				apiErrors.WriteError(w, apiErrors.ErrPredictionFailed, predictionErr.Error(), nil)
			default:
				log.ForContext(r.Context()).WithError(err).Error("prediction: unexpected failure")
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "failed to run prediction", nil)
			}
			return
		}

		writeJSON(w, r, http.StatusOK, result)
	}
}
