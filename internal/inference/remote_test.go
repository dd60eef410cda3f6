package inference

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/vgsales-dashboard-api/internal/domain"
)

func newRemote(t *testing.T, endpoint string) Predictor {
	t.Helper()
	content := fmt.Sprintf(`{"format_version": 1, "kind": "remote", "name": "served", "endpoint": %q}`, endpoint)
	model, err := Decode("inline", []byte(content), time.Second)
	require.NoError(t, err)
	return model
}

func TestRemoteModel_Predict(t *testing.T) {
	var received remoteRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"predictions": [3.8]}`))
	}))
	defer server.Close()

	model := newRemote(t, server.URL)

	row := NewFeatureRow(domain.PredictionRequest{NASales: 1.0, EUSales: 2.0, JPSales: 0.5, OtherSales: 0.3})
	predictions, err := model.Predict(context.Background(), []FeatureRow{row})
	require.NoError(t, err)

	assert.Equal(t, []float64{3.8}, predictions)
	assert.Equal(t, FeatureNames, received.Columns)
	assert.Equal(t, [][]float64{{1.0, 2.0, 0.5, 0.3}}, received.Data)
	assert.Equal(t, KindRemote, model.Info().Kind)
}

func TestRemoteModel_ServiceError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model not ready", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	_, err := newRemote(t, server.URL).Predict(context.Background(), []FeatureRow{NewFeatureRow(domain.PredictionRequest{})})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
	assert.Contains(t, err.Error(), "model not ready")
}

func TestRemoteModel_PredictionCountMismatch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"predictions": []}`))
	}))
	defer server.Close()

	_, err := newRemote(t, server.URL).Predict(context.Background(), []FeatureRow{NewFeatureRow(domain.PredictionRequest{})})

	assert.ErrorIs(t, err, ErrFeatureMismatch)
}
