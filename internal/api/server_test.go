package api

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/vgsales-dashboard-api/internal/config"
	"github.com/vfg2006/vgsales-dashboard-api/internal/domain"
	"github.com/vfg2006/vgsales-dashboard-api/internal/inference"
	"github.com/vfg2006/vgsales-dashboard-api/internal/inference/mocks"
	"github.com/vfg2006/vgsales-dashboard-api/internal/usecases/dashboarding"
	"github.com/vfg2006/vgsales-dashboard-api/internal/usecases/predicting"
	"github.com/vfg2006/vgsales-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/vgsales-dashboard-api/pkg/log"
	"github.com/xuri/excelize/v2"
	"go.uber.org/mock/gomock"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func init() {
	log.SetupTestLogger()
}

func testConfig() *config.Config {
	return &config.Config{
		Server: config.Server{AllowedOrigins: []string{"http://localhost:3000"}},
		Charts: config.Charts{Theme: "chalk"},
	}
}

func testDataset() *domain.Dataset {
	return domain.NewDataset([]domain.SalesRecord{
		{Rank: 1, Name: "Alpha", Year: 2000, Genre: "Action", NASales: 0.5, EUSales: 0.25, JPSales: 0.25, GlobalSales: 1.0},
		{Rank: 2, Name: "Beta", Year: 2001, Genre: "Sports", NASales: 1.0, EUSales: 0.5, JPSales: 0.5, GlobalSales: 2.0},
		{Rank: 3, Name: "Gamma", Year: 2001, Genre: "Action", NASales: 1.5, EUSales: 1.0, JPSales: 0.5, GlobalSales: 3.0},
	}, domain.ExpectedColumns)
}

func newTestHandler(t *testing.T, model inference.Predictor, loadErr error) http.Handler {
	t.Helper()
	prediction := predicting.NewPredictionService(model, loadErr)
	dashboard := dashboarding.NewDashboardService(testDataset(), prediction)
	return NewHandler(testConfig(), dashboard, prediction)
}

func do(h http.Handler, method, target string, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) apiErrors.APIError {
	t.Helper()
	var apiErr apiErrors.APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
	return apiErr
}

func TestHealthcheck(t *testing.T) {
	rec := do(newTestHandler(t, nil, nil), http.MethodGet, "/healthcheck", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Body.String())
}

func TestFilterOptions(t *testing.T) {
	rec := do(newTestHandler(t, nil, nil), http.MethodGet, "/v1/filters/options", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var options domain.FilterOptions
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &options))
	assert.Equal(t, domain.FilterOptions{YearMin: 2000, YearMax: 2001, Genres: []string{"Action", "Sports"}}, options)
}

func TestDashboard(t *testing.T) {
	tests := []struct {
		name     string
		target   string
		status   int
		validate func(t *testing.T, rec *httptest.ResponseRecorder)
	}{
		{
			name:   "filtro padrão cobre todo o dataset",
			target: "/v1/dashboard",
			status: http.StatusOK,
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var dashboard domain.DashboardResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &dashboard))
				assert.Equal(t, 6.0, dashboard.Metrics.TotalGlobalSales)
				assert.Equal(t, "Action", dashboard.Metrics.TopGenre)
				assert.Equal(t, "6.0 million copies", dashboard.Metrics.Display.TotalGlobalSales)
				assert.Equal(t, domain.FilterCriteria{YearMin: 2000, YearMax: 2001}, dashboard.Filters)
				assert.Equal(t, inference.ErrNoModel.Error(), dashboard.Sections[domain.SectionPrediction])
			},
		},
		{
			name:   "gênero e intervalo",
			target: "/v1/dashboard?year_min=2001&year_max=2001&genre=Sports",
			status: http.StatusOK,
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var dashboard domain.DashboardResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &dashboard))
				assert.Equal(t, 2.0, dashboard.Metrics.TotalGlobalSales)
				assert.Equal(t, 1, dashboard.Metrics.RecordCount)
			},
		},
		{
			name:   "visão vazia",
			target: "/v1/dashboard?year_min=2010&year_max=2020",
			status: http.StatusOK,
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var dashboard domain.DashboardResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &dashboard))
				assert.Equal(t, domain.NoTopGenre, dashboard.Metrics.TopGenre)
				assert.Equal(t, dashboarding.MessageNoData, dashboard.Sections[domain.SectionGenre])
			},
		},
		{
			name:   "intervalo invertido",
			target: "/v1/dashboard?year_min=2005&year_max=2000",
			status: http.StatusBadRequest,
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, apiErrors.ErrInvalidRequest, decodeError(t, rec).Code)
			},
		},
		{
			name:   "ano não numérico",
			target: "/v1/dashboard?year_min=abc",
			status: http.StatusBadRequest,
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, apiErrors.ErrInvalidFormat, decodeError(t, rec).Code)
			},
		},
		{
			name:   "região inválida",
			target: "/v1/dashboard?regions=NA,XX",
			status: http.StatusBadRequest,
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, apiErrors.ErrInvalidFormat, decodeError(t, rec).Code)
			},
		},
	}

	h := newTestHandler(t, nil, nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(h, http.MethodGet, tt.target, "")
			assert.Equal(t, tt.status, rec.Code)
			tt.validate(t, rec)
		})
	}
}

func TestCharts(t *testing.T) {
	h := newTestHandler(t, nil, nil)

	for _, path := range []string{"/v1/charts/genre", "/v1/charts/yearly", "/v1/charts/regions?regions=NA,JP"} {
		t.Run(path, func(t *testing.T) {
			rec := do(h, http.MethodGet, path, "")
			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
			assert.Contains(t, rec.Body.String(), "echarts")
		})
	}

	rec := do(h, http.MethodGet, "/v1/charts/genre?year_min=2010&year_max=2020", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	apiErr := decodeError(t, rec)
	assert.Equal(t, apiErrors.ErrNoData, apiErr.Code)
	assert.Equal(t, dashboarding.MessageNoData, apiErr.Message)
}

func TestExport(t *testing.T) {
	rec := do(newTestHandler(t, nil, nil), http.MethodGet, "/v1/dashboard/export?genre=Action", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "vgsales-dashboard-2000-2001.xlsx")

	f, err := excelize.OpenReader(bytes.NewReader(rec.Body.Bytes()))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Genre")
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"Genre", "Global Sales (millions)"}, {"Action", "4"}}, rows)
}

func TestPredictions(t *testing.T) {
	body := `{"na_sales": 1.0, "eu_sales": 2.0, "jp_sales": 0.5, "other_sales": 0.3}`

	t.Run("previsão calculada", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		model := mocks.NewMockPredictor(ctrl)
		model.EXPECT().Predict(gomock.Any(), gomock.Any()).Return([]float64{3.8}, nil)
		model.EXPECT().Info().Return(inference.ModelInfo{Name: "global-sales-linear", Kind: inference.KindLinear}).AnyTimes()

		rec := do(newTestHandler(t, model, nil), http.MethodPost, "/v1/predictions", body)
		require.Equal(t, http.StatusOK, rec.Code)

		var result domain.PredictionResult
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
		assert.Equal(t, 3.8, result.PredictedGlobalSales)
		assert.Equal(t, "3.80 million", result.Display)
		assert.NotEmpty(t, result.ID)
	})

	t.Run("modelo indisponível", func(t *testing.T) {
		loadErr := &inference.LoadError{Path: "model/video_game_sales.json", Err: inference.ErrUnsupportedVersion}

		rec := do(newTestHandler(t, nil, loadErr), http.MethodPost, "/v1/predictions", body)
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

		apiErr := decodeError(t, rec)
		assert.Equal(t, apiErrors.ErrModelUnavailable, apiErr.Code)
		assert.Equal(t, loadErr.Error(), apiErr.Message)
	})

	t.Run("falha na inferência", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		model := mocks.NewMockPredictor(ctrl)
		model.EXPECT().Predict(gomock.Any(), gomock.Any()).Return(nil, errors.New("shape mismatch"))
		model.EXPECT().Info().Return(inference.ModelInfo{Name: "m"}).AnyTimes()

		rec := do(newTestHandler(t, model, nil), http.MethodPost, "/v1/predictions", body)
		assert.Equal(t, http.StatusInternalServerError, rec.Code)

		apiErr := decodeError(t, rec)
		assert.Equal(t, apiErrors.ErrPredictionFailed, apiErr.Code)
		assert.True(t, strings.HasPrefix(apiErr.Message, "error while running prediction: "))
	})

	t.Run("entrada inválida", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		model := mocks.NewMockPredictor(ctrl)
		model.EXPECT().Info().Return(inference.ModelInfo{Name: "m"}).AnyTimes()
		h := newTestHandler(t, model, nil)

		rec := do(h, http.MethodPost, "/v1/predictions", `{"na_sales": -1}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.ErrInvalidFormat, decodeError(t, rec).Code)

		rec = do(h, http.MethodPost, "/v1/predictions", `{"na_sales": `)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestModelStatus(t *testing.T) {
	rec := do(newTestHandler(t, nil, nil), http.MethodGet, "/v1/model", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var status domain.ModelStatus
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
	assert.False(t, status.Available)
	assert.NotEmpty(t, status.Message)
}

func TestUnknownRoute(t *testing.T) {
	rec := do(newTestHandler(t, nil, nil), http.MethodGet, "/v1/unknown", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, apiErrors.ErrNotFound, decodeError(t, rec).Code)
}
