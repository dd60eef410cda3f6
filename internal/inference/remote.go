package inference

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const KindRemote = "remote"

// RemoteModel delega a previsão para um serviço de inferência que hospeda o regressor treinado
type RemoteModel struct {
	info     ModelInfo
	endpoint string
	client   *http.Client
}

// remoteRequest segue o formato "split" de DataFrame: colunas + linhas
type remoteRequest struct {
	Columns []string    `json:"columns"`
	Data    [][]float64 `json:"data"`
}

type remoteResponse struct {
	Predictions []float64 `json:"predictions"`
}

func newRemoteModel(info ModelInfo, def modelFile, timeout time.Duration) (*RemoteModel, error) {
	u, err := url.ParseRequestURI(def.Endpoint)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		return nil, fmt.Errorf("%w: invalid endpoint %q", ErrInvalidModel, def.Endpoint)
	}

	return &RemoteModel{
		info:     info,
		endpoint: def.Endpoint,
		client: &http.Client{
			Timeout: timeout,
		},
	}, nil
}

func (m *RemoteModel) Info() ModelInfo {
	return m.info
}

func (m *RemoteModel) Predict(ctx context.Context, rows []FeatureRow) ([]float64, error) {
	if len(rows) == 0 {
		return []float64{}, nil
	}

	body := remoteRequest{
		Columns: rows[0].Names(),
		Data:    make([][]float64, len(rows)),
	}
	for i, row := range rows {
		body.Data[i] = row.Values()
	}

	jsonData, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.endpoint, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("inference service returned %s: %s", resp.Status, bytes.TrimSpace(detail))
	}

	var result remoteResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if len(result.Predictions) != len(rows) {
		return nil, fmt.Errorf("%w: sent %d rows, got %d predictions",
			ErrFeatureMismatch, len(rows), len(result.Predictions))
	}

	return result.Predictions, nil
}
