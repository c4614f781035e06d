package dashboard

import (
	"context"
	"encoding/json"
	"net/http"
)

// StudentRecord is one row of the fetched payload. It is decoded exactly as
// the endpoint returns it; no field is validated.
type StudentRecord struct {
	Name      string   `json:"name"`
	Score     *float64 `json:"score"`
	Risk      string   `json:"risk"`
	Reason    string   `json:"reason"`
	CreatedAt string   `json:"created_at"`
}

// DataSource supplies the record sequence the renderers consume.
type DataSource interface {
	FetchStudents(ctx context.Context) ([]StudentRecord, error)
}

// HTTPSource fetches records with a single GET against a fixed endpoint.
// There is no retry and no fallback; any failure is returned to the caller.
type HTTPSource struct {
	Endpoint string
	Client   *http.Client
}

func NewHTTPSource(endpoint string) *HTTPSource {
	return &HTTPSource{
		Endpoint: endpoint,
		Client:   http.DefaultClient,
	}
}

func (s *HTTPSource) FetchStudents(ctx context.Context) ([]StudentRecord, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.Endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var records []StudentRecord
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, err
	}
	return records, nil
}
