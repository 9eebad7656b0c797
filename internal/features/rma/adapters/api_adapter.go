package adapters

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"rma-reconcile/internal/core/config"
	"rma-reconcile/internal/core/httpclient"
	"rma-reconcile/internal/features/rma/domain"
	"rma-reconcile/internal/features/rma/ports"
)

// RmaAPIAdapter implements ports.RmaStore against the legacy CRUD HTTP API,
// for deployments where this engine has no direct Mongo access. The legacy API
// wraps every payload in {"success": ..., "data": ...}; that wrapper is
// unwrapped here, exactly once, at the boundary.
type RmaAPIAdapter struct {
	client *http.Client
	config config.RmaAPIConfig
}

// NewRmaAPIAdapter creates a new instance of RmaAPIAdapter.
func NewRmaAPIAdapter(cfg config.RmaAPIConfig) *RmaAPIAdapter {
	return &RmaAPIAdapter{
		client: httpclient.NewClient(10 * time.Second),
		config: cfg,
	}
}

// listEnvelope is the legacy API's bulk response wrapper.
type listEnvelope struct {
	Success bool               `json:"success"`
	Data    []domain.RmaRecord `json:"data"`
}

// itemEnvelope is the legacy API's single-record response wrapper.
type itemEnvelope struct {
	Success bool             `json:"success"`
	Data    domain.RmaRecord `json:"data"`
}

// FindAll fetches the full RMA corpus from the legacy API.
func (a *RmaAPIAdapter) FindAll(ctx context.Context) ([]domain.RmaRecord, error) {
	url := fmt.Sprintf("%s/api/rmas", a.config.URL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	a.authorize(req)

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("rma API returned status: %d", resp.StatusCode)
	}

	var envelope listEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return envelope.Data, nil
}

// FindByID fetches a single RMA record by identifier.
func (a *RmaAPIAdapter) FindByID(ctx context.Context, id string) (*domain.RmaRecord, error) {
	url := fmt.Sprintf("%s/api/rmas/%s", a.config.URL, id)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	a.authorize(req)

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%w: %s", ports.ErrRmaNotFound, id)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("rma API returned status: %d", resp.StatusCode)
	}

	var envelope itemEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &envelope.Data, nil
}

// HealthCheck verifies that the legacy API is reachable and credentials are valid.
func (a *RmaAPIAdapter) HealthCheck() error {
	url := fmt.Sprintf("%s/api/rmas?limit=1", a.config.URL)

	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("health check failed to create request: %w", err)
	}
	a.authorize(req)

	resp, err := a.client.Do(req)
	if err != nil {
		return fmt.Errorf("health check request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("health check failed with status: %d", resp.StatusCode)
	}

	return nil
}

// authorize attaches basic auth credentials to the request.
func (a *RmaAPIAdapter) authorize(req *http.Request) {
	credentials := fmt.Sprintf("%s:%s", a.config.APIKey, a.config.APISecret)
	encoded := base64.StdEncoding.EncodeToString([]byte(credentials))
	req.Header.Add("Authorization", "Basic "+encoded)
}
