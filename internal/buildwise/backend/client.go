package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/buildwise/smart-estimator/internal/buildwise/domain"
	"github.com/buildwise/smart-estimator/internal/logging"
)

const (
	EstimatePath     = "/estimate"
	SmartPlanPath    = "/generate-smart-plan"
	maxErrorBodySize = 4 << 10
)

// Client talks to the external estimation service. It never retries.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client for baseURL. A zero timeout waits for the
// service indefinitely.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// BaseURL returns the service address without a trailing slash.
func (c *Client) BaseURL() string { return c.baseURL }

// Estimate sends the coerced form to POST /estimate.
func (c *Client) Estimate(ctx context.Context, in domain.EstimateRequest) (*domain.EstimateResult, error) {
	var out domain.EstimateResult
	start := time.Now()
	err := c.postJSON(ctx, "estimate", EstimatePath, in, &out)
	recordCall(&globalCounters.estimateCalls, time.Since(start), err)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// GeneratePlan sends a freeform description to POST /generate-smart-plan.
func (c *Client) GeneratePlan(ctx context.Context, description string) (*domain.PlanResult, error) {
	var out domain.PlanResult
	start := time.Now()
	err := c.postJSON(ctx, "generate_plan", SmartPlanPath, domain.PlanRequest{Description: description}, &out)
	recordCall(&globalCounters.planCalls, time.Since(start), err)
	if err != nil {
		return nil, err
	}
	out.BlueprintImageURL = c.ResolveURL(out.BlueprintImageURL)
	return &out, nil
}

// Ping checks that the service answers on its root path.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/", nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrBackendUnavailable, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode >= 400 {
		return fmt.Errorf("%w: status %d", domain.ErrBackendUnavailable, resp.StatusCode)
	}
	return nil
}

// ResolveURL turns a path served by the estimation service (blueprints live
// under /static) into an absolute URL. Absolute and empty values pass through.
func (c *Client) ResolveURL(ref string) string {
	if ref == "" {
		return ""
	}
	u, err := url.Parse(ref)
	if err != nil || u.IsAbs() {
		return ref
	}
	base, err := url.Parse(c.baseURL + "/")
	if err != nil {
		return ref
	}
	return base.ResolveReference(u).String()
}

func (c *Client) postJSON(ctx context.Context, operation, path string, in, out any) error {
	logger := logging.NewLogger(ctx)

	body, err := json.Marshal(in)
	if err != nil {
		logger.LogError(operation, err)
		return fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		logger.LogError(operation, err)
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.LogError(operation, err)
		return fmt.Errorf("%w: %v", domain.ErrBackendUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail := errorDetail(resp.Body)
		logger.LogWarnf(operation, "upstream returned status %d: %s", resp.StatusCode, detail)
		return fmt.Errorf("%w: status %d: %s", domain.ErrBackendUnavailable, resp.StatusCode, detail)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		logger.LogError(operation, err)
		return fmt.Errorf("%w: decode response: %v", domain.ErrBackendUnavailable, err)
	}

	logger.LogInfof(operation, "upstream responded status=%d", resp.StatusCode)
	return nil
}

// errorDetail extracts the service's {"detail": ...} message when present.
func errorDetail(r io.Reader) string {
	raw, _ := io.ReadAll(io.LimitReader(r, maxErrorBodySize))
	var payload struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(raw, &payload); err == nil && len(payload.Detail) > 0 {
		var s string
		if json.Unmarshal(payload.Detail, &s) == nil {
			return s
		}
		return string(payload.Detail)
	}
	return strings.TrimSpace(string(raw))
}
