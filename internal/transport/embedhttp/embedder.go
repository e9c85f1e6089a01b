// Package embedhttp talks to the sidecar embedding service over its minimal
// JSON contract: POST /embed with {"texts": [...]} answered by
// {"vectors": [[...], ...]}.
package embedhttp

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/campuslink/discovery/internal/domain"
	"github.com/campuslink/discovery/internal/metrics"
)

// DefaultTimeout bounds one embedding request end to end, connect included.
const DefaultTimeout = 8 * time.Second

const providerLabel = "service"

// Embedder is an embedding provider backed by the in-house embedding service.
type Embedder struct {
	baseURL    string
	model      string
	timeout    time.Duration
	httpClient *http.Client
	logger     *zap.Logger
}

// Config holds the embedding service settings.
type Config struct {
	BaseURL string
	Model   string
	Timeout time.Duration
	Logger  *zap.Logger
}

// NewEmbedder creates an embedding service client. A zero Timeout falls back
// to DefaultTimeout.
func NewEmbedder(cfg *Config) *Embedder {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Embedder{
		baseURL:    cfg.BaseURL,
		model:      cfg.Model,
		timeout:    timeout,
		httpClient: &http.Client{},
		logger:     logger,
	}
}

type embedRequest struct {
	Texts []string `json:"texts"`
}

type embedResponse struct {
	Vectors [][]float32 `json:"vectors"`
}

// Embed implements domain.Embedder. A request that exceeds the deadline maps
// to domain.ErrEmbeddingTimeout, a well-formed HTTP error to
// domain.ErrEmbeddingProviderError and a malformed body to
// domain.ErrEmbeddingInvalidResponse.
func (e *Embedder) Embed(ctx context.Context, text string) ([]float32, error) {
	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	body, err := json.Marshal(embedRequest{Texts: []string{text}})
	if err != nil {
		return nil, fmt.Errorf("encode embedding request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.baseURL+"/embed", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build embedding request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := e.httpClient.Do(req)
	duration := time.Since(start)

	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
			e.countError("timeout")
			return nil, fmt.Errorf("embedding request after %s: %w", duration.Round(time.Millisecond), domain.ErrEmbeddingTimeout)
		}
		e.countError("transport")
		return nil, fmt.Errorf("embedding request: %v: %w", err, domain.ErrEmbeddingProviderError)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		e.countError("http_status")
		return nil, fmt.Errorf("embedding service returned %d: %w", resp.StatusCode, domain.ErrEmbeddingProviderError)
	}

	var parsed embedResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		e.countError("decode")
		return nil, fmt.Errorf("decode embedding response: %v: %w", err, domain.ErrEmbeddingInvalidResponse)
	}
	if len(parsed.Vectors) == 0 || len(parsed.Vectors[0]) == 0 {
		e.countError("empty_response")
		return nil, fmt.Errorf("embedding response has no vectors: %w", domain.ErrEmbeddingInvalidResponse)
	}

	metrics.EmbeddingRequestsTotal.WithLabelValues(providerLabel, e.model, "success").Inc()
	metrics.EmbeddingRequestDuration.WithLabelValues(providerLabel, e.model).Observe(duration.Seconds())

	return parsed.Vectors[0], nil
}

// HealthCheck probes the service's health endpoint.
func (e *Embedder) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, e.baseURL+"/health", http.NoBody)
	if err != nil {
		return fmt.Errorf("build health request: %w", err)
	}

	resp, err := e.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("embedding health check: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("embedding health check returned %d", resp.StatusCode)
	}
	return nil
}

func (e *Embedder) countError(errorType string) {
	metrics.EmbeddingRequestsTotal.WithLabelValues(providerLabel, e.model, "error").Inc()
	metrics.EmbeddingErrorsTotal.WithLabelValues(providerLabel, e.model, errorType).Inc()
	e.logger.Warn("embedding request failed", zap.String("error_type", errorType))
}
