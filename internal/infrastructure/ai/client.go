// Package ai provides the recipe generation client. It talks to an external
// generation service when one is configured and degrades to a built-in mock
// catalog when the service is absent or unreachable.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/platewise/v1/internal/domain/recipe"
	"github.com/platewise/v1/internal/infrastructure/config"
	"github.com/platewise/v1/internal/ports/outbound"
	apperrors "github.com/platewise/v1/pkg/errors"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Client implements the RecipeGenerator port over HTTP.
type Client struct {
	baseURL string
	model   string
	client  *http.Client
	logger  *zap.Logger
	mock    *MockGenerator
}

var _ outbound.RecipeGenerator = (*Client)(nil)

// NewClient creates a generation client. An empty base URL selects the mock
// generator outright.
func NewClient(cfg config.AIConfig, logger *zap.Logger) *Client {
	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	log := logger.Named("ai-client")
	if cfg.BaseURL == "" {
		log.Info("no generation endpoint configured, using mock recipes")
	} else {
		log.Info("generation client initialized",
			zap.String("base_url", cfg.BaseURL),
			zap.String("model", cfg.Model))
	}

	return &Client{
		baseURL: cfg.BaseURL,
		model:   cfg.Model,
		client:  &http.Client{Timeout: timeout},
		logger:  log,
		mock:    NewMockGenerator(),
	}
}

// Generate produces recipe suggestions. Failures of the remote service never
// propagate: the caller gets mock recipes tagged as a fallback instead.
func (c *Client) Generate(ctx context.Context, req recipe.GenerateRequest) (*recipe.GenerateResponse, error) {
	if c.baseURL == "" {
		return c.mock.Generate(ctx, req)
	}

	resp, err := c.callRemote(ctx, req)
	if err != nil {
		c.logger.Warn("remote generation failed, falling back to mock recipes", zap.Error(err))
		fallback, _ := c.mock.Generate(ctx, req)
		fallback.Data.Source = recipe.SourceFallback
		return fallback, nil
	}
	return resp, nil
}

func (c *Client) callRemote(ctx context.Context, req recipe.GenerateRequest) (*recipe.GenerateResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to encode generation request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/generate", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build generation request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if c.model != "" {
		httpReq.Header.Set("X-Model", c.model)
	}

	httpResp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, apperrors.NewExternalServiceError("generation service", err)
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("generation service returned status %d", httpResp.StatusCode)
	}

	var resp recipe.GenerateResponse
	if err := json.NewDecoder(httpResp.Body).Decode(&resp); err != nil {
		return nil, fmt.Errorf("failed to decode generation response: %w", err)
	}
	if !resp.Success {
		return nil, fmt.Errorf("generation service reported failure")
	}

	resp.Data.Source = recipe.SourceAI
	if resp.Data.GenerationID == "" {
		resp.Data.GenerationID = uuid.New().String()
	}
	return &resp, nil
}
