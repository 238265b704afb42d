package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/platewise/v1/internal/domain/recipe"
	"github.com/platewise/v1/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestEmptyBaseURLUsesMock(t *testing.T) {
	client := NewClient(config.AIConfig{}, zap.NewNop())

	resp, err := client.Generate(context.Background(), recipe.GenerateRequest{})
	require.NoError(t, err)
	assert.Equal(t, recipe.SourceMock, resp.Data.Source)
	assert.NotEmpty(t, resp.Data.Recipes)
	assert.NotEmpty(t, resp.Data.GenerationID)
}

func TestRemoteGenerationSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/generate", r.URL.Path)
		assert.Equal(t, "test-model", r.Header.Get("X-Model"))

		var req recipe.GenerateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "dinner", req.MealType)

		json.NewEncoder(w).Encode(recipe.GenerateResponse{
			Success: true,
			Data: recipe.GenerateResult{
				Recipes: []recipe.Recipe{{ID: "remote-1", Title: "Remote Dish"}},
			},
		})
	}))
	defer server.Close()

	client := NewClient(config.AIConfig{
		BaseURL:        server.URL,
		Model:          "test-model",
		RequestTimeout: 5 * time.Second,
	}, zap.NewNop())

	resp, err := client.Generate(context.Background(), recipe.GenerateRequest{MealType: "dinner"})
	require.NoError(t, err)
	assert.Equal(t, recipe.SourceAI, resp.Data.Source)
	require.Len(t, resp.Data.Recipes, 1)
	assert.Equal(t, "remote-1", resp.Data.Recipes[0].ID)
	// A missing generation id is filled in locally.
	assert.NotEmpty(t, resp.Data.GenerationID)
}

func TestRemoteErrorFallsBackToMock(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(config.AIConfig{BaseURL: server.URL}, zap.NewNop())

	resp, err := client.Generate(context.Background(), recipe.GenerateRequest{})
	require.NoError(t, err)
	assert.Equal(t, recipe.SourceFallback, resp.Data.Source)
	assert.NotEmpty(t, resp.Data.Recipes)
}

func TestUnreachableServiceFallsBackToMock(t *testing.T) {
	client := NewClient(config.AIConfig{
		BaseURL:        "http://127.0.0.1:1",
		RequestTimeout: time.Second,
	}, zap.NewNop())

	resp, err := client.Generate(context.Background(), recipe.GenerateRequest{})
	require.NoError(t, err)
	assert.Equal(t, recipe.SourceFallback, resp.Data.Source)
	assert.NotEmpty(t, resp.Data.Recipes)
}

func TestReportedFailureFallsBackToMock(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(recipe.GenerateResponse{Success: false})
	}))
	defer server.Close()

	client := NewClient(config.AIConfig{BaseURL: server.URL}, zap.NewNop())

	resp, err := client.Generate(context.Background(), recipe.GenerateRequest{})
	require.NoError(t, err)
	assert.Equal(t, recipe.SourceFallback, resp.Data.Source)
}
