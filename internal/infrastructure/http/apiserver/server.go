// Package apiserver provides the pure JSON API HTTP server.
package apiserver

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/platewise/v1/internal/infrastructure/config"
	"github.com/platewise/v1/internal/infrastructure/http/handlers"
	"github.com/platewise/v1/internal/infrastructure/http/middleware"
	"github.com/platewise/v1/internal/infrastructure/security"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// Server is the JSON API server over the store layer.
type Server struct {
	config      *config.Config
	logger      *zap.Logger
	server      *http.Server
	router      *chi.Mux
	handlers    *handlers.APIHandlers
	authService *security.AuthService
}

// NewServer creates the API server instance.
func NewServer(
	cfg *config.Config,
	log *zap.Logger,
	apiHandlers *handlers.APIHandlers,
	authService *security.AuthService,
) *Server {
	server := &Server{
		config:      cfg,
		logger:      log,
		handlers:    apiHandlers,
		authService: authService,
	}

	server.router = server.setupRoutes()
	server.server = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      server.router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return server
}

// setupRoutes configures the JSON API routes
func (s *Server) setupRoutes() *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(s.logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.Security())
	r.Use(middleware.CORS())
	r.Use(chimiddleware.Timeout(30 * time.Second))
	r.Use(chimiddleware.Compress(5))
	r.Use(middleware.JSONOnly())

	r.Get("/health", s.handleHealthCheck)

	r.Route("/api/v1", func(r chi.Router) {
		s.setupAPIV1Routes(r)
	})

	return r
}

// setupAPIV1Routes configures API v1 endpoints
func (s *Server) setupAPIV1Routes(r chi.Router) {
	h := s.handlers

	// Preferences store
	r.Route("/preferences", func(r chi.Router) {
		r.Get("/", h.GetPreferences)
		r.Put("/", h.UpdatePreferences)
		r.Delete("/", h.ResetPreferences)
	})

	// Meal plan store
	r.Route("/plan", func(r chi.Router) {
		r.Get("/", h.GetMealPlan)
		r.Delete("/", h.ClearWeek)
		r.Post("/meals", h.SetMeal)
		r.Post("/snacks", h.AddSnack)
		r.Put("/selected-date", h.SelectDate)
		r.Get("/days/{date}/totals", h.GetDayTotals)
		r.Delete("/days/{date}", h.ClearDay)
		r.Delete("/days/{date}/{slot}", h.RemoveMeal)
	})

	// Recipe history store
	r.Route("/history", func(r chi.Router) {
		r.Get("/", h.GetHistory)
		r.Post("/favorites", h.AddFavorite)
		r.Get("/favorites/{id}", h.CheckFavorite)
		r.Delete("/favorites/{id}", h.RemoveFavorite)
		r.Post("/views", h.RecordView)
	})

	// Shopping list store
	r.Route("/shopping-list", func(r chi.Router) {
		r.Get("/", h.GetShoppingList)
		r.Delete("/", h.ClearShoppingList)
		r.Post("/items", h.AddShoppingItem)
		r.Put("/items/{id}/toggle", h.ToggleShoppingItem)
		r.Delete("/items/{id}", h.RemoveShoppingItem)
		r.Delete("/checked", h.ClearCheckedItems)
	})

	// Nutrition log store and derived aggregates
	r.Route("/nutrition", func(r chi.Router) {
		r.Post("/entries", h.LogEntry)
		r.Delete("/entries/{id}", h.RemoveLogEntry)
		r.Get("/days/{date}", h.GetDayLog)
		r.Get("/weekly", h.GetWeeklyNutrition)
	})

	// Recipe generation
	r.Route("/recipes", func(r chi.Router) {
		r.Post("/generate", h.GenerateRecipes)
	})

	// Profile routes require a valid bearer token
	r.Group(func(r chi.Router) {
		r.Use(middleware.Authenticate(s.authService))
		r.Get("/profile", h.GetProfile)
		r.Put("/profile", h.UpdateProfile)
	})
}

// Start starts the API HTTP server
func (s *Server) Start() error {
	s.logger.Info("Starting JSON API server",
		zap.String("address", s.server.Addr),
		zap.String("mode", "API-only"),
	)

	return s.server.ListenAndServe()
}

// Server returns the underlying HTTP server instance
func (s *Server) Server() *http.Server {
	return s.server
}

// Router returns the configured router, mostly for tests.
func (s *Server) Router() http.Handler {
	return s.router
}

// Shutdown gracefully shuts down the API server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down API server...")
	return s.server.Shutdown(ctx)
}

// handleHealthCheck provides the health check endpoint
func (s *Server) handleHealthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	fmt.Fprintf(w, `{"status":"healthy","service":"platewise-api","version":"%s","timestamp":%d}`,
		s.config.App.Version, time.Now().Unix())
}
