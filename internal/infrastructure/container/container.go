// Package container provides dependency injection using Uber FX.
package container

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/platewise/v1/internal/application/history"
	"github.com/platewise/v1/internal/application/mealplan"
	"github.com/platewise/v1/internal/application/nutritionlog"
	"github.com/platewise/v1/internal/application/preferences"
	"github.com/platewise/v1/internal/application/profile"
	"github.com/platewise/v1/internal/application/shopping"
	"github.com/platewise/v1/internal/infrastructure/ai"
	"github.com/platewise/v1/internal/infrastructure/config"
	"github.com/platewise/v1/internal/infrastructure/http/apiserver"
	"github.com/platewise/v1/internal/infrastructure/http/handlers"
	"github.com/platewise/v1/internal/infrastructure/persistence/file"
	"github.com/platewise/v1/internal/infrastructure/persistence/memory"
	redispersist "github.com/platewise/v1/internal/infrastructure/persistence/redis"
	"github.com/platewise/v1/internal/infrastructure/persistence/sqlite"
	"github.com/platewise/v1/internal/infrastructure/security"
	"github.com/platewise/v1/internal/ports/outbound"
	"github.com/platewise/v1/pkg/logger"

	"go.uber.org/fx"
	"go.uber.org/zap"
	gormLogger "gorm.io/gorm/logger"
)

// Module provides all dependency injection modules
var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	PersistenceModule,
	StoreModule,
	HTTPModule,
	LifecycleModule,
)

// ConfigModule provides configuration
var ConfigModule = fx.Provide(
	func() (*config.Config, error) {
		return config.Load(os.Getenv("PLATEWISE_CONFIG"))
	},
)

// LoggerModule provides logging
var LoggerModule = fx.Provide(
	func(cfg *config.Config) (*zap.Logger, error) {
		return logger.New(logger.Config{
			Level:       cfg.App.LogLevel,
			Format:      cfg.App.LogFormat,
			Development: cfg.App.Debug,
		})
	},
	func(log *zap.Logger) *zap.SugaredLogger {
		return log.Sugar()
	},
)

// PersistenceModule provides the state persistence backend selected by
// storage.driver.
var PersistenceModule = fx.Provide(
	func(cfg *config.Config, log *zap.Logger) (outbound.StatePersister, error) {
		switch cfg.Storage.Driver {
		case "memory":
			log.Info("Using in-memory state persistence")
			return memory.NewPersister(), nil

		case "redis":
			log.Info("Using Redis state persistence",
				zap.String("host", cfg.Redis.Host),
				zap.Int("port", cfg.Redis.Port),
			)
			return redispersist.NewPersister(cfg.Redis, log)

		case "sqlite":
			logLevel := gormLogger.Silent
			if cfg.App.Debug {
				logLevel = gormLogger.Info
			}
			db, err := sqlite.SetupDatabase(cfg.Storage.SQLitePath, logLevel)
			if err != nil {
				return nil, fmt.Errorf("failed to setup SQLite database: %w", err)
			}
			log.Info("Using SQLite state persistence",
				zap.String("path", cfg.Storage.SQLitePath),
			)
			return sqlite.NewPersister(db, log), nil

		case "file", "":
			log.Info("Using file state persistence",
				zap.String("dir", cfg.Storage.StatePath),
			)
			return file.NewPersister(cfg.Storage.StatePath, log)

		default:
			return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
		}
	},
)

// StoreModule provides the application stores and their collaborators
var StoreModule = fx.Provide(
	preferences.NewService,
	mealplan.NewService,
	history.NewService,
	shopping.NewService,
	nutritionlog.NewService,
	profile.NewService,
	security.NewAuthService,

	func(cfg *config.Config, log *zap.Logger) outbound.RecipeGenerator {
		return ai.NewClient(cfg.AI, log)
	},
)

// HTTPModule provides the API server and handlers
var HTTPModule = fx.Provide(
	handlers.NewAPIHandlers,
	apiserver.NewServer,
)

// LifecycleModule provides lifecycle hooks
var LifecycleModule = fx.Invoke(
	RegisterLifecycleHooks,
)

// RegisterLifecycleHooks registers application lifecycle hooks
func RegisterLifecycleHooks(
	lc fx.Lifecycle,
	cfg *config.Config,
	log *zap.Logger,
	server *apiserver.Server,
) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info("Starting Platewise application",
				zap.String("version", cfg.App.Version),
				zap.String("environment", cfg.App.Environment),
				zap.String("storage_driver", cfg.Storage.Driver),
			)

			go func() {
				if err := server.Start(); err != nil && err != http.ErrServerClosed {
					log.Fatal("Failed to start HTTP server", zap.Error(err))
				}
			}()

			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("Shutting down Platewise application")

			if err := server.Shutdown(ctx); err != nil {
				log.Error("Failed to shutdown HTTP server", zap.Error(err))
			}

			_ = log.Sync()
			return nil
		},
	})
}
