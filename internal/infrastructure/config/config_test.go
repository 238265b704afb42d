package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	// Point at an empty directory so no stray config file is picked up.
	cwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	defer os.Chdir(cwd)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "Platewise", cfg.App.Name)
	assert.Equal(t, "development", cfg.App.Environment)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "file", cfg.Storage.Driver)
	assert.Equal(t, "./data/state", cfg.Storage.StatePath)
	assert.Equal(t, 6379, cfg.Redis.Port)
	assert.Empty(t, cfg.AI.BaseURL)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
app:
  environment: test
server:
  port: 9090
storage:
  driver: memory
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "test", cfg.App.Environment)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "memory", cfg.Storage.Driver)
	// Unset keys keep their defaults.
	assert.Equal(t, "Platewise", cfg.App.Name)
}

func TestEnvironmentOverride(t *testing.T) {
	t.Setenv("PLATEWISE_STORAGE_DRIVER", "sqlite")
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("app:\n  name: Platewise\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "sqlite", cfg.Storage.Driver)
}

func TestValidateRejectsUnknownDriver(t *testing.T) {
	cfg := &Config{
		App:     AppConfig{Name: "Platewise", Environment: "development"},
		Server:  ServerConfig{Port: 8080},
		Storage: StorageConfig{Driver: "cassandra"},
	}
	assert.Error(t, cfg.Validate())
}

func TestValidateRejectsBadPort(t *testing.T) {
	cfg := &Config{
		App:     AppConfig{Name: "Platewise", Environment: "development"},
		Server:  ServerConfig{Port: 0},
		Storage: StorageConfig{Driver: "memory"},
	}
	assert.Error(t, cfg.Validate())
}

func TestValidateRequiresSecretInProduction(t *testing.T) {
	cfg := &Config{
		App:     AppConfig{Name: "Platewise", Environment: "production"},
		Server:  ServerConfig{Port: 8080},
		Storage: StorageConfig{Driver: "file"},
	}
	assert.Error(t, cfg.Validate())

	cfg.Auth.JWTSecret = "a-real-secret"
	assert.NoError(t, cfg.Validate())
}
