package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/schemaguard/schemaguard/internal/adapters/outbound/config"
	"github.com/schemaguard/schemaguard/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".schemaguard.yaml"), []byte(content), 0644))
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := config.New().Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultConfig(), cfg)
}

func TestLoad_ExplicitValuesWin(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
service: orders
tag: production
schema: api/schema.graphql
`)

	cfg, err := config.New().Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "orders", cfg.Service)
	assert.Equal(t, "production", cfg.Tag)
	assert.Equal(t, "api/schema.graphql", cfg.SchemaPath)
	// Unset fields fall back to defaults.
	assert.Equal(t, domain.DefaultConfig().RegistryURL, cfg.RegistryURL)
	assert.Equal(t, domain.DefaultConfig().FrontendURL, cfg.FrontendURL)
}

func TestLoad_CustomRegistry(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
service: orders
registry: https://registry.internal.example.com
`)

	cfg, err := config.New().Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "https://registry.internal.example.com", cfg.RegistryURL)
}

func TestLoad_MalformedYAML(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "service: [unclosed")

	_, err := config.New().Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), ".schemaguard.yaml")
}

func TestLoad_InvalidURLRejected(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "registry: not-a-url")

	_, err := config.New().Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid .schemaguard.yaml")
}
