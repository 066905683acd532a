// Package config implements domain.ConfigLoader by reading .schemaguard.yaml.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/schemaguard/schemaguard/internal/domain"
	"gopkg.in/yaml.v3"
)

const fileName = ".schemaguard.yaml"

type YAMLLoader struct{}

// New creates a YAMLLoader.
func New() *YAMLLoader { return &YAMLLoader{} }

// Load reads .schemaguard.yaml from projectPath. A missing file is not an
// error; the defaults apply and the service identity stays unset.
func (l *YAMLLoader) Load(projectPath string) (domain.ProjectConfig, error) {
	data, err := os.ReadFile(filepath.Join(projectPath, fileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.DefaultConfig(), nil
		}
		return domain.ProjectConfig{}, err
	}

	var cfg domain.ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return domain.ProjectConfig{}, fmt.Errorf("parsing %s: %w", fileName, err)
	}

	if err := cfg.Validate(); err != nil {
		return domain.ProjectConfig{}, fmt.Errorf("invalid %s: %w", fileName, err)
	}

	return mergeConfig(domain.DefaultConfig(), cfg), nil
}

// mergeConfig overlays explicit values on top of the defaults. Explicit
// (non-empty) values always win.
func mergeConfig(base, override domain.ProjectConfig) domain.ProjectConfig {
	result := base

	if override.Service != "" {
		result.Service = override.Service
	}
	if override.Tag != "" {
		result.Tag = override.Tag
	}
	if override.SchemaPath != "" {
		result.SchemaPath = override.SchemaPath
	}
	if override.RegistryURL != "" {
		result.RegistryURL = override.RegistryURL
	}
	if override.FrontendURL != "" {
		result.FrontendURL = override.FrontendURL
	}

	return result
}
