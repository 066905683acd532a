package domain

import (
	"fmt"
	"net/url"
)

// ProjectConfig is the per-project configuration read from
// .schemaguard.yaml. Service identifies who the check is attributed to;
// Tag names the published schema variant the proposed one is compared
// against.
type ProjectConfig struct {
	Service     string `yaml:"service"`
	Tag         string `yaml:"tag"`
	SchemaPath  string `yaml:"schema"`
	RegistryURL string `yaml:"registry"`
	FrontendURL string `yaml:"frontend"`
}

// DefaultConfig returns the configuration used when no .schemaguard.yaml
// exists. The service identity has no default; a check without one fails
// with ErrMissingServiceID.
func DefaultConfig() ProjectConfig {
	return ProjectConfig{
		Tag:         "current",
		SchemaPath:  "schema.graphql",
		RegistryURL: "https://registry.schemaguard.dev",
		FrontendURL: "https://app.schemaguard.dev",
	}
}

// Validate catches malformed values in the user's raw config before any
// work starts.
func (c ProjectConfig) Validate() error {
	for field, raw := range map[string]string{"registry": c.RegistryURL, "frontend": c.FrontendURL} {
		if raw == "" {
			continue
		}
		u, err := url.Parse(raw)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("%s must be an absolute URL, got %q", field, raw)
		}
	}
	return nil
}
