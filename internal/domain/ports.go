package domain

import "context"

// SchemaResolver resolves the local schema definition for a project.
type SchemaResolver interface {
	Resolve(path string) (SchemaDocument, error)
}

// GitContextProvider resolves version-control metadata for a project. It is
// best effort: an unavailable or empty repository yields the zero
// GitContext and never fails the run.
type GitContextProvider interface {
	Context(projectPath string) GitContext
}

// CheckRequest is everything the registry needs to diff a proposed schema
// against recorded usage. Historic is nil when the user supplied no
// window or threshold flags and the registry should apply its defaults.
type CheckRequest struct {
	ServiceID   string
	Tag         string
	Schema      SchemaDocument
	Git         GitContext
	FrontendURL string
	Historic    *HistoricParameters
}

// RegistryClient performs the check call against the schema registry. This
// is the single network dependency of a run; failures propagate to the
// caller unmodified and are never retried here.
type RegistryClient interface {
	Check(ctx context.Context, req CheckRequest) (*CheckResult, error)
}

// ConfigLoader reads the project configuration for a project directory.
type ConfigLoader interface {
	Load(projectPath string) (ProjectConfig, error)
}
