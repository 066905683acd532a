package application

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/schemaguard/schemaguard/internal/domain"
)

// CheckService orchestrates the check pipeline:
// require identity -> resolve schema + git context -> validate historic
// parameters -> delegate to the registry -> classify.
type CheckService struct {
	schemas  domain.SchemaResolver
	git      domain.GitContextProvider
	registry domain.RegistryClient
}

func NewCheckService(
	schemas domain.SchemaResolver,
	git domain.GitContextProvider,
	registry domain.RegistryClient,
) *CheckService {
	return &CheckService{
		schemas:  schemas,
		git:      git,
		registry: registry,
	}
}

// CheckInput is one invocation's worth of caller context: where the project
// lives, its resolved configuration, and the raw historic-parameter flags.
type CheckInput struct {
	ProjectPath string
	Config      domain.ProjectConfig
	Raw         domain.RawHistoricFlags
}

// Run performs a single check. It returns the registry's result together
// with its severity classification; deciding what that means for the exit
// status is the caller's job. All failures are terminal: nothing is retried
// and no partial result is returned.
func (s *CheckService) Run(ctx context.Context, in CheckInput) (*domain.CheckResult, domain.Classification, error) {
	var none domain.Classification

	if in.Config.Service == "" {
		return nil, none, domain.ErrMissingServiceID
	}

	// Schema resolution and git metadata have no data dependency on each
	// other; resolve the git context while the schema file is read.
	gitCh := make(chan domain.GitContext, 1)
	go func() {
		gitCh <- s.git.Context(in.ProjectPath)
	}()

	doc, err := s.schemas.Resolve(filepath.Join(in.ProjectPath, in.Config.SchemaPath))
	gitCtx := <-gitCh
	if err != nil {
		return nil, none, fmt.Errorf("resolving schema: %w", err)
	}

	params, err := domain.ValidateHistoricParams(in.Raw)
	if err != nil {
		return nil, none, fmt.Errorf("validating historic parameters: %w", err)
	}

	result, err := s.registry.Check(ctx, domain.CheckRequest{
		ServiceID:   in.Config.Service,
		Tag:         in.Config.Tag,
		Schema:      doc,
		Git:         gitCtx,
		FrontendURL: in.Config.FrontendURL,
		Historic:    params,
	})
	if err != nil {
		return nil, none, err
	}

	return result, domain.Classify(result.Changes), nil
}
