// Package gitinfo implements domain.GitContextProvider using go-git.
package gitinfo

import (
	"github.com/go-git/go-git/v5"
	"github.com/schemaguard/schemaguard/internal/domain"
)

// Provider resolves commit, branch, committer, and remote metadata for the
// project directory. Every lookup is best effort: a directory that is not a
// repository, or a repository without commits, yields an empty context.
type Provider struct{}

func New() *Provider {
	return &Provider{}
}

func (p *Provider) Context(projectPath string) domain.GitContext {
	repo, err := git.PlainOpen(projectPath)
	if err != nil {
		return domain.GitContext{}
	}

	head, err := repo.Head()
	if err != nil {
		return domain.GitContext{}
	}

	ctx := domain.GitContext{Commit: head.Hash().String()}
	if head.Name().IsBranch() {
		ctx.Branch = head.Name().Short()
	}

	if commit, err := repo.CommitObject(head.Hash()); err == nil {
		ctx.Committer = commit.Committer.Name
	}

	if remote, err := repo.Remote(git.DefaultRemoteName); err == nil {
		if urls := remote.Config().URLs; len(urls) > 0 {
			ctx.RemoteURL = urls[0]
		}
	}

	return ctx
}
