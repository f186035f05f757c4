package gitrepo

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/go-git/go-git/v5"
	gitconfig "github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing/object"

	"TreasuryCalendar/internal/config"
	"TreasuryCalendar/internal/domain"
	"TreasuryCalendar/internal/ports"
)

// Publisher implements ports.Publisher on top of the git repository
// enclosing the output file. It mirrors the add / diff --cached / commit /
// push sequence: when the staged file matches the last committed content
// the run is a successful no-op.
type Publisher struct {
	message     string
	remote      string
	branch      string
	authorName  string
	authorEmail string
	logger      *slog.Logger
}

var _ ports.Publisher = (*Publisher)(nil)

// NewPublisher builds a publisher from configuration.
func NewPublisher(cfg config.PublishConfig, logger *slog.Logger) *Publisher {
	return &Publisher{
		message:     cfg.CommitMessage,
		remote:      cfg.Remote,
		branch:      cfg.Branch,
		authorName:  cfg.AuthorName,
		authorEmail: cfg.AuthorEmail,
		logger:      logger,
	}
}

// Publish stages path, commits it with the configured message, and pushes
// the configured branch. Any git failure surfaces as a domain.PublishError.
func (p *Publisher) Publish(ctx context.Context, path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return &domain.PublishError{Err: fmt.Errorf("resolve %s: %w", path, err)}
	}

	repo, err := git.PlainOpenWithOptions(filepath.Dir(abs), &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return &domain.PublishError{Err: fmt.Errorf("open repository for %s: %w", abs, err)}
	}

	wt, err := repo.Worktree()
	if err != nil {
		return &domain.PublishError{Err: fmt.Errorf("worktree: %w", err)}
	}

	rel, err := filepath.Rel(wt.Filesystem.Root(), abs)
	if err != nil {
		return &domain.PublishError{Err: fmt.Errorf("relativize %s: %w", abs, err)}
	}
	rel = filepath.ToSlash(rel)

	if _, err := wt.Add(rel); err != nil {
		return &domain.PublishError{Err: fmt.Errorf("stage %s: %w", rel, err)}
	}

	status, err := wt.Status()
	if err != nil {
		return &domain.PublishError{Err: fmt.Errorf("status: %w", err)}
	}
	// A tracked file with no staged change does not appear in the status
	// map at all.
	if st, ok := status[rel]; !ok || st.Staging == git.Unmodified {
		p.logger.Info("no changes to commit")
		return nil
	}

	if _, err := wt.Commit(p.message, &git.CommitOptions{
		Author: &object.Signature{
			Name:  p.authorName,
			Email: p.authorEmail,
			When:  time.Now(),
		},
	}); err != nil {
		return &domain.PublishError{Err: fmt.Errorf("commit %s: %w", rel, err)}
	}
	p.logger.Info("changes committed", "file", rel)

	refSpec := gitconfig.RefSpec(fmt.Sprintf("refs/heads/%s:refs/heads/%s", p.branch, p.branch))
	err = repo.PushContext(ctx, &git.PushOptions{
		RemoteName: p.remote,
		RefSpecs:   []gitconfig.RefSpec{refSpec},
	})
	if errors.Is(err, git.NoErrAlreadyUpToDate) {
		p.logger.Info("remote already up to date", "remote", p.remote)
		return nil
	}
	if err != nil {
		return &domain.PublishError{Err: fmt.Errorf("push %s to %s: %w", p.branch, p.remote, err)}
	}

	p.logger.Info("changes pushed", "remote", p.remote, "branch", p.branch)
	return nil
}
