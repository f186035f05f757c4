package gitrepo

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-git/go-git/v5"
	gitconfig "github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"

	"TreasuryCalendar/internal/config"
	"TreasuryCalendar/internal/domain"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// setupRepos creates a work repository wired to a local bare remote.
// go-git initializes repositories on master, so the publisher under test
// is configured for that branch.
func setupRepos(t *testing.T) (workDir string, repo *git.Repository, remoteDir string) {
	t.Helper()

	remoteDir = t.TempDir()
	if _, err := git.PlainInit(remoteDir, true); err != nil {
		t.Fatalf("init bare remote: %v", err)
	}

	workDir = t.TempDir()
	repo, err := git.PlainInit(workDir, false)
	if err != nil {
		t.Fatalf("init work repo: %v", err)
	}
	_, err = repo.CreateRemote(&gitconfig.RemoteConfig{
		Name: "origin",
		URLs: []string{remoteDir},
	})
	if err != nil {
		t.Fatalf("create remote: %v", err)
	}
	return workDir, repo, remoteDir
}

func newTestPublisher() *Publisher {
	return NewPublisher(config.PublishConfig{
		CommitMessage: "chore: update Treasury auction calendar",
		Remote:        "origin",
		Branch:        "master",
		AuthorName:    "treasurycal",
		AuthorEmail:   "treasurycal@localhost",
	}, testLogger())
}

func writeCalendarFile(t *testing.T, workDir, contents string) string {
	t.Helper()

	path := filepath.Join(workDir, "output", "treasury-auctions.ics")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("create output dir: %v", err)
	}
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write calendar file: %v", err)
	}
	return path
}

func TestPublishCommitsAndPushes(t *testing.T) {
	t.Parallel()

	workDir, repo, remoteDir := setupRepos(t)
	path := writeCalendarFile(t, workDir, "BEGIN:VCALENDAR\r\nEND:VCALENDAR\r\n")

	if err := newTestPublisher().Publish(context.Background(), path); err != nil {
		t.Fatalf("Publish returned error: %v", err)
	}

	head, err := repo.Head()
	if err != nil {
		t.Fatalf("head after publish: %v", err)
	}
	commit, err := repo.CommitObject(head.Hash())
	if err != nil {
		t.Fatalf("read head commit: %v", err)
	}
	if commit.Message != "chore: update Treasury auction calendar" {
		t.Fatalf("unexpected commit message: %q", commit.Message)
	}

	remote, err := git.PlainOpen(remoteDir)
	if err != nil {
		t.Fatalf("open remote: %v", err)
	}
	ref, err := remote.Reference(plumbing.NewBranchReferenceName("master"), true)
	if err != nil {
		t.Fatalf("remote branch missing after push: %v", err)
	}
	if ref.Hash() != head.Hash() {
		t.Fatalf("remote ref %s does not match local head %s", ref.Hash(), head.Hash())
	}
}

func TestPublishNoChangesIsNoOp(t *testing.T) {
	t.Parallel()

	workDir, repo, _ := setupRepos(t)
	path := writeCalendarFile(t, workDir, "BEGIN:VCALENDAR\r\nEND:VCALENDAR\r\n")

	publisher := newTestPublisher()
	if err := publisher.Publish(context.Background(), path); err != nil {
		t.Fatalf("first Publish returned error: %v", err)
	}
	firstHead, err := repo.Head()
	if err != nil {
		t.Fatalf("head after first publish: %v", err)
	}

	// Same content again: nothing to commit, still a successful run.
	if err := publisher.Publish(context.Background(), path); err != nil {
		t.Fatalf("second Publish returned error: %v", err)
	}
	secondHead, err := repo.Head()
	if err != nil {
		t.Fatalf("head after second publish: %v", err)
	}
	if firstHead.Hash() != secondHead.Hash() {
		t.Fatal("unchanged file should not produce a new commit")
	}
}

func TestPublishChangedContentCommitsAgain(t *testing.T) {
	t.Parallel()

	workDir, repo, _ := setupRepos(t)
	path := writeCalendarFile(t, workDir, "BEGIN:VCALENDAR\r\nEND:VCALENDAR\r\n")

	publisher := newTestPublisher()
	if err := publisher.Publish(context.Background(), path); err != nil {
		t.Fatalf("first Publish returned error: %v", err)
	}
	firstHead, _ := repo.Head()

	writeCalendarFile(t, workDir, "BEGIN:VCALENDAR\r\nPRODID:x\r\nEND:VCALENDAR\r\n")
	if err := publisher.Publish(context.Background(), path); err != nil {
		t.Fatalf("second Publish returned error: %v", err)
	}
	secondHead, _ := repo.Head()

	if firstHead.Hash() == secondHead.Hash() {
		t.Fatal("changed file should produce a new commit")
	}
}

func TestPublishOutsideRepositoryFails(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "treasury-auctions.ics")
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	err := newTestPublisher().Publish(context.Background(), path)
	var publishErr *domain.PublishError
	if !errors.As(err, &publishErr) {
		t.Fatalf("expected PublishError, got %v", err)
	}
}
