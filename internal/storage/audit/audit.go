// Package audit keeps the data directory under git so every mutation leaves
// a reviewable trail. Uses go-git, no git binary dependency.
package audit

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

const (
	committerName  = "chembot"
	committerEmail = "chembot@localhost"
)

// Log is a git repository over the data directory. Safe for concurrent use.
type Log struct {
	dir  string
	repo *gogit.Repository
	mu   sync.Mutex
}

// Open opens the repository at dir, initializing it on first use.
func Open(dir string) (*Log, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil { //nolint:gosec // G301: 0o755 is intentional for data directories
		return nil, fmt.Errorf("failed to create audit directory: %w", err)
	}
	repo, err := gogit.PlainOpen(dir)
	if err != nil {
		// Not a repo yet — initialize.
		repo, err = gogit.PlainInit(dir, false)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize audit repo: %w", err)
		}
		cfg, err := repo.Config()
		if err != nil {
			return nil, fmt.Errorf("failed to read git config: %w", err)
		}
		cfg.User.Name = committerName
		cfg.User.Email = committerEmail
		if err := repo.SetConfig(cfg); err != nil {
			return nil, fmt.Errorf("failed to write git config: %w", err)
		}
	}
	return &Log{dir: dir, repo: repo}, nil
}

// Record stages everything under the data directory and commits it with the
// given message and actor. A clean worktree is a no-op.
func (l *Log) Record(ctx context.Context, actor, msg string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	w, err := l.repo.Worktree()
	if err != nil {
		return fmt.Errorf("failed to get worktree: %w", err)
	}
	if err := w.AddWithOptions(&gogit.AddOptions{All: true}); err != nil {
		return fmt.Errorf("failed to stage changes: %w", err)
	}
	status, err := w.Status()
	if err != nil {
		return fmt.Errorf("failed to get worktree status: %w", err)
	}
	if status.IsClean() {
		return nil
	}

	name := actor
	if name == "" {
		name = committerName
	}
	now := time.Now()
	_, err = w.Commit(msg, &gogit.CommitOptions{
		Author: &object.Signature{
			Name:  name,
			Email: committerEmail,
			When:  now,
		},
		Committer: &object.Signature{
			Name:  committerName,
			Email: committerEmail,
			When:  now,
		},
	})
	if err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}
	return nil
}

// Count returns the total number of commits.
func (l *Log) Count() (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	iter, err := l.repo.Log(&gogit.LogOptions{})
	if err != nil {
		if errors.Is(err, plumbing.ErrReferenceNotFound) {
			return 0, nil // no commits yet
		}
		return 0, fmt.Errorf("failed to read log: %w", err)
	}
	defer iter.Close()
	n := 0
	err = iter.ForEach(func(*object.Commit) error {
		n++
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to iterate log: %w", err)
	}
	return n, nil
}
