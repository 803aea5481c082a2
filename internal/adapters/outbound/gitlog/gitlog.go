package gitlog

import (
	"errors"
	"fmt"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/plumbing/storer"

	"github.com/openkraft/commitkraft/internal/domain"
)

// Reader implements domain.CommitSource using go-git.
type Reader struct{}

func New() *Reader {
	return &Reader{}
}

// IsGitRepo reports whether path is inside a git work tree.
func (r *Reader) IsGitRepo(path string) bool {
	_, err := open(path)
	return err == nil
}

// Commits returns the commits reachable from to but not from from, newest
// first. to defaults to HEAD; an empty from returns the commit at to only.
func (r *Reader) Commits(repoPath, from, to string) ([]domain.Commit, error) {
	repo, err := open(repoPath)
	if err != nil {
		return nil, fmt.Errorf("opening git repo: %w", err)
	}

	if to == "" {
		to = "HEAD"
	}
	toHash, err := repo.ResolveRevision(plumbing.Revision(to))
	if err != nil {
		return nil, fmt.Errorf("resolving %q: %w", to, err)
	}

	if from == "" {
		c, err := repo.CommitObject(*toHash)
		if err != nil {
			return nil, fmt.Errorf("reading commit %s: %w", toHash, err)
		}
		return []domain.Commit{toDomain(c)}, nil
	}

	fromHash, err := repo.ResolveRevision(plumbing.Revision(from))
	if err != nil {
		return nil, fmt.Errorf("resolving %q: %w", from, err)
	}
	excluded, err := ancestors(repo, *fromHash)
	if err != nil {
		return nil, err
	}

	iter, err := repo.Log(&git.LogOptions{From: *toHash, Order: git.LogOrderCommitterTime})
	if err != nil {
		return nil, fmt.Errorf("reading log: %w", err)
	}
	defer iter.Close()

	var commits []domain.Commit
	err = iter.ForEach(func(c *object.Commit) error {
		if excluded[c.Hash] {
			return nil
		}
		commits = append(commits, toDomain(c))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking log: %w", err)
	}
	return commits, nil
}

// ancestors returns hash and every commit reachable from it.
func ancestors(repo *git.Repository, hash plumbing.Hash) (map[plumbing.Hash]bool, error) {
	start, err := repo.CommitObject(hash)
	if err != nil {
		return nil, fmt.Errorf("reading commit %s: %w", hash, err)
	}

	seen := make(map[plumbing.Hash]bool)
	iter := object.NewCommitPreorderIter(start, nil, nil)
	defer iter.Close()

	err = iter.ForEach(func(c *object.Commit) error {
		seen[c.Hash] = true
		return nil
	})
	if err != nil && !errors.Is(err, storer.ErrStop) {
		return nil, fmt.Errorf("walking ancestors of %s: %w", hash, err)
	}
	return seen, nil
}

func open(path string) (*git.Repository, error) {
	return git.PlainOpenWithOptions(path, &git.PlainOpenOptions{DetectDotGit: true})
}

func toDomain(c *object.Commit) domain.Commit {
	return domain.Commit{Hash: c.Hash.String(), Message: c.Message}
}
