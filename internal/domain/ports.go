package domain

// ConfigLoader loads the project configuration.
type ConfigLoader interface {
	Load(projectPath string) (ProjectConfig, error)
	LoadFile(path string) (ProjectConfig, error)
}

// CommitSource reads commit messages from version control.
type CommitSource interface {
	// Commits returns the commits reachable from to and not from from,
	// newest first. An empty from yields only the commit at to.
	Commits(repoPath, from, to string) ([]Commit, error)
}

// CacheStore persists range-lint verdicts between runs.
type CacheStore interface {
	// Load returns the cache of projectPath, or nil when there is none.
	Load(projectPath string) (*LintCache, error)
	Save(projectPath string, cache *LintCache) error
	Invalidate(projectPath string) error
}

// Commit is one commit read from a repository.
type Commit struct {
	Hash    string `json:"hash"`
	Message string `json:"message"`
}

// ShortHash returns the abbreviated commit hash.
func (c Commit) ShortHash() string {
	if len(c.Hash) > 7 {
		return c.Hash[:7]
	}
	return c.Hash
}
