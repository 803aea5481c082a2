package domain

// LintCache holds range-lint verdicts keyed by commit hash. The verdicts are
// only valid for the configuration whose hash is ConfigHash.
type LintCache struct {
	ConfigHash string                      `json:"config_hash"`
	Reports    map[string]ValidationReport `json:"reports"`
}

// NewLintCache creates an empty cache for configHash.
func NewLintCache(configHash string) *LintCache {
	return &LintCache{ConfigHash: configHash, Reports: make(map[string]ValidationReport)}
}

func (c *LintCache) IsInvalidated(configHash string) bool {
	return c.ConfigHash != configHash
}

// Get returns the cached report of commit hash.
func (c *LintCache) Get(hash string) (ValidationReport, bool) {
	r, ok := c.Reports[hash]
	return r, ok
}

// Put stores the report of commit hash.
func (c *LintCache) Put(hash string, report ValidationReport) {
	if c.Reports == nil {
		c.Reports = make(map[string]ValidationReport)
	}
	c.Reports[hash] = report
}
