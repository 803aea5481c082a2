package application

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"github.com/openkraft/commitkraft/internal/domain"
	"github.com/openkraft/commitkraft/internal/domain/parser"
	"github.com/openkraft/commitkraft/internal/domain/rules"
	"github.com/openkraft/commitkraft/internal/logger"
)

// LintService validates commit messages against a rule registry that is
// built once from the project configuration. Lint may be called from many
// goroutines at once.
type LintService struct {
	config      domain.ProjectConfig
	registry    *rules.Registry
	ignores     []*regexp.Regexp
	useDefaults bool
	commits     domain.CommitSource
	cache       domain.CacheStore
	configHash  string
}

// Option configures a LintService.
type Option func(*LintService)

// WithCache makes LintCommits reuse verdicts of commits it has already seen
// under the same configuration.
func WithCache(store domain.CacheStore) Option {
	return func(s *LintService) { s.cache = store }
}

// NewLintService builds the registry from cfg. Rule configuration problems
// are returned as *domain.InvalidRuleConfigError.
func NewLintService(cfg domain.ProjectConfig, commits domain.CommitSource, opts ...Option) (*LintService, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	ruleConfigs, err := cfg.RuleConfigs()
	if err != nil {
		return nil, err
	}
	registry, err := rules.Load(ruleConfigs)
	if err != nil {
		return nil, err
	}

	ignores, err := cfg.IgnorePatterns()
	if err != nil {
		return nil, err
	}

	hash, err := cfg.Hash()
	if err != nil {
		return nil, err
	}

	s := &LintService{
		config:      cfg,
		registry:    registry,
		ignores:     ignores,
		useDefaults: cfg.UsesDefaultIgnores(),
		commits:     commits,
		configHash:  hash,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// LoadConfig reads configFile when set, otherwise the config file in
// projectPath.
func LoadConfig(ctx context.Context, loader domain.ConfigLoader, projectPath, configFile string) (domain.ProjectConfig, error) {
	var (
		cfg domain.ProjectConfig
		err error
	)
	if configFile != "" {
		cfg, err = loader.LoadFile(configFile)
	} else {
		cfg, err = loader.Load(projectPath)
	}
	if err != nil {
		return domain.ProjectConfig{}, fmt.Errorf("loading config: %w", err)
	}
	logger.Debug(ctx, "config loaded", "path", projectPath, "file", configFile, "rules", len(cfg.Rules))
	return cfg, nil
}

// Lint parses raw and evaluates every enabled rule against it. The only
// error is *domain.MalformedMessageError.
func (s *LintService) Lint(ctx context.Context, raw string) (domain.ValidationReport, error) {
	if domain.IsIgnored(raw, s.useDefaults, s.ignores) {
		logger.Debug(ctx, "message ignored")
		return domain.IgnoredReport(), nil
	}

	msg, err := parser.Parse(raw)
	if err != nil {
		return domain.ValidationReport{}, err
	}

	report := domain.BuildReport(rules.Evaluate(msg, s.registry))
	logger.Debug(ctx, "message linted",
		"status", report.Status,
		"errors", report.ErrorCount,
		"warnings", report.WarningCount,
	)
	return report, nil
}

// Parse exposes the parsed view of raw.
func (s *LintService) Parse(raw string) (*domain.ParsedMessage, error) {
	return parser.Parse(raw)
}

// LintCommits validates every commit in the range (from, to] of the
// repository at repoPath. A commit with an unparsable message gets an error
// entry; the remaining commits are still checked.
func (s *LintService) LintCommits(ctx context.Context, repoPath, from, to string) ([]domain.CommitReport, error) {
	if s.commits == nil {
		return nil, errors.New("no commit source configured")
	}

	commits, err := s.commits.Commits(repoPath, from, to)
	if err != nil {
		return nil, fmt.Errorf("reading commits: %w", err)
	}
	logger.Info(ctx, "linting commits", "count", len(commits), "from", from, "to", to)

	cache := s.loadCache(ctx, repoPath)

	reports := make([]domain.CommitReport, 0, len(commits))
	for _, c := range commits {
		cctx := logger.With(ctx, "commit", c.ShortHash())
		if cache != nil {
			if report, ok := cache.Get(c.Hash); ok {
				logger.Debug(cctx, "verdict from cache")
				reports = append(reports, domain.CommitReport{Commit: c, Report: &report})
				continue
			}
		}

		report, err := s.Lint(cctx, c.Message)
		if err != nil {
			logger.Warn(cctx, "commit message unparsable", "error", err)
			reports = append(reports, domain.CommitReport{Commit: c, Error: err.Error()})
			continue
		}
		if cache != nil {
			cache.Put(c.Hash, report)
		}
		reports = append(reports, domain.CommitReport{Commit: c, Report: &report})
	}

	if cache != nil {
		if err := s.cache.Save(repoPath, cache); err != nil {
			logger.Warn(ctx, "saving lint cache failed", "error", err)
		}
	}
	return reports, nil
}

// loadCache returns the usable cache for repoPath, or nil when caching is
// off. A stale or unreadable cache is invalidated and replaced by an empty
// one.
func (s *LintService) loadCache(ctx context.Context, repoPath string) *domain.LintCache {
	if s.cache == nil {
		return nil
	}
	c, err := s.cache.Load(repoPath)
	switch {
	case err != nil:
		logger.Warn(ctx, "reading lint cache failed", "error", err)
	case c == nil:
		return domain.NewLintCache(s.configHash)
	case !c.IsInvalidated(s.configHash):
		return c
	default:
		logger.Debug(ctx, "lint cache is stale", "config_hash", c.ConfigHash)
	}

	if err := s.cache.Invalidate(repoPath); err != nil {
		logger.Warn(ctx, "invalidating lint cache failed", "error", err)
	}
	return domain.NewLintCache(s.configHash)
}

// Rules returns every registered rule config in evaluation order.
func (s *LintService) Rules() []domain.RuleConfig {
	return s.registry.All()
}

// EnabledRules returns the rules that are evaluated.
func (s *LintService) EnabledRules() []domain.RuleConfig {
	return s.registry.AllEnabled()
}

// Presentation returns the display metadata of the loaded config.
func (s *LintService) Presentation() domain.PresentationMetadata {
	return s.config.Presentation()
}

// Config returns the configuration the service was built from.
func (s *LintService) Config() domain.ProjectConfig {
	return s.config
}
