package server

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/snehagrian/proofmap/internal/catalog"
	"github.com/snehagrian/proofmap/internal/evidence"
	"github.com/snehagrian/proofmap/internal/github"
	"github.com/snehagrian/proofmap/internal/ingestion"
	"github.com/snehagrian/proofmap/internal/remediation"
	"github.com/snehagrian/proofmap/internal/scanner"
	"github.com/snehagrian/proofmap/internal/types"
)

// RepoProvider is the GitHub surface a scan needs.
type RepoProvider interface {
	scanner.Source
	ListUserRepos(ctx context.Context, user string) ([]github.Repo, error)
	CheckRateLimit(ctx context.Context) (github.RateLimit, error)
}

// ScanService orchestrates one scan: resume ingestion, repository
// scanning, evidence scoring, and remediation planning.
type ScanService struct {
	provider RepoProvider
	scanner  *scanner.Scanner
	logger   *zap.Logger
	timeout  time.Duration
}

// NewScanService constructs a ScanService bound to one provider.
func NewScanService(provider RepoProvider, logger *zap.Logger, timeout time.Duration) *ScanService {
	return &ScanService{
		provider: provider,
		scanner:  scanner.New(provider, logger),
		logger:   logger,
		timeout:  timeout,
	}
}

// Scan validates the request and produces the full scan result. When
// neither resume matching nor skill selection yields any skill, the
// empty result is returned without touching the provider at all.
func (s *ScanService) Scan(ctx context.Context, req *types.ScanRequest) (*types.ScanResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	resumeText := ingestion.ExtractResumeText(*req.ResumeText)
	claimed := catalog.Match(resumeText)
	selected := normalizeSelected(req.SelectedSkills)

	if len(claimed) == 0 && len(selected) == 0 {
		s.logger.Info("nothing to scan",
			zap.String("user", req.GithubUsername))
		return evidence.Aggregate(req.GithubUsername, 0, nil), nil
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	// Quota preflight runs before any repository fetch so an exhausted
	// quota rejects the request instead of half-scanning.
	if _, err := s.provider.CheckRateLimit(ctx); err != nil {
		return nil, err
	}

	repos, err := s.provider.ListUserRepos(ctx, req.GithubUsername)
	if err != nil {
		return nil, err
	}

	facts := s.scanner.Scan(ctx, req.GithubUsername, repos)

	breakdown := evidence.Evaluate(claimed, facts)
	result := evidence.Aggregate(req.GithubUsername, len(repos), breakdown)

	if len(selected) > 0 {
		result.Remediation = make(map[string]types.RemediationPlan, len(selected))
		for _, skill := range selected {
			result.Remediation[skill] = remediation.Plan(skill, facts.Repos)
		}
	}

	s.logger.Info("scan complete",
		zap.String("user", req.GithubUsername),
		zap.Int("repos", result.ReposAnalyzed),
		zap.Int("claimed", len(result.ClaimedSkills)),
		zap.Int("overall", result.OverallScore))

	return result, nil
}

// normalizeSelected resolves selected skill names against the catalog
// and deduplicates them. Names the catalog does not know pass through
// unchanged so the planner can still offer its generic templates.
func normalizeSelected(selected []string) []string {
	normalized := make([]string, 0, len(selected))
	seen := make(map[string]bool, len(selected))
	for _, raw := range selected {
		name := raw
		if canonical, ok := catalog.Lookup(raw); ok {
			name = canonical
		}
		if !seen[name] {
			seen[name] = true
			normalized = append(normalized, name)
		}
	}
	return normalized
}
