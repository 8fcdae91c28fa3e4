// Package scanner collects per-repository facts: declared dependencies,
// the filtered file tree, and a bounded set of content samples. Facts are
// the sole input of evidence scoring; the scanner itself knows nothing
// about skills.
package scanner

import (
	"context"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/snehagrian/proofmap/internal/github"
	"github.com/snehagrian/proofmap/internal/types"
)

const (
	// maxTreeEntries bounds kept tree entries per repository.
	maxTreeEntries = 400
	// maxContentFiles bounds content fetches per repository.
	maxContentFiles = 12
	// contentBatchSize is the fixed parallel fetch batch size.
	contentBatchSize = 4
	// maxSampleChars is the retention budget per fetched file. Regex
	// evidence clusters near imports and definitions, so the head of a
	// file is enough.
	maxSampleChars = 4000
)

// Source is the slice of the repository adapter the scanner consumes.
type Source interface {
	GetLanguages(ctx context.Context, owner, repo string) map[string]int64
	GetTree(ctx context.Context, owner, repo, ref string) ([]github.TreeEntry, bool)
	GetBlobText(ctx context.Context, owner, repo, sha string) (string, bool)
	GetFileText(ctx context.Context, owner, repo, path string) (string, bool)
}

// Scanner turns listed repositories into ScanFacts.
type Scanner struct {
	source Source
	logger *zap.Logger
}

// New constructs a Scanner.
func New(source Source, logger *zap.Logger) *Scanner {
	return &Scanner{source: source, logger: logger}
}

// Scan collects facts for every repository concurrently. A repository
// whose fetches fail contributes empty facts; only cancellation of ctx
// cuts the whole scan short, and even then the collected partial facts
// are returned.
func (s *Scanner) Scan(ctx context.Context, owner string, repos []github.Repo) *types.ScanFacts {
	facts := make([]types.RepoFacts, len(repos))

	g, gCtx := errgroup.WithContext(ctx)
	for i, repo := range repos {
		g.Go(func() error {
			facts[i] = s.scanRepo(gCtx, owner, repo)
			return nil
		})
	}
	// Per-repository failures are swallowed inside scanRepo
	_ = g.Wait()

	languageBytes := make(map[string]int64)
	var totalBytes int64
	for _, f := range facts {
		for lang, bytes := range f.Languages {
			languageBytes[lang] += bytes
			totalBytes += bytes
		}
	}

	s.logger.Debug("scan complete",
		zap.String("owner", owner),
		zap.Int("repos", len(repos)),
		zap.Int64("language_bytes", totalBytes))

	return &types.ScanFacts{
		Repos:         facts,
		LanguageBytes: languageBytes,
		TotalBytes:    totalBytes,
	}
}

func (s *Scanner) scanRepo(ctx context.Context, owner string, repo github.Repo) types.RepoFacts {
	facts := types.RepoFacts{
		Name:          repo.Name,
		DefaultBranch: repo.DefaultBranch,
		Languages:     map[string]int64{},
		NpmDeps:       map[string]bool{},
		PipDeps:       map[string]bool{},
		Files:         []string{},
		Samples:       []types.FileSample{},
	}

	var npmDeps, pipDeps map[string]bool
	var languages map[string]int64

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if text, ok := s.source.GetFileText(gCtx, owner, repo.Name, "package.json"); ok {
			npmDeps = parseNpmDeps(text)
		}
		return nil
	})
	g.Go(func() error {
		if text, ok := s.source.GetFileText(gCtx, owner, repo.Name, "requirements.txt"); ok {
			pipDeps = parsePipDeps(text)
		}
		return nil
	})
	g.Go(func() error {
		languages = s.source.GetLanguages(gCtx, owner, repo.Name)
		return nil
	})
	_ = g.Wait()

	if npmDeps != nil {
		facts.NpmDeps = npmDeps
	}
	if pipDeps != nil {
		facts.PipDeps = pipDeps
	}
	if languages != nil {
		facts.Languages = languages
	}

	tree, branch, ok := s.fetchTree(ctx, owner, repo)
	if !ok {
		// Partial-failure policy: keep manifest and language data, score
		// this repository without file evidence.
		s.logger.Debug("no readable tree", zap.String("repo", repo.Name))
		return facts
	}
	facts.DefaultBranch = branch

	kept := filterTree(tree)
	facts.Files = lowerPaths(kept)

	codeFiles := selectCodeFiles(kept)
	facts.CodeFileCount = len(codeFiles)

	picks := prioritize(codeFiles, maxContentFiles)
	facts.Samples = s.fetchSamples(ctx, owner, repo.Name, picks)

	return facts
}

// fetchTree tries the default branch, then one conventional fallback.
func (s *Scanner) fetchTree(ctx context.Context, owner string, repo github.Repo) ([]github.TreeEntry, string, bool) {
	tree, ok := s.source.GetTree(ctx, owner, repo.Name, repo.DefaultBranch)
	if ok {
		return tree, repo.DefaultBranch, true
	}

	fallback := fallbackBranch(repo.DefaultBranch)
	if fallback == repo.DefaultBranch {
		return nil, repo.DefaultBranch, false
	}
	tree, ok = s.source.GetTree(ctx, owner, repo.Name, fallback)
	if !ok {
		return nil, repo.DefaultBranch, false
	}
	return tree, fallback, true
}

func fallbackBranch(branch string) string {
	if branch == "master" {
		return "main"
	}
	return "master"
}

// fetchSamples pulls content for the selected files in fixed-size
// parallel batches, truncating each text to the retention budget. A file
// that cannot be fetched is simply absent from the result.
func (s *Scanner) fetchSamples(ctx context.Context, owner, repo string, entries []github.TreeEntry) []types.FileSample {
	slots := make([]types.FileSample, len(entries))

	for start := 0; start < len(entries); start += contentBatchSize {
		end := min(start+contentBatchSize, len(entries))

		g, gCtx := errgroup.WithContext(ctx)
		for i := start; i < end; i++ {
			entry := entries[i]
			idx := i
			g.Go(func() error {
				if text, ok := s.source.GetBlobText(gCtx, owner, repo, entry.SHA); ok {
					slots[idx] = types.FileSample{
						Path:    strings.ToLower(entry.Path),
						Content: truncate(text, maxSampleChars),
					}
				}
				return nil
			})
		}
		_ = g.Wait()
	}

	samples := make([]types.FileSample, 0, len(slots))
	for _, sample := range slots {
		if sample.Path != "" {
			samples = append(samples, sample)
		}
	}
	return samples
}

func lowerPaths(entries []github.TreeEntry) []string {
	paths := make([]string, len(entries))
	for i, e := range entries {
		paths[i] = strings.ToLower(e.Path)
	}
	return paths
}

func truncate(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit])
}
