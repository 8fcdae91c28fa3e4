// Package types provides type definitions for structured data used throughout the proofmap system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// RepoFacts is the normalized per-repository summary produced by the
// scanner and consumed by the evidence engine and planner. Created fresh
// per scan request and discarded with the response.
type RepoFacts struct {
	Name          string           `json:"name"`
	DefaultBranch string           `json:"default_branch"`
	Languages     map[string]int64 `json:"languages"`
	NpmDeps       map[string]bool  `json:"npm_deps"`
	PipDeps       map[string]bool  `json:"pip_deps"`
	Files         []string         `json:"files"`
	Samples       []FileSample     `json:"samples"`
	CodeFileCount int              `json:"code_file_count"`
}

// FileSample is one fetched file text, truncated to the retention budget.
type FileSample struct {
	Path    string `json:"path"`
	Content string `json:"content"`
}

// ScanFacts bundles all repository facts with the cross-repository
// language byte totals used for language-percentage scoring.
type ScanFacts struct {
	Repos         []RepoFacts      `json:"repos"`
	LanguageBytes map[string]int64 `json:"language_bytes"`
	TotalBytes    int64            `json:"total_bytes"`
}

// HasDep reports whether name is declared in either dependency manifest.
func (f *RepoFacts) HasDep(name string) bool {
	return f.NpmDeps[name] || f.PipDeps[name]
}
