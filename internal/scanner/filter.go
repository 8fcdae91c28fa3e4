package scanner

import (
	"path"
	"sort"
	"strings"

	"github.com/snehagrian/proofmap/internal/github"
)

// ignoreDirs are conventional build/dependency/VCS directories whose
// contents never carry original evidence.
var ignoreDirs = map[string]bool{
	".git":         true,
	"node_modules": true,
	"vendor":       true,
	"__pycache__":  true,
	".idea":        true,
	".vscode":      true,
	"dist":         true,
	"build":        true,
	"target":       true,
	".next":        true,
	"coverage":     true,
}

// docExtensions are prose files; scoring works on code and config only.
var docExtensions = map[string]bool{
	".md":       true,
	".markdown": true,
	".rst":      true,
	".txt":      true,
	".adoc":     true,
}

// lockFiles are generated artifacts dropped by basename.
var lockFiles = map[string]bool{
	"package-lock.json": true,
	"yarn.lock":         true,
	"pnpm-lock.yaml":    true,
	"poetry.lock":       true,
	"pipfile.lock":      true,
	"go.sum":            true,
	"composer.lock":     true,
	"gemfile.lock":      true,
	"cargo.lock":        true,
}

// artifactSuffixes are minified/bundled outputs dropped by suffix.
var artifactSuffixes = []string{".min.js", ".min.css", ".bundle.js", ".map"}

// allowedExtensions is the source/config allow-list for kept tree entries.
var allowedExtensions = map[string]bool{
	".js": true, ".jsx": true, ".ts": true, ".tsx": true, ".mjs": true, ".cjs": true,
	".vue": true, ".svelte": true,
	".py": true, ".go": true, ".rb": true, ".php": true,
	".java": true, ".kt": true, ".swift": true, ".rs": true, ".scala": true,
	".c": true, ".cpp": true, ".h": true, ".hpp": true, ".cs": true,
	".sql": true, ".graphql": true, ".gql": true, ".prisma": true,
	".html": true, ".css": true, ".scss": true, ".sass": true, ".less": true,
	".json": true, ".yml": true, ".yaml": true, ".toml": true, ".xml": true,
	".gradle": true, ".properties": true,
	".sh": true, ".tf": true,
}

// specialFiles are extensionless files kept by basename.
var specialFiles = map[string]bool{
	"dockerfile":  true,
	"makefile":    true,
	"jenkinsfile": true,
	"procfile":    true,
	"gemfile":     true,
	"rakefile":    true,
}

// codeExtensions is the narrower set eligible for content fetch; config
// formats stay in the file list for path-indicator matching but their
// content is rarely worth a fetch slot.
var codeExtensions = map[string]bool{
	".js": true, ".jsx": true, ".ts": true, ".tsx": true, ".mjs": true, ".cjs": true,
	".vue": true, ".svelte": true,
	".py": true, ".go": true, ".rb": true, ".php": true,
	".java": true, ".kt": true, ".swift": true, ".rs": true, ".scala": true,
	".c": true, ".cpp": true, ".cs": true,
	".sql": true, ".graphql": true, ".gql": true, ".prisma": true,
}

// specialCodeFiles are extensionless or config files that do earn a fetch
// slot because their content is high-signal.
var specialCodeFiles = map[string]bool{
	"dockerfile":          true,
	"docker-compose.yml":  true,
	"docker-compose.yaml": true,
	"jenkinsfile":         true,
}

// prioritySubstrings mark conventional high-signal paths (entry points,
// routing, config) that are fetched ahead of everything else.
var prioritySubstrings = []string{
	"index.", "main.", "app.",
	"server", "api", "route", "controller", "service", "handler",
	"model", "schema", "config",
	"docker", "webpack", "vite",
}

// filterTree keeps the evidence-bearing blobs of a recursive tree, capped
// at maxTreeEntries.
func filterTree(entries []github.TreeEntry) []github.TreeEntry {
	kept := make([]github.TreeEntry, 0, len(entries))
	for _, e := range entries {
		if len(kept) >= maxTreeEntries {
			break
		}
		if e.Type != "blob" {
			continue
		}
		lower := strings.ToLower(e.Path)
		if underIgnoredDir(lower) {
			continue
		}
		if docExtensions[path.Ext(lower)] {
			continue
		}
		if isArtifact(lower) {
			continue
		}
		if !isAllowedFile(lower) {
			continue
		}
		kept = append(kept, e)
	}
	return kept
}

// selectCodeFiles returns the kept entries eligible for content fetch.
func selectCodeFiles(kept []github.TreeEntry) []github.TreeEntry {
	code := make([]github.TreeEntry, 0, len(kept))
	for _, e := range kept {
		lower := strings.ToLower(e.Path)
		if codeExtensions[path.Ext(lower)] || specialCodeFiles[path.Base(lower)] {
			code = append(code, e)
		}
	}
	return code
}

// prioritize stably moves high-signal paths to the front and caps the
// result at limit. Heuristic ordering only; it maximizes evidence density
// within the fetch budget.
func prioritize(entries []github.TreeEntry, limit int) []github.TreeEntry {
	sorted := make([]github.TreeEntry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return isPriorityPath(sorted[i].Path) && !isPriorityPath(sorted[j].Path)
	})
	if len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return sorted
}

func isPriorityPath(p string) bool {
	lower := strings.ToLower(p)
	for _, sub := range prioritySubstrings {
		if strings.Contains(lower, sub) {
			return true
		}
	}
	return false
}

func underIgnoredDir(lower string) bool {
	segments := strings.Split(lower, "/")
	for _, seg := range segments[:len(segments)-1] {
		if ignoreDirs[seg] {
			return true
		}
	}
	return false
}

func isArtifact(lower string) bool {
	if lockFiles[path.Base(lower)] {
		return true
	}
	for _, suffix := range artifactSuffixes {
		if strings.HasSuffix(lower, suffix) {
			return true
		}
	}
	return false
}

func isAllowedFile(lower string) bool {
	return allowedExtensions[path.Ext(lower)] || specialFiles[path.Base(lower)]
}
