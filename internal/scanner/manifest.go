package scanner

import (
	"encoding/json"
	"strings"
)

// parseNpmDeps extracts dependency names from a package.json payload.
// Both dependencies and devDependencies count as evidence (test and build
// tooling proves usage too). Malformed JSON yields an empty set.
func parseNpmDeps(content string) map[string]bool {
	var pkg struct {
		Dependencies    map[string]string `json:"dependencies"`
		DevDependencies map[string]string `json:"devDependencies"`
	}

	deps := make(map[string]bool)
	if err := json.Unmarshal([]byte(content), &pkg); err != nil {
		return deps
	}
	for name := range pkg.Dependencies {
		deps[strings.ToLower(name)] = true
	}
	for name := range pkg.DevDependencies {
		deps[strings.ToLower(name)] = true
	}
	return deps
}

// pipSeparators cut a requirements line down to the bare package name:
// version specifiers, extras, environment markers, inline comments.
var pipSeparators = []string{"==", ">=", "<=", "~=", "!=", "===", ">", "<", "[", ";", "#", " ", "\t"}

// parsePipDeps extracts package names from a requirements.txt payload.
// Option lines (-r, --index-url) and comments are skipped; an unparseable
// line is skipped rather than failing the set.
func parsePipDeps(content string) map[string]bool {
	deps := make(map[string]bool)
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "-") {
			continue
		}

		name := line
		for _, sep := range pipSeparators {
			if idx := strings.Index(name, sep); idx >= 0 {
				name = name[:idx]
			}
		}
		name = strings.TrimSpace(name)
		if name != "" {
			deps[strings.ToLower(name)] = true
		}
	}
	return deps
}
