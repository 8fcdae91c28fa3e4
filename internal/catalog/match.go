package catalog

import "strings"

// Match returns the catalog skills claimed by the resume text: those with
// at least one term occurring as a case-insensitive substring. Plain
// substring matching, no tokenization or word boundaries; "Java" inside
// "JavaScript" counts, which the scoring thresholds are tuned for. The
// result follows catalog order and contains each skill at most once.
func Match(resumeText string) []string {
	text := strings.ToLower(resumeText)
	if strings.TrimSpace(text) == "" {
		return []string{}
	}

	var claimed []string
	for _, s := range skills {
		for _, term := range s.Terms {
			if strings.Contains(text, term) {
				claimed = append(claimed, s.Name)
				break
			}
		}
	}
	if claimed == nil {
		return []string{}
	}
	return claimed
}

// Lookup resolves a user-supplied skill string to its canonical catalog
// name. Names and terms compare case-insensitively and exactly (no
// substring looseness here; "k8s" resolves, "k8" does not).
func Lookup(name string) (string, bool) {
	needle := strings.ToLower(strings.TrimSpace(name))
	if needle == "" {
		return "", false
	}
	for _, s := range skills {
		if strings.ToLower(s.Name) == needle {
			return s.Name, true
		}
		for _, term := range s.Terms {
			if term == needle {
				return s.Name, true
			}
		}
	}
	return "", false
}
