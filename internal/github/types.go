package github

// Repo is one repository from the user listing.
type Repo struct {
	Name          string `json:"name"`
	FullName      string `json:"full_name"`
	Fork          bool   `json:"fork"`
	DefaultBranch string `json:"default_branch"`
}

// TreeEntry is one entry of a recursive git tree. Type is "blob" for
// files and "tree" for directories.
type TreeEntry struct {
	Path string `json:"path"`
	Type string `json:"type"`
	SHA  string `json:"sha"`
	Size int64  `json:"size"`
}

// RateLimit is the core rate-limit window reported by the provider.
// Reset is a Unix timestamp.
type RateLimit struct {
	Limit     int   `json:"limit"`
	Remaining int   `json:"remaining"`
	Reset     int64 `json:"reset"`
}

type treeResponse struct {
	SHA       string      `json:"sha"`
	Tree      []TreeEntry `json:"tree"`
	Truncated bool        `json:"truncated"`
}

// blobResponse covers both the git blob and the contents API payloads;
// each carries base64 content plus its encoding.
type blobResponse struct {
	Content  string `json:"content"`
	Encoding string `json:"encoding"`
}

type rateLimitResponse struct {
	Resources struct {
		Core RateLimit `json:"core"`
	} `json:"resources"`
}
