package github

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"
)

const (
	defaultAPIURL = "https://api.github.com"
	userAgent     = "proofmap-scanner"

	// Repositories are listed most recently updated first, one page.
	perPage = 100

	// rateFloor is the remaining-quota safety floor; a scan that starts
	// below it would fail midway, so it is refused up front.
	rateFloor = 50

	// Blob texts are cached by SHA. Content-addressed, so a hit can never
	// go stale.
	blobCacheSize = 2048
)

// Client is a typed GitHub REST client. The bearer token is optional;
// without it the provider's unauthenticated quota applies.
type Client struct {
	token     string
	logger    *zap.Logger
	blobCache *lru.Cache[string, string]

	HTTPClient *http.Client
	UserAgent  string
	APIURL     string
}

// New constructs a Client with a 10 second per-call timeout.
func New(logger *zap.Logger, token string) (*Client, error) {
	cache, err := lru.New[string, string](blobCacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create blob cache: %w", err)
	}

	return &Client{
		token:     token,
		logger:    logger,
		blobCache: cache,
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		UserAgent: userAgent,
		APIURL:    defaultAPIURL,
	}, nil
}

// ListUserRepos returns the user's public repositories with forks
// excluded, most recently updated first. This is the only adapter call
// whose failure is fatal to a scan.
func (c *Client) ListUserRepos(ctx context.Context, user string) ([]Repo, error) {
	q := url.Values{}
	q.Set("per_page", strconv.Itoa(perPage))
	q.Set("sort", "updated")
	q.Set("type", "owner")

	var listed []Repo
	status, err := c.getJSON(ctx, c.APIURL+"/users/"+url.PathEscape(user)+"/repos", q, &listed)
	if err != nil {
		return nil, &UpstreamError{Operation: "list repositories", StatusCode: status, Err: err}
	}

	repos := make([]Repo, 0, len(listed))
	for _, r := range listed {
		if r.Fork {
			continue
		}
		if r.DefaultBranch == "" {
			r.DefaultBranch = "main"
		}
		repos = append(repos, r)
	}

	c.logger.Debug("listed repositories",
		zap.String("user", user),
		zap.Int("listed", len(listed)),
		zap.Int("kept", len(repos)))

	return repos, nil
}

// GetLanguages returns the repository's language byte counts. Failure
// yields an empty map; a repository without readable stats contributes no
// language evidence.
func (c *Client) GetLanguages(ctx context.Context, owner, repo string) map[string]int64 {
	var langs map[string]int64
	endpoint := fmt.Sprintf("%s/repos/%s/%s/languages", c.APIURL, url.PathEscape(owner), url.PathEscape(repo))
	if _, err := c.getJSON(ctx, endpoint, nil, &langs); err != nil {
		c.logger.Debug("language fetch failed", zap.String("repo", repo), zap.Error(err))
		return map[string]int64{}
	}
	if langs == nil {
		langs = map[string]int64{}
	}
	return langs
}

// GetTree fetches the recursive file tree at ref. ok is false on any
// failure; the caller decides whether to retry another branch.
func (c *Client) GetTree(ctx context.Context, owner, repo, ref string) ([]TreeEntry, bool) {
	q := url.Values{}
	q.Set("recursive", "1")

	var tr treeResponse
	endpoint := fmt.Sprintf("%s/repos/%s/%s/git/trees/%s",
		c.APIURL, url.PathEscape(owner), url.PathEscape(repo), url.PathEscape(ref))
	if _, err := c.getJSON(ctx, endpoint, q, &tr); err != nil {
		c.logger.Debug("tree fetch failed",
			zap.String("repo", repo),
			zap.String("ref", ref),
			zap.Error(err))
		return nil, false
	}
	if tr.Truncated {
		c.logger.Debug("tree truncated by provider", zap.String("repo", repo))
	}
	return tr.Tree, true
}

// GetBlobText fetches and decodes a blob by SHA. Results are LRU-cached
// across requests keyed by the immutable SHA.
func (c *Client) GetBlobText(ctx context.Context, owner, repo, sha string) (string, bool) {
	if text, ok := c.blobCache.Get(sha); ok {
		return text, true
	}

	var blob blobResponse
	endpoint := fmt.Sprintf("%s/repos/%s/%s/git/blobs/%s",
		c.APIURL, url.PathEscape(owner), url.PathEscape(repo), url.PathEscape(sha))
	if _, err := c.getJSON(ctx, endpoint, nil, &blob); err != nil {
		c.logger.Debug("blob fetch failed", zap.String("repo", repo), zap.String("sha", sha), zap.Error(err))
		return "", false
	}

	text, err := decodeContent(blob.Content, blob.Encoding)
	if err != nil {
		c.logger.Debug("blob decode failed", zap.String("repo", repo), zap.String("sha", sha), zap.Error(err))
		return "", false
	}

	c.blobCache.Add(sha, text)
	return text, true
}

// GetFileText fetches a single file by path via the contents API. Used
// for manifest files whose presence is probed without a tree.
func (c *Client) GetFileText(ctx context.Context, owner, repo, path string) (string, bool) {
	var file blobResponse
	endpoint := fmt.Sprintf("%s/repos/%s/%s/contents/%s",
		c.APIURL, url.PathEscape(owner), url.PathEscape(repo), escapePath(path))
	if _, err := c.getJSON(ctx, endpoint, nil, &file); err != nil {
		c.logger.Debug("file fetch failed", zap.String("repo", repo), zap.String("path", path), zap.Error(err))
		return "", false
	}

	text, err := decodeContent(file.Content, file.Encoding)
	if err != nil {
		c.logger.Debug("file decode failed", zap.String("repo", repo), zap.String("path", path), zap.Error(err))
		return "", false
	}
	return text, true
}

// CheckRateLimit probes the remaining core quota before a scan. Below the
// safety floor it returns a QuotaError naming the reset time. A failed
// probe is advisory only: the scan proceeds, reported as Remaining -1.
func (c *Client) CheckRateLimit(ctx context.Context) (RateLimit, error) {
	var rl rateLimitResponse
	if _, err := c.getJSON(ctx, c.APIURL+"/rate_limit", nil, &rl); err != nil {
		c.logger.Warn("rate limit probe failed", zap.Error(err))
		return RateLimit{Remaining: -1}, nil
	}

	core := rl.Resources.Core
	if core.Remaining >= 0 && core.Remaining < rateFloor {
		return core, &QuotaError{Remaining: core.Remaining, Reset: time.Unix(core.Reset, 0)}
	}
	return core, nil
}

// getJSON performs a GET against the provider and decodes the JSON body
// into target. The returned status is valid whenever the request reached
// the provider.
func (c *Client) getJSON(ctx context.Context, endpoint string, q url.Values, target any) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return 0, err
	}

	c.setHeaders(req)
	if q != nil {
		req.URL.RawQuery = q.Encode()
	}

	c.logger.Debug("github request", zap.String("url", req.URL.String()))
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, err
	}

	if resp.StatusCode != http.StatusOK {
		return resp.StatusCode, fmt.Errorf("bad status: %s", resp.Status)
	}

	if target == nil {
		return resp.StatusCode, nil
	}
	if err := json.Unmarshal(data, target); err != nil {
		return resp.StatusCode, err
	}
	return resp.StatusCode, nil
}

func (c *Client) setHeaders(req *http.Request) {
	if c.token != "" {
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.token))
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("User-Agent", c.UserAgent)
}

// decodeContent decodes a content payload per its declared encoding. The
// provider base64-encodes with embedded newlines.
func decodeContent(content, encoding string) (string, error) {
	switch encoding {
	case "base64":
		raw, err := base64.StdEncoding.DecodeString(strings.ReplaceAll(content, "\n", ""))
		if err != nil {
			return "", fmt.Errorf("failed to decode content: %w", err)
		}
		return string(raw), nil
	case "", "utf-8":
		return content, nil
	default:
		return "", fmt.Errorf("unsupported content encoding %q", encoding)
	}
}

// escapePath escapes a repository file path segment by segment, keeping
// the slashes that the contents API expects literally.
func escapePath(path string) string {
	parts := strings.Split(path, "/")
	for i, p := range parts {
		parts[i] = url.PathEscape(p)
	}
	return strings.Join(parts, "/")
}
