package github

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func writeJSON(t *testing.T, w http.ResponseWriter, v any) {
	t.Helper()
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := New(zap.NewNop(), "test-token")
	require.NoError(t, err)
	client.APIURL = server.URL
	return client, server
}

func TestListUserRepos_ExcludesForks(t *testing.T) {
	var gotAuth, gotAccept, gotQuery string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/users/octocat/repos", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")
		gotAccept = r.Header.Get("Accept")
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"name": "api-server", "full_name": "octocat/api-server", "fork": false, "default_branch": "main"},
			{"name": "forked-lib", "full_name": "octocat/forked-lib", "fork": true, "default_branch": "main"},
			{"name": "legacy", "full_name": "octocat/legacy", "fork": false, "default_branch": ""}
		]`))
	}))

	repos, err := client.ListUserRepos(context.Background(), "octocat")
	require.NoError(t, err)

	require.Len(t, repos, 2)
	assert.Equal(t, "api-server", repos[0].Name)
	assert.Equal(t, "legacy", repos[1].Name)
	assert.Equal(t, "main", repos[1].DefaultBranch, "empty default branch falls back to main")

	assert.Equal(t, "Bearer test-token", gotAuth)
	assert.Equal(t, "application/vnd.github+json", gotAccept)
	assert.Contains(t, gotQuery, "per_page=100")
	assert.Contains(t, gotQuery, "sort=updated")
	assert.Contains(t, gotQuery, "type=owner")
}

func TestListUserRepos_NotFoundPassesStatusThrough(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"message": "Not Found"}`, http.StatusNotFound)
	}))

	_, err := client.ListUserRepos(context.Background(), "no-such-user")

	var upstream *UpstreamError
	require.ErrorAs(t, err, &upstream)
	assert.Equal(t, http.StatusNotFound, upstream.StatusCode)
	assert.Contains(t, upstream.Error(), "list repositories")
}

func TestListUserRepos_TransportFailure(t *testing.T) {
	client, server := newTestClient(t, http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {}))
	server.Close()

	_, err := client.ListUserRepos(context.Background(), "octocat")

	var upstream *UpstreamError
	require.ErrorAs(t, err, &upstream)
	assert.Equal(t, 0, upstream.StatusCode)
}

func TestGetLanguages(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/repos/octocat/api-server/languages", r.URL.Path)
		_, _ = w.Write([]byte(`{"JavaScript": 54321, "Dockerfile": 120}`))
	}))

	langs := client.GetLanguages(context.Background(), "octocat", "api-server")

	assert.Equal(t, map[string]int64{"JavaScript": 54321, "Dockerfile": 120}, langs)
}

func TestGetLanguages_FailureYieldsEmptyMap(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))

	langs := client.GetLanguages(context.Background(), "octocat", "api-server")

	require.NotNil(t, langs)
	assert.Empty(t, langs)
}

func TestGetTree(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/repos/octocat/api-server/git/trees/main", r.URL.Path)
		require.Equal(t, "1", r.URL.Query().Get("recursive"))
		_, _ = w.Write([]byte(`{
			"sha": "root",
			"tree": [
				{"path": "src/index.js", "type": "blob", "sha": "abc", "size": 120},
				{"path": "src", "type": "tree", "sha": "def", "size": 0}
			],
			"truncated": false
		}`))
	}))

	entries, ok := client.GetTree(context.Background(), "octocat", "api-server", "main")

	require.True(t, ok)
	require.Len(t, entries, 2)
	assert.Equal(t, "src/index.js", entries[0].Path)
	assert.Equal(t, "blob", entries[0].Type)
}

func TestGetTree_FailureReturnsNotOK(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	_, ok := client.GetTree(context.Background(), "octocat", "api-server", "develop")

	assert.False(t, ok)
}

func TestGetBlobText_DecodesAndCaches(t *testing.T) {
	content := "const express = require('express');\n"
	encoded := base64.StdEncoding.EncodeToString([]byte(content))
	// The provider wraps base64 at 60 columns
	wrapped := encoded[:20] + "\n" + encoded[20:]

	requests := 0
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		require.Equal(t, "/repos/octocat/api-server/git/blobs/abc123", r.URL.Path)
		resp := map[string]string{"content": wrapped, "encoding": "base64"}
		w.Header().Set("Content-Type", "application/json")
		writeJSON(t, w, resp)
	}))

	text, ok := client.GetBlobText(context.Background(), "octocat", "api-server", "abc123")
	require.True(t, ok)
	assert.Equal(t, content, text)

	text, ok = client.GetBlobText(context.Background(), "octocat", "api-server", "abc123")
	require.True(t, ok)
	assert.Equal(t, content, text)
	assert.Equal(t, 1, requests, "second read must come from the cache")
}

func TestGetBlobText_BadBase64(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"content": "!!!not-base64!!!", "encoding": "base64"}`))
	}))

	_, ok := client.GetBlobText(context.Background(), "octocat", "api-server", "broken")

	assert.False(t, ok)
}

func TestGetFileText(t *testing.T) {
	manifest := `{"dependencies": {"express": "^4.18.0"}}`
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/repos/octocat/api-server/contents/package.json", r.URL.Path)
		resp := map[string]string{
			"content":  base64.StdEncoding.EncodeToString([]byte(manifest)),
			"encoding": "base64",
		}
		writeJSON(t, w, resp)
	}))

	text, ok := client.GetFileText(context.Background(), "octocat", "api-server", "package.json")

	require.True(t, ok)
	assert.Equal(t, manifest, text)
}

func TestGetFileText_MissingFile(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	_, ok := client.GetFileText(context.Background(), "octocat", "api-server", "requirements.txt")

	assert.False(t, ok)
}

func TestCheckRateLimit_BelowFloor(t *testing.T) {
	reset := time.Now().Add(30 * time.Minute).Unix()
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/rate_limit", r.URL.Path)
		writeJSON(t, w, map[string]any{
			"resources": map[string]any{
				"core": map[string]any{"limit": 5000, "remaining": 3, "reset": reset},
			},
		})
	}))

	rl, err := client.CheckRateLimit(context.Background())

	var quota *QuotaError
	require.ErrorAs(t, err, &quota)
	assert.Equal(t, 3, quota.Remaining)
	assert.Equal(t, reset, quota.Reset.Unix())
	assert.Equal(t, 3, rl.Remaining)
}

func TestCheckRateLimit_AboveFloor(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(t, w, map[string]any{
			"resources": map[string]any{
				"core": map[string]any{"limit": 5000, "remaining": 4200, "reset": 0},
			},
		})
	}))

	rl, err := client.CheckRateLimit(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 4200, rl.Remaining)
}

func TestCheckRateLimit_ProbeFailureIsAdvisory(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	rl, err := client.CheckRateLimit(context.Background())

	require.NoError(t, err)
	assert.Equal(t, -1, rl.Remaining)
}

func TestNoAuthorizationHeaderWithoutToken(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`[]`))
	}))
	t.Cleanup(server.Close)

	client, err := New(zap.NewNop(), "")
	require.NoError(t, err)
	client.APIURL = server.URL

	_, err = client.ListUserRepos(context.Background(), "octocat")
	require.NoError(t, err)
	assert.Empty(t, gotAuth)
}
