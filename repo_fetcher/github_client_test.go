package repo_fetcher

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"repolens/repo_fetcher/models"
)

func TestGitHubClient_FetchTree(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/repos/acme/widget/git/trees/main", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "1", r.URL.Query().Get("recursive"))
		fmt.Fprint(w, `{
			"sha": "abc123",
			"tree": [
				{"path": "README.md", "type": "blob"},
				{"path": "src", "type": "tree"},
				{"path": "src/main.go", "type": "blob"},
				{"path": "third_party", "type": "commit"}
			],
			"truncated": false
		}`)
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	client := NewGitHubClient(server.URL, server.URL, 5*time.Second)

	entries, found, err := client.FetchTree(context.Background(), "acme", "widget", "main")
	require.NoError(t, err)
	assert.True(t, found)
	// Submodule entries are neither files nor directories and are dropped.
	assert.Equal(t, []models.TreeEntry{
		{Path: "README.md", Kind: models.EntryKindFile},
		{Path: "src", Kind: models.EntryKindDirectory},
		{Path: "src/main.go", Kind: models.EntryKindFile},
	}, entries)
}

// A missing ref is reported as not found so the caller can try its next
// branch candidate.
func TestGitHubClient_FetchTree_MissingRef(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/repos/acme/widget/git/trees/gone", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprint(w, `{"message": "Not Found"}`)
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	client := NewGitHubClient(server.URL, server.URL, 5*time.Second)

	entries, found, err := client.FetchTree(context.Background(), "acme", "widget", "gone")
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, entries)
}

func TestGitHubClient_FetchTree_ServerError(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/repos/acme/widget/git/trees/main", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	client := NewGitHubClient(server.URL, server.URL, 5*time.Second)

	_, found, err := client.FetchTree(context.Background(), "acme", "widget", "main")
	assert.Error(t, err)
	assert.False(t, found)
}

func TestGitHubClient_FetchFileContent(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/acme/widget/main/docs/guide.md", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "# Guide\n")
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	client := NewGitHubClient(server.URL, server.URL, 5*time.Second)

	content, err := client.FetchFileContent(context.Background(), "acme", "widget", "main", "docs/guide.md")
	require.NoError(t, err)
	assert.Equal(t, "# Guide\n", content)
}

// A 404 on the raw host is absence, not an error.
func TestGitHubClient_FetchFileContent_NotFound(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	defer server.Close()

	client := NewGitHubClient(server.URL, server.URL, 5*time.Second)

	content, err := client.FetchFileContent(context.Background(), "acme", "widget", "main", "missing.txt")
	require.NoError(t, err)
	assert.Equal(t, "", content)
}

func TestGitHubClient_FetchFileContent_ServerError(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	client := NewGitHubClient(server.URL, server.URL, 5*time.Second)

	_, err := client.FetchFileContent(context.Background(), "acme", "widget", "main", "file.txt")
	assert.Error(t, err)
}
