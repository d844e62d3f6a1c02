package repo_fetcher

import (
	"context"
	"fmt"
	gogithub "github.com/google/go-github/v68/github"
	"io"
	"net/http"
	"net/url"
	"repolens/repo_fetcher/contracts"
	"repolens/repo_fetcher/models"
	"strings"
	"time"
)

const (
	defaultAPIURL = "https://api.github.com"
	defaultRawURL = "https://raw.githubusercontent.com"
)

// GitHubClient implements contracts.IRepoClient against the GitHub API:
// tree listings through the git data API and file contents through the raw
// content host. Requests are unauthenticated and carry a fixed timeout.
type GitHubClient struct {
	gh         *gogithub.Client
	rawBaseURL string
	httpClient *http.Client
}

// NewGitHubClient creates a client pointing at the given API and raw-content
// base URLs. Empty strings select the public GitHub endpoints; tests point
// both at local mock servers.
func NewGitHubClient(apiBaseURL, rawBaseURL string, timeout time.Duration) contracts.IRepoClient {
	httpClient := &http.Client{Timeout: timeout}

	gh := gogithub.NewClient(httpClient)
	applyBaseURL(gh, apiBaseURL)

	if rawBaseURL == "" {
		rawBaseURL = defaultRawURL
	}

	return &GitHubClient{
		gh:         gh,
		rawBaseURL: strings.TrimRight(rawBaseURL, "/"),
		httpClient: httpClient,
	}
}

// FetchTree fetches the recursive tree of ref. A missing ref reports
// found=false so the caller can try its next branch candidate; submodule
// entries are dropped since they are neither files nor directories.
func (c *GitHubClient) FetchTree(ctx context.Context, owner, repo, ref string) ([]models.TreeEntry, bool, error) {
	tree, resp, err := c.gh.Git.GetTree(ctx, owner, repo, ref, true)
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusNotFound {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("get tree %s/%s@%s: %w", owner, repo, ref, err)
	}

	entries := make([]models.TreeEntry, 0, len(tree.Entries))
	for _, entry := range tree.Entries {
		var kind string
		switch entry.GetType() {
		case "blob":
			kind = models.EntryKindFile
		case "tree":
			kind = models.EntryKindDirectory
		default:
			continue
		}
		entries = append(entries, models.TreeEntry{Path: entry.GetPath(), Kind: kind})
	}
	return entries, true, nil
}

// FetchFileContent fetches a single file from the raw content host. A 404
// is absence, not an error.
func (c *GitHubClient) FetchFileContent(ctx context.Context, owner, repo, ref, path string) (string, error) {
	fileURL := fmt.Sprintf("%s/%s/%s/%s/%s", c.rawBaseURL, owner, repo, ref, path)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fileURL, http.NoBody)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("GET %s: %w", fileURL, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode == http.StatusNotFound {
		return "", nil
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("GET %s returned %d", fileURL, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", fileURL, err)
	}
	return string(body), nil
}

func applyBaseURL(c *gogithub.Client, baseURL string) {
	if baseURL == "" || baseURL == defaultAPIURL {
		return
	}
	u, err := url.Parse(strings.TrimRight(baseURL, "/") + "/")
	if err != nil {
		return
	}
	c.BaseURL = u
}
