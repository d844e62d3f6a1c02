package repo_fetcher

import (
	"context"
	"fmt"
	"repolens/repo_fetcher/models"
	"sync"
)

// InMemClient is an in-memory contracts.IRepoClient for unit tests. It
// records content requests in order so tests can assert fetch sequencing.
type InMemClient struct {
	mu              sync.Mutex
	trees           map[string][]models.TreeEntry // "owner/repo@ref" -> entries
	files           map[string]string             // "owner/repo@ref/path" -> content
	failingFiles    map[string]bool
	contentRequests []string
	treeRequests    []string
}

// NewInMemClient creates an empty InMemClient.
func NewInMemClient() *InMemClient {
	return &InMemClient{
		trees:        make(map[string][]models.TreeEntry),
		files:        make(map[string]string),
		failingFiles: make(map[string]bool),
	}
}

// SetTree seeds the recursive tree for owner/repo at ref.
func (m *InMemClient) SetTree(owner, repo, ref string, entries []models.TreeEntry) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.trees[treeKey(owner, repo, ref)] = entries
}

// SetFile seeds a file's content at ref.
func (m *InMemClient) SetFile(owner, repo, ref, path, content string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.files[fileKey(owner, repo, ref, path)] = content
}

// FailFile makes fetching the given file return a transport error.
func (m *InMemClient) FailFile(owner, repo, ref, path string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failingFiles[fileKey(owner, repo, ref, path)] = true
}

// ContentRequests returns every file path requested so far, in order.
func (m *InMemClient) ContentRequests() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.contentRequests))
	copy(out, m.contentRequests)
	return out
}

// TreeRequests returns every tree ref requested so far, in order.
func (m *InMemClient) TreeRequests() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.treeRequests))
	copy(out, m.treeRequests)
	return out
}

// FetchTree returns the seeded tree for ref, or found=false when no tree
// was seeded under that ref.
func (m *InMemClient) FetchTree(_ context.Context, owner, repo, ref string) ([]models.TreeEntry, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.treeRequests = append(m.treeRequests, ref)
	entries, ok := m.trees[treeKey(owner, repo, ref)]
	if !ok {
		return nil, false, nil
	}
	return entries, true, nil
}

// FetchFileContent returns the seeded content, "" for unseeded paths, or an
// error for paths marked with FailFile.
func (m *InMemClient) FetchFileContent(_ context.Context, owner, repo, ref, path string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := fileKey(owner, repo, ref, path)
	m.contentRequests = append(m.contentRequests, path)
	if m.failingFiles[key] {
		return "", fmt.Errorf("simulated transport failure: %s", key)
	}
	return m.files[key], nil
}

func treeKey(owner, repo, ref string) string {
	return owner + "/" + repo + "@" + ref
}

func fileKey(owner, repo, ref, path string) string {
	return treeKey(owner, repo, ref) + "/" + path
}
