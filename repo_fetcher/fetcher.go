package repo_fetcher

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"repolens/repo_fetcher/contracts"
	"repolens/repo_fetcher/models"
	"repolens/utils"
	"slices"
	"strings"
)

// DefaultBranch is assumed when a request names no branch.
const DefaultBranch = "main"

// repoURLPattern extracts owner and repository name from a GitHub URL, with
// or without scheme, tolerating a .git suffix and one trailing slash.
var repoURLPattern = regexp.MustCompile(`github\.com/([^/]+)/([^/]+?)(?:\.git)?/?$`)

// ParseRepoURL extracts the owner and repository name from a repository URL.
func ParseRepoURL(repoURL string) (owner string, repo string, err error) {
	match := repoURLPattern.FindStringSubmatch(repoURL)
	if match == nil {
		return "", "", fmt.Errorf("invalid GitHub URL: %s", repoURL)
	}
	return match[1], match[2], nil
}

// Fetcher orchestrates tree resolution, analysis, selection and budgeted
// content retrieval against a repository client.
type Fetcher struct {
	client contracts.IRepoClient
	logger *slog.Logger
}

// NewFetcher initializes a new Fetcher.
func NewFetcher(client contracts.IRepoClient, logger *slog.Logger) contracts.IRepoFetcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Fetcher{client: client, logger: logger}
}

// ResolveTree tries the requested branch, then "master", then "main"; the
// first existing ref wins and becomes the working branch. The fallback list
// is fixed regardless of the requested branch, so a custom branch that does
// not exist silently falls through to the defaults.
func (f *Fetcher) ResolveTree(ctx context.Context, owner, repo, branch string) ([]models.TreeEntry, string, error) {
	if branch == "" {
		branch = DefaultBranch
	}

	for _, candidate := range []string{branch, "master", "main"} {
		entries, found, err := f.client.FetchTree(ctx, owner, repo, candidate)
		if err != nil {
			return nil, "", err
		}
		if found {
			return entries, candidate, nil
		}
	}
	return nil, "", fmt.Errorf("could not fetch tree for %s/%s", owner, repo)
}

// FetchFile returns the content of a single file, or "" when the file is
// missing or unreachable. Per-file failures are logged and swallowed so one
// inaccessible file cannot sink the batch.
func (f *Fetcher) FetchFile(ctx context.Context, owner, repo, branch, path string) string {
	content, err := f.client.FetchFileContent(ctx, owner, repo, branch, path)
	if err != nil {
		f.logger.Debug("file fetch failed", "owner", owner, "repo", repo, "path", path, "error", err)
		return ""
	}
	return content
}

// FetchRepo runs the full pipeline: resolve the tree, analyze it, select
// files under the budget, and fetch contents one at a time in selection
// order. Selection may overshoot the budget; only the first MaxFiles paths
// are fetched and the rest are reported as overflow.
func (f *Fetcher) FetchRepo(ctx context.Context, request *models.FetchRequest) (*models.FetchResult, error) {
	owner, repo, err := ParseRepoURL(request.URL)
	if err != nil {
		return nil, err
	}
	if request.MaxFiles <= 0 {
		return nil, fmt.Errorf("max files must be positive, got %d", request.MaxFiles)
	}
	if request.Query != "" {
		if _, err := CompilePattern(request.Query); err != nil {
			return nil, fmt.Errorf("invalid query pattern %q: %w", request.Query, err)
		}
	}

	entries, branch, err := f.ResolveTree(ctx, owner, repo, request.Branch)
	if err != nil {
		return nil, err
	}
	analysis := AnalyzeTree(entries)

	selected, err := SelectFiles(analysis, &models.SelectionRequest{
		ExplicitFiles:      request.Files,
		Query:              request.Query,
		MaxFiles:           request.MaxFiles,
		PrioritizeExamples: request.IncludeExamples,
		ContextExtensions:  request.ContextExtensions,
	})
	if err != nil {
		return nil, err
	}

	toFetch := selected
	var overflow []string
	if len(selected) > request.MaxFiles {
		toFetch = selected[:request.MaxFiles]
		overflow = selected[request.MaxFiles:]
	}

	fetchedFiles := make([]string, 0, len(toFetch))
	fileContents := make(map[string]string, len(toFetch))
	for _, path := range toFetch {
		content := f.FetchFile(ctx, owner, repo, branch, path)
		if content == "" {
			continue
		}
		fetchedFiles = append(fetchedFiles, path)
		fileContents[path] = content
	}

	result := &models.FetchResult{
		Repo:              owner + "/" + repo,
		URL:               strings.TrimRight(request.URL, "/"),
		Branch:            branch,
		Summary:           Summarize(analysis),
		FetchedFiles:      fetchedFiles,
		OverflowFiles:     overflow,
		AvailableExamples: truncate(analysis.ExampleFiles, 20),
		FileContents:      fileContents,
	}

	if len(request.ContextExtensions) > 0 {
		matched := 0
		for _, path := range selected {
			if slices.Contains(request.ContextExtensions, utils.FileExtension(path)) {
				matched++
			}
		}
		result.ContextFilter = &models.ContextFilter{
			Enabled:         true,
			Extensions:      request.ContextExtensions,
			MatchedExamples: matched,
		}
	}

	return result, nil
}

// FetchTreeOnly resolves and analyzes the tree without fetching any file
// contents.
func (f *Fetcher) FetchTreeOnly(ctx context.Context, request *models.FetchRequest) (*models.TreeSnapshot, error) {
	owner, repo, err := ParseRepoURL(request.URL)
	if err != nil {
		return nil, err
	}

	entries, branch, err := f.ResolveTree(ctx, owner, repo, request.Branch)
	if err != nil {
		return nil, err
	}

	return &models.TreeSnapshot{
		Repo:    owner + "/" + repo,
		Branch:  branch,
		Summary: AnalyzeTree(entries),
	}, nil
}
