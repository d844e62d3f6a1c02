package code_searcher

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"repolens/code_searcher/contracts"
	"repolens/code_searcher/models"
	"repolens/repo_fetcher"
	fetcher_contracts "repolens/repo_fetcher/contracts"
	"strings"
)

// maxReturnedMatches caps the match list in a search result. Statistics are
// computed before the cap, so totals stay honest.
const maxReturnedMatches = 100

// defaultSearchExtensions is the allow-list scanned when no file pattern is
// given: source files only, so the budget is not wasted on docs or binaries.
var defaultSearchExtensions = []string{
	".py", ".js", ".ts", ".go", ".java", ".rb", ".rs",
	".c", ".cpp", ".h", ".php", ".jsx", ".tsx",
}

// CodeSearcher performs regex searches over repository files, fetching each
// candidate file through the repository fetcher.
type CodeSearcher struct {
	fetcher fetcher_contracts.IRepoFetcher
	logger  *slog.Logger
}

// NewCodeSearcher initializes a new CodeSearcher.
func NewCodeSearcher(fetcher fetcher_contracts.IRepoFetcher, logger *slog.Logger) contracts.ICodeSearcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &CodeSearcher{fetcher: fetcher, logger: logger}
}

// SearchRepository resolves the tree (with branch fallback), picks candidate
// files, and scans them one at a time in order. Files that fail to fetch
// still count as searched but contribute nothing.
func (s *CodeSearcher) SearchRepository(ctx context.Context, request *models.SearchRequest) (*models.SearchResult, error) {
	owner, repo, err := repo_fetcher.ParseRepoURL(request.URL)
	if err != nil {
		return nil, err
	}
	if request.MaxFiles <= 0 {
		return nil, fmt.Errorf("max files must be positive, got %d", request.MaxFiles)
	}
	regex, err := repo_fetcher.CompilePattern(request.Pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid search pattern %q: %w", request.Pattern, err)
	}

	entries, branch, err := s.fetcher.ResolveTree(ctx, owner, repo, request.Branch)
	if err != nil {
		return nil, err
	}

	var filesToSearch []string
	if request.FilePattern != "" {
		filesToSearch, err = repo_fetcher.SearchFilesByPattern(entries, request.FilePattern)
		if err != nil {
			return nil, err
		}
	} else {
		for _, entry := range entries {
			if entry.IsFile() && hasSearchableExtension(entry.Path) {
				filesToSearch = append(filesToSearch, entry.Path)
			}
		}
	}
	if len(filesToSearch) > request.MaxFiles {
		filesToSearch = filesToSearch[:request.MaxFiles]
	}

	allMatches := make([]models.SearchMatch, 0)
	filesWithMatches := make(map[string]bool)
	for _, path := range filesToSearch {
		content := s.fetcher.FetchFile(ctx, owner, repo, branch, path)
		matches := MatchLines(path, content, regex, request.ContextLines)
		if len(matches) > 0 {
			allMatches = append(allMatches, matches...)
			filesWithMatches[path] = true
		}
	}

	returned := allMatches
	if len(returned) > maxReturnedMatches {
		s.logger.Debug("match list truncated", "total", len(allMatches), "returned", maxReturnedMatches)
		returned = returned[:maxReturnedMatches]
	}

	return &models.SearchResult{
		Repo:    owner + "/" + repo,
		Branch:  branch,
		Pattern: request.Pattern,
		Statistics: models.SearchStatistics{
			FilesSearched:    len(filesToSearch),
			FilesWithMatches: len(filesWithMatches),
			TotalMatches:     len(allMatches),
		},
		Matches: returned,
	}, nil
}

// SearchInFile scans a single repository file for the pattern.
func (s *CodeSearcher) SearchInFile(ctx context.Context, owner, repo, branch, path, pattern string, contextLines int) ([]models.SearchMatch, error) {
	regex, err := repo_fetcher.CompilePattern(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid search pattern %q: %w", pattern, err)
	}
	content := s.fetcher.FetchFile(ctx, owner, repo, branch, path)
	return MatchLines(path, content, regex, contextLines), nil
}

// MatchLines applies a compiled regex to every line of content and returns
// each matching line with up to contextLines raw lines on either side,
// clamped at the file boundaries. Empty content yields no matches.
func MatchLines(path, content string, regex *regexp.Regexp, contextLines int) []models.SearchMatch {
	if content == "" {
		return nil
	}
	if contextLines < 0 {
		contextLines = 0
	}

	lines := strings.Split(content, "\n")
	var matches []models.SearchMatch
	for i, line := range lines {
		if !regex.MatchString(line) {
			continue
		}

		lineNumber := i + 1
		start := i - contextLines
		if start < 0 {
			start = 0
		}
		end := lineNumber + contextLines
		if end > len(lines) {
			end = len(lines)
		}

		matches = append(matches, models.SearchMatch{
			File:          path,
			Line:          lineNumber,
			Match:         strings.TrimSpace(line),
			ContextBefore: lines[start:i],
			ContextAfter:  lines[lineNumber:end],
		})
	}
	return matches
}

func hasSearchableExtension(path string) bool {
	for _, ext := range defaultSearchExtensions {
		if strings.HasSuffix(path, ext) {
			return true
		}
	}
	return false
}
