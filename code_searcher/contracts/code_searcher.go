package contracts

import (
	"context"
	"repolens/code_searcher/models"
)

// ICodeSearcher defines the interface for regex search over repository
// contents fetched through the web API.
type ICodeSearcher interface {
	// SearchRepository resolves the repository tree, picks the files to scan
	// and returns every match with context plus aggregate statistics.
	SearchRepository(ctx context.Context, request *models.SearchRequest) (*models.SearchResult, error)

	// SearchInFile scans a single file for the case-insensitive pattern. A
	// file with no retrievable content contributes zero matches, not an
	// error.
	SearchInFile(ctx context.Context, owner, repo, branch, path, pattern string, contextLines int) ([]models.SearchMatch, error)
}
