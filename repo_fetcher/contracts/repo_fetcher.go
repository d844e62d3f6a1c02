package contracts

import (
	"context"
	"repolens/repo_fetcher/models"
)

// IRepoClient is the transport boundary to the repository host. It knows
// nothing about selection policy; it fetches trees and raw file contents.
type IRepoClient interface {
	// FetchTree returns the recursive tree listing of ref. found is false
	// when the ref does not exist; any other failure is an error.
	FetchTree(ctx context.Context, owner, repo, ref string) (entries []models.TreeEntry, found bool, err error)

	// FetchFileContent returns the raw content of path at ref. A missing
	// file yields ("", nil); transport failures yield an error, which
	// callers treat as absent content.
	FetchFileContent(ctx context.Context, owner, repo, ref, path string) (string, error)
}

// IRepoFetcher is the orchestration surface: resolve a tree with branch
// fallback, fetch single files, and run full budgeted repository fetches.
type IRepoFetcher interface {
	// ResolveTree tries the requested branch and then the well-known
	// fallbacks, first hit wins and fixes the working branch. Exhausting
	// every candidate is an error.
	ResolveTree(ctx context.Context, owner, repo, branch string) (entries []models.TreeEntry, resolvedBranch string, err error)

	// FetchFile returns the content of a single file, or "" when the file
	// is missing or could not be retrieved. Per-file failures never fail
	// the invocation.
	FetchFile(ctx context.Context, owner, repo, branch, path string) string

	// FetchRepo runs the full pipeline: tree, analysis, selection, budgeted
	// content retrieval.
	FetchRepo(ctx context.Context, request *models.FetchRequest) (*models.FetchResult, error)

	// FetchTreeOnly stops after tree analysis and returns the summary.
	FetchTreeOnly(ctx context.Context, request *models.FetchRequest) (*models.TreeSnapshot, error)
}
