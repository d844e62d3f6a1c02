package models

// SelectionRequest describes one run of the file-selection policy.
type SelectionRequest struct {
	// ExplicitFiles bypasses the whole policy: the list is returned as-is,
	// truncated to MaxFiles.
	ExplicitFiles []string
	// Query is an optional case-insensitive regex matched against file paths
	// to fill the remaining budget.
	Query string
	// MaxFiles is the fetch budget. Must be positive.
	MaxFiles int
	// PrioritizeExamples appends example-directory files after the key files.
	PrioritizeExamples bool
	// ContextExtensions biases example ordering toward the caller's stack.
	ContextExtensions []string
}

// FetchRequest describes one full repository fetch.
type FetchRequest struct {
	URL               string
	Branch            string
	Query             string
	Files             []string
	MaxFiles          int
	IncludeExamples   bool
	ContextExtensions []string
}

// RepoSummary is the condensed tree summary embedded in a fetch result.
type RepoSummary struct {
	TotalFiles      int            `json:"total_files"`
	TotalDirs       int            `json:"total_dirs"`
	Languages       map[string]int `json:"languages"`
	MainDirectories []string       `json:"main_directories"`
	HasExamples     bool           `json:"has_examples"`
	ExampleCount    int            `json:"example_count"`
}

// ContextFilter reports how local-context extensions influenced selection.
type ContextFilter struct {
	Enabled         bool     `json:"enabled"`
	Extensions      []string `json:"extensions"`
	MatchedExamples int      `json:"matched_examples"`
}

// FetchResult is the structured document produced by a repository fetch.
// FetchedFiles preserves fetch order; OverflowFiles lists paths the policy
// selected but the budget did not cover.
type FetchResult struct {
	Repo              string            `json:"repo"`
	URL               string            `json:"url"`
	Branch            string            `json:"branch"`
	Summary           RepoSummary       `json:"summary"`
	FetchedFiles      []string          `json:"fetched_files"`
	OverflowFiles     []string          `json:"overflow_files,omitempty"`
	AvailableExamples []string          `json:"available_examples"`
	FileContents      map[string]string `json:"file_contents"`
	ContextFilter     *ContextFilter    `json:"context_filter,omitempty"`
}

// TreeSnapshot is the tree-only variant of a fetch: full analysis, no file
// contents.
type TreeSnapshot struct {
	Repo    string        `json:"repo"`
	Branch  string        `json:"branch"`
	Summary *TreeAnalysis `json:"summary"`
}
