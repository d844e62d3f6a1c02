package models

// SearchRequest describes one repository-wide pattern search.
type SearchRequest struct {
	URL          string
	Branch       string
	Pattern      string
	FilePattern  string
	MaxFiles     int
	ContextLines int
}

// SearchMatch is a single matching line with its surrounding context. Line
// numbers are 1-based; the matched text is whitespace-trimmed while context
// lines are kept raw.
type SearchMatch struct {
	File          string   `json:"file"`
	Line          int      `json:"line"`
	Match         string   `json:"match"`
	ContextBefore []string `json:"context_before"`
	ContextAfter  []string `json:"context_after"`
}

// SearchStatistics aggregates a repository search. Totals reflect every
// match found, even when the returned match list is truncated.
type SearchStatistics struct {
	FilesSearched    int `json:"files_searched"`
	FilesWithMatches int `json:"files_with_matches"`
	TotalMatches     int `json:"total_matches"`
}

// SearchResult is the structured document produced by a repository search.
type SearchResult struct {
	Repo       string           `json:"repo"`
	Branch     string           `json:"branch"`
	Pattern    string           `json:"pattern"`
	Statistics SearchStatistics `json:"statistics"`
	Matches    []SearchMatch    `json:"matches"`
}
