package models

// Tree entry kinds as reported by the repository tree API.
const (
	EntryKindFile      = "file"
	EntryKindDirectory = "directory"
)

// TreeEntry is one path in a repository's recursive tree listing. Entries
// are immutable once fetched and live only for a single invocation.
type TreeEntry struct {
	Path string `json:"path"`
	Kind string `json:"kind"`
}

// IsFile reports whether the entry is a regular file (a blob).
func (e TreeEntry) IsFile() bool {
	return e.Kind == EntryKindFile
}

// TreeAnalysis is a read-only summary derived from a tree listing. Every
// counted or listed path has already passed the directory-exclusion filter;
// excluded paths never appear in any field.
type TreeAnalysis struct {
	TotalFiles   int            `json:"total_files"`
	TotalDirs    int            `json:"total_dirs"`
	Languages    map[string]int `json:"languages"`
	KeyFiles     []string       `json:"key_files"`
	ExampleFiles []string       `json:"example_files"`
	MainDirs     []string       `json:"main_dirs"`
	HasExamples  bool           `json:"has_examples"`

	// Files holds every surviving file path in tree order. It backs query
	// matching during selection and is not part of the serialized summary.
	Files []string `json:"-"`
}
