package repo_fetcher

import (
	"fmt"
	"path"
	"regexp"
	"repolens/repo_fetcher/models"
	"repolens/utils"
	"sort"
	"strings"
)

// keyFileNames are always eligible for selection: they are cheap to fetch
// and carry most of a repository's identity. Matched against the basename
// and the full path of every surviving blob.
var keyFileNames = map[string]bool{
	"README.md":        true,
	"README.rst":       true,
	"README.txt":       true,
	"README":           true,
	"package.json":     true,
	"requirements.txt": true,
	"Cargo.toml":       true,
	"go.mod":           true,
	"pom.xml":          true,
	"build.gradle":     true,
	"setup.py":         true,
	"pyproject.toml":   true,
	".gitignore":       true,
	"LICENSE":          true,
	"Makefile":         true,
	"Dockerfile":       true,
}

// priorityDirNames mark usage-illustrating content. Matching is against
// lowercased path components.
var priorityDirNames = map[string]bool{
	"examples":        true,
	"example":         true,
	"demos":           true,
	"demo":            true,
	"samples":         true,
	"sample":          true,
	"tutorials":       true,
	"tutorial":        true,
	"quickstart":      true,
	"getting-started": true,
	"snippets":        true,
	"cookbook":        true,
	"recipes":         true,
	"docs/examples":   true,
}

// excludedDirNames are dropped from every analysis: build artifacts,
// dependency caches and editor state carry no signal worth fetching.
var excludedDirNames = map[string]bool{
	"node_modules":  true,
	".git":          true,
	"vendor":        true,
	"dist":          true,
	"build":         true,
	"__pycache__":   true,
	".next":         true,
	"out":           true,
	"coverage":      true,
	".pytest_cache": true,
	"target":        true,
	"bin":           true,
	"obj":           true,
	".vscode":       true,
	".idea":         true,
}

// AnalyzeTree summarizes a recursive tree listing: counts, an extension
// histogram, top-level directories, key files, and example files. Paths
// under an excluded directory never appear in any field.
func AnalyzeTree(entries []models.TreeEntry) *models.TreeAnalysis {
	analysis := &models.TreeAnalysis{
		Languages:    make(map[string]int),
		KeyFiles:     make([]string, 0),
		ExampleFiles: make([]string, 0),
		MainDirs:     make([]string, 0),
		Files:        make([]string, 0, len(entries)),
	}
	topLevelDirs := make(map[string]bool)

	for _, entry := range entries {
		if hasExcludedComponent(entry.Path) {
			continue
		}

		switch entry.Kind {
		case models.EntryKindDirectory:
			analysis.TotalDirs++
			topLevelDirs[topLevelComponent(entry.Path)] = true
			if hasPriorityComponent(entry.Path) {
				analysis.HasExamples = true
			}

		case models.EntryKindFile:
			analysis.TotalFiles++
			if ext := utils.FileExtension(entry.Path); ext != "" {
				analysis.Languages[ext]++
			}
			if keyFileNames[path.Base(entry.Path)] || keyFileNames[entry.Path] {
				analysis.KeyFiles = append(analysis.KeyFiles, entry.Path)
			}
			if hasPriorityComponent(entry.Path) {
				analysis.ExampleFiles = append(analysis.ExampleFiles, entry.Path)
			}
			analysis.Files = append(analysis.Files, entry.Path)
		}
	}

	for dir := range topLevelDirs {
		analysis.MainDirs = append(analysis.MainDirs, dir)
	}
	sort.Strings(analysis.MainDirs)

	return analysis
}

// Summarize condenses a TreeAnalysis into the summary block of a fetch
// result.
func Summarize(analysis *models.TreeAnalysis) models.RepoSummary {
	return models.RepoSummary{
		TotalFiles:      analysis.TotalFiles,
		TotalDirs:       analysis.TotalDirs,
		Languages:       analysis.Languages,
		MainDirectories: analysis.MainDirs,
		HasExamples:     analysis.HasExamples,
		ExampleCount:    len(analysis.ExampleFiles),
	}
}

// SearchFilesByPattern returns every surviving file path matching the
// case-insensitive pattern, in tree order.
func SearchFilesByPattern(entries []models.TreeEntry, pattern string) ([]string, error) {
	regex, err := CompilePattern(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid file pattern %q: %w", pattern, err)
	}

	matching := make([]string, 0)
	for _, entry := range entries {
		if !entry.IsFile() || hasExcludedComponent(entry.Path) {
			continue
		}
		if regex.MatchString(entry.Path) {
			matching = append(matching, entry.Path)
		}
	}
	return matching, nil
}

// CompilePattern compiles a user-supplied pattern as a case-insensitive,
// unanchored regex.
func CompilePattern(pattern string) (*regexp.Regexp, error) {
	return regexp.Compile("(?i)" + pattern)
}

func hasExcludedComponent(filePath string) bool {
	for _, component := range strings.Split(filePath, "/") {
		if excludedDirNames[component] {
			return true
		}
	}
	return false
}

func hasPriorityComponent(filePath string) bool {
	for _, component := range strings.Split(strings.ToLower(filePath), "/") {
		if priorityDirNames[component] {
			return true
		}
	}
	return false
}

func topLevelComponent(filePath string) string {
	if idx := strings.Index(filePath, "/"); idx != -1 {
		return filePath[:idx]
	}
	return filePath
}
