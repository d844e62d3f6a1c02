package repo_fetcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"repolens/repo_fetcher/models"
)

func file(path string) models.TreeEntry {
	return models.TreeEntry{Path: path, Kind: models.EntryKindFile}
}

func dir(path string) models.TreeEntry {
	return models.TreeEntry{Path: path, Kind: models.EntryKindDirectory}
}

func TestAnalyzeTree_CountsAndLanguages(t *testing.T) {
	analysis := AnalyzeTree([]models.TreeEntry{
		file("README.md"),
		dir("src"),
		file("src/main.py"),
		file("src/util.py"),
		file(".gitignore"),
		file("LICENSE"),
	})

	assert.Equal(t, 5, analysis.TotalFiles)
	assert.Equal(t, 1, analysis.TotalDirs)
	assert.Equal(t, map[string]int{".md": 1, ".py": 2}, analysis.Languages)
	assert.Equal(t, []string{"README.md", ".gitignore", "LICENSE"}, analysis.KeyFiles)
	assert.Equal(t, []string{"src"}, analysis.MainDirs)
	assert.False(t, analysis.HasExamples)
	assert.Equal(t, []string{"README.md", "src/main.py", "src/util.py", ".gitignore", "LICENSE"}, analysis.Files)
}

// Anything under an excluded directory is invisible to every analysis field.
func TestAnalyzeTree_ExcludedDirsNeverAppear(t *testing.T) {
	analysis := AnalyzeTree([]models.TreeEntry{
		dir("node_modules"),
		file("node_modules/react/package.json"),
		dir(".git"),
		file(".git/config"),
		file("vendor/lib.go"),
		dir("src"),
		file("src/main.go"),
	})

	assert.Equal(t, 1, analysis.TotalFiles)
	assert.Equal(t, 1, analysis.TotalDirs)
	assert.Equal(t, map[string]int{".go": 1}, analysis.Languages)
	assert.Empty(t, analysis.KeyFiles)
	assert.Equal(t, []string{"src"}, analysis.MainDirs)
	assert.Equal(t, []string{"src/main.go"}, analysis.Files)
}

// Key files match on basename anywhere in the tree or on the exact path.
func TestAnalyzeTree_KeyFilesByBasename(t *testing.T) {
	analysis := AnalyzeTree([]models.TreeEntry{
		file("docs/README.md"),
		file("backend/go.mod"),
		file("notes.md"),
	})

	assert.Equal(t, []string{"docs/README.md", "backend/go.mod"}, analysis.KeyFiles)
}

// Example files are matched on lowercased path components; has_examples is
// only raised by a directory entry, not by files alone.
func TestAnalyzeTree_ExampleDetection(t *testing.T) {
	analysis := AnalyzeTree([]models.TreeEntry{
		dir("examples"),
		file("examples/demo.py"),
		file("docs/examples/usage.md"),
		file("Samples/Upper.cs"),
		file("src/main.py"),
	})

	assert.True(t, analysis.HasExamples)
	assert.Equal(t, []string{"examples/demo.py", "docs/examples/usage.md", "Samples/Upper.cs"}, analysis.ExampleFiles)

	withoutDir := AnalyzeTree([]models.TreeEntry{
		file("examples/demo.py"),
	})
	assert.False(t, withoutDir.HasExamples)
	assert.Equal(t, []string{"examples/demo.py"}, withoutDir.ExampleFiles)
}

func TestAnalyzeTree_EmptyTree(t *testing.T) {
	analysis := AnalyzeTree(nil)

	assert.Zero(t, analysis.TotalFiles)
	assert.Zero(t, analysis.TotalDirs)
	assert.NotNil(t, analysis.KeyFiles)
	assert.Empty(t, analysis.KeyFiles)
	assert.NotNil(t, analysis.ExampleFiles)
	assert.NotNil(t, analysis.MainDirs)
	assert.NotNil(t, analysis.Languages)
}

func TestSummarize(t *testing.T) {
	analysis := AnalyzeTree([]models.TreeEntry{
		dir("examples"),
		dir("src"),
		file("examples/a.py"),
		file("examples/b.py"),
		file("src/main.go"),
	})

	summary := Summarize(analysis)

	assert.Equal(t, 3, summary.TotalFiles)
	assert.Equal(t, 2, summary.TotalDirs)
	assert.Equal(t, []string{"examples", "src"}, summary.MainDirectories)
	assert.True(t, summary.HasExamples)
	assert.Equal(t, 2, summary.ExampleCount)
}

// Path matching is case-insensitive and honors the directory exclusions.
func TestSearchFilesByPattern(t *testing.T) {
	entries := []models.TreeEntry{
		file("README.md"),
		file("docs/readme.txt"),
		file("vendor/README.md"),
		dir("docs"),
		file("src/main.go"),
	}

	matching, err := SearchFilesByPattern(entries, "readme")
	require.NoError(t, err)
	assert.Equal(t, []string{"README.md", "docs/readme.txt"}, matching)
}

func TestSearchFilesByPattern_InvalidPattern(t *testing.T) {
	_, err := SearchFilesByPattern([]models.TreeEntry{file("a.go")}, "[")
	assert.Error(t, err)
}
