package utils

import (
	"fmt"
	"github.com/alecthomas/chroma/v2/quick"
	"os"
	searcher_models "repolens/code_searcher/models"
	"repolens/constants/lipgloss"
	fetcher_models "repolens/repo_fetcher/models"
	"strings"
)

// languageByExtension maps file extensions to chroma lexer names for
// highlighted terminal output. Unknown extensions fall back to plain text.
var languageByExtension = map[string]string{
	".py":    "python",
	".js":    "javascript",
	".jsx":   "jsx",
	".mjs":   "javascript",
	".ts":    "typescript",
	".tsx":   "tsx",
	".vue":   "vue",
	".go":    "go",
	".rs":    "rust",
	".java":  "java",
	".rb":    "ruby",
	".php":   "php",
	".c":     "c",
	".h":     "c",
	".cpp":   "cpp",
	".cs":    "csharp",
	".swift": "swift",
	".kt":    "kotlin",
	".md":    "markdown",
	".json":  "json",
	".yaml":  "yaml",
	".yml":   "yaml",
	".toml":  "toml",
}

// LanguageForPath returns the chroma lexer name for a file path.
func LanguageForPath(path string) string {
	if language, ok := languageByExtension[FileExtension(path)]; ok {
		return language
	}
	return "text"
}

// RenderFetchResult prints a fetch result as a highlighted terminal report:
// a summary box, each fetched file with syntax highlighting, and the paths
// the budget left behind.
func RenderFetchResult(result *fetcher_models.FetchResult, theme string) error {
	summary := fmt.Sprintf("%s @ %s\nfiles: %d  dirs: %d  example files: %d",
		result.Repo, result.Branch,
		result.Summary.TotalFiles, result.Summary.TotalDirs, result.Summary.ExampleCount)
	fmt.Println(lipgloss.BoxStyle.Render(summary))

	for _, path := range result.FetchedFiles {
		content, ok := result.FileContents[path]
		if !ok {
			continue
		}

		fmt.Println(lipgloss.Info.Render(path))
		if err := quick.Highlight(os.Stdout, content, LanguageForPath(path), "terminal256", theme); err != nil {
			return err
		}
		fmt.Println()
	}

	if len(result.OverflowFiles) > 0 {
		fmt.Println(lipgloss.Yellow.Render(fmt.Sprintf("Selected but not fetched (over budget): %s", strings.Join(result.OverflowFiles, ", "))))
	}

	return nil
}

// RenderSearchResult prints a search result as a highlighted terminal report:
// a statistics box followed by each match with its surrounding context lines.
func RenderSearchResult(result *searcher_models.SearchResult, theme string) error {
	stats := fmt.Sprintf("%s @ %s\npattern: %s\nfiles searched: %d  files with matches: %d  total matches: %d",
		result.Repo, result.Branch, result.Pattern,
		result.Statistics.FilesSearched, result.Statistics.FilesWithMatches, result.Statistics.TotalMatches)
	fmt.Println(lipgloss.BoxStyle.Render(stats))

	for _, match := range result.Matches {
		fmt.Println(lipgloss.Violet.Render(fmt.Sprintf("%s:%d", match.File, match.Line)))
		language := LanguageForPath(match.File)

		for _, line := range match.ContextBefore {
			if err := quick.Highlight(os.Stdout, line+"\n", language, "terminal256", theme); err != nil {
				return err
			}
		}
		fmt.Println(lipgloss.Green.Render(match.Match))
		for _, line := range match.ContextAfter {
			if err := quick.Highlight(os.Stdout, line+"\n", language, "terminal256", theme); err != nil {
				return err
			}
		}
		fmt.Println()
	}

	return nil
}
