package repo_fetcher

import (
	"fmt"
	"repolens/repo_fetcher/models"
	"repolens/utils"
	"slices"
)

// exampleFloor guarantees a few example files surface even when the fetch
// budget is tiny.
const exampleFloor = 3

// SelectFiles applies the prioritization policy to a tree analysis and
// returns the ordered, duplicate-free list of paths worth fetching.
//
// Precedence: an explicit file list wins outright; otherwise key files come
// first, then up to max(3, maxFiles/2) example files (context-matching ones
// ahead of the rest), then query matches filling whatever budget remains.
// Key files plus examples may together overshoot the budget; the fetch stage
// enforces the hard cap and reports the overflow.
func SelectFiles(analysis *models.TreeAnalysis, request *models.SelectionRequest) ([]string, error) {
	if request.MaxFiles <= 0 {
		return nil, fmt.Errorf("max files must be positive, got %d", request.MaxFiles)
	}

	if len(request.ExplicitFiles) > 0 {
		return truncate(dedupe(request.ExplicitFiles), request.MaxFiles), nil
	}

	seen := make(map[string]bool)
	selected := make([]string, 0, request.MaxFiles)
	appendUnseen := func(path string) {
		if !seen[path] {
			seen[path] = true
			selected = append(selected, path)
		}
	}

	for _, path := range analysis.KeyFiles {
		appendUnseen(path)
	}

	if request.PrioritizeExamples && len(analysis.ExampleFiles) > 0 {
		examples := FilterExamplesByContext(analysis.ExampleFiles, request.ContextExtensions)
		limit := request.MaxFiles / 2
		if limit < exampleFloor {
			limit = exampleFloor
		}
		for _, path := range truncate(examples, limit) {
			appendUnseen(path)
		}
	}

	if request.Query != "" {
		regex, err := CompilePattern(request.Query)
		if err != nil {
			return nil, fmt.Errorf("invalid query pattern %q: %w", request.Query, err)
		}
		for _, path := range analysis.Files {
			if len(selected) >= request.MaxFiles {
				break
			}
			if regex.MatchString(path) {
				appendUnseen(path)
			}
		}
	}

	return selected, nil
}

// FilterExamplesByContext reorders example files so that paths whose
// extension belongs to the caller's project come first. Both groups keep
// their original discovery order; an empty extension list means no
// reordering at all.
func FilterExamplesByContext(exampleFiles []string, contextExtensions []string) []string {
	if len(contextExtensions) == 0 {
		return exampleFiles
	}

	matching := make([]string, 0, len(exampleFiles))
	var nonMatching []string
	for _, file := range exampleFiles {
		if slices.Contains(contextExtensions, utils.FileExtension(file)) {
			matching = append(matching, file)
		} else {
			nonMatching = append(nonMatching, file)
		}
	}
	return append(matching, nonMatching...)
}

func dedupe(paths []string) []string {
	seen := make(map[string]bool, len(paths))
	unique := make([]string, 0, len(paths))
	for _, path := range paths {
		if !seen[path] {
			seen[path] = true
			unique = append(unique, path)
		}
	}
	return unique
}

func truncate(paths []string, limit int) []string {
	if len(paths) > limit {
		return paths[:limit]
	}
	return paths
}
