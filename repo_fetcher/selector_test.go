package repo_fetcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"repolens/repo_fetcher/models"
)

func TestSelectFiles_ExplicitFilesBypassPolicy(t *testing.T) {
	analysis := &models.TreeAnalysis{
		KeyFiles: []string{"README.md"},
	}

	selected, err := SelectFiles(analysis, &models.SelectionRequest{
		ExplicitFiles: []string{"a.go", "b.go", "a.go", "c.go"},
		MaxFiles:      2,
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"a.go", "b.go"}, selected)
}

func TestSelectFiles_KeyFilesThenExamples(t *testing.T) {
	analysis := &models.TreeAnalysis{
		KeyFiles:     []string{"README.md"},
		ExampleFiles: []string{"examples/demo.py"},
	}

	selected, err := SelectFiles(analysis, &models.SelectionRequest{
		MaxFiles:           10,
		PrioritizeExamples: true,
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"README.md", "examples/demo.py"}, selected)
}

// Ordinary source files are only pulled in by a query or context match;
// without either, selection over an analyzed tree stops at key files and
// examples.
func TestSelectFiles_PlainSourceFilesStayUnselected(t *testing.T) {
	analysis := AnalyzeTree([]models.TreeEntry{
		file("README.md"),
		file("examples/demo.py"),
		file("src/main.py"),
	})

	selected, err := SelectFiles(analysis, &models.SelectionRequest{
		MaxFiles:           5,
		PrioritizeExamples: true,
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"README.md", "examples/demo.py"}, selected)
}

// Examples are capped at half the budget with a floor of three, so small
// budgets still surface a few.
func TestSelectFiles_ExampleBudgetFloor(t *testing.T) {
	analysis := &models.TreeAnalysis{
		ExampleFiles: []string{"e1.py", "e2.py", "e3.py", "e4.py", "e5.py", "e6.py"},
	}

	small, err := SelectFiles(analysis, &models.SelectionRequest{MaxFiles: 4, PrioritizeExamples: true})
	require.NoError(t, err)
	assert.Equal(t, []string{"e1.py", "e2.py", "e3.py"}, small)

	large, err := SelectFiles(analysis, &models.SelectionRequest{MaxFiles: 10, PrioritizeExamples: true})
	require.NoError(t, err)
	assert.Equal(t, []string{"e1.py", "e2.py", "e3.py", "e4.py", "e5.py"}, large)
}

// Examples whose extension matches the caller's context come first, both
// groups keeping their discovery order.
func TestSelectFiles_ContextMatchingExamplesFirst(t *testing.T) {
	analysis := &models.TreeAnalysis{
		ExampleFiles: []string{"examples/a.py", "examples/b.js", "examples/c.py"},
	}

	selected, err := SelectFiles(analysis, &models.SelectionRequest{
		MaxFiles:           10,
		PrioritizeExamples: true,
		ContextExtensions:  []string{".py"},
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"examples/a.py", "examples/c.py", "examples/b.js"}, selected)
}

func TestSelectFiles_QueryFillsRemainingBudget(t *testing.T) {
	analysis := &models.TreeAnalysis{
		KeyFiles: []string{"README.md"},
		Files:    []string{"README.md", "src/handler.go", "docs/handler.md", "src/other.go", "handler_test.go"},
	}

	selected, err := SelectFiles(analysis, &models.SelectionRequest{
		Query:    "handler",
		MaxFiles: 3,
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"README.md", "src/handler.go", "docs/handler.md"}, selected)
}

// A budget already filled by key files leaves no room for query matches.
func TestSelectFiles_QueryWithExhaustedBudget(t *testing.T) {
	analysis := &models.TreeAnalysis{
		KeyFiles: []string{"README.md"},
		Files:    []string{"README.md", "src/config.go"},
	}

	selected, err := SelectFiles(analysis, &models.SelectionRequest{
		Query:    "config",
		MaxFiles: 1,
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"README.md"}, selected)
}

// Query matches never duplicate a path selected earlier in the policy.
func TestSelectFiles_NoDuplicates(t *testing.T) {
	analysis := &models.TreeAnalysis{
		KeyFiles: []string{"setup.py"},
		Files:    []string{"setup.py", "src/setup_helpers.py"},
	}

	selected, err := SelectFiles(analysis, &models.SelectionRequest{
		Query:    "setup",
		MaxFiles: 5,
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"setup.py", "src/setup_helpers.py"}, selected)
}

// Key files plus examples may exceed the budget; the cap is enforced at
// fetch time, not during selection.
func TestSelectFiles_SelectionMayOvershootBudget(t *testing.T) {
	analysis := &models.TreeAnalysis{
		KeyFiles:     []string{"README.md", "go.mod", "LICENSE", "Makefile"},
		ExampleFiles: []string{"examples/a.go", "examples/b.go", "examples/c.go"},
	}

	selected, err := SelectFiles(analysis, &models.SelectionRequest{
		MaxFiles:           2,
		PrioritizeExamples: true,
	})

	require.NoError(t, err)
	assert.Equal(t, []string{
		"README.md", "go.mod", "LICENSE", "Makefile",
		"examples/a.go", "examples/b.go", "examples/c.go",
	}, selected)
}

func TestSelectFiles_ExamplesDisabled(t *testing.T) {
	analysis := &models.TreeAnalysis{
		KeyFiles:     []string{"README.md"},
		ExampleFiles: []string{"examples/demo.py"},
	}

	selected, err := SelectFiles(analysis, &models.SelectionRequest{MaxFiles: 10})

	require.NoError(t, err)
	assert.Equal(t, []string{"README.md"}, selected)
}

func TestSelectFiles_EmptyTree(t *testing.T) {
	selected, err := SelectFiles(&models.TreeAnalysis{}, &models.SelectionRequest{MaxFiles: 5})

	require.NoError(t, err)
	assert.Empty(t, selected)
}

func TestSelectFiles_RejectsNonPositiveBudget(t *testing.T) {
	_, err := SelectFiles(&models.TreeAnalysis{}, &models.SelectionRequest{MaxFiles: 0})
	assert.Error(t, err)

	_, err = SelectFiles(&models.TreeAnalysis{}, &models.SelectionRequest{MaxFiles: -1})
	assert.Error(t, err)
}

func TestSelectFiles_InvalidQueryPattern(t *testing.T) {
	_, err := SelectFiles(&models.TreeAnalysis{}, &models.SelectionRequest{Query: "[", MaxFiles: 5})
	assert.Error(t, err)
}

func TestFilterExamplesByContext(t *testing.T) {
	examples := []string{"examples/a.py", "examples/b.js", "examples/c.py", "examples/d.txt"}

	filtered := FilterExamplesByContext(examples, []string{".py"})
	assert.Equal(t, []string{"examples/a.py", "examples/c.py", "examples/b.js", "examples/d.txt"}, filtered)

	// No context means no reordering.
	assert.Equal(t, examples, FilterExamplesByContext(examples, nil))

	// Extensions matching nothing fall back to the original order.
	assert.Equal(t, examples, FilterExamplesByContext(examples, []string{".rs"}))
}
