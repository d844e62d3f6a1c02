package context_detector

import (
	"encoding/json"
	"io/fs"
	"os"
	"path/filepath"
	"repolens/context_detector/contracts"
	"repolens/context_detector/models"
	"repolens/utils"
	"sort"
	"strings"
)

// ContextDetector inspects a local project directory and reports which
// languages and frameworks it appears to use, so remote example files can be
// ranked against the caller's own stack.
type ContextDetector struct{}

// NewContextDetector initializes a new ContextDetector.
func NewContextDetector() contracts.IContextDetector {
	return &ContextDetector{}
}

// DetectProjectContext combines language, framework and extension detection
// into a single context. Lists are sorted; the context string is the sorted
// union of languages and frameworks joined with ", ".
func (detector *ContextDetector) DetectProjectContext(rootDir string, maxDepth int) *models.ProjectContext {
	languages := detector.detectLanguages(rootDir, maxDepth)
	frameworks := detector.detectFrameworks(rootDir)

	extensions := make(map[string]bool)
	for _, indicator := range languageIndicators {
		if !languages[indicator.Language] {
			continue
		}
		for _, ext := range indicator.Extensions {
			extensions[ext] = true
		}
	}

	combined := make(map[string]bool, len(languages)+len(frameworks))
	for language := range languages {
		combined[language] = true
	}
	for framework := range frameworks {
		combined[framework] = true
	}

	return &models.ProjectContext{
		Languages:     sortedKeys(languages),
		Frameworks:    sortedKeys(frameworks),
		Extensions:    sortedKeys(extensions),
		ContextString: strings.Join(sortedKeys(combined), ", "),
	}
}

// detectLanguages marks a language when one of its indicator files exists at
// the project root, or when the bounded walk finds a file with one of its
// extensions. The walk prunes vendored and generated directories and never
// descends below maxDepth (the root is depth 0).
func (detector *ContextDetector) detectLanguages(rootDir string, maxDepth int) map[string]bool {
	detected := make(map[string]bool)

	for _, indicator := range languageIndicators {
		for _, name := range indicator.Files {
			if _, err := os.Stat(filepath.Join(rootDir, name)); err == nil {
				detected[indicator.Language] = true
				break
			}
		}
	}

	extensionLanguages := make(map[string][]string)
	for _, indicator := range languageIndicators {
		for _, ext := range indicator.Extensions {
			extensionLanguages[ext] = append(extensionLanguages[ext], indicator.Language)
		}
	}

	_ = filepath.WalkDir(rootDir, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			// Unreadable entries contribute no signal.
			return nil
		}

		relative, err := filepath.Rel(rootDir, path)
		if err != nil {
			return nil
		}
		relative = filepath.ToSlash(relative)

		if entry.IsDir() {
			if relative == "." {
				return nil
			}
			if skippedDirs[entry.Name()] || directoryDepth(relative) > maxDepth {
				return filepath.SkipDir
			}
			return nil
		}

		for _, language := range extensionLanguages[utils.FileExtension(entry.Name())] {
			detected[language] = true
		}
		return nil
	})

	return detected
}

// detectFrameworks inspects the root-level dependency manifests. A manifest
// that is missing, unreadable or malformed yields no frameworks from that
// source and is never an error.
func (detector *ContextDetector) detectFrameworks(rootDir string) map[string]bool {
	frameworks := make(map[string]bool)

	if deps := readPackageDependencies(filepath.Join(rootDir, "package.json")); deps != nil {
		for framework, names := range frameworkPatterns {
			for _, name := range names {
				if _, ok := deps[name]; ok {
					frameworks[framework] = true
					break
				}
			}
		}
	}

	for _, manifest := range []string{"requirements.txt", "pyproject.toml"} {
		content, err := os.ReadFile(filepath.Join(rootDir, manifest))
		if err != nil {
			continue
		}
		lowered := strings.ToLower(string(content))
		for _, framework := range pythonFrameworks {
			if strings.Contains(lowered, framework) {
				frameworks[framework] = true
			}
		}
	}

	return frameworks
}

// readPackageDependencies returns the union of dependencies and
// devDependencies from a package.json, or nil when the file is missing or
// not valid JSON.
func readPackageDependencies(path string) map[string]string {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil
	}

	var manifest struct {
		Dependencies    map[string]string `json:"dependencies"`
		DevDependencies map[string]string `json:"devDependencies"`
	}
	if err := json.Unmarshal(content, &manifest); err != nil {
		return nil
	}

	deps := make(map[string]string, len(manifest.Dependencies)+len(manifest.DevDependencies))
	for name, version := range manifest.Dependencies {
		deps[name] = version
	}
	for name, version := range manifest.DevDependencies {
		deps[name] = version
	}
	return deps
}

// directoryDepth counts path components of a slash-separated relative path,
// so "a/b/c" sits at depth 3 below the root.
func directoryDepth(relative string) int {
	return strings.Count(relative, "/") + 1
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for key := range set {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
