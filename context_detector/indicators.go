package context_detector

// languageIndicator ties a language to the file extensions that mark it and
// the root-level indicator files whose mere presence marks it.
type languageIndicator struct {
	Language   string
	Extensions []string
	Files      []string
}

// languageIndicators is the fixed detection table. A package manifest at the
// project root marks every language that lists it, which is intentionally
// loose: a package.json is enough to flag javascript, typescript, react and
// vue as candidates, and the extension walk narrows nothing away.
var languageIndicators = []languageIndicator{
	{Language: "python", Extensions: []string{".py"}, Files: []string{"requirements.txt", "pyproject.toml", "setup.py", "Pipfile"}},
	{Language: "javascript", Extensions: []string{".js", ".jsx", ".mjs"}, Files: []string{"package.json", "package-lock.json", "yarn.lock"}},
	{Language: "typescript", Extensions: []string{".ts", ".tsx"}, Files: []string{"tsconfig.json", "package.json"}},
	{Language: "react", Extensions: []string{".jsx", ".tsx"}, Files: []string{"package.json"}},
	{Language: "vue", Extensions: []string{".vue"}, Files: []string{"package.json"}},
	{Language: "go", Extensions: []string{".go"}, Files: []string{"go.mod", "go.sum"}},
	{Language: "rust", Extensions: []string{".rs"}, Files: []string{"Cargo.toml", "Cargo.lock"}},
	{Language: "java", Extensions: []string{".java"}, Files: []string{"pom.xml", "build.gradle", "gradlew"}},
	{Language: "ruby", Extensions: []string{".rb"}, Files: []string{"Gemfile", "Rakefile"}},
	{Language: "php", Extensions: []string{".php"}, Files: []string{"composer.json", "composer.lock"}},
}

// frameworkPatterns maps a framework to the package.json dependency names
// that identify it. Both dependencies and devDependencies are checked.
var frameworkPatterns = map[string][]string{
	"react":   {"react", "react-dom", "next"},
	"vue":     {"vue", "nuxt"},
	"angular": {"@angular/core"},
	"svelte":  {"svelte"},
	"fastapi": {"fastapi", "uvicorn"},
	"django":  {"django"},
	"flask":   {"flask"},
	"express": {"express"},
	"nest":    {"@nestjs/core"},
}

// pythonFrameworks are matched as plain lowercase substrings inside
// requirements.txt and pyproject.toml.
var pythonFrameworks = []string{"fastapi", "django", "flask"}

// skippedDirs are never descended into during the extension walk.
var skippedDirs = map[string]bool{
	"node_modules": true,
	"venv":         true,
	".venv":        true,
	"dist":         true,
	"build":        true,
	".git":         true,
	"__pycache__":  true,
	"target":       true,
	"vendor":       true,
}
