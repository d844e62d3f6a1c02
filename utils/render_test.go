package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLanguageForPath(t *testing.T) {
	assert.Equal(t, "python", LanguageForPath("examples/demo.py"))
	assert.Equal(t, "go", LanguageForPath("cmd/main.go"))
	assert.Equal(t, "tsx", LanguageForPath("src/App.tsx"))
	assert.Equal(t, "markdown", LanguageForPath("README.md"))
}

// Unknown and missing extensions render as plain text.
func TestLanguageForPath_Fallback(t *testing.T) {
	assert.Equal(t, "text", LanguageForPath("LICENSE"))
	assert.Equal(t, "text", LanguageForPath("data.bin"))
}
