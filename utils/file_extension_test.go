package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFileExtension(t *testing.T) {
	assert.Equal(t, ".py", FileExtension("main.py"))
	assert.Equal(t, ".go", FileExtension("src/server/handler.go"))
	assert.Equal(t, ".gz", FileExtension("archive.tar.gz"))
	assert.Equal(t, ".js", FileExtension("examples/demo.test.js"))
}

// Dotfiles and bare names carry no extension, so they never count toward
// language statistics or context matching.
func TestFileExtension_NoExtension(t *testing.T) {
	assert.Equal(t, "", FileExtension(".gitignore"))
	assert.Equal(t, "", FileExtension("config/.env"))
	assert.Equal(t, "", FileExtension("README"))
	assert.Equal(t, "", FileExtension("Makefile"))
	assert.Equal(t, "", FileExtension("trailing."))
}
