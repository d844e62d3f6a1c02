package utils

import (
	"path"
	"strings"
)

// FileExtension returns the extension of the final path component, including
// the leading dot. Dotfiles (".gitignore") and names with only a trailing dot
// yield "", so bare configuration files never register as an extension.
func FileExtension(filePath string) string {
	name := path.Base(filePath)
	idx := strings.LastIndex(name, ".")
	if idx <= 0 || idx == len(name)-1 {
		return ""
	}
	return name[idx:]
}
