package contracts

import (
	"repolens/context_detector/models"
)

// IContextDetector defines the interface for detecting the technology stack
// of a local project directory.
type IContextDetector interface {
	// DetectProjectContext inspects rootDir down to maxDepth levels (root is
	// depth 0) and reports detected languages, frameworks and extensions.
	// Detection never fails: unreadable paths and malformed manifests simply
	// contribute no signal.
	DetectProjectContext(rootDir string, maxDepth int) *models.ProjectContext
}
