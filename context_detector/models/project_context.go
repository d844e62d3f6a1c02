package models

// ProjectContext describes the languages, frameworks and source file
// extensions detected in a local project directory. All lists are sorted
// so repeated detections over the same tree compare equal.
type ProjectContext struct {
	Languages     []string `json:"languages"`
	Frameworks    []string `json:"frameworks"`
	Extensions    []string `json:"extensions"`
	ContextString string   `json:"context_string"`
}
