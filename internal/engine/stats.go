package engine

// Diagnostic is one error or warning reported by the engine.
type Diagnostic struct {
	Message string `json:"message"`
	File    string `json:"file,omitempty"`
}

// Stats summarises a finished build.
type Stats struct {
	Errors   []Diagnostic `json:"errors,omitempty"`
	Warnings []Diagnostic `json:"warnings,omitempty"`
	// Summary is the engine's human-readable report.
	Summary string `json:"summary"`
}

// HasErrors reports whether the build failed.
func (s *Stats) HasErrors() bool {
	return s != nil && len(s.Errors) > 0
}
