package model

import (
	"fmt"
	"path/filepath"
)

// MissingArtifact describes one expected artifact that was not found.
type MissingArtifact struct {
	Role Role
	// Label qualifies directories ("root", "interface", "lib", "runtime").
	Label string
	Path  Path
}

// String renders the artifact the way it is shown to operators, e.g.
// "runtime library api.dll at /sdk/Win64/api.dll" or "lib directory at /sdk/Lib/Win64".
func (a MissingArtifact) String() string {
	if a.Role == RoleDirectory {
		return fmt.Sprintf("%s directory at %s", a.Label, a.Path)
	}

	return fmt.Sprintf("%s %s at %s", a.Role.Label(), filepath.Base(string(a.Path)), a.Path)
}

// ProbeResult is the verdict of a dependency probe. Exactly one of the two
// variants is active: Satisfied carries the resolved artifacts, Unsatisfied
// carries the ordered list of missing items.
type ProbeResult struct {
	artifacts []ResolvedPath
	missing   []MissingArtifact
}

// Satisfied builds a passing verdict.
func Satisfied(artifacts ...ResolvedPath) ProbeResult {
	return ProbeResult{artifacts: append([]ResolvedPath(nil), artifacts...)}
}

// Unsatisfied builds a failing verdict. It panics when called without any
// missing item because an empty Unsatisfied verdict is not representable.
func Unsatisfied(missing ...MissingArtifact) ProbeResult {
	if len(missing) == 0 {
		panic("model: Unsatisfied requires at least one missing artifact")
	}

	return ProbeResult{missing: append([]MissingArtifact(nil), missing...)}
}

// Satisfied reports whether every artifact was found.
func (r ProbeResult) Satisfied() bool {
	return len(r.missing) == 0
}

// Artifacts returns the resolved artifacts of a Satisfied result.
func (r ProbeResult) Artifacts() []ResolvedPath {
	return append([]ResolvedPath(nil), r.artifacts...)
}

// Missing returns the missing items of an Unsatisfied result in check order.
func (r ProbeResult) Missing() []MissingArtifact {
	return append([]MissingArtifact(nil), r.missing...)
}

// Artifact returns the first resolved artifact with the given role.
func (r ProbeResult) Artifact(role Role) (ResolvedPath, bool) {
	for _, a := range r.artifacts {
		if a.Role == role {
			return a, true
		}
	}

	return ResolvedPath{}, false
}

// ArtifactsOf returns every resolved artifact with the given role, in order.
func (r ProbeResult) ArtifactsOf(role Role) []ResolvedPath {
	var out []ResolvedPath

	for _, a := range r.artifacts {
		if a.Role == role {
			out = append(out, a)
		}
	}

	return out
}
