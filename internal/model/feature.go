package model

import "fmt"

// Definition is a boolean compile-time flag.
type Definition struct {
	Name    string
	Enabled bool
}

// String renders the definition as NAME=1 or NAME=0.
func (d Definition) String() string {
	value := 0
	if d.Enabled {
		value = 1
	}

	return fmt.Sprintf("%s=%d", d.Name, value)
}

// MarshalText implements encoding.TextMarshaler.
func (d Definition) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// RuntimeDependency maps a runtime artifact to the location it is staged at,
// relative to the binaries root of the project or plugin.
type RuntimeDependency struct {
	Source Path `json:"source" yaml:"source"`
	Staged Path `json:"staged" yaml:"staged"`
}

// FeatureDecision is the outcome of configuring one optional capability.
// It is derived from a ProbeResult and never mutated afterwards.
type FeatureDecision struct {
	Feature             string
	Platform            Platform
	Flag                Definition
	PublicIncludePaths  []Path
	SystemIncludePaths  []Path
	LinkInputs          []Path
	SystemLibraries     []string
	DelayLoads          []string
	DependencyModules   []string
	RuntimeDependencies []RuntimeDependency
	Diagnostics         []string
}

// Enabled reports whether the capability is compiled in.
func (d FeatureDecision) Enabled() bool {
	return d.Flag.Enabled
}
