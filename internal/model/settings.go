package model

// BuildSettings is the configuration emitted to the surrounding build system
// for one target platform.
type BuildSettings struct {
	Platform            Platform            `json:"platform" yaml:"platform"`
	Definitions         []Definition        `json:"definitions" yaml:"definitions"`
	PublicIncludePaths  []Path              `json:"public_include_paths,omitempty" yaml:"public_include_paths,omitempty"`
	SystemIncludePaths  []Path              `json:"system_include_paths,omitempty" yaml:"system_include_paths,omitempty"`
	LinkInputs          []Path              `json:"link_inputs,omitempty" yaml:"link_inputs,omitempty"`
	SystemLibraries     []string            `json:"system_libraries,omitempty" yaml:"system_libraries,omitempty"`
	DelayLoads          []string            `json:"delay_loads,omitempty" yaml:"delay_loads,omitempty"`
	DependencyModules   []string            `json:"dependency_modules,omitempty" yaml:"dependency_modules,omitempty"`
	RuntimeDependencies []RuntimeDependency `json:"runtime_dependencies,omitempty" yaml:"runtime_dependencies,omitempty"`
	Staged              []StageOutcome      `json:"staged,omitempty" yaml:"staged,omitempty"`
	Diagnostics         []string            `json:"diagnostics,omitempty" yaml:"diagnostics,omitempty"`
}

// AddFeature merges a feature decision into the settings.
func (s *BuildSettings) AddFeature(d FeatureDecision) {
	s.Definitions = append(s.Definitions, d.Flag)
	s.PublicIncludePaths = appendUnique(s.PublicIncludePaths, d.PublicIncludePaths...)
	s.SystemIncludePaths = appendUnique(s.SystemIncludePaths, d.SystemIncludePaths...)
	s.LinkInputs = appendUnique(s.LinkInputs, d.LinkInputs...)
	s.SystemLibraries = appendUnique(s.SystemLibraries, d.SystemLibraries...)
	s.DelayLoads = appendUnique(s.DelayLoads, d.DelayLoads...)
	s.DependencyModules = appendUnique(s.DependencyModules, d.DependencyModules...)
	s.RuntimeDependencies = append(s.RuntimeDependencies, d.RuntimeDependencies...)
	s.Diagnostics = append(s.Diagnostics, d.Diagnostics...)
}

// AddCompanion merges a companion decision into the settings.
func (s *BuildSettings) AddCompanion(d CompanionDecision) {
	s.Definitions = append(s.Definitions, d.Flag)
	s.DependencyModules = appendUnique(s.DependencyModules, d.Modules...)
	s.Diagnostics = append(s.Diagnostics, d.Diagnostics...)
}

// AddStaging records staging outcomes.
func (s *BuildSettings) AddStaging(r StagingReport) {
	s.Staged = append(s.Staged, r.Outcomes...)
}

func appendUnique[T comparable](dst []T, items ...T) []T {
	for _, item := range items {
		seen := false

		for _, existing := range dst {
			if existing == item {
				seen = true
				break
			}
		}

		if !seen {
			dst = append(dst, item)
		}
	}

	return dst
}
