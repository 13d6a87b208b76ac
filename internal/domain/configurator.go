package domain

import (
	"context"
	"fmt"
	"log/slog"
	"path"
	"path/filepath"
	"slices"

	m "capres.dev/pkg/capres/internal/model"
)

// BinariesDir is the directory below a project or plugin root that holds
// per-platform runtime binaries.
const BinariesDir = "Binaries"

// FeatureSpec describes one optional capability backed by a native SDK.
type FeatureSpec struct {
	Name string
	// Flag is the compile-time definition toggled by the decision.
	Flag string
	// Root is the SDK root, already resolved against the anchor.
	Root      m.Path
	Layout    Layout
	Platforms []m.Platform

	// Static extras registered alongside the probed artifacts when enabled.
	SystemLibraries   []string
	DelayLoads        []string
	DependencyModules []string

	// StagingRoots are project or plugin roots; the runtime library is staged
	// into <root>/Binaries/<platform> for each of them.
	StagingRoots []m.Path
}

// Supports reports whether the capability applies to platform at all.
func (s FeatureSpec) Supports(platform m.Platform) bool {
	return slices.Contains(s.Platforms, platform)
}

// StagedPath is where the runtime library is expected relative to a binaries root.
func (s FeatureSpec) StagedPath(platform m.Platform, runtimeLib string) m.Path {
	return m.Path(path.Join(BinariesDir, string(platform), runtimeLib))
}

// StagingDestinations lists the output directories for platform.
func (s FeatureSpec) StagingDestinations(platform m.Platform) []m.Path {
	dests := make([]m.Path, 0, len(s.StagingRoots))
	for _, root := range s.StagingRoots {
		dests = append(dests, m.Path(filepath.Join(string(root), BinariesDir, string(platform))))
	}

	return dests
}

// Decide turns a probe verdict into a feature decision. It is a pure function
// of its inputs.
func Decide(spec FeatureSpec, platform m.Platform, result m.ProbeResult) m.FeatureDecision {
	decision := m.FeatureDecision{
		Feature:  spec.Name,
		Platform: platform,
		Flag:     m.Definition{Name: spec.Flag},
	}

	if !result.Satisfied() {
		for _, missing := range result.Missing() {
			decision.Diagnostics = append(decision.Diagnostics, missing.String())
		}

		return decision
	}

	decision.Flag.Enabled = true

	if header, ok := result.Artifact(m.RoleHeader); ok {
		interfaceDir := m.Path(filepath.Dir(string(header.Path)))
		decision.PublicIncludePaths = []m.Path{interfaceDir}
		decision.SystemIncludePaths = []m.Path{interfaceDir}
	}

	for _, lib := range result.ArtifactsOf(m.RoleImportLibrary) {
		decision.LinkInputs = append(decision.LinkInputs, lib.Path)
	}

	if runtimeLib, ok := result.Artifact(m.RoleRuntimeLibrary); ok {
		name := filepath.Base(string(runtimeLib.Path))
		decision.DelayLoads = append(decision.DelayLoads, name)
		decision.RuntimeDependencies = []m.RuntimeDependency{{
			Source: runtimeLib.Path,
			Staged: spec.StagedPath(platform, name),
		}}
	}

	decision.DelayLoads = append(decision.DelayLoads, spec.DelayLoads...)
	decision.SystemLibraries = slices.Clone(spec.SystemLibraries)
	decision.DependencyModules = slices.Clone(spec.DependencyModules)

	return decision
}

// Configurator resolves a FeatureSpec for a target platform.
type Configurator interface {
	// Configure always returns a usable decision. The error is non-nil only
	// for environment failures; the decision is then disabled and carries a
	// diagnostic.
	Configure(ctx context.Context, platform m.Platform) (m.FeatureDecision, error)
	Spec() FeatureSpec
}

type configurator struct {
	spec   FeatureSpec
	prober Prober
}

// NewConfigurator creates a Configurator for spec using prober.
func NewConfigurator(spec FeatureSpec, prober Prober) Configurator {
	return &configurator{spec: spec, prober: prober}
}

func (c *configurator) Spec() FeatureSpec {
	return c.spec
}

// Configure short-circuits to disabled on platforms the capability does not
// support, without probing.
func (c *configurator) Configure(ctx context.Context, platform m.Platform) (m.FeatureDecision, error) {
	if !c.spec.Supports(platform) {
		slog.Debug("feature not applicable", "feature", c.spec.Name, "platform", platform)

		return m.FeatureDecision{
			Feature:  c.spec.Name,
			Platform: platform,
			Flag:     m.Definition{Name: c.spec.Flag},
		}, nil
	}

	result, err := c.prober.Probe(ctx, c.spec.Root, platform)
	if err != nil {
		slog.Error("probe failed", "feature", c.spec.Name, "platform", platform, "error", err)

		return m.FeatureDecision{
			Feature:     c.spec.Name,
			Platform:    platform,
			Flag:        m.Definition{Name: c.spec.Flag},
			Diagnostics: []string{fmt.Sprintf("%s disabled: %v", c.spec.Name, err)},
		}, fmt.Errorf("configure %s: %w", c.spec.Name, err)
	}

	decision := Decide(c.spec, platform, result)
	if decision.Enabled() {
		slog.Info("feature enabled", "feature", c.spec.Name, "platform", platform, "flag", decision.Flag.String())
	} else {
		slog.Info("feature disabled", "feature", c.spec.Name, "platform", platform, "missing", len(decision.Diagnostics))
	}

	return decision, nil
}
