package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"capres.dev/pkg/capres/internal/controller"
	m "capres.dev/pkg/capres/internal/model"
)

// ResolveArgs holds the arguments for a full configuration run.
type ResolveArgs struct {
	Platforms []m.Platform
	// Stage copies the runtime library when the feature is enabled.
	Stage bool
	// ProjectBinaries are created on platforms the feature supports, before
	// anything is linked into them.
	ProjectBinaries []m.Path
}

// ScanArgs holds the arguments for listing third-party modules.
type ScanArgs struct {
	Prefixes []string
}

// Workflow runs the resolver components for the CLI commands.
type Workflow interface {
	Resolve(ctx context.Context, args ResolveArgs) ([]m.BuildSettings, error)
	Probe(ctx context.Context, platform m.Platform) (m.ProbeResult, error)
	Scan(ctx context.Context, args ScanArgs) ([]m.ModuleDescriptor, error)
	Stage(ctx context.Context, platform m.Platform) (m.StagingReport, error)
}

type workflow struct {
	controller.UI
	Configurator
	Prober
	Stager
	Scanner
	CompanionResolver

	thirdPartyDir m.Path
}

// NewWorkflow creates a Workflow using the provided dependencies.
func NewWorkflow(
	ui controller.UI,
	configurator Configurator,
	prober Prober,
	stager Stager,
	scanner Scanner,
	companions CompanionResolver,
	thirdPartyDir m.Path,
) Workflow {
	return &workflow{
		UI:                ui,
		Configurator:      configurator,
		Prober:            prober,
		Stager:            stager,
		Scanner:           scanner,
		CompanionResolver: companions,
		thirdPartyDir:     thirdPartyDir,
	}
}

// Resolve runs one configuration pass per platform. Passes are independent
// and run concurrently. Environment failures only disable the affected
// feature; the returned error is reserved for failures that make the
// settings unusable.
func (w *workflow) Resolve(ctx context.Context, args ResolveArgs) ([]m.BuildSettings, error) {
	if len(args.Platforms) == 0 {
		return nil, errors.New("no target platform given")
	}

	companion, err := w.CompanionResolver.Resolve(ctx, w.thirdPartyDir)
	if err != nil {
		w.DisplayError(ctx, err)
	}

	w.DisplayCompanion(ctx, companion)

	results := make([]m.BuildSettings, len(args.Platforms))
	group, groupCtx := errgroup.WithContext(ctx)

	for i, platform := range args.Platforms {
		group.Go(func() error {
			settings, err := w.pass(groupCtx, platform, companion, args)
			if err != nil {
				return fmt.Errorf("%s: %w", platform, err)
			}

			results[i] = settings

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		slog.Error("resolve failed", "error", err)
		return nil, err
	}

	return results, nil
}

func (w *workflow) pass(ctx context.Context, platform m.Platform, companion m.CompanionDecision, args ResolveArgs) (m.BuildSettings, error) {
	settings := m.BuildSettings{Platform: platform}
	settings.AddCompanion(companion)

	spec := w.Spec()
	if spec.Supports(platform) && len(args.ProjectBinaries) > 0 {
		dirs := make([]m.Path, 0, len(args.ProjectBinaries))
		for _, root := range args.ProjectBinaries {
			dirs = append(dirs, m.Path(filepath.Join(string(root), BinariesDir, string(platform))))
		}

		w.EnsureDirs(ctx, dirs...)
	}

	decision, err := w.Configure(ctx, platform)
	if err != nil {
		w.DisplayError(ctx, err)
	}

	w.DisplayDecision(ctx, decision)
	settings.AddFeature(decision)

	if !args.Stage || !decision.Enabled() {
		return settings, nil
	}

	for _, dep := range decision.RuntimeDependencies {
		report, err := w.Stager.Stage(ctx, m.StagingJob{
			Source:       dep.Source,
			Destinations: spec.StagingDestinations(platform),
		})
		if err != nil {
			return settings, err
		}

		w.DisplayStaging(ctx, report)
		settings.AddStaging(report)
	}

	return settings, nil
}

// Probe runs the dependency probe for the configured feature.
func (w *workflow) Probe(ctx context.Context, platform m.Platform) (m.ProbeResult, error) {
	spec := w.Spec()

	result, err := w.Prober.Probe(ctx, spec.Root, platform)
	if err != nil {
		w.DisplayError(ctx, err)
		return m.ProbeResult{}, err
	}

	w.DisplayProbe(ctx, spec.Name, platform, result)

	return result, nil
}

// Scan lists descriptors for each prefix against the third-party directory.
func (w *workflow) Scan(ctx context.Context, args ScanArgs) ([]m.ModuleDescriptor, error) {
	if w.thirdPartyDir == "" {
		return nil, errors.New("no third-party directory configured")
	}

	var all []m.ModuleDescriptor

	for _, prefix := range args.Prefixes {
		found, err := w.Discover(ctx, w.thirdPartyDir, prefix)
		if err != nil {
			w.DisplayError(ctx, err)
			return nil, err
		}

		all = append(all, found...)
	}

	w.DisplayModules(ctx, all)

	return all, nil
}

// Stage probes the SDK and stages its runtime library when the probe passes.
// An unsatisfied probe stages nothing.
func (w *workflow) Stage(ctx context.Context, platform m.Platform) (m.StagingReport, error) {
	decision, err := w.Configure(ctx, platform)
	if err != nil {
		w.DisplayError(ctx, err)
		return m.StagingReport{}, err
	}

	if !decision.Enabled() {
		w.DisplayDecision(ctx, decision)
		return m.StagingReport{}, nil
	}

	spec := w.Spec()

	var report m.StagingReport

	for _, dep := range decision.RuntimeDependencies {
		report, err = w.Stager.Stage(ctx, m.StagingJob{
			Source:       dep.Source,
			Destinations: spec.StagingDestinations(platform),
		})
		if err != nil {
			w.DisplayError(ctx, err)
			return report, err
		}

		w.DisplayStaging(ctx, report)
	}

	return report, nil
}
