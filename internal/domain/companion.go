package domain

import (
	"context"
	"fmt"
	"log/slog"

	m "capres.dev/pkg/capres/internal/model"
)

// CompanionSpec describes an optional third-party family discovered by
// scanning, with a secondary family that is only pulled in alongside it.
type CompanionSpec struct {
	Name string
	Flag string
	// PrimaryPrefixes are scanned independently and merged. Several spellings
	// of the same family are expected because upstream naming is inconsistent
	// across versions (OpenEXR vs OpenExr).
	PrimaryPrefixes   []string
	SecondaryPrefixes []string
}

// CompanionResolver decides which third-party companion modules to depend on.
type CompanionResolver interface {
	Resolve(ctx context.Context, thirdPartyDir m.Path) (m.CompanionDecision, error)
}

type companionResolver struct {
	spec    CompanionSpec
	scanner Scanner
}

// NewCompanionResolver creates a CompanionResolver.
func NewCompanionResolver(spec CompanionSpec, scanner Scanner) CompanionResolver {
	return &companionResolver{spec: spec, scanner: scanner}
}

// Resolve adds the primary family when present and the secondary family only
// when the primary is present. The flag is enabled when both are present.
func (r *companionResolver) Resolve(ctx context.Context, thirdPartyDir m.Path) (m.CompanionDecision, error) {
	decision := m.CompanionDecision{
		Name:      r.spec.Name,
		Flag:      m.Definition{Name: r.spec.Flag},
		Primary:   m.NewModuleSet(),
		Secondary: m.NewModuleSet(),
	}

	if thirdPartyDir == "" {
		slog.Debug("no third-party directory configured", "companion", r.spec.Name)
		return decision, nil
	}

	if err := r.scanInto(ctx, thirdPartyDir, r.spec.PrimaryPrefixes, decision.Primary); err != nil {
		return r.failed(decision, err)
	}

	if err := r.scanInto(ctx, thirdPartyDir, r.spec.SecondaryPrefixes, decision.Secondary); err != nil {
		return r.failed(decision, err)
	}

	if decision.Primary.Len() > 0 {
		decision.Modules = decision.Primary.Sorted()

		if decision.Secondary.Len() > 0 {
			decision.Modules = append(decision.Modules, decision.Secondary.Sorted()...)
		}
	}

	decision.Flag.Enabled = decision.Primary.Len() > 0 && decision.Secondary.Len() > 0

	slog.Info("companion resolved",
		"companion", r.spec.Name,
		"primary", decision.Primary.Len(),
		"secondary", decision.Secondary.Len(),
		"flag", decision.Flag.String(),
	)

	return decision, nil
}

func (r *companionResolver) scanInto(ctx context.Context, root m.Path, prefixes []string, into m.ModuleSet) error {
	for _, prefix := range prefixes {
		set, err := r.scanner.Scan(ctx, root, prefix)
		if err != nil {
			return err
		}

		into.Union(set)
	}

	return nil
}

func (r *companionResolver) failed(decision m.CompanionDecision, err error) (m.CompanionDecision, error) {
	slog.Error("third-party scan failed", "companion", r.spec.Name, "error", err)

	decision.Primary = m.NewModuleSet()
	decision.Secondary = m.NewModuleSet()
	decision.Modules = nil
	decision.Flag.Enabled = false
	decision.Diagnostics = []string{fmt.Sprintf("%s disabled: %v", r.spec.Name, err)}

	return decision, fmt.Errorf("resolve %s: %w", r.spec.Name, err)
}
