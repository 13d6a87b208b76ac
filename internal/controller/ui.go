// Package controller provides output adapters for displaying resolver results.
package controller

import (
	"context"
	"io"
	"os"

	"golang.org/x/term"

	m "capres.dev/pkg/capres/internal/model"
)

// UI defines how probe verdicts, decisions and staging results are shown to
// the operator. Implementations can use different output methods (plain
// tables, styled text, ...). Methods may be called from concurrent passes.
type UI interface {
	DisplayProbe(ctx context.Context, feature string, platform m.Platform, result m.ProbeResult)
	DisplayDecision(ctx context.Context, decision m.FeatureDecision)
	DisplayCompanion(ctx context.Context, decision m.CompanionDecision)
	DisplayModules(ctx context.Context, descriptors []m.ModuleDescriptor)
	DisplayStaging(ctx context.Context, report m.StagingReport)
	DisplayError(ctx context.Context, err error)
}

// NewUI picks a styled UI for terminals and a plain one otherwise.
func NewUI(w io.Writer, tty bool) UI {
	if tty {
		return NewStyledUI(w)
	}

	return NewSimpleUI(w)
}

// IsTTY reports whether w is an interactive terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return term.IsTerminal(int(f.Fd()))
}
