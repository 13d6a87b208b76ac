package controller

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"sync"

	"github.com/olekukonko/tablewriter"

	m "capres.dev/pkg/capres/internal/model"
)

// tone classifies a piece of text so decorated UIs can style it.
type tone int

const (
	toneHeading tone = iota
	toneGood
	toneWarn
	toneBad
)

// SimpleUI renders plain text and tables to a writer.
type SimpleUI struct {
	mu       sync.Mutex
	out      io.Writer
	decorate func(tone, string) string
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(out io.Writer) *SimpleUI {
	return &SimpleUI{
		out:      out,
		decorate: func(_ tone, s string) string { return s },
	}
}

// DisplayProbe prints the probe verdict and, when unsatisfied, every missing artifact.
func (s *SimpleUI) DisplayProbe(ctx context.Context, feature string, platform m.Platform, result m.ProbeResult) {
	if ctx.Err() != nil {
		return
	}

	var buf bytes.Buffer

	if result.Satisfied() {
		fmt.Fprintf(&buf, "%s [%s]: %s\n", feature, platform, s.decorate(toneGood, "satisfied"))

		rows := make([][]string, 0, len(result.Artifacts()))
		for _, a := range result.Artifacts() {
			rows = append(rows, []string{a.Role.Label(), string(a.Path)})
		}

		buf.WriteString(renderTable([]string{"Role", "Path"}, rows, nil))
	} else {
		fmt.Fprintf(&buf, "%s [%s]: %s\n", feature, platform, s.decorate(toneWarn, "unsatisfied"))

		for _, missing := range result.Missing() {
			fmt.Fprintf(&buf, "  missing %s\n", missing)
		}
	}

	s.write(buf.String())
}

// DisplayDecision prints the flag and registered settings of a feature decision.
func (s *SimpleUI) DisplayDecision(ctx context.Context, decision m.FeatureDecision) {
	if ctx.Err() != nil {
		return
	}

	var buf bytes.Buffer

	state := s.decorate(toneWarn, "disabled")
	if decision.Enabled() {
		state = s.decorate(toneGood, "enabled")
	}

	fmt.Fprintf(&buf, "%s [%s]: %s (%s)\n", s.decorate(toneHeading, decision.Feature), decision.Platform, state, decision.Flag)

	if decision.Enabled() {
		var rows [][]string
		for _, p := range decision.PublicIncludePaths {
			rows = append(rows, []string{"include", string(p)})
		}

		for _, p := range decision.SystemIncludePaths {
			rows = append(rows, []string{"system include", string(p)})
		}

		for _, p := range decision.LinkInputs {
			rows = append(rows, []string{"link", string(p)})
		}

		for _, lib := range decision.SystemLibraries {
			rows = append(rows, []string{"system library", lib})
		}

		for _, dll := range decision.DelayLoads {
			rows = append(rows, []string{"delay-load", dll})
		}

		for _, dep := range decision.RuntimeDependencies {
			rows = append(rows, []string{"runtime dependency", fmt.Sprintf("%s -> %s", dep.Source, dep.Staged)})
		}

		buf.WriteString(renderTable([]string{"Setting", "Value"}, rows, nil))
	}

	for _, d := range decision.Diagnostics {
		fmt.Fprintf(&buf, "  - %s\n", s.decorate(toneWarn, d))
	}

	s.write(buf.String())
}

// DisplayCompanion prints the outcome of a third-party companion scan.
func (s *SimpleUI) DisplayCompanion(ctx context.Context, decision m.CompanionDecision) {
	if ctx.Err() != nil {
		return
	}

	var buf bytes.Buffer

	state := s.decorate(toneWarn, "disabled")
	if decision.Flag.Enabled {
		state = s.decorate(toneGood, "enabled")
	}

	fmt.Fprintf(&buf, "%s: %s (%s)\n", s.decorate(toneHeading, decision.Name), state, decision.Flag)

	for _, mod := range decision.Modules {
		fmt.Fprintf(&buf, "  + %s\n", mod)
	}

	for _, d := range decision.Diagnostics {
		fmt.Fprintf(&buf, "  %s\n", s.decorate(toneBad, d))
	}

	s.write(buf.String())
}

// DisplayModules lists discovered descriptors sorted by module then file.
func (s *SimpleUI) DisplayModules(ctx context.Context, descriptors []m.ModuleDescriptor) {
	if ctx.Err() != nil {
		return
	}

	sorted := append([]m.ModuleDescriptor(nil), descriptors...)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Name != sorted[j].Name {
			return sorted[i].Name < sorted[j].Name
		}

		return sorted[i].File < sorted[j].File
	})

	unique := m.NewModuleSet()
	rows := make([][]string, 0, len(sorted))

	for _, d := range sorted {
		unique.Add(d.Name)
		rows = append(rows, []string{d.Name, filepath.ToSlash(string(d.File))})
	}

	footer := []string{fmt.Sprintf("Total Modules %d", unique.Len()), fmt.Sprintf("%d descriptors", len(sorted))}

	s.write("\n" + renderTable([]string{"Module", "Descriptor"}, rows, footer))
}

// DisplayStaging prints one line per destination.
func (s *SimpleUI) DisplayStaging(ctx context.Context, report m.StagingReport) {
	if ctx.Err() != nil {
		return
	}

	var buf bytes.Buffer

	for _, o := range report.Outcomes {
		status := o.Status.String()

		switch o.Status {
		case m.StageCopied:
			status = s.decorate(toneGood, status)
		case m.StageFailed:
			status = s.decorate(toneBad, status)
		case m.StageUpToDate:
		}

		fmt.Fprintf(&buf, "  %-10s %s\n", status, o.Destination)

		if o.Message != "" {
			fmt.Fprintf(&buf, "             %s\n", o.Message)
		}
	}

	s.write(buf.String())
}

// DisplayError prints an error line.
func (s *SimpleUI) DisplayError(_ context.Context, err error) {
	if err == nil {
		return
	}

	s.write(fmt.Sprintf("%s %v\n", s.decorate(toneBad, "error:"), err))
}

func (s *SimpleUI) write(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, _ = io.WriteString(s.out, text)
}

func renderTable(header []string, rows [][]string, footer []string) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader(header)
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.AppendBulk(rows)

	if footer != nil {
		table.SetFooter(footer)
	}

	table.Render()

	return tableBuffer.String()
}
