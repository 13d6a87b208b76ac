package domain_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"capres.dev/pkg/capres/internal/adapter"
	"capres.dev/pkg/capres/internal/controller"
	"capres.dev/pkg/capres/internal/domain"
	domainmocks "capres.dev/pkg/capres/internal/domain/mocks"
	m "capres.dev/pkg/capres/internal/model"
)

type workflowFixture struct {
	dir        string
	sdk        string
	plugin     string
	project    string
	thirdParty string
	spec       domain.FeatureSpec
	out        *bytes.Buffer
}

func newWorkflowFixture(t *testing.T, tree sdkTree) *workflowFixture {
	t.Helper()

	dir := t.TempDir()
	f := &workflowFixture{
		dir:        dir,
		sdk:        filepath.Join(dir, "sdk"),
		plugin:     filepath.Join(dir, "Plugin"),
		project:    filepath.Join(dir, "Project"),
		thirdParty: filepath.Join(dir, "ThirdParty"),
		out:        &bytes.Buffer{},
	}

	writeSDK(t, f.sdk, tree)
	writeFile(t, filepath.Join(f.thirdParty, "OpenEXR", "OpenEXR.Build.cs"), "class OpenEXR : ModuleRules\n")
	writeFile(t, filepath.Join(f.thirdParty, "Imath", "Imath.Build.cs"), "class Imath : ModuleRules\n")

	f.spec = testFeatureSpec(m.Path(f.sdk))
	f.spec.StagingRoots = []m.Path{m.Path(f.plugin), m.Path(f.project)}

	return f
}

func (f *workflowFixture) workflow(stager domain.Stager) domain.Workflow {
	fs := adapter.NewLocalFSAdapter()
	prober := domain.NewProber(fs, f.spec.Layout)
	scanner := domain.NewScanner(fs, "", "")

	if stager == nil {
		stager = domain.NewStager(fs)
	}

	return domain.NewWorkflow(
		controller.NewSimpleUI(f.out),
		domain.NewConfigurator(f.spec, prober),
		prober,
		stager,
		scanner,
		domain.NewCompanionResolver(testCompanionSpec(), scanner),
		m.Path(f.thirdParty),
	)
}

func TestWorkflow_ResolveCompleteSDK(t *testing.T) {
	// Arrange
	f := newWorkflowFixture(t, sdkTree{})
	wf := f.workflow(nil)

	// Act
	settings, err := wf.Resolve(context.Background(), domain.ResolveArgs{
		Platforms:       []m.Platform{m.PlatformWin64, m.PlatformLinux},
		Stage:           true,
		ProjectBinaries: []m.Path{m.Path(f.project)},
	})

	// Assert
	require.NoError(t, err)
	require.Len(t, settings, 2)

	win := settings[0]
	assert.Equal(t, m.PlatformWin64, win.Platform)
	assert.Equal(t, []m.Definition{
		{Name: "WITH_OPENEXR", Enabled: true},
		{Name: "WITH_ENCODER", Enabled: true},
	}, win.Definitions)
	assert.Contains(t, win.DependencyModules, "OpenEXR")
	assert.Contains(t, win.DependencyModules, "Imath")
	assert.Contains(t, win.DependencyModules, "RHI")
	assert.Len(t, win.LinkInputs, 2)
	require.Len(t, win.Staged, 2)

	for _, root := range []string{f.plugin, f.project} {
		assert.FileExists(t, filepath.Join(root, "Binaries", "Win64", "api.dll"))
	}

	linux := settings[1]
	assert.Equal(t, m.PlatformLinux, linux.Platform)
	assert.Equal(t, []m.Definition{
		{Name: "WITH_OPENEXR", Enabled: true},
		{Name: "WITH_ENCODER", Enabled: false},
	}, linux.Definitions)
	assert.Empty(t, linux.LinkInputs)
	assert.Empty(t, linux.Staged)
	assert.NoDirExists(t, filepath.Join(f.project, "Binaries", "Linux"))

	assert.Contains(t, f.out.String(), "WITH_ENCODER=1")
}

func TestWorkflow_ResolveUnsatisfiedNeverStages(t *testing.T) {
	// Arrange
	f := newWorkflowFixture(t, sdkTree{skipDLL: true})
	stager := domainmocks.NewMockStager(t)
	wf := f.workflow(stager)

	// Act
	settings, err := wf.Resolve(context.Background(), domain.ResolveArgs{
		Platforms: []m.Platform{m.PlatformWin64},
		Stage:     true,
	})

	// Assert
	require.NoError(t, err)
	require.Len(t, settings, 1)
	assert.Equal(t, []string{
		"runtime library api.dll at " + filepath.Join(f.sdk, "Win64", "api.dll"),
	}, settings[0].Diagnostics)
	assert.Empty(t, settings[0].Staged)
	stager.AssertNotCalled(t, "Stage")
	assert.NoDirExists(t, filepath.Join(f.plugin, "Binaries"))
}

func TestWorkflow_ResolveWithoutStaging(t *testing.T) {
	f := newWorkflowFixture(t, sdkTree{})
	stager := domainmocks.NewMockStager(t)

	settings, err := f.workflow(stager).Resolve(context.Background(), domain.ResolveArgs{
		Platforms: []m.Platform{m.PlatformWin64},
	})

	require.NoError(t, err)
	require.Len(t, settings, 1)
	assert.True(t, settings[0].Definitions[1].Enabled)
	require.Len(t, settings[0].RuntimeDependencies, 1)
	assert.Equal(t, m.Path("Binaries/Win64/api.dll"), settings[0].RuntimeDependencies[0].Staged)
	stager.AssertNotCalled(t, "Stage")
}

func TestWorkflow_ResolveRequiresPlatform(t *testing.T) {
	f := newWorkflowFixture(t, sdkTree{})

	_, err := f.workflow(nil).Resolve(context.Background(), domain.ResolveArgs{})

	require.Error(t, err)
}

func TestWorkflow_Probe(t *testing.T) {
	f := newWorkflowFixture(t, sdkTree{skipHeader: true})

	result, err := f.workflow(nil).Probe(context.Background(), m.PlatformWin64)

	require.NoError(t, err)
	assert.False(t, result.Satisfied())
	assert.Contains(t, f.out.String(), "unsatisfied")
	assert.Contains(t, f.out.String(), "header api.h")
}

func TestWorkflow_Scan(t *testing.T) {
	f := newWorkflowFixture(t, sdkTree{})

	descriptors, err := f.workflow(nil).Scan(context.Background(), domain.ScanArgs{Prefixes: []string{"OpenEXR", "Imath"}})

	require.NoError(t, err)
	require.Len(t, descriptors, 2)
	assert.Equal(t, "OpenEXR", descriptors[0].Name)
	assert.Equal(t, "Imath", descriptors[1].Name)
	assert.Contains(t, f.out.String(), "TOTAL MODULES 2")
}

func TestWorkflow_Stage(t *testing.T) {
	f := newWorkflowFixture(t, sdkTree{})

	report, err := f.workflow(nil).Stage(context.Background(), m.PlatformWin64)

	require.NoError(t, err)
	assert.Equal(t, 2, report.Copied())

	content, err := os.ReadFile(filepath.Join(f.plugin, "Binaries", "Win64", "api.dll"))
	require.NoError(t, err)
	assert.Equal(t, "runtime", string(content))
}

func TestWorkflow_StageSkipsUnsatisfiedProbe(t *testing.T) {
	f := newWorkflowFixture(t, sdkTree{skipLibDir: true})
	stager := domainmocks.NewMockStager(t)

	report, err := f.workflow(stager).Stage(context.Background(), m.PlatformWin64)

	require.NoError(t, err)
	assert.Empty(t, report.Outcomes)
	stager.AssertNotCalled(t, "Stage")
}
