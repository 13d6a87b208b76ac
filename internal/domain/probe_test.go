package domain_test

import (
	"context"
	"errors"
	iofs "io/fs"
	"path/filepath"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"capres.dev/pkg/capres/internal/adapter"
	adaptermocks "capres.dev/pkg/capres/internal/adapter/mocks"
	"capres.dev/pkg/capres/internal/domain"
	m "capres.dev/pkg/capres/internal/model"
)

func newTestProber() domain.Prober {
	return domain.NewProber(adapter.NewLocalFSAdapter(), testLayout())
}

func TestProbe_CompleteLayout(t *testing.T) {
	root := filepath.Join(t.TempDir(), "sdk")
	writeSDK(t, root, sdkTree{})

	result, err := newTestProber().Probe(context.Background(), m.Path(root), m.PlatformWin64)
	require.NoError(t, err)
	require.True(t, result.Satisfied())

	artifacts := result.Artifacts()
	require.Len(t, artifacts, 4)
	assert.Equal(t, m.ResolvedPath{Path: m.Path(filepath.Join(root, "Interface", "api.h")), Role: m.RoleHeader}, artifacts[0])
	assert.Equal(t, m.ResolvedPath{Path: m.Path(filepath.Join(root, "Lib", "Win64", "a.lib")), Role: m.RoleImportLibrary}, artifacts[1])
	assert.Equal(t, m.ResolvedPath{Path: m.Path(filepath.Join(root, "Lib", "Win64", "b.lib")), Role: m.RoleImportLibrary}, artifacts[2])
	assert.Equal(t, m.ResolvedPath{Path: m.Path(filepath.Join(root, "Win64", "api.dll")), Role: m.RoleRuntimeLibrary}, artifacts[3])
	assert.Empty(t, result.Missing())
}

func TestProbe_MissingRootReportsSingleEntry(t *testing.T) {
	root := filepath.Join(t.TempDir(), "sdk")

	result, err := newTestProber().Probe(context.Background(), m.Path(root), m.PlatformWin64)
	require.NoError(t, err)
	require.False(t, result.Satisfied())

	missing := result.Missing()
	require.Len(t, missing, 1)
	assert.Equal(t, m.RoleDirectory, missing[0].Role)
	assert.Equal(t, "root", missing[0].Label)
	assert.Equal(t, "root directory at "+root, missing[0].String())
}

func TestProbe_OnlyRuntimeLibraryMissing(t *testing.T) {
	root := filepath.Join(t.TempDir(), "sdk")
	writeSDK(t, root, sdkTree{skipDLL: true})

	result, err := newTestProber().Probe(context.Background(), m.Path(root), m.PlatformWin64)
	require.NoError(t, err)

	missing := result.Missing()
	require.Len(t, missing, 1)
	dll := filepath.Join(root, "Win64", "api.dll")
	assert.Equal(t, m.RoleRuntimeLibrary, missing[0].Role)
	assert.Equal(t, "runtime library api.dll at "+dll, missing[0].String())
}

func TestProbe_MissingDirectoryDoesNotCascade(t *testing.T) {
	root := filepath.Join(t.TempDir(), "sdk")
	writeSDK(t, root, sdkTree{skipLibDir: true})

	result, err := newTestProber().Probe(context.Background(), m.Path(root), m.PlatformWin64)
	require.NoError(t, err)

	missing := result.Missing()
	require.Len(t, missing, 1)
	assert.Equal(t, "lib directory at "+filepath.Join(root, "Lib", "Win64"), missing[0].String())
}

func TestProbe_CollectsAllMissingInFixedOrder(t *testing.T) {
	root := filepath.Join(t.TempDir(), "sdk")
	writeSDK(t, root, sdkTree{skipInterface: true, skipLibs: []string{"a.lib", "b.lib"}, skipDLL: true})

	result, err := newTestProber().Probe(context.Background(), m.Path(root), m.PlatformWin64)
	require.NoError(t, err)

	var got []string
	for _, missing := range result.Missing() {
		got = append(got, missing.String())
	}

	assert.Equal(t, []string{
		"interface directory at " + filepath.Join(root, "Interface"),
		"import library a.lib at " + filepath.Join(root, "Lib", "Win64", "a.lib"),
		"import library b.lib at " + filepath.Join(root, "Lib", "Win64", "b.lib"),
		"runtime library api.dll at " + filepath.Join(root, "Win64", "api.dll"),
	}, got)
}

func TestProbe_WrongKindCountsAsMissing(t *testing.T) {
	root := filepath.Join(t.TempDir(), "sdk")
	writeSDK(t, root, sdkTree{skipHeader: true})
	mkdir(t, filepath.Join(root, "Interface", "api.h"))

	result, err := newTestProber().Probe(context.Background(), m.Path(root), m.PlatformWin64)
	require.NoError(t, err)

	missing := result.Missing()
	require.Len(t, missing, 1)
	assert.Equal(t, m.RoleHeader, missing[0].Role)
}

func TestProbe_ArchOverrides(t *testing.T) {
	root := filepath.Join(t.TempDir(), "sdk")
	writeFile(t, filepath.Join(root, "Interface", "api.h"), "")
	writeFile(t, filepath.Join(root, "Lib", "x64", "a.lib"), "")
	writeFile(t, filepath.Join(root, "Lib", "x64", "b.lib"), "")
	writeFile(t, filepath.Join(root, "bin", "api.dll"), "")

	layout := testLayout()
	layout.LibArch = "x64"
	layout.RuntimeArch = "bin"

	result, err := domain.NewProber(adapter.NewLocalFSAdapter(), layout).Probe(context.Background(), m.Path(root), m.PlatformWin64)
	require.NoError(t, err)
	assert.True(t, result.Satisfied())
}

func TestProbe_UnexpectedErrorAborts(t *testing.T) {
	fs := adaptermocks.NewMockFSAdapter(t)

	fs.EXPECT().Abs(m.Path("/sdk")).Return(m.Path("/sdk"), nil)
	fs.EXPECT().FileInfo(m.Path("/sdk")).Return(nil, &iofs.PathError{Op: "stat", Path: "/sdk", Err: syscall.EIO})

	_, err := domain.NewProber(fs, testLayout()).Probe(context.Background(), "/sdk", m.PlatformWin64)
	require.Error(t, err)

	var probeErr *domain.ProbeError
	require.ErrorAs(t, err, &probeErr)
	assert.Equal(t, m.Path("/sdk"), probeErr.Path)
	assert.True(t, errors.Is(err, syscall.EIO))
}

func TestProbe_CancelledContext(t *testing.T) {
	root := filepath.Join(t.TempDir(), "sdk")
	writeSDK(t, root, sdkTree{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestProber().Probe(ctx, m.Path(root), m.PlatformWin64)
	require.ErrorIs(t, err, context.Canceled)
}
