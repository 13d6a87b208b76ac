package domain_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"capres.dev/pkg/capres/internal/domain"
)

// sdkTree describes which parts of a test SDK layout to create.
type sdkTree struct {
	skipRoot      bool
	skipInterface bool
	skipHeader    bool
	skipLibDir    bool
	skipLibs      []string
	skipRuntime   bool
	skipDLL       bool
}

func testLayout() domain.Layout {
	return domain.Layout{
		InterfaceDir: "Interface",
		Header:       "api.h",
		LibDir:       "Lib",
		ImportLibs:   []string{"a.lib", "b.lib"},
		RuntimeLib:   "api.dll",
	}
}

// writeSDK builds <root>/Interface/api.h, <root>/Lib/Win64/{a,b}.lib and
// <root>/Win64/api.dll minus whatever tree excludes.
func writeSDK(t *testing.T, root string, tree sdkTree) {
	t.Helper()

	if tree.skipRoot {
		return
	}

	mkdir(t, root)

	if !tree.skipInterface {
		mkdir(t, filepath.Join(root, "Interface"))

		if !tree.skipHeader {
			writeFile(t, filepath.Join(root, "Interface", "api.h"), "#pragma once\n")
		}
	}

	if !tree.skipLibDir {
		libDir := filepath.Join(root, "Lib", "Win64")
		mkdir(t, libDir)

		for _, lib := range []string{"a.lib", "b.lib"} {
			if contains(tree.skipLibs, lib) {
				continue
			}

			writeFile(t, filepath.Join(libDir, lib), "lib")
		}
	}

	if !tree.skipRuntime {
		mkdir(t, filepath.Join(root, "Win64"))

		if !tree.skipDLL {
			writeFile(t, filepath.Join(root, "Win64", "api.dll"), "runtime")
		}
	}
}

func mkdir(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(path, 0o755))
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func setModTime(t *testing.T, path string, ts time.Time) {
	t.Helper()
	require.NoError(t, os.Chtimes(path, ts, ts))
}

func modTime(t *testing.T, path string) time.Time {
	t.Helper()

	info, err := os.Stat(path)
	require.NoError(t, err)

	return info.ModTime()
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}

	return false
}
