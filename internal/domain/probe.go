package domain

import (
	"context"
	"log/slog"

	"capres.dev/pkg/capres/internal/adapter"
	m "capres.dev/pkg/capres/internal/model"
)

// Layout describes where the SDK artifacts live below the SDK root.
//
//	<root>/<InterfaceDir>/<Header>
//	<root>/<LibDir>/<LibArch>/<ImportLibs...>
//	<root>/<RuntimeArch>/<RuntimeLib>
//
// Empty LibArch and RuntimeArch default to the target platform name.
type Layout struct {
	InterfaceDir string
	Header       string
	LibDir       string
	LibArch      string
	ImportLibs   []string
	RuntimeArch  string
	RuntimeLib   string
}

// DefaultLayout is the NVENC SDK layout.
func DefaultLayout() Layout {
	return Layout{
		InterfaceDir: "Interface",
		Header:       "nvEncodeAPI.h",
		LibDir:       "Lib",
		ImportLibs:   []string{"nvencodeapi.lib", "nvcuvid.lib"},
		RuntimeLib:   "nvEncodeAPI64.dll",
	}
}

func (l Layout) libArch(platform m.Platform) string {
	if l.LibArch != "" {
		return l.LibArch
	}

	return string(platform)
}

func (l Layout) runtimeArch(platform m.Platform) string {
	if l.RuntimeArch != "" {
		return l.RuntimeArch
	}

	return string(platform)
}

// Prober checks whether an SDK tree is complete.
type Prober interface {
	Probe(ctx context.Context, root m.Path, platform m.Platform) (m.ProbeResult, error)
}

type prober struct {
	fs     adapter.FSAdapter
	layout Layout
}

// NewProber creates a Prober for layout.
func NewProber(fs adapter.FSAdapter, layout Layout) Prober {
	return &prober{fs: fs, layout: layout}
}

type expectedFile struct {
	role m.Role
	path m.Path
}

// artifactDir is a directory of the layout together with the files it must hold.
type artifactDir struct {
	label string
	path  m.Path
	files []expectedFile
}

// Probe verifies the layout in a fixed order. A missing root is reported as a
// single entry. A missing subdirectory is reported once, without entries for
// the files it would have held. Files inside an existing directory are all
// checked, so every absent sibling is listed.
func (p *prober) Probe(ctx context.Context, root m.Path, platform m.Platform) (m.ProbeResult, error) {
	absRoot, err := p.fs.Abs(root)
	if err != nil {
		return m.ProbeResult{}, &ProbeError{Path: root, Err: err}
	}

	present, err := p.exists(absRoot, true)
	if err != nil {
		return m.ProbeResult{}, err
	}

	if !present {
		slog.Debug("sdk root missing", "root", absRoot, "platform", platform)
		return m.Unsatisfied(m.MissingArtifact{Role: m.RoleDirectory, Label: "root", Path: absRoot}), nil
	}

	var (
		artifacts []m.ResolvedPath
		missing   []m.MissingArtifact
	)

	for _, dir := range p.expectedDirs(absRoot, platform) {
		if err := ctx.Err(); err != nil {
			return m.ProbeResult{}, err
		}

		present, err := p.exists(dir.path, true)
		if err != nil {
			return m.ProbeResult{}, err
		}

		if !present {
			missing = append(missing, m.MissingArtifact{Role: m.RoleDirectory, Label: dir.label, Path: dir.path})
			continue
		}

		for _, file := range dir.files {
			present, err := p.exists(file.path, false)
			if err != nil {
				return m.ProbeResult{}, err
			}

			if !present {
				missing = append(missing, m.MissingArtifact{Role: file.role, Path: file.path})
				continue
			}

			artifacts = append(artifacts, m.ResolvedPath{Path: file.path, Role: file.role})
		}
	}

	if len(missing) > 0 {
		slog.Debug("sdk incomplete", "root", absRoot, "platform", platform, "missing", len(missing))
		return m.Unsatisfied(missing...), nil
	}

	slog.Debug("sdk complete", "root", absRoot, "platform", platform, "artifacts", len(artifacts))

	return m.Satisfied(artifacts...), nil
}

func (p *prober) expectedDirs(root m.Path, platform m.Platform) []artifactDir {
	interfaceDir := p.fs.JoinPath(string(root), p.layout.InterfaceDir)
	libDir := p.fs.JoinPath(string(root), p.layout.LibDir, p.layout.libArch(platform))
	runtimeDir := p.fs.JoinPath(string(root), p.layout.runtimeArch(platform))

	libs := make([]expectedFile, 0, len(p.layout.ImportLibs))
	for _, lib := range p.layout.ImportLibs {
		libs = append(libs, expectedFile{role: m.RoleImportLibrary, path: p.fs.JoinPath(string(libDir), lib)})
	}

	return []artifactDir{
		{
			label: "interface",
			path:  interfaceDir,
			files: []expectedFile{{role: m.RoleHeader, path: p.fs.JoinPath(string(interfaceDir), p.layout.Header)}},
		},
		{label: "lib", path: libDir, files: libs},
		{
			label: "runtime",
			path:  runtimeDir,
			files: []expectedFile{{role: m.RoleRuntimeLibrary, path: p.fs.JoinPath(string(runtimeDir), p.layout.RuntimeLib)}},
		},
	}
}

// exists reports whether path is present with the expected kind. A path of
// the wrong kind counts as absent.
func (p *prober) exists(path m.Path, wantDir bool) (bool, error) {
	info, err := p.fs.FileInfo(path)
	if err != nil {
		if adapter.IsNotExist(err) {
			return false, nil
		}

		return false, &ProbeError{Path: path, Err: err}
	}

	return info.IsDir() == wantDir, nil
}
