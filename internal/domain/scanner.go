package domain

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"capres.dev/pkg/capres/internal/adapter"
	m "capres.dev/pkg/capres/internal/model"
)

// Build descriptor defaults.
const (
	DefaultDescriptorSuffix = ".Build.cs"
	DefaultModuleBase       = "ModuleRules"
)

const maxDescriptorLine = 1024 * 1024

// Scanner discovers module identifiers declared in third-party build descriptors.
type Scanner interface {
	// Discover returns every descriptor below root whose file name starts
	// with prefix, paired with the module it declares.
	Discover(ctx context.Context, root m.Path, prefix string) ([]m.ModuleDescriptor, error)
	// Scan returns the deduplicated identifiers found by Discover.
	Scan(ctx context.Context, root m.Path, prefix string) (m.ModuleSet, error)
}

type scanner struct {
	fs          adapter.FSAdapter
	suffix      string
	declaration *regexp.Regexp
}

// NewScanner creates a Scanner for descriptors ending in suffix that declare
// a class deriving from base. Empty values fall back to the defaults.
func NewScanner(fs adapter.FSAdapter, suffix, base string) Scanner {
	if suffix == "" {
		suffix = DefaultDescriptorSuffix
	}

	if base == "" {
		base = DefaultModuleBase
	}

	return &scanner{
		fs:          fs,
		suffix:      suffix,
		declaration: declarationPattern(base),
	}
}

// declarationPattern matches `class <Identifier> : <base>` lines, tolerating
// leading C# modifiers such as `public` or `sealed`.
func declarationPattern(base string) *regexp.Regexp {
	return regexp.MustCompile(`^\s*(?:(?:public|internal|sealed|partial|abstract)\s+)*class\s+([A-Za-z0-9_]+)\s*:\s*` +
		regexp.QuoteMeta(base) + `\b`)
}

func (s *scanner) Discover(ctx context.Context, root m.Path, prefix string) ([]m.ModuleDescriptor, error) {
	var found []m.ModuleDescriptor

	err := s.fs.Walk(root, true, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			if path == string(root) && adapter.IsNotExist(err) {
				return filepath.SkipDir
			}

			return &ScanError{Path: m.Path(path), Err: err}
		}

		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		if info.IsDir() || !s.matches(info.Name(), prefix) {
			return nil
		}

		name, err := s.moduleName(m.Path(path))
		if err != nil {
			return err
		}

		if name == "" {
			slog.Debug("descriptor declares no module", "file", path)
			return nil
		}

		found = append(found, m.ModuleDescriptor{Name: name, File: m.Path(path)})

		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Debug("third-party scan finished", "root", root, "prefix", prefix, "descriptors", len(found))

	return found, nil
}

func (s *scanner) Scan(ctx context.Context, root m.Path, prefix string) (m.ModuleSet, error) {
	descriptors, err := s.Discover(ctx, root, prefix)
	if err != nil {
		return nil, err
	}

	set := m.NewModuleSet()
	for _, d := range descriptors {
		set.Add(d.Name)
	}

	return set, nil
}

func (s *scanner) matches(name, prefix string) bool {
	return strings.HasPrefix(name, prefix) && strings.HasSuffix(name, s.suffix)
}

// moduleName returns the identifier from the first matching line, or "" when
// no line matches.
func (s *scanner) moduleName(path m.Path) (string, error) {
	f, err := s.fs.Open(path)
	if err != nil {
		return "", &ScanError{Path: path, Err: err}
	}

	defer func() { _ = f.Close() }()

	lines := bufio.NewScanner(f)
	lines.Buffer(make([]byte, 0, 64*1024), maxDescriptorLine)

	for lines.Scan() {
		if match := s.declaration.FindStringSubmatch(lines.Text()); match != nil {
			return match[1], nil
		}
	}

	if err := lines.Err(); err != nil {
		return "", &ScanError{Path: path, Err: fmt.Errorf("read descriptor: %w", err)}
	}

	return "", nil
}
