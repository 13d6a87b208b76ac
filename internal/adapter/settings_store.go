package adapter

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	m "capres.dev/pkg/capres/internal/model"
)

// Format selects the serialisation of emitted build settings.
type Format string

// Supported formats.
const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// ParseFormat validates a user supplied format name.
func ParseFormat(value string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	}

	return "", fmt.Errorf("unsupported output format %q (want yaml or json)", value)
}

// FormatForPath picks a format from the file extension, falling back to def.
func FormatForPath(path m.Path, def Format) Format {
	switch strings.ToLower(filepath.Ext(string(path))) {
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	}

	return def
}

// SettingsStore emits resolved build settings to the surrounding build system.
type SettingsStore interface {
	Encode(w io.Writer, format Format, settings []m.BuildSettings) error
	Save(path m.Path, format Format, settings []m.BuildSettings) error
}

type settingsStore struct{}

// NewSettingsStore creates a SettingsStore.
func NewSettingsStore() SettingsStore {
	return &settingsStore{}
}

type settingsDocument struct {
	Passes []m.BuildSettings `json:"passes" yaml:"passes"`
}

// Encode writes settings to w.
func (s *settingsStore) Encode(w io.Writer, format Format, settings []m.BuildSettings) error {
	doc := settingsDocument{Passes: settings}

	switch format {
	case FormatJSON:
		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return fmt.Errorf("encode json: %w", err)
		}

		if _, err := w.Write(append(data, '\n')); err != nil {
			return err
		}

		return nil
	case FormatYAML, "":
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)

		if err := encoder.Encode(doc); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}

		return encoder.Close()
	}

	return fmt.Errorf("unsupported output format %q", format)
}

// Save writes settings to path, creating parent directories.
func (s *settingsStore) Save(path m.Path, format Format, settings []m.BuildSettings) error {
	if err := os.MkdirAll(filepath.Dir(string(path)), 0o755); err != nil {
		return fmt.Errorf("create settings directory: %w", err)
	}

	// #nosec G304 - path is the user-selected output file
	f, err := os.Create(string(path))
	if err != nil {
		return fmt.Errorf("create settings file: %w", err)
	}

	if err := s.Encode(f, format, settings); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}
