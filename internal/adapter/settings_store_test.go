package adapter

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	m "capres.dev/pkg/capres/internal/model"
)

func sampleSettings() []m.BuildSettings {
	return []m.BuildSettings{{
		Platform:           m.PlatformWin64,
		Definitions:        []m.Definition{{Name: "WITH_NVENC", Enabled: true}, {Name: "WITH_OPENEXR", Enabled: false}},
		PublicIncludePaths: []m.Path{"/sdk/Interface"},
		LinkInputs:         []m.Path{"/sdk/Lib/Win64/a.lib"},
		DelayLoads:         []string{"api.dll"},
		RuntimeDependencies: []m.RuntimeDependency{
			{Source: "/sdk/Win64/api.dll", Staged: "Binaries/Win64/api.dll"},
		},
		Staged: []m.StageOutcome{{Destination: "/proj/Binaries/Win64", Status: m.StageCopied}},
	}}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"", FormatYAML, false},
		{"yaml", FormatYAML, false},
		{"YML", FormatYAML, false},
		{"json", FormatJSON, false},
		{"toml", "", true},
	}

	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if (err != nil) != tt.wantErr {
			t.Fatalf("ParseFormat(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}

		if got != tt.want {
			t.Fatalf("ParseFormat(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatForPath(t *testing.T) {
	if got := FormatForPath("out/settings.json", FormatYAML); got != FormatJSON {
		t.Fatalf("FormatForPath(json) = %q", got)
	}

	if got := FormatForPath("out/settings.txt", FormatJSON); got != FormatJSON {
		t.Fatalf("FormatForPath(txt) = %q, want default", got)
	}
}

func TestSettingsStore_EncodeYAML(t *testing.T) {
	var buf bytes.Buffer
	if err := NewSettingsStore().Encode(&buf, FormatYAML, sampleSettings()); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	out := buf.String()
	for _, want := range []string{"WITH_NVENC=1", "WITH_OPENEXR=0", "status: copied", "staged: Binaries/Win64/api.dll"} {
		if !strings.Contains(out, want) {
			t.Fatalf("Encode() output missing %q:\n%s", want, out)
		}
	}

	var decoded map[string]any
	if err := yaml.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid yaml: %v", err)
	}
}

func TestSettingsStore_SaveJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "settings.json")

	if err := NewSettingsStore().Save(m.Path(path), FormatJSON, sampleSettings()); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read saved settings: %v", err)
	}

	var doc struct {
		Passes []struct {
			Platform    string   `json:"platform"`
			Definitions []string `json:"definitions"`
		} `json:"passes"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("saved settings are not valid json: %v", err)
	}

	if len(doc.Passes) != 1 || doc.Passes[0].Platform != "Win64" {
		t.Fatalf("unexpected passes: %+v", doc.Passes)
	}

	if doc.Passes[0].Definitions[0] != "WITH_NVENC=1" {
		t.Fatalf("definitions = %v", doc.Passes[0].Definitions)
	}
}
