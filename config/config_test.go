package config

import (
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/google/go-cmp/cmp"
)

// isolate points config lookups at an empty temp directory and clears overrides
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("XDG_CONFIG_HOME", dir)
	for _, name := range []string{EnvConfigPath, EnvAudioEnabled, EnvMasterVolume, EnvColorMode, EnvMaxLength} {
		t.Setenv(name, "")
	}
	return dir
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
}

func TestLoadDefaultsWhenNoFile(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Errorf("Defaults mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadExplicitMissingFile(t *testing.T) {
	dir := isolate(t)

	if _, err := Load(filepath.Join(dir, "nope.toml")); err == nil {
		t.Error("Expected error for missing explicit config")
	}

	t.Setenv(EnvConfigPath, filepath.Join(dir, "also-missing.toml"))
	if _, err := Load(""); err == nil {
		t.Error("Expected error for missing PANGRAM_CONFIG file")
	}
}

func TestLoadFromDefaultPath(t *testing.T) {
	isolate(t)
	path, err := DefaultPath()
	if err != nil {
		t.Skipf("no user config dir: %v", err)
	}
	writeFile(t, path, `
max_length = 500

[titles]
alphabet = "Letters"

[colors]
complete = "#00ff88"
`)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.MaxLength != 500 {
		t.Errorf("Expected max_length 500, got %d", cfg.MaxLength)
	}
	if cfg.Titles.Alphabet != "Letters" {
		t.Errorf("Expected alphabet title override, got %q", cfg.Titles.Alphabet)
	}
	// Unset keys keep defaults
	if cfg.Titles.Input != Default().Titles.Input {
		t.Errorf("Input title should keep default, got %q", cfg.Titles.Input)
	}
	if cfg.Colors.Complete != "#00ff88" {
		t.Errorf("Expected complete color override, got %q", cfg.Colors.Complete)
	}
}

func TestLoadFullFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "custom.toml")
	writeFile(t, path, `
color_mode = "256"
border = "double"

[audio]
enabled = false
master_volume = 80
sample_rate = 48000

[keys]
ctrl_q = "quit"
left = "none"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	want := Default()
	want.ColorMode = Color256
	want.Border = BorderDouble
	want.Audio = Audio{Enabled: false, MasterVolume: 80, SampleRate: 48000}
	want.Keys = map[string]string{"ctrl_q": "quit", "left": "none"}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("Config mismatch (-want +got):\n%s", diff)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "c.toml")
	writeFile(t, path, "[audio]\nenabled = true\nmaster_volume = 10\n")

	t.Setenv(EnvAudioEnabled, "false")
	t.Setenv(EnvMasterVolume, "250")
	t.Setenv(EnvColorMode, " TrueColor ")
	t.Setenv(EnvMaxLength, "64")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Audio.Enabled {
		t.Error("Expected env to disable audio")
	}
	if cfg.Audio.MasterVolume != 100 {
		t.Errorf("Expected clamped volume 100, got %d", cfg.Audio.MasterVolume)
	}
	if cfg.ColorMode != ColorTrueColor {
		t.Errorf("Expected truecolor, got %q", cfg.ColorMode)
	}
	if cfg.MaxLength != 64 {
		t.Errorf("Expected max length 64, got %d", cfg.MaxLength)
	}
}

func TestMalformedEnvIgnored(t *testing.T) {
	isolate(t)
	t.Setenv(EnvAudioEnabled, "maybe")
	t.Setenv(EnvMasterVolume, "loud")
	t.Setenv(EnvMaxLength, "-3")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Errorf("Malformed env changed config (-want +got):\n%s", diff)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"syntax", "color_mode = ", "config"},
		{"color mode", `color_mode = "16"`, "color_mode"},
		{"negative length", "max_length = -1", "max_length"},
		{"border", `border = "dotted"`, "border"},
		{"volume", "[audio]\nmaster_volume = 101", "master_volume"},
		{"color name", "[colors]\ntext = \"octarine\"", "colors.text"},
		{"short hex", "[colors]\ntitle = \"#fff\"", "colors.title"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := isolate(t)
			path := filepath.Join(dir, "bad.toml")
			writeFile(t, path, tt.content)

			_, err := Load(path)
			if err == nil {
				t.Fatal("Expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Error %q should mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    tcell.Color
		wantErr bool
	}{
		{"red", tcell.ColorRed, false},
		{" Green ", tcell.ColorGreen, false},
		{"", tcell.ColorDefault, false},
		{"default", tcell.ColorDefault, false},
		{"#ff0000", tcell.NewRGBColor(255, 0, 0), false},
		{"#00FF88", tcell.NewRGBColor(0, 255, 136), false},
		{"#zzzzzz", tcell.ColorDefault, true},
		{"#abc", tcell.ColorDefault, true},
		{"not-a-color", tcell.ColorDefault, true},
	}

	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseColor(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseColor(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

// TestImportsStayLight keeps config free of the audio stack so render and engine build without cgo
func TestImportsStayLight(t *testing.T) {
	files, err := filepath.Glob("*.go")
	if err != nil {
		t.Fatal(err)
	}
	fset := token.NewFileSet()
	for _, name := range files {
		if strings.HasSuffix(name, "_test.go") {
			continue
		}
		f, err := parser.ParseFile(fset, name, nil, parser.ImportsOnly)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		for _, imp := range f.Imports {
			path, _ := strconv.Unquote(imp.Path.Value)
			if strings.HasSuffix(path, "/pangram/audio") || strings.HasPrefix(path, "github.com/gopxl/") {
				t.Errorf("%s imports %s", name, path)
			}
		}
	}
}
