package project

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
}

func TestFindConfigWalksUp(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, ConfigFileName), "")
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}
	path, ok, err := FindConfig(nested)
	if err != nil || !ok {
		t.Fatalf("config not found: ok=%v err=%v", ok, err)
	}
	if path != filepath.Join(root, ConfigFileName) {
		t.Fatalf("unexpected path %s", path)
	}
	dir, ok, err := FindProjectRoot(nested)
	if err != nil || !ok || dir != root {
		t.Fatalf("unexpected root %s (ok=%v err=%v)", dir, ok, err)
	}
}

func TestLoadConfigKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), ConfigFileName)
	writeFile(t, path, `
[emit]
mode = "Compact"
reparse = true

[trace]
level = "phase"
`)
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	def := DefaultConfig()
	if cfg.Emit.Mode != ModeCompact || !cfg.Emit.Reparse {
		t.Fatalf("emit section not applied: %+v", cfg.Emit)
	}
	if cfg.Emit.Indent != def.Emit.Indent || cfg.Build != def.Build || cfg.Trace.Output != def.Trace.Output {
		t.Fatalf("defaults lost: %+v", cfg)
	}
	if cfg.Trace.Level != "phase" {
		t.Fatalf("trace level not applied: %q", cfg.Trace.Level)
	}
}

func TestLoadConfigRejectsUnknownKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), ConfigFileName)
	writeFile(t, path, "[emit]\nminify = true\n")
	_, err := LoadConfig(path)
	if !errors.Is(err, ErrUnknownKeys) || !strings.Contains(err.Error(), "emit.minify") {
		t.Fatalf("want unknown key error naming emit.minify, got %v", err)
	}
}

func TestLoadConfigValidates(t *testing.T) {
	tests := map[string]string{
		"mode":   "[emit]\nmode = \"ugly\"\n",
		"indent": "[emit]\nindent = -1\n",
		"jobs":   "[build]\njobs = -2\n",
		"syntax": "[emit\n",
	}
	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), ConfigFileName)
			writeFile(t, path, content)
			if _, err := LoadConfig(path); err == nil {
				t.Fatalf("expected an error")
			}
		})
	}
}

func TestResolveWithoutConfig(t *testing.T) {
	cfg, path, err := Resolve(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if path != "" {
		// a jsgen.toml above the temp dir would be picked up
		t.Skipf("found %s above the temporary directory", path)
	}
	if cfg != DefaultConfig() {
		t.Fatalf("want defaults, got %+v", cfg)
	}
}

func TestWriteConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), ConfigFileName)
	want := DefaultConfig()
	want.Emit.OutDir = "dist"
	want.Build.Jobs = 3
	if err := WriteConfig(path, want); err != nil {
		t.Fatal(err)
	}
	got, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if got != want {
		t.Fatalf("want %+v, got %+v", want, got)
	}
	if err := WriteConfig(path, want); err == nil {
		t.Fatalf("overwriting should fail")
	}
}
