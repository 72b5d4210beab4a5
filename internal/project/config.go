package project

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"runtime"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
)

// Emission modes accepted by [emit].mode.
const (
	ModePretty  = "pretty"
	ModeCompact = "compact"
)

// Config is the decoded jsgen.toml.
type Config struct {
	Emit  EmitConfig  `toml:"emit"`
	Build BuildConfig `toml:"build"`
	Trace TraceConfig `toml:"trace"`
}

type EmitConfig struct {
	Mode    string `toml:"mode"`
	Indent  int    `toml:"indent"`
	OutDir  string `toml:"out_dir"`
	Reparse bool   `toml:"reparse"`
}

type BuildConfig struct {
	Jobs           int    `toml:"jobs"`
	MaxDiagnostics int    `toml:"max_diagnostics"`
	CacheDir       string `toml:"cache_dir"`
}

type TraceConfig struct {
	Level  string `toml:"level"`
	Output string `toml:"output"`
}

// ErrUnknownKeys reports keys in jsgen.toml that Config does not define.
var ErrUnknownKeys = errors.New("unknown configuration keys")

// DefaultConfig returns the settings used when no jsgen.toml exists.
func DefaultConfig() Config {
	return Config{
		Emit:  EmitConfig{Mode: ModePretty, Indent: 2},
		Build: BuildConfig{Jobs: runtime.GOMAXPROCS(0), MaxDiagnostics: 100},
		Trace: TraceConfig{Level: "off", Output: "-"},
	}
}

// LoadConfig decodes path over DefaultConfig. Keys absent from the file keep
// their defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		sort.Strings(keys)
		return Config{}, fmt.Errorf("%s: %w: %s", path, ErrUnknownKeys, strings.Join(keys, ", "))
	}
	if meta.IsDefined("emit", "mode") {
		cfg.Emit.Mode = strings.ToLower(strings.TrimSpace(cfg.Emit.Mode))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	switch c.Emit.Mode {
	case ModePretty, ModeCompact:
	default:
		return fmt.Errorf("invalid [emit].mode %q (expected: %s|%s)", c.Emit.Mode, ModePretty, ModeCompact)
	}
	if c.Emit.Indent < 0 || c.Emit.Indent > 16 {
		return fmt.Errorf("invalid [emit].indent %d (expected 0..16)", c.Emit.Indent)
	}
	if c.Build.Jobs < 0 {
		return fmt.Errorf("invalid [build].jobs %d", c.Build.Jobs)
	}
	if c.Build.MaxDiagnostics < 0 {
		return fmt.Errorf("invalid [build].max_diagnostics %d", c.Build.MaxDiagnostics)
	}
	return nil
}

// Resolve locates jsgen.toml from startDir and loads it, falling back to
// DefaultConfig. path is empty when no file was found.
func Resolve(startDir string) (cfg Config, path string, err error) {
	path, ok, err := FindConfig(startDir)
	if err != nil {
		return Config{}, "", err
	}
	if !ok {
		return DefaultConfig(), "", nil
	}
	cfg, err = LoadConfig(path)
	if err != nil {
		return Config{}, "", err
	}
	return cfg, path, nil
}

// WriteConfig encodes cfg to path, refusing to overwrite an existing file.
func WriteConfig(path string, cfg Config) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	} else if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to stat %s: %w", path, err)
	}
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return fmt.Errorf("%s: failed to encode TOML: %w", path, err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
