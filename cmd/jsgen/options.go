package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"jsgen/internal/driver"
	"jsgen/internal/format"
	"jsgen/internal/project"
)

// registerEmitFlags adds the flags that override the [emit] and [build]
// sections of jsgen.toml.
func registerEmitFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("compact", false, "emit compact output (overrides [emit].mode)")
	cmd.Flags().Int("indent", 0, "indent width for pretty output (overrides [emit].indent)")
	cmd.Flags().Bool("reparse", false, "verify emitted code with a JavaScript parser")
	cmd.Flags().Int("jobs", 0, "max parallel units (0 = from jsgen.toml)")
	cmd.Flags().String("diagnostics", "pretty", "diagnostics format (pretty|json)")
	cmd.Flags().Bool("with-notes", false, "include diagnostic notes in output")
}

// emitSettings merges jsgen.toml with command-line flags.
type emitSettings struct {
	opts        driver.EmitOptions
	configPath  string
	diagFormat  string
	withNotes   bool
	cacheDir    string
	showTimings bool
	quiet       bool
}

func resolveEmitSettings(cmd *cobra.Command) (emitSettings, error) {
	cfg, cfgPath, err := loadProjectConfig()
	if err != nil {
		return emitSettings{}, err
	}
	baseDir := "."
	if cfgPath != "" {
		baseDir = filepath.Dir(cfgPath)
	}

	flags := cmd.Flags()
	if flags.Changed("compact") {
		compact, _ := flags.GetBool("compact")
		if compact {
			cfg.Emit.Mode = project.ModeCompact
		} else {
			cfg.Emit.Mode = project.ModePretty
		}
	}
	if flags.Changed("indent") {
		cfg.Emit.Indent, _ = flags.GetInt("indent")
	}
	if flags.Changed("reparse") {
		cfg.Emit.Reparse, _ = flags.GetBool("reparse")
	}
	if flags.Changed("jobs") {
		cfg.Build.Jobs, _ = flags.GetInt("jobs")
	}
	if flags.Lookup("out-dir") != nil && flags.Changed("out-dir") {
		cfg.Emit.OutDir, _ = flags.GetString("out-dir")
	} else if cfg.Emit.OutDir != "" && !filepath.IsAbs(cfg.Emit.OutDir) {
		cfg.Emit.OutDir = filepath.Join(baseDir, cfg.Emit.OutDir)
	}
	if n, _ := cmd.Root().PersistentFlags().GetInt("max-diagnostics"); n > 0 {
		cfg.Build.MaxDiagnostics = n
	}
	if err := cfg.Validate(); err != nil {
		return emitSettings{}, err
	}

	s := emitSettings{configPath: cfgPath}
	s.diagFormat, _ = flags.GetString("diagnostics")
	switch s.diagFormat {
	case "pretty", "json":
	default:
		return emitSettings{}, fmt.Errorf("unsupported diagnostics format %q (must be pretty or json)", s.diagFormat)
	}
	s.withNotes, _ = flags.GetBool("with-notes")
	s.showTimings, _ = cmd.Root().PersistentFlags().GetBool("timings")
	s.quiet, _ = cmd.Root().PersistentFlags().GetBool("quiet")
	if cfg.Build.CacheDir != "" && !filepath.IsAbs(cfg.Build.CacheDir) {
		cfg.Build.CacheDir = filepath.Join(baseDir, cfg.Build.CacheDir)
	}
	s.cacheDir = cfg.Build.CacheDir

	s.opts = driver.EmitOptions{
		Format: format.Options{
			Compact:     cfg.Emit.Mode == project.ModeCompact,
			IndentWidth: cfg.Emit.Indent,
		},
		OutDir:         cfg.Emit.OutDir,
		Reparse:        cfg.Emit.Reparse,
		Jobs:           cfg.Build.Jobs,
		MaxDiagnostics: cfg.Build.MaxDiagnostics,
	}
	return s, nil
}
