package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"jsgen/internal/project"
	"jsgen/internal/trace"
)

var activeTracer trace.Tracer = trace.Nop

func registerTraceFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().String("trace", "", "trace output file (- for stderr; default from jsgen.toml)")
	cmd.PersistentFlags().String("trace-level", "", "trace level (off|error|phase|detail|debug; default from jsgen.toml)")
	cmd.PersistentFlags().String("trace-mode", "stream", "trace storage mode (stream|ring|both)")
	cmd.PersistentFlags().String("trace-format", "auto", "trace output format (auto|text|ndjson)")
	cmd.PersistentFlags().Int("trace-ring-size", 4096, "events kept in the trace ring buffer")
	cmd.PersistentFlags().Duration("trace-heartbeat", 0, "emit a heartbeat event at this interval (0 disables)")
}

// setupTracing inspects trace-related flags, falling back to the [trace]
// section of jsgen.toml, and installs the tracer on the command context.
// It returns a cleanup function and an error if initialization fails.
func setupTracing(cmd *cobra.Command) (func(), error) {
	flags := cmd.Root().PersistentFlags()

	traceOutput, err := flags.GetString("trace")
	if err != nil {
		return nil, fmt.Errorf("failed to get trace flag: %w", err)
	}
	levelStr, err := flags.GetString("trace-level")
	if err != nil {
		return nil, fmt.Errorf("failed to get trace-level flag: %w", err)
	}
	modeStr, err := flags.GetString("trace-mode")
	if err != nil {
		return nil, fmt.Errorf("failed to get trace-mode flag: %w", err)
	}
	formatStr, err := flags.GetString("trace-format")
	if err != nil {
		return nil, fmt.Errorf("failed to get trace-format flag: %w", err)
	}
	ringSize, err := flags.GetInt("trace-ring-size")
	if err != nil {
		return nil, fmt.Errorf("failed to get trace-ring-size flag: %w", err)
	}
	heartbeatInterval, err := flags.GetDuration("trace-heartbeat")
	if err != nil {
		return nil, fmt.Errorf("failed to get trace-heartbeat flag: %w", err)
	}

	if levelStr == "" || traceOutput == "" {
		cfg, _, cfgErr := loadProjectConfig()
		if cfgErr == nil {
			if levelStr == "" {
				levelStr = cfg.Trace.Level
			}
			if traceOutput == "" && levelStr != "off" {
				traceOutput = cfg.Trace.Output
			}
		}
	}
	if levelStr == "" {
		levelStr = "off"
	}

	level, err := trace.ParseLevel(levelStr)
	if err != nil {
		return nil, fmt.Errorf("invalid trace level: %w", err)
	}
	if level == trace.LevelOff {
		cmd.SetContext(trace.WithTracer(cmd.Context(), trace.Nop))
		return func() {}, nil
	}

	mode, err := trace.ParseMode(modeStr)
	if err != nil {
		return nil, fmt.Errorf("invalid trace mode: %w", err)
	}
	format, err := trace.ParseFormat(formatStr)
	if err != nil {
		return nil, fmt.Errorf("invalid trace format: %w", err)
	}

	tracer, err := trace.New(trace.Config{
		Level:      level,
		Mode:       mode,
		Format:     format,
		OutputPath: traceOutput,
		RingSize:   ringSize,
		Heartbeat:  heartbeatInterval,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create tracer: %w", err)
	}
	activeTracer = tracer

	ctx := trace.WithTracer(cmd.Context(), tracer)
	cmd.SetContext(ctx)
	cmd.Root().SetContext(ctx)

	var heartbeat *trace.Heartbeat
	if heartbeatInterval > 0 {
		heartbeat = trace.StartHeartbeat(tracer, heartbeatInterval)
	}

	cleanup := func() {
		if heartbeat != nil {
			heartbeat.Stop()
		}
		if err := tracer.Flush(); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "trace: flush error: %v\n", err)
		}
		if err := tracer.Close(); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "trace: close error: %v\n", err)
		}
		activeTracer = trace.Nop
	}
	return cleanup, nil
}

// ringOf returns the ring buffer behind tracer, if it keeps one.
func ringOf(tracer trace.Tracer) *trace.RingTracer {
	switch t := tracer.(type) {
	case *trace.RingTracer:
		return t
	case *trace.MultiTracer:
		return t.Ring()
	}
	return nil
}

// dumpTraceOnPanic writes the trace ring to stderr before re-panicking, so
// the events leading to a crash survive it.
func dumpTraceOnPanic() {
	r := recover()
	if r == nil {
		return
	}
	if ring := ringOf(activeTracer); ring != nil {
		fmt.Fprintf(os.Stderr, "trace: dumping %d buffered events (%s)\n", len(ring.Snapshot()), time.Now().Format(time.RFC3339))
		if err := ring.Dump(os.Stderr, trace.FormatText); err != nil {
			fmt.Fprintf(os.Stderr, "trace: dump failed: %v\n", err)
		}
	}
	panic(r)
}

// loadProjectConfig resolves jsgen.toml from the working directory.
func loadProjectConfig() (project.Config, string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return project.Config{}, "", err
	}
	return project.Resolve(wd)
}
