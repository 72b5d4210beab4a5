package driver

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"time"

	"fortio.org/safecast"
	"golang.org/x/sync/errgroup"

	"jsgen/internal/ast"
	"jsgen/internal/astio"
	"jsgen/internal/check"
	"jsgen/internal/diag"
	"jsgen/internal/format"
	"jsgen/internal/observ"
	"jsgen/internal/project"
	"jsgen/internal/trace"
)

// ErrCheckFailed marks a unit whose tree had error diagnostics.
var ErrCheckFailed = errors.New("tree check failed")

// EmitOptions configure EmitPaths.
type EmitOptions struct {
	Format         format.Options
	OutDir         string // empty writes next to each input
	Reparse        bool   // verify output with a JavaScript parser
	NoWrite        bool   // stop after emission, for check runs
	Jobs           int    // <= 0 uses GOMAXPROCS
	MaxDiagnostics int
	Cache          *DiskCache   // optional
	Progress       ProgressSink // optional
}

// EmitResult is the outcome of one unit. Results keep the order of the
// collected inputs.
type EmitResult struct {
	Path    string
	OutPath string
	Output  []byte
	Bag     *diag.Bag
	Err     error
	Cached  bool
	Timing  observ.Report
}

// EmitPaths emits every document found under paths. Units run in parallel,
// each with its own program and scope arena. A failing unit reports through
// its result; the returned error is for collection failures and
// cancellation.
func EmitPaths(ctx context.Context, paths []string, opts EmitOptions) ([]EmitResult, error) {
	inputs, err := CollectInputs(paths)
	if err != nil {
		return nil, err
	}
	return EmitInputs(ctx, inputs, opts)
}

// EmitInputs is EmitPaths over already collected inputs.
func EmitInputs(ctx context.Context, inputs []Input, opts EmitOptions) ([]EmitResult, error) {
	if len(inputs) == 0 {
		return nil, nil
	}
	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	if opts.MaxDiagnostics <= 0 {
		opts.MaxDiagnostics = 100
	}
	tracer := trace.FromContext(ctx)
	batch := trace.Begin(tracer, trace.ScopeDriver, "emit-batch", trace.SpanFromContext(ctx)).
		WithExtra("units", strconv.Itoa(len(inputs))).
		WithExtra("jobs", strconv.Itoa(jobs))
	defer batch.End("")

	for _, in := range inputs {
		notify(opts.Progress, Event{File: in.Path, Status: StatusQueued})
	}
	results := make([]EmitResult, len(inputs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(inputs)))
	for i, in := range inputs {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			// index i is owned by this goroutine
			results[i] = emitUnit(tracer, batch.ID(), in, opts)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}

type unit struct {
	in     Input
	opts   EmitOptions
	tracer trace.Tracer
	span   uint64
	timer  *observ.Timer
	res    *EmitResult
}

// phase runs fn as a timed, traced step.
func (u *unit) phase(name Stage, fn func() (string, error)) error {
	notify(u.opts.Progress, Event{File: u.in.Path, Stage: name, Status: StatusWorking})
	idx := u.timer.Begin(string(name))
	span := trace.Begin(u.tracer, trace.ScopePhase, string(name), u.span)
	note, err := fn()
	if err != nil && note == "" {
		note = "failed"
	}
	u.timer.End(idx, note)
	span.End(note)
	return err
}

func (u *unit) report(code diag.Code, err error) {
	u.res.Bag.Add(diag.Diagnostic{
		Severity: diag.SevError,
		Code:     code,
		Message:  err.Error(),
		Path:     u.in.Path,
	})
}

func emitUnit(tracer trace.Tracer, parent uint64, in Input, opts EmitOptions) (res EmitResult) {
	res = EmitResult{
		Path:    in.Path,
		OutPath: OutputPath(in, opts.OutDir),
		Bag:     diag.NewBag(opts.MaxDiagnostics),
	}
	start := time.Now()
	span := trace.Begin(tracer, trace.ScopeUnit, "unit:"+in.Path, parent)
	u := &unit{in: in, opts: opts, tracer: tracer, span: span.ID(), timer: observ.NewTimer(), res: &res}
	defer func() {
		res.Timing = u.timer.Report()
		detail := "ok"
		status := StatusDone
		if res.Err != nil {
			detail = res.Err.Error()
			status = StatusError
		}
		span.End(detail)
		notify(opts.Progress, Event{File: in.Path, Status: status, Err: res.Err, Elapsed: time.Since(start)})
	}()
	defer diag.RecoverContract(&res.Err)

	var (
		data []byte
		key  project.Digest
		prog *ast.Program
	)
	res.Err = u.phase(StageLoad, func() (string, error) {
		var err error
		data, err = os.ReadFile(in.Path)
		if err != nil {
			u.report(diag.IOLoadFileError, err)
			return "", err
		}
		key = cacheKey(data, opts)
		return strconv.Itoa(len(data)) + " bytes", nil
	})
	if res.Err != nil {
		return res
	}

	if opts.Cache != nil {
		var payload DiskPayload
		if ok, err := opts.Cache.Get(key, &payload); err == nil && ok {
			res.Output = payload.Output
			res.Cached = true
			trace.Point(tracer, trace.ScopeUnit, "cache-hit", in.Path, u.span)
			res.Err = u.write()
			return res
		}
	}

	res.Err = u.phase(StageDecode, func() (string, error) {
		doc, err := astio.Unmarshal(data, astio.FormatFromPath(in.Path))
		if err == nil {
			prog, err = astio.Decode(doc)
		}
		if err != nil {
			u.report(diag.IODecodeError, err)
			return "", err
		}
		return strconv.Itoa(len(prog.Stmts)) + " statements", nil
	})
	if res.Err != nil {
		return res
	}

	res.Err = u.phase(StageCheck, func() (string, error) {
		bag := check.Program(prog, opts.MaxDiagnostics)
		res.Bag.Merge(bag)
		if bag.HasErrors() {
			return strconv.Itoa(bag.Len()) + " diagnostics", ErrCheckFailed
		}
		return strconv.Itoa(bag.Len()) + " diagnostics", nil
	})
	if res.Err != nil {
		return res
	}

	res.Err = u.phase(StageEmit, func() (string, error) {
		out, err := format.Program(prog, opts.Format)
		if err != nil {
			return "", err
		}
		res.Output = out
		return strconv.Itoa(len(out)) + " bytes", nil
	})
	if res.Err != nil {
		return res
	}

	if opts.Reparse {
		res.Err = u.phase(StageReparse, func() (string, error) {
			if err := format.Verify(in.Path, prog, res.Output); err != nil {
				u.report(diag.IOReparseError, err)
				return "", err
			}
			return "ok", nil
		})
		if res.Err != nil {
			return res
		}
	}

	if opts.Cache != nil && !res.Bag.HasWarnings() {
		if err := opts.Cache.Put(key, &DiskPayload{Input: in.Path, Output: res.Output}); err != nil {
			trace.Point(tracer, trace.ScopeUnit, "cache-put-failed", err.Error(), u.span)
		}
	}
	res.Err = u.write()
	return res
}

func (u *unit) write() error {
	if u.opts.NoWrite {
		return nil
	}
	return u.phase(StageWrite, func() (string, error) {
		if err := os.MkdirAll(filepath.Dir(u.res.OutPath), 0o755); err != nil {
			return "", err
		}
		if err := os.WriteFile(u.res.OutPath, u.res.Output, 0o644); err != nil {
			return "", fmt.Errorf("write %s: %w", u.res.OutPath, err)
		}
		return u.res.OutPath, nil
	})
}

// Option bits folded into the cache fingerprint.
const (
	keyCompact uint8 = 1 << iota
	keyTruncate
	// keyReparse keeps unverified entries away from --reparse runs.
	keyReparse
)

// cacheKey digests the document together with every option that changes
// the emitted text or the checks it passed.
func cacheKey(data []byte, opts EmitOptions) project.Digest {
	indent, err := safecast.Conv[uint8](opts.Format.IndentWidth)
	if err != nil {
		indent = 0xff
	}
	var flags uint8
	if opts.Format.Compact {
		flags |= keyCompact
	}
	if opts.Format.Truncate {
		flags |= keyTruncate
	}
	if opts.Reparse {
		flags |= keyReparse
	}
	return project.Combine(project.HashBytes(data), project.HashBytes([]byte{indent, flags}))
}
