// Package trace records structured events while jsgen emits programs.
//
// Spans mark the command itself, each emission phase (decode, check, emit,
// reparse, write) and each input unit. Events go to a StreamTracer (text or
// NDJSON, written as they happen), a RingTracer (last N events, dumped on a
// crash) or both through a MultiTracer.
//
// # Levels
//
//   - LevelOff: no tracing
//   - LevelError: only crash dumps
//   - LevelPhase: command and phase boundaries
//   - LevelDetail: per-unit spans as well
//   - LevelDebug: everything
//
// # Context propagation
//
//	ctx = trace.WithTracer(ctx, tracer)
//	span := trace.Begin(trace.FromContext(ctx), trace.ScopePhase, "emit", parentID)
//	defer span.End("")
package trace
