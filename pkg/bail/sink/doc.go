// Package sink is the diagnostic side of bailing: backend selection and
// the per-call-site log-once gate.
//
// Key constructs:
// - Configure: select None/Console/Structured and a minimum severity, once
// - SetLogger: plug in any slog-based backend
// - Emit: best-effort write that never panics into the caller
// - FirstFailure: the process-wide log-once gate
//
// Emission is deliberately decoupled from exit behavior: a broken or
// absent backend changes what gets logged, never how the caller bails.
package sink
