package bail

import (
	"fmt"
	"log/slog"

	"github.com/benfrankel/tiny-bail/pkg/bail/sink"
)

// Get unwraps the outcome, logging a diagnostic on every failure. The
// second return value tells the caller whether to bail: false means the
// diagnostic (if any) is already emitted and the caller should perform
// its exit action now.
//
//	v, ok := bail.Get(bail.Try(strconv.Atoi(s)))
//	if !ok {
//	    return // or: return fallback / continue / break
//	}
func Get[T any](o Outcome[T]) (T, bool) {
	if o.ok {
		return o.value, true
	}
	emitBail(callSite(1), o.reason, false)
	return o.value, false
}

// Once unwraps the outcome, logging a diagnostic the first time this call
// site fails in the process lifetime and staying quiet afterwards. Distinct
// call sites are independent.
func Once[T any](o Outcome[T]) (T, bool) {
	if o.ok {
		return o.value, true
	}
	emitBail(callSite(1), o.reason, true)
	return o.value, false
}

// Quiet unwraps the outcome without ever logging.
func Quiet[T any](o Outcome[T]) (T, bool) {
	return o.value, o.ok
}

// emitBail logs one failure before the caller's exit action runs.
func emitBail(s site, reason string, once bool) {
	if once && !sink.FirstFailure(s.key()) {
		return
	}
	sink.Emit(slog.LevelWarn, fmt.Sprintf("Bailed at %s: `%s` is %s", s, s.expr, reason))
}
