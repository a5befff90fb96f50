package sink

import "sync"

// seen holds one flag per call site that has failed under log-once
// verbosity. Append-only for the process lifetime: no reset, no eviction.
// Bounded by the number of textual bail sites in the program.
var seen sync.Map // call-site key -> struct{}

// FirstFailure reports whether this is the first failure observed at the
// given call site, marking the site as having fired.
//
// The check is a lock-free read-then-set: two goroutines racing a fresh
// site may both observe it unset and both report true, so the guarantee
// is at-least-once with a rare over-log bounded by the number of racing
// goroutines. Once set, the flag never reverts.
func FirstFailure(site string) bool {
	if _, ok := seen.Load(site); ok {
		return false
	}
	seen.Store(site, struct{}{})
	return true
}
