// pkg/pkgmgr/detect.go
package pkgmgr

// Detect probes for supported package managers in fixed priority order and
// returns the kind of the first one whose executable resolves on the search
// path, or KindUnknown when none does. Pure query: the result is
// deterministic for a given host and the probe has no side effects.
//
// The kind is detected exactly once per run; every downstream component
// receives it as an explicit value and never rediscovers it.
func Detect(r Runner) Kind {
	for _, kind := range detectOrder {
		if _, err := r.LookPath(commandTable[kind].bin); err == nil {
			return kind
		}
	}
	return KindUnknown
}
