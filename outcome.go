package enroute

// OutcomeKind discriminates the three possible results of a lookup.
type OutcomeKind uint8

const (
	// OutcomeNotFound means no registered pattern structurally matches the
	// path.
	OutcomeNotFound OutcomeKind = iota
	// OutcomeMatched means a route matched; the outcome carries a [Match].
	OutcomeMatched
	// OutcomeMethodNotAllowed means at least one pattern structurally
	// matches the path, but none is registered for the requested method; the
	// outcome carries the set of allowed methods.
	OutcomeMethodNotAllowed
)

// Outcome is the result of a lookup. Exactly one of the three kinds applies:
// a match, a method mismatch with the allowed method set, or no match at
// all. Lookup outcomes are ordinary values, not errors; callers typically
// map them to 2xx dispatch, 405 and 404 respectively.
type Outcome[H any] struct {
	// Match holds the matched route and bound parameters when Kind is
	// [OutcomeMatched].
	Match Match[H]
	// Allowed holds the sorted set of methods registered for the path when
	// Kind is [OutcomeMethodNotAllowed].
	Allowed []string
	Kind    OutcomeKind
}

// Match carries the result of a successful lookup: the matched route, its
// handler token and the parameters bound along the way.
type Match[H any] struct {
	route  *Route[H]
	params Params
}

// Route returns the matched route.
func (m Match[H]) Route() *Route[H] {
	return m.route
}

// Handler returns the handler token registered with the matched route. The
// router never invokes it; dispatch is the caller's concern.
func (m Match[H]) Handler() H {
	return m.route.handler
}

// Params returns the bound parameters in pattern order. The returned slice
// is owned by the caller of the lookup; use [Params.Clone] to retain it
// beyond the request's lifetime.
func (m Match[H]) Params() Params {
	return m.params
}

// Wildcard returns the remainder captured by the trailing wildcard, or the
// empty string if the matched pattern has none.
func (m Match[H]) Wildcard() string {
	if !m.route.catchAll {
		return ""
	}
	return m.params[len(m.params)-1].Value
}
