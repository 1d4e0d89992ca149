package enroute

import (
	"slices"
	"sort"
	"strings"
)

// node is one level of the match index, keyed by the kind of the next
// segment. Literal children are indexed by their full segment text; the
// parameter and wildcard slots are singular per depth. A wildcard node is
// always terminal. Each node is exclusively owned by its parent.
type node[H any] struct {
	statics  map[string]*node[H]
	param    *node[H]
	wildcard *node[H]

	// Routes terminating exactly at this node, keyed by HTTP method. The
	// slice is ordered by matcher priority (highest first) with the
	// matcher-less route, if any, last.
	routes map[string][]*Route[H]
}

func (n *node[H]) staticEdge(seg string) *node[H] {
	if n.statics == nil {
		return nil
	}
	return n.statics[seg]
}

func (n *node[H]) addStaticEdge(seg string) *node[H] {
	if n.statics == nil {
		n.statics = make(map[string]*node[H], 1)
	}
	child := n.statics[seg]
	if child == nil {
		child = &node[H]{}
		n.statics[seg] = child
	}
	return child
}

func (n *node[H]) addParamEdge() *node[H] {
	if n.param == nil {
		n.param = &node[H]{}
	}
	return n.param
}

func (n *node[H]) addWildcardEdge() *node[H] {
	if n.wildcard == nil {
		n.wildcard = &node[H]{}
	}
	return n.wildcard
}

func (n *node[H]) isLeaf() bool {
	return len(n.routes) > 0
}

// addRoute records rte in this node's method table, keeping the slice
// ordered by priority with the matcher-less route last. Two routes with the
// same method and an equal matcher set conflict.
func (n *node[H]) addRoute(rte *Route[H]) error {
	if n.routes == nil {
		n.routes = make(map[string][]*Route[H], 1)
	}
	table := n.routes[rte.method]
	for _, existing := range table {
		if matchersEqual(existing.matchers, rte.matchers) {
			return &RouteConflictError{
				Method:   rte.method,
				New:      rte.pattern,
				Conflict: existing.pattern,
			}
		}
	}

	idx := sort.Search(len(table), func(i int) bool {
		return evaluatedAfter(table[i], rte)
	})
	table = slices.Insert(table, idx, rte)
	n.routes[rte.method] = table
	return nil
}

// evaluatedAfter reports whether existing should be evaluated after rte.
// Matcher-less routes sort after everything; otherwise higher priority first,
// registration order on ties.
func evaluatedAfter[H any](existing, rte *Route[H]) bool {
	if len(rte.matchers) == 0 {
		return false
	}
	if len(existing.matchers) == 0 {
		return true
	}
	return existing.priority < rte.priority
}

// pick returns the first route registered at this node for the given method
// whose matchers accept the request metadata, or nil.
func (n *node[H]) pick(method string, c RequestContext) *Route[H] {
	for _, rte := range n.routes[method] {
		if rte.match(c) {
			return rte
		}
	}
	return nil
}

// collectAllowed adds to allowed every method registered at this node other
// than the given one.
func (n *node[H]) collectAllowed(method string, allowed map[string]struct{}) {
	for m := range n.routes {
		if m != method {
			allowed[m] = struct{}{}
		}
	}
}

func (n *node[H]) String() string {
	sb := strings.Builder{}
	sb.WriteString("root\n")
	n.string(&sb, 2)
	return sb.String()
}

func (n *node[H]) string(sb *strings.Builder, space int) {
	edge := func(key string, child *node[H]) {
		sb.WriteString(strings.Repeat(" ", space))
		sb.WriteString("segment: ")
		sb.WriteString(key)
		if child.isLeaf() {
			sb.WriteString(" [leaf=")
			methods := make([]string, 0, len(child.routes))
			for m := range child.routes {
				methods = append(methods, m)
			}
			sort.Strings(methods)
			sb.WriteString(strings.Join(methods, ","))
			sb.WriteString("]")
		}
		sb.WriteByte('\n')
		child.string(sb, space+2)
	}

	keys := make([]string, 0, len(n.statics))
	for key := range n.statics {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		edge(key, n.statics[key])
	}
	if n.param != nil {
		edge("{?}", n.param)
	}
	if n.wildcard != nil {
		edge("*{?}", n.wildcard)
	}
}
