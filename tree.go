package enroute

import (
	"sort"
	"strings"
)

// tree is the match index: a segment-indexed trie built once during
// registration and read-only afterwards. Lookups perform no mutation, so a
// fully built tree is safe for unsynchronized concurrent reads.
type tree[H any] struct {
	root *node[H]
	size int
}

func newTree[H any]() *tree[H] {
	return &tree[H]{root: &node[H]{}}
}

// insert walks the tree from the root, one compiled segment at a time,
// creating missing edges, and records the route in the terminal node's
// method table.
func (t *tree[H]) insert(rte *Route[H]) error {
	current := t.root
	for _, seg := range rte.segments {
		switch seg.Kind {
		case KindParam:
			current = current.addParamEdge()
		case KindWildcard:
			current = current.addWildcardEdge()
		default:
			current = current.addStaticEdge(seg.Value)
		}
	}
	if err := current.addRoute(rte); err != nil {
		return err
	}
	t.size++
	return nil
}

// route returns the registered route exactly matching the given method and
// compiled segments, preferring an exact pattern string match when several
// routes share the shape.
func (t *tree[H]) route(method, pattern string, segs []Segment) *Route[H] {
	current := t.root
	for _, seg := range segs {
		switch seg.Kind {
		case KindParam:
			current = current.param
		case KindWildcard:
			current = current.wildcard
		default:
			current = current.staticEdge(seg.Value)
		}
		if current == nil {
			return nil
		}
	}
	table := current.routes[method]
	for _, rte := range table {
		if rte.pattern == pattern {
			return rte
		}
	}
	return nil
}

// skip records a branch point to resume from when the walk dead-ends.
type skip[H any] struct {
	n      *node[H]
	offset int
	values int
	stage  uint8
}

const (
	stageStatic uint8 = iota
	stageParam
	stageWildcard
)

// lookup matches path against the tree, depth-first with backtracking. At
// every depth children are attempted in strict priority order: exact literal
// first, parameter second, wildcard last. Parameter values are captured
// positionally and zipped with the matched route's parameter names.
func (t *tree[H]) lookup(method, path string, c RequestContext) Outcome[H] {
	if path == "" || path[0] != slashDelim {
		return Outcome[H]{Kind: OutcomeNotFound}
	}

	var (
		stack   []skip[H]
		values  []string
		allowed map[string]struct{}
	)

	current := t.root
	offset := 0 // path[offset] is the slash opening the next segment
	stage := stageStatic

Walk:
	for {
		if offset >= len(path) {
			// All segments consumed: terminal node.
			if rte := current.pick(method, c); rte != nil {
				return matched(rte, values)
			}
			if current.isLeaf() {
				if allowed == nil {
					allowed = make(map[string]struct{}, 1)
				}
				current.collectAllowed(method, allowed)
			}
			goto Backtrack
		}

		{
			start := offset + 1
			end := strings.IndexByte(path[start:], slashDelim)
			if end == -1 {
				end = len(path)
			} else {
				end += start
			}
			seg := path[start:end]

			if stage == stageStatic {
				if child := current.staticEdge(seg); child != nil {
					if current.param != nil || current.wildcard != nil {
						stack = append(stack, skip[H]{current, offset, len(values), stageParam})
					}
					current = child
					offset = end
					continue
				}
				stage = stageParam
			}

			if stage == stageParam {
				// An empty segment never binds a parameter.
				if current.param != nil && seg != "" {
					if current.wildcard != nil {
						stack = append(stack, skip[H]{current, offset, len(values), stageWildcard})
					}
					values = append(values, seg)
					current = current.param
					offset = end
					stage = stageStatic
					continue
				}
				stage = stageWildcard
			}

			if current.wildcard != nil {
				// The wildcard absorbs the whole remainder, slashes included.
				values = append(values, path[start:])
				if rte := current.wildcard.pick(method, c); rte != nil {
					return matched(rte, values)
				}
				values = values[:len(values)-1]
				if current.wildcard.isLeaf() {
					if allowed == nil {
						allowed = make(map[string]struct{}, 1)
					}
					current.wildcard.collectAllowed(method, allowed)
				}
			}
		}

	Backtrack:
		if len(stack) == 0 {
			if len(allowed) > 0 {
				methods := make([]string, 0, len(allowed))
				for m := range allowed {
					methods = append(methods, m)
				}
				sort.Strings(methods)
				return Outcome[H]{Kind: OutcomeMethodNotAllowed, Allowed: methods}
			}
			return Outcome[H]{Kind: OutcomeNotFound}
		}

		skipped := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		current = skipped.n
		offset = skipped.offset
		values = values[:skipped.values]
		stage = skipped.stage
		goto Walk
	}
}

func matched[H any](rte *Route[H], values []string) Outcome[H] {
	params := make(Params, len(values))
	for i, name := range rte.params {
		params[i] = Param{Key: name, Value: values[i]}
	}
	return Outcome[H]{
		Kind: OutcomeMatched,
		Match: Match[H]{
			route:  rte,
			params: params,
		},
	}
}
