package enroute

import (
	"iter"
	"sort"
)

// routes returns an iterator over every registered route, walking the tree
// depth-first with an explicit stack. Literal edges are visited in
// lexicographic order, then the parameter edge, then the wildcard edge, so
// the sequence is deterministic.
func (t *tree[H]) routes() iter.Seq[*Route[H]] {
	return func(yield func(*Route[H]) bool) {
		stack := []*node[H]{t.root}

		for len(stack) > 0 {
			n := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			methods := make([]string, 0, len(n.routes))
			for method := range n.routes {
				methods = append(methods, method)
			}
			sort.Strings(methods)
			for _, method := range methods {
				for _, rte := range n.routes[method] {
					if !yield(rte) {
						return
					}
				}
			}

			// Children are pushed in reverse priority order so that literal
			// edges pop first.
			if n.wildcard != nil {
				stack = append(stack, n.wildcard)
			}
			if n.param != nil {
				stack = append(stack, n.param)
			}
			keys := make([]string, 0, len(n.statics))
			for key := range n.statics {
				keys = append(keys, key)
			}
			sort.Sort(sort.Reverse(sort.StringSlice(keys)))
			for _, key := range keys {
				stack = append(stack, n.statics[key])
			}
		}
	}
}
