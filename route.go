// Copyright 2020 Doug Tangren. All rights reserved.
// Use of this source code is governed by a MIT license that can be found
// at https://github.com/softprops/enroute/blob/master/LICENSE.

package enroute

import (
	"fmt"
	"iter"
	"strings"
)

// Route represents an immutable registered route. The handler token H is
// opaque to the router: it is stored at registration and handed back on a
// successful lookup, never invoked.
type Route[H any] struct {
	handler  H
	pattern  string
	method   string
	name     string
	segments []Segment
	params   []string
	matchers []Matcher
	priority uint
	catchAll bool
}

// Method returns the HTTP method this route responds to.
func (r *Route[H]) Method() string {
	return r.method
}

// Pattern returns the registered route pattern.
func (r *Route[H]) Pattern() string {
	return r.pattern
}

// Name returns the name of this [Route], if any.
func (r *Route[H]) Name() string {
	return r.name
}

// Handler returns the handler token registered with this route.
func (r *Route[H]) Handler() H {
	return r.handler
}

// ParamsLen returns the number of parameters for this [Route], counting a
// trailing wildcard.
func (r *Route[H]) ParamsLen() int {
	return len(r.params)
}

// Params returns an iterator over all parameter names for this [Route] in
// left-to-right order. A trailing wildcard name comes last.
func (r *Route[H]) Params() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, param := range r.params {
			if !yield(param) {
				return
			}
		}
	}
}

// Segments returns an iterator over the compiled segments of this [Route].
func (r *Route[H]) Segments() iter.Seq[Segment] {
	return func(yield func(Segment) bool) {
		for _, seg := range r.segments {
			if !yield(seg) {
				return
			}
		}
	}
}

// MatchersLen returns the number of matchers attached to this [Route].
func (r *Route[H]) MatchersLen() int {
	return len(r.matchers)
}

// Matchers returns an iterator over all matchers attached to this [Route].
func (r *Route[H]) Matchers() iter.Seq[Matcher] {
	return func(yield func(Matcher) bool) {
		for _, m := range r.matchers {
			if !yield(m) {
				return
			}
		}
	}
}

// MatchersPriority returns the matcher evaluation priority for this [Route].
func (r *Route[H]) MatchersPriority() uint {
	return r.priority
}

func (r *Route[H]) String() string {
	sb := new(strings.Builder)
	sb.WriteString("method:")
	sb.WriteString(r.method)
	sb.WriteString(" pattern:")
	sb.WriteString(r.pattern)
	if r.name != "" {
		sb.WriteString(" name:")
		sb.WriteString(r.name)
	}
	size := sb.Len()
	for _, matcher := range r.matchers {
		if m, ok := matcher.(fmt.Stringer); ok {
			if sb.Len() > size {
				sb.WriteByte(',')
			} else {
				sb.WriteString(" matchers:{")
			}
			sb.WriteString(m.String())
		}
	}
	if sb.Len() > size {
		sb.WriteByte('}')
	}
	return sb.String()
}

// match reports whether the request metadata satisfies all attached
// matchers. A route without matchers always matches; a route with matchers
// never matches a nil [RequestContext].
func (r *Route[H]) match(c RequestContext) bool {
	if len(r.matchers) == 0 {
		return true
	}
	if c == nil {
		return false
	}
	for _, m := range r.matchers {
		if !m.Match(c) {
			return false
		}
	}
	return true
}
