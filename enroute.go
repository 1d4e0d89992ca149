// Copyright 2020 Doug Tangren. All rights reserved.
// Use of this source code is governed by a MIT license that can be found
// at https://github.com/softprops/enroute/blob/master/LICENSE.

// Package enroute is a parsimonious, framework and IO agnostic HTTP request
// router core.
//
// enroute stores route patterns in a segment-indexed tree and resolves an
// incoming (method, path) pair to the most specific registered pattern,
// binding named parameters and trailing wildcards along the way. At every
// depth, exact literal segments outrank parameters, which outrank wildcards,
// independent of registration order.
//
// There is no IO component and no framework coupling point: the router never
// reads a request line and never invokes a handler. The handler type is a
// caller-chosen opaque token handed back on a successful lookup, so enroute
// adapts to any runtime, from net/http to asynchronous dispatch tables.
package enroute

import (
	"fmt"
	"iter"
	"log/slog"
	"net/http"
	"strings"
)

const slashDelim byte = '/'

// Router resolves (method, path) pairs against a set of registered route
// patterns. H is the caller's handler token type; the router stores tokens
// and returns them from lookups, never invoking them.
//
// Router follows a build-then-serve lifecycle: register every route first,
// then look up freely. Once registration is complete, lookups perform no
// mutation and are safe for unsynchronized concurrent use. Registering while
// other goroutines look up is not supported; callers needing live updates
// should build a fresh router and publish it atomically.
type Router[H any] struct {
	tree *tree[H]
	log  *slog.Logger
	cfg  config
}

// New returns a ready to use [Router], configured with the provided options.
func New[H any](opts ...GlobalOption) (*Router[H], error) {
	cfg := config{
		syntax: BraceSyntax,
		slash:  StrictSlash,
	}
	for _, opt := range opts {
		if err := opt.applyGlob(sealedOption{config: &cfg}); err != nil {
			return nil, err
		}
	}

	r := &Router[H]{
		tree: newTree[H](),
		cfg:  cfg,
	}
	if cfg.logger != nil {
		r.log = slog.New(cfg.logger)
	}
	return r, nil
}

// Must is a convenience wrapper for [New] that panics on error.
func Must[H any](opts ...GlobalOption) *Router[H] {
	r, err := New[H](opts...)
	if err != nil {
		panic(err)
	}
	return r
}

// Handle registers a new route for the given method and pattern. On success
// it returns the newly registered [Route]. If an error occurs, it returns
// one of the following:
//   - [ErrInvalidRoute]: if the method is invalid.
//   - [ErrMalformedPattern], [ErrWildcardNotTerminal],
//     [ErrDuplicateParamName]: if the pattern does not compile.
//   - [ErrRouteExist]: if an equivalent route is already registered (the
//     error is a [RouteConflictError]).
//   - [ErrInvalidConfig], [ErrInvalidMatcher]: if a route option is invalid.
func (r *Router[H]) Handle(method, pattern string, handler H, opts ...RouteOption) (*Route[H], error) {
	if !isValidMethod(method) {
		return nil, fmt.Errorf("%w: invalid method %q", ErrInvalidRoute, method)
	}

	segs, err := compile(pattern, r.cfg.syntax)
	if err != nil {
		return nil, err
	}

	rc := routeConfig{}
	for _, opt := range opts {
		if err := opt.applyRoute(sealedOption{route: &rc}); err != nil {
			return nil, err
		}
	}

	rte := &Route[H]{
		handler:  handler,
		pattern:  pattern,
		method:   method,
		name:     rc.name,
		segments: segs,
		matchers: rc.matchers,
		priority: rc.priority,
	}
	for _, seg := range segs {
		switch seg.Kind {
		case KindParam:
			rte.params = append(rte.params, seg.Value)
		case KindWildcard:
			rte.params = append(rte.params, seg.Value)
			rte.catchAll = true
		}
	}
	if !rc.prioritySet {
		rte.priority = uint(len(rc.matchers))
	}

	if err := r.tree.insert(rte); err != nil {
		return nil, err
	}

	if r.log != nil {
		r.log.Debug("route registered",
			slog.String("method", method),
			slog.String("pattern", pattern),
			slog.Int("params", rte.ParamsLen()),
		)
	}
	return rte, nil
}

// MustHandle registers a new route for the given method and pattern. It is a
// convenience wrapper for [Router.Handle] that panics on error.
func (r *Router[H]) MustHandle(method, pattern string, handler H, opts ...RouteOption) *Route[H] {
	rte, err := r.Handle(method, pattern, handler, opts...)
	if err != nil {
		panic(err)
	}
	return rte
}

// Get registers a new route for the GET method.
func (r *Router[H]) Get(pattern string, handler H, opts ...RouteOption) (*Route[H], error) {
	return r.Handle(http.MethodGet, pattern, handler, opts...)
}

// Post registers a new route for the POST method.
func (r *Router[H]) Post(pattern string, handler H, opts ...RouteOption) (*Route[H], error) {
	return r.Handle(http.MethodPost, pattern, handler, opts...)
}

// Put registers a new route for the PUT method.
func (r *Router[H]) Put(pattern string, handler H, opts ...RouteOption) (*Route[H], error) {
	return r.Handle(http.MethodPut, pattern, handler, opts...)
}

// Delete registers a new route for the DELETE method.
func (r *Router[H]) Delete(pattern string, handler H, opts ...RouteOption) (*Route[H], error) {
	return r.Handle(http.MethodDelete, pattern, handler, opts...)
}

// Patch registers a new route for the PATCH method.
func (r *Router[H]) Patch(pattern string, handler H, opts ...RouteOption) (*Route[H], error) {
	return r.Handle(http.MethodPatch, pattern, handler, opts...)
}

// Head registers a new route for the HEAD method.
func (r *Router[H]) Head(pattern string, handler H, opts ...RouteOption) (*Route[H], error) {
	return r.Handle(http.MethodHead, pattern, handler, opts...)
}

// Options registers a new route for the OPTIONS method.
func (r *Router[H]) Options(pattern string, handler H, opts ...RouteOption) (*Route[H], error) {
	return r.Handle(http.MethodOptions, pattern, handler, opts...)
}

// Lookup resolves the given method and path. The path must be already
// percent-decoded and begin with '/'. Routes carrying matchers are never
// selected by Lookup; use [Router.LookupWith] to supply request metadata.
func (r *Router[H]) Lookup(method, path string) Outcome[H] {
	return r.LookupWith(method, path, nil)
}

// LookupWith resolves the given method and path, evaluating route matchers
// against the provided request metadata. A nil [RequestContext] makes only
// matcher-less routes eligible.
func (r *Router[H]) LookupWith(method, path string, c RequestContext) Outcome[H] {
	if r.cfg.slash == RelaxedSlash && len(path) > 1 && strings.HasSuffix(path, "/") {
		path = path[:len(path)-1]
	}
	return r.tree.lookup(method, path, c)
}

// Route performs a lookup for a registered route exactly matching the given
// method and pattern. It returns the [Route] if one exists or nil otherwise.
func (r *Router[H]) Route(method, pattern string) *Route[H] {
	segs, err := compile(pattern, r.cfg.syntax)
	if err != nil {
		return nil
	}
	return r.tree.route(method, pattern, segs)
}

// Has checks if the given method and pattern exactly match a registered
// route.
func (r *Router[H]) Has(method, pattern string) bool {
	return r.Route(method, pattern) != nil
}

// Len returns the number of registered routes.
func (r *Router[H]) Len() int {
	return r.tree.size
}

// Routes returns an iterator over all registered routes in deterministic
// tree order: literal branches first in lexicographic order, then parameter
// branches, then wildcard branches.
func (r *Router[H]) Routes() iter.Seq[*Route[H]] {
	return r.tree.routes()
}

// String returns a textual dump of the match index, for debugging.
func (r *Router[H]) String() string {
	return r.tree.root.String()
}

// isValidMethod reports whether the method is a valid HTTP token per
// RFC 9110.
func isValidMethod(method string) bool {
	if method == "" {
		return false
	}
	for i := 0; i < len(method); i++ {
		if !isTokenChar(method[i]) {
			return false
		}
	}
	return true
}

func isTokenChar(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	switch c {
	case '!', '#', '$', '%', '&', '\'', '*', '+', '-', '.', '^', '_', '`', '|', '~':
		return true
	}
	return false
}
