// Copyright 2020 Doug Tangren. All rights reserved.
// Use of this source code is governed by a MIT license that can be found
// at https://github.com/softprops/enroute/blob/master/LICENSE.

package enroute

import (
	"fmt"
	"log/slog"
)

// SyntaxOption selects the placeholder syntax recognized by the pattern
// compiler.
type SyntaxOption uint8

const (
	// BraceSyntax recognizes "{name}" parameters and "*{name}" trailing
	// wildcards. This is the default.
	BraceSyntax SyntaxOption = iota
	// ColonSyntax recognizes ":name" parameters and "*name" trailing
	// wildcards.
	ColonSyntax

	syntaxSentinel
)

// TrailingSlashOption configures how incoming paths with a trailing slash
// are treated before lookup.
type TrailingSlashOption uint8

const (
	// StrictSlash performs no normalization: "/a" and "/a/" are distinct.
	// This is the default.
	StrictSlash TrailingSlashOption = iota
	// RelaxedSlash strips one trailing slash from the incoming path before
	// lookup (never from "/" itself). Patterns are registered unchanged, so
	// under RelaxedSlash patterns should be registered without a trailing
	// slash.
	RelaxedSlash

	slashOptionSentinel
)

// GlobalOption configures a [Router] at construction time.
type GlobalOption interface {
	applyGlob(sealedOption) error
}

// RouteOption configures a single route at registration time.
type RouteOption interface {
	applyRoute(sealedOption) error
}

type sealedOption struct {
	config *config
	route  *routeConfig
}

type optionFunc func(sealedOption) error

func (o optionFunc) applyGlob(s sealedOption) error {
	return o(s)
}

func (o optionFunc) applyRoute(s sealedOption) error {
	return o(s)
}

// config holds router-wide settings. Options operate on this carrier rather
// than on the router itself so they stay independent of the handler type
// parameter.
type config struct {
	logger slog.Handler
	syntax SyntaxOption
	slash  TrailingSlashOption
}

type routeConfig struct {
	name        string
	matchers    []Matcher
	priority    uint
	prioritySet bool
}

// WithSyntax selects the placeholder syntax used to compile patterns.
// The default is [BraceSyntax].
func WithSyntax(syntax SyntaxOption) GlobalOption {
	return optionFunc(func(s sealedOption) error {
		if syntax >= syntaxSentinel {
			return fmt.Errorf("%w: invalid syntax option", ErrInvalidConfig)
		}
		s.config.syntax = syntax
		return nil
	})
}

// WithTrailingSlash configures trailing slash normalization for incoming
// paths. The default is [StrictSlash].
func WithTrailingSlash(opt TrailingSlashOption) GlobalOption {
	return optionFunc(func(s sealedOption) error {
		if opt >= slashOptionSentinel {
			return fmt.Errorf("%w: invalid trailing slash option", ErrInvalidConfig)
		}
		s.config.slash = opt
		return nil
	})
}

// WithLogger attaches a [slog.Handler] to the router. Registrations are
// logged at debug level. By default the router is silent.
func WithLogger(handler slog.Handler) GlobalOption {
	return optionFunc(func(s sealedOption) error {
		if handler == nil {
			return fmt.Errorf("%w: logger handler cannot be nil", ErrInvalidConfig)
		}
		s.config.logger = handler
		return nil
	})
}

// WithName assigns a name to a route for identification purposes.
func WithName(name string) RouteOption {
	return optionFunc(func(s sealedOption) error {
		if name == "" {
			return fmt.Errorf("%w: empty route name", ErrInvalidConfig)
		}
		s.route.name = name
		return nil
	})
}

// WithMatcher attaches custom matchers to a route. Matchers allow routing on
// conditions beyond the request method and path. All matchers must match for
// the route to be eligible. Routes carrying matchers are only eligible
// through [Router.LookupWith].
func WithMatcher(matchers ...Matcher) RouteOption {
	return optionFunc(func(s sealedOption) error {
		for i := range matchers {
			if matchers[i] == nil {
				return fmt.Errorf("%w: matcher cannot be nil", ErrInvalidMatcher)
			}
			s.route.matchers = append(s.route.matchers, matchers[i])
		}
		return nil
	})
}

// WithHeaderMatcher attaches an HTTP header matcher to a route. The route is
// only eligible when the given header carries exactly the given value.
func WithHeaderMatcher(key, value string) RouteOption {
	return optionFunc(func(s sealedOption) error {
		if key == "" {
			return fmt.Errorf("%w: empty header key", ErrInvalidMatcher)
		}
		s.route.matchers = append(s.route.matchers, HeaderMatcher{Key: key, Value: value})
		return nil
	})
}

// WithQueryMatcher attaches a query parameter matcher to a route. The route
// is only eligible when the given query parameter carries exactly the given
// value.
func WithQueryMatcher(key, value string) RouteOption {
	return optionFunc(func(s sealedOption) error {
		if key == "" {
			return fmt.Errorf("%w: empty query key", ErrInvalidMatcher)
		}
		s.route.matchers = append(s.route.matchers, QueryMatcher{Key: key, Value: value})
		return nil
	})
}

// WithMatcherPriority sets the evaluation priority for a route with matchers.
// When multiple routes share the same method and path shape, routes are
// evaluated by priority, highest first; the matcher-less route, if any, is
// always evaluated last. If unset, the priority defaults to the number of
// matchers.
func WithMatcherPriority(priority uint) RouteOption {
	return optionFunc(func(s sealedOption) error {
		s.route.priority = priority
		s.route.prioritySet = true
		return nil
	})
}
