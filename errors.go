// Copyright 2020 Doug Tangren. All rights reserved.
// Use of this source code is governed by a MIT license that can be found
// at https://github.com/softprops/enroute/blob/master/LICENSE.

package enroute

import (
	"errors"
	"strings"
)

var (
	// ErrInvalidRoute is returned when a registration carries an invalid
	// method or an invalid pattern.
	ErrInvalidRoute = errors.New("invalid route")
	// ErrMalformedPattern is returned when a pattern cannot be compiled:
	// missing leading slash, empty segment, malformed placeholder.
	ErrMalformedPattern = errors.New("malformed pattern")
	// ErrWildcardNotTerminal is returned when a wildcard segment is followed
	// by further segments.
	ErrWildcardNotTerminal = errors.New("wildcard must be the last segment")
	// ErrDuplicateParamName is returned when the same parameter name is bound
	// twice within one pattern.
	ErrDuplicateParamName = errors.New("duplicate parameter name")
	// ErrRouteExist is returned when a route with the same method and path
	// shape is already registered.
	ErrRouteExist = errors.New("route already registered")
	// ErrInvalidConfig is returned when a global or route option is invalid.
	ErrInvalidConfig = errors.New("invalid config")
	// ErrInvalidMatcher is returned when a route matcher is invalid.
	ErrInvalidMatcher = errors.New("invalid matcher")
)

// RouteConflictError represents a conflict that occurred during route
// registration. It carries the pattern being registered and the previously
// registered pattern sharing the same method and path shape.
type RouteConflictError struct {
	// Method is the HTTP method of the conflicting registration.
	Method string
	// New is the pattern that was being registered when the conflict was detected.
	New string
	// Conflict is the previously registered pattern that conflicts with New.
	Conflict string
}

func (e *RouteConflictError) Error() string {
	var sb strings.Builder
	sb.WriteString("route already registered: new route [")
	sb.WriteString(e.Method)
	sb.WriteString("] ")
	sb.WriteString(e.New)
	sb.WriteString(" conflicts with ")
	sb.WriteString(e.Conflict)
	return sb.String()
}

// Unwrap returns the sentinel value [ErrRouteExist].
func (e *RouteConflictError) Unwrap() error {
	return ErrRouteExist
}
