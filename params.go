// Copyright 2020 Doug Tangren. All rights reserved.
// Use of this source code is governed by a MIT license that can be found
// at https://github.com/softprops/enroute/blob/master/LICENSE.

package enroute

import (
	"iter"

	"github.com/softprops/enroute/internal/iterutil"
)

// Param is a single matched path parameter.
type Param struct {
	Key   string
	Value string
}

// Params holds the parameters bound during a successful lookup, ordered by
// their left-to-right appearance in the matched pattern. A trailing wildcard
// appears last, under its name, with the joined remainder as value.
type Params []Param

// Get the matching path segment by parameter name.
func (p Params) Get(name string) string {
	for i := range p {
		if p[i].Key == name {
			return p[i].Value
		}
	}
	return ""
}

// Has checks whether the parameter exists by name.
func (p Params) Has(name string) bool {
	for i := range p {
		if p[i].Key == name {
			return true
		}
	}
	return false
}

// Clone make a copy of Params.
func (p Params) Clone() Params {
	cloned := make(Params, len(p))
	copy(cloned, p)
	return cloned
}

// All returns an iterator over parameter names and values in pattern order.
func (p Params) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for i := range p {
			if !yield(p[i].Key, p[i].Value) {
				return
			}
		}
	}
}

// Keys returns an iterator over parameter names in pattern order.
func (p Params) Keys() iter.Seq[string] {
	return iterutil.Left(p.All())
}

// Values returns an iterator over parameter values in pattern order.
func (p Params) Values() iter.Seq[string] {
	return iterutil.Right(p.All())
}
