// Copyright 2020 Doug Tangren. All rights reserved.
// Use of this source code is governed by a MIT license that can be found
// at https://github.com/softprops/enroute/blob/master/LICENSE.

package enroute

import "strings"

// SegmentKind discriminates the variants of a compiled pattern segment.
type SegmentKind uint8

const (
	// KindLiteral is a segment matched byte for byte, case-sensitive.
	KindLiteral SegmentKind = iota
	// KindParam is a named placeholder binding exactly one path segment.
	KindParam
	// KindWildcard is a terminal placeholder absorbing the remaining path.
	KindWildcard
)

// Segment is one slash-delimited token of a compiled pattern. For KindLiteral,
// Value is the literal text (empty for a trailing-slash marker). For KindParam
// and KindWildcard, Value is the parameter name.
type Segment struct {
	Value string
	Kind  SegmentKind
}

// String renders the segment in brace syntax.
func (s Segment) String() string {
	switch s.Kind {
	case KindParam:
		return "{" + s.Value + "}"
	case KindWildcard:
		return "*{" + s.Value + "}"
	default:
		return s.Value
	}
}

// joinSegments reassembles a pattern path from its compiled segments,
// in brace syntax.
func joinSegments(segs []Segment) string {
	sb := strings.Builder{}
	for _, seg := range segs {
		sb.WriteByte('/')
		sb.WriteString(seg.String())
	}
	if sb.Len() == 0 {
		return "/"
	}
	return sb.String()
}
