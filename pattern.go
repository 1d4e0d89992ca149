// Copyright 2020 Doug Tangren. All rights reserved.
// Use of this source code is governed by a MIT license that can be found
// at https://github.com/softprops/enroute/blob/master/LICENSE.

package enroute

import (
	"fmt"
	"strings"

	"github.com/softprops/enroute/internal/iterutil"
)

// compile parses a route template into its ordered segments. The template
// must begin with '/'. A trailing slash compiles to a final empty literal
// segment, so "/a" and "/a/" have distinct shapes. The template is assumed
// to be already percent-decoded; no decoding is performed here.
func compile(template string, syntax SyntaxOption) ([]Segment, error) {
	if template == "" || template[0] != slashDelim {
		return nil, fmt.Errorf("%w: %q must start with '/'", ErrMalformedPattern, template)
	}

	var (
		segs     []Segment
		seen     map[string]struct{}
		pending  bool // previous fragment was empty, only legal in final position
		wildcard bool // a wildcard segment has been consumed
	)

	for frag := range iterutil.SplitStringSeq(template[1:], "/") {
		if wildcard {
			return nil, fmt.Errorf("%w: %q", ErrWildcardNotTerminal, template)
		}
		if pending {
			return nil, fmt.Errorf("%w: empty segment in %q", ErrMalformedPattern, template)
		}

		if frag == "" {
			// Trailing-slash marker.
			pending = true
			segs = append(segs, Segment{Kind: KindLiteral})
			continue
		}

		seg, err := parseFragment(frag, syntax)
		if err != nil {
			return nil, err
		}
		if seg.Kind != KindLiteral {
			if seen == nil {
				seen = make(map[string]struct{}, 2)
			}
			if _, ok := seen[seg.Value]; ok {
				return nil, fmt.Errorf("%w: %q in %q", ErrDuplicateParamName, seg.Value, template)
			}
			seen[seg.Value] = struct{}{}
		}
		if seg.Kind == KindWildcard {
			wildcard = true
		}
		segs = append(segs, seg)
	}

	return segs, nil
}

func parseFragment(frag string, syntax SyntaxOption) (Segment, error) {
	switch syntax {
	case ColonSyntax:
		switch frag[0] {
		case ':':
			name, err := parseParamName(frag[1:], frag)
			if err != nil {
				return Segment{}, err
			}
			return Segment{Kind: KindParam, Value: name}, nil
		case '*':
			name, err := parseParamName(frag[1:], frag)
			if err != nil {
				return Segment{}, err
			}
			return Segment{Kind: KindWildcard, Value: name}, nil
		}
		if strings.ContainsAny(frag, ":*") {
			return Segment{}, fmt.Errorf("%w: illegal character in literal segment %q", ErrMalformedPattern, frag)
		}
		return Segment{Kind: KindLiteral, Value: frag}, nil
	default:
		if strings.HasPrefix(frag, "*{") && strings.HasSuffix(frag, "}") {
			name, err := parseParamName(frag[2:len(frag)-1], frag)
			if err != nil {
				return Segment{}, err
			}
			return Segment{Kind: KindWildcard, Value: name}, nil
		}
		if strings.HasPrefix(frag, "{") && strings.HasSuffix(frag, "}") {
			name, err := parseParamName(frag[1:len(frag)-1], frag)
			if err != nil {
				return Segment{}, err
			}
			return Segment{Kind: KindParam, Value: name}, nil
		}
		if strings.ContainsAny(frag, "{}*") {
			return Segment{}, fmt.Errorf("%w: illegal character in literal segment %q", ErrMalformedPattern, frag)
		}
		return Segment{Kind: KindLiteral, Value: frag}, nil
	}
}

func parseParamName(name, frag string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("%w: missing parameter name in %q", ErrMalformedPattern, frag)
	}
	if strings.ContainsAny(name, "{}*:/") {
		return "", fmt.Errorf("%w: illegal character in parameter name %q", ErrMalformedPattern, frag)
	}
	return name, nil
}
