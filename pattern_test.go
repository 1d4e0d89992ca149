package enroute

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompileBraceSyntax(t *testing.T) {
	cases := []struct {
		name     string
		template string
		want     []Segment
	}{
		{
			name:     "root",
			template: "/",
			want:     []Segment{{Kind: KindLiteral}},
		},
		{
			name:     "single literal",
			template: "/users",
			want:     []Segment{{Kind: KindLiteral, Value: "users"}},
		},
		{
			name:     "trailing slash",
			template: "/users/",
			want: []Segment{
				{Kind: KindLiteral, Value: "users"},
				{Kind: KindLiteral},
			},
		},
		{
			name:     "param",
			template: "/users/{id}",
			want: []Segment{
				{Kind: KindLiteral, Value: "users"},
				{Kind: KindParam, Value: "id"},
			},
		},
		{
			name:     "mixed",
			template: "/repos/{owner}/{repo}/contents/*{path}",
			want: []Segment{
				{Kind: KindLiteral, Value: "repos"},
				{Kind: KindParam, Value: "owner"},
				{Kind: KindParam, Value: "repo"},
				{Kind: KindLiteral, Value: "contents"},
				{Kind: KindWildcard, Value: "path"},
			},
		},
		{
			name:     "wildcard at root",
			template: "/*{rest}",
			want:     []Segment{{Kind: KindWildcard, Value: "rest"}},
		},
		{
			name:     "colon is a literal character in brace syntax",
			template: "/foo/id:1",
			want: []Segment{
				{Kind: KindLiteral, Value: "foo"},
				{Kind: KindLiteral, Value: "id:1"},
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			segs, err := compile(tc.template, BraceSyntax)
			require.NoError(t, err)
			assert.Equal(t, tc.want, segs)
		})
	}
}

func TestCompileColonSyntax(t *testing.T) {
	cases := []struct {
		name     string
		template string
		want     []Segment
	}{
		{
			name:     "param",
			template: "/users/:id",
			want: []Segment{
				{Kind: KindLiteral, Value: "users"},
				{Kind: KindParam, Value: "id"},
			},
		},
		{
			name:     "wildcard",
			template: "/files/*rest",
			want: []Segment{
				{Kind: KindLiteral, Value: "files"},
				{Kind: KindWildcard, Value: "rest"},
			},
		},
		{
			name:     "braces are literal characters in colon syntax",
			template: "/users/{id}",
			want: []Segment{
				{Kind: KindLiteral, Value: "users"},
				{Kind: KindLiteral, Value: "{id}"},
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			segs, err := compile(tc.template, ColonSyntax)
			require.NoError(t, err)
			assert.Equal(t, tc.want, segs)
		})
	}
}

func TestCompileError(t *testing.T) {
	cases := []struct {
		name     string
		template string
		syntax   SyntaxOption
		wantErr  error
	}{
		{
			name:     "empty template",
			template: "",
			wantErr:  ErrMalformedPattern,
		},
		{
			name:     "missing leading slash",
			template: "users/{id}",
			wantErr:  ErrMalformedPattern,
		},
		{
			name:     "empty segment",
			template: "/a//b",
			wantErr:  ErrMalformedPattern,
		},
		{
			name:     "empty segment colon syntax",
			template: "/a//b",
			syntax:   ColonSyntax,
			wantErr:  ErrMalformedPattern,
		},
		{
			name:     "wildcard not terminal",
			template: "/a/*{rest}/b",
			wantErr:  ErrWildcardNotTerminal,
		},
		{
			name:     "wildcard followed by trailing slash",
			template: "/a/*{rest}/",
			wantErr:  ErrWildcardNotTerminal,
		},
		{
			name:     "wildcard not terminal colon syntax",
			template: "/a/*rest/b",
			syntax:   ColonSyntax,
			wantErr:  ErrWildcardNotTerminal,
		},
		{
			name:     "duplicate param name",
			template: "/a/{x}/b/{x}",
			wantErr:  ErrDuplicateParamName,
		},
		{
			name:     "duplicate param and wildcard name",
			template: "/a/{x}/*{x}",
			wantErr:  ErrDuplicateParamName,
		},
		{
			name:     "missing param name",
			template: "/a/{}",
			wantErr:  ErrMalformedPattern,
		},
		{
			name:     "missing wildcard name",
			template: "/a/*{}",
			wantErr:  ErrMalformedPattern,
		},
		{
			name:     "missing wildcard name colon syntax",
			template: "/a/*",
			syntax:   ColonSyntax,
			wantErr:  ErrMalformedPattern,
		},
		{
			name:     "stray star in literal",
			template: "/a/b*c",
			wantErr:  ErrMalformedPattern,
		},
		{
			name:     "stray brace in literal",
			template: "/a/b}c",
			wantErr:  ErrMalformedPattern,
		},
		{
			name:     "stray colon in literal colon syntax",
			template: "/a/b:c",
			syntax:   ColonSyntax,
			wantErr:  ErrMalformedPattern,
		},
		{
			name:     "nested brace in param name",
			template: "/a/{b{c}}",
			wantErr:  ErrMalformedPattern,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := compile(tc.template, tc.syntax)
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestSegmentString(t *testing.T) {
	assert.Equal(t, "users", Segment{Kind: KindLiteral, Value: "users"}.String())
	assert.Equal(t, "{id}", Segment{Kind: KindParam, Value: "id"}.String())
	assert.Equal(t, "*{rest}", Segment{Kind: KindWildcard, Value: "rest"}.String())
}

func TestJoinSegments(t *testing.T) {
	segs, err := compile("/repos/{owner}/*{path}", BraceSyntax)
	require.NoError(t, err)
	assert.Equal(t, "/repos/{owner}/*{path}", joinSegments(segs))

	segs, err = compile("/", BraceSyntax)
	require.NoError(t, err)
	assert.Equal(t, "/", joinSegments(segs))
}
