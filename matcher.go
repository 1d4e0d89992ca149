package enroute

import (
	"net/http"
	"net/url"
)

// RequestContext exposes the request metadata that matchers may inspect.
// The core never reads a request itself; callers supply an implementation,
// typically [NewRequestContext], to [Router.LookupWith].
type RequestContext interface {
	// Header returns the first value associated with the given header key.
	Header(key string) string
	// QueryParam returns the first value associated with the given query
	// parameter.
	QueryParam(key string) string
}

// Matcher evaluates if a request satisfies conditions beyond its method and
// path.
type Matcher interface {
	// Match evaluates if the [RequestContext] satisfies this matcher.
	Match(c RequestContext) bool
	// Equal checks if this matcher is structurally equivalent to another.
	Equal(other Matcher) bool
}

// HeaderMatcher matches requests carrying an exact header value.
type HeaderMatcher struct {
	Key   string
	Value string
}

func (m HeaderMatcher) Match(c RequestContext) bool {
	return c.Header(m.Key) == m.Value
}

func (m HeaderMatcher) Equal(other Matcher) bool {
	om, ok := other.(HeaderMatcher)
	if !ok {
		return false
	}
	return m.Key == om.Key && m.Value == om.Value
}

func (m HeaderMatcher) String() string {
	return "header:" + m.Key + "=" + m.Value
}

// QueryMatcher matches requests carrying an exact query parameter value.
type QueryMatcher struct {
	Key   string
	Value string
}

func (m QueryMatcher) Match(c RequestContext) bool {
	return c.QueryParam(m.Key) == m.Value
}

func (m QueryMatcher) Equal(other Matcher) bool {
	om, ok := other.(QueryMatcher)
	if !ok {
		return false
	}
	return m.Key == om.Key && m.Value == om.Value
}

func (m QueryMatcher) String() string {
	return "query:" + m.Key + "=" + m.Value
}

// NewRequestContext adapts an [http.Request] to the [RequestContext]
// interface. The query string is parsed lazily, once.
func NewRequestContext(r *http.Request) RequestContext {
	return &requestContext{req: r}
}

type requestContext struct {
	req         *http.Request
	cachedQuery url.Values
}

func (c *requestContext) Header(key string) string {
	return c.req.Header.Get(key)
}

func (c *requestContext) QueryParam(key string) string {
	if c.cachedQuery == nil {
		c.cachedQuery = c.req.URL.Query()
	}
	return c.cachedQuery.Get(key)
}

// matchersEqual reports whether two matcher sets are equal, regardless of
// order.
func matchersEqual(a, b []Matcher) bool {
	if len(a) != len(b) {
		return false
	}

	// Runs in O(n²) time, which is fine for the handful of matchers a route
	// realistically carries.
	matched := make([]bool, len(b))

outer:
	for _, ma := range a {
		for i, mb := range b {
			if !matched[i] && ma.Equal(mb) {
				matched[i] = true
				continue outer
			}
		}
		return false
	}
	return true
}
