package fasturl

// Result holds the structural fields Parse extracted from a URI. Every
// span field (Scheme through Fragment) is a window into the parsed
// input — Parse never copies or percent-decodes a span; callers that
// want decoded text pass the relevant field to Decode/DecodeURI/
// DecodeForm themselves. QueryParams, Keys and QueryParamsOrder are the
// exception: they hold FORM-decoded copies.
type Result struct {
	Scheme   []byte
	UserInfo []byte
	User     []byte
	Password []byte
	Host     []byte
	Hostname []byte
	Port     []byte
	Path     []byte
	Query    []byte
	Fragment []byte

	// QueryParams holds query parameters grouped by key, present only
	// when WithQueryParams or WithQueryParamsAsArray was given. Order
	// of first appearance is preserved via Keys.
	QueryParams map[string][]string
	// Keys lists the query parameter keys in order of first
	// appearance, matching the insertion order QueryParams cannot
	// express on its own (Go maps are unordered).
	Keys []string
	// QueryParamsOrder holds every decoded key/value occurrence in the
	// exact positional order it appeared in the query string, including
	// repeats of the same key. Populated only when WithQueryParamsAsArray
	// was given — this is the distinct, additive part of that option;
	// plain WithQueryParams leaves it nil. Callers that care about
	// occurrence order rather than grouping (e.g. "sort=a" before
	// "sort=b" changes behavior) should request WithQueryParamsAsArray
	// and use this instead of QueryParams.
	QueryParamsOrder []QueryParam
}

// HasScheme reports whether a scheme field was found.
func (r *Result) HasScheme() bool { return len(r.Scheme) > 0 }

// HasHost reports whether a host field was found (including the
// "omit hostname" case of a bare ":port" authority, which leaves
// Hostname empty while Host holds ":port" and Port is non-empty).
func (r *Result) HasHost() bool { return len(r.Host) > 0 || len(r.Port) > 0 }

// HasQuery reports whether a query field was found. A bare "?" at the
// end of input, or immediately followed by "#", normalizes to "no
// query" rather than an empty-but-present one.
func (r *Result) HasQuery() bool { return len(r.Query) > 0 }

// HasFragment reports whether a fragment field was found.
func (r *Result) HasFragment() bool { return len(r.Fragment) > 0 }

// parseConfig carries ParseOption state into the driver.
type parseConfig struct {
	queryParams      bool
	queryParamsArray bool
	initialCursor    int
	forceQueryString bool
}

// ParseOption configures Parse / ParseString.
type ParseOption func(*parseConfig)

// WithQueryParams requests that the query string also be decomposed
// into Result.QueryParams, grouped by key (repeated keys accumulate
// into the same slice, in order of appearance).
func WithQueryParams() ParseOption {
	return func(c *parseConfig) { c.queryParams = true }
}

// WithQueryParamsAsArray requests the positional variant of query
// decomposition: every key=value occurrence is recorded in the order
// it appeared rather than grouped, mirroring parse_queryparams_as_array
// in the reference implementation. Implies WithQueryParams.
func WithQueryParamsAsArray() ParseOption {
	return func(c *parseConfig) {
		c.queryParams = true
		c.queryParamsArray = true
	}
}

// WithInitialCursor starts scanning at byte offset n instead of 0,
// useful for re-parsing a suffix of a larger buffer without copying.
func WithInitialCursor(n int) ParseOption {
	return func(c *parseConfig) { c.initialCursor = n }
}

// WithForceQueryString treats the very first byte as the start of a
// query string even if it is not "?", matching a caller that has
// already stripped the leading delimiter.
func WithForceQueryString() ParseOption {
	return func(c *parseConfig) { c.forceQueryString = true }
}
