package fasturl

// isAlnum reports whether c is an ASCII letter or digit.
func isAlnum(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}

// Parse decomposes input into its structural URI fields using a
// goto-driven state machine, one label per grammar state
// (PARSE_PATHNAME, PARSE_SCHEME, PARSE_HOST, PARSE_IPV6, PARSE_PORT,
// PARSE_PASSWORD, PARSE_QUERY, PARSE_FRAGMENT), mirroring the
// reference parser's control flow 1:1. It returns the partially or
// fully populated Result, the cursor (one past the last byte consumed
// on success, or the offending byte's offset on failure, which is
// len(input) when the input ends where more bytes are required), and a
// non-nil error iff the input was rejected.
func Parse(input []byte, opts ...ParseOption) (*Result, int, error) {
	cfg := &parseConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	return parse(input, cfg)
}

// ParseString is Parse for a string, saving callers a []byte(s)
// conversion of their own.
func ParseString(s string, opts ...ParseOption) (*Result, int, error) {
	cfg := &parseConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	return parse([]byte(s), cfg)
}

func parse(input []byte, cfg *parseConfig) (*Result, int, error) {
	n := len(input)
	res := &Result{}

	var (
		cur          int
		head         int
		tail         int
		phead        int
		userinfoSet  bool
		omitHostname bool
		chkScheme    bool
		portnum      int
		stop         byte
		queryParams  []QueryParam
	)

	finishQuery := func() error {
		if !cfg.queryParams {
			return nil
		}
		grouped, keys, ordered, derr := decodeQueryParams(queryParams)
		if derr != nil {
			return derr
		}
		res.QueryParams = grouped
		res.Keys = keys
		if cfg.queryParamsArray {
			res.QueryParamsOrder = ordered
		}
		return nil
	}

	cur = cfg.initialCursor
	chkScheme = true

	if n == 0 {
		return res, 0, nil
	}

	if cfg.forceQueryString {
		if at(input, cur) != '?' {
			// The query scanners skip the byte at cur as the '?'
			// delimiter; step back one so a query given without its
			// '?' keeps its first byte.
			cur--
		}
		goto PARSE_QUERY
	}

	switch at(input, cur) {
	case 0:
		return res, cur, &ParseError{Offset: cur, Byte: at(input, cur), Kind: InvalidByte}
	case '?':
		goto PARSE_QUERY
	case '[':
		goto PARSE_HOST
	case '#':
		cur++
		goto PARSE_FRAGMENT
	}

PARSE_PATHNAME:
	head = cur
	for ; cur < n; cur++ {
		c := input[cur]
		switch URIC[c] {
		case 0:
			res.Path = input[head:cur]
			return res, cur, &ParseError{Offset: cur, Byte: c, Kind: InvalidByte}

		case '?':
			res.Path = input[head:cur]
			goto PARSE_QUERY

		case '#':
			res.Path = input[head:cur]
			cur++
			goto PARSE_FRAGMENT

		case '%':
			if !percentOK(input, cur) {
				return res, cur, &ParseError{Offset: cur, Byte: c, Kind: InvalidPercentEscape}
			}
			cur += 2
			chkScheme = false

		case ':':
			if chkScheme {
				chkScheme = false
				goto PARSE_SCHEME
			}

		case '!', '$', '&', '\'', '(', ')', '*', ',', '/', ';', '=', '@', '_', '~':
			chkScheme = false
		}
	}
	res.Path = input[head:cur]
	return res, cur, nil

PARSE_SCHEME:
	res.Scheme = input[head:cur]
	cur++
	if at(input, cur) != '/' {
		return res, cur, &ParseError{Offset: cur, Byte: at(input, cur), Kind: InvalidByte}
	}
	cur++
	if at(input, cur) != '/' {
		return res, cur, &ParseError{Offset: cur, Byte: at(input, cur), Kind: InvalidByte}
	}
	cur++

PARSE_HOST:
	head = cur
	switch at(input, cur) {
	case '[':
		goto PARSE_IPV6

	case '/', '.':
		if !userinfoSet {
			goto PARSE_PATHNAME
		}
		return res, cur, &ParseError{Offset: cur, Byte: at(input, cur), Kind: InvalidByte}

	case ':':
		omitHostname = true
		tail = cur
		cur++
		goto PARSE_PORT

	default:
		if b := at(input, cur); b != '%' && !isAlnum(b) {
			return res, cur, &ParseError{Offset: cur, Byte: b, Kind: InvalidByte}
		}
	}

	for ; cur < n; cur++ {
		c := input[cur]
		switch c {
		case '.':
			continue

		case '@':
			if userinfoSet {
				return res, cur, &ParseError{Offset: cur, Byte: c, Kind: InvalidByte}
			}
			res.UserInfo = input[head:cur]
			res.User = input[head:cur]
			userinfoSet = true
			cur++
			goto PARSE_HOST

		case ':':
			tail = cur
			cur++
			goto PARSE_PORT

		case '/':
			res.Host = input[head:cur]
			res.Hostname = input[head:cur]
			goto PARSE_PATHNAME

		case '?':
			res.Host = input[head:cur]
			res.Hostname = input[head:cur]
			goto PARSE_QUERY

		case '#':
			res.Host = input[head:cur]
			res.Hostname = input[head:cur]
			cur++
			goto PARSE_FRAGMENT

		case '%':
			if !percentOK(input, cur) {
				return res, cur, &ParseError{Offset: cur, Byte: c, Kind: InvalidPercentEscape}
			}
			cur += 2

		default:
			if URIC[c] == 0 {
				res.Host = input[head:cur]
				res.Hostname = input[head:cur]
				return res, cur, &ParseError{Offset: cur, Byte: c, Kind: InvalidByte}
			}
		}
	}
	res.Host = input[head:cur]
	res.Hostname = input[head:cur]
	return res, cur, nil

PARSE_IPV6:
	head = cur
	cur++
	if newCur, b := parseIPv6(input, cur); b != ']' {
		return res, newCur, &ParseError{Offset: newCur, Byte: at(input, newCur), Kind: InvalidByte}
	} else {
		cur = newCur
	}
	cur++

	switch at(input, cur) {
	case ':':
		tail = cur
		cur++
		goto PARSE_PORT

	case '/':
		res.Host = input[head:cur]
		res.Hostname = input[head:cur]
		goto PARSE_PATHNAME

	case '?':
		res.Host = input[head:cur]
		res.Hostname = input[head:cur]
		goto PARSE_QUERY

	default:
		res.Host = input[head:cur]
		res.Hostname = input[head:cur]
		if cur == n {
			return res, cur, nil
		}
		return res, cur, &ParseError{Offset: cur, Byte: at(input, cur), Kind: InvalidByte}
	}

PARSE_PORT:
	phead = cur
	portnum = 0
	for ; cur < n; cur++ {
		c := input[cur]
		switch {
		case c >= '0' && c <= '9':
			portnum = portnum*10 + int(c-'0')
			if portnum > 0xFFFF {
				return res, cur, &ParseError{Offset: cur, Byte: c, Kind: PortOutOfRange}
			}

		case c == '/':
			res.Host = input[head:cur]
			res.Hostname = input[head:tail]
			res.Port = input[phead:cur]
			goto PARSE_PATHNAME

		case c == '?':
			res.Host = input[head:cur]
			res.Hostname = input[head:tail]
			res.Port = input[phead:cur]
			goto PARSE_QUERY

		case c == '#':
			res.Host = input[head:cur]
			res.Hostname = input[head:tail]
			res.Port = input[phead:cur]
			cur++
			goto PARSE_FRAGMENT

		default:
			if userinfoSet || omitHostname {
				return res, cur, &ParseError{Offset: cur, Byte: c, Kind: InvalidByte}
			}
			goto PARSE_PASSWORD
		}
	}
	res.Host = input[head:cur]
	res.Hostname = input[head:tail]
	res.Port = input[phead:cur]
	return res, cur, nil

PARSE_PASSWORD:
	for ; cur < n; cur++ {
		c := input[cur]
		switch c {
		case '@':
			res.UserInfo = input[head:cur]
			res.User = input[head:tail]
			res.Password = input[phead:cur]
			userinfoSet = true
			cur++
			goto PARSE_HOST

		case '%':
			if !percentOK(input, cur) {
				return res, cur, &ParseError{Offset: cur, Byte: c, Kind: InvalidPercentEscape}
			}
			cur += 2

		case ':', '/', '?', '#':
			return res, cur, &ParseError{Offset: cur, Byte: c, Kind: InvalidByte}

		default:
			if URIC[c] == 0 {
				return res, cur, &ParseError{Offset: cur, Byte: c, Kind: InvalidByte}
			}
		}
	}
	return res, cur, &ParseError{Offset: cur, Byte: at(input, cur), Kind: InvalidByte}

PARSE_QUERY:
	if cfg.queryParams {
		cur, res.Query, queryParams, stop = scanQueryParams(input, cur)
	} else {
		cur, res.Query, stop = scanQueryRaw(input, cur)
	}

	switch stop {
	case 0:
		if err := finishQuery(); err != nil {
			return res, cur, err
		}
		return res, cur, nil

	case '#':
		if err := finishQuery(); err != nil {
			return res, cur, err
		}
		cur++
		goto PARSE_FRAGMENT

	default:
		kind := InvalidByte
		if stop == '%' {
			kind = InvalidPercentEscape
		}
		return res, cur, &ParseError{Offset: cur, Byte: stop, Kind: kind}
	}

PARSE_FRAGMENT:
	{
		newCur, frag, fstop := scanFragment(input, cur)
		cur = newCur
		res.Fragment = frag
		if fstop != 0 {
			kind := InvalidByte
			if fstop == '%' {
				kind = InvalidPercentEscape
			}
			return res, cur, &ParseError{Offset: cur, Byte: fstop, Kind: kind}
		}
	}
	return res, cur, nil
}
