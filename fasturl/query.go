package fasturl

import "bytes"

// QueryParam is one key/value occurrence from a query string, in the
// exact order it appeared. As produced by the query scanner, Key/Value
// are still percent-encoded spans into the original input; the entries
// of Result.QueryParamsOrder instead hold FORM-decoded copies.
type QueryParam struct {
	Key   []byte
	Value []byte
}

// percentOK reports whether url[pos] == '%' is followed by two hex
// digits, bounds-checking before delegating the classification itself
// to isPercentEncoded.
func percentOK(url []byte, pos int) bool {
	if pos+2 >= len(url) {
		return false
	}
	return isPercentEncoded(url[pos+1 : pos+3])
}

// scanQueryRaw scans the query string starting at the '?' found at
// cur, returning the position of the terminating byte, the query span
// with the leading '?' stripped, and that terminating byte ('#' or 0
// for a clean end-of-input; anything else is the offending byte).
func scanQueryRaw(url []byte, cur int) (pos int, query []byte, stop byte) {
	n := len(url)
	head := cur + 1
	pos = head

	for ; pos < n; pos++ {
		c := url[pos]
		switch {
		case c == '#':
			if pos > head {
				query = url[head:pos]
			}
			return pos, query, '#'
		case URIC[c] == 0:
			return pos, query, c
		case c == '%':
			if !percentOK(url, pos) {
				return pos, query, '%'
			}
			pos += 2
		}
	}

	if pos > head {
		query = url[head:pos]
	}
	return pos, query, 0
}

// scanQueryParams scans the query string the same way scanQueryRaw
// does, additionally splitting on "&" and the first "=" of each
// parameter to produce the positional (key, value) sequence. A
// parameter with no "=" is a bare key; an empty segment between two
// "&"s (or a leading/trailing one) is skipped, matching push_param's
// net effect in the reference implementation.
func scanQueryParams(url []byte, cur int) (pos int, query []byte, params []QueryParam, stop byte) {
	n := len(url)
	head := cur + 1
	paramStart := head
	pos = head

	emit := func(end int) {
		if end > paramStart {
			seg := url[paramStart:end]
			if eq := bytes.IndexByte(seg, '='); eq >= 0 {
				params = append(params, QueryParam{Key: seg[:eq], Value: seg[eq+1:]})
			} else {
				params = append(params, QueryParam{Key: seg, Value: nil})
			}
		}
		paramStart = end + 1
	}

	for ; pos < n; pos++ {
		c := url[pos]
		switch {
		case c == '#':
			emit(pos)
			if pos > head {
				query = url[head:pos]
			}
			return pos, query, params, '#'
		case URIC[c] == 0:
			return pos, query, params, c
		case c == '&':
			emit(pos)
		case c == '%':
			if !percentOK(url, pos) {
				return pos, query, params, '%'
			}
			pos += 2
		}
	}

	emit(pos)
	if pos > head {
		query = url[head:pos]
	}
	return pos, query, params, 0
}

// decodeQueryParams FORM-decodes every key/value span in params and
// both groups them by key (preserving first-appearance order via
// keys) and retains the full positional sequence.
func decodeQueryParams(params []QueryParam) (grouped map[string][]string, keys []string, ordered []QueryParam, err error) {
	if len(params) == 0 {
		return nil, nil, nil, nil
	}

	grouped = make(map[string][]string, len(params))
	ordered = make([]QueryParam, 0, len(params))

	for _, p := range params {
		key, decErr := DecodeForm(p.Key)
		if decErr != nil {
			return nil, nil, nil, decErr
		}
		var value []byte
		if p.Value != nil {
			value, decErr = DecodeForm(p.Value)
			if decErr != nil {
				return nil, nil, nil, decErr
			}
		}

		k := string(key)
		if _, seen := grouped[k]; !seen {
			keys = append(keys, k)
		}
		grouped[k] = append(grouped[k], string(value))
		ordered = append(ordered, QueryParam{Key: key, Value: value})
	}

	return grouped, keys, ordered, nil
}

// scanFragment scans a fragment starting at cur (positioned just past
// the "#"), returning the terminating position and byte. A return of
// 0 means the fragment ran to the end of input; anything else is the
// offending byte.
func scanFragment(url []byte, cur int) (pos int, fragment []byte, stop byte) {
	n := len(url)
	head := cur
	for pos = head; pos < n; pos++ {
		c := url[pos]
		switch {
		case URIC[c] == 0 || c == '#':
			fragment = url[head:pos]
			return pos, fragment, c
		case c == '%':
			if !percentOK(url, pos) {
				fragment = url[head:pos]
				return pos, fragment, '%'
			}
			pos += 2
		}
	}
	fragment = url[head:pos]
	return pos, fragment, 0
}
