// Package fasturl implements a strict, single-pass RFC 3986 URI parser
// and a family of percent-encoding/decoding functions.
//
// The parser (Parse, ParseString) decomposes a byte string into
// scheme, userinfo/user/password, host/hostname/port, path, query and
// fragment spans without copying them: every Result span field is a
// window into the parsed input. The codec (Encode* and Decode*)
// percent-encodes under four unreserved-character policies and
// percent-decodes under three modes, including legacy "%uXXXX" escapes
// and UTF-16 surrogate pair reassembly.
//
// Both halves are pure and safe for concurrent use on disjoint inputs,
// and neither ever mutates the input. The codec allocates only the
// output buffer it returns; Parse allocates the Result and, when query
// decomposition is requested, the decoded query parameters.
package fasturl
