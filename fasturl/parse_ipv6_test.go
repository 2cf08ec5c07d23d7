package fasturl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseIPv6Loopback(t *testing.T) {
	res, cur, err := ParseString("[::1]")
	require.NoError(t, err)
	assert.Equal(t, 5, cur)
	assert.Equal(t, "[::1]", string(res.Host))
	assert.Equal(t, "[::1]", string(res.Hostname))
}

func TestParseIPv6FullyExpanded(t *testing.T) {
	res, cur, err := ParseString("[1:2:3:4:5:6:7:8]")
	require.NoError(t, err)
	assert.Equal(t, len("[1:2:3:4:5:6:7:8]"), cur)
	assert.Equal(t, "[1:2:3:4:5:6:7:8]", string(res.Host))
}

func TestParseIPv6DoubleZeroGroupFails(t *testing.T) {
	_, _, err := ParseString("[1::2::3]")
	require.Error(t, err)
}

func TestParseIPv6WithEmbeddedIPv4(t *testing.T) {
	res, _, err := ParseString("[::ffff:192.168.1.1]")
	require.NoError(t, err)
	assert.Equal(t, "[::ffff:192.168.1.1]", string(res.Host))
}

func TestParseIPv6HostWithPortAndPath(t *testing.T) {
	// The scheme-qualified form reaches the bracketed host through
	// PARSE_SCHEME rather than the initial '[' dispatch and exercises the
	// same host/port/path split.
	res, cur, err := ParseString("http://[2001:db8::1]:80/p")
	require.NoError(t, err)
	assert.Equal(t, len("http://[2001:db8::1]:80/p"), cur)
	assert.Equal(t, "[2001:db8::1]:80", string(res.Host))
	assert.Equal(t, "[2001:db8::1]", string(res.Hostname))
	assert.Equal(t, "80", string(res.Port))
	assert.Equal(t, "/p", string(res.Path))
}

func TestParseIPv6UnterminatedFails(t *testing.T) {
	_, _, err := ParseString("[::1/p")
	require.Error(t, err)
}

func TestParseIPv4AcceptsLeadingZeros(t *testing.T) {
	in := []byte("01.02.03.04]")
	pos, stop := parseIPv4(in, 0)
	assert.Equal(t, byte(']'), stop)
	assert.Equal(t, len("01.02.03.04"), pos)
}

func TestParseIPv4RejectsOutOfRangeOctet(t *testing.T) {
	in := []byte("1.2.3.256]")
	_, stop := parseIPv4(in, 0)
	assert.NotEqual(t, byte(']'), stop)
}
