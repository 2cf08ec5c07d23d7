package fasturl

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	cases := []struct {
		input  string
		policy Policy
	}{
		{"hello world!", PolicyURI},
		{"hello world!", Policy2396},
		{"hello world!", Policy3986},
		{"a/b?c=d&e=f#g", PolicyURI},
		{"\x00\x01\xff binary", Policy3986},
		{"unreserved-._~stays", Policy3986},
	}

	for i, tc := range cases {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			encoded := Encode([]byte(tc.input), tc.policy)
			decoded, err := Decode(encoded)
			require.NoError(t, err)
			assert.Equal(t, tc.input, string(decoded))
		})
	}
}

func TestEncodeFormRoundTrip(t *testing.T) {
	encoded := EncodeForm([]byte("a b+c"))
	assert.Equal(t, "a+b%2Bc", string(encoded))

	decoded, err := DecodeForm(encoded)
	require.NoError(t, err)
	assert.Equal(t, "a b+c", string(decoded))
}

func TestEncodeOutputOnlyUsesASCIISafeCharset(t *testing.T) {
	for _, tbl := range []struct {
		name   string
		policy Policy
	}{
		{"uri", PolicyURI},
		{"form", PolicyForm},
		{"2396", Policy2396},
		{"3986", Policy3986},
	} {
		t.Run(tbl.name, func(t *testing.T) {
			out := Encode([]byte("\x00\x7f\xffhello WORLD 123!@#$%^&*()"), tbl.policy)
			for _, c := range out {
				ok := c == '%' || c == '+' || (c >= '0' && c <= '9') ||
					(c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z') ||
					tbl.policy.table()[c] != 0
				assert.True(t, ok, "byte %q must be percent-escaped or unreserved", c)
			}
		})
	}
}

func TestEncodeIdentityOnAlreadySafeInput(t *testing.T) {
	safe := "abcXYZ019-._~"
	assert.Equal(t, safe, string(Encode([]byte(safe), Policy3986)))
}

func TestDecodeURIPreservesReservedEscapes(t *testing.T) {
	decoded, err := DecodeURI([]byte("a%2Fb%20c"))
	require.NoError(t, err)
	assert.Equal(t, "a%2Fb c", string(decoded))
}

func TestDecodeLegacyUnicodeEscape(t *testing.T) {
	decoded, err := Decode([]byte("%u00e9"))
	require.NoError(t, err)
	assert.Equal(t, "é", string(decoded))
}

func TestDecodeSurrogatePair(t *testing.T) {
	decoded, err := Decode([]byte("%uD83D%uDE00"))
	require.NoError(t, err)
	assert.Equal(t, []byte{0xF0, 0x9F, 0x98, 0x80}, decoded)
	assert.Equal(t, "😀", string(decoded))
}

func TestDecodeUnpairedHighSurrogateFails(t *testing.T) {
	_, err := Decode([]byte("%uD83D"))
	require.Error(t, err)
	var decErr *DecodeError
	require.ErrorAs(t, err, &decErr)
	assert.Equal(t, InvalidUnicodeEscape, decErr.Kind)
}

func TestDecodeLoneLowSurrogateFails(t *testing.T) {
	_, err := Decode([]byte("%uDE00"))
	require.Error(t, err)
	var decErr *DecodeError
	require.ErrorAs(t, err, &decErr)
	assert.Equal(t, InvalidUnicodeEscape, decErr.Kind)
}

func TestDecodeHighSurrogateFollowedByNonLowSurrogateFails(t *testing.T) {
	_, err := Decode([]byte("%uD83D%u0041"))
	require.Error(t, err)
	var decErr *DecodeError
	require.ErrorAs(t, err, &decErr)
	assert.Equal(t, InvalidUnicodeEscape, decErr.Kind)
}

func TestDecodeTruncatedPercentFails(t *testing.T) {
	_, err := Decode([]byte("abc%2"))
	require.Error(t, err)
	var decErr *DecodeError
	require.ErrorAs(t, err, &decErr)
	assert.Equal(t, InvalidPercentEscape, decErr.Kind)
}

func TestDecodeInvalidHexFails(t *testing.T) {
	_, err := Decode([]byte("%zz"))
	require.Error(t, err)
	var decErr *DecodeError
	require.ErrorAs(t, err, &decErr)
	assert.Equal(t, InvalidPercentEscape, decErr.Kind)
}
