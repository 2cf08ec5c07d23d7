package fasturl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestURICTable(t *testing.T) {
	for _, c := range []byte("/:;=?@#%+.-") {
		assert.NotZero(t, URIC[c], "jump symbol %q must be non-zero", c)
	}
	for _, c := range []byte("<>`|{}\"[]\\^") {
		assert.Zero(t, URIC[c], "disallowed byte %q must be zero", c)
	}
	for _, c := range []byte("abcXYZ019") {
		assert.Equal(t, c, URIC[c])
	}
}

func TestHexTablesAgree(t *testing.T) {
	hexAlphabet := "0123456789ABCDEFabcdef"
	for _, c := range []byte(hexAlphabet) {
		require := isHexDigit(c)
		assert.True(t, require, "%q must be classified as hex", c)
		assert.NotZero(t, hexValuePlus1[c])
	}
	for c := 0; c < 256; c++ {
		b := byte(c)
		isHex := isHexDigit(b)
		assert.Equal(t, isHex, hexValuePlus1[b] != 0, "HEXDIGIT and hexValuePlus1 must classify %d identically", c)
	}

	assert.Equal(t, byte(1), hexValuePlus1['0'])
	assert.Equal(t, byte(10), hexValuePlus1['9'])
	assert.Equal(t, byte(11), hexValuePlus1['A'])
	assert.Equal(t, byte(16), hexValuePlus1['F'])
	assert.Equal(t, byte(11), hexValuePlus1['a'])
	assert.Equal(t, byte(16), hexValuePlus1['f'])
}

func TestUnreservedTablesDisjointFromPercent(t *testing.T) {
	for _, tbl := range []*[256]byte{&UNRESERVED_URI, &UNRESERVED_FORM, &UNRESERVED_2396, &UNRESERVED_3986} {
		assert.Zero(t, tbl['%'], "'%%' must always require escaping")
	}
}

func TestUnreservedFormMapsSpaceToPlus(t *testing.T) {
	assert.Equal(t, byte('+'), UNRESERVED_FORM[' '])
	assert.Zero(t, UNRESERVED_URI[' '])
	assert.Zero(t, UNRESERVED_2396[' '])
	assert.Zero(t, UNRESERVED_3986[' '])
}

func TestDEC2HEXIsUppercase(t *testing.T) {
	assert.Equal(t, "0123456789ABCDEF", string(DEC2HEX[:]))
}
