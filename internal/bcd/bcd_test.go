package bcd

import (
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestRoundTrip(t *testing.T) {
	c := qt.New(t)
	for v := 0; v <= 99; v++ {
		b, err := Encode(uint8(v))
		c.Assert(err, qt.IsNil)
		c.Assert(Decode(b), qt.Equals, uint8(v))
	}
}

func TestEncode(t *testing.T) {
	c := qt.New(t)
	tests := []struct {
		in   uint8
		want uint8
	}{
		{0, 0x00},
		{9, 0x09},
		{10, 0x10},
		{35, 0x35},
		{59, 0x59},
		{99, 0x99},
	}
	for _, test := range tests {
		got, err := Encode(test.in)
		c.Assert(err, qt.IsNil)
		c.Assert(got, qt.Equals, test.want, qt.Commentf("Encode(%d)", test.in))
	}
}

func TestEncodeOutOfRange(t *testing.T) {
	c := qt.New(t)
	for _, v := range []uint8{100, 128, 255} {
		_, err := Encode(v)
		c.Assert(err, qt.ErrorIs, ErrOutOfRange)
	}
}

func TestDecodeMalformed(t *testing.T) {
	c := qt.New(t)
	// Nibbles above 9 go through the formula unchanged.
	c.Assert(Decode(0x0A), qt.Equals, uint8(10))
	c.Assert(Decode(0xFF), qt.Equals, uint8(165))
}
