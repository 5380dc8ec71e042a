// Package bcd converts between small decimal values and packed binary-coded
// decimal as used by RTC time registers.
package bcd

import (
	"errors"
	"fmt"
)

// ErrOutOfRange is returned by Encode for values that do not fit in two
// decimal digits.
var ErrOutOfRange = errors.New("value out of range")

// Encode packs v (0-99) into a BCD byte, tens in the high nibble.
func Encode(v uint8) (uint8, error) {
	if v > 99 {
		return 0, fmt.Errorf("bcd: %d: %w", v, ErrOutOfRange)
	}
	return (v/10)<<4 | v%10, nil
}

// Decode unpacks a BCD byte. Nibbles above 9 are not rejected, they decode
// with the same formula the chip itself uses.
func Decode(b uint8) uint8 {
	return (b>>4)*10 + b&0x0F
}
