// Package bcd packs and unpacks sequences of decimal digits as 4-bit groups
// (nybbles) of a 64-bit word, one digit per nybble. A word encoded this way
// reads as the original decimal number in its hexadecimal representation,
// which is the property the personuuid layout depends on.
package bcd

import (
	"github.com/pkg/errors"
)

// MaxDigits is the number of nybbles in a 64-bit word.
const MaxDigits = 16

// Encode packs the digits least-significant decimal digits of n into the low
// digits nybbles of the returned word, so that digit i (0 = ones place) sits
// at bit offset 4*i. Digits of n beyond the requested count are truncated.
func Encode(n uint64, digits int) uint64 {
	if digits > MaxDigits {
		digits = MaxDigits
	}
	var w uint64
	for i := 0; i < digits; i++ {
		w |= (n % 10) << uint(i*4)
		n /= 10
	}
	return w
}

// Decode reads digits consecutive nybbles of w, starting at bit offset 0,
// and composes them into a decimal number, most significant nybble first.
//
// It fails if any consumed nybble holds a value greater than 9: such a word
// is not a BCD encoding at all, which is the check that separates conforming
// identifiers from arbitrary bit patterns.
func Decode(w uint64, digits int) (uint64, error) {
	if digits < 0 || digits > MaxDigits {
		return 0, errors.Errorf("digit count must be in [0,%d], but is %d",
			MaxDigits, digits)
	}
	var n uint64
	for i := digits - 1; i >= 0; i-- {
		d := (w >> uint(i*4)) & 0xf
		if d > 9 {
			return 0, errors.Errorf("invalid BCD digit %#x at nybble %d", d, i)
		}
		n = n*10 + d
	}
	return n, nil
}
