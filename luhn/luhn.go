// Package luhn computes Luhn mod-10 check digits over decimal numbers.
package luhn

// payloadMod keeps check digit computation to the 9 digits preceding the
// check digit, matching the window Swedish identity numbers are checked over
// (century digits do not participate).
const payloadMod = 1_000_000_000

// CheckDigit returns the Luhn check digit for payload: the digit that,
// appended to payload, makes the extended sequence Luhn-valid.
//
// Digits are processed least to most significant, every other digit doubled
// starting with the least significant one; a doubled value of 10 or more
// contributes the sum of its two digits.
func CheckDigit(payload uint64) int {
	sum := 0
	double := true
	for n := payload; n != 0; n /= 10 {
		d := int(n % 10)
		if double {
			d *= 2
		}
		sum += d%10 + d/10
		double = !double
	}

	// mod 10 additive inverse
	return (10 - sum%10) % 10
}

// Valid reports whether the final digit of number equals the check digit
// computed over the 9 digits immediately preceding it. Digits above that
// window are ignored.
func Valid(number uint64) bool {
	return int(number%10) == CheckDigit((number/10)%payloadMod)
}
