/* Apache v2 license
 * Copyright (C) 2024 Svenskident
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package personuuid

import (
	"fmt"
	"strconv"

	"github.com/pkg/errors"

	"github.com/svenskident/personuuid/luhn"
)

// IDType identifies which of the four known identity number categories a
// number belongs to. The codes match the type nybble stamped by the layout
// revision that carries an explicit type field.
type IDType int

const (
	// OrgNr is an organisation number, identifying a legal entity.
	OrgNr = IDType(0)
	// PersNr is a personal number, embedding a real birth date.
	PersNr = IDType(1)
	// SamNr is a coordination number: a personal number shape with the
	// day of birth offset by 60, issued to persons without a personal
	// number.
	SamNr = IDType(2)
	// GDNr is a reserved placeholder number, recognizable by its fixed
	// leading digit pattern.
	GDNr = IDType(3)
)

// IsValid returns true if the IDType is one of the four known categories.
func (t IDType) IsValid() bool {
	return t >= OrgNr && t <= GDNr
}

func (t IDType) String() string {
	switch t {
	case OrgNr:
		return "ORGNR"
	case PersNr:
		return "PERSNR"
	case SamNr:
		return "SAMNR"
	case GDNr:
		return "GDNR"
	}
	return "Unknown identity type: " + strconv.Itoa(int(t))
}

const (
	// maxNumber bounds identity numbers to the 12 decimal digits the
	// layout can hold; shorter numbers are conceptually left-padded with
	// zeros.
	maxNumber = 1_000_000_000_000
	// maxSerial bounds serials to the 3 BCD digits of the time_hi field.
	maxSerial = 999

	// gdnrPrefix is the fixed leading pattern of reserved placeholder
	// numbers, independent of the century/month/day digit groups.
	gdnrPrefix = 302

	// luhnWindow keeps the check digit computation to the 9 digits
	// preceding it; century digits do not participate.
	luhnWindow = 1_000_000_000
)

// Identity is a validated, immutable Swedish identity number together with
// its serial number and identity type.
//
// An Identity only comes into existence through New, Parse or Decode; a
// value that fails validation is never constructed, so there is no invalid
// state to check for.
type Identity struct {
	number uint64
	serial int
	typ    IDType
}

// Number returns the identity number, up to 12 decimal digits.
func (id Identity) Number() uint64 {
	return id.number
}

// Serial returns the serial number, or zero if none was assigned. It
// disambiguates multiple registrations sharing one natural person's number.
func (id Identity) Serial() int {
	return id.serial
}

// Type returns the identity number category.
func (id Identity) Type() IDType {
	return id.typ
}

// Year returns the century and year digit group of the number. For
// organisation and placeholder numbers the group is synthetic, not a
// calendar year.
func (id Identity) Year() int {
	y, _, _ := dateParts(id.number)
	return int(y)
}

// Month returns the month digit group of the number. Organisation numbers
// hold a synthetic value of 20 or more here.
func (id Identity) Month() int {
	_, m, _ := dateParts(id.number)
	return int(m)
}

// Day returns the day digit group of the number, still carrying the +60
// offset for coordination numbers.
func (id Identity) Day() int {
	_, _, d := dateParts(id.number)
	return int(d)
}

// String formats the identity number in its canonical 12-digit hyphenated
// form, e.g. "19410617-7753".
func (id Identity) String() string {
	return fmt.Sprintf("%08d-%04d", id.number/10_000, id.number%10_000)
}

// Compare orders identities by type, then number, then serial. It returns
// -1, 0 or 1.
func (id Identity) Compare(other Identity) int {
	switch {
	case id.typ != other.typ:
		if id.typ < other.typ {
			return -1
		}
		return 1
	case id.number != other.number:
		if id.number < other.number {
			return -1
		}
		return 1
	case id.serial != other.serial:
		if id.serial < other.serial {
			return -1
		}
		return 1
	}
	return 0
}

// New validates a raw decimal identity number and returns its Identity. The
// identity type is inferred from the number's digit structure; serial may be
// zero if no serial number was assigned.
//
// New enforces every invariant the scheme defines: the number and serial
// ranges (ErrMalformedNumber), the Luhn check digit (ErrChecksum), the
// classification rules (ErrUnclassifiable), and for personal and
// coordination numbers the embedded calendar date (ErrInvalidDate).
func New(number uint64, serial int) (Identity, error) {
	if number >= maxNumber {
		return Identity{}, errors.Wrapf(ErrMalformedNumber,
			"identity number %d has more than 12 digits", number)
	}
	if serial < 0 || serial > maxSerial {
		return Identity{}, errors.Wrapf(ErrMalformedNumber,
			"serial must be in [0,%d], but is %d", maxSerial, serial)
	}

	if want := luhn.CheckDigit((number / 10) % luhnWindow); int(number%10) != want {
		return Identity{}, errors.Wrapf(ErrChecksum,
			"identity %012d: expected check digit %d", number, want)
	}

	typ, err := Classify(number)
	if err != nil {
		return Identity{}, err
	}

	year, month, day := dateParts(number)
	switch typ {
	case PersNr:
		if !isValidDate(year, month, day) {
			return Identity{}, errors.Wrapf(ErrInvalidDate,
				"identity %012d: %d-%02d-%02d", number, year, month, day)
		}
	case SamNr:
		// the classifier guarantees day >= 61 here
		if !isValidDate(year, month, day-60) {
			return Identity{}, errors.Wrapf(ErrInvalidDate,
				"identity %012d: %d-%02d-%02d", number, year, month, day-60)
		}
	}

	return Identity{number: number, serial: serial, typ: typ}, nil
}

// Classify derives the identity type from the digit structure of number
// alone, evaluated in priority order:
//
//  1. Numbers with the fixed leading pattern 302 are placeholder numbers,
//     regardless of their remaining digit groups.
//  2. Numbers whose century group is 0 or 16 with a month group of 20 or
//     more are organisation numbers; the synthetic month offset keeps them
//     from colliding with real calendar months.
//  3. Numbers with century 18 or later, a real month, and a day of 1-31 are
//     personal numbers.
//  4. Numbers with century 19 or later, a real month, and a day of 61-91
//     are coordination numbers.
//
// Anything else fails with ErrUnclassifiable. Classify checks digit
// structure only; New additionally validates the embedded calendar date.
func Classify(number uint64) (IDType, error) {
	if number/10_000_000 == gdnrPrefix {
		return GDNr, nil
	}

	year, month, day := dateParts(number)
	century := year / 100
	switch {
	case (century == 0 || century == 16) && month >= 20:
		return OrgNr, nil
	case century >= 18 && month >= 1 && month <= 12 && day >= 1 && day <= 31:
		return PersNr, nil
	case century >= 19 && month >= 1 && month <= 12 && day >= 61 && day <= 91:
		return SamNr, nil
	}
	return 0, errors.Wrapf(ErrUnclassifiable, "identity number %d", number)
}

// dateParts splits a number into its (century+year, month, day) digit
// groups, reading the canonical 12-digit layout YYYYMMDDNNNC from the most
// significant end.
func dateParts(number uint64) (year, month, day uint64) {
	return number / 100_000_000, (number / 1_000_000) % 100, (number / 10_000) % 100
}

// isValidDate applies the Gregorian day-in-month bounds, with February
// using the leap year rule: divisible by 4, except centuries not divisible
// by 400.
func isValidDate(year, month, day uint64) bool {
	if day < 1 || month < 1 || month > 12 {
		return false
	}

	var dim uint64
	switch month {
	case 2:
		dim = 28
		if isLeapYear(year) {
			dim = 29
		}
	case 4, 6, 9, 11:
		dim = 30
	default:
		dim = 31
	}
	return day <= dim
}

func isLeapYear(year uint64) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}
