/* Apache v2 license
 * Copyright (C) 2024 Svenskident
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package personuuid

import (
	"fmt"
	"testing"

	"github.com/intel/rsp-sw-toolkit-im-suite-expect"
	"github.com/pkg/errors"
)

func TestNew(t *testing.T) {
	type row struct {
		name   string
		number uint64
		serial int
		typ    IDType
		cause  error
	}

	pass := func(n string, number uint64, serial int, typ IDType) row {
		return row{name: n, number: number, serial: serial, typ: typ}
	}
	fail := func(n string, number uint64, serial int, cause error) row {
		return row{name: n, number: number, serial: serial, cause: cause}
	}

	for i, tt := range []row{
		pass("orgnr", 5568099963, 0, OrgNr),
		pass("orgnr 16 century", 165568099963, 0, OrgNr),
		pass("persnr", 194106177753, 99, PersNr),
		pass("persnr 18 century", 181505269272, 0, PersNr),
		pass("persnr leap day", 200002290005, 0, PersNr),
		pass("samnr", 197010632391, 999, SamNr),
		pass("samnr day 91 in december", 197012910001, 0, SamNr),
		pass("gdnr", 3020002568, 3, GDNr),
		pass("gdnr ignores month and day", 3029999996, 0, GDNr),

		fail("13 digits", 1_000_000_000_000, 0, ErrMalformedNumber),
		fail("serial too large", 5568099963, 1000, ErrMalformedNumber),
		fail("serial negative", 5568099963, -1, ErrMalformedNumber),
		fail("wrong check digit", 5568099964, 0, ErrChecksum),
		fail("june 31", 194106317755, 0, ErrInvalidDate),
		fail("feb 29 non-leap", 190102290004, 0, ErrInvalidDate),
		fail("samnr feb 29 non-leap", 190102890001, 0, ErrInvalidDate),
		fail("day 92", 197012920000, 0, ErrUnclassifiable),
		fail("day 60", 197010600000, 0, ErrUnclassifiable),
		fail("persnr 17 century", 175001010007, 0, ErrUnclassifiable),
		fail("samnr 18 century", 187010630007, 0, ErrUnclassifiable),
		fail("month below org offset", 1015000001, 0, ErrUnclassifiable),
	} {
		t.Run(fmt.Sprintf("%02d_%s", i, tt.name), func(t *testing.T) {
			w := expect.WrapT(t)

			id, err := New(tt.number, tt.serial)
			if tt.cause != nil {
				w.As(tt.number).ShouldFail(err)
				w.ShouldBeEqual(errors.Cause(err), tt.cause)
				return
			}

			w.As(tt.number).ShouldSucceed(err)
			w.ShouldBeEqual(id.Number(), tt.number)
			w.ShouldBeEqual(id.Serial(), tt.serial)
			w.ShouldBeEqual(id.Type(), tt.typ)
		})
	}
}

func TestClassify_isStable(t *testing.T) {
	w := expect.WrapT(t)

	// Classify is a pure function of the number and must agree with the
	// type an Identity was constructed with
	for _, nr := range []uint64{
		5568099963, 165568099963,
		194106177753, 181505269272,
		197010632391,
		3020002568,
	} {
		id := w.StopOnMismatch().ShouldHaveResult(New(nr, 0)).(Identity)
		typ := w.ShouldHaveResult(Classify(nr)).(IDType)
		w.As(nr).ShouldBeEqual(typ, id.Type())
	}
}

func TestClassify_gdnrTakesPriority(t *testing.T) {
	w := expect.WrapT(t)

	// the 302 prefix wins even when the month/day groups look like nothing
	// else; the date groups here (month 29, day 99) fit no other category
	typ := w.ShouldHaveResult(Classify(3029999996)).(IDType)
	w.ShouldBeEqual(typ, GDNr)
}

func TestIDType(t *testing.T) {
	w := expect.WrapT(t)

	w.ShouldBeEqual(OrgNr.String(), "ORGNR")
	w.ShouldBeEqual(PersNr.String(), "PERSNR")
	w.ShouldBeEqual(SamNr.String(), "SAMNR")
	w.ShouldBeEqual(GDNr.String(), "GDNR")

	for typ := OrgNr; typ <= GDNr; typ++ {
		w.ShouldBeTrue(typ.IsValid())
	}
	w.ShouldBeFalse(IDType(-1).IsValid())
	w.ShouldBeFalse(IDType(4).IsValid())
}

func TestIsValidDate(t *testing.T) {
	w := expect.WrapT(t)

	w.ShouldBeTrue(isValidDate(2000, 2, 29))  // century divisible by 400
	w.ShouldBeFalse(isValidDate(1900, 2, 29)) // century not divisible by 400
	w.ShouldBeTrue(isValidDate(1904, 2, 29))
	w.ShouldBeFalse(isValidDate(1905, 2, 29))
	w.ShouldBeTrue(isValidDate(1970, 12, 31))
	w.ShouldBeFalse(isValidDate(1970, 4, 31))
	w.ShouldBeFalse(isValidDate(1970, 13, 1))
	w.ShouldBeFalse(isValidDate(1970, 0, 1))
	w.ShouldBeFalse(isValidDate(1970, 1, 0))
	w.ShouldBeFalse(isValidDate(1970, 1, 32))
}

func TestIdentity_String(t *testing.T) {
	w := expect.WrapT(t)

	org := w.ShouldHaveResult(New(5568099963, 0)).(Identity)
	w.ShouldBeEqual(org.String(), "00556809-9963")

	per := w.ShouldHaveResult(New(194106177753, 0)).(Identity)
	w.ShouldBeEqual(per.String(), "19410617-7753")
}

func TestIdentity_dateGroups(t *testing.T) {
	w := expect.WrapT(t)

	per := w.ShouldHaveResult(New(194106177753, 0)).(Identity)
	w.ShouldBeEqual(per.Year(), 1941)
	w.ShouldBeEqual(per.Month(), 6)
	w.ShouldBeEqual(per.Day(), 17)

	// coordination numbers keep the +60 offset in the day group
	sam := w.ShouldHaveResult(New(197010632391, 0)).(Identity)
	w.ShouldBeEqual(sam.Day(), 63)
}

func TestIdentity_Compare(t *testing.T) {
	w := expect.WrapT(t)

	org := w.ShouldHaveResult(New(5568099963, 0)).(Identity)
	per := w.ShouldHaveResult(New(194106177753, 0)).(Identity)
	per99 := w.ShouldHaveResult(New(194106177753, 99)).(Identity)
	old := w.ShouldHaveResult(New(181505269272, 0)).(Identity)

	w.ShouldBeEqual(org.Compare(per), -1) // by type first
	w.ShouldBeEqual(per.Compare(org), 1)
	w.ShouldBeEqual(old.Compare(per), -1) // then by number
	w.ShouldBeEqual(per.Compare(per99), -1)
	w.ShouldBeEqual(per.Compare(per), 0)
}
