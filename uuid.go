/* Apache v2 license
 * Copyright (C) 2024 Svenskident
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package personuuid

import (
	"encoding/binary"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/svenskident/personuuid/bcd"
)

// Node is the fixed node identifier occupying the low 48 bits of every
// person UUID. It takes the place a version 1 UUID reserves for a hardware
// address and is the primary sentinel separating person UUIDs from
// arbitrary identifiers.
const Node = 0x0000_d49a_20d0_6c1a

const (
	numberDigits = 12
	serialDigits = 3

	// high half: 12 BCD number digits, the version nybble, 3 BCD serial
	// digits
	msbVersionMask = 0x0000_0000_0000_f000
	msbVersion     = 0x0000_0000_0000_1000
	msbSerialMask  = 0x0000_0000_0000_0fff
	msbNumberShift = 16

	// low half: variant bits 10, reserved bits, node field; the type
	// nybble at bits 48-51 is left unmasked and range-checked instead
	lsbMask     = 0xfff0_ffff_ffff_ffff
	lsbReserved = 0x9000_0000_0000_0000 | Node
	typeShift   = 48
)

// Encode assembles the person UUID carrying id. It cannot fail: everything
// the layout holds was validated when the Identity was constructed.
func Encode(id Identity) uuid.UUID {
	msb := bcd.Encode(id.number, numberDigits)<<msbNumberShift |
		msbVersion |
		bcd.Encode(uint64(id.serial), serialDigits)

	var u uuid.UUID
	binary.BigEndian.PutUint64(u[:8], msb)
	binary.BigEndian.PutUint64(u[8:], lsbReserved)
	return u
}

// UUID returns the person UUID carrying this identity.
func (id Identity) UUID() uuid.UUID {
	return Encode(id)
}

// Decode extracts the Identity encoded in u.
//
// It fails with ErrNonConformant unless the version nybble, the variant and
// reserved bits, and the node field hold exactly the reserved person UUID
// pattern, the type nybble is a known code, all 15 digit positions decode
// as decimal digits, and the number matches one of the known identity
// categories. The identity type is re-derived from the number
// rather than read from the type nybble, since the canonical layout leaves
// it zero. The Luhn digit and the embedded date are not re-validated: the
// number was fully validated when the UUID was minted, and layout revisions
// disagree on date strictness, so a previously issued identifier is never
// re-rejected here.
func Decode(u uuid.UUID) (Identity, error) {
	msb := binary.BigEndian.Uint64(u[:8])
	lsb := binary.BigEndian.Uint64(u[8:])

	if msb&msbVersionMask != msbVersion || lsb&lsbMask != lsbReserved {
		return Identity{}, errors.Wrapf(ErrNonConformant, "%s", u)
	}
	if t := IDType((lsb >> typeShift) & 0xf); !t.IsValid() {
		return Identity{}, errors.Wrapf(ErrNonConformant,
			"%s: unknown type nybble %d", u, int(t))
	}

	number, err := bcd.Decode(msb>>msbNumberShift, numberDigits)
	if err != nil {
		return Identity{}, errors.Wrapf(ErrNonConformant,
			"%s: identity number: %s", u, err)
	}
	serial, err := bcd.Decode(msb&msbSerialMask, serialDigits)
	if err != nil {
		return Identity{}, errors.Wrapf(ErrNonConformant,
			"%s: serial: %s", u, err)
	}

	typ, err := Classify(number)
	if err != nil {
		return Identity{}, errors.Wrapf(ErrNonConformant, "%s: %s", u, err)
	}

	return Identity{number: number, serial: int(serial), typ: typ}, nil
}

// IsConformant reports whether u would decode as a person UUID.
func IsConformant(u uuid.UUID) bool {
	_, err := Decode(u)
	return err == nil
}
