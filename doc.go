/* Apache v2 license
 * Copyright (C) 2024 Svenskident
 *
 * SPDX-License-Identifier: Apache-2.0
 */

// Package personuuid encodes Swedish identity numbers -- organisation
// numbers (orgnr), personal numbers (personnummer), coordination numbers
// (samordningsnummer) and reserved placeholder numbers -- as version-1-shaped
// UUIDs, so the number can travel through systems that expect opaque 128-bit
// identifiers and still be recovered intact.
//
// The identity number is stored one digit per nybble across the time_low and
// time_mid fields, which keeps it readable in the canonical UUID hex form. A
// serial number occupies time_hi as three further BCD digits, to tell apart
// multiple registrations sharing one natural person's number. The remaining
// bits hold a fixed reserved pattern, ending in a fixed node identifier,
// which lets a UUID be recognized as carrying an identity number without any
// external lookup:
//
//	00112233 4455 6677 8899 aabbccddeeff
//	-------- ---- ---- ---- ------------
//	xxxxxxxx-xxxx-Mxxx-Nxxx-xxxxxxxxxxxx
//	iiiiiiii-iiii-1sss-9000-d49a20d06c1a
//	\___________/ |\_/ \__/ \__________/
//	      |       |  |    |       |
//	      |       |  |    |  fixed node identifier
//	      |       |  |    |
//	      |       |  |  variant bits plus reserved zero bits; the low
//	      |       |  |  nybble tolerates the type codes 0-3 stamped by
//	      |       |  |  an earlier layout revision
//	      |       |  |
//	      |       | serial number, 3 BCD digits
//	      |       |
//	      |      version 1: date-time and MAC address
//	      |
//	  identity number, 1 digit per nybble
//
// Nothing in this package generates identifiers: a person UUID is always
// derived from an existing, checksum-verified identity number, and decoding
// a person UUID recovers exactly that number. Every operation is a pure
// function over immutable values and is safe for concurrent use.
package personuuid
