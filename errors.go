/* Apache v2 license
 * Copyright (C) 2024 Svenskident
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package personuuid

import "github.com/pkg/errors"

// Sentinel causes for the validation failures this package reports. Errors
// returned from this package wrap one of these with context; callers that
// need to branch on the failure category should compare errors.Cause(err)
// against them. All failures are deterministic input-validation results,
// never transient conditions.
var (
	// ErrMalformedNumber reports an identity number or serial outside the
	// representable range (number of more than 12 digits, serial outside
	// 0-999).
	ErrMalformedNumber = errors.New("identity number or serial out of range")

	// ErrChecksum reports a final digit that does not match the Luhn check
	// digit computed over the 9 digits preceding it.
	ErrChecksum = errors.New("check digit mismatch")

	// ErrInvalidDate reports an embedded (year, month, day) that is not a
	// real calendar date, after undoing the coordination number day offset.
	ErrInvalidDate = errors.New("invalid date in identity number")

	// ErrUnclassifiable reports a digit pattern matching none of the four
	// known identity number categories.
	ErrUnclassifiable = errors.New("identity number matches no known type")

	// ErrNonConformant reports a 128-bit value whose version, variant,
	// reserved bits or node field deviate from the person UUID layout, or
	// whose digit positions hold non-decimal nybbles.
	ErrNonConformant = errors.New("not a person UUID")

	// ErrUnparsable reports text matching none of the accepted identity
	// number shapes.
	ErrUnparsable = errors.New("unrecognized identity number format")
)
