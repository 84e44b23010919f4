/* Apache v2 license
 * Copyright (C) 2024 Svenskident
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package personuuid

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Accepted textual shapes. Input is gated on shape up front, so anything
// else fails before reaching the numeric or UUID parsers.
var (
	plainRegex = regexp.MustCompile(`^(\d{10}|\d{12})$`)
	shortRegex = regexp.MustCompile(`^\d{6}-\d{4}$`)
	longRegex  = regexp.MustCompile(`^\d{8}-\d{4}$`)
	uuidRegex  = regexp.MustCompile(`^[0-9a-fA-F]{8}(-[0-9a-fA-F]{4}){3}-[0-9a-fA-F]{12}$`)
)

// Parse accepts an identity number in one of the human-entered forms
// "DDDDDDDDDD", "DDDDDDDDDDDD", "DDDDDD-DDDD" or "DDDDDDDD-DDDD", or the
// canonical text form of a person UUID, and returns the validated Identity.
//
// Numeric forms go through full construction, so a number that is
// checksum-invalid, date-invalid or unclassifiable is rejected even when
// its shape matches. Text matching none of the shapes fails with
// ErrUnparsable.
func Parse(s string) (Identity, error) {
	switch {
	case plainRegex.MatchString(s):
		return parseDigits(s)
	case shortRegex.MatchString(s), longRegex.MatchString(s):
		i := strings.IndexByte(s, '-')
		return parseDigits(s[:i] + s[i+1:])
	case uuidRegex.MatchString(s):
		u, err := uuid.Parse(s)
		if err != nil {
			return Identity{}, errors.Wrapf(ErrUnparsable, "%q: %s", s, err)
		}
		return Decode(u)
	}
	return Identity{}, errors.Wrapf(ErrUnparsable, "%q", s)
}

func parseDigits(digits string) (Identity, error) {
	n, err := strconv.ParseUint(digits, 10, 64)
	if err != nil {
		// unreachable for the gated shapes, but don't swallow it
		return Identity{}, errors.Wrapf(ErrUnparsable, "%q: %s", digits, err)
	}
	return New(n, 0)
}
