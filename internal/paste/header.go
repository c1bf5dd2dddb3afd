// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package paste

import (
	"strings"
	"time"
)

const burnAfterReadingLiteral = "burn-after-reading"

// ParseExpirationHeader parses the value of an inbound Expiration header
// into a Policy, relative to now. Accepted literal forms:
//
//	"burn-after-reading"                 → BurnAfterReading
//	"burn-after-reading=<RFC3339>"       → BurnAfterReadingWithDeadline
//	"<RFC3339>"                          → UnixTime
//
// Returns ErrMalformedExpiration if value matches none of these forms, or
// ErrPastDeadline if a time-bounded deadline is not strictly after now.
func ParseExpirationHeader(value string, now time.Time) (Policy, error) {
	if value == burnAfterReadingLiteral {
		return Policy{Tag: BurnAfterReading}, nil
	}

	if rest, ok := strings.CutPrefix(value, burnAfterReadingLiteral+"="); ok {
		deadline, err := time.Parse(time.RFC3339, rest)
		if err != nil {
			return Policy{}, ErrMalformedExpiration
		}
		if !deadline.After(now) {
			return Policy{}, ErrPastDeadline
		}
		return Policy{Tag: BurnAfterReadingWithDeadline, Deadline: deadline}, nil
	}

	deadline, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return Policy{}, ErrMalformedExpiration
	}
	if !deadline.After(now) {
		return Policy{}, ErrPastDeadline
	}
	return Policy{Tag: UnixTime, Deadline: deadline}, nil
}

// FormatExpirationHeader serialises p back into the literal form accepted
// by [ParseExpirationHeader], for echoing the Expiration header on GET
// responses.
func FormatExpirationHeader(p Policy) string {
	switch p.Tag {
	case BurnAfterReading:
		return burnAfterReadingLiteral
	case BurnAfterReadingWithDeadline:
		return burnAfterReadingLiteral + "=" + p.Deadline.Format(time.RFC3339)
	default:
		return p.Deadline.Format(time.RFC3339)
	}
}
