// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package paste implements the canonical binary record format stored under
// each paste identifier: a fixed 10-byte policy header followed by the
// opaque ciphertext envelope produced by internal/envelope.
//
// Layout:
//
//	byte 0       : policy tag (0 = BurnAfterReading, 1 = BurnAfterReadingWithDeadline, 2 = UnixTime)
//	bytes 1..9   : deadline, big-endian unix-seconds int64 (all-zero/absent when tag == 0)
//	byte 9       : requires_password flag (0x00 / 0x01)
//	bytes 10..   : ciphertext
//
// [DecodePolicy] decodes only the first 10 bytes, used by the reaper to
// evaluate expiration without paying for the ciphertext copy.
package paste

import (
	"encoding/binary"
	"time"
)

// PolicyTag identifies which of the three expiration policies a record
// carries.
type PolicyTag uint8

const (
	// BurnAfterReading records are deliverable exactly once, regardless of
	// elapsed time, then destroyed by the handler that served them.
	BurnAfterReading PolicyTag = iota
	// BurnAfterReadingWithDeadline records are deliverable at most once and
	// only before Deadline.
	BurnAfterReadingWithDeadline
	// UnixTime records are deliverable repeatedly until Deadline.
	UnixTime
)

// HeaderSize is the fixed length, in bytes, of the policy header that
// precedes every record's ciphertext.
const HeaderSize = 10

// Policy describes a record's expiration behaviour and whether it requires
// a password to decrypt.
type Policy struct {
	Tag               PolicyTag
	Deadline          time.Time // zero value when Tag == BurnAfterReading
	RequiresPassword  bool
}

// Record pairs a Policy with the opaque ciphertext envelope it guards.
type Record struct {
	Policy     Policy
	Ciphertext []byte
}

// Expired reports whether p's deadline, if any, has passed as of now.
// BurnAfterReading records never expire by time; they expire only by being
// read once (the reaper is not responsible for burn-without-deadline
// cleanup).
func (p Policy) Expired(now time.Time) bool {
	switch p.Tag {
	case BurnAfterReadingWithDeadline, UnixTime:
		return !p.Deadline.After(now)
	default:
		return false
	}
}

// Encode serialises r into the canonical record layout: a 10-byte policy
// header followed by the ciphertext, unmodified.
func Encode(r Record) []byte {
	buf := make([]byte, HeaderSize+len(r.Ciphertext))
	buf[0] = byte(r.Policy.Tag)

	var deadlineSeconds int64
	if r.Policy.Tag != BurnAfterReading {
		deadlineSeconds = r.Policy.Deadline.Unix()
	}
	binary.BigEndian.PutUint64(buf[1:9], uint64(deadlineSeconds))

	if r.Policy.RequiresPassword {
		buf[9] = 0x01
	}

	copy(buf[HeaderSize:], r.Ciphertext)
	return buf
}

// Decode parses the full canonical record layout, including the ciphertext
// body. Returns ErrCorruptRecord if data is shorter than HeaderSize.
func Decode(data []byte) (Record, error) {
	policy, err := DecodePolicy(data)
	if err != nil {
		return Record{}, err
	}

	ciphertext := make([]byte, len(data)-HeaderSize)
	copy(ciphertext, data[HeaderSize:])

	return Record{Policy: policy, Ciphertext: ciphertext}, nil
}

// DecodePolicy parses only the fixed 10-byte policy header, skipping the
// ciphertext body entirely. Used by the reaper's expiration sweep, which
// only ever needs the policy to decide whether a record should be evicted.
//
// Returns ErrCorruptRecord if data is shorter than HeaderSize or carries an
// unrecognised policy tag.
func DecodePolicy(data []byte) (Policy, error) {
	if len(data) < HeaderSize {
		return Policy{}, ErrCorruptRecord
	}

	tag := PolicyTag(data[0])
	if tag > UnixTime {
		return Policy{}, ErrCorruptRecord
	}

	deadlineSeconds := int64(binary.BigEndian.Uint64(data[1:9]))
	var deadline time.Time
	if tag != BurnAfterReading {
		deadline = time.Unix(deadlineSeconds, 0).UTC()
	}

	return Policy{
		Tag:              tag,
		Deadline:         deadline,
		RequiresPassword: data[9] == 0x01,
	}, nil
}
