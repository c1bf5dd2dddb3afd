package paste

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecode_BurnAfterReading_RoundTrip(t *testing.T) {
	r := Record{
		Policy:     Policy{Tag: BurnAfterReading, RequiresPassword: false},
		Ciphertext: []byte("hello ciphertext"),
	}

	encoded := Encode(r)
	decoded, err := Decode(encoded)
	require.NoError(t, err)

	assert.Equal(t, BurnAfterReading, decoded.Policy.Tag)
	assert.False(t, decoded.Policy.RequiresPassword)
	assert.Equal(t, r.Ciphertext, decoded.Ciphertext)
}

func TestEncodeDecode_AllPolicyVariants_RoundTrip(t *testing.T) {
	deadline := time.Unix(1893456000, 0).UTC() // fixed, far-future instant

	tests := []struct {
		name   string
		policy Policy
	}{
		{"burn-after-reading", Policy{Tag: BurnAfterReading}},
		{"burn-after-reading-with-deadline", Policy{Tag: BurnAfterReadingWithDeadline, Deadline: deadline}},
		{"burn-after-reading-with-deadline-password", Policy{Tag: BurnAfterReadingWithDeadline, Deadline: deadline, RequiresPassword: true}},
		{"unix-time", Policy{Tag: UnixTime, Deadline: deadline}},
		{"unix-time-password", Policy{Tag: UnixTime, Deadline: deadline, RequiresPassword: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Record{Policy: tt.policy, Ciphertext: []byte{0x01, 0x02, 0x03}}
			encoded := Encode(r)

			decoded, err := Decode(encoded)
			require.NoError(t, err)
			assert.Equal(t, tt.policy.Tag, decoded.Policy.Tag)
			assert.Equal(t, tt.policy.RequiresPassword, decoded.Policy.RequiresPassword)
			if tt.policy.Tag != BurnAfterReading {
				assert.True(t, tt.policy.Deadline.Equal(decoded.Policy.Deadline))
			}
			assert.Equal(t, r.Ciphertext, decoded.Ciphertext)
		})
	}
}

func TestDecodePolicy_SkipsCiphertextBody(t *testing.T) {
	r := Record{
		Policy:     Policy{Tag: UnixTime, Deadline: time.Unix(2000000000, 0).UTC()},
		Ciphertext: make([]byte, 1<<20), // 1 MiB, should never be touched
	}
	encoded := Encode(r)

	policy, err := DecodePolicy(encoded[:HeaderSize])
	require.NoError(t, err)
	assert.Equal(t, UnixTime, policy.Tag)
}

func TestDecode_ShortData_ReturnsCorruptRecord(t *testing.T) {
	_, err := Decode([]byte{0x00, 0x01, 0x02})
	assert.ErrorIs(t, err, ErrCorruptRecord)
}

func TestDecodePolicy_UnknownTag_ReturnsCorruptRecord(t *testing.T) {
	data := make([]byte, HeaderSize)
	data[0] = 0xFF

	_, err := DecodePolicy(data)
	assert.ErrorIs(t, err, ErrCorruptRecord)
}

func TestPolicy_Expired(t *testing.T) {
	now := time.Unix(1000, 0)

	tests := []struct {
		name    string
		policy  Policy
		expired bool
	}{
		{"burn-after-reading-never-time-expires", Policy{Tag: BurnAfterReading}, false},
		{"deadline-in-past", Policy{Tag: UnixTime, Deadline: time.Unix(500, 0)}, true},
		{"deadline-equal-now", Policy{Tag: UnixTime, Deadline: now}, true},
		{"deadline-in-future", Policy{Tag: UnixTime, Deadline: time.Unix(1500, 0)}, false},
		{"burn-with-deadline-in-past", Policy{Tag: BurnAfterReadingWithDeadline, Deadline: time.Unix(500, 0)}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expired, tt.policy.Expired(now))
		})
	}
}

func TestEncode_EmptyCiphertext(t *testing.T) {
	r := Record{Policy: Policy{Tag: BurnAfterReading}}
	encoded := Encode(r)
	assert.Len(t, encoded, HeaderSize)
}
