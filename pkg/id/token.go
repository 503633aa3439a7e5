// Package id provides short process-unique tokens for generated identifiers.
package id

import (
	"crypto/rand"
	"encoding/binary"
	"sync/atomic"
	"time"
)

// Lowercase Crockford base32 alphabet (excludes i, l, o, u).
const alphabet = "0123456789abcdefghjkmnpqrstvwxyz"

// TokenLength is the length of tokens returned by NewToken.
const TokenLength = 13

var counter atomic.Uint32

// NewToken returns a 13-character lowercase token: 8 chars of microsecond
// timestamp followed by 5 chars mixing a process counter with random bits.
// Tokens only contain [0-9a-z], so they are safe inside slugs.
func NewToken() string {
	us := uint64(time.Now().UnixMicro())

	var rnd [4]byte
	if _, err := rand.Read(rnd[:]); err != nil {
		// Degraded entropy; the counter still keeps tokens distinct in-process.
		binary.BigEndian.PutUint32(rnd[:], uint32(time.Now().UnixNano()))
	}
	tail := (uint64(counter.Add(1)&0x3FF) << 15) | uint64(binary.BigEndian.Uint32(rnd[:])&0x7FFF)

	var tok [TokenLength]byte
	// 40 low bits of the timestamp, 8 chars; wraps every ~12.7 days which is
	// fine since callers pair tokens with a calendar timestamp.
	for i := 7; i >= 0; i-- {
		tok[i] = alphabet[us&0x1F]
		us >>= 5
	}
	for i := TokenLength - 1; i >= 8; i-- {
		tok[i] = alphabet[tail&0x1F]
		tail >>= 5
	}

	return string(tok[:])
}

// NewSuffix returns n random characters from [a-z0-9].
// Used for collision-avoiding suffixes where sortability is irrelevant.
func NewSuffix(n int) string {
	const chars = "abcdefghijklmnopqrstuvwxyz0123456789"
	if n <= 0 {
		return ""
	}

	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		seed := uint64(time.Now().UnixNano())
		for i := range b {
			b[i] = byte(seed >> (uint(i) % 8 * 8))
		}
	}
	for i := range b {
		b[i] = chars[int(b[i])%len(chars)]
	}

	return string(b)
}
