// Copyright (c) 2025 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package hmac256

import (
	"crypto/hmac"
	stdsha256 "crypto/sha256"
	"encoding/hex"
	"math/rand"
	"testing"
)

// TestSumVectors ensures the HMAC is computed correctly for known-good vectors.
// Keys shorter than KeySize are zero padded which does not change the result
// since HMAC pads keys to the hash block size.
func TestSumVectors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string // test description
		key  []byte // key prior to padding
		data []byte // message
		want string // expected hex encoded mac
	}{{
		name: "zero key, empty data",
		key:  nil,
		data: nil,
		want: "b613679a0814d9ec772f95d778c35fc5ff1697c493715653c6c712144292c5ad",
	}, {
		name: "rfc 4231 test case 2",
		key:  []byte("Jefe"),
		data: []byte("what do ya want for nothing?"),
		want: "5bdcc146bf60754e6a042426089575c75a003f089d2739839dec58b964ec3843",
	}}

	for _, test := range tests {
		var key [KeySize]byte
		copy(key[:], test.key)
		mac := Sum(&key, test.data)
		if got := hex.EncodeToString(mac[:]); got != test.want {
			t.Errorf("%q: got %s, want %s", test.name, got, test.want)
		}
	}
}

// TestSumAgainstStdlib ensures the HMAC matches the standard library for random
// keys and messages of assorted lengths.
func TestSumAgainstStdlib(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(2104))
	for i := 0; i < 300; i++ {
		var key [KeySize]byte
		rng.Read(key[:])
		data := make([]byte, i)
		rng.Read(data)

		got := Sum(&key, data)

		mac := hmac.New(stdsha256.New, key[:])
		mac.Write(data)
		want := mac.Sum(nil)
		if !hmac.Equal(got[:], want) {
			t.Fatalf("len %d: got %x, want %x", i, got, want)
		}
	}
}
