// Copyright (c) 2025 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package spn

import (
	"encoding/hex"
	"math/rand"
	"testing"
)

// TestSubBytes ensures the substitution layer uses the AES S-box.
func TestSubBytes(t *testing.T) {
	t.Parallel()

	state := [BlockSize]byte{0x00, 0x01, 0x53, 0xff}
	subBytes(&state)
	want := "637ced16636363636363636363636363"
	if got := hex.EncodeToString(state[:]); got != want {
		t.Fatalf("got %s, want %s", got, want)
	}
}

// TestPermute ensures the permutation layer moves byte (i + i/4) mod 16 into
// position i.
func TestPermute(t *testing.T) {
	t.Parallel()

	var state [BlockSize]byte
	for i := range state {
		state[i] = byte(i)
	}
	permute(&state)
	want := [BlockSize]byte{
		0, 1, 2, 3,
		5, 6, 7, 8,
		10, 11, 12, 13,
		15, 0, 1, 2,
	}
	if state != want {
		t.Fatalf("got %v, want %v", state, want)
	}
}

// TestMixColumns ensures the simplified column mixing is applied to every
// column, including truncation of the shifted term to 8 bits.
func TestMixColumns(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string // test description
		in   string // hex encoded state
		want string // hex encoded expected state
	}{{
		name: "zero state",
		in:   "00000000000000000000000000000000",
		want: "00000000000000000000000000000000",
	}, {
		name: "ascending column",
		in:   "01020304000000000000000000000000",
		want: "0304090a000000000000000000000000",
	}, {
		name: "high bit shifted out",
		in:   "00000000800000000000000000000000",
		want: "00000000008080800000000000000000",
	}, {
		name: "columns are independent",
		in:   "01020304010203040102030401020304",
		want: "0304090a0304090a0304090a0304090a",
	}}

	for _, test := range tests {
		var state [BlockSize]byte
		in, _ := hex.DecodeString(test.in)
		copy(state[:], in)
		mixColumns(&state)
		if got := hex.EncodeToString(state[:]); got != test.want {
			t.Errorf("%q: got %s, want %s", test.name, got, test.want)
		}
	}
}

// TestAddRoundKey ensures the round key is a wrapping 16-byte window over the
// 32-byte key.
func TestAddRoundKey(t *testing.T) {
	t.Parallel()

	var key [KeySize]byte
	for i := range key {
		key[i] = byte(i)
	}

	tests := []struct {
		round int  // round number
		first byte // expected first byte of the window
	}{
		{round: 0, first: 0},
		{round: 1, first: 16},
		{round: 2, first: 0},
		{round: 9, first: 16},
	}
	for _, test := range tests {
		var state [BlockSize]byte
		addRoundKey(&state, &key, test.round)
		for i, b := range state {
			if want := test.first + byte(i); b != want {
				t.Errorf("round %d byte %d: got %d, want %d", test.round,
					i, b, want)
			}
		}
	}
}

// TestEncryptDeterministic ensures encryption is a pure function that leaves
// its inputs untouched.
func TestEncryptDeterministic(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(16))
	for i := 0; i < 100; i++ {
		var key [KeySize]byte
		var block [BlockSize]byte
		rng.Read(key[:])
		rng.Read(block[:])
		keyCopy, blockCopy := key, block

		first := Encrypt(&key, &block)
		second := Encrypt(&key, &block)
		if first != second {
			t.Fatalf("encryption is not deterministic: %x != %x", first, second)
		}
		if key != keyCopy || block != blockCopy {
			t.Fatal("encryption modified its inputs")
		}
	}
}

// TestEncryptIgnoresDroppedBytes ensures the bytes discarded by the first
// round permutation (positions 4, 9 and 14) have no influence on the output.
func TestEncryptIgnoresDroppedBytes(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(4914))
	for i := 0; i < 100; i++ {
		var key [KeySize]byte
		var block [BlockSize]byte
		rng.Read(key[:])
		rng.Read(block[:])
		want := Encrypt(&key, &block)

		for _, pos := range []int{4, 9, 14} {
			altered := block
			altered[pos] ^= byte(rng.Intn(255) + 1)
			if got := Encrypt(&key, &altered); got != want {
				t.Fatalf("byte %d influenced output: got %x, want %x", pos,
					got, want)
			}
		}
	}
}

// TestEncryptVectors ensures encryption produces the expected output for
// fixed keys and blocks.
func TestEncryptVectors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string // test description
		key   string // hex encoded key
		block string // hex encoded plaintext block
		want  string // hex encoded expected ciphertext
	}{{
		name:  "zero key, zero block",
		key:   "0000000000000000000000000000000000000000000000000000000000000000",
		block: "00000000000000000000000000000000",
		want:  "36363636363636363636363636363636",
	}, {
		name:  "ascending key, zero block",
		key:   "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f",
		block: "00000000000000000000000000000000",
		want:  "16a57092090e65b9c97f11b2a716a570",
	}, {
		name:  "aes-256 sample key and block",
		key:   "603deb1015ca71be2b73aef0857d77811f352c073b6108d72d9810a30914dff4",
		block: "6bc1bee22e409f96e93d7e117393172a",
		want:  "93294d2af86e9084849dec06a593294d",
	}}

	for _, test := range tests {
		var key [KeySize]byte
		var block [BlockSize]byte
		k, _ := hex.DecodeString(test.key)
		b, _ := hex.DecodeString(test.block)
		copy(key[:], k)
		copy(block[:], b)
		got := Encrypt(&key, &block)
		if result := hex.EncodeToString(got[:]); result != test.want {
			t.Errorf("%q: got %s, want %s", test.name, result, test.want)
		}
	}
}
