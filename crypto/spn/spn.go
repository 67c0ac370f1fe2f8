// Copyright (c) 2025 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package spn

const (
	// KeySize is the size of a key in bytes.
	KeySize = 32

	// BlockSize is the size of a block in bytes.
	BlockSize = 16

	// Rounds is the number of rounds applied to each block.
	Rounds = 10
)

// addRoundKey XORs the state with the 16-byte key window for the round.
func addRoundKey(state *[BlockSize]byte, key *[KeySize]byte, round int) {
	for i := range state {
		state[i] ^= key[(round*BlockSize+i)%KeySize]
	}
}

// subBytes replaces every byte of the state through the S-box.
func subBytes(state *[BlockSize]byte) {
	for i, b := range state {
		state[i] = sbox[b]
	}
}

// permute moves byte (i + i/4) mod 16 to position i.
func permute(state *[BlockSize]byte) {
	old := *state
	for i := range state {
		state[i] = old[(i+i/4)%BlockSize]
	}
}

// mixColumns applies the simplified column mixing to each 4-byte column.
func mixColumns(state *[BlockSize]byte) {
	for i := 0; i < BlockSize; i += 4 {
		s0, s1, s2, s3 := state[i], state[i+1], state[i+2], state[i+3]
		t := s0 ^ s1 ^ s2 ^ s3
		state[i] = s0 ^ t ^ ((s0 ^ s1) << 1)
		state[i+1] = s1 ^ t ^ ((s1 ^ s2) << 1)
		state[i+2] = s2 ^ t ^ ((s2 ^ s3) << 1)
		state[i+3] = s3 ^ t ^ ((s3 ^ s0) << 1)
	}
}

// Encrypt returns the encryption of block under key.  Neither argument is
// modified.
func Encrypt(key *[KeySize]byte, block *[BlockSize]byte) [BlockSize]byte {
	state := *block
	for round := 0; round < Rounds; round++ {
		addRoundKey(&state, key, round)
		subBytes(&state)
		permute(&state)
		if round < Rounds-1 {
			mixColumns(&state)
		}
	}
	return state
}
