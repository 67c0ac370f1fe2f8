// Copyright (c) 2025 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package spn implements a small AES-like substitution-permutation network that
encrypts 128-bit blocks under a 256-bit key.

The cipher is NOT AES and makes no claim of cryptographic strength.  It is a
keyed pseudorandom permutation used to drive the counter mode generator in the
parent package, and its output must remain stable because generator output
depends on it bit for bit.

Each of the 10 rounds:

 1. XORs the state with a 16-byte window of the key starting at
    (round*16) mod 32, wrapping around the end of the key
 2. Substitutes every byte through the AES S-box
 3. Permutes the bytes with new[i] = old[(i + i/4) mod 16]
 4. Mixes each 4-byte column (rounds 0 through 8 only)

The column mixing computes t = s0^s1^s2^s3 and then replaces every byte s[j]
with s[j] ^ t ^ ((s[j] ^ s[j+1]) << 1), with indices taken cyclically within
the column and the shift truncated to 8 bits.  This is a simplified linear
step and deliberately differs from the GF(2^8) MixColumns of AES.

There is no decryption function.
*/
package spn
