// Copyright (c) 2025 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package sha256 implements the SHA-256 cryptographic hash function as defined
in FIPS 180-4.

This is a portable implementation that favors clarity over speed.  It exists
so the generators in this module are built entirely from primitives that live
in the module itself.  Callers that only need a fast SHA-256 should use the
standard library.

# Usage

The simplest way to hash data is the Sum256 function:

	digest := sha256.Sum256([]byte("data"))

Data that arrives incrementally may be written to a Hasher, which also
implements the standard library hash.Hash interface:

	h := sha256.NewHasher()
	h.Write(part1)
	h.Write(part2)
	digest := h.Sum256()
*/
package sha256
